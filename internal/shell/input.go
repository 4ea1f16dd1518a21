package shell

import "strings"

// Input holds the text typed by the user. The value is kept after a submit.
type Input struct {
	value    string
	disabled bool
}

func NewInput() *Input {
	return &Input{}
}

func (in *Input) Value() string {
	return in.value
}

// SetValue is ignored while the input is disabled.
func (in *Input) SetValue(v string) {
	if in.disabled {
		return
	}
	in.value = v
}

func (in *Input) SetDisabled(disabled bool) {
	in.disabled = disabled
}

func (in *Input) Disabled() bool {
	return in.disabled
}

func (in *Input) CanSubmit() bool {
	return !in.disabled && strings.TrimSpace(in.value) != ""
}

// Submit returns the trimmed text to forward, or false when there is nothing
// to send or a request is already in flight.
func (in *Input) Submit() (string, bool) {
	if !in.CanSubmit() {
		return "", false
	}
	return strings.TrimSpace(in.value), true
}
