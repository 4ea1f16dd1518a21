package lecture

import "iter"

// Material is the lecture the model is asked to return.
type Material struct {
	Transcript     string `json:"transcript"`
	VisualAidQuery string `json:"visualAidQuery"`
}

// Stream yields text chunks in arrival order. A non-nil error ends the stream.
type Stream = iter.Seq2[string, error]
