package professor

import "fmt"

const (
	fallbackDefinition  = "Definition unavailable."
	fallbackApplication = "N/A"
	videoQuerySuffix    = " educational"
)

func BuildExplainPrompt(question string) string {
	return fmt.Sprintf(`
Explain this topic simply: '%s'.
Return a valid JSON object with exactly these keys:
- "definition": A clear, simple explanation.
- "key_notes": A list of 3-5 distinct bullet points.
- "application": A paragraph describing real-world use cases.
`, question)
}

func BuildVideoQuery(question string) string {
	return question + videoQuerySuffix
}
