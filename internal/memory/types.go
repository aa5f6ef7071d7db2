package memory

// Confidence bounds for learned patterns. Positive feedback starts high,
// negative feedback starts low, and repeated confirmation can never push a
// pattern past the cap.
const (
	BaselineConfidencePositive = 0.8
	BaselineConfidenceNegative = 0.3
	ConfidenceCap              = 0.95

	// DescriptionMaxLen bounds stored pattern descriptions, in characters.
	DescriptionMaxLen = 200
)

// SubmitInput carries one piece of user feedback into the learning store.
type SubmitInput struct {
	AgentName    string
	ThumbsUp     bool
	FeedbackText string
}
