package domain

// ClassificationResult is the outcome of analyzing a complaint description.
// It is folded into the complaint at creation and never persisted on its own.
type ClassificationResult struct {
	IssueType  string
	Department string
	Urgency    Urgency
	Reason     string
}
