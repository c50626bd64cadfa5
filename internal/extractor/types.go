package extractor

// candidate is a task-like fragment matched in a message, before the
// derived fields (assignee, deadline, progress, ...) are attached.
type candidate struct {
	text         string // captured fragment, trimmed
	patternIndex int    // which pattern in the cascade produced it
}
