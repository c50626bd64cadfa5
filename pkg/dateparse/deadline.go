package dateparse

import (
	"regexp"
	"time"
)

// Deadline phrasing. "due date: ..." is tried before the generic
// keywords so that "due" does not swallow the "date:" part of the
// capture.
var (
	reDueDate         = regexp.MustCompile(`(?i)\bdue date[:\s]+(.+)`)
	reDeadlineKeyword = regexp.MustCompile(`(?i)\b(?:by|before|due|deadline)[:\s]+(.+)`)
)

// ExtractDeadline looks for a deadline clause ("by friday",
// "deadline: jan 15", "due date: 2026-03-01") in a chat message and
// parses the captured remainder. When no deadline keyword is present
// the entire message is parsed instead, so any date-like substring
// anywhere in the text may surface as a deadline. That fallback is
// intentionally eager and can produce false positives.
func (p *Parser) ExtractDeadline(message string, base time.Time) *Result {
	if m := reDueDate.FindStringSubmatch(message); m != nil {
		return p.Parse(m[1], base)
	}
	if m := reDeadlineKeyword.FindStringSubmatch(message); m != nil {
		return p.Parse(m[1], base)
	}
	return p.Parse(message, base)
}
