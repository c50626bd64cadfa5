package dateparse_test

import (
	"testing"
	"time"

	"rima-workspace/pkg/dateparse"
)

func TestExtractDeadline(t *testing.T) {
	parser, _ := dateparse.NewParser("UTC")
	// Friday, May 1, 2026.
	base := time.Date(2026, 5, 1, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		message  string
		wantDate string
		wantNil  bool
	}{
		{
			name:     "By keyword",
			message:  "finish the report by tomorrow",
			wantDate: "2026-05-02",
		},
		{
			name:     "Deadline keyword with colon",
			message:  "deadline: next monday",
			wantDate: "2026-05-04",
		},
		{
			name:     "Due date with explicit ISO date",
			message:  "due date: 2026-06-01",
			wantDate: "2026-06-01",
		},
		{
			name:     "Due keyword with bare weekday",
			message:  "the fix is due friday",
			wantDate: "2026-05-01",
		},
		{
			name:     "Before keyword",
			message:  "needs review before end of week",
			wantDate: "2026-05-02",
		},
		{
			name:     "No keyword falls back to whole-message parse",
			message:  "let's sync jan 15 if that works",
			wantDate: "2027-01-15",
		},
		{
			name:    "No keyword and no date phrase",
			message: "thanks, looks good to me",
			wantNil: true,
		},
		{
			name:    "Keyword but unparseable remainder",
			message: "we'll know more by then",
			wantNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parser.ExtractDeadline(tt.message, base)
			if tt.wantNil {
				if got != nil {
					t.Fatalf("ExtractDeadline(%q) = %+v, want nil", tt.message, got)
				}
				return
			}
			if got == nil {
				t.Fatalf("ExtractDeadline(%q) = nil, want %s", tt.message, tt.wantDate)
			}
			if got.Date != tt.wantDate {
				t.Errorf("ExtractDeadline(%q) = %s, want %s", tt.message, got.Date, tt.wantDate)
			}
		})
	}
}
