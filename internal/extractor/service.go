package extractor

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"rima-workspace/internal/model"
	"rima-workspace/pkg/dateparse"
)

// Candidate text bounds: fragments shorter than MinTitleLength or longer
// than MaxTitleLength characters are silently discarded.
const (
	MinTitleLength = 5
	MaxTitleLength = 150
)

// Service extracts task-like records from chat messages. Pure over its
// inputs: messages are never mutated, repeated calls on the same
// snapshot produce identical output.
type Service interface {
	// ExtractFromMessages scans messages in order and returns one task
	// per pattern match. Matches overlapping across patterns are NOT
	// deduplicated. roomID may be empty for workspace-level messages.
	ExtractFromMessages(messages []model.Message, workspaceID, roomID string) []model.Task
}

type service struct {
	dates *dateparse.Parser
	now   func() time.Time
}

// New creates the extractor. now may be nil outside of tests, in which
// case time.Now is used as the "today" reference for deadline parsing.
func New(dates *dateparse.Parser, now func() time.Time) Service {
	if now == nil {
		now = time.Now
	}
	return &service{dates: dates, now: now}
}

// The pattern cascade, applied per message in this fixed order. Each
// pattern contributes at most one candidate per message (first match).
var taskPatterns = []*regexp.Regexp{
	// "todo: order the parts", "action item: book the room"
	regexp.MustCompile(`(?i)\b(?:todo|task|need to|must|should|action item):\s*(.+)`),
	// markdown checkbox line
	regexp.MustCompile(`(?m)^\s*\[\s?\]\s*(.+)$`),
	// direct request to a mentioned user
	regexp.MustCompile(`(?i)@\w+\s+(?:can you|please|could you|needs to)\s+(.+)`),
	// bullet list line
	regexp.MustCompile(`(?m)^\s*[-*]\s+(.+)$`),
}

// Assignee resolution, in priority order.
var (
	reAssigneeAction   = regexp.MustCompile(`(?i)@(\w+)\s+(?:will|should|can|needs to)\b`)
	reAssigneeAssigned = regexp.MustCompile(`(?i)\bassigned to\s+@?(\w+)`)
	reAssigneeDirect   = regexp.MustCompile(`(?i)\b(\w+),\s*you\s+(?:handle|do|take care of)\b`)
)

// Progress detection.
var (
	reProgressPercent = regexp.MustCompile(`(?i)(\d{1,3})\s*%\s*(?:done|complete|finished)`)

	progressKeywords = []struct {
		re    *regexp.Regexp
		value int
	}{
		{regexp.MustCompile(`(?i)\b(?:halfway|half done)\b`), 50},
		{regexp.MustCompile(`(?i)\b(?:almost done|nearly finished)\b`), 90},
		{regexp.MustCompile(`(?i)\b(?:just started|barely started)\b`), 10},
		{regexp.MustCompile(`(?i)\b(?:in progress|working on)\b`), 50},
	}
)

// Status detection, checked in this order.
var (
	reStatusCompleted  = regexp.MustCompile(`(?i)\b(?:done|completed|finished)\b|✓|✅`)
	reStatusBlocked    = regexp.MustCompile(`(?i)\b(?:blocked|waiting for|stuck|blocker)\b`)
	reStatusInProgress = regexp.MustCompile(`(?i)\b(?:working on|in progress|started)\b`)
)

// Priority detection: high keywords are checked before medium before
// low, so "urgent ... should ..." resolves to high.
var (
	rePriorityHigh   = regexp.MustCompile(`(?i)\b(?:urgent|asap|critical|high priority|blocker)\b`)
	rePriorityMedium = regexp.MustCompile(`(?i)\b(?:important|should)\b`)
	rePriorityLow    = regexp.MustCompile(`(?i)\b(?:nice to have|when possible|low priority)\b`)
)

// Title cleanup and confidence scoring.
var (
	reTitleKeywordPrefix  = regexp.MustCompile(`(?i)^(?:todo|task|action item)[:\s]+`)
	reTitleBulletPrefix   = regexp.MustCompile(`^[-*]\s+`)
	reTitleCheckboxPrefix = regexp.MustCompile(`^\[\s?\]\s*`)
	reTrailingDeadline    = regexp.MustCompile(`(?i)\s*\b(?:by|before|due|deadline)[:\s].*$`)
	reMention             = regexp.MustCompile(`@\w+`)
	reTaskKeyword         = regexp.MustCompile(`(?i)\b(?:todo|task|need to|must|should|action item)\b`)
	reDeadlineKeyword     = regexp.MustCompile(`(?i)\b(?:by|before|due|deadline)\b`)
)

func (s *service) ExtractFromMessages(messages []model.Message, workspaceID, roomID string) []model.Task {
	tasks := make([]model.Task, 0)
	base := s.now()

	for _, msg := range messages {
		if strings.TrimSpace(msg.Content) == "" {
			continue
		}

		for _, cand := range matchCandidates(msg.Content) {
			task, ok := s.buildTask(msg, cand, workspaceID, roomID, base)
			if !ok {
				continue
			}
			tasks = append(tasks, task)
		}
	}

	return tasks
}

// matchCandidates applies the pattern cascade to one message.
func matchCandidates(content string) []candidate {
	var out []candidate
	for i, re := range taskPatterns {
		m := re.FindStringSubmatch(content)
		if m == nil {
			continue
		}
		text := strings.TrimSpace(m[1])
		if utf8.RuneCountInString(text) < MinTitleLength || utf8.RuneCountInString(text) > MaxTitleLength {
			continue
		}
		out = append(out, candidate{text: text, patternIndex: i})
	}
	return out
}

func (s *service) buildTask(msg model.Message, cand candidate, workspaceID, roomID string, base time.Time) (model.Task, bool) {
	content := msg.Content
	title := cleanTitle(cand.text)
	if title == "" {
		return model.Task{}, false
	}

	task := model.Task{
		// Deterministic per message and pattern: re-extracting the same
		// snapshot yields the same IDs.
		ID:          fmt.Sprintf("task-%s-%d", msg.ID, cand.patternIndex),
		WorkspaceID: workspaceID,
		RoomID:      roomID,
		Title:       title,
		Owner:       msg.Sender.Name(),
		DueDate:     model.DueDateNotSet,
		Source:      model.TaskSourceChat,
	}

	if deadline := s.dates.ExtractDeadline(content, base); deadline != nil {
		task.DueDate = deadline.Date
		task.Deadline = deadline.Original
	}

	task.Assignee = detectAssignee(msg)
	task.Progress = detectProgress(content)
	task.Status = detectStatus(content, task.Progress)
	task.Completed = task.Status == model.TaskStatusCompleted
	task.Priority = detectPriority(content)

	task.Extracted = &model.Extraction{
		MessageID:  msg.ID,
		Timestamp:  msg.Timestamp,
		Confidence: scoreConfidence(content, title),
	}

	return task, true
}

// detectAssignee resolves who the task is for: explicit mention
// patterns first, then the sending user. Assistant messages have no
// default assignee.
func detectAssignee(msg model.Message) string {
	content := msg.Content
	if m := reAssigneeAction.FindStringSubmatch(content); m != nil {
		return m[1]
	}
	if m := reAssigneeAssigned.FindStringSubmatch(content); m != nil {
		return m[1]
	}
	if m := reAssigneeDirect.FindStringSubmatch(content); m != nil {
		return m[1]
	}
	if !msg.Sender.IsAssistant() {
		return msg.Sender.Name()
	}
	return ""
}

func detectProgress(content string) *int {
	if m := reProgressPercent.FindStringSubmatch(content); m != nil {
		n, _ := strconv.Atoi(m[1])
		if n < 0 {
			n = 0
		}
		if n > 100 {
			n = 100
		}
		return &n
	}
	for _, kw := range progressKeywords {
		if kw.re.MatchString(content) {
			v := kw.value
			return &v
		}
	}
	return nil
}

func detectStatus(content string, progress *int) model.TaskStatus {
	switch {
	case reStatusCompleted.MatchString(content):
		return model.TaskStatusCompleted
	case reStatusBlocked.MatchString(content):
		return model.TaskStatusBlocked
	case reStatusInProgress.MatchString(content):
		return model.TaskStatusInProgress
	}
	// No explicit status: any reported progress implies work underway.
	if progress != nil && *progress > 0 {
		return model.TaskStatusInProgress
	}
	return model.TaskStatusPending
}

func detectPriority(content string) model.TaskPriority {
	switch {
	case rePriorityHigh.MatchString(content):
		return model.TaskPriorityHigh
	case rePriorityMedium.MatchString(content):
		return model.TaskPriorityMedium
	case rePriorityLow.MatchString(content):
		return model.TaskPriorityLow
	}
	return ""
}

// cleanTitle strips recognized markers from a matched fragment: task
// keyword prefixes, bullet and checkbox markers, a trailing deadline
// clause, @mentions and trailing punctuation.
func cleanTitle(text string) string {
	text = reTitleKeywordPrefix.ReplaceAllString(text, "")
	text = reTitleBulletPrefix.ReplaceAllString(text, "")
	text = reTitleCheckboxPrefix.ReplaceAllString(text, "")
	text = reTrailingDeadline.ReplaceAllString(text, "")
	text = reMention.ReplaceAllString(text, "")
	text = strings.TrimRight(strings.TrimSpace(text), ".,;")
	return strings.TrimSpace(text)
}

// scoreConfidence computes the heuristic confidence for a candidate:
// base 0.5, bumped by explicit task phrasing, mentions and deadline
// keywords in the full message, penalized for very short or very long
// cleaned titles. Clamped to [0,1].
func scoreConfidence(content, title string) float64 {
	conf := 0.5
	if reTaskKeyword.MatchString(content) {
		conf += 0.2
	}
	if reMention.MatchString(content) {
		conf += 0.1
	}
	if reDeadlineKeyword.MatchString(content) {
		conf += 0.1
	}
	if utf8.RuneCountInString(title) < 10 {
		conf -= 0.2
	}
	if utf8.RuneCountInString(title) > 100 {
		conf -= 0.1
	}

	if conf < 0 {
		conf = 0
	}
	if conf > 1 {
		conf = 1
	}
	return conf
}
