package assistant

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"rima-workspace/internal/model"
)

// The canned responder picks a reply from fixed keyword rules, checked
// in order. Deterministic on purpose: the same message always gets the
// same reply, which keeps demos and tests stable.

var (
	reGreeting = regexp.MustCompile(`(?i)\b(?:hi|hello|hey|good morning|good evening)\b`)
	reThanks   = regexp.MustCompile(`(?i)\b(?:thanks|thank you|thx)\b`)
	reTaskTalk = regexp.MustCompile(`(?i)\b(?:todo|task|deadline|due|assign|remind)\b`)
	reBudget   = regexp.MustCompile(`(?i)\b(?:budget|spent|spending|cost|expense)\b`)
)

type cannedResponder struct{}

func (r *cannedResponder) Name() string {
	return model.AssistantName
}

func (r *cannedResponder) Reply(ctx context.Context, req *Request) (*Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	place := req.RoomTitle
	if place == "" {
		place = req.WorkspaceTitle
	}

	content := ""
	switch {
	case reGreeting.MatchString(req.Message):
		content = fmt.Sprintf("Hello %s! I'm keeping an eye on %s. Let me know what you need.", req.SenderName, place)
	case reThanks.MatchString(req.Message):
		content = "You're welcome! Happy to help."
	case reTaskTalk.MatchString(req.Message):
		content = "Noted. I'll pick up any tasks and deadlines mentioned here, check the task list in a moment."
	case reBudget.MatchString(req.Message):
		content = "I'm tracking spending against the budget. The dashboard has the latest numbers."
	case strings.Contains(req.Message, "?"):
		content = fmt.Sprintf("Good question. I don't have an answer yet, but someone in %s might.", place)
	default:
		content = "Got it. I've noted that down."
	}

	return &Response{Content: content}, nil
}
