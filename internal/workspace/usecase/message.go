package usecase

import (
	"context"
	"strings"

	"rima-workspace/internal/assistant"
	"rima-workspace/internal/model"
	"rima-workspace/internal/workspace"
	"rima-workspace/internal/workspace/repository"
)

// PostMessage stores the user's message, asks the assistant for a
// reply, and stores that too. Both messages are immutable once stored.
func (uc *implUseCase) PostMessage(ctx context.Context, sc model.Scope, input workspace.PostMessageInput) (workspace.PostMessageOutput, error) {
	if strings.TrimSpace(input.Content) == "" {
		return workspace.PostMessageOutput{}, workspace.ErrEmptyContent
	}

	ws, err := uc.repo.GetWorkspace(ctx, input.WorkspaceID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.PostMessage GetWorkspace: %v", err)
		return workspace.PostMessageOutput{}, err
	}
	if ws.ID == "" {
		return workspace.PostMessageOutput{}, workspace.ErrWorkspaceNotFound
	}

	var room model.Room
	if input.RoomID != "" {
		if room, err = uc.requireRoom(ctx, ws.ID, input.RoomID); err != nil {
			return workspace.PostMessageOutput{}, err
		}
	}

	sender := model.UserSender(model.User{ID: sc.UserID, Name: sc.Username})
	msg, err := uc.repo.CreateMessage(ctx, repository.CreateMessageOptions{
		WorkspaceID: ws.ID,
		RoomID:      input.RoomID,
		Sender:      sender,
		Content:     input.Content,
		Timestamp:   uc.now(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.PostMessage CreateMessage: %v", err)
		return workspace.PostMessageOutput{}, err
	}

	resp, err := uc.responder.Reply(ctx, &assistant.Request{
		WorkspaceTitle: ws.Title,
		RoomTitle:      room.Title,
		SenderName:     sc.Username,
		Message:        input.Content,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.PostMessage Reply: %v", err)
		return workspace.PostMessageOutput{}, err
	}

	reply, err := uc.repo.CreateMessage(ctx, repository.CreateMessageOptions{
		WorkspaceID: ws.ID,
		RoomID:      input.RoomID,
		Sender:      model.AssistantSender(),
		Content:     resp.Content,
		Timestamp:   uc.now(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.PostMessage CreateMessage reply: %v", err)
		return workspace.PostMessageOutput{}, err
	}

	return workspace.PostMessageOutput{Message: msg, Reply: reply}, nil
}

// ListMessages returns messages newest-last, workspace- or room-scoped.
func (uc *implUseCase) ListMessages(ctx context.Context, sc model.Scope, input workspace.ListMessagesInput) (workspace.ListMessagesOutput, error) {
	ws, err := uc.repo.GetWorkspace(ctx, input.WorkspaceID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListMessages GetWorkspace: %v", err)
		return workspace.ListMessagesOutput{}, err
	}
	if ws.ID == "" {
		return workspace.ListMessagesOutput{}, workspace.ErrWorkspaceNotFound
	}

	if input.RoomID != "" {
		if _, err := uc.requireRoom(ctx, ws.ID, input.RoomID); err != nil {
			return workspace.ListMessagesOutput{}, err
		}
	}

	messages, err := uc.repo.ListMessages(ctx, repository.ListMessagesOptions{
		WorkspaceID: ws.ID,
		RoomID:      input.RoomID,
		Limit:       input.Limit,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListMessages ListMessages: %v", err)
		return workspace.ListMessagesOutput{}, err
	}

	return workspace.ListMessagesOutput{Messages: messages, Count: len(messages)}, nil
}
