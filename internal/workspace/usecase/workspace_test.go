package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"rima-workspace/internal/assistant"
	"rima-workspace/internal/extractor"
	"rima-workspace/internal/insight"
	"rima-workspace/internal/model"
	"rima-workspace/internal/workspace"
	"rima-workspace/internal/workspace/repository"
	"rima-workspace/pkg/dateparse"
)

var frozenNow = time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)

var testScope = model.Scope{UserID: "u1", Username: "Ana"}

func newTestUseCase(t *testing.T, repo *mockRepo) *implUseCase {
	t.Helper()

	parser, err := dateparse.NewParser("UTC")
	if err != nil {
		t.Fatalf("NewParser() error = %v", err)
	}

	l := &mockLogger{}
	uc := New(
		l,
		repo,
		extractor.New(parser, func() time.Time { return frozenNow }),
		insight.New(l, insight.NoDelay()),
		assistant.New(),
	)
	uc.now = func() time.Time { return frozenNow }
	return uc
}

func TestCreateWorkspace(t *testing.T) {
	t.Run("Empty Title", func(t *testing.T) {
		uc := newTestUseCase(t, &mockRepo{})

		_, err := uc.CreateWorkspace(context.Background(), testScope, workspace.CreateWorkspaceInput{Title: "   "})
		if !errors.Is(err, workspace.ErrEmptyTitle) {
			t.Errorf("error = %v, want ErrEmptyTitle", err)
		}
	})

	t.Run("Creates Workspace And Members", func(t *testing.T) {
		var gotOpt repository.CreateWorkspaceOptions
		var addedMembers []model.User

		repo := &mockRepo{
			createWorkspaceFunc: func(ctx context.Context, opt repository.CreateWorkspaceOptions) (model.Workspace, error) {
				gotOpt = opt
				return model.Workspace{ID: "ws-1", Title: opt.Title, Budget: opt.Budget, Deadline: opt.Deadline}, nil
			},
			addMemberFunc: func(ctx context.Context, opt repository.AddMemberOptions) (model.User, error) {
				addedMembers = append(addedMembers, opt.User)
				return opt.User, nil
			},
		}
		uc := newTestUseCase(t, repo)

		out, err := uc.CreateWorkspace(context.Background(), testScope, workspace.CreateWorkspaceInput{
			Title:    "Launch",
			Budget:   "€1000",
			Deadline: "2026-09-01",
			Members:  []model.User{{ID: "u1", Name: "Ana"}, {ID: "u2", Name: "Sam"}},
		})
		if err != nil {
			t.Fatalf("CreateWorkspace() error = %v", err)
		}
		if gotOpt.Title != "Launch" || gotOpt.Budget != "€1000" || gotOpt.Deadline != "2026-09-01" {
			t.Errorf("unexpected repo options: %+v", gotOpt)
		}
		if len(addedMembers) != 2 {
			t.Errorf("expected 2 members added, got %d", len(addedMembers))
		}
		if len(out.Workspace.Members) != 2 {
			t.Errorf("expected members in output, got %+v", out.Workspace.Members)
		}
	})
}

func TestListWorkspaces(t *testing.T) {
	repo := &mockRepo{
		listWorkspacesFunc: func(ctx context.Context) ([]model.Workspace, error) {
			return []model.Workspace{{ID: "ws-1", Title: "Launch"}, {ID: "ws-2", Title: "Side"}}, nil
		},
	}
	uc := newTestUseCase(t, repo)

	out, err := uc.ListWorkspaces(context.Background(), testScope)
	if err != nil {
		t.Fatalf("ListWorkspaces() error = %v", err)
	}
	if out.Count != 2 || len(out.Workspaces) != 2 {
		t.Errorf("unexpected output: %+v", out)
	}
}

func TestDetailWorkspace(t *testing.T) {
	t.Run("Not Found", func(t *testing.T) {
		uc := newTestUseCase(t, &mockRepo{})

		_, err := uc.DetailWorkspace(context.Background(), testScope, "nope")
		if !errors.Is(err, workspace.ErrWorkspaceNotFound) {
			t.Errorf("error = %v, want ErrWorkspaceNotFound", err)
		}
	})

	t.Run("Composes Snapshot", func(t *testing.T) {
		repo := &mockRepo{
			getWorkspaceFunc: func(ctx context.Context, id string) (model.Workspace, error) {
				return model.Workspace{ID: id, Title: "Launch", Budget: "€1000"}, nil
			},
			listMembersFunc: func(ctx context.Context, workspaceID string) ([]model.User, error) {
				return []model.User{{ID: "u1", Name: "Ana"}}, nil
			},
			listTasksFunc: func(ctx context.Context, workspaceID string) ([]model.Task, error) {
				return []model.Task{{ID: "t1", Title: "Book venue"}}, nil
			},
			listSpendingFunc: func(ctx context.Context, workspaceID string) ([]model.SpendingEntry, error) {
				return []model.SpendingEntry{{ID: "s1", Amount: "€400"}}, nil
			},
			listMessagesFunc: func(ctx context.Context, opt repository.ListMessagesOptions) ([]model.Message, error) {
				return []model.Message{{ID: "m1", Content: "hello"}}, nil
			},
			listRoomsFunc: func(ctx context.Context, workspaceID string) ([]model.Room, error) {
				return []model.Room{{ID: "r1", Title: "general"}}, nil
			},
		}
		uc := newTestUseCase(t, repo)

		out, err := uc.DetailWorkspace(context.Background(), testScope, "ws-1")
		if err != nil {
			t.Fatalf("DetailWorkspace() error = %v", err)
		}
		ws := out.Workspace
		if len(ws.Members) != 1 || len(ws.Tasks) != 1 || len(ws.Spending) != 1 ||
			len(ws.Messages) != 1 || len(ws.Rooms) != 1 {
			t.Errorf("snapshot incomplete: %+v", ws)
		}
	})
}

func TestCreateRoom(t *testing.T) {
	t.Run("Workspace Not Found", func(t *testing.T) {
		uc := newTestUseCase(t, &mockRepo{})

		_, err := uc.CreateRoom(context.Background(), testScope, workspace.CreateRoomInput{
			WorkspaceID: "nope",
			Title:       "general",
		})
		if !errors.Is(err, workspace.ErrWorkspaceNotFound) {
			t.Errorf("error = %v, want ErrWorkspaceNotFound", err)
		}
	})

	t.Run("Creates Room", func(t *testing.T) {
		repo := &mockRepo{
			getWorkspaceFunc: func(ctx context.Context, id string) (model.Workspace, error) {
				return model.Workspace{ID: id, Title: "Launch"}, nil
			},
			createRoomFunc: func(ctx context.Context, opt repository.CreateRoomOptions) (model.Room, error) {
				return model.Room{ID: "r1", WorkspaceID: opt.WorkspaceID, Title: opt.Title}, nil
			},
		}
		uc := newTestUseCase(t, repo)

		out, err := uc.CreateRoom(context.Background(), testScope, workspace.CreateRoomInput{
			WorkspaceID: "ws-1",
			Title:       "general",
		})
		if err != nil {
			t.Fatalf("CreateRoom() error = %v", err)
		}
		if out.Room.Title != "general" || out.Room.WorkspaceID != "ws-1" {
			t.Errorf("unexpected room: %+v", out.Room)
		}
	})
}
