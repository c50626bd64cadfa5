package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"rima-workspace/internal/middleware"
	"rima-workspace/internal/model"
	"rima-workspace/internal/workspace"
	workspaceHTTP "rima-workspace/internal/workspace/delivery/http"
	"rima-workspace/pkg/log"
	"rima-workspace/pkg/response"
)

type mockUseCase struct {
	createWorkspaceFunc   func(ctx context.Context, sc model.Scope, input workspace.CreateWorkspaceInput) (workspace.CreateWorkspaceOutput, error)
	detailWorkspaceFunc   func(ctx context.Context, sc model.Scope, id string) (workspace.DetailWorkspaceOutput, error)
	postMessageFunc       func(ctx context.Context, sc model.Scope, input workspace.PostMessageInput) (workspace.PostMessageOutput, error)
	setTaskCompletionFunc func(ctx context.Context, sc model.Scope, input workspace.SetTaskCompletionInput) (workspace.SetTaskCompletionOutput, error)
}

var _ workspace.UseCase = (*mockUseCase)(nil)

func (m *mockUseCase) CreateWorkspace(ctx context.Context, sc model.Scope, input workspace.CreateWorkspaceInput) (workspace.CreateWorkspaceOutput, error) {
	if m.createWorkspaceFunc != nil {
		return m.createWorkspaceFunc(ctx, sc, input)
	}
	return workspace.CreateWorkspaceOutput{}, nil
}

func (m *mockUseCase) ListWorkspaces(ctx context.Context, sc model.Scope) (workspace.ListWorkspacesOutput, error) {
	return workspace.ListWorkspacesOutput{}, nil
}

func (m *mockUseCase) DetailWorkspace(ctx context.Context, sc model.Scope, id string) (workspace.DetailWorkspaceOutput, error) {
	if m.detailWorkspaceFunc != nil {
		return m.detailWorkspaceFunc(ctx, sc, id)
	}
	return workspace.DetailWorkspaceOutput{}, nil
}

func (m *mockUseCase) CreateRoom(ctx context.Context, sc model.Scope, input workspace.CreateRoomInput) (workspace.CreateRoomOutput, error) {
	return workspace.CreateRoomOutput{}, nil
}

func (m *mockUseCase) ListRooms(ctx context.Context, sc model.Scope, workspaceID string) (workspace.ListRoomsOutput, error) {
	return workspace.ListRoomsOutput{}, nil
}

func (m *mockUseCase) PostMessage(ctx context.Context, sc model.Scope, input workspace.PostMessageInput) (workspace.PostMessageOutput, error) {
	if m.postMessageFunc != nil {
		return m.postMessageFunc(ctx, sc, input)
	}
	return workspace.PostMessageOutput{}, nil
}

func (m *mockUseCase) ListMessages(ctx context.Context, sc model.Scope, input workspace.ListMessagesInput) (workspace.ListMessagesOutput, error) {
	return workspace.ListMessagesOutput{}, nil
}

func (m *mockUseCase) ExtractTasks(ctx context.Context, sc model.Scope, input workspace.ExtractTasksInput) (workspace.ExtractTasksOutput, error) {
	return workspace.ExtractTasksOutput{}, nil
}

func (m *mockUseCase) CreateTask(ctx context.Context, sc model.Scope, input workspace.CreateTaskInput) (workspace.CreateTaskOutput, error) {
	return workspace.CreateTaskOutput{}, nil
}

func (m *mockUseCase) ListTasks(ctx context.Context, sc model.Scope, workspaceID string) (workspace.ListTasksOutput, error) {
	return workspace.ListTasksOutput{}, nil
}

func (m *mockUseCase) SetTaskCompletion(ctx context.Context, sc model.Scope, input workspace.SetTaskCompletionInput) (workspace.SetTaskCompletionOutput, error) {
	if m.setTaskCompletionFunc != nil {
		return m.setTaskCompletionFunc(ctx, sc, input)
	}
	return workspace.SetTaskCompletionOutput{}, nil
}

func (m *mockUseCase) AddSpending(ctx context.Context, sc model.Scope, input workspace.AddSpendingInput) (workspace.AddSpendingOutput, error) {
	return workspace.AddSpendingOutput{}, nil
}

func (m *mockUseCase) Dashboard(ctx context.Context, sc model.Scope, workspaceID string) (workspace.DashboardOutput, error) {
	return workspace.DashboardOutput{}, nil
}

func (m *mockUseCase) Insights(ctx context.Context, sc model.Scope, input workspace.InsightsInput) (workspace.InsightsOutput, error) {
	return workspace.InsightsOutput{}, nil
}

func newTestRouter(uc workspace.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)

	l := log.NewNoop()
	h := workspaceHTTP.New(l, uc)
	mw := middleware.New(l, 1000, 1000)

	r := gin.New()
	workspaceHTTP.RegisterRoutes(r.Group("/api/v1"), h, mw)
	return r
}

func TestCreateWorkspaceHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		var gotScope model.Scope
		uc := &mockUseCase{
			createWorkspaceFunc: func(ctx context.Context, sc model.Scope, input workspace.CreateWorkspaceInput) (workspace.CreateWorkspaceOutput, error) {
				gotScope = sc
				return workspace.CreateWorkspaceOutput{
					Workspace: model.Workspace{ID: "ws-1", Title: input.Title},
				}, nil
			},
		}
		r := newTestRouter(uc)

		body := `{"title":"Launch Plan","budget":"€1000"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/workspaces", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-User-Id", "u1")
		req.Header.Set("X-User-Name", "Ana")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200, body %s", w.Code, w.Body.String())
		}
		if gotScope.Username != "Ana" || gotScope.UserID != "u1" {
			t.Errorf("scope = %+v, want headers carried through", gotScope)
		}

		var resp struct {
			Data struct {
				Workspace struct {
					ID    string `json:"id"`
					Title string `json:"title"`
				} `json:"workspace"`
			} `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if resp.Data.Workspace.ID != "ws-1" || resp.Data.Workspace.Title != "Launch Plan" {
			t.Errorf("workspace = %+v", resp.Data.Workspace)
		}
	})

	t.Run("Missing Title", func(t *testing.T) {
		r := newTestRouter(&mockUseCase{})

		req := httptest.NewRequest(http.MethodPost, "/api/v1/workspaces", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})

	t.Run("Default Demo Identity", func(t *testing.T) {
		var gotScope model.Scope
		uc := &mockUseCase{
			createWorkspaceFunc: func(ctx context.Context, sc model.Scope, input workspace.CreateWorkspaceInput) (workspace.CreateWorkspaceOutput, error) {
				gotScope = sc
				return workspace.CreateWorkspaceOutput{}, nil
			},
		}
		r := newTestRouter(uc)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/workspaces", strings.NewReader(`{"title":"x"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if gotScope.UserID != "demo-user" || gotScope.Username != "Demo" {
			t.Errorf("scope = %+v, want demo defaults", gotScope)
		}
	})
}

func TestPostMessageHandler(t *testing.T) {
	t.Run("Timestamps Use The Display Format", func(t *testing.T) {
		posted := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
		uc := &mockUseCase{
			postMessageFunc: func(ctx context.Context, sc model.Scope, input workspace.PostMessageInput) (workspace.PostMessageOutput, error) {
				msg := model.Message{
					ID:        "m1",
					Sender:    model.UserSender(model.User{ID: sc.UserID, Name: sc.Username}),
					Content:   input.Content,
					Timestamp: posted,
				}
				reply := model.Message{ID: "m2", Sender: model.AssistantSender(), Content: "Noted.", Timestamp: posted}
				return workspace.PostMessageOutput{Message: msg, Reply: reply}, nil
			},
		}
		r := newTestRouter(uc)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/workspaces/ws-1/messages", strings.NewReader(`{"content":"hello"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
		}

		var resp struct {
			Data struct {
				Message struct {
					Timestamp string `json:"timestamp"`
				} `json:"message"`
			} `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		// Rendered in the runner's local zone, so only the layout is
		// pinned, not the value.
		if _, err := time.Parse(response.DateTimeFormat, resp.Data.Message.Timestamp); err != nil {
			t.Errorf("timestamp %q does not match %q: %v", resp.Data.Message.Timestamp, response.DateTimeFormat, err)
		}
	})
}

func TestDetailWorkspaceHandler(t *testing.T) {
	t.Run("Not Found", func(t *testing.T) {
		uc := &mockUseCase{
			detailWorkspaceFunc: func(ctx context.Context, sc model.Scope, id string) (workspace.DetailWorkspaceOutput, error) {
				return workspace.DetailWorkspaceOutput{}, workspace.ErrWorkspaceNotFound
			},
		}
		r := newTestRouter(uc)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/workspaces/nope", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("status = %d, want 404", w.Code)
		}
	})
}

func TestSetTaskCompletionHandler(t *testing.T) {
	t.Run("Completes Task From Path Param", func(t *testing.T) {
		var gotInput workspace.SetTaskCompletionInput
		uc := &mockUseCase{
			setTaskCompletionFunc: func(ctx context.Context, sc model.Scope, input workspace.SetTaskCompletionInput) (workspace.SetTaskCompletionOutput, error) {
				gotInput = input
				return workspace.SetTaskCompletionOutput{
					Task: model.Task{ID: input.TaskID, Completed: input.Completed},
				}, nil
			},
		}
		r := newTestRouter(uc)

		req := httptest.NewRequest(http.MethodPut, "/api/v1/tasks/task-1/completion", strings.NewReader(`{"completed":true}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
		}
		if gotInput.TaskID != "task-1" || !gotInput.Completed {
			t.Errorf("input = %+v", gotInput)
		}
	})

	t.Run("Missing Body", func(t *testing.T) {
		r := newTestRouter(&mockUseCase{})

		req := httptest.NewRequest(http.MethodPut, "/api/v1/tasks/task-1/completion", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})
}
