package http

import (
	"rima-workspace/internal/dashboard"
	"rima-workspace/internal/model"
	"rima-workspace/internal/workspace"
	"rima-workspace/pkg/response"
)

// --- Request DTOs ---

type createWorkspaceReq struct {
	Title    string      `json:"title"    binding:"required,min=1,max=255"`
	Budget   string      `json:"budget"   binding:"max=64"`
	Deadline string      `json:"deadline" binding:"max=64"`
	Members  []memberReq `json:"members"  binding:"dive"`
}

type memberReq struct {
	ID     string `json:"id"`
	Name   string `json:"name" binding:"required,min=1,max=255"`
	Avatar string `json:"avatar"`
}

func (r createWorkspaceReq) toInput() workspace.CreateWorkspaceInput {
	members := make([]model.User, len(r.Members))
	for i, m := range r.Members {
		members[i] = model.User{ID: m.ID, Name: m.Name, Avatar: m.Avatar}
	}
	return workspace.CreateWorkspaceInput{
		Title:    r.Title,
		Budget:   r.Budget,
		Deadline: r.Deadline,
		Members:  members,
	}
}

type createRoomReq struct {
	WorkspaceID string `json:"-"`
	Title       string `json:"title" binding:"required,min=1,max=255"`
}

func (r createRoomReq) toInput() workspace.CreateRoomInput {
	return workspace.CreateRoomInput{WorkspaceID: r.WorkspaceID, Title: r.Title}
}

type postMessageReq struct {
	WorkspaceID string `json:"-"`
	RoomID      string `json:"room_id"`
	Content     string `json:"content" binding:"required,min=1"`
}

func (r postMessageReq) toInput() workspace.PostMessageInput {
	return workspace.PostMessageInput{
		WorkspaceID: r.WorkspaceID,
		RoomID:      r.RoomID,
		Content:     r.Content,
	}
}

type listMessagesReq struct {
	WorkspaceID string `form:"-"`
	RoomID      string `form:"room_id"`
	Limit       int    `form:"limit"`
}

func (r listMessagesReq) toInput() workspace.ListMessagesInput {
	limit := r.Limit
	if limit < 0 || limit > 500 {
		limit = 0
	}
	return workspace.ListMessagesInput{
		WorkspaceID: r.WorkspaceID,
		RoomID:      r.RoomID,
		Limit:       limit,
	}
}

type extractTasksReq struct {
	WorkspaceID string `json:"-"`
	RoomID      string `json:"room_id"`
}

func (r extractTasksReq) toInput() workspace.ExtractTasksInput {
	return workspace.ExtractTasksInput{WorkspaceID: r.WorkspaceID, RoomID: r.RoomID}
}

type createTaskReq struct {
	WorkspaceID string `json:"-"`
	RoomID      string `json:"room_id"`
	Title       string `json:"title"    binding:"required,min=1,max=255"`
	Assignee    string `json:"assignee" binding:"max=255"`
	DueDate     string `json:"due_date" binding:"max=64"`
	Priority    string `json:"priority" binding:"omitempty,oneof=low medium high"`
}

func (r createTaskReq) toInput() workspace.CreateTaskInput {
	return workspace.CreateTaskInput{
		WorkspaceID: r.WorkspaceID,
		RoomID:      r.RoomID,
		Title:       r.Title,
		Assignee:    r.Assignee,
		DueDate:     r.DueDate,
		Priority:    model.TaskPriority(r.Priority),
	}
}

type setTaskCompletionReq struct {
	TaskID    string `json:"-"`
	Completed *bool  `json:"completed" binding:"required"`
}

func (r setTaskCompletionReq) toInput() workspace.SetTaskCompletionInput {
	return workspace.SetTaskCompletionInput{
		TaskID:    r.TaskID,
		Completed: r.Completed != nil && *r.Completed,
	}
}

type addSpendingReq struct {
	WorkspaceID string `json:"-"`
	Amount      string `json:"amount"   binding:"required,min=1,max=64"`
	Category    string `json:"category" binding:"max=255"`
}

func (r addSpendingReq) toInput() workspace.AddSpendingInput {
	return workspace.AddSpendingInput{
		WorkspaceID: r.WorkspaceID,
		Amount:      r.Amount,
		Category:    r.Category,
	}
}

type insightsReq struct {
	WorkspaceID string `form:"-"`
	RoomID      string `form:"room_id"`
}

func (r insightsReq) toInput() workspace.InsightsInput {
	return workspace.InsightsInput{WorkspaceID: r.WorkspaceID, RoomID: r.RoomID}
}

// --- Response DTOs ---

type workspaceResp struct {
	ID       string       `json:"id"`
	Title    string       `json:"title"`
	Budget   string       `json:"budget,omitempty"`
	Deadline string       `json:"deadline,omitempty"`
	Progress *int         `json:"progress,omitempty"`
	Members  []model.User `json:"members,omitempty"`
}

func newWorkspaceResp(ws model.Workspace) workspaceResp {
	return workspaceResp{
		ID:       ws.ID,
		Title:    ws.Title,
		Budget:   ws.Budget,
		Deadline: ws.Deadline,
		Progress: ws.Progress,
		Members:  ws.Members,
	}
}

type createWorkspaceResp struct {
	Workspace workspaceResp `json:"workspace"`
}

func (h *handler) newCreateWorkspaceResp(out workspace.CreateWorkspaceOutput) createWorkspaceResp {
	return createWorkspaceResp{Workspace: newWorkspaceResp(out.Workspace)}
}

type listWorkspacesResp struct {
	Workspaces []workspaceResp `json:"workspaces"`
	Count      int             `json:"count"`
}

func (h *handler) newListWorkspacesResp(out workspace.ListWorkspacesOutput) listWorkspacesResp {
	workspaces := make([]workspaceResp, len(out.Workspaces))
	for i, ws := range out.Workspaces {
		workspaces[i] = newWorkspaceResp(ws)
	}
	return listWorkspacesResp{Workspaces: workspaces, Count: out.Count}
}

type detailWorkspaceResp struct {
	Workspace model.Workspace `json:"workspace"`
}

func (h *handler) newDetailWorkspaceResp(out workspace.DetailWorkspaceOutput) detailWorkspaceResp {
	return detailWorkspaceResp{Workspace: out.Workspace}
}

type roomResp struct {
	ID          string `json:"id"`
	WorkspaceID string `json:"workspace_id"`
	Title       string `json:"title"`
}

func newRoomResp(room model.Room) roomResp {
	return roomResp{ID: room.ID, WorkspaceID: room.WorkspaceID, Title: room.Title}
}

type createRoomResp struct {
	Room roomResp `json:"room"`
}

func (h *handler) newCreateRoomResp(out workspace.CreateRoomOutput) createRoomResp {
	return createRoomResp{Room: newRoomResp(out.Room)}
}

type listRoomsResp struct {
	Rooms []roomResp `json:"rooms"`
	Count int        `json:"count"`
}

func (h *handler) newListRoomsResp(out workspace.ListRoomsOutput) listRoomsResp {
	rooms := make([]roomResp, len(out.Rooms))
	for i, room := range out.Rooms {
		rooms[i] = newRoomResp(room)
	}
	return listRoomsResp{Rooms: rooms, Count: out.Count}
}

type messageResp struct {
	ID         string            `json:"id"`
	RoomID     string            `json:"room_id,omitempty"`
	SenderName string            `json:"sender_name"`
	Assistant  bool              `json:"assistant"`
	Content    string            `json:"content"`
	Timestamp  response.DateTime `json:"timestamp"`
}

func newMessageResp(msg model.Message) messageResp {
	return messageResp{
		ID:         msg.ID,
		RoomID:     msg.RoomID,
		SenderName: msg.Sender.Name(),
		Assistant:  msg.Sender.IsAssistant(),
		Content:    msg.Content,
		Timestamp:  response.DateTime(msg.Timestamp),
	}
}

type postMessageResp struct {
	Message messageResp `json:"message"`
	Reply   messageResp `json:"reply"`
}

func (h *handler) newPostMessageResp(out workspace.PostMessageOutput) postMessageResp {
	return postMessageResp{
		Message: newMessageResp(out.Message),
		Reply:   newMessageResp(out.Reply),
	}
}

type listMessagesResp struct {
	Messages []messageResp `json:"messages"`
	Count    int           `json:"count"`
}

func (h *handler) newListMessagesResp(out workspace.ListMessagesOutput) listMessagesResp {
	messages := make([]messageResp, len(out.Messages))
	for i, msg := range out.Messages {
		messages[i] = newMessageResp(msg)
	}
	return listMessagesResp{Messages: messages, Count: out.Count}
}

type tasksResp struct {
	Tasks []model.Task `json:"tasks"`
	Count int          `json:"count"`
}

type taskResp struct {
	Task model.Task `json:"task"`
}

type spendingResp struct {
	Entry model.SpendingEntry `json:"entry"`
}

type presetResp struct {
	ID    string               `json:"id"`
	Title string               `json:"title"`
	Icon  string               `json:"icon"`
	Data  dashboard.RenderData `json:"data"`
}

type dashboardResp struct {
	Presets []presetResp `json:"presets"`
}

func (h *handler) newDashboardResp(out workspace.DashboardOutput) dashboardResp {
	presets := make([]presetResp, len(out.Presets))
	for i, p := range out.Presets {
		presets[i] = presetResp{ID: p.ID, Title: p.Title, Icon: p.Icon, Data: p.Data}
	}
	return dashboardResp{Presets: presets}
}

type insightsResp struct {
	Insights []model.Insight `json:"insights"`
}
