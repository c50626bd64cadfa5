package http

import (
	"github.com/gin-gonic/gin"

	"rima-workspace/pkg/response"
)

func (h *handler) CreateWorkspace(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateWorkspaceReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.CreateWorkspace(ctx, scopeFromRequest(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateWorkspace: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newCreateWorkspaceResp(output))
}

func (h *handler) ListWorkspaces(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ListWorkspaces(ctx, scopeFromRequest(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.ListWorkspaces: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newListWorkspacesResp(output))
}

func (h *handler) DetailWorkspace(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.DetailWorkspace(ctx, scopeFromRequest(c), c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.DetailWorkspace: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newDetailWorkspaceResp(output))
}

func (h *handler) CreateRoom(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateRoomReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.CreateRoom(ctx, scopeFromRequest(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateRoom: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newCreateRoomResp(output))
}

func (h *handler) ListRooms(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ListRooms(ctx, scopeFromRequest(c), c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.ListRooms: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newListRoomsResp(output))
}

func (h *handler) PostMessage(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processPostMessageReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.PostMessage(ctx, scopeFromRequest(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.PostMessage: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newPostMessageResp(output))
}

func (h *handler) ListMessages(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListMessagesReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ListMessages(ctx, scopeFromRequest(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ListMessages: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newListMessagesResp(output))
}

func (h *handler) ExtractTasks(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processExtractTasksReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ExtractTasks(ctx, scopeFromRequest(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ExtractTasks: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, tasksResp{Tasks: output.Tasks, Count: output.Count})
}

func (h *handler) CreateTask(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateTaskReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.CreateTask(ctx, scopeFromRequest(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateTask: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, taskResp{Task: output.Task})
}

func (h *handler) ListTasks(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ListTasks(ctx, scopeFromRequest(c), c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.ListTasks: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, tasksResp{Tasks: output.Tasks, Count: output.Count})
}

func (h *handler) SetTaskCompletion(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSetTaskCompletionReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.SetTaskCompletion(ctx, scopeFromRequest(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.SetTaskCompletion: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, taskResp{Task: output.Task})
}

func (h *handler) AddSpending(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAddSpendingReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.AddSpending(ctx, scopeFromRequest(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.AddSpending: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, spendingResp{Entry: output.Entry})
}

func (h *handler) Dashboard(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Dashboard(ctx, scopeFromRequest(c), c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.Dashboard: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newDashboardResp(output))
}

func (h *handler) Insights(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processInsightsReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Insights(ctx, scopeFromRequest(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Insights: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, insightsResp{Insights: output.Insights})
}
