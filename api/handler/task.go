package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/pr-poehali-dev/discipline-gaming-app/api/transport"
	"github.com/pr-poehali-dev/discipline-gaming-app/domain"
	"github.com/pr-poehali-dev/discipline-gaming-app/pkg/httpcontext"
	tasksUC "github.com/pr-poehali-dev/discipline-gaming-app/usecase/tasks"
)

type TaskHandler struct {
	baseHandler
	uc *tasksUC.UseCase
}

func NewTaskHandler(uc *tasksUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *TaskHandler {
	return &TaskHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary List tasks ordered by scheduled time
// @Tags tasks
// @Router /api/v1/tasks [get]
func (h *TaskHandler) GetTasks(ctx *fasthttp.RequestCtx) {
	userID := h.callerID(ctx)

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	tasks, err := h.uc.ListTasks(stdCtx, userID)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	if tasks == nil {
		tasks = []domain.Task{}
	}
	h.respondSuccess(ctx, http.StatusOK, transport.TaskListResponse{Tasks: tasks})
}

// @Summary Create task
// @Tags tasks
// @Router /api/v1/tasks [post]
func (h *TaskHandler) CreateTask(ctx *fasthttp.RequestCtx) {
	userID := h.callerID(ctx)

	var req transport.TaskCreateRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "invalid payload", nil))
		return
	}
	if req.Title == "" || req.Time == "" || req.Points == nil {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "title, time and points are required", nil))
		return
	}

	task := &domain.Task{
		UserID:              userID,
		Title:               req.Title,
		Time:                req.Time,
		Points:              *req.Points,
		Category:            req.Category,
		NotificationEnabled: notificationEnabled(req.NotificationEnabled),
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	created, err := h.uc.CreateTask(stdCtx, task)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, transport.TaskCreatedResponse{ID: created.ID})
}

// @Summary Update task (completion toggle or full overwrite)
// @Tags tasks
// @Router /api/v1/tasks [put]
func (h *TaskHandler) UpdateTask(ctx *fasthttp.RequestCtx) {
	userID := h.callerID(ctx)

	var req transport.TaskUpdateRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "invalid payload", nil))
		return
	}
	if req.ID == 0 {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "missing task id", nil))
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if req.Completed != nil {
		if _, err := h.uc.ToggleCompletion(stdCtx, userID, req.ID, *req.Completed); err != nil {
			h.respondError(ctx, err)
			return
		}
		h.respondSuccess(ctx, http.StatusOK, nil)
		return
	}

	// Full overwrite: absent fields clear to their zero values.
	task := &domain.Task{
		ID:                  req.ID,
		UserID:              userID,
		Title:               req.Title,
		Time:                req.Time,
		Points:              req.Points,
		Category:            req.Category,
		NotificationEnabled: notificationEnabled(req.NotificationEnabled),
	}
	if err := h.uc.OverwriteTask(stdCtx, task); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, nil)
}

// @Summary Delete task
// @Tags tasks
// @Router /api/v1/tasks [delete]
func (h *TaskHandler) DeleteTask(ctx *fasthttp.RequestCtx) {
	userID := h.callerID(ctx)

	taskID, err := strconv.ParseInt(string(ctx.QueryArgs().Peek("id")), 10, 64)
	if err != nil {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "missing task id", nil))
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.uc.DeleteTask(stdCtx, userID, taskID); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, nil)
}

func notificationEnabled(value *bool) bool {
	if value == nil {
		return true
	}
	return *value
}
