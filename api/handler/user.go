package handler

import (
	"encoding/json"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/pr-poehali-dev/discipline-gaming-app/api/transport"
	"github.com/pr-poehali-dev/discipline-gaming-app/domain"
	"github.com/pr-poehali-dev/discipline-gaming-app/pkg/httpcontext"
	usersUC "github.com/pr-poehali-dev/discipline-gaming-app/usecase/users"
)

type UserHandler struct {
	baseHandler
	uc *usersUC.UseCase
}

func NewUserHandler(uc *usersUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *UserHandler {
	return &UserHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary Fetch-or-create profile with achievement set
// @Tags user
// @Router /api/v1/user [get]
func (h *UserHandler) GetUser(ctx *fasthttp.RequestCtx) {
	userID := h.callerID(ctx)

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	profile, err := h.uc.GetProfile(stdCtx, userID)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	if profile.Achievements == nil {
		profile.Achievements = []domain.Achievement{}
	}
	h.respondSuccess(ctx, http.StatusOK, profile)
}

// @Summary Seed the user's default task set
// @Tags user
// @Router /api/v1/user [post]
func (h *UserHandler) UpdateUser(ctx *fasthttp.RequestCtx) {
	userID := h.callerID(ctx)

	var req transport.UserUpdateRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "invalid payload", nil))
		return
	}

	if len(req.InitializeTasks) == 0 {
		h.respondSuccess(ctx, http.StatusOK, transport.SeedResponse{Inserted: 0})
		return
	}

	seed := make([]domain.Task, 0, len(req.InitializeTasks))
	for _, t := range req.InitializeTasks {
		if t.Title == "" || t.Time == "" || t.Points == nil {
			h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "title, time and points are required", nil))
			return
		}
		seed = append(seed, domain.Task{
			UserID:              userID,
			Title:               t.Title,
			Time:                t.Time,
			Points:              *t.Points,
			Category:            t.Category,
			NotificationEnabled: notificationEnabled(t.NotificationEnabled),
		})
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	inserted, err := h.uc.SeedTasks(stdCtx, userID, seed)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, transport.SeedResponse{Inserted: inserted})
}
