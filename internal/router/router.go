package router

import (
	"encoding/json"
	"net/http"

	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"

	apiHandler "github.com/pr-poehali-dev/discipline-gaming-app/api/handler"
	"github.com/pr-poehali-dev/discipline-gaming-app/api/transport"
	"github.com/pr-poehali-dev/discipline-gaming-app/domain"
	"github.com/pr-poehali-dev/discipline-gaming-app/internal/middleware"
)

type Handlers struct {
	Task   *apiHandler.TaskHandler
	User   *apiHandler.UserHandler
	Health *apiHandler.HealthHandler
}

// New assembles the route table. Every route runs behind the CORS and
// identity middleware; preflight requests are answered before routing.
func New(handlers Handlers, identity func(fasthttp.RequestHandler) fasthttp.RequestHandler) fasthttp.RequestHandler {
	r := router.New()

	r.GET("/health", handlers.Health.Check)

	r.GET("/api/v1/tasks", identity(handlers.Task.GetTasks))
	r.POST("/api/v1/tasks", identity(handlers.Task.CreateTask))
	r.PUT("/api/v1/tasks", identity(handlers.Task.UpdateTask))
	r.DELETE("/api/v1/tasks", identity(handlers.Task.DeleteTask))

	r.GET("/api/v1/user", identity(handlers.User.GetUser))
	r.POST("/api/v1/user", identity(handlers.User.UpdateUser))

	r.MethodNotAllowed = respondEnvelope(http.StatusMethodNotAllowed,
		transport.NewError(string(domain.ErrCodeMethodNotAllowed), "Method not allowed", nil))
	r.NotFound = respondEnvelope(http.StatusNotFound,
		transport.NewError(string(domain.ErrCodeNotFound), "Not found", nil))

	return middleware.CORS(r.Handler)
}

func respondEnvelope(status int, envelope transport.Envelope) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		ctx.Response.Header.SetContentType("application/json")
		ctx.SetStatusCode(status)
		body, _ := json.Marshal(envelope)
		ctx.SetBody(body)
	}
}
