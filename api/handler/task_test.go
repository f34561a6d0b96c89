package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"

	"github.com/pr-poehali-dev/discipline-gaming-app/api/transport"
	"github.com/pr-poehali-dev/discipline-gaming-app/domain"
	tasksUC "github.com/pr-poehali-dev/discipline-gaming-app/usecase/tasks"
)

func newTaskHandler(repo *fakeTaskRepo) *TaskHandler {
	return NewTaskHandler(tasksUC.New(repo, nil, nil), nil, nil)
}

func newRequestCtx(method, uri string, body []byte) *fasthttp.RequestCtx {
	ctx := &fasthttp.RequestCtx{}
	ctx.Request.Header.SetMethod(method)
	ctx.Request.SetRequestURI(uri)
	if body != nil {
		ctx.Request.SetBody(body)
	}
	return ctx
}

func decodeEnvelope(t *testing.T, ctx *fasthttp.RequestCtx) map[string]json.RawMessage {
	t.Helper()
	var envelope map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &envelope))
	return envelope
}

func TestGetTasksEmptyList(t *testing.T) {
	h := newTaskHandler(newFakeTaskRepo())

	ctx := newRequestCtx(http.MethodGet, "/api/v1/tasks", nil)
	ctx.Request.Header.Set("X-User-Id", "7")
	h.GetTasks(ctx)

	require.Equal(t, http.StatusOK, ctx.Response.StatusCode())
	require.Equal(t, "application/json", string(ctx.Response.Header.ContentType()))

	envelope := decodeEnvelope(t, ctx)
	var data transport.TaskListResponse
	require.NoError(t, json.Unmarshal(envelope["data"], &data))
	require.NotNil(t, data.Tasks)
	require.Empty(t, data.Tasks)
}

func TestGetTasksOrderedByTime(t *testing.T) {
	repo := newFakeTaskRepo()
	h := newTaskHandler(repo)

	for _, task := range []domain.Task{
		{UserID: "7", Title: "Ужин", Time: "19:00", Points: 5},
		{UserID: "7", Title: "Зарядка", Time: "07:00", Points: 10},
		{UserID: "7", Title: "Обед", Time: "13:00", Points: 5},
		{UserID: "other", Title: "Чужое", Time: "06:00", Points: 1},
	} {
		copied := task
		_, err := repo.Create(context.Background(), &copied)
		require.NoError(t, err)
	}

	ctx := newRequestCtx(http.MethodGet, "/api/v1/tasks", nil)
	ctx.Request.Header.Set("X-User-Id", "7")
	h.GetTasks(ctx)

	envelope := decodeEnvelope(t, ctx)
	var data transport.TaskListResponse
	require.NoError(t, json.Unmarshal(envelope["data"], &data))
	require.Len(t, data.Tasks, 3)
	require.Equal(t, []string{"07:00", "13:00", "19:00"},
		[]string{data.Tasks[0].Time, data.Tasks[1].Time, data.Tasks[2].Time})
}

func TestCreateTaskReturnsGeneratedID(t *testing.T) {
	repo := newFakeTaskRepo()
	h := newTaskHandler(repo)

	body := []byte(`{"title":"Зарядка","time":"07:00","points":10}`)
	ctx := newRequestCtx(http.MethodPost, "/api/v1/tasks", body)
	ctx.Request.Header.Set("X-User-Id", "7")
	h.CreateTask(ctx)

	require.Equal(t, http.StatusCreated, ctx.Response.StatusCode())

	envelope := decodeEnvelope(t, ctx)
	var data transport.TaskCreatedResponse
	require.NoError(t, json.Unmarshal(envelope["data"], &data))
	require.NotZero(t, data.ID)

	created := repo.tasks[data.ID]
	require.NotNil(t, created)
	require.Equal(t, domain.DefaultCategory, created.Category)
	require.True(t, created.NotificationEnabled)
	require.False(t, created.Completed)
}

func TestCreateTaskMissingRequiredFields(t *testing.T) {
	h := newTaskHandler(newFakeTaskRepo())

	for name, body := range map[string]string{
		"no title":  `{"time":"07:00","points":10}`,
		"no time":   `{"title":"Зарядка","points":10}`,
		"no points": `{"title":"Зарядка","time":"07:00"}`,
		"not json":  `{{{`,
	} {
		ctx := newRequestCtx(http.MethodPost, "/api/v1/tasks", []byte(body))
		h.CreateTask(ctx)
		require.Equal(t, http.StatusBadRequest, ctx.Response.StatusCode(), name)
	}
}

func TestCreateTaskZeroPointsAllowed(t *testing.T) {
	repo := newFakeTaskRepo()
	h := newTaskHandler(repo)

	body := []byte(`{"title":"Прогулка","time":"18:00","points":0}`)
	ctx := newRequestCtx(http.MethodPost, "/api/v1/tasks", body)
	h.CreateTask(ctx)

	require.Equal(t, http.StatusCreated, ctx.Response.StatusCode())
}

func TestUpdateTaskToggleAdjustsBalance(t *testing.T) {
	repo := newFakeTaskRepo()
	h := newTaskHandler(repo)

	task := &domain.Task{UserID: "7", Title: "Зарядка", Time: "07:00", Points: 25}
	_, err := repo.Create(context.Background(), task)
	require.NoError(t, err)

	body := []byte(`{"id":1,"completed":true}`)
	ctx := newRequestCtx(http.MethodPut, "/api/v1/tasks", body)
	ctx.Request.Header.Set("X-User-Id", "7")
	h.UpdateTask(ctx)

	require.Equal(t, http.StatusOK, ctx.Response.StatusCode())
	require.Equal(t, 25, repo.balances["7"])
	require.True(t, repo.tasks[1].Completed)

	body = []byte(`{"id":1,"completed":false}`)
	ctx = newRequestCtx(http.MethodPut, "/api/v1/tasks", body)
	ctx.Request.Header.Set("X-User-Id", "7")
	h.UpdateTask(ctx)

	require.Equal(t, http.StatusOK, ctx.Response.StatusCode())
	require.Equal(t, 0, repo.balances["7"])
	require.False(t, repo.tasks[1].Completed)
}

func TestUpdateTaskForeignOwnerAffectsZeroRows(t *testing.T) {
	repo := newFakeTaskRepo()
	h := newTaskHandler(repo)

	task := &domain.Task{UserID: "owner", Title: "Зарядка", Time: "07:00", Points: 25}
	_, err := repo.Create(context.Background(), task)
	require.NoError(t, err)

	body := []byte(`{"id":1,"completed":true}`)
	ctx := newRequestCtx(http.MethodPut, "/api/v1/tasks", body)
	ctx.Request.Header.Set("X-User-Id", "intruder")
	h.UpdateTask(ctx)

	require.Equal(t, http.StatusOK, ctx.Response.StatusCode())
	require.False(t, repo.tasks[1].Completed)
	require.Equal(t, 0, repo.balances["owner"])
}

func TestUpdateTaskOverwriteClearsAbsentFields(t *testing.T) {
	repo := newFakeTaskRepo()
	h := newTaskHandler(repo)

	task := &domain.Task{UserID: "7", Title: "Зарядка", Time: "07:00", Points: 25, Category: "Спорт"}
	_, err := repo.Create(context.Background(), task)
	require.NoError(t, err)

	// no completed key: full overwrite, unspecified fields are cleared
	body := []byte(`{"id":1,"title":"Пробежка","time":"08:00","points":30}`)
	ctx := newRequestCtx(http.MethodPut, "/api/v1/tasks", body)
	ctx.Request.Header.Set("X-User-Id", "7")
	h.UpdateTask(ctx)

	require.Equal(t, http.StatusOK, ctx.Response.StatusCode())
	updated := repo.tasks[1]
	require.Equal(t, "Пробежка", updated.Title)
	require.Equal(t, "08:00", updated.Time)
	require.Equal(t, 30, updated.Points)
	require.Equal(t, "", updated.Category)
	require.True(t, updated.NotificationEnabled)
}

func TestUpdateTaskMissingID(t *testing.T) {
	h := newTaskHandler(newFakeTaskRepo())

	ctx := newRequestCtx(http.MethodPut, "/api/v1/tasks", []byte(`{"completed":true}`))
	h.UpdateTask(ctx)

	require.Equal(t, http.StatusBadRequest, ctx.Response.StatusCode())
}

func TestDeleteTask(t *testing.T) {
	repo := newFakeTaskRepo()
	h := newTaskHandler(repo)

	task := &domain.Task{UserID: "7", Title: "Зарядка", Time: "07:00", Points: 25}
	_, err := repo.Create(context.Background(), task)
	require.NoError(t, err)

	ctx := newRequestCtx(http.MethodDelete, "/api/v1/tasks?id=1", nil)
	ctx.Request.Header.Set("X-User-Id", "7")
	h.DeleteTask(ctx)

	require.Equal(t, http.StatusOK, ctx.Response.StatusCode())
	require.Empty(t, repo.tasks)
}

func TestDeleteNonexistentTaskIsSuccess(t *testing.T) {
	h := newTaskHandler(newFakeTaskRepo())

	ctx := newRequestCtx(http.MethodDelete, "/api/v1/tasks?id=999", nil)
	ctx.Request.Header.Set("X-User-Id", "7")
	h.DeleteTask(ctx)

	require.Equal(t, http.StatusOK, ctx.Response.StatusCode())
}

func TestDeleteTaskInvalidID(t *testing.T) {
	h := newTaskHandler(newFakeTaskRepo())

	ctx := newRequestCtx(http.MethodDelete, "/api/v1/tasks", nil)
	h.DeleteTask(ctx)

	require.Equal(t, http.StatusBadRequest, ctx.Response.StatusCode())
}

func TestMissingIdentityHeaderDefaultsToFixedUser(t *testing.T) {
	repo := newFakeTaskRepo()
	h := newTaskHandler(repo)

	body := []byte(`{"title":"Зарядка","time":"07:00","points":10}`)
	ctx := newRequestCtx(http.MethodPost, "/api/v1/tasks", body)
	h.CreateTask(ctx)

	require.Equal(t, http.StatusCreated, ctx.Response.StatusCode())
	require.Equal(t, defaultCallerID, repo.tasks[1].UserID)
}
