package http

import (
	"context"
	"io"

	"github.com/gin-gonic/gin"

	"flowx/internal/model"
	"flowx/pkg/response"
)

// Create godoc
// @Summary     Schedule a task
// @Description Creates a pending task. A start time inside working hours is refused with 409 unless allowConflict is set.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Task data"
// @Success     200  {object} createResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     401  {object} response.Resp "Login required"
// @Failure     409  {object} response.Resp "Conflict - starts during working hours"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newCreateResp(output))
}

// List godoc
// @Summary     List tasks
// @Description Lists tasks, optionally for one date (sorted by start time) and one status.
// @Tags        Tasks
// @Produce     json
// @Param       date   query string false "Date (YYYY-MM-DD)"
// @Param       status query string false "Status (Pending, Completed, Completed Late, Not Completed)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	tasks, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(tasks))
}

// Detail godoc
// @Summary     Get a task
// @Tags        Tasks
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} taskResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	t, err := h.uc.Get(ctx, c.Param("id"))
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newTaskResp(t))
}

// UpdateStatus godoc
// @Summary     Resolve a task
// @Description Applies "done" or "failed" to a pending task. Completing at or after the end of the window records Completed Late.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id   path string          true "Task ID"
// @Param       body body updateStatusReq true "Status event"
// @Success     200 {object} taskResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Already resolved"
// @Router      /api/v1/tasks/{id}/status [PATCH]
func (h *handler) UpdateStatus(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateStatusReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	t, err := h.uc.UpdateStatus(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.UpdateStatus: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newTaskResp(t))
}

// Countdown godoc
// @Summary     Task countdown
// @Description Time left until the task starts, time left in its window, or Elapsed.
// @Tags        Tasks
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} countdownResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id}/countdown [GET]
func (h *handler) Countdown(c *gin.Context) {
	ctx := c.Request.Context()

	st, err := h.uc.Countdown(ctx, c.Param("id"))
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newCountdownResp(st))
}

// StreamCountdown godoc
// @Summary     Live task countdown
// @Description Server-sent "countdown" events every tick until the window has elapsed or the client disconnects.
// @Tags        Tasks
// @Produce     text/event-stream
// @Param       id path string true "Task ID"
// @Success     200 {object} countdownResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id}/countdown/stream [GET]
func (h *handler) StreamCountdown(c *gin.Context) {
	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	states, err := h.uc.WatchCountdown(ctx, c.Param("id"))
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	c.Stream(func(w io.Writer) bool {
		st, ok := <-states
		if !ok {
			return false
		}
		c.SSEvent("countdown", h.newCountdownResp(st))
		return !st.Due
	})
}

// VoiceReminder godoc
// @Summary     Generate a voice reminder
// @Description Asks the assistant for a short reminder script and stores it on the task.
// @Tags        Tasks
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} taskResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id}/voice-reminder [POST]
func (h *handler) VoiceReminder(c *gin.Context) {
	ctx := c.Request.Context()

	t, err := h.uc.VoiceReminder(ctx, c.Param("id"))
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newTaskResp(t))
}

// ConfirmVoiceReminder godoc
// @Summary     Answer a voice reminder
// @Description completed=true marks the task done, false marks it failed.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id   path string     true "Task ID"
// @Param       body body confirmReq true "Answer"
// @Success     200 {object} taskResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Already resolved"
// @Router      /api/v1/tasks/{id}/voice-reminder/confirm [POST]
func (h *handler) ConfirmVoiceReminder(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processConfirmReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	t, err := h.uc.ConfirmVoiceReminder(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.ConfirmVoiceReminder: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newTaskResp(t))
}

// Day godoc
// @Summary     Day view
// @Description Tasks of a date with its efficiency score, status breakdown, work/rest day flag and feedback.
// @Tags        Days
// @Produce     json
// @Param       date path string true "Date (YYYY-MM-DD)"
// @Success     200 {object} dayResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/days/{date} [GET]
func (h *handler) Day(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.Day(ctx, model.Date(c.Param("date")))
	if err != nil {
		h.l.Errorf(ctx, "uc.Day: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDayResp(out))
}

// Performance godoc
// @Summary     Performance ledger
// @Description Daily scores ascending by date, with peak and average.
// @Tags        Days
// @Produce     json
// @Success     200 {object} performanceResp
// @Router      /api/v1/performance [GET]
func (h *handler) Performance(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.Performance(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Performance: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newPerformanceResp(out))
}
