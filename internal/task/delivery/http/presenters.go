package http

import (
	"errors"
	"time"

	"flowx/internal/countdown"
	"flowx/internal/lifecycle"
	"flowx/internal/model"
	"flowx/internal/task"
)

// --- Request DTOs ---

type createReq struct {
	Name          string `json:"name"      binding:"required,max=255"`
	Date          string `json:"date"      binding:"required"`
	StartTime     string `json:"startTime" binding:"required"`
	Duration      int    `json:"duration"  binding:"required,gt=0"`
	Priority      string `json:"priority"  binding:"omitempty,oneof=Low Medium High"`
	Notes         string `json:"notes"     binding:"max=2000"`
	AlertTime     string `json:"alertTime" binding:"omitempty,oneof=at-start before-completion"`
	AllowConflict bool   `json:"allowConflict"`
}

func (r createReq) validate() error { return nil }

func (r createReq) toInput() task.CreateInput {
	return task.CreateInput{
		Name:          r.Name,
		Date:          model.Date(r.Date),
		StartTime:     model.TimeOfDay(r.StartTime),
		Duration:      r.Duration,
		Priority:      model.Priority(r.Priority),
		Notes:         r.Notes,
		AlertTime:     model.AlertMode(r.AlertTime),
		AllowConflict: r.AllowConflict,
	}
}

// ---

type listReq struct {
	Date   string `form:"date"`
	Status string `form:"status"`
}

func (r listReq) validate() error { return nil }

func (r listReq) toInput() task.ListInput {
	return task.ListInput{
		Date:   model.Date(r.Date),
		Status: model.Status(r.Status),
	}
}

// ---

type updateStatusReq struct {
	ID    string `json:"-"`
	Event string `json:"event" binding:"required"`
}

func (r updateStatusReq) validate() error {
	if !lifecycle.Event(r.Event).Valid() {
		return errors.New("event must be one of: done, failed")
	}
	return nil
}

func (r updateStatusReq) toInput() task.UpdateStatusInput {
	return task.UpdateStatusInput{ID: r.ID, Event: lifecycle.Event(r.Event)}
}

// ---

type confirmReq struct {
	ID        string `json:"-"`
	Completed *bool  `json:"completed" binding:"required"`
}

func (r confirmReq) validate() error { return nil }

func (r confirmReq) toInput() task.ConfirmVoiceReminderInput {
	return task.ConfirmVoiceReminderInput{ID: r.ID, Completed: *r.Completed}
}

// --- Response DTOs ---

type taskResp struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Date          string `json:"date"`
	StartTime     string `json:"startTime"`
	Duration      int    `json:"duration"`
	Priority      string `json:"priority"`
	Notes         string `json:"notes,omitempty"`
	Status        string `json:"status"`
	VoiceReminder string `json:"voiceReminder,omitempty"`
	AlertTime     string `json:"alertTime"`
}

func newTaskResp(t model.Task) taskResp {
	return taskResp{
		ID:            t.ID,
		Name:          t.Name,
		Date:          t.Date.String(),
		StartTime:     t.StartTime.String(),
		Duration:      t.Duration,
		Priority:      string(t.Priority),
		Notes:         t.Notes,
		Status:        string(t.Status),
		VoiceReminder: t.VoiceReminder,
		AlertTime:     string(t.AlertTime),
	}
}

func newTaskResps(tasks []model.Task) []taskResp {
	out := make([]taskResp, len(tasks))
	for i, t := range tasks {
		out[i] = newTaskResp(t)
	}
	return out
}

type windowResp struct {
	Start string `json:"start"`
	End   string `json:"end"`
	Extra bool   `json:"extra"`
}

type createResp struct {
	Task         taskResp    `json:"task"`
	Conflict     *windowResp `json:"conflict,omitempty"`
	CalendarLink string      `json:"calendarLink,omitempty"`
}

func (h *handler) newCreateResp(out task.CreateOutput) createResp {
	resp := createResp{Task: newTaskResp(out.Task), CalendarLink: out.CalendarLink}
	if out.Conflict != nil {
		resp.Conflict = &windowResp{
			Start: out.Conflict.Start.String(),
			End:   out.Conflict.End.String(),
			Extra: out.Conflict.Extra,
		}
	}
	return resp
}

type listResp struct {
	Tasks []taskResp `json:"tasks"`
	Total int        `json:"total"`
}

func (h *handler) newListResp(tasks []model.Task) listResp {
	return listResp{Tasks: newTaskResps(tasks), Total: len(tasks)}
}

type countdownResp struct {
	TaskID string    `json:"taskId"`
	Label  string    `json:"label"`
	Due    bool      `json:"due"`
	Phase  string    `json:"phase"`
	At     time.Time `json:"at"`
}

func (h *handler) newCountdownResp(st countdown.State) countdownResp {
	return countdownResp{
		TaskID: st.TaskID,
		Label:  st.Label,
		Due:    st.Due,
		Phase:  string(st.Phase),
		At:     st.At,
	}
}

type breakdownResp struct {
	Done    int `json:"done"`
	Late    int `json:"late"`
	Missed  int `json:"missed"`
	Pending int `json:"pending"`
}

type dayResp struct {
	Date      string        `json:"date"`
	Tasks     []taskResp    `json:"tasks"`
	Score     int           `json:"score"`
	Breakdown breakdownResp `json:"breakdown"`
	WorkDay   bool          `json:"workDay"`
	Feedback  string        `json:"feedback,omitempty"`
}

func (h *handler) newDayResp(out task.DayOutput) dayResp {
	return dayResp{
		Date:  out.Date.String(),
		Tasks: newTaskResps(out.Tasks),
		Score: out.Score,
		Breakdown: breakdownResp{
			Done:    out.Breakdown.Done,
			Late:    out.Breakdown.Late,
			Missed:  out.Breakdown.Missed,
			Pending: out.Breakdown.Pending,
		},
		WorkDay:  out.WorkDay,
		Feedback: out.Feedback,
	}
}

type recordResp struct {
	Date           string `json:"date"`
	Score          int    `json:"score"`
	CompletedTasks int    `json:"completedTasks"`
	TotalTasks     int    `json:"totalTasks"`
}

type summaryResp struct {
	Peak       int  `json:"peak"`
	Average    int  `json:"average"`
	Count      int  `json:"count"`
	TotalTasks int  `json:"totalTasks"`
	HasData    bool `json:"hasData"`
}

type performanceResp struct {
	Records []recordResp `json:"records"`
	Summary summaryResp  `json:"summary"`
}

func (h *handler) newPerformanceResp(out task.PerformanceOutput) performanceResp {
	records := make([]recordResp, len(out.Records))
	for i, r := range out.Records {
		records[i] = recordResp{
			Date:           r.Date.String(),
			Score:          r.Score,
			CompletedTasks: r.CompletedTasks,
			TotalTasks:     r.TotalTasks,
		}
	}
	return performanceResp{
		Records: records,
		Summary: summaryResp{
			Peak:       out.Summary.Peak,
			Average:    out.Summary.Average,
			Count:      out.Summary.Count,
			TotalTasks: out.Summary.TotalTasks,
			HasData:    out.Summary.HasData,
		},
	}
}
