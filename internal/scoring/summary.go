package scoring

import (
	"math"

	"flowx/internal/model"
)

// Summary aggregates the performance ledger for the trend view.
type Summary struct {
	Peak       int
	Average    int
	Count      int
	TotalTasks int
	HasData    bool
}

// Summarize returns the peak score, rounded mean score, record count and the
// number of tasks logged across records.
func Summarize(records []model.PerformanceRecord) Summary {
	if len(records) == 0 {
		return Summary{}
	}
	s := Summary{Count: len(records), HasData: true, Peak: records[0].Score}
	sum := 0
	for _, r := range records {
		if r.Score > s.Peak {
			s.Peak = r.Score
		}
		sum += r.Score
		s.TotalTasks += r.TotalTasks
	}
	s.Average = int(math.Round(float64(sum) / float64(len(records))))
	return s
}

// Breakdown counts a day's tasks per status.
type Breakdown struct {
	Done    int
	Late    int
	Missed  int
	Pending int
}

func BreakdownOf(tasks []model.Task) Breakdown {
	var b Breakdown
	for _, t := range tasks {
		switch t.Status {
		case model.StatusCompleted:
			b.Done++
		case model.StatusCompletedLate:
			b.Late++
		case model.StatusNotCompleted:
			b.Missed++
		default:
			b.Pending++
		}
	}
	return b
}
