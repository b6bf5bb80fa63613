package model

// PerformanceRecord is one ledger entry per calendar date.
type PerformanceRecord struct {
	Date           Date `json:"date"`
	Score          int  `json:"score"`
	CompletedTasks int  `json:"completedTasks"`
	TotalTasks     int  `json:"totalTasks"`
}
