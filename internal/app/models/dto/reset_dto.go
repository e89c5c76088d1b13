package dto

// SweepResult summarizes an administrative batch monthly reset.
type SweepResult struct {
	ResetCount        int    `json:"resetCount" example:"12"`
	TotalCarryForward int    `json:"totalCarryForward" example:"180"`
	CurrentMonth      string `json:"currentMonth" example:"2024-02"`
}

// ResetStatistics reports monthly-reset state across all accounts.
type ResetStatistics struct {
	CurrentMonth                string  `json:"currentMonth" example:"2024-02"`
	TotalStudents               int64   `json:"totalStudents" example:"240"`
	StudentsNeedingReset        int64   `json:"studentsNeedingReset" example:"12"`
	StudentsWithCarryForward    int64   `json:"studentsWithCarryForward" example:"87"`
	StudentsWithMaxCarryForward int64   `json:"studentsWithMaxCarryForward" example:"9"`
	ResetPercentage             float64 `json:"resetPercentage" example:"5"`
}
