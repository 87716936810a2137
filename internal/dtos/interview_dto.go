package dtos

// ScheduleInterviewRequest books a new interview slot. Type and duration
// are checked against the scheduler's enumerations by the service; the
// binding layer enforces shape only.
type ScheduleInterviewRequest struct {
	Company      string   `json:"company" binding:"required"`
	Position     string   `json:"position" binding:"required"`
	Type         string   `json:"type" binding:"required"`
	Date         string   `json:"date" binding:"required,datetime=2006-01-02"`
	Time         string   `json:"time" binding:"required,datetime=15:04"`
	Duration     int      `json:"duration" binding:"required"`
	Location     string   `json:"location" binding:"required"`
	Interviewers []string `json:"interviewers"`
	Notes        string   `json:"notes"`
	Reminder     bool     `json:"reminder"`
}
