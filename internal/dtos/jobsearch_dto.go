package dtos

// JobSearchRequest runs a job-listing search. Every field is optional; an
// empty request matches all listings.
type JobSearchRequest struct {
	Keyword   string `json:"keyword"`
	Location  string `json:"location"`
	Type      string `json:"type" binding:"omitempty,oneof=all Full-time Part-time Contract Internship"`
	SalaryMin int    `json:"salaryMin" binding:"omitempty,gte=0"`
	SalaryMax int    `json:"salaryMax" binding:"omitempty,gte=0"`
	Level     string `json:"level" binding:"omitempty,oneof=all entry mid senior"`
}
