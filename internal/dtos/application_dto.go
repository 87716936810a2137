package dtos

// ApplicationRequest creates or updates a tracked application. The rules
// mirror the application form: required company/position/location, an
// enumerated type and status, optional but well-formed URL and contact
// email.
type ApplicationRequest struct {
	Company  string `json:"company" binding:"required,min=2"`
	Position string `json:"position" binding:"required,min=2"`
	Location string `json:"location" binding:"required,min=2"`
	Type     string `json:"type" binding:"required,oneof=Full-time Part-time Contract Internship Freelance"`
	Status   string `json:"status" binding:"required,oneof=Applied Screening Interview Offer Rejected"`

	// Date is the application date in YYYY-MM-DD form; empty means today.
	Date string `json:"date" binding:"omitempty,datetime=2006-01-02"`

	URL          string `json:"url" binding:"omitempty,url"`
	ContactEmail string `json:"contactEmail" binding:"omitempty,email"`
	Notes        string `json:"notes"`
}
