// Package models defines the domain entities of the recruiting dashboard.
// All entities live in in-memory stores seeded with sample data; there is
// no persistence layer, so no ORM tags appear here.
package models

import "time"

// Candidate is a recruiter-side candidate record moving through the
// hiring pipeline.
type Candidate struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Position string `json:"position"`
	Initials string `json:"initials"`
	Color    string `json:"color"`

	Status CandidateStatus `json:"status"`
	Stage  Stage           `json:"stage"`

	// JobID ties per-job candidates to the posting they applied for;
	// empty for the global leads and sourced pools.
	JobID string `json:"jobId,omitempty"`

	// Source is free-text provenance: "AI Match", "LinkedIn", "Referral",
	// "Sourced (LinkedIn)" and similar.
	Source string `json:"source"`

	// MatchScore is only meaningful when AIMatch is true; candidates with
	// AIMatch=false carry a score of 0 and are excluded from score filters.
	AIMatch    bool `json:"aiMatch"`
	MatchScore int  `json:"matchScore"`

	Location   string   `json:"location"`
	Experience string   `json:"experience"`
	Education  string   `json:"education,omitempty"`
	Company    string   `json:"company,omitempty"`
	Skills     []string `json:"skills"`

	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	ProfileLink string `json:"profileLink,omitempty"`
	Resume      bool   `json:"resume,omitempty"`
	CoverLetter bool   `json:"coverLetter,omitempty"`

	// Free-text audit trail, not structured timestamps.
	LastActivity     string `json:"lastActivity"`
	LastActivityDate string `json:"lastActivityDate"`
}

// JobCandidateCounts aggregates a job's candidates per pipeline phase.
type JobCandidateCounts struct {
	Total     int `json:"total"`
	New       int `json:"new"`
	Screening int `json:"screening"`
	Interview int `json:"interview"`
	Offer     int `json:"offer"`
	Rejected  int `json:"rejected"`
}

// Job is an open position being hired for.
type Job struct {
	ID            string             `json:"id"`
	Title         string             `json:"title"`
	Department    string             `json:"department"`
	Type          string             `json:"type"`
	Location      string             `json:"location"`
	Status        JobStatus          `json:"status"`
	Candidates    JobCandidateCounts `json:"candidates"`
	Progress      int                `json:"progress"`
	HiringManager string             `json:"hiringManager"`
	DaysActive    int                `json:"daysActive"`
	Priority      Priority           `json:"priority"`
}

// Application is a job-seeker's own tracked application, distinct from the
// recruiter-side Candidate.
type Application struct {
	ID           string            `json:"id"`
	Company      string            `json:"company"`
	Position     string            `json:"position"`
	Status       ApplicationStatus `json:"status"`
	Date         time.Time         `json:"date"`
	Location     string            `json:"location"`
	Type         string            `json:"type"`
	URL          string            `json:"url,omitempty"`
	ContactEmail string            `json:"contactEmail,omitempty"`
	Notes        string            `json:"notes,omitempty"`
}

// JobListing is an external job posting surfaced by the job-seeker's
// search, distinct from the recruiter-side Job being hired for.
type JobListing struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Company  string `json:"company"`
	Location string `json:"location"`
	Type     string `json:"type"`

	// Salary is the advertised range as free text, e.g. "$120,000 - $150,000".
	Salary string `json:"salary"`
	// Posted is relative display text, "3 days ago".
	Posted string `json:"posted"`

	Description  string   `json:"description"`
	Requirements []string `json:"requirements"`

	Rating  float64 `json:"rating"`
	Reviews int     `json:"reviews"`
}

// Interview is a scheduled interview slot.
type Interview struct {
	ID           string          `json:"id"`
	Company      string          `json:"company"`
	Position     string          `json:"position"`
	Type         InterviewType   `json:"type"`
	Date         time.Time       `json:"date"`
	Time         string          `json:"time"`
	Duration     int             `json:"duration"`
	Location     string          `json:"location"`
	Interviewers []string        `json:"interviewers"`
	Notes        string          `json:"notes"`
	Reminder     bool            `json:"reminder"`
	Status       InterviewStatus `json:"status"`
}

// Document is an uploaded (simulated) file such as a resume or cover letter.
type Document struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Type     string    `json:"type"`
	Size     int64     `json:"size"`
	SizeText string    `json:"sizeText"`
	Category string    `json:"category"`
	Date     time.Time `json:"date"`
}

// DashboardMonth is one month of aggregate hiring activity for the
// dashboard charts.
type DashboardMonth struct {
	Month        string `json:"month"`
	Applications int    `json:"applications"`
	Interviews   int    `json:"interviews"`
	Offers       int    `json:"offers"`
}

// StatusSlice is one wedge of the application status distribution chart.
type StatusSlice struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}
