package models

// Stage is the fine-grained pipeline position of a candidate.
type Stage string

const (
	StageNew                Stage = "new"
	StageContacted          Stage = "contacted"
	StageScreening          Stage = "screening"
	StageTechnicalInterview Stage = "technical_interview"
	StageManagerInterview   Stage = "manager_interview"
	StageInterview          Stage = "interview"
	StageOffer              Stage = "offer"
	StageOfferExtended      Stage = "offer_extended"
	StageOfferAccepted      Stage = "offer_accepted"
	StageHired              Stage = "hired"
	StageRejected           Stage = "rejected"
)

// AllStages lists every stage in pipeline order. Board views iterate this
// so that empty stages still render a column.
var AllStages = []Stage{
	StageNew,
	StageContacted,
	StageScreening,
	StageTechnicalInterview,
	StageManagerInterview,
	StageInterview,
	StageOffer,
	StageOfferExtended,
	StageOfferAccepted,
	StageHired,
	StageRejected,
}

var stageLabels = map[Stage]string{
	StageNew:                "New",
	StageContacted:          "Contacted",
	StageScreening:          "Screening",
	StageTechnicalInterview: "Technical Interview",
	StageManagerInterview:   "Manager Interview",
	StageInterview:          "Interview",
	StageOffer:              "Offer",
	StageOfferExtended:      "Offer Extended",
	StageOfferAccepted:      "Offer Accepted",
	StageHired:              "Hired",
	StageRejected:           "Rejected",
}

func (s Stage) Valid() bool {
	_, ok := stageLabels[s]
	return ok
}

// Label returns the display name for the stage ("technical_interview" ->
// "Technical Interview"). Unknown stages fall back to the raw value.
func (s Stage) Label() string {
	if label, ok := stageLabels[s]; ok {
		return label
	}
	return string(s)
}

// CandidateStatus is the named pool a candidate belongs to. A candidate is
// in exactly one pool at a time.
type CandidateStatus string

const (
	StatusLeads             CandidateStatus = "leads"
	StatusSourced           CandidateStatus = "sourced"
	StatusShortlist         CandidateStatus = "shortlist"
	StatusApplicationReview CandidateStatus = "application_review"
	StatusInterview         CandidateStatus = "interview"
	StatusOffer             CandidateStatus = "offer"
	StatusHired             CandidateStatus = "hired"
	StatusRejected          CandidateStatus = "rejected"
)

// StatusGroups maps a pool tab to the fine-grained stages it covers, used
// when a tab filters by stage group rather than by the status field itself.
var StatusGroups = map[CandidateStatus][]Stage{
	StatusApplicationReview: {StageNew, StageScreening},
	StatusInterview:         {StageTechnicalInterview, StageManagerInterview, StageInterview},
	StatusOffer:             {StageOfferExtended, StageOfferAccepted, StageOffer},
	StatusRejected:          {StageRejected},
}

func (s CandidateStatus) Valid() bool {
	switch s {
	case StatusLeads, StatusSourced, StatusShortlist, StatusApplicationReview,
		StatusInterview, StatusOffer, StatusHired, StatusRejected:
		return true
	}
	return false
}

// JobStatus is the publication state of a job posting.
type JobStatus string

const (
	JobPublished JobStatus = "Published"
	JobDraft     JobStatus = "Draft"
	JobArchived  JobStatus = "Archived"
)

// Priority is the hiring priority of a job.
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

var priorityRank = map[Priority]int{
	PriorityHigh:   3,
	PriorityMedium: 2,
	PriorityLow:    1,
}

// Rank returns a sortable weight, highest priority first. Unknown
// priorities rank below Low.
func (p Priority) Rank() int {
	return priorityRank[p]
}

// ApplicationStatus tracks a job-seeker's own application.
type ApplicationStatus string

const (
	AppApplied   ApplicationStatus = "Applied"
	AppScreening ApplicationStatus = "Screening"
	AppInterview ApplicationStatus = "Interview"
	AppOffer     ApplicationStatus = "Offer"
	AppRejected  ApplicationStatus = "Rejected"
)

func (s ApplicationStatus) Valid() bool {
	switch s {
	case AppApplied, AppScreening, AppInterview, AppOffer, AppRejected:
		return true
	}
	return false
}

// InterviewType enumerates the kinds of interview that can be scheduled.
type InterviewType string

const (
	InterviewHRScreening     InterviewType = "HR Screening"
	InterviewTechnical       InterviewType = "Technical Interview"
	InterviewTakeHome        InterviewType = "Take-home Assignment"
	InterviewCultureFit      InterviewType = "Culture Fit"
	InterviewPortfolioReview InterviewType = "Portfolio Review"
	InterviewSystemDesign    InterviewType = "System Design"
	InterviewBehavioral      InterviewType = "Behavioral Interview"
	InterviewFinal           InterviewType = "Final Interview"
	InterviewPairProgramming InterviewType = "Pair Programming"
	InterviewCaseStudy       InterviewType = "Case Study"
)

// InterviewTypes lists the selectable interview types in menu order.
var InterviewTypes = []InterviewType{
	InterviewHRScreening,
	InterviewTechnical,
	InterviewTakeHome,
	InterviewCultureFit,
	InterviewPortfolioReview,
	InterviewSystemDesign,
	InterviewBehavioral,
	InterviewFinal,
	InterviewPairProgramming,
	InterviewCaseStudy,
}

func (t InterviewType) Valid() bool {
	for _, known := range InterviewTypes {
		if t == known {
			return true
		}
	}
	return false
}

// InterviewStatus is the lifecycle state of a scheduled interview.
type InterviewStatus string

const (
	InterviewUpcoming  InterviewStatus = "upcoming"
	InterviewCompleted InterviewStatus = "completed"
	InterviewCancelled InterviewStatus = "cancelled"
)
