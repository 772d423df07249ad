package domain

import "time"

type ApplicationStatus string

const (
	StatusApplied            ApplicationStatus = "Applied"
	StatusReviewing          ApplicationStatus = "Reviewing"
	StatusShortlisted        ApplicationStatus = "Shortlisted"
	StatusInterviewScheduled ApplicationStatus = "Interview Scheduled"
	StatusSelected           ApplicationStatus = "Selected"
	StatusRejected           ApplicationStatus = "Rejected"
)

type Application struct {
	ID int64 `json:"id"`
	// 投递职位时 JobID 非零；报名宣讲会时 JobID 为零，AppliedFor 为公司名
	JobID       int64             `json:"jobId,omitempty"`
	AppliedFor  string            `json:"appliedFor"`
	Company     string            `json:"company"`
	ApplicantID string            `json:"applicantId,omitempty"`
	FullName    string            `json:"fullName"`
	Email       string            `json:"email"`
	Phone       string            `json:"phone"`
	Resume      string            `json:"resume,omitempty"`
	CoverLetter string            `json:"coverLetter,omitempty"`
	Experience  string            `json:"experience,omitempty"`
	Status      ApplicationStatus `json:"status"`
	AppliedAt   time.Time         `json:"appliedAt"`
}
