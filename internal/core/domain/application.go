package domain

import "time"

// Application is a job seeker's submission against a posting.
type Application struct {
	ID          int64     `json:"id,omitempty"`
	JobID       int64     `json:"job_id"`
	ApplicantID int64     `json:"applicant_id,omitempty"`
	ResumeID    int64     `json:"resume_id,omitempty"`
	CoverLetter string    `json:"cover_letter,omitempty"`
	Status      string    `json:"status,omitempty"`
	AppliedAt   time.Time `json:"applied_at,omitzero"`
}

// Resume is the metadata record the backend keeps for an uploaded file.
// Analysis results are backend-defined and returned as a raw envelope.
type Resume struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"user_id,omitempty"`
	FileName   string    `json:"file_name,omitempty"`
	UploadedAt time.Time `json:"uploaded_at,omitzero"`
}

// RatingSummary is the aggregate the backend computes per company.
type RatingSummary struct {
	CompanyID     int64   `json:"company_id"`
	AverageRating float64 `json:"average_rating"`
	ReviewCount   int     `json:"review_count"`
}

// Review is a company review left by a user.
type Review struct {
	ID        int64     `json:"id,omitempty"`
	CompanyID int64     `json:"company_id"`
	UserID    int64     `json:"user_id,omitempty"`
	Rating    int       `json:"rating"`
	Title     string    `json:"title,omitempty"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at,omitzero"`
}
