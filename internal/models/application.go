package models

// ApplicationStatus tracks where an application is in the hiring funnel.
// Only StatusApplied is ever written by this service; later transitions
// (shortlisted, rejected, offered) arrive from outside and are displayed
// without validation.
type ApplicationStatus string

const (
	StatusApplied     ApplicationStatus = "applied"
	StatusShortlisted ApplicationStatus = "shortlisted"
	StatusRejected    ApplicationStatus = "rejected"
	StatusOffered     ApplicationStatus = "offered"
)

// Application is a student's claim against one opening. At most one may
// exist per (student, opening) pair.
type Application struct {
	ID        string            `bson:"_id,omitempty" json:"id"`
	StudentID string            `bson:"studentId" json:"student_id"`
	OpeningID string            `bson:"openingId" json:"opening_id"`
	Status    ApplicationStatus `bson:"status" json:"status"`
}
