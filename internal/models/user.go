package models

// Role classifies what a portal user is allowed to do.
type Role string

const (
	RoleStudent   Role = "student"
	RoleMentor    Role = "mentor"
	RolePlacement Role = "placement"
	RoleRecruiter Role = "recruiter"
)

// ValidRole reports whether r is one of the four portal roles.
func ValidRole(r Role) bool {
	switch r {
	case RoleStudent, RoleMentor, RolePlacement, RoleRecruiter:
		return true
	}
	return false
}

// User represents a portal user. The id is assigned by the store on first
// sign-in and is immutable afterwards; email is unique across all users.
type User struct {
	ID         string   `bson:"_id,omitempty" json:"id"`
	Email      string   `bson:"email" json:"email"`
	Name       string   `bson:"name" json:"name"`
	Role       Role     `bson:"role" json:"role"`
	Department string   `bson:"department,omitempty" json:"department,omitempty"`
	Skills     []string `bson:"skills" json:"skills"`
	ResumeURL  *string  `bson:"resumeUrl,omitempty" json:"resume_url"`
	IsActive   bool     `bson:"isActive" json:"is_active"`
}

// UserDraft carries the profile fields supplied at sign-in. It is used only
// when no user with the given email exists yet; for returning users the
// stored profile wins.
type UserDraft struct {
	Name       string `json:"name"`
	Role       Role   `json:"role"`
	Department string `json:"department,omitempty"`
}
