package models

import "time"

// Opening is a posted internship/placement position. Fields are immutable
// after creation; there is no edit or delete path.
type Opening struct {
	ID                      string     `bson:"_id,omitempty" json:"id"`
	Title                   string     `bson:"title" json:"title"`
	Company                 string     `bson:"company" json:"company"`
	Department              string     `bson:"department,omitempty" json:"department,omitempty"`
	Description             string     `bson:"description,omitempty" json:"description,omitempty"`
	SkillsRequired          []string   `bson:"skillsRequired" json:"skills_required"`
	StipendMin              *float64   `bson:"stipendMin,omitempty" json:"stipend_min"`
	StipendMax              *float64   `bson:"stipendMax,omitempty" json:"stipend_max"`
	PlacementConversionProb float64    `bson:"placementConversionProb" json:"placement_conversion_prob"`
	Deadline                *time.Time `bson:"deadline,omitempty" json:"deadline"`
	CreatedBy               string     `bson:"createdBy,omitempty" json:"created_by,omitempty"`
}

// OpeningDraft is the form-shaped input for posting an opening.
// SkillsRequired is the raw comma-separated string as typed; the catalog
// service normalizes it before the opening is stored.
type OpeningDraft struct {
	Title                   string     `json:"title"`
	Company                 string     `json:"company"`
	Department              string     `json:"department,omitempty"`
	Description             string     `json:"description,omitempty"`
	SkillsRequired          string     `json:"skills_required,omitempty"`
	StipendMin              *float64   `json:"stipend_min,omitempty"`
	StipendMax              *float64   `json:"stipend_max,omitempty"`
	PlacementConversionProb *float64   `json:"placement_conversion_prob,omitempty"`
	Deadline                *time.Time `json:"deadline,omitempty"`
}
