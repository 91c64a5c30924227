// Package view derives display state from already-fetched collections.
// Everything here is pure: no I/O, no recomputation from remote state.
package view

import "github.com/placementhub/placementhub/backend/go-services/internal/models"

// Summary is the dashboard header projection.
type Summary struct {
	OpeningCount     int         `json:"opening_count"`
	ApplicationCount int         `json:"application_count"`
	Role             models.Role `json:"role"`
}

// AppliedOpeningIDs builds the set of opening ids the given applications
// cover. Membership tests against the returned map are O(1), which is what
// renders the Applied/Apply affordance per opening without a scan.
func AppliedOpeningIDs(apps []models.Application) map[string]struct{} {
	out := make(map[string]struct{}, len(apps))
	for _, a := range apps {
		out[a.OpeningID] = struct{}{}
	}
	return out
}

// SummaryCounts projects the snapshot into the dashboard counters.
func SummaryCounts(openings []models.Opening, apps []models.Application, user models.User) Summary {
	return Summary{
		OpeningCount:     len(openings),
		ApplicationCount: len(apps),
		Role:             user.Role,
	}
}
