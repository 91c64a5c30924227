// Package authz is the pure role→permission gate. It does no I/O and holds
// no state; handlers re-check it at the point of mutation so a stale UI
// (e.g. after logout in another tab) cannot slip an action through.
package authz

import "github.com/placementhub/placementhub/backend/go-services/internal/models"

// Action names a gated portal operation.
type Action string

const (
	ActionCreateOpening       Action = "createOpening"
	ActionApply               Action = "apply"
	ActionViewOwnApplications Action = "viewOwnApplications"
	ActionListOpenings        Action = "listOpenings"
)

// CanPerform reports whether role may perform action. Unknown actions and
// unknown roles are denied: the gate is fail-closed.
func CanPerform(role models.Role, action Action) bool {
	switch action {
	case ActionListOpenings:
		return models.ValidRole(role)
	case ActionCreateOpening:
		return role == models.RolePlacement
	case ActionApply, ActionViewOwnApplications:
		return role == models.RoleStudent
	}
	return false
}
