package routeguard

import (
	"slices"

	"github.com/creditdost/portal/core/session"
)

// Well-known page paths used in guard decisions.
const (
	LoginPath              = "/login"
	HomePath               = "/"
	AdminDashboardPath     = "/admin/dashboard"
	FranchiseDashboardPath = "/franchise/dashboard"
)

// Action is the kind of outcome a guard evaluation produces.
type Action int

const (
	// ShowLoading renders a waiting indicator while the session is still
	// bootstrapping. Redirecting here would flash the login page at
	// users whose token is about to resolve.
	ShowLoading Action = iota
	// Redirect sends the visitor to Decision.Target.
	Redirect
	// Render allows the guarded content to display.
	Render
)

func (a Action) String() string {
	switch a {
	case ShowLoading:
		return "show_loading"
	case Redirect:
		return "redirect"
	case Render:
		return "render"
	default:
		return "unknown"
	}
}

// Decision is the outcome of evaluating a guard. Target is set only for
// Redirect.
type Decision struct {
	Action Action
	Target string
}

// Evaluate decides access to a page restricted to the given roles. An
// empty role list means any authenticated user may enter.
//
// Anonymous visitors are sent to the login page; authenticated visitors
// with the wrong role are sent to their own role's landing page rather
// than an error, matching how the portal routes users who follow a
// stale link.
func Evaluate(state session.State, allowed ...session.Role) Decision {
	if state.Loading {
		return Decision{Action: ShowLoading}
	}

	if state.User == nil {
		return Decision{Action: Redirect, Target: LoginPath}
	}

	if len(allowed) > 0 && !slices.Contains(allowed, state.User.Role) {
		return Decision{Action: Redirect, Target: RoleHome(state.User.Role)}
	}

	return Decision{Action: Render}
}

// RoleHome maps a role to its landing page. Unknown roles land on the
// public home page.
func RoleHome(role session.Role) string {
	switch role {
	case session.RoleAdmin:
		return AdminDashboardPath
	case session.RoleFranchiseUser:
		return FranchiseDashboardPath
	default:
		return HomePath
	}
}
