package session

import "eduhub-client/internal/models"

// Routes the session manager navigates to.
const (
	RouteLogin     = "/login"
	RouteDashboard = "/dashboard"
	RouteParent    = "/parent"
	RouteAdmin     = "/admin"
)

// Navigator is the view layer's navigation surface. The CLI prints the
// route change; tests record it.
type Navigator interface {
	Navigate(route string)
}

// LandingRoute picks the post-login destination for a role.
func LandingRoute(role string) string {
	switch role {
	case models.RoleParent:
		return RouteParent
	case models.RoleAdmin:
		return RouteAdmin
	default:
		return RouteDashboard
	}
}
