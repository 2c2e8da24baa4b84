package session

// GateResult tells the view layer what to do with a route: show a loading
// state, redirect, or render the requested content.
type GateResult struct {
	Loading    bool
	Render     bool
	RedirectTo string
	// From is the originally requested route, carried on a protected
	// redirect so the caller can return there after login.
	From string
}

// Protected gates routes that require a session. While the initial token
// resolution is pending it reports loading rather than redirecting.
func (m *Manager) Protected(route string) GateResult {
	if m.Loading() {
		return GateResult{Loading: true}
	}
	if !m.IsAuthenticated() {
		return GateResult{RedirectTo: RouteLogin, From: route}
	}
	return GateResult{Render: true}
}

// PublicOnly gates login/register style routes: an authenticated user is
// sent to the dashboard instead.
func (m *Manager) PublicOnly(route string) GateResult {
	if m.Loading() {
		return GateResult{Loading: true}
	}
	if m.IsAuthenticated() {
		return GateResult{RedirectTo: RouteDashboard}
	}
	return GateResult{Render: true}
}
