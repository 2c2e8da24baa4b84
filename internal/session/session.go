package session

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"eduhub-client/internal/models"
)

// AuthAPI is the slice of the REST client the session manager needs.
type AuthAPI interface {
	Login(ctx context.Context, creds models.Credentials) (*models.AuthResponse, error)
	Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error)
	GoogleAuth(ctx context.Context, cred models.GoogleCredential) (*models.AuthResponse, error)
	Me(ctx context.Context) (*models.User, error)
}

// Result is what login/register hand back to the view layer. Failures
// carry a user-visible message and leave the session untouched.
type Result struct {
	Success bool
	Message string
}

// Manager is the single source of truth for who is logged in. Constructed
// once at startup and injected into every consumer; all session mutations
// go through its methods.
type Manager struct {
	auth  AuthAPI
	store Store
	nav   Navigator
	log   zerolog.Logger

	// revokeAutoSignIn disables the third-party provider's auto-sign-in
	// on logout, when such a hook is wired.
	revokeAutoSignIn func()

	mu      sync.Mutex
	token   string
	user    *models.User
	loading bool
}

func NewManager(auth AuthAPI, store Store, nav Navigator, log zerolog.Logger) *Manager {
	m := &Manager{
		auth:  auth,
		store: store,
		nav:   nav,
		log:   log,
	}
	tok, err := store.Token()
	if err != nil {
		log.Warn().Err(err).Msg("could not read persisted token")
		return m
	}
	m.token = tok
	m.loading = tok != ""
	return m
}

// SetAutoSignInRevoker wires the third-party auto-sign-in teardown hook.
func (m *Manager) SetAutoSignInRevoker(fn func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.revokeAutoSignIn = fn
}

// Token returns the current bearer token ("" when logged out). Passed to
// the API client as its token source.
func (m *Manager) Token() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token
}

func (m *Manager) IsAuthenticated() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.user != nil
}

func (m *Manager) Loading() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loading
}

// CurrentUser returns a copy of the resolved profile, or nil.
func (m *Manager) CurrentUser() *models.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.user == nil {
		return nil
	}
	u := *m.user
	return &u
}

// Load resolves the persisted token into a full session on startup. The
// role claim is decoded locally, the profile is fetched, and the decoded
// role wins over whatever the profile says. Any failure tears the session
// down; a half-populated session is never left behind.
func (m *Manager) Load(ctx context.Context) {
	m.mu.Lock()
	tok := m.token
	m.mu.Unlock()

	if tok == "" {
		m.setLoading(false)
		return
	}

	claims, err := DecodeClaims(tok)
	if err != nil {
		m.log.Info().Err(err).Msg("stored token unusable, logging out")
		m.Logout()
		m.setLoading(false)
		return
	}

	user, err := m.auth.Me(ctx)
	if err != nil {
		// Unreachable server and rejected token land in the same place.
		m.log.Info().Err(err).Msg("profile fetch failed, logging out")
		m.Logout()
		m.setLoading(false)
		return
	}

	user.Role = claims.Role

	m.mu.Lock()
	m.user = user
	m.loading = false
	m.mu.Unlock()
}

// Login exchanges credentials for a session. On success the token is
// persisted, state is set, and the user lands on their role's home route.
// On failure nothing is mutated.
func (m *Manager) Login(ctx context.Context, creds models.Credentials) Result {
	resp, err := m.auth.Login(ctx, creds)
	if err != nil {
		return Result{Message: err.Error()}
	}
	return m.completeLogin(resp)
}

// LoginWithGoogle forwards the opaque provider credential. Same contract
// as Login.
func (m *Manager) LoginWithGoogle(ctx context.Context, cred models.GoogleCredential) Result {
	resp, err := m.auth.GoogleAuth(ctx, cred)
	if err != nil {
		return Result{Message: err.Error()}
	}
	return m.completeLogin(resp)
}

func (m *Manager) Register(ctx context.Context, req models.RegisterRequest) Result {
	resp, err := m.auth.Register(ctx, req)
	if err != nil {
		return Result{Message: err.Error()}
	}
	if resp.User == nil || resp.Token == "" {
		return Result{Message: "Malformed server response"}
	}
	if err := m.store.Save(resp.Token); err != nil {
		return Result{Message: err.Error()}
	}

	m.mu.Lock()
	m.token = resp.Token
	m.user = resp.User
	m.mu.Unlock()

	m.nav.Navigate(RouteDashboard)
	return Result{Success: true}
}

func (m *Manager) completeLogin(resp *models.AuthResponse) Result {
	if resp.User == nil || resp.Token == "" {
		return Result{Message: "Malformed server response"}
	}
	if err := m.store.Save(resp.Token); err != nil {
		return Result{Message: err.Error()}
	}

	m.mu.Lock()
	m.token = resp.Token
	m.user = resp.User
	m.mu.Unlock()

	m.nav.Navigate(LandingRoute(resp.User.Role))
	return Result{Success: true}
}

// Logout clears the persisted token and in-memory state, revokes
// third-party auto-sign-in, and navigates to the login route. Idempotent.
func (m *Manager) Logout() {
	m.mu.Lock()
	wasLoggedIn := m.token != "" || m.user != nil
	m.token = ""
	m.user = nil
	revoke := m.revokeAutoSignIn
	m.mu.Unlock()

	if wasLoggedIn {
		if err := m.store.Clear(); err != nil {
			m.log.Warn().Err(err).Msg("could not clear persisted token")
		}
		if revoke != nil {
			revoke()
		}
	}

	m.nav.Navigate(RouteLogin)
}

// HandleUnauthorized is the 401 interceptor target. A 401 on an
// unauthenticated client (a failed login attempt) is not a teardown.
func (m *Manager) HandleUnauthorized() {
	if !m.IsAuthenticated() {
		return
	}
	m.log.Info().Msg("session invalidated by server, logging out")
	m.Logout()
}

// UserPatch is a shallow partial-profile update. Nil fields are left
// alone.
type UserPatch struct {
	FirstName              *string
	LastName               *string
	Email                  *string
	AvatarURL              *string
	Bio                    *string
	HasCompletedOnboarding *bool
}

// UpdateUser merges the patch into the current profile after an edit.
// The token is untouched; a logged-out session ignores the patch.
func (m *Manager) UpdateUser(patch UserPatch) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.user == nil {
		return
	}
	if patch.FirstName != nil {
		m.user.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		m.user.LastName = *patch.LastName
	}
	if patch.Email != nil {
		m.user.Email = *patch.Email
	}
	if patch.AvatarURL != nil {
		m.user.AvatarURL = *patch.AvatarURL
	}
	if patch.Bio != nil {
		m.user.Bio = *patch.Bio
	}
	if patch.HasCompletedOnboarding != nil {
		m.user.HasCompletedOnboarding = *patch.HasCompletedOnboarding
	}
}

func (m *Manager) setLoading(v bool) {
	m.mu.Lock()
	m.loading = v
	m.mu.Unlock()
}
