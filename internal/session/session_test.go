package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"eduhub-client/internal/models"
)

type fakeAuth struct {
	loginResp    *models.AuthResponse
	loginErr     error
	registerResp *models.AuthResponse
	registerErr  error
	googleResp   *models.AuthResponse
	googleErr    error
	meUser       *models.User
	meErr        error

	loginCalls int
	meCalls    int
}

func (f *fakeAuth) Login(ctx context.Context, creds models.Credentials) (*models.AuthResponse, error) {
	f.loginCalls++
	return f.loginResp, f.loginErr
}

func (f *fakeAuth) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	return f.registerResp, f.registerErr
}

func (f *fakeAuth) GoogleAuth(ctx context.Context, cred models.GoogleCredential) (*models.AuthResponse, error) {
	return f.googleResp, f.googleErr
}

func (f *fakeAuth) Me(ctx context.Context) (*models.User, error) {
	f.meCalls++
	return f.meUser, f.meErr
}

type recordNav struct {
	routes []string
}

func (n *recordNav) Navigate(route string) { n.routes = append(n.routes, route) }

func (n *recordNav) last() string {
	if len(n.routes) == 0 {
		return ""
	}
	return n.routes[len(n.routes)-1]
}

func signToken(t *testing.T, role string, userID int64, exp time.Time) string {
	t.Helper()
	claims := jwt.MapClaims{
		"user_id": userID,
		"role":    role,
		"exp":     exp.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func newTestManager(auth *fakeAuth) (*Manager, *MemoryStore, *recordNav) {
	store := NewMemoryStore()
	nav := &recordNav{}
	mgr := NewManager(auth, store, nav, zerolog.Nop())
	return mgr, store, nav
}

func TestLogin_HappyPath(t *testing.T) {
	auth := &fakeAuth{
		loginResp: &models.AuthResponse{
			Token: "T",
			User:  &models.User{UserID: 1, Role: models.RoleStudent, Email: "a@b.com"},
		},
	}
	mgr, store, nav := newTestManager(auth)

	res := mgr.Login(context.Background(), models.Credentials{Email: "a@b.com", Password: "secret1"})
	if !res.Success {
		t.Fatalf("expected success, got %q", res.Message)
	}

	tok, _ := store.Token()
	if tok != "T" {
		t.Errorf("expected persisted token %q, got %q", "T", tok)
	}
	if !mgr.IsAuthenticated() {
		t.Error("expected authenticated session")
	}
	if nav.last() != RouteDashboard {
		t.Errorf("expected navigation to %s, got %s", RouteDashboard, nav.last())
	}
}

func TestLogin_RoleRouting(t *testing.T) {
	tests := []struct {
		role  string
		route string
	}{
		{models.RoleStudent, RouteDashboard},
		{models.RoleTeacher, RouteDashboard},
		{models.RoleExpert, RouteDashboard},
		{models.RoleParent, RouteParent},
		{models.RoleAdmin, RouteAdmin},
	}

	for _, tc := range tests {
		t.Run(tc.role, func(t *testing.T) {
			auth := &fakeAuth{
				loginResp: &models.AuthResponse{
					Token: "T",
					User:  &models.User{UserID: 1, Role: tc.role},
				},
			}
			mgr, _, nav := newTestManager(auth)

			res := mgr.Login(context.Background(), models.Credentials{Email: "x@y.com", Password: "secret1"})
			if !res.Success {
				t.Fatalf("expected success, got %q", res.Message)
			}
			if nav.last() != tc.route {
				t.Errorf("expected %s, got %s", tc.route, nav.last())
			}
		})
	}
}

func TestLogin_FailureMutatesNothing(t *testing.T) {
	auth := &fakeAuth{loginErr: errors.New("Invalid email or password")}
	mgr, store, nav := newTestManager(auth)

	res := mgr.Login(context.Background(), models.Credentials{Email: "a@b.com", Password: "wrong"})
	if res.Success {
		t.Fatal("expected failure")
	}
	if res.Message != "Invalid email or password" {
		t.Errorf("unexpected message %q", res.Message)
	}
	if mgr.IsAuthenticated() {
		t.Error("session must stay unauthenticated")
	}
	if tok, _ := store.Token(); tok != "" {
		t.Errorf("no token should be persisted, got %q", tok)
	}
	if len(nav.routes) != 0 {
		t.Errorf("no navigation expected, got %v", nav.routes)
	}
}

func TestLoginWithGoogle(t *testing.T) {
	auth := &fakeAuth{
		googleResp: &models.AuthResponse{
			Token: "G",
			User:  &models.User{UserID: 7, Role: models.RoleParent},
		},
	}
	mgr, store, nav := newTestManager(auth)

	res := mgr.LoginWithGoogle(context.Background(), models.GoogleCredential{Credential: "opaque"})
	if !res.Success {
		t.Fatalf("expected success, got %q", res.Message)
	}
	if tok, _ := store.Token(); tok != "G" {
		t.Errorf("expected persisted token G, got %q", tok)
	}
	if nav.last() != RouteParent {
		t.Errorf("expected %s, got %s", RouteParent, nav.last())
	}
}

func TestRegister(t *testing.T) {
	auth := &fakeAuth{
		registerResp: &models.AuthResponse{
			Token: "R",
			User:  &models.User{UserID: 2, Role: models.RoleStudent},
		},
	}
	mgr, store, nav := newTestManager(auth)

	res := mgr.Register(context.Background(), models.RegisterRequest{Email: "new@x.com"})
	if !res.Success {
		t.Fatalf("expected success, got %q", res.Message)
	}
	if tok, _ := store.Token(); tok != "R" {
		t.Errorf("expected persisted token R, got %q", tok)
	}
	if nav.last() != RouteDashboard {
		t.Errorf("expected %s, got %s", RouteDashboard, nav.last())
	}
}

func TestRegister_Failure(t *testing.T) {
	auth := &fakeAuth{registerErr: errors.New("Email already in use")}
	mgr, store, _ := newTestManager(auth)

	res := mgr.Register(context.Background(), models.RegisterRequest{Email: "dup@x.com"})
	if res.Success {
		t.Fatal("expected failure")
	}
	if mgr.IsAuthenticated() {
		t.Error("session must stay unauthenticated")
	}
	if tok, _ := store.Token(); tok != "" {
		t.Errorf("no token should be persisted, got %q", tok)
	}
}

// The invariant isAuthenticated == (user != nil) must hold after every
// operation in any order.
func TestSessionInvariant(t *testing.T) {
	auth := &fakeAuth{
		loginResp: &models.AuthResponse{
			Token: "T",
			User:  &models.User{UserID: 1, Role: models.RoleStudent},
		},
		registerResp: &models.AuthResponse{
			Token: "R",
			User:  &models.User{UserID: 2, Role: models.RoleStudent},
		},
	}
	mgr, _, _ := newTestManager(auth)
	ctx := context.Background()

	checkInvariant := func(step string) {
		t.Helper()
		if mgr.IsAuthenticated() != (mgr.CurrentUser() != nil) {
			t.Fatalf("%s: isAuthenticated does not match user presence", step)
		}
	}

	steps := []struct {
		name string
		op   func()
	}{
		{"login", func() { mgr.Login(ctx, models.Credentials{}) }},
		{"logout", func() { mgr.Logout() }},
		{"register", func() { mgr.Register(ctx, models.RegisterRequest{}) }},
		{"logout again", func() { mgr.Logout() }},
		{"logout when out", func() { mgr.Logout() }},
		{"login again", func() { mgr.Login(ctx, models.Credentials{}) }},
	}
	for _, s := range steps {
		s.op()
		checkInvariant(s.name)
	}
}

func TestLogout_Idempotent(t *testing.T) {
	auth := &fakeAuth{
		loginResp: &models.AuthResponse{
			Token: "T",
			User:  &models.User{UserID: 1, Role: models.RoleStudent},
		},
	}
	mgr, store, nav := newTestManager(auth)

	revoked := 0
	mgr.SetAutoSignInRevoker(func() { revoked++ })

	mgr.Login(context.Background(), models.Credentials{})
	mgr.Logout()

	if mgr.IsAuthenticated() {
		t.Error("expected logged-out session")
	}
	if tok, _ := store.Token(); tok != "" {
		t.Errorf("token should be cleared, got %q", tok)
	}
	if revoked != 1 {
		t.Errorf("expected auto-sign-in revoked once, got %d", revoked)
	}
	if nav.last() != RouteLogin {
		t.Errorf("expected navigation to %s, got %s", RouteLogin, nav.last())
	}

	// Second logout only navigates.
	mgr.Logout()
	if revoked != 1 {
		t.Errorf("revoker must not fire again, got %d", revoked)
	}
	if nav.last() != RouteLogin {
		t.Errorf("expected navigation to %s, got %s", RouteLogin, nav.last())
	}
}

func TestUpdateUser_ShallowMerge(t *testing.T) {
	auth := &fakeAuth{
		loginResp: &models.AuthResponse{
			Token: "T",
			User:  &models.User{UserID: 1, Role: models.RoleStudent, FirstName: "Ada", Bio: "old"},
		},
	}
	mgr, store, _ := newTestManager(auth)
	mgr.Login(context.Background(), models.Credentials{})

	bio := "new bio"
	mgr.UpdateUser(UserPatch{Bio: &bio})

	user := mgr.CurrentUser()
	if user.Bio != "new bio" {
		t.Errorf("expected merged bio, got %q", user.Bio)
	}
	if user.FirstName != "Ada" {
		t.Errorf("untouched field changed: %q", user.FirstName)
	}
	if tok, _ := store.Token(); tok != "T" {
		t.Errorf("token must be untouched, got %q", tok)
	}
}

func TestUpdateUser_LoggedOut(t *testing.T) {
	mgr, _, _ := newTestManager(&fakeAuth{})
	name := "ghost"
	mgr.UpdateUser(UserPatch{FirstName: &name})
	if mgr.CurrentUser() != nil {
		t.Error("patch on a logged-out session must be ignored")
	}
}

func TestLoad_ValidToken(t *testing.T) {
	token := signToken(t, models.RoleTeacher, 5, time.Now().Add(time.Hour))
	auth := &fakeAuth{
		// Profile comes back without the role; the decoded claim wins.
		meUser: &models.User{UserID: 5, Email: "t@x.com"},
	}
	store := NewMemoryStore()
	store.Save(token)
	nav := &recordNav{}
	mgr := NewManager(auth, store, nav, zerolog.Nop())

	if !mgr.Loading() {
		t.Fatal("expected loading before resolution")
	}
	mgr.Load(context.Background())

	if mgr.Loading() {
		t.Error("loading must clear after resolution")
	}
	user := mgr.CurrentUser()
	if user == nil {
		t.Fatal("expected resolved user")
	}
	if user.Role != models.RoleTeacher {
		t.Errorf("expected decoded role merged in, got %q", user.Role)
	}
	if auth.meCalls != 1 {
		t.Errorf("expected one profile fetch, got %d", auth.meCalls)
	}
}

// A persisted token that fails to decode resolves to a logged-out session
// with the token cleared from storage.
func TestLoad_UndecodableToken(t *testing.T) {
	auth := &fakeAuth{}
	store := NewMemoryStore()
	store.Save("not-a-jwt")
	nav := &recordNav{}
	mgr := NewManager(auth, store, nav, zerolog.Nop())

	mgr.Load(context.Background())

	if mgr.CurrentUser() != nil {
		t.Error("expected nil user")
	}
	if tok, _ := store.Token(); tok != "" {
		t.Errorf("token should be cleared, got %q", tok)
	}
	if nav.last() != RouteLogin {
		t.Errorf("expected redirect to %s, got %s", RouteLogin, nav.last())
	}
	if mgr.Loading() {
		t.Error("loading must clear even on failure")
	}
	if auth.meCalls != 0 {
		t.Errorf("no profile fetch expected, got %d", auth.meCalls)
	}
}

func TestLoad_ExpiredToken(t *testing.T) {
	token := signToken(t, models.RoleStudent, 1, time.Now().Add(-time.Hour))
	store := NewMemoryStore()
	store.Save(token)
	nav := &recordNav{}
	mgr := NewManager(&fakeAuth{}, store, nav, zerolog.Nop())

	mgr.Load(context.Background())

	if mgr.IsAuthenticated() {
		t.Error("expired token must not authenticate")
	}
	if tok, _ := store.Token(); tok != "" {
		t.Errorf("token should be cleared, got %q", tok)
	}
	if nav.last() != RouteLogin {
		t.Errorf("expected redirect to %s, got %s", RouteLogin, nav.last())
	}
}

// Server unreachable and credential rejected land in the same place:
// forced logout.
func TestLoad_ProfileFetchFailure(t *testing.T) {
	token := signToken(t, models.RoleStudent, 1, time.Now().Add(time.Hour))
	auth := &fakeAuth{meErr: errors.New("connection refused")}
	store := NewMemoryStore()
	store.Save(token)
	nav := &recordNav{}
	mgr := NewManager(auth, store, nav, zerolog.Nop())

	mgr.Load(context.Background())

	if mgr.IsAuthenticated() {
		t.Error("expected logged-out session")
	}
	if tok, _ := store.Token(); tok != "" {
		t.Errorf("token should be cleared, got %q", tok)
	}
	if nav.last() != RouteLogin {
		t.Errorf("expected redirect to %s, got %s", RouteLogin, nav.last())
	}
}

func TestHandleUnauthorized(t *testing.T) {
	auth := &fakeAuth{
		loginResp: &models.AuthResponse{
			Token: "T",
			User:  &models.User{UserID: 1, Role: models.RoleStudent},
		},
	}
	mgr, store, nav := newTestManager(auth)

	// A 401 while logged out (failed login attempt) is not a teardown.
	mgr.HandleUnauthorized()
	if len(nav.routes) != 0 {
		t.Errorf("no navigation expected, got %v", nav.routes)
	}

	mgr.Login(context.Background(), models.Credentials{})
	mgr.HandleUnauthorized()

	if mgr.IsAuthenticated() {
		t.Error("expected session torn down")
	}
	if tok, _ := store.Token(); tok != "" {
		t.Errorf("token should be cleared, got %q", tok)
	}
	if nav.last() != RouteLogin {
		t.Errorf("expected redirect to %s, got %s", RouteLogin, nav.last())
	}
}
