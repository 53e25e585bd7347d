package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/storefront/ecommerce-api/internal/core/domain"
	"github.com/storefront/ecommerce-api/internal/core/ports"
	"github.com/storefront/ecommerce-api/internal/core/service"
	"github.com/storefront/ecommerce-api/internal/infrastructure/security"
)

// memUserRepo is an in-memory credential store for end-to-end router tests.
type memUserRepo struct {
	mu    sync.Mutex
	users map[string]domain.User
	seq   int
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]domain.User)}
}

func (r *memUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *memUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &u, nil
}

func (r *memUserRepo) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	if _, err := r.FindByEmail(ctx, user.Email); err == nil {
		return nil, domain.ErrEmailTaken
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	u := *user
	u.ID = fmt.Sprintf("%024x", r.seq)
	r.users[u.ID] = u
	return &u, nil
}

func (r *memUserRepo) UpdateByID(_ context.Context, id string, p domain.UserPatch) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	if p.Username != nil {
		u.Username = *p.Username
	}
	r.users[id] = u
	return &u, nil
}

func (r *memUserRepo) DeleteByID(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.users[id]
	delete(r.users, id)
	return ok, nil
}

func (r *memUserRepo) List(context.Context, ports.UserListFilter) ([]*domain.User, error) {
	return nil, nil
}

func (r *memUserRepo) CountByMonth(context.Context, time.Time) ([]domain.MonthlyCount, error) {
	return nil, nil
}

type testServer struct {
	e      *echo.Echo
	tokens *security.TokenManager
	users  *memUserRepo
}

func newTestServer(t *testing.T) testServer {
	t.Helper()

	tokens, err := security.NewTokenManager("router-test-secret")
	require.NoError(t, err)

	users := newMemUserRepo()
	hasher := security.NewBcryptHasher(bcrypt.MinCost)
	log := zerolog.Nop()

	e := NewRouter(Dependencies{
		Logger:   log,
		Verifier: tokens,
		Auth:     service.NewAuthService(users, hasher, tokens, log),
		Users:    service.NewUserService(users, hasher, log),
	})
	return testServer{e: e, tokens: tokens, users: users}
}

func (s testServer) do(method, target, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func concretePath(p string) string {
	for _, param := range []string{":id", ":userId"} {
		p = strings.ReplaceAll(p, param, "507f1f77bcf86cd799439011")
	}
	return p
}

func TestRoutes_AnonymousCallerRejected(t *testing.T) {
	s := newTestServer(t)

	for _, r := range Routes(Dependencies{}) {
		if r.Access == Public {
			continue
		}
		rec := s.do(r.Method, concretePath(r.Path), "{}", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "%s %s", r.Method, r.Path)
		assert.JSONEq(t, `{"status":"error","statusCode":401,"message":"Unauthorized"}`, rec.Body.String())
	}
}

func TestRoutes_CustomerForbiddenOnAdminRoutes(t *testing.T) {
	s := newTestServer(t)
	token, err := s.tokens.Issue("customer-1", domain.RoleCustomer)
	require.NoError(t, err)

	adminRoutes := 0
	for _, r := range Routes(Dependencies{}) {
		if r.Access != AdminOnly {
			continue
		}
		adminRoutes++
		rec := s.do(r.Method, concretePath(r.Path), "{}", token)
		assert.Equal(t, http.StatusForbidden, rec.Code, "%s %s", r.Method, r.Path)
	}
	assert.Equal(t, 10, adminRoutes)
}

func TestRoutes_TamperedTokenRejected(t *testing.T) {
	s := newTestServer(t)
	token, err := s.tokens.Issue("admin-1", domain.RoleAdmin)
	require.NoError(t, err)

	rec := s.do(http.MethodGet, "/api/users/stats", "", token+"x")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = s.do(http.MethodGet, "/api/users/stats", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRegister_EmailMatchingIsCaseAndWhitespaceInsensitive(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodPost, "/api/auth/register", `{"username":"first","email":"A@B.com","password":"secret1"}`, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = s.do(http.MethodPost, "/api/auth/register", `{"username":"second","email":"a@b.com ","password":"secret2"}`, "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.JSONEq(t, `{"status":"fail","message":"Email already registered"}`, rec.Body.String())
}

func TestRegister_ValidationEnvelope(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodPost, "/api/auth/register", `{"username":"bob","email":"bob@example.com","password":"123"}`, "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.JSONEq(t, `{"status":"fail","message":[{"field":"password","message":"must be at least 6 characters"}]}`, rec.Body.String())
}

func TestLoginThenAccessOwnProfileOnly(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodPost, "/api/auth/register", `{"username":"carol","email":"carol@example.com","password":"secret1"}`, "")
	require.Equal(t, http.StatusCreated, rec.Code)

	var reg struct {
		Data struct {
			User domain.User `json:"user"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &reg))
	userID := reg.Data.User.ID
	require.NotEmpty(t, userID)

	rec = s.do(http.MethodPost, "/api/auth/login", `{"email":"carol@example.com","password":"wrong!"}`, "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.JSONEq(t, `{"status":"fail","message":"Incorrect email or password"}`, rec.Body.String())

	rec = s.do(http.MethodPost, "/api/auth/login", `{"email":"Carol@Example.com","password":"secret1"}`, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var login struct {
		Data struct {
			AccessToken string `json:"accessToken"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &login))

	rec = s.do(http.MethodGet, "/api/users/"+userID, "", login.Data.AccessToken)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(http.MethodGet, "/api/users/someone-else", "", login.Data.AccessToken)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t, `{"status":"error","statusCode":403,"message":"Forbidden"}`, rec.Body.String())
}

func TestHealth_IsPublic(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	rec = s.do(http.MethodGet, "/health/ready", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}
