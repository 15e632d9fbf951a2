package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/blog-api/internal/config"
	"github.com/phrazzld/blog-api/internal/domain"
	"github.com/phrazzld/blog-api/internal/service/auth"
	"github.com/phrazzld/blog-api/internal/store"
)

// memoryUserStore is an in-memory store.UserStore for router tests.
type memoryUserStore struct {
	mu     sync.Mutex
	nextID int64
	users  []domain.User
}

func (s *memoryUserStore) Create(ctx context.Context, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == user.Username {
			return fmt.Errorf("%w: %s", store.ErrUsernameExists, user.Username)
		}
	}

	s.nextID++
	user.ID = s.nextID
	s.users = append(s.users, *user)
	return nil
}

func (s *memoryUserStore) GetByCredentials(
	ctx context.Context,
	username, password, name string,
) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == username && u.Password == password && u.Name == name {
			user := u
			return &user, nil
		}
	}
	return nil, store.ErrUserNotFound
}

// memoryBlogStore is an in-memory store.BlogStore for router tests.
type memoryBlogStore struct {
	mu     sync.Mutex
	nextID int64
	blogs  []domain.Blog
}

func (s *memoryBlogStore) Create(ctx context.Context, blog *domain.Blog) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	blog.ID = s.nextID
	s.blogs = append(s.blogs, *blog)
	return nil
}

func (s *memoryBlogStore) Update(ctx context.Context, id int64, title, content string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.blogs {
		if s.blogs[i].ID == id {
			s.blogs[i].Title = title
			s.blogs[i].Content = content
			return nil
		}
	}
	return fmt.Errorf("%w: id %d", store.ErrBlogNotFound, id)
}

func (s *memoryBlogStore) List(ctx context.Context) ([]domain.Blog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	blogs := make([]domain.Blog, len(s.blogs))
	copy(blogs, s.blogs)
	return blogs, nil
}

func (s *memoryBlogStore) GetByID(ctx context.Context, id int64) (*domain.Blog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, b := range s.blogs {
		if b.ID == id {
			blog := b
			return &blog, nil
		}
	}
	return nil, fmt.Errorf("%w: id %d", store.ErrBlogNotFound, id)
}

func newTestApplication(t *testing.T) *application {
	t.Helper()

	cfg := &config.Config{
		Server:   config.ServerConfig{Port: 8080, LogLevel: "error"},
		Database: config.DatabaseConfig{URL: "postgres://unused"},
		Auth:     config.AuthConfig{JWTSecret: "router-test-secret"},
	}

	jwtService, err := auth.NewJWTService(cfg.Auth)
	require.NoError(t, err)

	return &application{
		config:     cfg,
		logger:     slog.Default(),
		userStore:  &memoryUserStore{},
		blogStore:  &memoryBlogStore{},
		jwtService: jwtService,
		cleanup:    func() {},
	}
}

func doJSON(
	t *testing.T,
	router http.Handler,
	method, path, token, body string,
) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func signup(t *testing.T, router http.Handler, username string) string {
	t.Helper()

	body := fmt.Sprintf(`{"username":%q,"password":"secret1","name":"Test User"}`, username)
	rr := doJSON(t, router, http.MethodPost, "/api/v1/user/signup", "", body)
	require.Equal(t, http.StatusOK, rr.Code)

	token := strings.TrimSpace(rr.Body.String())
	require.NotEmpty(t, token)
	return token
}

func TestRouter_SignupSigninFlow(t *testing.T) {
	t.Parallel()

	app := newTestApplication(t)
	router := app.setupRouter()

	token := signup(t, router, "ada@example.com")

	claims, err := app.jwtService.ValidateToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, int64(1), claims.UserID)

	// Signin with the same credentials yields a token for the same user.
	rr := doJSON(t, router, http.MethodPost, "/api/v1/user/signin", "",
		`{"username":"ada@example.com","password":"secret1","name":"Test User"}`)
	require.Equal(t, http.StatusOK, rr.Code)

	signinClaims, err := app.jwtService.ValidateToken(
		context.Background(), strings.TrimSpace(rr.Body.String()))
	require.NoError(t, err)
	assert.Equal(t, claims.UserID, signinClaims.UserID)

	// A second signup with the same username is rejected.
	rr = doJSON(t, router, http.MethodPost, "/api/v1/user/signup", "",
		`{"username":"ada@example.com","password":"secret1","name":"Test User"}`)
	assert.Equal(t, http.StatusLengthRequired, rr.Code)
	assert.Equal(t, "User with this email id already exists", strings.TrimSpace(rr.Body.String()))
}

func TestRouter_BlogRoutesRequireAuthentication(t *testing.T) {
	t.Parallel()

	app := newTestApplication(t)
	router := app.setupRouter()

	paths := []struct {
		method string
		path   string
		body   string
	}{
		{http.MethodPost, "/api/v1/blog/", `{"title":"T","content":"C"}`},
		{http.MethodPut, "/api/v1/blog/", `{"id":1,"title":"T","content":"C"}`},
		{http.MethodGet, "/api/v1/blog/bulk", ""},
		{http.MethodGet, "/api/v1/blog/1", ""},
	}

	for _, p := range paths {
		t.Run(p.method+" "+p.path, func(t *testing.T) {
			rr := doJSON(t, router, p.method, p.path, "", p.body)
			assert.Equal(t, http.StatusForbidden, rr.Code)
			assert.JSONEq(t, `{"message":"You are not logged in"}`, rr.Body.String())
		})
	}

	t.Run("garbage token", func(t *testing.T) {
		rr := doJSON(t, router, http.MethodGet, "/api/v1/blog/bulk", "garbage", "")
		assert.Equal(t, http.StatusForbidden, rr.Code)
		assert.JSONEq(t, `{"message":"Authentication Error"}`, rr.Body.String())
	})
}

func TestRouter_BlogLifecycle(t *testing.T) {
	t.Parallel()

	app := newTestApplication(t)
	router := app.setupRouter()
	token := signup(t, router, "author@example.com")

	// Create
	rr := doJSON(t, router, http.MethodPost, "/api/v1/blog/", token,
		`{"title":"T","content":"C"}`)
	require.Equal(t, http.StatusOK, rr.Code)

	var created struct {
		ID int64 `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
	require.NotZero(t, created.ID)

	// Fetch it back; authorId is the signup user's id.
	rr = doJSON(t, router, http.MethodGet,
		fmt.Sprintf("/api/v1/blog/%d", created.ID), token, "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, fmt.Sprintf(
		`{"blog":{"id":%d,"title":"T","content":"C","authorId":1}}`, created.ID),
		rr.Body.String())

	// Update it.
	rr = doJSON(t, router, http.MethodPut, "/api/v1/blog/", token,
		fmt.Sprintf(`{"id":%d,"title":"T2","content":"C2"}`, created.ID))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, fmt.Sprintf(`{"id":%d}`, created.ID), rr.Body.String())

	// Bulk listing contains the updated post.
	rr = doJSON(t, router, http.MethodGet, "/api/v1/blog/bulk", token, "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, fmt.Sprintf(
		`{"blogs":[{"id":%d,"title":"T2","content":"C2","authorId":1}]}`, created.ID),
		rr.Body.String())

	// A nonexistent id is a null blog, not an error.
	rr = doJSON(t, router, http.MethodGet, "/api/v1/blog/999", token, "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"blog":null}`, rr.Body.String())
}

func TestRouter_Health(t *testing.T) {
	t.Parallel()

	app := newTestApplication(t)
	router := app.setupRouter()

	rr := doJSON(t, router, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "OK", rr.Body.String())
}
