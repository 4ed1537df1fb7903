package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobmatch/backend/agent"
	"github.com/jobmatch/backend/auth"
	"github.com/jobmatch/backend/config"
	"github.com/jobmatch/backend/models"
	"github.com/jobmatch/backend/storage"
	"github.com/jobmatch/backend/tools"
)

type fakeMatcher struct {
	got models.JobMatchingRequest
	out *agent.MatchJobsOutput
	err error
}

func (m *fakeMatcher) MatchJobs(ctx context.Context, req models.JobMatchingRequest) (*agent.MatchJobsOutput, error) {
	m.got = req
	return m.out, m.err
}

type testServer struct {
	router  *gin.Engine
	store   *storage.SQLiteStore
	matcher *fakeMatcher
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := storage.NewSQLiteStore(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	jwtService := auth.NewJWTService(&config.Config{JWTSecret: "test-secret", JWTExpiryHours: 1})
	matcher := &fakeMatcher{out: &agent.MatchJobsOutput{Results: []models.ScoredListing{}}}
	authHandler := NewAuthHandler(store, jwtService)
	matchHandler := NewMatchHandler(matcher)
	toolsHandler := NewToolsHandler(tools.NewToolRegistry())

	router := gin.New()
	router.GET("/health", HealthCheck)
	api := router.Group("/api")
	api.POST("/auth/signup", authHandler.Signup)
	api.POST("/auth/login", authHandler.Login)
	protected := api.Group("")
	protected.Use(auth.AuthMiddleware(jwtService))
	protected.POST("/auth/refresh", authHandler.Refresh)
	protected.GET("/auth/me", authHandler.GetProfile)
	protected.DELETE("/auth/delete", authHandler.Delete)
	protected.GET("/job-matching", matchHandler.MatchJobs)
	protected.POST("/job-matching", matchHandler.MatchJobs)
	protected.GET("/tools", toolsHandler.GetTools)

	return &testServer{router: router, store: store, matcher: matcher}
}

func (s *testServer) do(method, path, token, contentType string, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func signupJSON(username, email string) string {
	return fmt.Sprintf(`{"username":%q,"email":%q,"password":"password123","confirm_password":"password123"}`, username, email)
}

// register signs up and logs in, returning the user ID and token
func (s *testServer) register(t *testing.T, username, email string) (string, string) {
	t.Helper()
	w := s.do(http.MethodPost, "/api/auth/signup", "", "application/json", signupJSON(username, email))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = s.do(http.MethodPost, "/api/auth/login", "", "application/json",
		fmt.Sprintf(`{"email":%q,"password":"password123"}`, email))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp["id"].(string), resp["access_token"].(string)
}

func TestSignup(t *testing.T) {
	s := newTestServer(t)

	w := s.do(http.MethodPost, "/api/auth/signup", "", "application/json", signupJSON("jdoe", "jdoe@example.com"))
	require.Equal(t, http.StatusCreated, w.Code)

	var resp models.SignupResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "User has successfully created", resp.Message)
	assert.Equal(t, "http://example.com/api/auth/login", resp.Login)

	user, err := s.store.GetUserByEmail(context.Background(), "jdoe@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, "password123", user.Password)
	assert.True(t, auth.CheckPassword(user.Password, "password123"))

	w = s.do(http.MethodPost, "/api/auth/signup", "", "application/json", signupJSON("other", "jdoe@example.com"))
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestSignupForm(t *testing.T) {
	s := newTestServer(t)

	form := url.Values{
		"username":         {"jdoe"},
		"email":            {"jdoe@example.com"},
		"password":         {"password123"},
		"confirm_password": {"password123"},
	}
	w := s.do(http.MethodPost, "/api/auth/signup", "", "application/x-www-form-urlencoded", form.Encode())
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

func TestSignupValidation(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name string
		body string
	}{
		{"short username", `{"username":"j","email":"a@example.com","password":"password123","confirm_password":"password123"}`},
		{"long username", `{"username":"abcdefghijk","email":"a@example.com","password":"password123","confirm_password":"password123"}`},
		{"bad email", `{"username":"jdoe","email":"not-an-email","password":"password123","confirm_password":"password123"}`},
		{"short password", `{"username":"jdoe","email":"a@example.com","password":"12345","confirm_password":"12345"}`},
		{"mismatched confirmation", `{"username":"jdoe","email":"a@example.com","password":"password123","confirm_password":"password124"}`},
		{"missing fields", `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := s.do(http.MethodPost, "/api/auth/signup", "", "application/json", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestLogin(t *testing.T) {
	s := newTestServer(t)
	id, token := s.register(t, "jdoe", "jdoe@example.com")
	assert.NotEmpty(t, id)
	assert.NotEmpty(t, token)

	w := s.do(http.MethodPost, "/api/auth/login", "", "application/json", `{"email":"jdoe@example.com","password":"password123"}`)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "jdoe", resp["username"])
	assert.Equal(t, "jdoe@example.com", resp["email"])
	assert.NotContains(t, resp, "password")

	w = s.do(http.MethodPost, "/api/auth/login", "", "application/json", `{"email":"jdoe@example.com","password":"wrong-password"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid email or password")

	w = s.do(http.MethodPost, "/api/auth/login", "", "application/json", `{"email":"nobody@example.com","password":"password123"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid email or password")

	w = s.do(http.MethodPost, "/api/auth/login", "", "application/json", `{"email":"jdoe@example.com"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProfileAndRefresh(t *testing.T) {
	s := newTestServer(t)
	id, token := s.register(t, "jdoe", "jdoe@example.com")

	w := s.do(http.MethodGet, "/api/auth/me", token, "", "")
	require.Equal(t, http.StatusOK, w.Code)
	var user models.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &user))
	assert.Equal(t, id, user.ID)

	w = s.do(http.MethodPost, "/api/auth/refresh", token, "", "")
	require.Equal(t, http.StatusOK, w.Code)
	var refreshed models.TokenResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &refreshed))
	assert.NotEmpty(t, refreshed.AccessToken)

	w = s.do(http.MethodGet, "/api/auth/me", "", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestDelete(t *testing.T) {
	s := newTestServer(t)
	id, token := s.register(t, "jdoe", "jdoe@example.com")
	otherID, _ := s.register(t, "other", "other@example.com")

	w := s.do(http.MethodDelete, "/api/auth/delete", token, "", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(http.MethodDelete, "/api/auth/delete?user_id="+otherID, token, "", "")
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = s.do(http.MethodDelete, "/api/auth/delete?user_id="+id, "", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = s.do(http.MethodDelete, "/api/auth/delete?user_id="+id, token, "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"User has successfully delete"}`, w.Body.String())

	_, err := s.store.GetUserByID(context.Background(), id)
	assert.ErrorIs(t, err, storage.ErrUserNotFound)

	// The token outlives the account
	w = s.do(http.MethodDelete, "/api/auth/delete?user_id="+id, token, "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMatchJobsRequiresToken(t *testing.T) {
	s := newTestServer(t)
	w := s.do(http.MethodGet, "/api/job-matching?location=Remote", "", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMatchJobsQuery(t *testing.T) {
	s := newTestServer(t)
	_, token := s.register(t, "jdoe", "jdoe@example.com")
	s.matcher.out = &agent.MatchJobsOutput{Results: []models.ScoredListing{
		{Title: "Half", Company: "Acme", Score: 0.5, Description: "d1"},
		{Title: "High", Company: "Acme", Score: 1.5, Description: "d2"},
	}}

	q := url.Values{
		"location":  {"United States"},
		"keywords":  {"python developer"},
		"education": {"Bachelor's Degree"},
		"skills":    {"Python, SQL", "Docker"},
		"start":     {"25"},
	}
	w := s.do(http.MethodGet, "/api/job-matching?"+q.Encode(), token, "", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	assert.Equal(t, []string{"Python", "SQL", "Docker"}, s.matcher.got.Skills)
	assert.Equal(t, 25, s.matcher.got.Start)
	assert.Equal(t, "Bachelor's Degree", s.matcher.got.Education)

	var resp models.JobMatchingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.JobListings, 2)
	assert.Equal(t, "Half", resp.JobListings[0].Title)
	assert.Equal(t, 1.5, resp.JobListings[1].Score)
}

func TestMatchJobsJSON(t *testing.T) {
	s := newTestServer(t)
	_, token := s.register(t, "jdoe", "jdoe@example.com")
	s.matcher.out = &agent.MatchJobsOutput{}

	body := `{"location":"Remote","keywords":"go","education":"BSc","skills":["Go","SQL"]}`
	w := s.do(http.MethodPost, "/api/job-matching", token, "application/json", body)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.JSONEq(t, `{"job_listings":[]}`, w.Body.String())
	assert.Equal(t, []string{"Go", "SQL"}, s.matcher.got.Skills)
}

func TestMatchJobsErrors(t *testing.T) {
	s := newTestServer(t)
	_, token := s.register(t, "jdoe", "jdoe@example.com")
	valid := "/api/job-matching?location=Remote&keywords=go&education=BSc&skills=Go"

	tests := []struct {
		name   string
		path   string
		err    error
		status int
	}{
		{"missing field", "/api/job-matching?location=Remote&keywords=go&skills=Go", nil, http.StatusBadRequest},
		{"start out of range", valid + "&start=501", nil, http.StatusBadRequest},
		{"validation", valid, &agent.ValidationError{Field: "skills", Message: "at least one skill is required"}, http.StatusBadRequest},
		{"upstream", valid, &agent.UpstreamError{URL: "https://jobs.example", Err: errors.New("connection reset")}, http.StatusBadGateway},
		{"other", valid, errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s.matcher.err = tt.err
			w := s.do(http.MethodGet, tt.path, token, "", "")
			assert.Equal(t, tt.status, w.Code)

			var resp models.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.status, resp.Code)
		})
	}
}

func TestHealthAndTools(t *testing.T) {
	s := newTestServer(t)

	w := s.do(http.MethodGet, "/health", "", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	var health models.HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &health))
	assert.Equal(t, "healthy", health.Status)
	assert.Equal(t, Version, health.Version)

	_, token := s.register(t, "jdoe", "jdoe@example.com")
	w = s.do(http.MethodGet, "/api/tools", token, "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), `"tools"`))
}

func TestSplitSkills(t *testing.T) {
	assert.Equal(t, []string{"Go", "SQL", "Docker"}, splitSkills([]string{"Go,SQL", " Docker ", ",,"}))
	assert.Empty(t, splitSkills(nil))
}
