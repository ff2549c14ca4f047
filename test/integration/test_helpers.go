//go:build integration

package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"hr-dashboard-api/internal/config"
	"hr-dashboard-api/internal/handler"
	"hr-dashboard-api/internal/metrics"
	"hr-dashboard-api/internal/middleware"
	"hr-dashboard-api/internal/model"
	"hr-dashboard-api/internal/router"
	"hr-dashboard-api/internal/service"
	"hr-dashboard-api/internal/token"
)

const testSecret = "integration-test-secret-0123456789"

// memStore backs every service interface with fixtures so the full HTTP
// stack runs without PostgreSQL.
type memStore struct {
	users []model.User
}

func (s *memStore) FindByUsername(_ context.Context, username string) (model.User, error) {
	for _, u := range s.users {
		if strings.EqualFold(u.Username, username) {
			return u, nil
		}
	}
	return model.User{}, model.ErrUserNotFound
}

func (s *memStore) FindByID(_ context.Context, id string) (model.Employee, error) {
	if id == "e-1" {
		return model.Employee{ID: "e-1", FirstName: "Ada", LastName: "Moreau", Department: "Engineering", Status: "active"}, nil
	}
	return model.Employee{}, model.ErrEmployeeNotFound
}

func (s *memStore) List(_ context.Context, _ model.EmployeeQuery) ([]model.Employee, int, error) {
	return []model.Employee{{ID: "e-1", FirstName: "Ada", LastName: "Moreau", Department: "Engineering", Status: "active"}}, 1, nil
}

func (s *memStore) ListShifts(_ context.Context, _ model.PlanningQuery) ([]model.Shift, error) {
	return []model.Shift{{ID: "s-1", EmployeeID: "e-1", Employee: "Ada Moreau", StartTime: "09:00", EndTime: "17:00"}}, nil
}

func (s *memStore) KPIs(_ context.Context) (model.DashboardKPIs, error) {
	return model.DashboardKPIs{Headcount: 1, HeadcountByDepartment: map[string]int{"Engineering": 1}}, nil
}

type memJobOfferStore struct{}

func (memJobOfferStore) List(_ context.Context, _ model.JobOfferQuery) ([]model.JobOffer, int, error) {
	return []model.JobOffer{{ID: "j-1", Title: "Backend Engineer", Status: "open"}}, 1, nil
}

type memAuditStore struct {
	entries []model.AuditEntry
}

func (s *memAuditStore) Log(_ context.Context, entry model.AuditEntry) error {
	s.entries = append(s.entries, entry)
	return nil
}

func (s *memAuditStore) Query(_ context.Context, _ model.AuditQuery) ([]model.AuditEntry, model.Meta, error) {
	return s.entries, model.Meta{Page: 1, Limit: 50, Total: len(s.entries), TotalPages: 1}, nil
}

type okPinger struct{}

func (okPinger) Health(context.Context) error { return nil }

func hashPassword(t *testing.T, plain string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	store := &memStore{users: []model.User{
		{ID: "u-1", Username: "admin", Email: "admin@hr-dashboard.local", PasswordHash: hashPassword(t, "admin123"), Role: model.RoleAdmin},
		{ID: "u-2", Username: "worker", Email: "worker@hr-dashboard.local", PasswordHash: hashPassword(t, "worker123"), Role: model.RoleEmployee},
	}}

	codec, err := token.NewCodec(testSecret)
	require.NoError(t, err)

	authService, err := service.NewAuthService(codec, store, 15*time.Minute, 24*time.Hour)
	require.NoError(t, err)

	registry := prometheus.NewRegistry()
	m := metrics.NewMetrics(registry)

	auditService := service.NewAuditService(&memAuditStore{})
	authMiddleware := middleware.NewAuthMiddleware(codec, m.AuthFailures)
	authHandler := handler.NewAuthHandler(authService, auditService, m)
	employeeHandler := handler.NewEmployeeHandler(service.NewEmployeeService(store))
	jobOfferHandler := handler.NewJobOfferHandler(service.NewJobOfferService(memJobOfferStore{}))
	planningHandler := handler.NewPlanningHandler(service.NewPlanningService(store))
	dashboardHandler := handler.NewDashboardHandler(service.NewDashboardService(store))
	auditHandler := handler.NewAuditHandler(auditService)
	healthHandler := handler.NewHealthHandler(okPinger{})
	docsHandler := handler.NewDocsHandler("")

	cfg := &config.Config{
		ServerPort:       "8000",
		RequestTimeout:   15 * time.Second,
		JWTSecret:        testSecret,
		JWTAccessTTL:     15 * time.Minute,
		JWTRefreshTTL:    24 * time.Hour,
		CORSOrigins:      []string{"*"},
		RateLimitRPM:     1000,
		AuthRateLimitRPM: 1000,
	}

	server := httptest.NewServer(router.New(cfg, m, registry,
		authMiddleware,
		authHandler,
		employeeHandler,
		jobOfferHandler,
		planningHandler,
		dashboardHandler,
		auditHandler,
		healthHandler,
		docsHandler,
	))
	t.Cleanup(server.Close)

	return server
}

func login(t *testing.T, server *httptest.Server, username string, password string) (string, string) {
	t.Helper()

	resp := postJSON(t, server.URL+"/login", map[string]string{"username": username, "password": password})
	t.Cleanup(func() { _ = resp.Body.Close() })
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var parsed struct {
		Success bool `json:"success"`
		Data    struct {
			AccessToken  string `json:"access_token"`
			RefreshToken string `json:"refresh_token"`
			TokenType    string `json:"token_type"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
	require.True(t, parsed.Success)
	require.Equal(t, "bearer", parsed.Data.TokenType)
	require.NotEmpty(t, parsed.Data.AccessToken)
	require.NotEmpty(t, parsed.Data.RefreshToken)

	return parsed.Data.AccessToken, parsed.Data.RefreshToken
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(payload))
	require.NoError(t, err)
	return resp
}

func doAuthRequest(t *testing.T, method string, url string, accessToken string) *http.Response {
	t.Helper()

	req, err := http.NewRequest(method, url, nil)
	require.NoError(t, err)
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()

	var buf bytes.Buffer
	_, err := buf.ReadFrom(resp.Body)
	require.NoError(t, err)
	return buf.String()
}
