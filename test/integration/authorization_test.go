//go:build integration

package integration

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEmployeeRoleSeesOnlyPlanning(t *testing.T) {
	server := newTestServer(t)

	accessToken, _ := login(t, server, "worker", "worker123")

	planningResp := doAuthRequest(t, http.MethodGet, server.URL+"/planning", accessToken)
	t.Cleanup(func() { _ = planningResp.Body.Close() })
	require.Equal(t, http.StatusOK, planningResp.StatusCode)

	for _, path := range []string{"/employees", "/job_offers", "/dashboard/kpis", "/audit"} {
		resp := doAuthRequest(t, http.MethodGet, server.URL+path, accessToken)
		require.Equal(t, http.StatusForbidden, resp.StatusCode, "expected 403 for %s", path)
		_ = resp.Body.Close()
	}
}

func TestAdminReachesEveryResource(t *testing.T) {
	server := newTestServer(t)

	accessToken, _ := login(t, server, "admin", "admin123")

	for _, path := range []string{"/employees", "/employees/e-1", "/job_offers", "/planning", "/dashboard/kpis", "/audit"} {
		resp := doAuthRequest(t, http.MethodGet, server.URL+path, accessToken)
		require.Equal(t, http.StatusOK, resp.StatusCode, "expected 200 for %s", path)
		_ = resp.Body.Close()
	}
}

func TestAuditTrailRecordsLoginOutcomes(t *testing.T) {
	server := newTestServer(t)

	denied := postJSON(t, server.URL+"/login", map[string]string{"username": "admin", "password": "wrong"})
	require.Equal(t, http.StatusUnauthorized, denied.StatusCode)
	_ = denied.Body.Close()

	accessToken, _ := login(t, server, "admin", "admin123")

	auditResp := doAuthRequest(t, http.MethodGet, server.URL+"/audit", accessToken)
	t.Cleanup(func() { _ = auditResp.Body.Close() })
	require.Equal(t, http.StatusOK, auditResp.StatusCode)

	var parsed struct {
		Data []struct {
			Action   string `json:"action"`
			Username string `json:"username"`
			Status   string `json:"status"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(auditResp.Body).Decode(&parsed))
	require.Len(t, parsed.Data, 2)
	require.Equal(t, "denied", parsed.Data[0].Status)
	require.Equal(t, "success", parsed.Data[1].Status)
	require.Equal(t, "admin", parsed.Data[0].Username)
}

func TestHealthAndMetricsAreUnauthenticated(t *testing.T) {
	server := newTestServer(t)

	healthResp := doAuthRequest(t, http.MethodGet, server.URL+"/health", "")
	t.Cleanup(func() { _ = healthResp.Body.Close() })
	require.Equal(t, http.StatusOK, healthResp.StatusCode)

	metricsResp := doAuthRequest(t, http.MethodGet, server.URL+"/metrics", "")
	t.Cleanup(func() { _ = metricsResp.Body.Close() })
	require.Equal(t, http.StatusOK, metricsResp.StatusCode)
}
