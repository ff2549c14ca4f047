package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"hr-dashboard-api/internal/metrics"
	"hr-dashboard-api/internal/middleware"
	"hr-dashboard-api/internal/model"
	"hr-dashboard-api/internal/service"
	"hr-dashboard-api/pkg/apierror"
)

type AuthHandler struct {
	auth    *service.AuthService
	audit   *service.AuditService
	metrics *metrics.Metrics
}

func NewAuthHandler(auth *service.AuthService, audit *service.AuditService, m *metrics.Metrics) *AuthHandler {
	return &AuthHandler{auth: auth, audit: audit, metrics: m}
}

// Login exchanges username/password for a token pair. The response on
// failure never says which of the two was wrong.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apierror.BadRequest("Invalid request body", ""))
		return
	}
	if req.Username == "" || req.Password == "" {
		writeError(w, apierror.BadRequest("Username and password are required", ""))
		return
	}

	clientIP := middleware.ClientIP(r)

	pair, err := h.auth.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		h.recordLoginFailure(r, req.Username, clientIP, err)
		writeError(w, err)
		return
	}

	h.metrics.LoginsTotal.WithLabelValues("success").Inc()
	h.audit.Record(r.Context(), model.AuditActionLogin, req.Username, "", clientIP, model.AuditStatusSuccess, "")
	writeSuccess(w, http.StatusOK, pair, nil)
}

func (h *AuthHandler) recordLoginFailure(r *http.Request, username string, clientIP string, err error) {
	outcome := "error"
	if errors.Is(err, model.ErrInvalidCredentials) {
		outcome = "denied"
	}
	h.metrics.LoginsTotal.WithLabelValues(outcome).Inc()
	h.audit.Record(r.Context(), model.AuditActionLogin, username, "", clientIP, model.AuditStatusDenied, err.Error())
}

// Refresh trades a valid refresh token for a new pair. Role and expiry on
// the new access token reflect the user record as it stands now.
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req model.RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apierror.BadRequest("Invalid request body", ""))
		return
	}
	if req.RefreshToken == "" {
		writeError(w, apierror.BadRequest("refresh_token is required", ""))
		return
	}

	pair, err := h.auth.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		h.audit.Record(r.Context(), model.AuditActionRefresh, "", "", middleware.ClientIP(r), model.AuditStatusDenied, err.Error())
		writeError(w, err)
		return
	}

	h.audit.Record(r.Context(), model.AuditActionRefresh, "", "", middleware.ClientIP(r), model.AuditStatusSuccess, "")
	writeSuccess(w, http.StatusOK, pair, nil)
}

// Me returns the caller's stored identity. The subject comes from the
// already-verified access token, never from request input.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, model.ErrUnauthorized)
		return
	}

	identity, err := h.auth.Identity(r.Context(), claims.Subject)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, identity, nil)
}
