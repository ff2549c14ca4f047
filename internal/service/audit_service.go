package service

import (
	"context"
	"log/slog"
	"time"

	"hr-dashboard-api/internal/model"
)

type AuditStore interface {
	Log(ctx context.Context, entry model.AuditEntry) error
	Query(ctx context.Context, query model.AuditQuery) ([]model.AuditEntry, model.Meta, error)
}

// AuditService records authentication events. Recording is best-effort: an
// audit write failure is logged but never fails the request that triggered
// it.
type AuditService struct {
	store AuditStore
}

func NewAuditService(store AuditStore) *AuditService {
	return &AuditService{store: store}
}

func (s *AuditService) Record(ctx context.Context, action string, username string, role model.Role, clientIP string, status string, errText string) {
	if s == nil || s.store == nil {
		return
	}

	entry := model.AuditEntry{
		Action:     action,
		OccurredAt: time.Now().UTC().Format(time.RFC3339Nano),
		Username:   username,
		Role:       role.String(),
		ClientIP:   clientIP,
		Status:     status,
		Error:      errText,
	}

	if err := s.store.Log(ctx, entry); err != nil {
		slog.Warn("audit write failed", "action", action, "error", err)
	}
}

func (s *AuditService) Query(ctx context.Context, query model.AuditQuery) ([]model.AuditEntry, model.Meta, error) {
	return s.store.Query(ctx, query)
}
