package ports

import (
	"context"

	"github.com/proyecto-awi/wallet-dashboard/internal/core/domain"
)

// AuditSink accepts gate decisions without blocking the request path.
type AuditSink interface {
	Record(rec domain.GateRecord)
}

// AuditRepository persists gate decisions.
type AuditRepository interface {
	Insert(ctx context.Context, rec domain.GateRecord) error
}

// AuditReader lists persisted gate decisions for the admin audit view.
type AuditReader interface {
	Recent(ctx context.Context, f domain.AuditFilter) ([]domain.GateRecord, error)
}
