package audit

import (
	"context"

	"catring/internal/domain"
)

// Repository is the append-only audit trail store. Nothing in the core ever
// reads entries back.
type Repository interface {
	Append(ctx context.Context, entry domain.AuditEntry) error
}
