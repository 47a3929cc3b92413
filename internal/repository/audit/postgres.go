package audit

import (
	"context"

	"catring/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) Append(ctx context.Context, entry domain.AuditEntry) error {
	const q = `
INSERT INTO audit_log (id, type, user_id, description)
VALUES ($1, $2, $3, $4)
`
	_, err := r.pool.Exec(ctx, q, entry.ID, entry.Type, entry.UserID, entry.Description)
	return err
}
