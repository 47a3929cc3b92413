// Package audit records the append-only trail of state-changing actions.
// Recording is fire-and-forget: failures are logged and never surfaced to the
// action that produced the entry.
package audit

import (
	"context"
	"io"
	"log"
	"time"

	"catring/internal/domain"
	auditrepo "catring/internal/repository/audit"
	"github.com/google/uuid"
)

// Publisher forwards entries to an external sink (e.g. a Kafka topic).
type Publisher interface {
	Publish(ctx context.Context, entry domain.AuditEntry) error
}

type Recorder struct {
	repo      auditrepo.Repository
	publisher Publisher
	logger    *log.Logger
	timeout   time.Duration
}

func NewRecorder(repo auditrepo.Repository, publisher Publisher, logger *log.Logger) *Recorder {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Recorder{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
		timeout:   5 * time.Second,
	}
}

// Record appends an entry asynchronously. The caller's context is not used:
// the write must not be cancelled when the originating request finishes.
func (r *Recorder) Record(typ domain.AuditType, userID, description string) {
	entry := domain.AuditEntry{
		ID:          uuid.NewString(),
		Type:        typ,
		UserID:      userID,
		Description: description,
		CreatedAt:   time.Now().UTC(),
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
		defer cancel()
		if err := r.repo.Append(ctx, entry); err != nil {
			r.logger.Printf("audit: append type=%s user=%s error=%v", entry.Type, entry.UserID, err)
		}
		if r.publisher == nil {
			return
		}
		if err := r.publisher.Publish(ctx, entry); err != nil {
			r.logger.Printf("audit: publish type=%s user=%s error=%v", entry.Type, entry.UserID, err)
		}
	}()
}
