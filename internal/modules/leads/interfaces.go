package leads

import (
	"context"
	"time"

	"loanhelp/internal/domain"
)

// LeadRepository defines the persistence operations the pipeline needs.
type LeadRepository interface {
	Create(ctx context.Context, l *domain.Lead) error
	FindRecentIDsByEmail(ctx context.Context, email string, since time.Time) ([]string, error)
}
