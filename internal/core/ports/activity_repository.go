package ports

import (
	"context"

	"github.com/beneficios/portal-api/internal/core/domain"
)

// ActivityRepository persists activity-log entries for the HR logs view.
type ActivityRepository interface {
	Insert(ctx context.Context, entry *domain.ActivityLog) error
	ListRecent(ctx context.Context, limit int64) ([]*domain.ActivityLog, error)
}
