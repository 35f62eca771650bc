package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/beneficios/portal-api/internal/core/domain"
	"github.com/beneficios/portal-api/internal/core/ports"
)

const activityCollection = "activity_logs"

// ActivityRepository implements ports.ActivityRepository using MongoDB.
type ActivityRepository struct {
	coll *mongo.Collection
}

// NewActivityRepository creates a new ActivityRepository.
func NewActivityRepository(db *mongo.Database) ports.ActivityRepository {
	return &ActivityRepository{coll: db.Collection(activityCollection)}
}

type activityDoc struct {
	ID          string    `bson:"_id"`
	Timestamp   time.Time `bson:"timestamp"`
	Username    string    `bson:"username"`
	UserID      string    `bson:"user_id"`
	Event       string    `bson:"event"`
	Description string    `bson:"description,omitempty"`
}

// Insert persists one activity entry.
func (r *ActivityRepository) Insert(ctx context.Context, entry *domain.ActivityLog) error {
	doc := activityDoc{
		ID:          entry.ID,
		Timestamp:   entry.Timestamp.UTC(),
		Username:    entry.Username,
		UserID:      entry.UserID,
		Event:       string(entry.Event),
		Description: entry.Description,
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert activity log: %w", err)
	}
	return nil
}

// ListRecent returns up to limit entries, newest first.
func (r *ActivityRepository) ListRecent(ctx context.Context, limit int64) ([]*domain.ActivityLog, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list activity logs: %w", err)
	}
	defer cursor.Close(ctx)

	var entries []*domain.ActivityLog
	for cursor.Next(ctx) {
		var doc activityDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode activity log: %w", err)
		}
		entries = append(entries, &domain.ActivityLog{
			ID:          doc.ID,
			Timestamp:   doc.Timestamp,
			Username:    doc.Username,
			UserID:      doc.UserID,
			Event:       domain.ActivityEvent(doc.Event),
			Description: doc.Description,
		})
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterate activity logs: %w", err)
	}
	return entries, nil
}
