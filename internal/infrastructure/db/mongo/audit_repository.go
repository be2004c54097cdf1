package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/proyecto-awi/wallet-dashboard/internal/core/domain"
)

const (
	collectionGateDecisions = "gate_decisions"
	defaultRecentLimit      = 50
	maxRecentLimit          = 500
)

// AuditRepository stores access-gate decisions in the gate_decisions collection.
type AuditRepository struct {
	col       *mongo.Collection
	retention time.Duration
}

// NewAuditRepository creates an AuditRepository. A positive retention makes
// EnsureIndexes install a TTL index so old decisions expire on their own.
func NewAuditRepository(db *mongo.Database, retention time.Duration) *AuditRepository {
	return &AuditRepository{col: db.Collection(collectionGateDecisions), retention: retention}
}

// Insert persists one gate decision.
func (r *AuditRepository) Insert(ctx context.Context, rec domain.GateRecord) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if rec.At.IsZero() {
		rec.At = time.Now()
	}
	rec.At = rec.At.UTC()

	_, err := r.col.InsertOne(ctx, rec)
	return err
}

// Recent returns the newest decisions matching f, newest first.
func (r *AuditRepository) Recent(ctx context.Context, f domain.AuditFilter) ([]domain.GateRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if f.ProfileID != "" {
		filter["profile_id"] = f.ProfileID
	}
	if f.Gate != "" {
		filter["gate"] = f.Gate
	}
	if f.Decision != "" {
		filter["decision"] = f.Decision
	}

	limit := int64(f.Limit)
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	if limit > maxRecentLimit {
		limit = maxRecentLimit
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "at", Value: -1}}).
		SetLimit(limit)

	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	records := make([]domain.GateRecord, 0)
	if err := cur.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// EnsureIndexes creates the lookup indexes and, when retention is set, the
// TTL index on the decision timestamp.
func (r *AuditRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "profile_id", Value: 1}, {Key: "at", Value: -1}}},
		{Keys: bson.D{{Key: "gate", Value: 1}, {Key: "decision", Value: 1}}},
	}
	if r.retention > 0 {
		indexes = append(indexes, mongo.IndexModel{
			Keys:    bson.D{{Key: "at", Value: 1}},
			Options: options.Index().SetExpireAfterSeconds(int32(r.retention.Seconds())),
		})
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
