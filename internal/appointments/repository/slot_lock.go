package repository

import (
	"context"
	"fmt"
	"time"

	appointmentserrors "leadg/internal/appointments/errors"
	"leadg/pkg/config"
	mongotx "leadg/pkg/db/mongo"
	"leadg/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const SlotLockCollectionName = "Slot_locks"

// SlotLockRepository holds advisory locks on (date, reference_time) pairs.
type SlotLockRepository interface {
	Acquire(ctx context.Context, lock *model.SlotLock) error
	Release(ctx context.Context, lockID string) error
}

type mongoSlotLockRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
	now        func() time.Time
}

func NewSlotLockRepository(cfg *config.Config) SlotLockRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return newSlotLockRepository(cfg, db.Collection(SlotLockCollectionName))
}

func newSlotLockRepository(cfg *config.Config, collection *mongo.Collection) *mongoSlotLockRepository {
	return &mongoSlotLockRepository{
		cfg:        cfg,
		collection: collection,
		now:        time.Now,
	}
}

// Acquire inserts the lock document. It returns ErrLockHeld when another
// submission already holds the same slot.
func (r *mongoSlotLockRepository) Acquire(ctx context.Context, lock *model.SlotLock) error {
	ctx, cancel := mongotx.WithTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	now := r.now().UTC()
	lock.CreatedAt = now

	// Expired locks are swept by the TTL index, but the sweep runs once a minute.
	if _, err := r.collection.DeleteOne(ctx, bson.M{"_id": lock.ID, "expires_at": bson.M{"$lt": now}}); err != nil {
		return fmt.Errorf("failed to clear expired slot lock: %w", err)
	}

	if _, err := r.collection.InsertOne(ctx, lock); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("%w: %s", appointmentserrors.ErrLockHeld, lock.ID)
		}
		return fmt.Errorf("failed to acquire slot lock: %w", err)
	}
	return nil
}

func (r *mongoSlotLockRepository) Release(ctx context.Context, lockID string) error {
	ctx, cancel := mongotx.WithTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": lockID})
	return err
}
