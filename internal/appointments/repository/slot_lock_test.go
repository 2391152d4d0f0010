package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	appointmentserrors "leadg/internal/appointments/errors"
	"leadg/pkg/config"
	"leadg/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestSlotLockRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	cfg := &config.Config{WriteTimeout: time.Second}
	now := time.Date(2024, 3, 12, 18, 0, 0, 0, time.UTC)

	newRepo := func(mt *mtest.T) *mongoSlotLockRepository {
		repo := newSlotLockRepository(cfg, mt.Coll)
		repo.now = func() time.Time { return now }
		return repo
	}
	newLock := func() *model.SlotLock {
		return &model.SlotLock{
			ID:        model.SlotLockID("2024-03-12", "14:00"),
			Date:      "2024-03-12",
			Time:      "14:00",
			ExpiresAt: now.Add(10 * time.Second),
		}
	}
	deleteFilter := func(mt *mtest.T) bson.Raw {
		mt.Helper()
		evt := mt.GetStartedEvent()
		if evt == nil || evt.CommandName != "delete" {
			mt.Fatalf("expected delete command, got %+v", evt)
		}
		return evt.Command.Lookup("deletes").Array().Index(0).Value().Document().Lookup("q").Document()
	}

	mt.Run("acquires a free slot after clearing only expired locks", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}),
		)
		lock := newLock()

		if err := newRepo(mt).Acquire(context.Background(), lock); err != nil {
			mt.Fatalf("Acquire: %v", err)
		}
		if !lock.CreatedAt.Equal(now) {
			mt.Errorf("created_at = %v, want %v", lock.CreatedAt, now)
		}

		filter := deleteFilter(mt)
		if id := filter.Lookup("_id").StringValue(); id != lock.ID {
			mt.Errorf("expired-lock filter targets %q, want %q", id, lock.ID)
		}
		if cutoff := filter.Lookup("expires_at", "$lt").Time(); !cutoff.Equal(now) {
			mt.Errorf("expired-lock cutoff = %v, want %v", cutoff, now)
		}

		insert := mt.GetStartedEvent()
		if insert == nil || insert.CommandName != "insert" {
			mt.Fatalf("expected insert command, got %+v", insert)
		}
		doc := insert.Command.Lookup("documents").Array().Index(0).Value().Document()
		if doc.Lookup("_id").StringValue() != lock.ID || doc.Lookup("reference_time").StringValue() != "14:00" {
			mt.Errorf("inserted lock = %s", doc)
		}
	})

	mt.Run("duplicate key means the slot is held", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(),
			mtest.CreateWriteErrorsResponse(mtest.WriteError{
				Index:   0,
				Code:    11000,
				Message: "E11000 duplicate key error collection: leadg.Slot_locks",
			}),
		)

		err := newRepo(mt).Acquire(context.Background(), newLock())
		if !errors.Is(err, appointmentserrors.ErrLockHeld) {
			mt.Errorf("expected ErrLockHeld, got %v", err)
		}
	})

	mt.Run("other write errors are not a held lock", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(),
			mtest.CreateWriteErrorsResponse(mtest.WriteError{Index: 0, Code: 121, Message: "Document failed validation"}),
		)

		err := newRepo(mt).Acquire(context.Background(), newLock())
		if err == nil {
			mt.Fatal("expected error")
		}
		if errors.Is(err, appointmentserrors.ErrLockHeld) {
			mt.Errorf("validation failure reported as held lock: %v", err)
		}
	})

	mt.Run("failure to clear expired lock aborts before insert", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    8000,
			Message: "store unavailable",
		}))

		if err := newRepo(mt).Acquire(context.Background(), newLock()); err == nil {
			mt.Fatal("expected error")
		}
		deleteFilter(mt)
		if evt := mt.GetStartedEvent(); evt != nil {
			mt.Errorf("unexpected %s after failed clear", evt.CommandName)
		}
	})

	mt.Run("release deletes by lock id", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))

		id := model.SlotLockID("2024-03-12", "14:00")
		if err := newRepo(mt).Release(context.Background(), id); err != nil {
			mt.Fatalf("Release: %v", err)
		}
		filter := deleteFilter(mt)
		if got := filter.Lookup("_id").StringValue(); got != id {
			mt.Errorf("release filter = %q, want %q", got, id)
		}
		if _, err := filter.LookupErr("expires_at"); err == nil {
			mt.Error("release must not be limited to expired locks")
		}
	})
}
