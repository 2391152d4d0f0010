package model

import "time"

// SlotLock is an advisory lock held while a submission for a
// (date, reference_time) pair is checked and inserted. The unique _id makes a
// second concurrent insert fail with a duplicate key error.
type SlotLock struct {
	ID        string    `bson:"_id" json:"id"`
	Date      string    `bson:"date" json:"date"`
	Time      string    `bson:"reference_time" json:"reference_time"`
	ExpiresAt time.Time `bson:"expires_at" json:"expires_at"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// SlotLockID is the lock key for a slot.
func SlotLockID(date, referenceTime string) string {
	return "slot_lock_" + date + "_" + referenceTime
}
