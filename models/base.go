package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WriteOp tags a pending write for the audit/identity stamper.
type WriteOp string

const (
	WriteOpInsert WriteOp = "Insert"
	WriteOpUpdate WriteOp = "Update"
)

// RecordStamp is the identity/audit value object embedded in every persisted
// entity: store-assigned surrogate id, externally referencable UUID, and UTC
// audit timestamps. Services never write these fields directly; the stamper
// does, inside the same commit as the data write.
type RecordStamp struct {
	ID         int       `gorm:"primaryKey" json:"id"`
	ExternalId string    `gorm:"size:36;not null" json:"external_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `gorm:"column:last_updated_at;autoUpdateTime" json:"last_updated_at"`
}

// StampForWrite applies the audit/identity contract for one pending write.
// Insert: generate ExternalId only when unset, CreatedAt = UpdatedAt = now.
// Update: bump UpdatedAt, leave CreatedAt and ExternalId untouched.
// Pure function, so the contract is testable without a live store.
func StampForWrite(op WriteOp, s *RecordStamp, now time.Time) {
	now = now.UTC()
	switch op {
	case WriteOpInsert:
		if s.ExternalId == "" {
			s.ExternalId = uuid.NewString()
		}
		s.CreatedAt = now
		s.UpdatedAt = now
	case WriteOpUpdate:
		s.UpdatedAt = now
	}
}

// Stamping rides the write transaction: a rolled-back commit leaves no
// partially stamped record. Map-style Updates are covered by the
// autoUpdateTime tag on last_updated_at.
func (s *RecordStamp) BeforeCreate(tx *gorm.DB) error {
	StampForWrite(WriteOpInsert, s, time.Now())
	return nil
}

func (s *RecordStamp) BeforeUpdate(tx *gorm.DB) error {
	StampForWrite(WriteOpUpdate, s, time.Now())
	return nil
}
