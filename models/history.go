package models

import (
	"encoding/json"
	"time"

	"bitbucket.org/greenfields/farmbooks_backend/config"
	"bitbucket.org/greenfields/farmbooks_backend/utils"
	"gorm.io/gorm"
)

const (
	HistoryActionCreate = "create"
	HistoryActionUpdate = "update"
	HistoryActionDelete = "delete"
)

// History is an append-only audit row capturing one write to a tracked
// entity. Data holds the entity snapshot at write time.
type History struct {
	ID         int       `gorm:"primaryKey" json:"id"`
	EntityName string    `gorm:"size:64;not null;index:idx_history_entity" json:"entity_name"`
	EntityId   int       `gorm:"not null;index:idx_history_entity" json:"entity_id"`
	Action        string    `gorm:"size:16;not null" json:"action"`
	UserId        int       `json:"user_id"`
	UserName      string    `gorm:"size:100" json:"user_name"`
	CorrelationId string    `gorm:"size:36" json:"correlation_id"`
	Data          string    `gorm:"type:text" json:"data"`
	CreatedAt     time.Time `json:"created_at"`
}

// createHistory writes the audit row inside the entity's own transaction.
// Actor identity comes from the request context; writes without one (seeds,
// migrations) are still recorded, just unattributed.
func createHistory(tx *gorm.DB, entityName string, entityId int, action string, entity interface{}) error {
	ctx := tx.Statement.Context

	userId, _ := utils.GetUserIdFromContext(ctx)
	userName, _ := utils.GetUserNameFromContext(ctx)
	correlationId, _ := utils.GetCorrelationIdFromContext(ctx)

	data, err := json.Marshal(entity)
	if err != nil {
		config.LogError(config.GetLogger(), "models", "createHistory", entityName, entity, err)
		data = []byte("{}")
	}

	history := History{
		EntityName:    entityName,
		EntityId:      entityId,
		Action:        action,
		UserId:        userId,
		UserName:      userName,
		CorrelationId: correlationId,
		Data:          string(data),
	}
	return tx.Session(&gorm.Session{NewDB: true}).Create(&history).Error
}

func SaveHistoryCreate(tx *gorm.DB, entityName string, entityId int, entity interface{}) error {
	return createHistory(tx, entityName, entityId, HistoryActionCreate, entity)
}

func SaveHistoryUpdate(tx *gorm.DB, entityName string, entityId int, entity interface{}) error {
	return createHistory(tx, entityName, entityId, HistoryActionUpdate, entity)
}

func SaveHistoryDelete(tx *gorm.DB, entityName string, entityId int, entity interface{}) error {
	return createHistory(tx, entityName, entityId, HistoryActionDelete, entity)
}
