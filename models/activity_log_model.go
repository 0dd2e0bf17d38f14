package models

import (
	"gudang-app/controllers/idgen"
	"gudang-app/types"
	"time"

	"gorm.io/gorm"
)

type ActivityLog struct {
	ID        types.SnowflakeID `json:"ID" gorm:"primaryKey"`
	UserID    int               `json:"user_id"`
	Action    string            `json:"action"`
	TableName string            `json:"table_name"`
	RecordID  uint              `json:"record_id"`
	Detail    string            `json:"detail"`
	CreatedAt time.Time         `json:"created_at"`
}

func (a *ActivityLog) BeforeCreate(tx *gorm.DB) (err error) {
	a.ID = types.SnowflakeID(idgen.GenerateID())
	return
}
