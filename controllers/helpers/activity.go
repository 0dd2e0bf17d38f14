package helpers

import (
	"time"

	"gudang-app/models"

	"gorm.io/gorm"
)

// LogActivity inserts a new activity log record.
func LogActivity(db *gorm.DB, actor int, action, tableName string, recordID uint, detail string) error {
	activity := models.ActivityLog{
		UserID:    actor,
		Action:    action,
		TableName: tableName,
		RecordID:  recordID,
		Detail:    detail,
		CreatedAt: time.Now(),
	}

	if err := db.Create(&activity).Error; err != nil {
		return err
	}

	return nil
}
