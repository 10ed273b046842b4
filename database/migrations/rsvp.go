package migrations

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"dugun.link/configs/configslog"
	"dugun.link/models"
)

func MigrateRSVPTables(db *gorm.DB) error {
	configslog.SLog.Info("Migrating rsvps & rsvp_emails tables...")
	if err := db.AutoMigrate(&models.RSVP{}, &models.RSVPEmail{}); err != nil {
		configslog.Log.Error("Failed to migrate rsvps & rsvp_emails tables", zap.Error(err))
		return err
	}
	configslog.SLog.Info("RSVPs & rsvp_emails tables migrated successfully")
	return nil
}
