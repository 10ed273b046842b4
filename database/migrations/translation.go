package migrations

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"dugun.link/configs/configslog"
	"dugun.link/models"
)

func MigrateTranslationTables(db *gorm.DB) error {
	configslog.SLog.Info("Migrating translation_keys & translation_values tables...")
	if err := db.AutoMigrate(&models.TranslationKey{}, &models.TranslationValue{}); err != nil {
		configslog.Log.Error("Failed to migrate translation tables", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Translation tables migrated successfully")
	return nil
}
