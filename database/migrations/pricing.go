package migrations

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"dugun.link/configs/configslog"
	"dugun.link/models"
)

func MigratePricingTables(db *gorm.DB) error {
	configslog.SLog.Info("Migrating pricing_features, configurable_pricing_plans & plan_features tables...")
	err := db.AutoMigrate(&models.PricingFeature{}, &models.ConfigurablePricingPlan{}, &models.PlanFeature{})
	if err != nil {
		configslog.Log.Error("Failed to migrate pricing tables", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Pricing tables migrated successfully")
	return nil
}
