package seeders

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"dugun.link/configs/configslog"
	"dugun.link/models"
)

type planSeed struct {
	plan     models.ConfigurablePricingPlan
	features map[string]planFeatureSeed
}

type planFeatureSeed struct {
	included bool
	value    string
}

// SeedPricing özellik kataloğunu ve başlangıç planlarını oluşturur.
// Mevcut kayıtlar atlanır; fiyat güncellemesi panelden yapılır.
func SeedPricing(db *gorm.DB) error {
	systemUserID := uint(1)
	ctx := context.WithValue(context.Background(), models.ContextUserIDKey, systemUserID)

	featuresToSeed := []models.PricingFeature{
		{Key: "custom_slug", Name: "Özel adres", Description: "Davetiye için özel slug seçimi"},
		{Key: "rsvp", Name: "LCV toplama", Description: "Misafirlerden katılım yanıtı toplama"},
		{Key: "photo_gallery", Name: "Fotoğraf galerisi", Description: "Davetiyede fotoğraf galerisi"},
		{Key: "guest_limit", Name: "Misafir sınırı", Description: "LCV yanıtı alabilecek en fazla misafir sayısı"},
		{Key: "translations", Name: "Çok dilli davetiye", Description: "Davetiyenin birden fazla dilde sunulması"},
	}

	configslog.SLog.Info("Fiyatlandırma özellikleri seed işlemi başlıyor...")
	for _, feature := range featuresToSeed {
		var existing models.PricingFeature
		result := db.Where("key = ?", feature.Key).First(&existing)
		if result.Error == nil {
			configslog.SLog.Debugf("Özellik '%s' zaten mevcut, oluşturma atlanıyor.", feature.Key)
			continue
		}
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			configslog.Log.Error("Özellik kontrol edilirken veritabanı hatası",
				zap.String("feature_key", feature.Key), zap.Error(result.Error))
			return result.Error
		}
		if err := db.WithContext(ctx).Create(&feature).Error; err != nil {
			configslog.Log.Error("Özellik oluşturulamadı", zap.String("feature_key", feature.Key), zap.Error(err))
			return err
		}
		configslog.SLog.Infof("Özellik '%s' oluşturuldu (ID: %d).", feature.Key, feature.ID)
	}

	plansToSeed := []planSeed{
		{
			plan: models.ConfigurablePricingPlan{
				Key: "basic", Name: "Temel", Description: "Tek dilli davetiye ve LCV toplama",
				PriceMonthly: 0, PriceYearly: 0, Currency: "TRY", DisplayOrder: 0, IsActive: true,
			},
			features: map[string]planFeatureSeed{
				"rsvp":        {included: true},
				"guest_limit": {included: true, value: "50"},
			},
		},
		{
			plan: models.ConfigurablePricingPlan{
				Key: "standard", Name: "Standart", Description: "Özel adres ve fotoğraf galerisi",
				PriceMonthly: 99, PriceYearly: 990, Currency: "TRY", DisplayOrder: 1, IsActive: true,
			},
			features: map[string]planFeatureSeed{
				"custom_slug":   {included: true},
				"rsvp":          {included: true},
				"photo_gallery": {included: true},
				"guest_limit":   {included: true, value: "250"},
			},
		},
		{
			plan: models.ConfigurablePricingPlan{
				Key: "premium", Name: "Premium", Description: "Tüm özellikler, sınırsız misafir",
				PriceMonthly: 199, PriceYearly: 1990, Currency: "TRY", DisplayOrder: 2, IsActive: true,
			},
			features: map[string]planFeatureSeed{
				"custom_slug":   {included: true},
				"rsvp":          {included: true},
				"photo_gallery": {included: true},
				"translations":  {included: true},
				"guest_limit":   {included: true, value: "unlimited"},
			},
		},
	}

	configslog.SLog.Info("Fiyatlandırma planları seed işlemi başlıyor...")
	for _, seed := range plansToSeed {
		var existing models.ConfigurablePricingPlan
		result := db.Where("key = ?", seed.plan.Key).First(&existing)
		if result.Error == nil {
			configslog.SLog.Debugf("Plan '%s' zaten mevcut, oluşturma atlanıyor.", seed.plan.Key)
			continue
		}
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			configslog.Log.Error("Plan kontrol edilirken veritabanı hatası",
				zap.String("plan_key", seed.plan.Key), zap.Error(result.Error))
			return result.Error
		}

		plan := seed.plan
		if err := db.WithContext(ctx).Create(&plan).Error; err != nil {
			configslog.Log.Error("Plan oluşturulamadı", zap.String("plan_key", plan.Key), zap.Error(err))
			return err
		}

		for featureKey, fs := range seed.features {
			var feature models.PricingFeature
			if err := db.Where("key = ?", featureKey).First(&feature).Error; err != nil {
				configslog.Log.Error("Plan özelliği katalogda bulunamadı",
					zap.String("plan_key", plan.Key), zap.String("feature_key", featureKey), zap.Error(err))
				return err
			}
			row := models.PlanFeature{
				PlanID:    plan.ID,
				FeatureID: feature.ID,
				Included:  fs.included,
				Value:     fs.value,
			}
			if err := db.WithContext(ctx).Create(&row).Error; err != nil {
				configslog.Log.Error("Plan özelliği oluşturulamadı",
					zap.String("plan_key", plan.Key), zap.String("feature_key", featureKey), zap.Error(err))
				return err
			}
		}
		configslog.SLog.Infof("Plan '%s' oluşturuldu (ID: %d, %d özellik).", plan.Key, plan.ID, len(seed.features))
	}

	configslog.SLog.Info("Fiyatlandırma seed işlemi tamamlandı.")
	return nil
}
