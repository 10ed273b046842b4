package repositories

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"dugun.link/configs"
	"dugun.link/configs/configslog"
	"dugun.link/models"
)

// IPricingRepository fiyatlandırma planı veritabanı işlemleri için arayüz.
type IPricingRepository interface {
	CreatePlan(ctx context.Context, plan *models.ConfigurablePricingPlan) error
	FindPlanByID(ctx context.Context, id uint) (*models.ConfigurablePricingPlan, error)
	FindAllPlans(ctx context.Context, onlyActive bool) ([]models.ConfigurablePricingPlan, error)
	UpdatePlan(ctx context.Context, id uint, data map[string]interface{}, updatedByUserID uint) error
	// DeletePlan planı siler ve kalan planların DisplayOrder değerlerini
	// 0'dan bitişik kalacak şekilde kaydırır.
	DeletePlan(ctx context.Context, plan *models.ConfigurablePricingPlan, deletedByUserID uint) error
	MaxDisplayOrder(ctx context.Context) (int, bool, error)
	// SwapDisplayOrders iki planın sıra değerlerini tek transaction'da
	// tek UPDATE ile takas eder.
	SwapDisplayOrders(ctx context.Context, planID, neighborID uint, updatedByUserID uint) error
	FindPlanByDisplayOrder(ctx context.Context, order int) (*models.ConfigurablePricingPlan, error)
	// ReplaceFeatures planın özellik ilişkilerini bütün olarak değiştirir.
	ReplaceFeatures(ctx context.Context, planID uint, features []models.PlanFeature, userID uint) error
	FindFeatureByKey(ctx context.Context, key string) (*models.PricingFeature, error)
	FindAllFeatures(ctx context.Context) ([]models.PricingFeature, error)
	CreateFeature(ctx context.Context, feature *models.PricingFeature) error
}

// PricingRepository IPricingRepository arayüzünü uygular.
type PricingRepository struct {
	db *gorm.DB
}

// NewPricingRepository yeni bir PricingRepository örneği oluşturur.
func NewPricingRepository() IPricingRepository {
	return &PricingRepository{db: configs.GetDB()}
}

// NewPricingRepositoryTx transaction'a bağlı repository oluşturur.
func NewPricingRepositoryTx(tx *gorm.DB) IPricingRepository {
	return &PricingRepository{db: tx}
}

func (r *PricingRepository) getDB(ctx context.Context) *gorm.DB {
	return dbFromContext(ctx, r.db)
}

// CreatePlan yeni bir plan oluşturur.
func (r *PricingRepository) CreatePlan(ctx context.Context, plan *models.ConfigurablePricingPlan) error {
	if plan == nil || plan.Key == "" {
		return errors.New("geçersiz plan verisi")
	}
	if err := r.getDB(ctx).Create(plan).Error; err != nil {
		if isDuplicateKeyError(err) {
			return ErrDuplicate
		}
		configslog.Log.Error("PricingRepository.CreatePlan: DB error", zap.Error(err))
		return err
	}
	return nil
}

// FindPlanByID planı özellikleriyle birlikte getirir.
func (r *PricingRepository) FindPlanByID(ctx context.Context, id uint) (*models.ConfigurablePricingPlan, error) {
	if id == 0 {
		return nil, errors.New("geçersiz plan ID")
	}
	var plan models.ConfigurablePricingPlan
	err := r.getDB(ctx).Preload("Features").Preload("Features.Feature").First(&plan, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("PricingRepository.FindPlanByID: DB error", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &plan, nil
}

// FindAllPlans planları sıra değerine göre getirir.
func (r *PricingRepository) FindAllPlans(ctx context.Context, onlyActive bool) ([]models.ConfigurablePricingPlan, error) {
	db := r.getDB(ctx).Preload("Features").Preload("Features.Feature")
	if onlyActive {
		db = db.Where("is_active = ?", true)
	}
	var plans []models.ConfigurablePricingPlan
	if err := db.Order("display_order asc").Find(&plans).Error; err != nil {
		configslog.Log.Error("PricingRepository.FindAllPlans: DB error", zap.Error(err))
		return nil, err
	}
	return plans, nil
}

// UpdatePlan plan alanlarını map ile günceller.
func (r *PricingRepository) UpdatePlan(ctx context.Context, id uint, data map[string]interface{}, updatedByUserID uint) error {
	if id == 0 {
		return errors.New("güncellenecek plan ID'si geçersiz")
	}
	if len(data) == 0 {
		return errors.New("güncellenecek veri boş olamaz")
	}
	ctxWithUser := context.WithValue(ctx, models.ContextUserIDKey, updatedByUserID)
	db := r.getDB(ctxWithUser)

	result := db.Model(&models.ConfigurablePricingPlan{}).Where("id = ?", id).Updates(data)
	if result.Error != nil {
		if isDuplicateKeyError(result.Error) {
			return ErrDuplicate
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		var exists int64
		if err := db.Model(&models.ConfigurablePricingPlan{}).Where("id = ?", id).Count(&exists).Error; err == nil && exists == 0 {
			return ErrNotFound
		}
	}
	return nil
}

// DeletePlan planı siler ve sıra değerlerini bitişik tutar.
func (r *PricingRepository) DeletePlan(ctx context.Context, plan *models.ConfigurablePricingPlan, deletedByUserID uint) error {
	if plan == nil || plan.ID == 0 {
		return errors.New("silinecek plan geçerli değil")
	}
	db := r.getDB(ctx)

	return db.Transaction(func(tx *gorm.DB) error {
		if deletedByUserID != 0 {
			if err := tx.Model(plan).UpdateColumn("deleted_by", &deletedByUserID).Error; err != nil {
				return err
			}
		}
		result := tx.Delete(plan)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		// Silinen sıranın üstündekileri bir aşağı kaydır: sıralar 0'dan
		// bitişik kalmalı.
		return tx.Model(&models.ConfigurablePricingPlan{}).
			Where("display_order > ?", plan.DisplayOrder).
			UpdateColumn("display_order", gorm.Expr("display_order - 1")).Error
	})
}

// MaxDisplayOrder en büyük sıra değerini döndürür; hiç plan yoksa
// exists=false.
func (r *PricingRepository) MaxDisplayOrder(ctx context.Context) (int, bool, error) {
	var row struct {
		MaxOrder *int
	}
	err := r.getDB(ctx).Model(&models.ConfigurablePricingPlan{}).
		Select("MAX(display_order) AS max_order").Scan(&row).Error
	if err != nil {
		configslog.Log.Error("PricingRepository.MaxDisplayOrder: DB error", zap.Error(err))
		return 0, false, err
	}
	if row.MaxOrder == nil {
		return 0, false, nil
	}
	return *row.MaxOrder, true, nil
}

// FindPlanByDisplayOrder verilen sıradaki planı bulur.
func (r *PricingRepository) FindPlanByDisplayOrder(ctx context.Context, order int) (*models.ConfigurablePricingPlan, error) {
	if order < 0 {
		return nil, ErrNotFound
	}
	var plan models.ConfigurablePricingPlan
	err := r.getDB(ctx).Where("display_order = ?", order).First(&plan).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("PricingRepository.FindPlanByDisplayOrder: DB error",
			zap.Int("order", order), zap.Error(err))
		return nil, err
	}
	return &plan, nil
}

// SwapDisplayOrders iki planın sırasını transaction içinde takas eder.
func (r *PricingRepository) SwapDisplayOrders(ctx context.Context, planID, neighborID uint, updatedByUserID uint) error {
	if planID == 0 || neighborID == 0 || planID == neighborID {
		return errors.New("geçersiz takas parametreleri")
	}
	ctxWithUser := context.WithValue(ctx, models.ContextUserIDKey, updatedByUserID)
	db := r.getDB(ctxWithUser)

	return db.Transaction(func(tx *gorm.DB) error {
		var plan, neighbor models.ConfigurablePricingPlan
		if err := tx.First(&plan, planID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if err := tx.First(&neighbor, neighborID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		// Takas tek UPDATE ile yapılır: UpdateColumn yeni değeri model
		// struct'ına geri yazdığından ardışık iki güncelleme ikinci satıra
		// kendi mevcut sırasını kopyalar.
		return tx.Model(&models.ConfigurablePricingPlan{}).
			Where("id IN ?", []uint{planID, neighborID}).
			UpdateColumn("display_order", gorm.Expr(
				"CASE id WHEN ? THEN ? ELSE ? END",
				planID, neighbor.DisplayOrder, plan.DisplayOrder,
			)).Error
	})
}

// ReplaceFeatures planın özellik ilişkilerini siler ve yenilerini yazar.
func (r *PricingRepository) ReplaceFeatures(ctx context.Context, planID uint, features []models.PlanFeature, userID uint) error {
	if planID == 0 {
		return errors.New("geçersiz plan ID")
	}
	ctxWithUser := context.WithValue(ctx, models.ContextUserIDKey, userID)
	db := r.getDB(ctxWithUser)

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("plan_id = ?", planID).Delete(&models.PlanFeature{}).Error; err != nil {
			return err
		}
		for i := range features {
			features[i].PlanID = planID
			if err := tx.Create(&features[i]).Error; err != nil {
				if isDuplicateKeyError(err) {
					return ErrDuplicate
				}
				return err
			}
		}
		return nil
	})
}

// FindFeatureByKey katalogdan özellik bulur.
func (r *PricingRepository) FindFeatureByKey(ctx context.Context, key string) (*models.PricingFeature, error) {
	if key == "" {
		return nil, errors.New("aranacak özellik anahtarı boş olamaz")
	}
	var feature models.PricingFeature
	err := r.getDB(ctx).Where("key = ?", key).First(&feature).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("PricingRepository.FindFeatureByKey: DB error", zap.String("key", key), zap.Error(err))
		return nil, err
	}
	return &feature, nil
}

// FindAllFeatures özellik kataloğunu getirir.
func (r *PricingRepository) FindAllFeatures(ctx context.Context) ([]models.PricingFeature, error) {
	var features []models.PricingFeature
	if err := r.getDB(ctx).Order("key asc").Find(&features).Error; err != nil {
		configslog.Log.Error("PricingRepository.FindAllFeatures: DB error", zap.Error(err))
		return nil, err
	}
	return features, nil
}

// CreateFeature kataloğa yeni özellik ekler.
func (r *PricingRepository) CreateFeature(ctx context.Context, feature *models.PricingFeature) error {
	if feature == nil || feature.Key == "" {
		return errors.New("geçersiz özellik verisi")
	}
	if err := r.getDB(ctx).Create(feature).Error; err != nil {
		if isDuplicateKeyError(err) {
			return ErrDuplicate
		}
		configslog.Log.Error("PricingRepository.CreateFeature: DB error", zap.Error(err))
		return err
	}
	return nil
}

var _ IPricingRepository = (*PricingRepository)(nil)
