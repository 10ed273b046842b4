package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"dugun.link/configs/configslog"
	"dugun.link/models"
	"dugun.link/repositories"
)

// PricingServiceError özel servis hataları
type PricingServiceError string

func (e PricingServiceError) Error() string { return string(e) }

const (
	ErrPlanNotFound          PricingServiceError = "fiyatlandırma planı bulunamadı"
	ErrPlanKeyTaken          PricingServiceError = "bu plan anahtarı zaten kullanılıyor"
	ErrPlanInvalidInput      PricingServiceError = "geçersiz plan girdisi"
	ErrPlanCreationFailed    PricingServiceError = "plan oluşturulamadı"
	ErrPlanUpdateFailed      PricingServiceError = "plan güncellenemedi"
	ErrPlanDeletionFailed    PricingServiceError = "plan silinemedi"
	ErrPlanInvalidDirection  PricingServiceError = "sıralama yönü 'up' veya 'down' olmalıdır"
	ErrPlanFeatureUnknownKey PricingServiceError = "tanımsız özellik anahtarı"
)

// CreatePlanInput yeni plan verisi.
type CreatePlanInput struct {
	Key          string  `json:"key"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	PriceMonthly float64 `json:"priceMonthly"`
	PriceYearly  float64 `json:"priceYearly"`
	Currency     string  `json:"currency"`
	IsActive     *bool   `json:"isActive"`
}

// UpdatePlanInput kısmi güncelleme; nil alanlar dokunulmaz.
type UpdatePlanInput struct {
	Name         *string  `json:"name"`
	Description  *string  `json:"description"`
	PriceMonthly *float64 `json:"priceMonthly"`
	PriceYearly  *float64 `json:"priceYearly"`
	Currency     *string  `json:"currency"`
	IsActive     *bool    `json:"isActive"`
}

// PlanFeatureInput plan-özellik ataması.
type PlanFeatureInput struct {
	FeatureKey string `json:"featureKey"`
	Included   bool   `json:"included"`
	Value      string `json:"value"`
}

// IPricingService fiyatlandırma planı iş mantığı.
type IPricingService interface {
	GetPublicPlans(ctx context.Context) ([]models.ConfigurablePricingPlan, error)
	GetAllPlans(ctx context.Context) ([]models.ConfigurablePricingPlan, error)
	GetPlanByID(ctx context.Context, id uint) (*models.ConfigurablePricingPlan, error)
	CreatePlan(ctx context.Context, adminUserID uint, input CreatePlanInput) (*models.ConfigurablePricingPlan, error)
	UpdatePlan(ctx context.Context, adminUserID uint, id uint, input UpdatePlanInput) error
	DeletePlan(ctx context.Context, adminUserID uint, id uint) error
	// ReorderPlan planı listede bir basamak oynatır. Uç konumda ilgili
	// yöne hareket sessizce atlanır.
	ReorderPlan(ctx context.Context, adminUserID uint, id uint, direction string) error
	ReplacePlanFeatures(ctx context.Context, adminUserID uint, planID uint, features []PlanFeatureInput) error
	ListFeatures(ctx context.Context) ([]models.PricingFeature, error)
}

// PricingService IPricingService arayüzünü uygular.
type PricingService struct {
	repo repositories.IPricingRepository
}

// NewPricingService yeni bir PricingService örneği oluşturur.
func NewPricingService() IPricingService {
	return &PricingService{repo: repositories.NewPricingRepository()}
}

// NewPricingServiceWith bağımlılık enjeksiyonu ile oluşturur (testler).
func NewPricingServiceWith(repo repositories.IPricingRepository) IPricingService {
	return &PricingService{repo: repo}
}

// GetPublicPlans yalnızca aktif planları sıraya göre döndürür.
func (s *PricingService) GetPublicPlans(ctx context.Context) ([]models.ConfigurablePricingPlan, error) {
	return s.repo.FindAllPlans(ctx, true)
}

// GetAllPlans yönetim paneli için tüm planları döndürür.
func (s *PricingService) GetAllPlans(ctx context.Context) ([]models.ConfigurablePricingPlan, error) {
	return s.repo.FindAllPlans(ctx, false)
}

// GetPlanByID planı özellikleriyle getirir.
func (s *PricingService) GetPlanByID(ctx context.Context, id uint) (*models.ConfigurablePricingPlan, error) {
	plan, err := s.repo.FindPlanByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	return plan, nil
}

// CreatePlan yeni planı listenin sonuna ekler.
func (s *PricingService) CreatePlan(ctx context.Context, adminUserID uint, input CreatePlanInput) (*models.ConfigurablePricingPlan, error) {
	input.Key = strings.TrimSpace(input.Key)
	input.Name = strings.TrimSpace(input.Name)
	if adminUserID == 0 || input.Key == "" || input.Name == "" {
		return nil, fmt.Errorf("%w: anahtar ve ad zorunludur", ErrPlanInvalidInput)
	}
	if input.PriceMonthly < 0 || input.PriceYearly < 0 {
		return nil, fmt.Errorf("%w: fiyat negatif olamaz", ErrPlanInvalidInput)
	}
	currency := strings.ToUpper(strings.TrimSpace(input.Currency))
	if currency == "" {
		currency = "TRY"
	}

	maxOrder, exists, err := s.repo.MaxDisplayOrder(ctx)
	if err != nil {
		return nil, ErrPlanCreationFailed
	}
	order := 0
	if exists {
		order = maxOrder + 1
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	plan := &models.ConfigurablePricingPlan{
		Key:          input.Key,
		Name:         input.Name,
		Description:  strings.TrimSpace(input.Description),
		PriceMonthly: input.PriceMonthly,
		PriceYearly:  input.PriceYearly,
		Currency:     currency,
		DisplayOrder: order,
		IsActive:     isActive,
	}
	ctxWithUser := context.WithValue(ctx, models.ContextUserIDKey, adminUserID)
	if err := s.repo.CreatePlan(ctxWithUser, plan); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, ErrPlanKeyTaken
		}
		return nil, ErrPlanCreationFailed
	}
	configslog.SLog.Infof("Fiyatlandırma planı oluşturuldu: %s (ID %d, sıra %d)", plan.Key, plan.ID, plan.DisplayOrder)
	return plan, nil
}

// UpdatePlan nil olmayan alanları günceller.
func (s *PricingService) UpdatePlan(ctx context.Context, adminUserID uint, id uint, input UpdatePlanInput) error {
	if adminUserID == 0 || id == 0 {
		return fmt.Errorf("%w: geçersiz ID", ErrPlanInvalidInput)
	}
	data := map[string]interface{}{}
	if input.Name != nil {
		trimmed := strings.TrimSpace(*input.Name)
		if trimmed == "" {
			return fmt.Errorf("%w: ad boş olamaz", ErrPlanInvalidInput)
		}
		data["name"] = trimmed
	}
	if input.Description != nil {
		data["description"] = strings.TrimSpace(*input.Description)
	}
	if input.PriceMonthly != nil {
		if *input.PriceMonthly < 0 {
			return fmt.Errorf("%w: fiyat negatif olamaz", ErrPlanInvalidInput)
		}
		data["price_monthly"] = *input.PriceMonthly
	}
	if input.PriceYearly != nil {
		if *input.PriceYearly < 0 {
			return fmt.Errorf("%w: fiyat negatif olamaz", ErrPlanInvalidInput)
		}
		data["price_yearly"] = *input.PriceYearly
	}
	if input.Currency != nil {
		data["currency"] = strings.ToUpper(strings.TrimSpace(*input.Currency))
	}
	if input.IsActive != nil {
		data["is_active"] = *input.IsActive
	}
	if len(data) == 0 {
		return nil
	}

	if err := s.repo.UpdatePlan(ctx, id, data, adminUserID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrPlanNotFound
		}
		if errors.Is(err, repositories.ErrDuplicate) {
			return ErrPlanKeyTaken
		}
		return ErrPlanUpdateFailed
	}
	configslog.SLog.Infof("Fiyatlandırma planı güncellendi: ID %d", id)
	return nil
}

// DeletePlan planı siler; kalan sıralar repository'de kaydırılır.
func (s *PricingService) DeletePlan(ctx context.Context, adminUserID uint, id uint) error {
	if adminUserID == 0 || id == 0 {
		return fmt.Errorf("%w: geçersiz ID", ErrPlanInvalidInput)
	}
	plan, err := s.repo.FindPlanByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrPlanNotFound
		}
		return err
	}
	if err := s.repo.DeletePlan(ctx, plan, adminUserID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrPlanNotFound
		}
		return ErrPlanDeletionFailed
	}
	configslog.SLog.Infof("Fiyatlandırma planı silindi: %s (ID %d)", plan.Key, id)
	return nil
}

// ReorderPlan planı komşusuyla takas ederek bir basamak oynatır.
func (s *PricingService) ReorderPlan(ctx context.Context, adminUserID uint, id uint, direction string) error {
	if adminUserID == 0 || id == 0 {
		return fmt.Errorf("%w: geçersiz ID", ErrPlanInvalidInput)
	}
	direction = strings.ToLower(strings.TrimSpace(direction))
	if direction != "up" && direction != "down" {
		return ErrPlanInvalidDirection
	}

	plan, err := s.repo.FindPlanByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrPlanNotFound
		}
		return err
	}

	targetOrder := plan.DisplayOrder - 1
	if direction == "down" {
		targetOrder = plan.DisplayOrder + 1
	}
	if targetOrder < 0 {
		return nil // zaten en üstte
	}

	neighbor, err := s.repo.FindPlanByDisplayOrder(ctx, targetOrder)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil // zaten en altta
		}
		return err
	}

	if err := s.repo.SwapDisplayOrders(ctx, plan.ID, neighbor.ID, adminUserID); err != nil {
		return ErrPlanUpdateFailed
	}
	configslog.SLog.Infof("Plan sırası değiştirildi: %s <-> %s", plan.Key, neighbor.Key)
	return nil
}

// ReplacePlanFeatures özellik atamalarını katalog doğrulamasıyla değiştirir.
func (s *PricingService) ReplacePlanFeatures(ctx context.Context, adminUserID uint, planID uint, features []PlanFeatureInput) error {
	if adminUserID == 0 || planID == 0 {
		return fmt.Errorf("%w: geçersiz ID", ErrPlanInvalidInput)
	}
	if _, err := s.repo.FindPlanByID(ctx, planID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrPlanNotFound
		}
		return err
	}

	rows := make([]models.PlanFeature, 0, len(features))
	seen := map[string]bool{}
	for _, f := range features {
		key := strings.TrimSpace(f.FeatureKey)
		if key == "" || seen[key] {
			return fmt.Errorf("%w: özellik anahtarları boş veya mükerrer olamaz", ErrPlanInvalidInput)
		}
		seen[key] = true
		feature, err := s.repo.FindFeatureByKey(ctx, key)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return fmt.Errorf("%w: %s", ErrPlanFeatureUnknownKey, key)
			}
			return err
		}
		rows = append(rows, models.PlanFeature{
			FeatureID: feature.ID,
			Included:  f.Included,
			Value:     strings.TrimSpace(f.Value),
		})
	}

	if err := s.repo.ReplaceFeatures(ctx, planID, rows, adminUserID); err != nil {
		return ErrPlanUpdateFailed
	}
	configslog.SLog.Infof("Plan özellikleri güncellendi: Plan %d, %d özellik", planID, len(rows))
	return nil
}

// ListFeatures özellik kataloğunu döndürür.
func (s *PricingService) ListFeatures(ctx context.Context) ([]models.PricingFeature, error) {
	return s.repo.FindAllFeatures(ctx)
}

var _ IPricingService = (*PricingService)(nil)
