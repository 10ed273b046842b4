package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"dugun.link/configs/configslog"
	"dugun.link/locales"
	"dugun.link/models"
	"dugun.link/pkg/deepmerge"
	"dugun.link/repositories"
)

// TranslationServiceError özel servis hataları
type TranslationServiceError string

func (e TranslationServiceError) Error() string { return string(e) }

const (
	ErrTranslationKeyNotFound    TranslationServiceError = "çeviri anahtarı bulunamadı"
	ErrTranslationKeyTaken       TranslationServiceError = "bu çeviri anahtarı zaten mevcut"
	ErrTranslationInvalidInput   TranslationServiceError = "geçersiz çeviri girdisi"
	ErrTranslationLocaleUnknown  TranslationServiceError = "desteklenmeyen dil"
	ErrTranslationUpdateFailed   TranslationServiceError = "çeviri güncellenemedi"
	ErrTranslationCreationFailed TranslationServiceError = "çeviri anahtarı oluşturulamadı"
	ErrTranslationDeletionFailed TranslationServiceError = "çeviri anahtarı silinemedi"
)

// ITranslationService statik bundle'lar + canlı override katmanı.
type ITranslationService interface {
	// Bundle istenen dilin birleşik (statik + override) sözlüğünü döndürür.
	Bundle(lang string) (map[string]any, error)
	// AllBundles tüm dillerin birleşik sözlüklerini döndürür.
	AllBundles() map[string]map[string]any
	// Lookup tek bir anahtarı çözer. Zincir: canlı override → istenen dilin
	// statik bundle'ı → varsayılan dilin statik bundle'ı → fallback
	// argümanı → anahtarın kendisi. Asla hata üretmez.
	Lookup(lang, key string, fallback ...string) string
	// Refresh override katmanını veritabanından yeniden yükler.
	Refresh(ctx context.Context) error
	// StartLiveRefresh düzenleme oturumu süresince aralıklı yenileme
	// başlatır; ctx iptal edilince goroutine temiz biçimde durur.
	StartLiveRefresh(ctx context.Context, interval time.Duration)

	ListKeys(ctx context.Context) ([]models.TranslationKey, error)
	CreateKey(ctx context.Context, adminUserID uint, key, section string) (*models.TranslationKey, error)
	UpdateKey(ctx context.Context, adminUserID uint, id uint, key, section *string) error
	DeleteKey(ctx context.Context, adminUserID uint, id uint) error
	UpsertValue(ctx context.Context, adminUserID uint, keyID uint, language, value string) error
}

// TranslationService ITranslationService arayüzünü uygular.
type TranslationService struct {
	repo   repositories.ITranslationRepository
	static map[string]locales.Bundle

	mu      sync.RWMutex
	overlay map[string]map[string]any // dil -> iç içe override ağacı
	merged  map[string]map[string]any // dil -> birleşik cache
}

var (
	translationOnce      sync.Once
	translationSingleton *TranslationService
)

// NewTranslationService paylaşılan servisi döndürür; overlay cache'inin
// süreç genelinde tek olması gerekir.
func NewTranslationService() ITranslationService {
	translationOnce.Do(func() {
		static, err := locales.Load()
		if err != nil {
			// Statik bundle'lar gömülü olduğundan bu normalde imkansızdır.
			configslog.Log.Error("Statik dil bundle'ları yüklenemedi", zap.Error(err))
			static = map[string]locales.Bundle{}
		}
		translationSingleton = newTranslationService(repositories.NewTranslationRepository(), static)
	})
	return translationSingleton
}

// NewTranslationServiceWith bağımlılık enjeksiyonu ile oluşturur (testler).
func NewTranslationServiceWith(repo repositories.ITranslationRepository, static map[string]locales.Bundle) *TranslationService {
	return newTranslationService(repo, static)
}

func newTranslationService(repo repositories.ITranslationRepository, static map[string]locales.Bundle) *TranslationService {
	return &TranslationService{
		repo:    repo,
		static:  static,
		overlay: map[string]map[string]any{},
		merged:  map[string]map[string]any{},
	}
}

// Refresh override katmanını yeniden kurar ve cache'i geçersiz kılar.
func (s *TranslationService) Refresh(ctx context.Context) error {
	keys, err := s.repo.FindAllKeys(ctx)
	if err != nil {
		// Override yüklenemezse istek düşürülmez; son iyi/statik veriyle
		// devam edilir.
		configslog.Log.Warn("Çeviri override katmanı yüklenemedi, statik bundle'lar kullanılacak", zap.Error(err))
		return err
	}

	overlay := map[string]map[string]any{}
	for _, lang := range locales.Supported {
		overlay[lang] = map[string]any{}
	}
	for _, key := range keys {
		for _, value := range key.Values {
			tree, ok := overlay[value.Language]
			if !ok {
				continue // desteklenmeyen dil satırı
			}
			if strings.TrimSpace(value.Value) == "" {
				continue // boş değer hiç yazılmamış sayılır
			}
			deepmerge.SetPath(tree, key.Key, value.Value)
		}
	}

	s.mu.Lock()
	s.overlay = overlay
	s.merged = map[string]map[string]any{}
	s.mu.Unlock()
	return nil
}

// StartLiveRefresh ctx iptal edilene kadar aralıklı Refresh çalıştırır.
func (s *TranslationService) StartLiveRefresh(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 2 * time.Second
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				configslog.SLog.Debug("Canlı çeviri yenileme durduruldu")
				return
			case <-ticker.C:
				_ = s.Refresh(ctx) // hata Refresh içinde loglanır
			}
		}
	}()
}

// Bundle istenen dilin birleşik sözlüğünü döndürür.
func (s *TranslationService) Bundle(lang string) (map[string]any, error) {
	if !locales.IsSupported(lang) {
		return nil, ErrTranslationLocaleUnknown
	}

	s.mu.RLock()
	if cached, ok := s.merged[lang]; ok {
		s.mu.RUnlock()
		return cached, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if cached, ok := s.merged[lang]; ok {
		return cached, nil
	}
	static := map[string]any(s.static[lang])
	merged := deepmerge.NonEmpty(static, s.overlay[lang])
	s.merged[lang] = merged
	return merged, nil
}

// AllBundles tüm dillerin birleşik sözlükleri.
func (s *TranslationService) AllBundles() map[string]map[string]any {
	result := make(map[string]map[string]any, len(locales.Supported))
	for _, lang := range locales.Supported {
		if bundle, err := s.Bundle(lang); err == nil {
			result[lang] = bundle
		}
	}
	return result
}

// Lookup fallback zincirini uygular; asla boş string veya hata döndürmez.
func (s *TranslationService) Lookup(lang, key string, fallback ...string) string {
	if !locales.IsSupported(lang) {
		lang = locales.DefaultLocale
	}

	s.mu.RLock()
	overlayTree := s.overlay[lang]
	s.mu.RUnlock()

	if value, ok := locales.Bundle(overlayTree).Lookup(key); ok {
		return value
	}
	if value, ok := s.static[lang].Lookup(key); ok {
		return value
	}
	if lang != locales.DefaultLocale {
		if value, ok := s.static[locales.DefaultLocale].Lookup(key); ok {
			return value
		}
	}
	for _, fb := range fallback {
		if strings.TrimSpace(fb) != "" {
			return fb
		}
	}
	return key
}

// invalidate birleşik cache'i temizler; mutasyonlardan sonra çağrılır.
func (s *TranslationService) invalidate() {
	s.mu.Lock()
	s.merged = map[string]map[string]any{}
	s.mu.Unlock()
}

// ListKeys tüm override anahtarlarını getirir.
func (s *TranslationService) ListKeys(ctx context.Context) ([]models.TranslationKey, error) {
	return s.repo.FindAllKeys(ctx)
}

// CreateKey yeni bir override anahtarı oluşturur.
func (s *TranslationService) CreateKey(ctx context.Context, adminUserID uint, key, section string) (*models.TranslationKey, error) {
	key = strings.TrimSpace(key)
	if adminUserID == 0 || key == "" {
		return nil, fmt.Errorf("%w: anahtar boş olamaz", ErrTranslationInvalidInput)
	}
	record := &models.TranslationKey{Key: key, Section: strings.TrimSpace(section)}
	ctxWithUser := context.WithValue(ctx, models.ContextUserIDKey, adminUserID)
	if err := s.repo.CreateKey(ctxWithUser, record); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, ErrTranslationKeyTaken
		}
		return nil, ErrTranslationCreationFailed
	}
	s.invalidate()
	configslog.SLog.Infof("Çeviri anahtarı oluşturuldu: %s (ID %d)", key, record.ID)
	return record, nil
}

// UpdateKey anahtar adını/bölümünü günceller.
func (s *TranslationService) UpdateKey(ctx context.Context, adminUserID uint, id uint, key, section *string) error {
	if adminUserID == 0 || id == 0 {
		return fmt.Errorf("%w: geçersiz ID", ErrTranslationInvalidInput)
	}
	data := map[string]interface{}{}
	if key != nil {
		trimmed := strings.TrimSpace(*key)
		if trimmed == "" {
			return fmt.Errorf("%w: anahtar boş olamaz", ErrTranslationInvalidInput)
		}
		data["key"] = trimmed
	}
	if section != nil {
		data["section"] = strings.TrimSpace(*section)
	}
	if len(data) == 0 {
		return nil
	}
	if err := s.repo.UpdateKey(ctx, id, data, adminUserID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrTranslationKeyNotFound
		}
		if errors.Is(err, repositories.ErrDuplicate) {
			return ErrTranslationKeyTaken
		}
		return ErrTranslationUpdateFailed
	}
	if err := s.Refresh(ctx); err == nil {
		configslog.SLog.Infof("Çeviri anahtarı güncellendi: ID %d", id)
	}
	return nil
}

// DeleteKey anahtarı ve değerlerini siler.
func (s *TranslationService) DeleteKey(ctx context.Context, adminUserID uint, id uint) error {
	if adminUserID == 0 || id == 0 {
		return fmt.Errorf("%w: geçersiz ID", ErrTranslationInvalidInput)
	}
	key, err := s.repo.FindKeyByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrTranslationKeyNotFound
		}
		return err
	}
	if err := s.repo.DeleteKey(ctx, key, adminUserID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrTranslationKeyNotFound
		}
		return ErrTranslationDeletionFailed
	}
	if refreshErr := s.Refresh(ctx); refreshErr != nil {
		s.invalidate()
	}
	configslog.SLog.Infof("Çeviri anahtarı silindi: %s (ID %d)", key.Key, id)
	return nil
}

// UpsertValue (anahtar, dil) çifti için değeri yazar.
func (s *TranslationService) UpsertValue(ctx context.Context, adminUserID uint, keyID uint, language, value string) error {
	if adminUserID == 0 || keyID == 0 {
		return fmt.Errorf("%w: geçersiz ID", ErrTranslationInvalidInput)
	}
	if !locales.IsSupported(language) {
		return ErrTranslationLocaleUnknown
	}
	if _, err := s.repo.FindKeyByID(ctx, keyID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrTranslationKeyNotFound
		}
		return err
	}
	if err := s.repo.UpsertValue(ctx, keyID, language, value, adminUserID); err != nil {
		return ErrTranslationUpdateFailed
	}
	if refreshErr := s.Refresh(ctx); refreshErr != nil {
		s.invalidate()
	}
	return nil
}

var _ ITranslationService = (*TranslationService)(nil)
