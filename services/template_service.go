package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"dugun.link/configs/configslog"
	"dugun.link/models"
	"dugun.link/pkg/queryparams"
	"dugun.link/repositories"
)

// TemplateServiceError özel servis hataları
type TemplateServiceError string

func (e TemplateServiceError) Error() string { return string(e) }

const (
	ErrTemplateNotFound          TemplateServiceError = "şablon bulunamadı"
	ErrTemplateLegacyPath        TemplateServiceError = "bu adres artık kullanılmıyor"
	ErrTemplateInvalidIdentifier TemplateServiceError = "geçersiz şablon tanımlayıcısı"
	ErrTemplateInvalidSlug       TemplateServiceError = "geçersiz slug (yalnızca küçük harf, rakam ve tire)"
	ErrTemplateSlugTaken         TemplateServiceError = "bu slug zaten kullanımda"
	ErrTemplateUnknownType       TemplateServiceError = "bilinmeyen şablon türü"
	ErrTemplateInvalidInput      TemplateServiceError = "geçersiz şablon girdisi"
	ErrTemplateCreationFailed    TemplateServiceError = "şablon oluşturulamadı"
	ErrTemplateUpdateFailed      TemplateServiceError = "şablon güncellenemedi"
	ErrTemplateDeletionFailed    TemplateServiceError = "şablon silinemedi"
	ErrTemplateCloneFailed       TemplateServiceError = "şablon kopyalanamadı"
	ErrTemplatePasswordHashing   TemplateServiceError = "bakım şifresi oluşturulamadı"
)

// maxIdentifierLength public tanımlayıcı için üst sınır (UUID 36,
// slug en fazla 80).
const maxIdentifierLength = 80

// CreateTemplateInput yeni şablon girdisi.
type CreateTemplateInput struct {
	Slug                string          `json:"slug"`
	TypeKey             string          `json:"typeKey"`
	OwnerName           string          `json:"ownerName"`
	OwnerEmail          string          `json:"ownerEmail"`
	Config              json.RawMessage `json:"config"`
	MaintenancePassword string          `json:"maintenancePassword"`
}

// UpdateTemplateInput kısmi güncelleme girdisi; nil alanlar dokunulmaz.
type UpdateTemplateInput struct {
	Slug                *string         `json:"slug"`
	TypeKey             *string         `json:"typeKey"`
	OwnerName           *string         `json:"ownerName"`
	OwnerEmail          *string         `json:"ownerEmail"`
	Config              json.RawMessage `json:"config"`
	IsActive            *bool           `json:"isActive"`
	Maintenance         *bool           `json:"maintenance"`
	MaintenancePassword *string         `json:"maintenancePassword"`
}

// ITemplateService şablon işlemleri için arayüz.
type ITemplateService interface {
	// ResolveTemplate public tanımlayıcıyı (UUID veya slug) tenant kaydına
	// çözer. Eski "t-" önekli adresler kayıt mevcut olsa bile reddedilir.
	ResolveTemplate(ctx context.Context, identifier string) (*models.Template, error)
	GetTemplateByID(ctx context.Context, id uint) (*models.Template, error)
	GetTemplatesPaginated(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error)
	CreateTemplate(ctx context.Context, adminUserID uint, input CreateTemplateInput) (*models.Template, error)
	CloneTemplate(ctx context.Context, adminUserID uint, sourceID uint, newSlug string) (*models.Template, error)
	UpdateTemplate(ctx context.Context, adminUserID uint, id uint, input UpdateTemplateInput) error
	DeleteTemplate(ctx context.Context, adminUserID uint, id uint) error
}

// TemplateService ITemplateService arayüzünü uygular.
type TemplateService struct {
	repo repositories.ITemplateRepository
}

// NewTemplateService yeni bir TemplateService örneği oluşturur.
func NewTemplateService() ITemplateService {
	return &TemplateService{repo: repositories.NewTemplateRepository()}
}

// NewTemplateServiceWith bağımlılık enjeksiyonu ile oluşturur (testler).
func NewTemplateServiceWith(repo repositories.ITemplateRepository) ITemplateService {
	return &TemplateService{repo: repo}
}

// ResolveTemplate tanımlayıcıyı çözer: önce eski-önek reddi, sonra UUID,
// sonra slug. Salt okuma, yan etkisi yoktur.
func (s *TemplateService) ResolveTemplate(ctx context.Context, identifier string) (*models.Template, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" || len(identifier) > maxIdentifierLength {
		return nil, ErrTemplateInvalidIdentifier
	}

	// Eski paylaşım adresleri kalıcı olarak ölüdür; aynı slug'a sahip bir
	// kayıt var olsa bile veritabanına hiç gidilmez.
	if models.IsLegacyIdentifier(identifier) {
		return nil, ErrTemplateLegacyPath
	}

	if publicID, err := uuid.Parse(identifier); err == nil {
		template, err := s.repo.FindByPublicID(ctx, publicID)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return nil, ErrTemplateNotFound
			}
			return nil, err
		}
		return s.visible(template)
	}

	if !models.IsValidSlug(identifier) {
		return nil, ErrTemplateInvalidIdentifier
	}

	template, err := s.repo.FindBySlug(ctx, identifier)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrTemplateNotFound
		}
		return nil, err
	}
	return s.visible(template)
}

// visible pasif şablonları dışarıya NotFound olarak gösterir.
func (s *TemplateService) visible(template *models.Template) (*models.Template, error) {
	if !template.IsActive {
		return nil, ErrTemplateNotFound
	}
	return template, nil
}

// GetTemplateByID dashboard için iç ID ile şablonu getirir (pasifler dahil).
func (s *TemplateService) GetTemplateByID(ctx context.Context, id uint) (*models.Template, error) {
	template, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrTemplateNotFound
		}
		return nil, err
	}
	return template, nil
}

// GetTemplatesPaginated tüm şablonları sayfalayarak getirir.
func (s *TemplateService) GetTemplatesPaginated(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error) {
	params.Validate()
	templates, totalCount, err := s.repo.FindAllPaginated(ctx, params)
	if err != nil {
		return nil, err
	}
	return &queryparams.PaginatedResult{
		Data: templates,
		Meta: queryparams.PaginationMeta{
			CurrentPage: params.Page,
			PerPage:     params.PerPage,
			TotalItems:  totalCount,
			TotalPages:  queryparams.CalculateTotalPages(totalCount, params.PerPage),
		},
	}, nil
}

// validateSlug slug kurallarını uygular: biçim, ayrılmış önek, teklik.
func (s *TemplateService) validateSlug(ctx context.Context, slug string) error {
	if !models.IsValidSlug(slug) {
		return ErrTemplateInvalidSlug
	}
	if models.IsLegacyIdentifier(slug) {
		// "t-" önekli slug'lar oluşturulamaz; çözümleme tarafında kalıcı
		// olarak reddedildikleri için erişilemez olurlardı.
		return ErrTemplateInvalidSlug
	}
	exists, err := s.repo.SlugExists(ctx, slug)
	if err != nil {
		return err
	}
	if exists {
		return ErrTemplateSlugTaken
	}
	return nil
}

// CreateTemplate yeni bir tenant oluşturur.
func (s *TemplateService) CreateTemplate(ctx context.Context, adminUserID uint, input CreateTemplateInput) (*models.Template, error) {
	if adminUserID == 0 {
		return nil, fmt.Errorf("%w: geçersiz yönetici ID", ErrTemplateInvalidInput)
	}
	input.Slug = strings.TrimSpace(strings.ToLower(input.Slug))
	input.OwnerEmail = strings.TrimSpace(input.OwnerEmail)
	if input.OwnerEmail == "" {
		return nil, fmt.Errorf("%w: sahip e-postası zorunludur", ErrTemplateInvalidInput)
	}
	if !models.IsKnownTemplateType(input.TypeKey) {
		return nil, ErrTemplateUnknownType
	}
	if err := s.validateSlug(ctx, input.Slug); err != nil {
		return nil, err
	}
	if len(input.Config) > 0 && !json.Valid(input.Config) {
		return nil, fmt.Errorf("%w: konfigürasyon geçerli JSON değil", ErrTemplateInvalidInput)
	}

	template := &models.Template{
		PublicID:   uuid.New(),
		Slug:       input.Slug,
		TypeKey:    input.TypeKey,
		OwnerName:  strings.TrimSpace(input.OwnerName),
		OwnerEmail: input.OwnerEmail,
		Config:     input.Config,
		IsActive:   true,
	}

	if input.MaintenancePassword != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(input.MaintenancePassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, ErrTemplatePasswordHashing
		}
		template.MaintenancePasswordHash = string(hash)
	}

	ctxWithUser := context.WithValue(ctx, models.ContextUserIDKey, adminUserID)
	if err := s.repo.Create(ctxWithUser, template); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, ErrTemplateSlugTaken
		}
		configslog.Log.Error("Şablon oluşturulurken repository hatası",
			zap.String("slug", input.Slug), zap.Error(err))
		return nil, ErrTemplateCreationFailed
	}

	configslog.SLog.Infof("Şablon oluşturuldu: ID %d, Slug: %s (Oluşturan: %d)",
		template.ID, template.Slug, adminUserID)
	return template, nil
}

// CloneTemplate mevcut bir tenant'tan yeni bir tenant türetir: yeni
// PublicID, türetilmiş benzersiz slug, kopyalanmış konfigürasyon.
func (s *TemplateService) CloneTemplate(ctx context.Context, adminUserID uint, sourceID uint, newSlug string) (*models.Template, error) {
	if adminUserID == 0 || sourceID == 0 {
		return nil, fmt.Errorf("%w: geçersiz ID", ErrTemplateInvalidInput)
	}
	source, err := s.GetTemplateByID(ctx, sourceID)
	if err != nil {
		return nil, err
	}

	slug := strings.TrimSpace(strings.ToLower(newSlug))
	if slug == "" {
		slug, err = s.deriveSlug(ctx, source.Slug)
		if err != nil {
			return nil, err
		}
	} else if err := s.validateSlug(ctx, slug); err != nil {
		return nil, err
	}

	clone := &models.Template{
		PublicID:   uuid.New(),
		Slug:       slug,
		TypeKey:    source.TypeKey,
		OwnerName:  source.OwnerName,
		OwnerEmail: source.OwnerEmail,
		Config:     append(json.RawMessage(nil), source.Config...),
		IsActive:   true,
		// Bakım durumu ve şifresi kopyalanmaz.
	}

	ctxWithUser := context.WithValue(ctx, models.ContextUserIDKey, adminUserID)
	if err := s.repo.Create(ctxWithUser, clone); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, ErrTemplateSlugTaken
		}
		configslog.Log.Error("Şablon kopyalanırken repository hatası",
			zap.Uint("source_id", sourceID), zap.Error(err))
		return nil, ErrTemplateCloneFailed
	}

	configslog.SLog.Infof("Şablon kopyalandı: %d -> %d, Slug: %s (Kopyalayan: %d)",
		sourceID, clone.ID, clone.Slug, adminUserID)
	return clone, nil
}

// deriveSlug kaynak slug'dan kısa UUID ekiyle benzersiz bir slug üretir.
func (s *TemplateService) deriveSlug(ctx context.Context, base string) (string, error) {
	for attempt := 0; attempt < 5; attempt++ {
		suffix := strings.Split(uuid.NewString(), "-")[0]
		// Ek her zaman korunur; sınırı aşan taban kırpılır ve kırpma
		// sonunda kalan tire atılır ki slug deseni bozulmasın.
		trimmed := base
		if max := 80 - len(suffix) - 1; len(trimmed) > max {
			trimmed = strings.TrimRight(trimmed[:max], "-")
		}
		candidate := trimmed + "-" + suffix
		exists, err := s.repo.SlugExists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
	}
	return "", ErrTemplateCloneFailed
}

// UpdateTemplate şablonu kısmi olarak günceller.
func (s *TemplateService) UpdateTemplate(ctx context.Context, adminUserID uint, id uint, input UpdateTemplateInput) error {
	if adminUserID == 0 || id == 0 {
		return fmt.Errorf("%w: geçersiz ID", ErrTemplateInvalidInput)
	}
	existing, err := s.GetTemplateByID(ctx, id)
	if err != nil {
		return err
	}

	data := map[string]interface{}{}
	if input.Slug != nil {
		slug := strings.TrimSpace(strings.ToLower(*input.Slug))
		if slug != existing.Slug {
			if err := s.validateSlug(ctx, slug); err != nil {
				return err
			}
			data["slug"] = slug
		}
	}
	if input.TypeKey != nil {
		if !models.IsKnownTemplateType(*input.TypeKey) {
			return ErrTemplateUnknownType
		}
		data["type_key"] = *input.TypeKey
	}
	if input.OwnerName != nil {
		data["owner_name"] = strings.TrimSpace(*input.OwnerName)
	}
	if input.OwnerEmail != nil {
		email := strings.TrimSpace(*input.OwnerEmail)
		if email == "" {
			return fmt.Errorf("%w: sahip e-postası boş olamaz", ErrTemplateInvalidInput)
		}
		data["owner_email"] = email
	}
	if len(input.Config) > 0 {
		if !json.Valid(input.Config) {
			return fmt.Errorf("%w: konfigürasyon geçerli JSON değil", ErrTemplateInvalidInput)
		}
		data["config"] = input.Config
	}
	if input.IsActive != nil {
		data["is_active"] = *input.IsActive
	}
	if input.Maintenance != nil {
		data["maintenance"] = *input.Maintenance
	}
	if input.MaintenancePassword != nil {
		if *input.MaintenancePassword == "" {
			data["maintenance_password_hash"] = ""
		} else {
			hash, hashErr := bcrypt.GenerateFromPassword([]byte(*input.MaintenancePassword), bcrypt.DefaultCost)
			if hashErr != nil {
				return ErrTemplatePasswordHashing
			}
			data["maintenance_password_hash"] = string(hash)
		}
	}
	if len(data) == 0 {
		return nil
	}

	if err := s.repo.Update(ctx, id, data, adminUserID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrTemplateNotFound
		}
		if errors.Is(err, repositories.ErrDuplicate) {
			return ErrTemplateSlugTaken
		}
		configslog.Log.Error("Şablon güncellenirken repository hatası",
			zap.Uint("id", id), zap.Error(err))
		return ErrTemplateUpdateFailed
	}
	configslog.SLog.Infof("Şablon güncellendi: ID %d (Güncelleyen: %d)", id, adminUserID)
	return nil
}

// DeleteTemplate şablonu soft delete eder.
func (s *TemplateService) DeleteTemplate(ctx context.Context, adminUserID uint, id uint) error {
	if adminUserID == 0 || id == 0 {
		return fmt.Errorf("%w: geçersiz ID", ErrTemplateInvalidInput)
	}
	template, err := s.GetTemplateByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, template, adminUserID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrTemplateNotFound
		}
		configslog.Log.Error("Şablon silinirken repository hatası",
			zap.Uint("id", id), zap.Error(err))
		return ErrTemplateDeletionFailed
	}
	configslog.SLog.Infof("Şablon silindi: ID %d, Slug: %s (Silen: %d)", id, template.Slug, adminUserID)
	return nil
}

var _ ITemplateService = (*TemplateService)(nil)
