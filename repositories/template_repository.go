package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"dugun.link/configs"
	"dugun.link/configs/configslog"
	"dugun.link/models"
	"dugun.link/pkg/queryparams"
)

// ITemplateRepository şablon (tenant) veritabanı işlemleri için arayüz.
type ITemplateRepository interface {
	Create(ctx context.Context, template *models.Template) error
	FindByID(ctx context.Context, id uint) (*models.Template, error)
	FindByPublicID(ctx context.Context, publicID uuid.UUID) (*models.Template, error)
	FindBySlug(ctx context.Context, slug string) (*models.Template, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	FindAllPaginated(ctx context.Context, params queryparams.ListParams) ([]models.Template, int64, error)
	Update(ctx context.Context, id uint, data map[string]interface{}, updatedByUserID uint) error
	Delete(ctx context.Context, template *models.Template, deletedByUserID uint) error
}

// TemplateRepository ITemplateRepository arayüzünü uygular.
type TemplateRepository struct {
	db *gorm.DB
}

// NewTemplateRepository yeni bir TemplateRepository örneği oluşturur.
func NewTemplateRepository() ITemplateRepository {
	return &TemplateRepository{db: configs.GetDB()}
}

// NewTemplateRepositoryTx transaction'a bağlı repository oluşturur.
func NewTemplateRepositoryTx(tx *gorm.DB) ITemplateRepository {
	return &TemplateRepository{db: tx}
}

func (r *TemplateRepository) getDB(ctx context.Context) *gorm.DB {
	return dbFromContext(ctx, r.db)
}

// Create yeni bir şablon kaydı oluşturur.
func (r *TemplateRepository) Create(ctx context.Context, template *models.Template) error {
	if template == nil {
		return errors.New("oluşturulacak şablon nil olamaz")
	}
	if err := r.getDB(ctx).Create(template).Error; err != nil {
		if isDuplicateKeyError(err) {
			return ErrDuplicate
		}
		configslog.Log.Error("TemplateRepository.Create: DB error", zap.Error(err))
		return err
	}
	return nil
}

// FindByID iç ID ile şablonu bulur.
func (r *TemplateRepository) FindByID(ctx context.Context, id uint) (*models.Template, error) {
	if id == 0 {
		return nil, errors.New("geçersiz şablon ID")
	}
	var template models.Template
	if err := r.getDB(ctx).First(&template, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("TemplateRepository.FindByID: DB error", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &template, nil
}

// FindByPublicID public UUID ile şablonu bulur.
func (r *TemplateRepository) FindByPublicID(ctx context.Context, publicID uuid.UUID) (*models.Template, error) {
	var template models.Template
	err := r.getDB(ctx).Where("public_id = ?", publicID).First(&template).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("TemplateRepository.FindByPublicID: DB error",
			zap.String("public_id", publicID.String()), zap.Error(err))
		return nil, err
	}
	return &template, nil
}

// FindBySlug slug ile şablonu bulur.
func (r *TemplateRepository) FindBySlug(ctx context.Context, slug string) (*models.Template, error) {
	if slug == "" {
		return nil, errors.New("aranacak slug boş olamaz")
	}
	var template models.Template
	err := r.getDB(ctx).Where("slug = ?", slug).First(&template).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("TemplateRepository.FindBySlug: DB error", zap.String("slug", slug), zap.Error(err))
		return nil, err
	}
	return &template, nil
}

// SlugExists slug'ın kullanımda olup olmadığını kontrol eder.
func (r *TemplateRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	if slug == "" {
		return false, errors.New("kontrol edilecek slug boş olamaz")
	}
	var count int64
	err := r.getDB(ctx).Model(&models.Template{}).Where("slug = ?", slug).Count(&count).Error
	if err != nil {
		configslog.Log.Error("TemplateRepository.SlugExists: DB error", zap.String("slug", slug), zap.Error(err))
		return false, err
	}
	return count > 0, nil
}

// FindAllPaginated tüm şablonları sayfalayarak getirir (dashboard için).
func (r *TemplateRepository) FindAllPaginated(ctx context.Context, params queryparams.ListParams) ([]models.Template, int64, error) {
	db := r.getDB(ctx)

	var totalCount int64
	if err := db.Model(&models.Template{}).Count(&totalCount).Error; err != nil {
		configslog.Log.Error("TemplateRepository.FindAllPaginated: count error", zap.Error(err))
		return nil, 0, err
	}

	var templates []models.Template
	err := db.Order("created_at " + params.OrderBy).
		Limit(params.PerPage).
		Offset(params.Offset()).
		Find(&templates).Error
	if err != nil {
		configslog.Log.Error("TemplateRepository.FindAllPaginated: find error", zap.Error(err))
		return nil, 0, err
	}
	return templates, totalCount, nil
}

// Update belirli alanları map ile günceller.
func (r *TemplateRepository) Update(ctx context.Context, id uint, data map[string]interface{}, updatedByUserID uint) error {
	if id == 0 {
		return errors.New("güncellenecek şablon ID'si geçersiz")
	}
	if len(data) == 0 {
		return errors.New("güncellenecek veri boş olamaz")
	}
	ctxWithUser := context.WithValue(ctx, models.ContextUserIDKey, updatedByUserID)
	db := r.getDB(ctxWithUser)

	result := db.Model(&models.Template{}).Where("id = ?", id).Updates(data)
	if result.Error != nil {
		if isDuplicateKeyError(result.Error) {
			return ErrDuplicate
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		var exists int64
		if err := db.Model(&models.Template{}).Where("id = ?", id).Count(&exists).Error; err == nil && exists == 0 {
			return ErrNotFound
		}
	}
	return nil
}

// Delete şablonu soft delete eder; kayıt normal işleyişte asla hard
// silinmez.
func (r *TemplateRepository) Delete(ctx context.Context, template *models.Template, deletedByUserID uint) error {
	if template == nil || template.ID == 0 {
		return errors.New("silinecek şablon geçerli değil")
	}
	db := r.getDB(ctx)

	return db.Transaction(func(tx *gorm.DB) error {
		if deletedByUserID != 0 {
			if err := tx.Model(template).UpdateColumn("deleted_by", &deletedByUserID).Error; err != nil {
				configslog.Log.Error("TemplateRepository.Delete: DeletedBy güncellenemedi",
					zap.Uint("template_id", template.ID), zap.Error(err))
				return err
			}
		}
		result := tx.Delete(template)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

var _ ITemplateRepository = (*TemplateRepository)(nil)
