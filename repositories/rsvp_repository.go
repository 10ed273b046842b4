package repositories

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"dugun.link/configs"
	"dugun.link/configs/configslog"
	"dugun.link/models"
	"dugun.link/pkg/queryparams"
)

// IRSVPRepository LCV veritabanı işlemleri için arayüz.
type IRSVPRepository interface {
	// CreateWithEmails LCV kaydını ve bildirilen her e-posta için bir
	// rsvp_emails satırını aynı transaction'da oluşturur. Unique index
	// ihlalinde ErrDuplicate döner.
	CreateWithEmails(ctx context.Context, rsvp *models.RSVP, emails []string) error
	// EmailExists verilen adreslerden herhangi biri bu tenant için daha
	// önce kullanılmış mı diye bakar (asıl/alternatif ayrımı olmadan).
	EmailExists(ctx context.Context, templateID uint, emails []string) (bool, error)
	FindByTemplateIDPaginated(ctx context.Context, templateID uint, params queryparams.ListParams) ([]models.RSVP, int64, error)
	CountByTemplateID(ctx context.Context, templateID uint) (int64, error)
}

// RSVPRepository IRSVPRepository arayüzünü uygular.
type RSVPRepository struct {
	db *gorm.DB
}

// NewRSVPRepository yeni bir RSVPRepository örneği oluşturur.
func NewRSVPRepository() IRSVPRepository {
	return &RSVPRepository{db: configs.GetDB()}
}

// NewRSVPRepositoryTx transaction'a bağlı repository oluşturur.
func NewRSVPRepositoryTx(tx *gorm.DB) IRSVPRepository {
	return &RSVPRepository{db: tx}
}

func (r *RSVPRepository) getDB(ctx context.Context) *gorm.DB {
	return dbFromContext(ctx, r.db)
}

// CreateWithEmails LCV'yi ve e-posta satırlarını tek transaction'da yazar.
func (r *RSVPRepository) CreateWithEmails(ctx context.Context, rsvp *models.RSVP, emails []string) error {
	if rsvp == nil || rsvp.TemplateID == 0 {
		return errors.New("geçersiz LCV verisi (TemplateID eksik)")
	}
	if len(emails) == 0 {
		return errors.New("en az bir e-posta adresi gerekli")
	}
	db := r.getDB(ctx)

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(rsvp).Error; err != nil {
			configslog.Log.Error("RSVPRepository.CreateWithEmails: RSVP yazılamadı",
				zap.Uint("template_id", rsvp.TemplateID), zap.Error(err))
			return err
		}
		for _, email := range emails {
			row := models.RSVPEmail{
				TemplateID: rsvp.TemplateID,
				Email:      email,
				RSVPID:     rsvp.ID,
			}
			if err := tx.Create(&row).Error; err != nil {
				if isDuplicateKeyError(err) {
					// Yarış: aynı anda gelen mükerrer gönderim. Rollback ile
					// RSVP satırı da geri alınır.
					return ErrDuplicate
				}
				configslog.Log.Error("RSVPRepository.CreateWithEmails: e-posta satırı yazılamadı",
					zap.Uint("template_id", rsvp.TemplateID), zap.Error(err))
				return err
			}
		}
		return nil
	})
}

// EmailExists adreslerden herhangi biri tenant'ta kayıtlı mı?
func (r *RSVPRepository) EmailExists(ctx context.Context, templateID uint, emails []string) (bool, error) {
	if templateID == 0 {
		return false, errors.New("geçersiz şablon ID")
	}
	if len(emails) == 0 {
		return false, nil
	}
	var count int64
	err := r.getDB(ctx).Model(&models.RSVPEmail{}).
		Where("template_id = ? AND email IN ?", templateID, emails).
		Count(&count).Error
	if err != nil {
		configslog.Log.Error("RSVPRepository.EmailExists: DB error",
			zap.Uint("template_id", templateID), zap.Error(err))
		return false, err
	}
	return count > 0, nil
}

// FindByTemplateIDPaginated tenant'ın LCV'lerini sayfalayarak getirir.
func (r *RSVPRepository) FindByTemplateIDPaginated(ctx context.Context, templateID uint, params queryparams.ListParams) ([]models.RSVP, int64, error) {
	if templateID == 0 {
		return nil, 0, errors.New("geçersiz şablon ID")
	}
	db := r.getDB(ctx)

	var totalCount int64
	if err := db.Model(&models.RSVP{}).Where("template_id = ?", templateID).Count(&totalCount).Error; err != nil {
		configslog.Log.Error("RSVPRepository.FindByTemplateIDPaginated: count error",
			zap.Uint("template_id", templateID), zap.Error(err))
		return nil, 0, err
	}

	var rsvps []models.RSVP
	err := db.Where("template_id = ?", templateID).
		Order("created_at " + params.OrderBy).
		Limit(params.PerPage).
		Offset(params.Offset()).
		Find(&rsvps).Error
	if err != nil {
		configslog.Log.Error("RSVPRepository.FindByTemplateIDPaginated: find error",
			zap.Uint("template_id", templateID), zap.Error(err))
		return nil, 0, err
	}
	return rsvps, totalCount, nil
}

// CountByTemplateID tenant'ın LCV sayısı.
func (r *RSVPRepository) CountByTemplateID(ctx context.Context, templateID uint) (int64, error) {
	var count int64
	err := r.getDB(ctx).Model(&models.RSVP{}).Where("template_id = ?", templateID).Count(&count).Error
	if err != nil {
		configslog.Log.Error("RSVPRepository.CountByTemplateID: DB error",
			zap.Uint("template_id", templateID), zap.Error(err))
		return 0, err
	}
	return count, nil
}

var _ IRSVPRepository = (*RSVPRepository)(nil)
