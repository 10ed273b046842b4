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

// ITranslationRepository çeviri katmanı veritabanı işlemleri için arayüz.
type ITranslationRepository interface {
	CreateKey(ctx context.Context, key *models.TranslationKey) error
	FindKeyByID(ctx context.Context, id uint) (*models.TranslationKey, error)
	FindAllKeys(ctx context.Context) ([]models.TranslationKey, error)
	UpdateKey(ctx context.Context, id uint, data map[string]interface{}, updatedByUserID uint) error
	DeleteKey(ctx context.Context, key *models.TranslationKey, deletedByUserID uint) error
	// UpsertValue (keyID, language) çifti için değeri yazar; çift başına
	// en fazla bir değer bulunur.
	UpsertValue(ctx context.Context, keyID uint, language, value string, userID uint) error
}

// TranslationRepository ITranslationRepository arayüzünü uygular.
type TranslationRepository struct {
	db *gorm.DB
}

// NewTranslationRepository yeni bir TranslationRepository örneği oluşturur.
func NewTranslationRepository() ITranslationRepository {
	return &TranslationRepository{db: configs.GetDB()}
}

// NewTranslationRepositoryTx transaction'a bağlı repository oluşturur.
func NewTranslationRepositoryTx(tx *gorm.DB) ITranslationRepository {
	return &TranslationRepository{db: tx}
}

func (r *TranslationRepository) getDB(ctx context.Context) *gorm.DB {
	return dbFromContext(ctx, r.db)
}

// CreateKey yeni bir çeviri anahtarı oluşturur.
func (r *TranslationRepository) CreateKey(ctx context.Context, key *models.TranslationKey) error {
	if key == nil || key.Key == "" {
		return errors.New("geçersiz çeviri anahtarı")
	}
	if err := r.getDB(ctx).Create(key).Error; err != nil {
		if isDuplicateKeyError(err) {
			return ErrDuplicate
		}
		configslog.Log.Error("TranslationRepository.CreateKey: DB error", zap.Error(err))
		return err
	}
	return nil
}

// FindKeyByID anahtarı değerleriyle birlikte getirir.
func (r *TranslationRepository) FindKeyByID(ctx context.Context, id uint) (*models.TranslationKey, error) {
	if id == 0 {
		return nil, errors.New("geçersiz anahtar ID")
	}
	var key models.TranslationKey
	if err := r.getDB(ctx).Preload("Values").First(&key, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("TranslationRepository.FindKeyByID: DB error", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &key, nil
}

// FindAllKeys tüm anahtarları değerleriyle birlikte getirir; overlay
// bundle'ları bu listeden kurulur.
func (r *TranslationRepository) FindAllKeys(ctx context.Context) ([]models.TranslationKey, error) {
	var keys []models.TranslationKey
	err := r.getDB(ctx).Preload("Values").Order("key asc").Find(&keys).Error
	if err != nil {
		configslog.Log.Error("TranslationRepository.FindAllKeys: DB error", zap.Error(err))
		return nil, err
	}
	return keys, nil
}

// UpdateKey anahtar alanlarını map ile günceller.
func (r *TranslationRepository) UpdateKey(ctx context.Context, id uint, data map[string]interface{}, updatedByUserID uint) error {
	if id == 0 {
		return errors.New("güncellenecek anahtar ID'si geçersiz")
	}
	if len(data) == 0 {
		return errors.New("güncellenecek veri boş olamaz")
	}
	ctxWithUser := context.WithValue(ctx, models.ContextUserIDKey, updatedByUserID)
	db := r.getDB(ctxWithUser)

	result := db.Model(&models.TranslationKey{}).Where("id = ?", id).Updates(data)
	if result.Error != nil {
		if isDuplicateKeyError(result.Error) {
			return ErrDuplicate
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		var exists int64
		if err := db.Model(&models.TranslationKey{}).Where("id = ?", id).Count(&exists).Error; err == nil && exists == 0 {
			return ErrNotFound
		}
	}
	return nil
}

// DeleteKey anahtarı ve (cascade ile) değerlerini siler.
func (r *TranslationRepository) DeleteKey(ctx context.Context, key *models.TranslationKey, deletedByUserID uint) error {
	if key == nil || key.ID == 0 {
		return errors.New("silinecek anahtar geçerli değil")
	}
	db := r.getDB(ctx)

	return db.Transaction(func(tx *gorm.DB) error {
		// Değerler önce temizlenir; soft delete cascade'i tetiklemez.
		if err := tx.Where("translation_key_id = ?", key.ID).Delete(&models.TranslationValue{}).Error; err != nil {
			return err
		}
		if deletedByUserID != 0 {
			if err := tx.Model(key).UpdateColumn("deleted_by", &deletedByUserID).Error; err != nil {
				return err
			}
		}
		result := tx.Delete(key)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// UpsertValue (keyID, language) için değeri oluşturur veya günceller.
func (r *TranslationRepository) UpsertValue(ctx context.Context, keyID uint, language, value string, userID uint) error {
	if keyID == 0 || language == "" {
		return errors.New("geçersiz çeviri değeri girdisi")
	}
	ctxWithUser := context.WithValue(ctx, models.ContextUserIDKey, userID)
	db := r.getDB(ctxWithUser)

	return db.Where(models.TranslationValue{
		TranslationKeyID: keyID,
		Language:         language,
	}).Assign(models.TranslationValue{
		Value: value,
	}).FirstOrCreate(&models.TranslationValue{}).Error
}

var _ ITranslationRepository = (*TranslationRepository)(nil)
