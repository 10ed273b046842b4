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

// IUserRepository yönetici kullanıcı veritabanı işlemleri için arayüz.
type IUserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id uint) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

// UserRepository IUserRepository arayüzünü uygular.
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository yeni bir UserRepository örneği oluşturur.
func NewUserRepository() IUserRepository {
	return &UserRepository{db: configs.GetDB()}
}

// NewUserRepositoryTx transaction'a bağlı repository oluşturur.
func NewUserRepositoryTx(tx *gorm.DB) IUserRepository {
	return &UserRepository{db: tx}
}

func (r *UserRepository) getDB(ctx context.Context) *gorm.DB {
	return dbFromContext(ctx, r.db)
}

// Create yeni bir kullanıcı oluşturur.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	if user == nil || user.Email == "" {
		return errors.New("geçersiz kullanıcı verisi")
	}
	if err := r.getDB(ctx).Create(user).Error; err != nil {
		if isDuplicateKeyError(err) {
			return ErrDuplicate
		}
		configslog.Log.Error("UserRepository.Create: DB error", zap.Error(err))
		return err
	}
	return nil
}

// FindByID ID ile kullanıcıyı bulur.
func (r *UserRepository) FindByID(ctx context.Context, id uint) (*models.User, error) {
	if id == 0 {
		return nil, errors.New("geçersiz kullanıcı ID")
	}
	var user models.User
	if err := r.getDB(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("UserRepository.FindByID: DB error", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &user, nil
}

// FindByEmail e-posta ile kullanıcıyı bulur.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	if email == "" {
		return nil, errors.New("aranacak e-posta boş olamaz")
	}
	var user models.User
	if err := r.getDB(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("UserRepository.FindByEmail: DB error", zap.String("email", email), zap.Error(err))
		return nil, err
	}
	return &user, nil
}

var _ IUserRepository = (*UserRepository)(nil)
