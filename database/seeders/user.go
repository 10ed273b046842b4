package seeders

import (
	"errors"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"dugun.link/configs"
	"dugun.link/configs/configslog"
	"dugun.link/models"
)

// SeedSystemUser ADMIN_EMAIL / ADMIN_PASSWORD ortam değişkenlerinden sistem
// yöneticisini oluşturur; kullanıcı zaten varsa şifresini günceller.
func SeedSystemUser(db *gorm.DB) error {
	email := configs.GetEnv("ADMIN_EMAIL", "")
	password := configs.GetEnv("ADMIN_PASSWORD", "")
	name := configs.GetEnv("ADMIN_NAME", "Sistem Yöneticisi")

	if email == "" || password == "" {
		configslog.SLog.Warn("ADMIN_EMAIL veya ADMIN_PASSWORD tanımsız, sistem kullanıcısı seed edilmeyecek.")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		configslog.Log.Error("Sistem kullanıcısı şifresi hash'lenemedi", zap.Error(err))
		return err
	}

	var existing models.User
	result := db.Where("email = ?", email).First(&existing)
	if result.Error == nil {
		configslog.SLog.Infof("Sistem kullanıcısı '%s' zaten mevcut, şifre ve yetkiler güncelleniyor.", email)
		return db.Model(&existing).Updates(map[string]interface{}{
			"password_hash": string(hash),
			"is_system":     true,
			"is_active":     true,
		}).Error
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		configslog.Log.Error("Sistem kullanıcısı kontrol edilirken veritabanı hatası", zap.Error(result.Error))
		return result.Error
	}

	user := models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		IsSystem:     true,
		IsActive:     true,
	}
	if err := db.Create(&user).Error; err != nil {
		configslog.Log.Error("Sistem kullanıcısı oluşturulamadı", zap.Error(err))
		return err
	}

	configslog.SLog.Infof("Sistem kullanıcısı '%s' başarıyla oluşturuldu (ID: %d).", email, user.ID)
	return nil
}
