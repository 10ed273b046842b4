package seeders

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"dugun.link/configs/configslog"
	"dugun.link/models"
)

// SeedDemoTemplates her şablon türü için bir demo davetiye oluşturur.
// Demo kayıtlar boş konfigürasyonla açılır; içerik tür varsayılanlarından
// gelir.
func SeedDemoTemplates(db *gorm.DB) error {
	systemUserID := uint(1)
	ctx := context.WithValue(context.Background(), models.ContextUserIDKey, systemUserID)

	configslog.SLog.Info("Demo şablonlar seed işlemi başlıyor...")

	for _, typeKey := range models.TemplateTypeKeys() {
		slug := fmt.Sprintf("demo-%s", typeKey)

		var existing models.Template
		result := db.Where("slug = ?", slug).First(&existing)
		if result.Error == nil {
			configslog.SLog.Debugf("Demo şablon '%s' zaten mevcut, oluşturma atlanıyor.", slug)
			continue
		}
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			configslog.Log.Error("Demo şablon kontrol edilirken veritabanı hatası",
				zap.String("slug", slug), zap.Error(result.Error))
			return result.Error
		}

		template := models.Template{
			PublicID:   uuid.New(),
			Slug:       slug,
			TypeKey:    typeKey,
			OwnerName:  "Demo Hesap",
			OwnerEmail: "demo@dugun.link",
			IsActive:   true,
		}
		if err := db.WithContext(ctx).Create(&template).Error; err != nil {
			configslog.Log.Error("Demo şablon oluşturulamadı", zap.String("slug", slug), zap.Error(err))
			return err
		}
		configslog.SLog.Infof("Demo şablon '%s' oluşturuldu (ID: %d).", slug, template.ID)
	}

	configslog.SLog.Info("Demo şablon seed işlemi tamamlandı.")
	return nil
}
