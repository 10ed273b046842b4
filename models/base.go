package models

import (
	"gorm.io/gorm"
	"time"
)

type contextKey string

// ContextUserIDKey işlemi yapan kullanıcının ID'sini context üzerinden
// BaseModel hook'larına taşır.
const ContextUserIDKey contextKey = "user_id"

// BaseModel tüm tablolarda ortak olan kimlik ve denetim alanları.
type BaseModel struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	CreatedBy *uint          `gorm:"index" json:"-"`
	UpdatedBy *uint          `json:"-"`
	DeletedBy *uint          `json:"-"`
}

// BeforeCreate context'teki kullanıcı ID'sini CreatedBy/UpdatedBy alanlarına yazar.
func (b *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if userID, ok := tx.Statement.Context.Value(ContextUserIDKey).(uint); ok && userID != 0 {
		b.CreatedBy = &userID
		b.UpdatedBy = &userID
	}
	return nil
}

// BeforeUpdate context'teki kullanıcı ID'sini UpdatedBy alanına yazar.
func (b *BaseModel) BeforeUpdate(tx *gorm.DB) error {
	if userID, ok := tx.Statement.Context.Value(ContextUserIDKey).(uint); ok && userID != 0 {
		b.UpdatedBy = &userID
	}
	return nil
}
