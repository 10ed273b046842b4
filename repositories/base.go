package repositories

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
)

// Ortak repository hataları; servis katmanı bunları kendi tipli
// hatalarına çevirir.
var (
	ErrNotFound  = errors.New("kayıt bulunamadı")
	ErrDuplicate = errors.New("kayıt zaten mevcut")
)

type txContextKey struct{}

// ContextWithTx transaction'ı context üzerinden repository'lere taşır.
func ContextWithTx(ctx context.Context, tx *gorm.DB) context.Context {
	return context.WithValue(ctx, txContextKey{}, tx)
}

// dbFromContext context'te transaction varsa onu, yoksa verilen bağlantıyı
// context ile döndürür.
func dbFromContext(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txContextKey{}).(*gorm.DB); ok && tx != nil {
		return tx
	}
	return db.WithContext(ctx)
}

// isDuplicateKeyError GORM'un çevirdiği veya sürücüden sızan unique
// constraint ihlallerini yakalar.
func isDuplicateKeyError(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(err.Error(), "duplicate key value violates unique constraint")
}
