package configs

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"dugun.link/configs/configslog"
)

var db *gorm.DB

// ConnectDB Postgres bağlantısını kurar ve paket seviyesindeki örneği doldurur.
// Uygulama başlarken bir kez çağrılır.
func ConnectDB() {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
		GetEnv("DB_HOST", "localhost"),
		GetEnv("DB_PORT", "5432"),
		GetEnv("DB_USER", "postgres"),
		GetEnv("DB_PASSWORD", ""),
		GetEnv("DB_NAME", "dugunlink"),
		GetEnv("DB_SSLMODE", "disable"),
	)

	logLevel := gormlogger.Warn
	if AppEnv() != "production" {
		logLevel = gormlogger.Info
	}

	conn, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(logLevel),
		TranslateError: true, // gorm.ErrDuplicatedKey eşlemesi için
	})
	if err != nil {
		configslog.Log.Fatal("Veritabanı bağlantısı kurulamadı", zap.Error(err))
	}

	sqlDB, err := conn.DB()
	if err != nil {
		configslog.Log.Fatal("Veritabanı havuzuna erişilemedi", zap.Error(err))
	}
	sqlDB.SetMaxOpenConns(GetEnvInt("DB_MAX_OPEN_CONNS", 25))
	sqlDB.SetMaxIdleConns(GetEnvInt("DB_MAX_IDLE_CONNS", 5))
	sqlDB.SetConnMaxLifetime(time.Duration(GetEnvInt("DB_CONN_MAX_LIFETIME_MIN", 30)) * time.Minute)

	db = conn
	configslog.SLog.Info("Veritabanı bağlantısı kuruldu")
}

// GetDB aktif GORM bağlantısını döndürür.
func GetDB() *gorm.DB {
	return db
}

// CloseDB bağlantı havuzunu kapatır; kapanış sırasında çağrılır.
func CloseDB() {
	if db == nil {
		return
	}
	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			configslog.Log.Error("Veritabanı bağlantısı kapatılamadı", zap.Error(err))
			return
		}
	}
	configslog.SLog.Info("Veritabanı bağlantısı kapatıldı")
}
