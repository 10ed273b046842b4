package configs

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"dugun.link/configs/configslog"
)

// LoadEnv .env dosyasını yükler. Dosya yoksa sorun değildir (container ortamı).
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		configslog.SLog.Info(".env dosyası bulunamadı, mevcut ortam değişkenleri kullanılacak")
	}
}

// GetEnv bir ortam değişkenini okur, boşsa verilen varsayılanı döndürür.
func GetEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// GetEnvInt sayısal bir ortam değişkenini okur.
func GetEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
		configslog.SLog.Warnf("Ortam değişkeni %s sayıya çevrilemedi, varsayılan %d kullanılacak", key, fallback)
	}
	return fallback
}

// AppEnv uygulama ortamını döndürür: "development" veya "production".
func AppEnv() string {
	return GetEnv("APP_ENV", "development")
}

// AppVersion sağlık ucunda raporlanan sürüm bilgisi.
func AppVersion() string {
	return GetEnv("APP_VERSION", "1.0.0")
}

// AppPort HTTP sunucusunun dinleyeceği port.
func AppPort() string {
	return GetEnv("PORT", "8080")
}

// JWTSecret panel oturum token'larını imzalayan anahtar.
func JWTSecret() string {
	return GetEnv("JWT_SECRET", "")
}

// JWTExpiryHours token geçerlilik süresi (saat).
func JWTExpiryHours() int {
	return GetEnvInt("JWT_EXPIRY_HOURS", 24)
}

// RedisAddr boş değilse rate limit sayaçları Redis üzerinde tutulur.
func RedisAddr() string {
	return GetEnv("REDIS_ADDR", "")
}

// RSVPMaxGuestCount tek bir LCV yanıtındaki en fazla kişi sayısı.
func RSVPMaxGuestCount() int {
	return GetEnvInt("RSVP_MAX_GUEST_COUNT", 5)
}

// SMTPConfig bildirim e-postaları için SMTP ayarları.
type SMTPConfig struct {
	Host     string
	Port     string
	From     string
	Password string
}

// GetSMTPConfig SMTP ayarlarını ortamdan okur. Host boşsa mailer devre dışıdır.
func GetSMTPConfig() SMTPConfig {
	return SMTPConfig{
		Host:     GetEnv("SMTP_HOST", ""),
		Port:     GetEnv("SMTP_PORT", "587"),
		From:     GetEnv("SMTP_FROM", ""),
		Password: GetEnv("SMTP_PASSWORD", ""),
	}
}
