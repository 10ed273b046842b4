package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"dugun.link/configs"
	"dugun.link/configs/configslog"
	"dugun.link/models"
	"dugun.link/repositories"
)

// AuthServiceError özel servis hataları
type AuthServiceError string

func (e AuthServiceError) Error() string { return string(e) }

const (
	ErrAuthInvalidCredentials AuthServiceError = "e-posta veya şifre hatalı"
	ErrAuthAccountDisabled    AuthServiceError = "hesap devre dışı bırakılmış"
	ErrAuthTokenGeneration    AuthServiceError = "oturum anahtarı üretilemedi"
)

// LoginResult başarılı girişin çıktısı.
type LoginResult struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      *models.User `json:"user"`
}

// IAuthService yönetici kimlik doğrulama işlemleri.
type IAuthService interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
}

// AuthService IAuthService arayüzünü uygular.
type AuthService struct {
	userRepo    repositories.IUserRepository
	jwtSecret   []byte
	expiryHours int
}

// NewAuthService yeni bir AuthService örneği oluşturur.
func NewAuthService() IAuthService {
	return &AuthService{
		userRepo:    repositories.NewUserRepository(),
		jwtSecret:   []byte(configs.JWTSecret()),
		expiryHours: configs.JWTExpiryHours(),
	}
}

// NewAuthServiceWith bağımlılık enjeksiyonu ile oluşturur (testler).
func NewAuthServiceWith(userRepo repositories.IUserRepository, jwtSecret string, expiryHours int) IAuthService {
	if expiryHours <= 0 {
		expiryHours = 24
	}
	return &AuthService{userRepo: userRepo, jwtSecret: []byte(jwtSecret), expiryHours: expiryHours}
}

// Login kimlik bilgilerini doğrular ve imzalı JWT döndürür.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, ErrAuthInvalidCredentials
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			// Hesabın varlığını ele vermemek için aynı hata döner.
			return nil, ErrAuthInvalidCredentials
		}
		configslog.Log.Error("Login sırasında kullanıcı sorgusu başarısız", zap.Error(err))
		return nil, ErrAuthInvalidCredentials
	}
	if !user.IsActive {
		return nil, ErrAuthAccountDisabled
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrAuthInvalidCredentials
	}

	expiresAt := time.Now().Add(time.Duration(s.expiryHours) * time.Hour)
	claims := jwt.MapClaims{
		"sub":      user.ID,
		"isSystem": user.IsSystem,
		"iat":      time.Now().Unix(),
		"exp":      expiresAt.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		configslog.Log.Error("JWT imzalanamadı", zap.Uint("user_id", user.ID), zap.Error(err))
		return nil, ErrAuthTokenGeneration
	}

	configslog.SLog.Infof("Yönetici girişi: %s (ID %d)", user.Email, user.ID)
	return &LoginResult{Token: signed, ExpiresAt: expiresAt, User: user}, nil
}

var _ IAuthService = (*AuthService)(nil)
