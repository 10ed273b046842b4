package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"dugun.link/configs"
	"dugun.link/configs/configslog"
	"dugun.link/mailer"
	"dugun.link/models"
	"dugun.link/pkg/outbox"
	"dugun.link/pkg/queryparams"
	"dugun.link/repositories"
)

// RSVPServiceError özel servis hataları
type RSVPServiceError string

func (e RSVPServiceError) Error() string { return string(e) }

const (
	ErrRSVPFirstNameRequired RSVPServiceError = "ad zorunludur"
	ErrRSVPLastNameRequired  RSVPServiceError = "soyad zorunludur"
	ErrRSVPEmailInvalid      RSVPServiceError = "geçerli bir e-posta adresi girin"
	ErrRSVPGuestEmailInvalid RSVPServiceError = "geçerli bir ikinci e-posta adresi girin"
	ErrRSVPAttendanceInvalid RSVPServiceError = "katılım durumu geçersiz"
	ErrRSVPGuestCountInvalid RSVPServiceError = "kişi sayısı izin verilen aralığın dışında"
	ErrRSVPFieldTooLong      RSVPServiceError = "alan izin verilen uzunluğu aşıyor"
	ErrRSVPAlreadySubmitted  RSVPServiceError = "bu e-posta adresiyle daha önce yanıt gönderilmiş"
	ErrRSVPCreationFailed    RSVPServiceError = "LCV kaydedilemedi"
)

var emailRegexp = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Serbest metin alanları için üst sınırlar.
const (
	maxNameLength    = 100
	maxEmailLength   = 150
	maxListFieldLen  = 500
	maxMessageLength = 2000
)

// SubmitRSVPInput misafirin gönderdiği LCV verisi.
type SubmitRSVPInput struct {
	FirstName           string `json:"firstName"`
	LastName            string `json:"lastName"`
	Email               string `json:"email"`
	GuestEmail          string `json:"guestEmail"`
	Attendance          string `json:"attendance"`
	GuestCount          int    `json:"guestCount"`
	GuestNames          string `json:"guestNames"`
	DietaryRestrictions string `json:"dietaryRestrictions"`
	Message             string `json:"message"`
}

// IRSVPService LCV doğrulama, tekilleştirme ve kayıt işlemleri.
type IRSVPService interface {
	// SubmitRSVP akışı: doğrulama → tekilleştirme → kayıt → bildirimler.
	// Bildirim gönderimi yanıtı bloklamaz; hatası yalnızca loglanır.
	SubmitRSVP(ctx context.Context, template *models.Template, input SubmitRSVPInput) (*models.RSVP, error)
	GetRSVPsForTemplate(ctx context.Context, templateID uint, params queryparams.ListParams) (*queryparams.PaginatedResult, error)
}

// RSVPService IRSVPService arayüzünü uygular.
type RSVPService struct {
	repo      repositories.IRSVPRepository
	mail      mailer.IMailer
	tasks     *outbox.Outbox
	maxGuests int
}

// NewRSVPService yeni bir RSVPService örneği oluşturur.
func NewRSVPService() IRSVPService {
	return &RSVPService{
		repo:      repositories.NewRSVPRepository(),
		mail:      mailer.NewFromEnv(),
		tasks:     outbox.Default,
		maxGuests: configs.RSVPMaxGuestCount(),
	}
}

// NewRSVPServiceWith bağımlılık enjeksiyonu ile oluşturur (testler).
func NewRSVPServiceWith(repo repositories.IRSVPRepository, mail mailer.IMailer, tasks *outbox.Outbox, maxGuests int) IRSVPService {
	if tasks == nil {
		tasks = outbox.Default
	}
	if maxGuests <= 0 {
		maxGuests = 5
	}
	return &RSVPService{repo: repo, mail: mail, tasks: tasks, maxGuests: maxGuests}
}

// validate alan kurallarını uygular ve girdiyi normalize eder.
func (s *RSVPService) validate(input *SubmitRSVPInput) error {
	input.FirstName = strings.TrimSpace(input.FirstName)
	input.LastName = strings.TrimSpace(input.LastName)
	input.Email = normalizeEmail(input.Email)
	input.GuestEmail = normalizeEmail(input.GuestEmail)
	input.GuestNames = strings.TrimSpace(input.GuestNames)
	input.DietaryRestrictions = strings.TrimSpace(input.DietaryRestrictions)
	input.Message = strings.TrimSpace(input.Message)

	if input.FirstName == "" {
		return ErrRSVPFirstNameRequired
	}
	if input.LastName == "" {
		return ErrRSVPLastNameRequired
	}
	if len(input.FirstName) > maxNameLength || len(input.LastName) > maxNameLength {
		return ErrRSVPFieldTooLong
	}
	if input.Email == "" || len(input.Email) > maxEmailLength || !emailRegexp.MatchString(input.Email) {
		return ErrRSVPEmailInvalid
	}
	if input.GuestEmail != "" && (len(input.GuestEmail) > maxEmailLength || !emailRegexp.MatchString(input.GuestEmail)) {
		return ErrRSVPGuestEmailInvalid
	}
	if !models.IsValidAttendance(input.Attendance) {
		return ErrRSVPAttendanceInvalid
	}
	if input.GuestCount < 1 || input.GuestCount > s.maxGuests {
		return ErrRSVPGuestCountInvalid
	}
	if len(input.GuestNames) > maxListFieldLen || len(input.DietaryRestrictions) > maxListFieldLen {
		return ErrRSVPFieldTooLong
	}
	if len(input.Message) > maxMessageLength {
		return ErrRSVPFieldTooLong
	}
	return nil
}

// SubmitRSVP doğrular, tekilleştirir, kaydeder ve bildirimleri kuyruğa atar.
func (s *RSVPService) SubmitRSVP(ctx context.Context, template *models.Template, input SubmitRSVPInput) (*models.RSVP, error) {
	if template == nil || template.ID == 0 {
		return nil, ErrRSVPCreationFailed
	}
	if err := s.validate(&input); err != nil {
		return nil, err
	}

	// Gelen her iki alan da, kayıtlı her iki alanla karşılaştırılır:
	// misafirler adreslerini formlar arasında tutarsız girebilir.
	emails := []string{input.Email}
	if input.GuestEmail != "" && input.GuestEmail != input.Email {
		emails = append(emails, input.GuestEmail)
	}

	// Hızlı yol: dostça hata mesajı için uygulama seviyesi kontrol. Asıl
	// güvence rsvp_emails üzerindeki unique index'tir.
	exists, err := s.repo.EmailExists(ctx, template.ID, emails)
	if err != nil {
		return nil, ErrRSVPCreationFailed
	}
	if exists {
		return nil, ErrRSVPAlreadySubmitted
	}

	rsvp := &models.RSVP{
		TemplateID:          template.ID,
		FirstName:           input.FirstName,
		LastName:            input.LastName,
		Email:               input.Email,
		GuestEmail:          input.GuestEmail,
		Attendance:          models.RSVPAttendance(input.Attendance),
		GuestCount:          input.GuestCount,
		GuestNames:          input.GuestNames,
		DietaryRestrictions: input.DietaryRestrictions,
		Message:             input.Message,
	}

	if err := s.repo.CreateWithEmails(ctx, rsvp, emails); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			// Eşzamanlı mükerrer gönderim yarışını index yakaladı.
			return nil, ErrRSVPAlreadySubmitted
		}
		configslog.Log.Error("LCV kaydedilirken repository hatası",
			zap.Uint("template_id", template.ID), zap.Error(err))
		return nil, ErrRSVPCreationFailed
	}

	s.dispatchNotifications(template, rsvp)

	configslog.SLog.Infof("LCV kaydedildi: Şablon %d, %s %s (%s, %d kişi)",
		template.ID, rsvp.FirstName, rsvp.LastName, rsvp.Attendance, rsvp.GuestCount)
	return rsvp, nil
}

// dispatchNotifications sahip bildirimi ve misafir onayını outbox'a atar.
func (s *RSVPService) dispatchNotifications(template *models.Template, rsvp *models.RSVP) {
	if s.mail == nil {
		return
	}
	attendanceText := "Katılıyor"
	if rsvp.Attendance == models.RSVPNotAttending {
		attendanceText = "Katılmıyor"
	}

	if template.OwnerEmail != "" {
		owner := mailer.Message{
			To:      []string{template.OwnerEmail},
			Subject: fmt.Sprintf("Yeni LCV: %s %s", rsvp.FirstName, rsvp.LastName),
			Body: fmt.Sprintf(
				"Davetiyeniz (%s) için yeni bir LCV yanıtı alındı.\n\nAd Soyad: %s %s\nDurum: %s\nKişi sayısı: %d\nNot: %s\n",
				template.Slug, rsvp.FirstName, rsvp.LastName, attendanceText, rsvp.GuestCount, rsvp.Message,
			),
		}
		s.tasks.Dispatch(outbox.Task{
			Name: "rsvp-owner-notification",
			Run:  func() error { return s.mail.Send(owner) },
		})
	}

	confirmation := mailer.Message{
		To:      []string{rsvp.Email},
		Subject: "LCV yanıtınız alındı",
		Body: fmt.Sprintf(
			"Merhaba %s,\n\nLCV yanıtınız başarıyla kaydedildi.\nDurum: %s\nKişi sayısı: %d\n\nTeşekkürler.\n",
			rsvp.FirstName, attendanceText, rsvp.GuestCount,
		),
	}
	s.tasks.Dispatch(outbox.Task{
		Name: "rsvp-guest-confirmation",
		Run:  func() error { return s.mail.Send(confirmation) },
	})
}

// GetRSVPsForTemplate tenant'ın LCV'lerini sayfalayarak getirir.
func (s *RSVPService) GetRSVPsForTemplate(ctx context.Context, templateID uint, params queryparams.ListParams) (*queryparams.PaginatedResult, error) {
	if templateID == 0 {
		return nil, errors.New("geçersiz şablon ID")
	}
	params.Validate()

	rsvps, totalCount, err := s.repo.FindByTemplateIDPaginated(ctx, templateID, params)
	if err != nil {
		return nil, err
	}
	return &queryparams.PaginatedResult{
		Data: rsvps,
		Meta: queryparams.PaginationMeta{
			CurrentPage: params.Page,
			PerPage:     params.PerPage,
			TotalItems:  totalCount,
			TotalPages:  queryparams.CalculateTotalPages(totalCount, params.PerPage),
		},
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

var _ IRSVPService = (*RSVPService)(nil)
