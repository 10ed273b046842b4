package models

// RSVPAttendance misafirin katılım kararı.
type RSVPAttendance string

const (
	RSVPAttending    RSVPAttendance = "attending"
	RSVPNotAttending RSVPAttendance = "not_attending"
)

// IsValidAttendance enum kontrolü.
func IsValidAttendance(value string) bool {
	return value == string(RSVPAttending) || value == string(RSVPNotAttending)
}

// RSVP bir misafirin tenant'a bağlı LCV yanıtı.
type RSVP struct {
	BaseModel
	TemplateID uint `gorm:"not null;index" json:"templateId"`

	FirstName  string `gorm:"type:varchar(100);not null" json:"firstName"`
	LastName   string `gorm:"type:varchar(100);not null" json:"lastName"`
	Email      string `gorm:"type:varchar(150);not null;index" json:"email"`
	GuestEmail string `gorm:"type:varchar(150);index" json:"guestEmail,omitempty"`

	Attendance          RSVPAttendance `gorm:"type:varchar(20);not null;index" json:"attendance"`
	GuestCount          int            `gorm:"type:integer;not null;default:1" json:"guestCount"`
	GuestNames          string         `gorm:"type:varchar(500)" json:"guestNames,omitempty"`
	DietaryRestrictions string         `gorm:"type:varchar(500)" json:"dietaryRestrictions,omitempty"`
	Message             string         `gorm:"type:text" json:"message,omitempty"`
}

// RSVPEmail LCV'de bildirilen her e-posta adresi için bir satır tutar.
// (template_id, email) üzerindeki unique index, eşzamanlı mükerrer
// gönderimlerde check-then-insert yarışını veritabanı seviyesinde kapatır;
// asıl/alternatif alan ayrımı olmadan her adres tekil satırdır.
type RSVPEmail struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	TemplateID uint   `gorm:"not null;uniqueIndex:idx_rsvp_email_tenant" json:"templateId"`
	Email      string `gorm:"type:varchar(150);not null;uniqueIndex:idx_rsvp_email_tenant" json:"email"`
	RSVPID     uint   `gorm:"not null;index" json:"rsvpId"`
}
