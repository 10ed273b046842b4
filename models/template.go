package models

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// LegacySlugPrefix eski "/t/..." paylaşım yollarından kalan ayrılmış önek.
// Bu önekle başlayan tanımlayıcılar çözümleme sırasında kalıcı olarak
// reddedilir; aynı slug'a sahip bir kayıt olsa bile.
const LegacySlugPrefix = "t-"

var slugRegexp = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// Template bir çiftin düğün sitesi örneğidir (tenant).
type Template struct {
	BaseModel
	PublicID   uuid.UUID       `gorm:"type:uuid;uniqueIndex;not null" json:"publicId"`
	Slug       string          `gorm:"type:varchar(80);uniqueIndex;not null" json:"slug"`
	TypeKey    string          `gorm:"type:varchar(30);not null;index" json:"typeKey"`
	OwnerName  string          `gorm:"type:varchar(150)" json:"ownerName"`
	OwnerEmail string          `gorm:"type:varchar(150);not null;index" json:"ownerEmail"`
	Config     json.RawMessage `gorm:"type:jsonb" json:"config"`

	IsActive                bool   `gorm:"default:true;index" json:"isActive"`
	Maintenance             bool   `gorm:"default:false" json:"maintenance"`
	MaintenancePasswordHash string `gorm:"type:varchar(255)" json:"-"`

	RSVPs []RSVP `gorm:"foreignKey:TemplateID" json:"-"`
}

// IsValidSlug slug kural setini uygular: küçük harf/rakam ve tire.
func IsValidSlug(slug string) bool {
	if slug == "" || len(slug) > 80 {
		return false
	}
	return slugRegexp.MatchString(slug)
}

// IsLegacyIdentifier tanımlayıcının ayrılmış eski URL biçiminde olup
// olmadığını söyler ("t-..." veya "t/..." yol kalıntısı).
func IsLegacyIdentifier(identifier string) bool {
	return strings.HasPrefix(identifier, LegacySlugPrefix) ||
		strings.HasPrefix(identifier, "t/") ||
		identifier == "t"
}
