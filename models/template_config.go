package models

// Şablon türleri; her tür kendi varsayılan konfigürasyonunu ve görsel
// varyantını seçer.
const (
	TemplateTypeElegant  = "elegant"
	TemplateTypeRomantic = "romantic"
	TemplateTypeNature   = "nature"
)

// CoupleSection çiftin tanıtım bölümü.
type CoupleSection struct {
	BrideName  string `json:"brideName"`
	GroomName  string `json:"groomName"`
	BrideAbout string `json:"brideAbout"`
	GroomAbout string `json:"groomAbout"`
	Story      string `json:"story"`
}

// WeddingSection düğünün temel bilgileri.
type WeddingSection struct {
	Date    string `json:"date"` // ISO 8601 (YYYY-MM-DD)
	Time    string `json:"time"`
	Venue   string `json:"venue"`
	City    string `json:"city"`
	Hashtag string `json:"hashtag"`
}

// HeroSection açılış bölümü.
type HeroSection struct {
	Title         string `json:"title"`
	Subtitle      string `json:"subtitle"`
	ImageURL      string `json:"imageUrl"`
	ShowCountdown bool   `json:"showCountdown"`
}

// CountdownSection geri sayım bölümü.
type CountdownSection struct {
	Enabled    bool   `json:"enabled"`
	TargetDate string `json:"targetDate"` // ISO 8601, boşsa wedding.date kullanılır
	Title      string `json:"title"`
}

// CalendarSection takvime ekleme bölümü.
type CalendarSection struct {
	Enabled           bool   `json:"enabled"`
	AddToCalendarText string `json:"addToCalendarText"`
}

// Venue bir mekan kaydı (tören, davet vb.).
type Venue struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	MapURL  string `json:"mapUrl"`
	Time    string `json:"time"`
	Kind    string `json:"kind"` // "ceremony" | "reception"
}

// TimelineEvent düğün günü akışındaki tek bir olay.
type TimelineEvent struct {
	Time        string `json:"time"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// RSVPSection LCV bölümü metinleri ve sınırları.
type RSVPSection struct {
	Enabled        bool   `json:"enabled"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	Deadline       string `json:"deadline"` // ISO 8601, boş olabilir
	MaxGuests      int    `json:"maxGuests"`
	SuccessMessage string `json:"successMessage"`
}

// PhotosSection fotoğraf galerisi bölümü.
type PhotosSection struct {
	Enabled bool     `json:"enabled"`
	Title   string   `json:"title"`
	Images  []string `json:"images"`
}

// ThemeSection renk ve yazı tipi seçimleri.
type ThemeSection struct {
	PrimaryColor    string `json:"primaryColor"`
	SecondaryColor  string `json:"secondaryColor"`
	AccentColor     string `json:"accentColor"`
	BackgroundColor string `json:"backgroundColor"`
	FontHeading     string `json:"fontHeading"`
	FontBody        string `json:"fontBody"`
}

// ComposedConfig render katmanının tükettiği, her bölümü dolu nihai
// konfigürasyon. Hiçbir bölüm eksik olamaz; diziler boş olabilir ama
// nil olamaz.
type ComposedConfig struct {
	Couple    CoupleSection    `json:"couple"`
	Wedding   WeddingSection   `json:"wedding"`
	Hero      HeroSection      `json:"hero"`
	Countdown CountdownSection `json:"countdown"`
	Calendar  CalendarSection  `json:"calendar"`
	Locations []Venue          `json:"locations"`
	Timeline  []TimelineEvent  `json:"timeline"`
	RSVP      RSVPSection      `json:"rsvp"`
	Photos    PhotosSection    `json:"photos"`
	Theme     ThemeSection     `json:"theme"`
}

// ConfigSectionKeys üst seviye bölüm anahtarları; composer bölüm bölüm
// birleştirme yaparken bu listeyi izler.
var ConfigSectionKeys = []string{
	"couple", "wedding", "hero", "countdown", "calendar",
	"locations", "timeline", "rsvp", "photos", "theme",
}

// NeutralTheme tür varsayılanında dahi renk bulunamazsa kullanılan
// nötr palet.
var NeutralTheme = ThemeSection{
	PrimaryColor:    "#4a4a4a",
	SecondaryColor:  "#9b9b9b",
	AccentColor:     "#c0a062",
	BackgroundColor: "#fdfbf7",
	FontHeading:     "Playfair Display",
	FontBody:        "Lato",
}

var templateTypeDefaults = map[string]ComposedConfig{
	TemplateTypeElegant: {
		Couple: CoupleSection{
			BrideName: "Gelin",
			GroomName: "Damat",
			Story:     "Hikayemiz yakında burada.",
		},
		Wedding: WeddingSection{
			Date:  "2026-09-05",
			Time:  "16:00",
			Venue: "Düğün Salonu",
			City:  "İstanbul",
		},
		Hero: HeroSection{
			Title:         "Evleniyoruz",
			Subtitle:      "Mutluluğumuza ortak olun",
			ShowCountdown: true,
		},
		Countdown: CountdownSection{Enabled: true, Title: "Büyük güne kalan"},
		Calendar:  CalendarSection{Enabled: true, AddToCalendarText: "Takvime ekle"},
		Locations: []Venue{
			{Name: "Nikah Töreni", Kind: "ceremony", Time: "16:00"},
		},
		Timeline: []TimelineEvent{
			{Time: "16:00", Title: "Nikah", Icon: "rings"},
			{Time: "18:00", Title: "Kokteyl", Icon: "glass"},
			{Time: "20:00", Title: "Yemek", Icon: "dinner"},
		},
		RSVP: RSVPSection{
			Enabled:        true,
			Title:          "LCV",
			Description:    "Lütfen katılım durumunuzu bildirin.",
			MaxGuests:      5,
			SuccessMessage: "Yanıtınız için teşekkürler!",
		},
		Photos: PhotosSection{Enabled: true, Title: "Fotoğraflar", Images: []string{}},
		Theme: ThemeSection{
			PrimaryColor:    "#2c2c2c",
			SecondaryColor:  "#8a8a8a",
			AccentColor:     "#c0a062",
			BackgroundColor: "#ffffff",
			FontHeading:     "Playfair Display",
			FontBody:        "Lato",
		},
	},
	TemplateTypeRomantic: {
		Couple: CoupleSection{
			BrideName: "Gelin",
			GroomName: "Damat",
			Story:     "Bir bakışla başladı her şey...",
		},
		Wedding: WeddingSection{
			Date:  "2026-09-05",
			Time:  "17:00",
			Venue: "Kır Bahçesi",
			City:  "İzmir",
		},
		Hero: HeroSection{
			Title:         "Sonsuza Dek",
			Subtitle:      "Bu özel günde yanımızda olun",
			ShowCountdown: true,
		},
		Countdown: CountdownSection{Enabled: true, Title: "Kavuşmamıza kalan"},
		Calendar:  CalendarSection{Enabled: true, AddToCalendarText: "Takvime ekle"},
		Locations: []Venue{
			{Name: "Tören Alanı", Kind: "ceremony", Time: "17:00"},
			{Name: "Davet Alanı", Kind: "reception", Time: "19:00"},
		},
		Timeline: []TimelineEvent{
			{Time: "17:00", Title: "Tören", Icon: "rings"},
			{Time: "19:00", Title: "Davet", Icon: "dinner"},
		},
		RSVP: RSVPSection{
			Enabled:        true,
			Title:          "Bize Katılın",
			Description:    "Katılım durumunuzu bildirmeyi unutmayın.",
			MaxGuests:      5,
			SuccessMessage: "Sizi aramızda görmek için sabırsızlanıyoruz!",
		},
		Photos: PhotosSection{Enabled: true, Title: "Anılarımız", Images: []string{}},
		Theme: ThemeSection{
			PrimaryColor:    "#7a3b46",
			SecondaryColor:  "#d9a5ad",
			AccentColor:     "#e8c3c9",
			BackgroundColor: "#fff7f8",
			FontHeading:     "Great Vibes",
			FontBody:        "Montserrat",
		},
	},
	TemplateTypeNature: {
		Couple: CoupleSection{
			BrideName: "Gelin",
			GroomName: "Damat",
			Story:     "Doğanın kalbinde buluşuyoruz.",
		},
		Wedding: WeddingSection{
			Date:  "2026-09-05",
			Time:  "15:00",
			Venue: "Orman Bahçesi",
			City:  "Muğla",
		},
		Hero: HeroSection{
			Title:         "Doğada Bir Düğün",
			Subtitle:      "Yeşilin bin bir tonunda",
			ShowCountdown: true,
		},
		Countdown: CountdownSection{Enabled: true, Title: "Düğüne kalan"},
		Calendar:  CalendarSection{Enabled: true, AddToCalendarText: "Takvime ekle"},
		Locations: []Venue{
			{Name: "Açık Hava Töreni", Kind: "ceremony", Time: "15:00"},
		},
		Timeline: []TimelineEvent{
			{Time: "15:00", Title: "Tören", Icon: "leaf"},
			{Time: "17:00", Title: "Kokteyl", Icon: "glass"},
		},
		RSVP: RSVPSection{
			Enabled:        true,
			Title:          "LCV",
			Description:    "Hazırlıklarımız için lütfen yanıt verin.",
			MaxGuests:      5,
			SuccessMessage: "Teşekkürler, görüşmek üzere!",
		},
		Photos: PhotosSection{Enabled: true, Title: "Galeri", Images: []string{}},
		Theme: ThemeSection{
			PrimaryColor:    "#2f4f3a",
			SecondaryColor:  "#7fa98c",
			AccentColor:     "#d9b382",
			BackgroundColor: "#f6f9f4",
			FontHeading:     "Cormorant Garamond",
			FontBody:        "Open Sans",
		},
	},
}

// DefaultConfigForType tür anahtarına karşılık gelen varsayılan
// konfigürasyonun bir kopyasını döndürür. Bilinmeyen tür için ok=false.
func DefaultConfigForType(typeKey string) (ComposedConfig, bool) {
	cfg, ok := templateTypeDefaults[typeKey]
	if !ok {
		return ComposedConfig{}, false
	}
	// Çağıranın dilimleri değiştirmesi varsayılanları bozmasın.
	cfg.Locations = append([]Venue(nil), cfg.Locations...)
	cfg.Timeline = append([]TimelineEvent(nil), cfg.Timeline...)
	cfg.Photos.Images = append([]string(nil), cfg.Photos.Images...)
	return cfg, true
}

// IsKnownTemplateType tür anahtarının kayıtlı olup olmadığını söyler.
func IsKnownTemplateType(typeKey string) bool {
	_, ok := templateTypeDefaults[typeKey]
	return ok
}

// TemplateTypeKeys kayıtlı tür anahtarlarını döndürür (seeder ve
// validasyon için).
func TemplateTypeKeys() []string {
	return []string{TemplateTypeElegant, TemplateTypeRomantic, TemplateTypeNature}
}
