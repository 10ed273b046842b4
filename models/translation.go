package models

// TranslationKey panel üzerinden düzenlenebilen çeviri katmanının anahtarı.
// Key noktalı yol biçimindedir (örn. "common.viewMore").
type TranslationKey struct {
	BaseModel
	Key     string `gorm:"type:varchar(150);uniqueIndex;not null" json:"key"`
	Section string `gorm:"type:varchar(50);index" json:"section"`

	// Anahtar silindiğinde değerleri de silinir.
	Values []TranslationValue `gorm:"foreignKey:TranslationKeyID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"values,omitempty"`
}

// TranslationValue bir (anahtar, dil) çifti için tam olarak bir değer tutar.
type TranslationValue struct {
	BaseModel
	TranslationKeyID uint   `gorm:"not null;uniqueIndex:idx_translation_key_lang" json:"translationKeyId"`
	Language         string `gorm:"type:varchar(5);not null;uniqueIndex:idx_translation_key_lang" json:"language"`
	Value            string `gorm:"type:text;not null" json:"value"`
}
