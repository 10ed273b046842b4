package models

// PricingFeature plan özellik kataloğundaki tek bir özellik.
type PricingFeature struct {
	BaseModel
	Key         string `gorm:"type:varchar(80);uniqueIndex;not null" json:"key"`
	Name        string `gorm:"type:varchar(150);not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
}

// ConfigurablePricingPlan yapılandırılabilir fiyatlandırma modeli.
// DisplayOrder değerleri 0'dan başlayarak bitişiktir ve ana sayfa
// sıralamasını belirler; reorder işlemi komşuyla takas yapar.
type ConfigurablePricingPlan struct {
	BaseModel
	Key          string  `gorm:"type:varchar(80);uniqueIndex;not null" json:"key"`
	Name         string  `gorm:"type:varchar(150);not null" json:"name"`
	Description  string  `gorm:"type:text" json:"description"`
	PriceMonthly float64 `gorm:"type:numeric(10,2);not null;default:0" json:"priceMonthly"`
	PriceYearly  float64 `gorm:"type:numeric(10,2);not null;default:0" json:"priceYearly"`
	Currency     string  `gorm:"type:varchar(3);not null;default:'TRY'" json:"currency"`
	DisplayOrder int     `gorm:"not null;index" json:"displayOrder"`
	IsActive     bool    `gorm:"default:true;index" json:"isActive"`

	Features []PlanFeature `gorm:"foreignKey:PlanID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"features,omitempty"`
}

// PlanFeature bir planla bir özelliği ilişkilendirir.
type PlanFeature struct {
	BaseModel
	PlanID    uint   `gorm:"not null;uniqueIndex:idx_plan_feature" json:"planId"`
	FeatureID uint   `gorm:"not null;uniqueIndex:idx_plan_feature" json:"featureId"`
	Included  bool   `gorm:"default:false" json:"included"`
	Value     string `gorm:"type:varchar(150)" json:"value"`

	Feature PricingFeature `gorm:"foreignKey:FeatureID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"feature"`
}
