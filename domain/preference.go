package domain

import (
	"time"
)

// Known categorical values. Anything outside these degrades to an empty
// query fragment instead of failing the request.
const (
	ProductPreferenceAll = "semua"
)

// UserPreference is the stored preference profile, one row per user.
type UserPreference struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	UserID             uint      `gorm:"column:user_id;uniqueIndex;not null" json:"user_id"`
	SkinCondition      string    `gorm:"column:kondisi_kulit" json:"kondisi_kulit"`
	SkinProblem        string    `gorm:"column:masalah_kulit" json:"masalah_kulit"`
	PriceRange         string    `gorm:"column:rentang_harga" json:"rentang_harga"`
	ProductPreference  string    `gorm:"column:preferensi_produk;default:semua" json:"preferensi_produk"`
	PreferenceKeywords string    `gorm:"column:kata_kunci_preferensi" json:"kata_kunci_preferensi"`
	UsageFrequency     string    `gorm:"column:frekuensi_penggunaan" json:"frekuensi_penggunaan"`
	BudgetMin          int64     `gorm:"column:budget_min;default:0" json:"budget_min"`
	BudgetMax          int64     `gorm:"column:budget_max;default:1000000" json:"budget_max"`
	KValue             int       `gorm:"column:k_value;default:3" json:"k_value"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func (UserPreference) TableName() string {
	return "user_preferences"
}

// PreferenceProfile is the transient per-request input to the recommendation
// engine. It is assembled from the stored UserPreference plus any ad-hoc
// search keywords the caller supplies; the engine never persists it.
type PreferenceProfile struct {
	SkinCondition      string `json:"kondisi_kulit"`
	SkinProblem        string `json:"masalah_kulit"`
	ProductPreference  string `json:"preferensi_produk"`
	PreferenceKeywords string `json:"kata_kunci_preferensi"`
	SearchKeywords     string `json:"kata_kunci"`
	BudgetMin          int64  `json:"budget_min"`
	BudgetMax          int64  `json:"budget_max"`
	KValue             int    `json:"k_value"`
}
