// Package queryparams liste uçlarının sayfalama parametrelerini ve
// sayfalanmış sonuç zarfını tanımlar.
package queryparams

const (
	DefaultPage    = 1
	DefaultPerPage = 20
	MaxPerPage     = 100
)

// ListParams sayfalama ve sıralama girdileri.
type ListParams struct {
	Page    int    `json:"page" query:"page"`
	PerPage int    `json:"perPage" query:"perPage"`
	SortBy  string `json:"sortBy" query:"sortBy"`
	OrderBy string `json:"orderBy" query:"orderBy"` // "asc" | "desc"
}

// Validate parametreleri güvenli sınırlara çeker.
func (p *ListParams) Validate() {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.PerPage < 1 {
		p.PerPage = DefaultPerPage
	}
	if p.PerPage > MaxPerPage {
		p.PerPage = MaxPerPage
	}
	if p.OrderBy != "asc" && p.OrderBy != "desc" {
		p.OrderBy = "desc"
	}
}

// Offset SQL offset değeri.
func (p ListParams) Offset() int {
	return (p.Page - 1) * p.PerPage
}

// PaginationMeta sayfalanmış yanıtın üst verisi.
type PaginationMeta struct {
	CurrentPage int   `json:"currentPage"`
	PerPage     int   `json:"perPage"`
	TotalItems  int64 `json:"totalItems"`
	TotalPages  int   `json:"totalPages"`
}

// PaginatedResult veri + meta zarfı.
type PaginatedResult struct {
	Data any            `json:"data"`
	Meta PaginationMeta `json:"meta"`
}

// CalculateTotalPages toplam kayıt sayısından sayfa sayısını hesaplar.
func CalculateTotalPages(totalItems int64, perPage int) int {
	if perPage <= 0 || totalItems <= 0 {
		return 0
	}
	pages := totalItems / int64(perPage)
	if totalItems%int64(perPage) != 0 {
		pages++
	}
	return int(pages)
}
