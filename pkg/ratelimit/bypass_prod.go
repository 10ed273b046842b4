//go:build !dev

package ratelimit

// Üretim derlemesinde sınırlama atlanamaz; bayrak derleme anında sabittir,
// çalışma zamanında değiştirilemez.
const bypassEnabled = false
