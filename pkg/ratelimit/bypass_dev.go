//go:build dev

package ratelimit

// "dev" etiketiyle derlenen yerel geliştirme ikililerinde tüm bucket'lar
// sınırsızdır.
const bypassEnabled = true
