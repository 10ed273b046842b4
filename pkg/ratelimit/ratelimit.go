// Package ratelimit IP başına, rota sınıfına (bucket) göre sabit pencereli
// istek sınırlaması uygular. Sayaç deposu takılabilirdir: süreç içi map
// veya Redis.
package ratelimit

import (
	"context"
	"time"
)

// Bucket bir rota sınıfını adlandırır; her sınıfın bağımsız penceresi vardır.
type Bucket string

const (
	BucketGeneral Bucket = "general"
	BucketRSVP    Bucket = "rsvp"
	BucketAuth    Bucket = "auth"
	BucketAdmin   Bucket = "admin"
	BucketUpload  Bucket = "upload"
)

// Policy bir bucket'ın pencere başına istek tavanı.
type Policy struct {
	Max    int
	Window time.Duration
}

// DefaultPolicies platformun politika tablosu.
var DefaultPolicies = map[Bucket]Policy{
	BucketGeneral: {Max: 100, Window: 15 * time.Minute},
	BucketRSVP:    {Max: 5, Window: 60 * time.Minute},
	BucketAuth:    {Max: 10, Window: 15 * time.Minute},
	BucketAdmin:   {Max: 50, Window: 15 * time.Minute},
	BucketUpload:  {Max: 20, Window: 15 * time.Minute},
}

// Store pencere sayaçlarını tutan depo arayüzü.
type Store interface {
	// Incr anahtarın sayaç değerini bir artırır; yeni değeri ve pencerenin
	// bitiş zamanını döndürür. Pencere yoksa başlatılır.
	Incr(ctx context.Context, key string, window time.Duration) (count int64, resetAt time.Time, err error)
}

// Decision tek bir isteğin kabul kararı ve başlık bilgileri. Unlimited
// kararlar başlık verisi taşımaz.
type Decision struct {
	Allowed   bool
	Unlimited bool
	Limit     int
	Remaining int
	ResetAt   time.Time
}

// Limiter politika tablosunu bir Store üzerinde uygular.
type Limiter struct {
	store    Store
	policies map[Bucket]Policy
}

// New varsayılan politika tablosuyla bir Limiter kurar.
func New(store Store) *Limiter {
	return NewWithPolicies(store, DefaultPolicies)
}

// NewWithPolicies özel politika tablosuyla bir Limiter kurar (testler
// küçük pencerelerle bunu kullanır).
func NewWithPolicies(store Store, policies map[Bucket]Policy) *Limiter {
	return &Limiter{store: store, policies: policies}
}

// Allow verilen bucket ve istemci IP'si için isteği değerlendirir.
// Politikası tanımsız bucket'lar sınırlandırılmaz.
func (l *Limiter) Allow(ctx context.Context, bucket Bucket, ip string) (Decision, error) {
	policy, ok := l.policies[bucket]
	if !ok || bypassEnabled {
		return Decision{Allowed: true, Unlimited: true}, nil
	}

	key := string(bucket) + ":" + ip
	count, resetAt, err := l.store.Incr(ctx, key, policy.Window)
	if err != nil {
		return Decision{}, err
	}

	remaining := policy.Max - int(count)
	if remaining < 0 {
		remaining = 0
	}
	return Decision{
		Allowed:   count <= int64(policy.Max),
		Limit:     policy.Max,
		Remaining: remaining,
		ResetAt:   resetAt,
	}, nil
}
