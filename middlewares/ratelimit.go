package middlewares

import (
	"strconv"
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"dugun.link/configs"
	"dugun.link/configs/configslog"
	"dugun.link/pkg/ratelimit"
)

var (
	limiterOnce    sync.Once
	defaultLimiter *ratelimit.Limiter
)

// getLimiter paylaşılan limiter'ı tembel kurar. REDIS_ADDR tanımlıysa
// sayaçlar Redis'te, değilse süreç içi map'te tutulur.
func getLimiter() *ratelimit.Limiter {
	limiterOnce.Do(func() {
		if addr := configs.RedisAddr(); addr != "" {
			client := redis.NewClient(&redis.Options{Addr: addr})
			defaultLimiter = ratelimit.New(ratelimit.NewRedisStore(client))
			configslog.SLog.Infof("Rate limit sayaçları Redis üzerinde: %s", addr)
			return
		}
		defaultLimiter = ratelimit.New(ratelimit.NewMemoryStore())
	})
	return defaultLimiter
}

// RateLimit verilen bucket için paylaşılan limiter'la sınırlama uygular.
func RateLimit(bucket ratelimit.Bucket) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return applyRateLimit(c, getLimiter(), bucket)
	}
}

// RateLimitWith testlerin kendi limiter'ını takabilmesi içindir.
func RateLimitWith(limiter *ratelimit.Limiter, bucket ratelimit.Bucket) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return applyRateLimit(c, limiter, bucket)
	}
}

func applyRateLimit(c *fiber.Ctx, limiter *ratelimit.Limiter, bucket ratelimit.Bucket) error {
	decision, err := limiter.Allow(c.UserContext(), bucket, c.IP())
	if err != nil {
		// Sayaç deposu düştüğünde istekler reddedilmez; sınırlama geçici
		// olarak devre dışı kalır.
		configslog.Log.Warn("Rate limit deposu hatası, istek sınırsız geçirildi",
			zap.String("bucket", string(bucket)), zap.Error(err))
		return c.Next()
	}

	if decision.Unlimited {
		return c.Next()
	}

	c.Set("RateLimit-Limit", strconv.Itoa(decision.Limit))
	c.Set("RateLimit-Remaining", strconv.Itoa(decision.Remaining))
	c.Set("RateLimit-Reset", strconv.FormatInt(decision.ResetAt.Unix(), 10))

	if !decision.Allowed {
		return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
			"success": false,
			"error":   "çok fazla istek gönderildi, lütfen daha sonra tekrar deneyin",
		})
	}
	return c.Next()
}
