package middleware

import (
	"net"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/alphabatem/common/context"
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"

	"github.com/ascend-app/ascend_api/dto"
	"github.com/ascend-app/ascend_api/model"
	"github.com/ascend-app/ascend_api/services"
)

type rateLimitConfig struct {
	EndpointType string
	MaxRequests  int
	WindowSize   time.Duration
	BlockTime    time.Duration
	Description  string
}

type RateLimitMiddleware struct {
	context.DefaultService

	configs map[string]*rateLimitConfig
	mutex   sync.RWMutex
	sqlSvc  *services.SqlService
}

const RATE_LIMIT_MIDDLEWARE_SVC = "rate_limit"

func (svc *RateLimitMiddleware) Id() string {
	return RATE_LIMIT_MIDDLEWARE_SVC
}

func (svc *RateLimitMiddleware) Configure(ctx *context.Context) error {
	svc.configs = make(map[string]*rateLimitConfig)
	return svc.DefaultService.Configure(ctx)
}

func (svc *RateLimitMiddleware) Start() error {
	svc.sqlSvc = svc.Service(services.SQL_SVC).(*services.SqlService)
	svc.initDefaultConfigs()
	svc.startCleanupJob()
	return nil
}

func (svc *RateLimitMiddleware) initDefaultConfigs() {
	svc.configs = map[string]*rateLimitConfig{
		// General API calls per IP
		"api_general": {
			EndpointType: "api_general",
			MaxRequests:  1000,
			WindowSize:   time.Hour,
			BlockTime:    time.Hour,
			Description:  "General API rate limit per IP",
		},

		// Mission completion toggles, prevents XP farming scripts
		"mission_toggle": {
			EndpointType: "mission_toggle",
			MaxRequests:  60,
			WindowSize:   time.Minute * 10,
			BlockTime:    time.Minute * 30,
			Description:  "Mission toggle rate limit",
		},

		// Write endpoints
		"api_write": {
			EndpointType: "api_write",
			MaxRequests:  300,
			WindowSize:   time.Minute * 10,
			BlockTime:    time.Minute * 30,
			Description:  "Write endpoint rate limit",
		},
	}
}

func (svc *RateLimitMiddleware) IsAllowed(identifier, endpointType string) (bool, *dto.RateLimitInfo, error) {
	svc.mutex.RLock()
	config, exists := svc.configs[endpointType]
	svc.mutex.RUnlock()

	if !exists {
		// No config means no limit
		return true, &dto.RateLimitInfo{
			Allowed:   true,
			Remaining: -1,
		}, nil
	}

	now := time.Now()
	windowStart := now.Add(-config.WindowSize)

	rateLimit, err := svc.sqlSvc.RateLimits().GetRateLimit(identifier, endpointType)
	if err != nil {
		return false, nil, err
	}

	// Currently blocked
	if rateLimit != nil && rateLimit.BlockedUntil != nil && now.Before(*rateLimit.BlockedUntil) {
		return false, &dto.RateLimitInfo{
			Allowed:      false,
			Remaining:    0,
			ResetTime:    rateLimit.BlockedUntil,
			BlockedUntil: rateLimit.BlockedUntil,
		}, nil
	}

	// No record yet or the window rolled over
	if rateLimit == nil || rateLimit.WindowStart.Before(windowStart) {
		rateLimit = &model.RateLimit{
			Identifier:   identifier,
			EndpointType: endpointType,
			RequestCount: 1,
			WindowStart:  now,
		}

		if err := svc.sqlSvc.RateLimits().SaveRateLimit(rateLimit); err != nil {
			return false, nil, err
		}

		resetTime := now.Add(config.WindowSize)
		return true, &dto.RateLimitInfo{
			Allowed:   true,
			Remaining: config.MaxRequests - 1,
			ResetTime: &resetTime,
		}, nil
	}

	// Limit exceeded, block the identifier
	if rateLimit.RequestCount >= config.MaxRequests {
		blockedUntil := now.Add(config.BlockTime)
		rateLimit.BlockedUntil = &blockedUntil

		if err := svc.sqlSvc.RateLimits().SaveRateLimit(rateLimit); err != nil {
			return false, nil, err
		}

		return false, &dto.RateLimitInfo{
			Allowed:      false,
			Remaining:    0,
			ResetTime:    &blockedUntil,
			BlockedUntil: &blockedUntil,
		}, nil
	}

	rateLimit.RequestCount++
	if err := svc.sqlSvc.RateLimits().SaveRateLimit(rateLimit); err != nil {
		return false, nil, err
	}

	resetTime := rateLimit.WindowStart.Add(config.WindowSize)
	return true, &dto.RateLimitInfo{
		Allowed:   true,
		Remaining: config.MaxRequests - rateLimit.RequestCount,
		ResetTime: &resetTime,
	}, nil
}

// IPRateLimit applies the general per-IP limit.
func (svc *RateLimitMiddleware) IPRateLimit() fiber.Handler {
	return svc.limitBy("api_general", false)
}

// WriteRateLimit applies the tighter limit for mutating endpoints.
func (svc *RateLimitMiddleware) WriteRateLimit() fiber.Handler {
	return svc.limitBy("api_write", false)
}

// MissionToggleRateLimit guards the XP-granting toggle endpoint. Errors from
// the limiter itself reject the request here rather than letting it through.
func (svc *RateLimitMiddleware) MissionToggleRateLimit() fiber.Handler {
	return svc.limitBy("mission_toggle", true)
}

func (svc *RateLimitMiddleware) limitBy(endpointType string, strict bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ip := clientIP(c)

		allowed, info, err := svc.IsAllowed(ip, endpointType)
		if err != nil {
			log.WithError(err).WithField("ip", ip).Warn("Rate limit check error")
			if strict {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"error":   "Rate limit service unavailable",
					"message": "Please try again later",
				})
			}
			return c.Next()
		}

		if info.ResetTime != nil {
			c.Set("X-RateLimit-Reset", strconv.FormatInt(info.ResetTime.Unix(), 10))
		}
		c.Set("X-RateLimit-Remaining", strconv.Itoa(info.Remaining))

		if !allowed {
			retryAfter := ""
			if info.BlockedUntil != nil {
				retryAfter = strconv.FormatInt(info.BlockedUntil.Unix(), 10)
				c.Set("Retry-After", retryAfter)
			}

			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error":       "Rate limit exceeded",
				"message":     "Too many requests from this IP address",
				"retry_after": retryAfter,
			})
		}

		return c.Next()
	}
}

func (svc *RateLimitMiddleware) startCleanupJob() {
	ticker := time.NewTicker(1 * time.Hour)
	go func() {
		for range ticker.C {
			if err := svc.sqlSvc.RateLimits().CleanupOldRecords(24 * time.Hour); err != nil {
				log.WithError(err).Warn("Rate limit cleanup error")
			}
		}
	}()
}

func clientIP(c *fiber.Ctx) string {
	forwarded := c.Get("X-Forwarded-For")
	if forwarded != "" {
		ips := strings.Split(forwarded, ",")
		if len(ips) > 0 {
			return strings.TrimSpace(ips[0])
		}
	}

	realIP := c.Get("X-Real-IP")
	if realIP != "" {
		return realIP
	}

	ip, _, err := net.SplitHostPort(c.Context().RemoteAddr().String())
	if err != nil {
		return c.IP()
	}

	return ip
}
