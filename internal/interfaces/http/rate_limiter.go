package http

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/grocerflow/grocerflow-api/internal/application/dto"
	"golang.org/x/time/rate"
)

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// LoginRateLimiter limita los intentos de login por IP.
type LoginRateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*clientLimiter
}

// NewLoginRateLimiter construye el limitador y arranca la limpieza de IPs inactivas.
func NewLoginRateLimiter() *LoginRateLimiter {
	l := &LoginRateLimiter{visitors: make(map[string]*clientLimiter)}
	go l.cleanup()
	return l
}

func (l *LoginRateLimiter) getVisitor(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	v, exists := l.visitors[ip]
	if !exists {
		limiter := rate.NewLimiter(1, 5) // 1 intento/seg, ráfaga de 5
		l.visitors[ip] = &clientLimiter{limiter, time.Now()}
		return limiter
	}
	v.lastSeen = time.Now()
	return v.limiter
}

// cleanup elimina IPs sin actividad en los últimos 10 minutos.
func (l *LoginRateLimiter) cleanup() {
	for {
		time.Sleep(time.Minute)
		l.mu.Lock()
		for ip, v := range l.visitors {
			if time.Since(v.lastSeen) > 10*time.Minute {
				delete(l.visitors, ip)
			}
		}
		l.mu.Unlock()
	}
}

// Middleware responde 429 cuando la IP agota su cuota de intentos.
func (l *LoginRateLimiter) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !l.getVisitor(c.IP()).Allow() {
			return c.Status(fiber.StatusTooManyRequests).JSON(dto.ErrorResponse{
				Code: "RATE_LIMITED", Message: "demasiados intentos, espere un momento",
			})
		}
		return c.Next()
	}
}
