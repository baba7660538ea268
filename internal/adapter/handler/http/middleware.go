package http

import (
	"net/http"
	"strings"
	"sync"

	"github.com/elysia-api/parking-service/internal/core/domain"
	"github.com/elysia-api/parking-service/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

const (
	authorizationPayloadKey = "authorization_payload"
	requestIDKey            = "request_id"
	requestIDHeader         = "X-Request-ID"
)

func AuthMiddleware(tokenService ports.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			newErrorResponse(c, http.StatusUnauthorized, "Não autorizado.")
			return
		}

		parts := strings.Fields(header)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			newErrorResponse(c, http.StatusUnauthorized, "Não autorizado.")
			return
		}

		payload, err := tokenService.VerifyToken(parts[1])
		if err != nil {
			newErrorResponse(c, http.StatusUnauthorized, "Não autorizado.")
			return
		}

		c.Set(authorizationPayloadKey, payload)
		c.Next()
	}
}

func getAuthPayload(c *gin.Context, key string) (*domain.TokenPayload, bool) {
	value, exists := c.Get(key)
	if !exists {
		return nil, false
	}
	payload, ok := value.(*domain.TokenPayload)
	return payload, ok
}

// RequestIDMiddleware propagates the caller's request id or assigns a fresh
// one, and echoes it back in the response header.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		c.Set(requestIDKey, id)
		c.Writer.Header().Set(requestIDHeader, id)
		c.Next()
	}
}

// RateLimitMiddleware applies a token bucket per client IP.
func RateLimitMiddleware(rps float64, burst int) gin.HandlerFunc {
	var mu sync.Mutex
	limiters := make(map[string]*rate.Limiter)

	return func(c *gin.Context) {
		ip := c.ClientIP()

		mu.Lock()
		limiter, ok := limiters[ip]
		if !ok {
			limiter = rate.NewLimiter(rate.Limit(rps), burst)
			limiters[ip] = limiter
		}
		mu.Unlock()

		if !limiter.Allow() {
			newErrorResponse(c, http.StatusTooManyRequests, "Limite de requisições excedido.")
			return
		}

		c.Next()
	}
}
