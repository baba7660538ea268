package ports

import "github.com/elysia-api/parking-service/internal/core/domain"

type TokenService interface {
	CreateToken(usuario *domain.Usuario) (string, error)
	VerifyToken(token string) (*domain.TokenPayload, error)
}
