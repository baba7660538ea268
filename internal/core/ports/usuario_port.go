package ports

import (
	"context"

	"github.com/elysia-api/parking-service/internal/core/domain"
)

type UsuarioRepository interface {
	Create(ctx context.Context, usuario *domain.Usuario) (*domain.Usuario, error)
	GetByID(ctx context.Context, id int64) (*domain.Usuario, error)
	GetByEmail(ctx context.Context, email string) (*domain.Usuario, error)
	List(ctx context.Context, limit, offset int) ([]*domain.Usuario, error)
	Count(ctx context.Context) (int, error)
	Update(ctx context.Context, usuario *domain.Usuario) error
	Delete(ctx context.Context, id int64) error
}

type UsuarioService interface {
	Create(ctx context.Context, nome, email, senha, cpf string) (*domain.Usuario, error)
	GetByID(ctx context.Context, id int64) (*domain.Usuario, error)
	List(ctx context.Context, page, pageSize int) ([]*domain.Usuario, int, error)
	Update(ctx context.Context, id int64, nome, email, senha, cpf string) error
	Delete(ctx context.Context, id int64) error
	Login(ctx context.Context, email, senha string) (*domain.Usuario, error)
}
