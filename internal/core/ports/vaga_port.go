package ports

import (
	"context"

	"github.com/elysia-api/parking-service/internal/core/domain"
)

type VagaRepository interface {
	Create(ctx context.Context, vaga *domain.Vaga) (*domain.Vaga, error)
	GetByID(ctx context.Context, id int64) (*domain.Vaga, error)
	List(ctx context.Context, limit, offset int) ([]*domain.Vaga, error)
	Count(ctx context.Context) (int, error)
	ListByPatio(ctx context.Context, patio string, limit, offset int) ([]*domain.Vaga, error)
	CountByPatio(ctx context.Context, patio string) (int, error)
	Update(ctx context.Context, vaga *domain.Vaga) error
	Delete(ctx context.Context, id int64) error
}

type VagaService interface {
	Create(ctx context.Context, numero int, patio, status string) (*domain.Vaga, error)
	GetByID(ctx context.Context, id int64) (*domain.Vaga, error)
	List(ctx context.Context, page, pageSize int) ([]*domain.Vaga, int, error)
	ListByPatio(ctx context.Context, patio string, page, pageSize int) ([]*domain.Vaga, int, error)
	Update(ctx context.Context, id int64, numero int, patio, status string) error
	Delete(ctx context.Context, id int64) error
}
