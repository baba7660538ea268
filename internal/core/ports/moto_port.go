package ports

import (
	"context"

	"github.com/elysia-api/parking-service/internal/core/domain"
)

type MotoRepository interface {
	Create(ctx context.Context, moto *domain.Moto) (*domain.Moto, error)
	GetByID(ctx context.Context, id int64) (*domain.Moto, error)
	List(ctx context.Context, limit, offset int) ([]*domain.Moto, error)
	Count(ctx context.Context) (int, error)
	SearchByPlaca(ctx context.Context, placa string) ([]*domain.Moto, error)
	Update(ctx context.Context, moto *domain.Moto) error
	Delete(ctx context.Context, id int64) error
}

type MotoService interface {
	Create(ctx context.Context, placa, marca, modelo string, ano int) (*domain.Moto, error)
	GetByID(ctx context.Context, id int64) (*domain.Moto, error)
	List(ctx context.Context, page, pageSize int) ([]*domain.Moto, int, error)
	SearchByPlaca(ctx context.Context, placa string) ([]*domain.Moto, error)
	Update(ctx context.Context, id int64, placa, marca, modelo string, ano int) error
	Delete(ctx context.Context, id int64) error
}
