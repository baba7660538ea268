package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/elysia-api/parking-service/internal/core/domain"
)

type MotoRepository struct {
	db *sql.DB
}

func NewMotoRepository(db *sql.DB) *MotoRepository {
	return &MotoRepository{db}
}

func (r *MotoRepository) Create(ctx context.Context, moto *domain.Moto) (*domain.Moto, error) {
	query := `INSERT INTO moto (placa, marca, modelo, ano)
	VALUES ($1, $2, $3, $4)
	RETURNING id`

	err := r.db.QueryRowContext(ctx, query,
		moto.Placa.String(), moto.Marca, moto.Modelo, moto.Ano,
	).Scan(&moto.ID)
	if err != nil {
		return nil, err
	}
	return moto, nil
}

func (r *MotoRepository) GetByID(ctx context.Context, id int64) (*domain.Moto, error) {
	query := `SELECT id, placa, marca, modelo, ano FROM moto WHERE id = $1`

	return scanMoto(r.db.QueryRowContext(ctx, query, id))
}

func (r *MotoRepository) List(ctx context.Context, limit, offset int) ([]*domain.Moto, error) {
	query := `SELECT id, placa, marca, modelo, ano FROM moto
	ORDER BY id ASC LIMIT $1 OFFSET $2`

	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectMotos(rows)
}

func (r *MotoRepository) Count(ctx context.Context) (int, error) {
	var total int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM moto`).Scan(&total)
	return total, err
}

func (r *MotoRepository) SearchByPlaca(ctx context.Context, placa string) ([]*domain.Moto, error) {
	query := `SELECT id, placa, marca, modelo, ano FROM moto
	WHERE placa LIKE '%' || $1 || '%'
	ORDER BY id ASC`

	rows, err := r.db.QueryContext(ctx, query, placa)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectMotos(rows)
}

func (r *MotoRepository) Update(ctx context.Context, moto *domain.Moto) error {
	query := `UPDATE moto SET placa = $1, marca = $2, modelo = $3, ano = $4
	WHERE id = $5`

	result, err := r.db.ExecContext(ctx, query,
		moto.Placa.String(), moto.Marca, moto.Modelo, moto.Ano, moto.ID)
	if err != nil {
		return err
	}

	return checkAffected(result)
}

func (r *MotoRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM moto WHERE id = $1`, id)
	if err != nil {
		return err
	}

	return checkAffected(result)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMoto(row rowScanner) (*domain.Moto, error) {
	moto := &domain.Moto{}
	var placa string

	err := row.Scan(&moto.ID, &placa, &moto.Marca, &moto.Modelo, &moto.Ano)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	placaVO, err := domain.NewPlaca(placa)
	if err != nil {
		return nil, err
	}
	moto.SetPlaca(placaVO)

	return moto, nil
}

func collectMotos(rows *sql.Rows) ([]*domain.Moto, error) {
	var motos []*domain.Moto
	for rows.Next() {
		moto, err := scanMoto(rows)
		if err != nil {
			return nil, err
		}
		motos = append(motos, moto)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return motos, nil
}

func checkAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
