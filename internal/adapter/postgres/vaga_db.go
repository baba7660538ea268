package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/elysia-api/parking-service/internal/core/domain"
)

type VagaRepository struct {
	db *sql.DB
}

func NewVagaRepository(db *sql.DB) *VagaRepository {
	return &VagaRepository{db}
}

func (r *VagaRepository) Create(ctx context.Context, vaga *domain.Vaga) (*domain.Vaga, error) {
	query := `INSERT INTO vaga (status, numero, patio)
	VALUES ($1, $2, $3)
	RETURNING id`

	err := r.db.QueryRowContext(ctx, query, vaga.Status, vaga.Numero, vaga.Patio).Scan(&vaga.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, &domain.ConflictError{
				Message: fmt.Sprintf("Já existe a vaga nº %d no pátio '%s'.", vaga.Numero, vaga.Patio),
			}
		}
		return nil, err
	}
	return vaga, nil
}

func (r *VagaRepository) GetByID(ctx context.Context, id int64) (*domain.Vaga, error) {
	query := `SELECT id, status, numero, patio FROM vaga WHERE id = $1`

	vaga := &domain.Vaga{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&vaga.ID, &vaga.Status, &vaga.Numero, &vaga.Patio)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return vaga, nil
}

func (r *VagaRepository) List(ctx context.Context, limit, offset int) ([]*domain.Vaga, error) {
	query := `SELECT id, status, numero, patio FROM vaga
	ORDER BY id ASC LIMIT $1 OFFSET $2`

	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectVagas(rows)
}

func (r *VagaRepository) Count(ctx context.Context) (int, error) {
	var total int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM vaga`).Scan(&total)
	return total, err
}

func (r *VagaRepository) ListByPatio(ctx context.Context, patio string, limit, offset int) ([]*domain.Vaga, error) {
	query := `SELECT id, status, numero, patio FROM vaga
	WHERE patio = $1
	ORDER BY id ASC LIMIT $2 OFFSET $3`

	rows, err := r.db.QueryContext(ctx, query, patio, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectVagas(rows)
}

func (r *VagaRepository) CountByPatio(ctx context.Context, patio string) (int, error) {
	var total int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM vaga WHERE patio = $1`, patio).Scan(&total)
	return total, err
}

func (r *VagaRepository) Update(ctx context.Context, vaga *domain.Vaga) error {
	query := `UPDATE vaga SET status = $1, numero = $2, patio = $3
	WHERE id = $4`

	result, err := r.db.ExecContext(ctx, query, vaga.Status, vaga.Numero, vaga.Patio, vaga.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return &domain.ConflictError{
				Message: fmt.Sprintf("Já existe a vaga nº %d no pátio '%s'.", vaga.Numero, vaga.Patio),
			}
		}
		return err
	}

	return checkAffected(result)
}

func (r *VagaRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM vaga WHERE id = $1`, id)
	if err != nil {
		return err
	}

	return checkAffected(result)
}

func collectVagas(rows *sql.Rows) ([]*domain.Vaga, error) {
	var vagas []*domain.Vaga
	for rows.Next() {
		vaga := &domain.Vaga{}
		if err := rows.Scan(&vaga.ID, &vaga.Status, &vaga.Numero, &vaga.Patio); err != nil {
			return nil, err
		}
		vagas = append(vagas, vaga)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return vagas, nil
}
