package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/elysia-api/parking-service/internal/core/domain"
)

const conflictEmailCpf = "Email ou CPF já cadastrado."

type UsuarioRepository struct {
	db *sql.DB
}

func NewUsuarioRepository(db *sql.DB) *UsuarioRepository {
	return &UsuarioRepository{db}
}

func (r *UsuarioRepository) Create(ctx context.Context, usuario *domain.Usuario) (*domain.Usuario, error) {
	query := `INSERT INTO usuario (nome, email, senha, cpf)
	VALUES ($1, $2, $3, $4)
	RETURNING id`

	err := r.db.QueryRowContext(ctx, query,
		usuario.Nome, usuario.Email, usuario.Senha, usuario.Cpf,
	).Scan(&usuario.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, &domain.ConflictError{Message: conflictEmailCpf}
		}
		return nil, err
	}
	return usuario, nil
}

func (r *UsuarioRepository) GetByID(ctx context.Context, id int64) (*domain.Usuario, error) {
	query := `SELECT id, nome, email, senha, cpf FROM usuario WHERE id = $1`

	return scanUsuario(r.db.QueryRowContext(ctx, query, id))
}

func (r *UsuarioRepository) GetByEmail(ctx context.Context, email string) (*domain.Usuario, error) {
	query := `SELECT id, nome, email, senha, cpf FROM usuario WHERE email = $1`

	return scanUsuario(r.db.QueryRowContext(ctx, query, email))
}

func (r *UsuarioRepository) List(ctx context.Context, limit, offset int) ([]*domain.Usuario, error) {
	query := `SELECT id, nome, email, senha, cpf FROM usuario
	ORDER BY id ASC LIMIT $1 OFFSET $2`

	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var usuarios []*domain.Usuario
	for rows.Next() {
		usuario := &domain.Usuario{}
		err := rows.Scan(&usuario.ID, &usuario.Nome, &usuario.Email, &usuario.Senha, &usuario.Cpf)
		if err != nil {
			return nil, err
		}
		usuarios = append(usuarios, usuario)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return usuarios, nil
}

func (r *UsuarioRepository) Count(ctx context.Context) (int, error) {
	var total int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM usuario`).Scan(&total)
	return total, err
}

func (r *UsuarioRepository) Update(ctx context.Context, usuario *domain.Usuario) error {
	query := `UPDATE usuario SET nome = $1, email = $2, senha = $3, cpf = $4
	WHERE id = $5`

	result, err := r.db.ExecContext(ctx, query,
		usuario.Nome, usuario.Email, usuario.Senha, usuario.Cpf, usuario.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return &domain.ConflictError{Message: conflictEmailCpf}
		}
		return err
	}

	return checkAffected(result)
}

func (r *UsuarioRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM usuario WHERE id = $1`, id)
	if err != nil {
		return err
	}

	return checkAffected(result)
}

func scanUsuario(row *sql.Row) (*domain.Usuario, error) {
	usuario := &domain.Usuario{}
	err := row.Scan(&usuario.ID, &usuario.Nome, &usuario.Email, &usuario.Senha, &usuario.Cpf)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return usuario, nil
}
