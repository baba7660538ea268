package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/elysia-api/parking-service/internal/core/domain"
	"github.com/elysia-api/parking-service/internal/core/ports"

	"github.com/go-playground/validator/v10"
)

type UsuarioService struct {
	usuarioRepo ports.UsuarioRepository
	logger      ports.LoggerPort
	validate    *validator.Validate
	cache       ports.CachePort
	hasher      ports.PasswordHasher
}

func NewUsuarioService(
	usuarioRepo ports.UsuarioRepository,
	logger ports.LoggerPort,
	validate *validator.Validate,
	cache ports.CachePort,
	hasher ports.PasswordHasher,
) *UsuarioService {
	return &UsuarioService{
		usuarioRepo: usuarioRepo,
		logger:      logger,
		validate:    validate,
		cache:       cache,
		hasher:      hasher,
	}
}

func (s *UsuarioService) Create(ctx context.Context, nome, email, senha, cpf string) (*domain.Usuario, error) {
	usuario, err := domain.NewUsuario(nome, email, senha, cpf)
	if err != nil {
		return nil, err
	}

	if err := s.validate.Struct(usuario); err != nil {
		s.logger.Error("Usuario validation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, domain.NewValidationError(err.Error())
	}

	hash, err := s.hasher.Hash(usuario.Senha)
	if err != nil {
		s.logger.Error("Failed to hash password", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}
	usuario.Senha = hash

	created, err := s.usuarioRepo.Create(ctx, usuario)
	if err != nil {
		s.logger.Error("Failed to create usuario", map[string]interface{}{
			"error": err.Error(),
			"email": usuario.Email,
		})
		return nil, err
	}

	s.logger.Info("Usuario created successfully", map[string]interface{}{
		"usuario_id": created.ID,
		"email":      created.Email,
	})

	return created, nil
}

func (s *UsuarioService) GetByID(ctx context.Context, id int64) (*domain.Usuario, error) {
	cacheKey := fmt.Sprintf("usuario:%d", id)
	if cached, err := s.cache.Get(ctx, cacheKey); err == nil {
		usuario := &domain.Usuario{}
		if err := json.Unmarshal([]byte(cached), usuario); err == nil {
			return usuario, nil
		}
	}

	usuario, err := s.usuarioRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(usuario); err == nil {
		if err := s.cache.Set(ctx, cacheKey, string(data), cacheTTL); err != nil {
			s.logger.Warn("Failed to cache usuario", map[string]interface{}{
				"error":      err.Error(),
				"usuario_id": id,
			})
		}
	}

	return usuario, nil
}

func (s *UsuarioService) List(ctx context.Context, page, pageSize int) ([]*domain.Usuario, int, error) {
	offset := (page - 1) * pageSize

	usuarios, err := s.usuarioRepo.List(ctx, pageSize, offset)
	if err != nil {
		s.logger.Error("Failed to list usuarios", map[string]interface{}{
			"error": err.Error(),
			"page":  page,
		})
		return nil, 0, err
	}

	total, err := s.usuarioRepo.Count(ctx)
	if err != nil {
		return nil, 0, err
	}

	return usuarios, total, nil
}

func (s *UsuarioService) Update(ctx context.Context, id int64, nome, email, senha, cpf string) error {
	usuario, err := s.usuarioRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := usuario.AtualizarDadosBasicos(nome, email, cpf); err != nil {
		return err
	}
	if err := usuario.DefinirSenha(senha); err != nil {
		return err
	}

	if err := s.validate.Struct(usuario); err != nil {
		return domain.NewValidationError(err.Error())
	}

	hash, err := s.hasher.Hash(usuario.Senha)
	if err != nil {
		return err
	}
	usuario.Senha = hash

	if err := s.usuarioRepo.Update(ctx, usuario); err != nil {
		s.logger.Error("Failed to update usuario", map[string]interface{}{
			"error":      err.Error(),
			"usuario_id": id,
		})
		return err
	}

	s.invalidate(ctx, id)

	s.logger.Info("Usuario updated successfully", map[string]interface{}{
		"usuario_id": id,
	})

	return nil
}

func (s *UsuarioService) Delete(ctx context.Context, id int64) error {
	if err := s.usuarioRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidate(ctx, id)

	s.logger.Info("Usuario deleted successfully", map[string]interface{}{
		"usuario_id": id,
	})

	return nil
}

func (s *UsuarioService) Login(ctx context.Context, email, senha string) (*domain.Usuario, error) {
	usuario, err := s.usuarioRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := s.hasher.Compare(usuario.Senha, senha); err != nil {
		s.logger.Warn("Login failed", map[string]interface{}{
			"email": usuario.Email,
		})
		return nil, domain.ErrInvalidCredentials
	}

	return usuario, nil
}

func (s *UsuarioService) invalidate(ctx context.Context, id int64) {
	cacheKey := fmt.Sprintf("usuario:%d", id)
	if err := s.cache.Delete(ctx, cacheKey); err != nil {
		s.logger.Warn("Failed to invalidate usuario cache", map[string]interface{}{
			"error":      err.Error(),
			"usuario_id": id,
		})
	}
}
