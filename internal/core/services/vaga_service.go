package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/elysia-api/parking-service/internal/core/domain"
	"github.com/elysia-api/parking-service/internal/core/ports"

	"github.com/go-playground/validator/v10"
)

type VagaService struct {
	vagaRepo ports.VagaRepository
	logger   ports.LoggerPort
	validate *validator.Validate
	cache    ports.CachePort
}

func NewVagaService(
	vagaRepo ports.VagaRepository,
	logger ports.LoggerPort,
	validate *validator.Validate,
	cache ports.CachePort,
) *VagaService {
	return &VagaService{
		vagaRepo: vagaRepo,
		logger:   logger,
		validate: validate,
		cache:    cache,
	}
}

func (s *VagaService) Create(ctx context.Context, numero int, patio, status string) (*domain.Vaga, error) {
	vaga, err := domain.NewVaga(numero, patio)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(status) != "" {
		vaga.Status = strings.TrimSpace(status)
	}

	if err := s.validate.Struct(vaga); err != nil {
		s.logger.Error("Vaga validation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, domain.NewValidationError(err.Error())
	}

	created, err := s.vagaRepo.Create(ctx, vaga)
	if err != nil {
		s.logger.Error("Failed to create vaga", map[string]interface{}{
			"error":  err.Error(),
			"numero": numero,
			"patio":  vaga.Patio,
		})
		return nil, err
	}

	s.logger.Info("Vaga created successfully", map[string]interface{}{
		"vaga_id": created.ID,
		"numero":  created.Numero,
		"patio":   created.Patio,
	})

	return created, nil
}

func (s *VagaService) GetByID(ctx context.Context, id int64) (*domain.Vaga, error) {
	cacheKey := fmt.Sprintf("vaga:%d", id)
	if cached, err := s.cache.Get(ctx, cacheKey); err == nil {
		vaga := &domain.Vaga{}
		if err := json.Unmarshal([]byte(cached), vaga); err == nil {
			return vaga, nil
		}
	}

	vaga, err := s.vagaRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(vaga); err == nil {
		if err := s.cache.Set(ctx, cacheKey, string(data), cacheTTL); err != nil {
			s.logger.Warn("Failed to cache vaga", map[string]interface{}{
				"error":   err.Error(),
				"vaga_id": id,
			})
		}
	}

	return vaga, nil
}

func (s *VagaService) List(ctx context.Context, page, pageSize int) ([]*domain.Vaga, int, error) {
	offset := (page - 1) * pageSize

	vagas, err := s.vagaRepo.List(ctx, pageSize, offset)
	if err != nil {
		s.logger.Error("Failed to list vagas", map[string]interface{}{
			"error": err.Error(),
			"page":  page,
		})
		return nil, 0, err
	}

	total, err := s.vagaRepo.Count(ctx)
	if err != nil {
		return nil, 0, err
	}

	return vagas, total, nil
}

func (s *VagaService) ListByPatio(ctx context.Context, patio string, page, pageSize int) ([]*domain.Vaga, int, error) {
	p := strings.TrimSpace(patio)
	offset := (page - 1) * pageSize

	vagas, err := s.vagaRepo.ListByPatio(ctx, p, pageSize, offset)
	if err != nil {
		s.logger.Error("Failed to list vagas by patio", map[string]interface{}{
			"error": err.Error(),
			"patio": p,
		})
		return nil, 0, err
	}

	total, err := s.vagaRepo.CountByPatio(ctx, p)
	if err != nil {
		return nil, 0, err
	}

	return vagas, total, nil
}

func (s *VagaService) Update(ctx context.Context, id int64, numero int, patio, status string) error {
	vaga, err := s.vagaRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := vaga.AtualizarLocalizacao(numero, patio); err != nil {
		return err
	}
	// Status is a free string and is reassigned verbatim.
	vaga.Status = status

	if err := s.validate.Struct(vaga); err != nil {
		return domain.NewValidationError(err.Error())
	}

	if err := s.vagaRepo.Update(ctx, vaga); err != nil {
		s.logger.Error("Failed to update vaga", map[string]interface{}{
			"error":   err.Error(),
			"vaga_id": id,
		})
		return err
	}

	s.invalidate(ctx, id)

	s.logger.Info("Vaga updated successfully", map[string]interface{}{
		"vaga_id": id,
	})

	return nil
}

func (s *VagaService) Delete(ctx context.Context, id int64) error {
	if err := s.vagaRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidate(ctx, id)

	s.logger.Info("Vaga deleted successfully", map[string]interface{}{
		"vaga_id": id,
	})

	return nil
}

func (s *VagaService) invalidate(ctx context.Context, id int64) {
	cacheKey := fmt.Sprintf("vaga:%d", id)
	if err := s.cache.Delete(ctx, cacheKey); err != nil {
		s.logger.Warn("Failed to invalidate vaga cache", map[string]interface{}{
			"error":   err.Error(),
			"vaga_id": id,
		})
	}
}
