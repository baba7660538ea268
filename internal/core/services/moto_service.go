package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/elysia-api/parking-service/internal/core/domain"
	"github.com/elysia-api/parking-service/internal/core/ports"

	"github.com/go-playground/validator/v10"
)

const cacheTTL = 5 * time.Minute

type MotoService struct {
	motoRepo ports.MotoRepository
	logger   ports.LoggerPort
	validate *validator.Validate
	cache    ports.CachePort
}

func NewMotoService(
	motoRepo ports.MotoRepository,
	logger ports.LoggerPort,
	validate *validator.Validate,
	cache ports.CachePort,
) *MotoService {
	return &MotoService{
		motoRepo: motoRepo,
		logger:   logger,
		validate: validate,
		cache:    cache,
	}
}

func (s *MotoService) Create(ctx context.Context, placa, marca, modelo string, ano int) (*domain.Moto, error) {
	placaVO, err := domain.NewPlaca(placa)
	if err != nil {
		s.logger.Warn("Invalid placa on create", map[string]interface{}{
			"placa": placa,
			"error": err.Error(),
		})
		return nil, err
	}

	moto, err := domain.NewMoto(placaVO, marca, modelo, ano)
	if err != nil {
		return nil, err
	}

	if err := s.validate.Struct(moto); err != nil {
		s.logger.Error("Moto validation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, domain.NewValidationError(err.Error())
	}

	created, err := s.motoRepo.Create(ctx, moto)
	if err != nil {
		s.logger.Error("Failed to create moto", map[string]interface{}{
			"error": err.Error(),
			"placa": placaVO.String(),
		})
		return nil, err
	}

	s.logger.Info("Moto created successfully", map[string]interface{}{
		"moto_id": created.ID,
		"placa":   created.Placa.String(),
	})

	return created, nil
}

func (s *MotoService) GetByID(ctx context.Context, id int64) (*domain.Moto, error) {
	cacheKey := fmt.Sprintf("moto:%d", id)
	if cached, err := s.cache.Get(ctx, cacheKey); err == nil {
		moto := &domain.Moto{}
		if err := json.Unmarshal([]byte(cached), moto); err == nil {
			return moto, nil
		}
	}

	moto, err := s.motoRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(moto); err == nil {
		if err := s.cache.Set(ctx, cacheKey, string(data), cacheTTL); err != nil {
			s.logger.Warn("Failed to cache moto", map[string]interface{}{
				"error":   err.Error(),
				"moto_id": id,
			})
		}
	}

	return moto, nil
}

func (s *MotoService) List(ctx context.Context, page, pageSize int) ([]*domain.Moto, int, error) {
	offset := (page - 1) * pageSize

	motos, err := s.motoRepo.List(ctx, pageSize, offset)
	if err != nil {
		s.logger.Error("Failed to list motos", map[string]interface{}{
			"error": err.Error(),
			"page":  page,
		})
		return nil, 0, err
	}

	total, err := s.motoRepo.Count(ctx)
	if err != nil {
		return nil, 0, err
	}

	return motos, total, nil
}

func (s *MotoService) SearchByPlaca(ctx context.Context, placa string) ([]*domain.Moto, error) {
	// Stored plates are normalized upper-case, so the fragment is normalized
	// the same way before matching.
	fragment := strings.ToUpper(strings.TrimSpace(placa))

	motos, err := s.motoRepo.SearchByPlaca(ctx, fragment)
	if err != nil {
		s.logger.Error("Failed to search motos", map[string]interface{}{
			"error": err.Error(),
			"placa": fragment,
		})
		return nil, err
	}

	return motos, nil
}

func (s *MotoService) Update(ctx context.Context, id int64, placa, marca, modelo string, ano int) error {
	moto, err := s.motoRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	placaVO, err := domain.NewPlaca(placa)
	if err != nil {
		return err
	}

	moto.SetPlaca(placaVO)
	if err := moto.AtualizarDadosBasicos(marca, modelo, ano); err != nil {
		return err
	}

	if err := s.validate.Struct(moto); err != nil {
		return domain.NewValidationError(err.Error())
	}

	if err := s.motoRepo.Update(ctx, moto); err != nil {
		s.logger.Error("Failed to update moto", map[string]interface{}{
			"error":   err.Error(),
			"moto_id": id,
		})
		return err
	}

	s.invalidate(ctx, id)

	s.logger.Info("Moto updated successfully", map[string]interface{}{
		"moto_id": id,
	})

	return nil
}

func (s *MotoService) Delete(ctx context.Context, id int64) error {
	if err := s.motoRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidate(ctx, id)

	s.logger.Info("Moto deleted successfully", map[string]interface{}{
		"moto_id": id,
	})

	return nil
}

func (s *MotoService) invalidate(ctx context.Context, id int64) {
	cacheKey := fmt.Sprintf("moto:%d", id)
	if err := s.cache.Delete(ctx, cacheKey); err != nil {
		s.logger.Warn("Failed to invalidate moto cache", map[string]interface{}{
			"error":   err.Error(),
			"moto_id": id,
		})
	}
}
