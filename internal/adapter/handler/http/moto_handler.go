package http

import (
	"net/http"
	"time"

	"github.com/elysia-api/parking-service/internal/core/domain"
	"github.com/elysia-api/parking-service/internal/core/ports"

	"github.com/gin-gonic/gin"
)

const motoBasePath = "/moto"

type MotoHandler struct {
	motoService ports.MotoService
	logger      ports.LoggerPort
	metrics     ports.MetricsPort
}

type MotoRequest struct {
	Placa  string `json:"placa" binding:"required" example:"KAC7516"`
	Marca  string `json:"marca" binding:"required,max=50" example:"Honda"`
	Modelo string `json:"modelo" binding:"required,max=50" example:"CG 160"`
	Ano    int    `json:"ano" binding:"required" example:"2021"`
}

type MotoResponse struct {
	ID     int64  `json:"id"`
	Placa  string `json:"placa"`
	Marca  string `json:"marca"`
	Modelo string `json:"modelo"`
	Ano    int    `json:"ano"`
	Links  []Link `json:"links"`
}

func NewMotoHandler(
	motoService ports.MotoService,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *MotoHandler {
	return &MotoHandler{
		motoService: motoService,
		logger:      logger,
		metrics:     metrics,
	}
}

func (h *MotoHandler) toResponse(c *gin.Context, moto *domain.Moto) MotoResponse {
	links := resourceLinks(c, motoBasePath, moto.ID)
	links = append(links, newLink("list", pageHref(c, motoBasePath, 1, defaultPageSize, nil)))

	return MotoResponse{
		ID:     moto.ID,
		Placa:  moto.Placa.String(),
		Marca:  moto.Marca,
		Modelo: moto.Modelo,
		Ano:    moto.Ano,
		Links:  links,
	}
}

// @Summary Listar motos
// @Description Lista paginada de motos com links HATEOAS
// @Tags motos
// @Produce json
// @Param page query int false "Página" default(1)
// @Param pageSize query int false "Itens por página (1..100)" default(10)
// @Success 200 {object} pagedResponse "Motos paginadas"
// @Router /moto [get]
func (h *MotoHandler) ListMotos(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	page, pageSize := parsePageParams(c)

	motos, total, err := h.motoService.List(c.Request.Context(), page, pageSize)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	items := make([]MotoResponse, 0, len(motos))
	for _, moto := range motos {
		items = append(items, h.toResponse(c, moto))
	}

	c.JSON(http.StatusOK, newPagedResponse(c, motoBasePath, page, pageSize, total, items, nil))
}

// @Summary Obter moto
// @Description Busca uma moto por ID
// @Tags motos
// @Produce json
// @Param id path int true "ID da moto"
// @Success 200 {object} MotoResponse "Moto encontrada"
// @Failure 404 {object} errorResponse "Moto não encontrada"
// @Router /moto/{id} [get]
func (h *MotoHandler) GetMoto(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	id, ok := parseID(c)
	if !ok {
		return
	}

	moto, err := h.motoService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.toResponse(c, moto))
}

// @Summary Buscar motos por placa
// @Description Busca motos cuja placa contém o fragmento informado
// @Tags motos
// @Produce json
// @Param placa query string false "Fragmento da placa"
// @Success 200 {array} MotoResponse "Motos encontradas"
// @Router /moto/search [get]
func (h *MotoHandler) SearchMotos(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	motos, err := h.motoService.SearchByPlaca(c.Request.Context(), c.Query("placa"))
	if err != nil {
		respondDomainError(c, err)
		return
	}

	items := make([]MotoResponse, 0, len(motos))
	for _, moto := range motos {
		items = append(items, h.toResponse(c, moto))
	}

	c.JSON(http.StatusOK, items)
}

// @Summary Criar moto
// @Description Cadastra uma nova moto
// @Tags motos
// @Accept json
// @Produce json
// @Param request body MotoRequest true "Dados da moto"
// @Success 201 {object} MotoResponse "Moto criada"
// @Failure 400 {object} errorResponse "Dados inválidos"
// @Router /moto [post]
func (h *MotoHandler) CreateMoto(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	var req MotoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in create moto", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, "JSON inválido.")
		return
	}

	moto, err := h.motoService.Create(c.Request.Context(), req.Placa, req.Marca, req.Modelo, req.Ano)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.Header("Location", resourceHref(c, motoBasePath, moto.ID))
	c.JSON(http.StatusCreated, h.toResponse(c, moto))
}

// @Summary Atualizar moto
// @Description Atualiza placa e dados básicos de uma moto
// @Tags motos
// @Accept json
// @Param id path int true "ID da moto"
// @Param request body MotoRequest true "Dados da moto"
// @Success 204 "Moto atualizada"
// @Failure 400 {object} errorResponse "Dados inválidos"
// @Failure 404 {object} errorResponse "Moto não encontrada"
// @Router /moto/{id} [put]
func (h *MotoHandler) UpdateMoto(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	id, ok := parseID(c)
	if !ok {
		return
	}

	var req MotoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "JSON inválido.")
		return
	}

	if err := h.motoService.Update(c.Request.Context(), id, req.Placa, req.Marca, req.Modelo, req.Ano); err != nil {
		respondDomainError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Remover moto
// @Description Remove uma moto por ID
// @Tags motos
// @Param id path int true "ID da moto"
// @Success 204 "Moto removida"
// @Failure 404 {object} errorResponse "Moto não encontrada"
// @Router /moto/{id} [delete]
func (h *MotoHandler) DeleteMoto(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.motoService.Delete(c.Request.Context(), id); err != nil {
		respondDomainError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
