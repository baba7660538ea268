package http

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/elysia-api/parking-service/internal/core/domain"
	"github.com/elysia-api/parking-service/internal/core/ports"

	"github.com/gin-gonic/gin"
)

const vagaBasePath = "/vaga"

type VagaHandler struct {
	vagaService ports.VagaService
	logger      ports.LoggerPort
	metrics     ports.MetricsPort
}

type VagaRequest struct {
	Status string `json:"status" example:"Livre"`
	Numero int    `json:"numero" binding:"required,min=1" example:"12"`
	Patio  string `json:"patio" binding:"required,max=50" example:"A"`
}

type VagaResponse struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
	Numero int    `json:"numero"`
	Patio  string `json:"patio"`
	Links  []Link `json:"links"`
}

func NewVagaHandler(
	vagaService ports.VagaService,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *VagaHandler {
	return &VagaHandler{
		vagaService: vagaService,
		logger:      logger,
		metrics:     metrics,
	}
}

// toResponse attaches the standard triple plus the advisory ocupar/liberar
// links derived from the current status.
func (h *VagaHandler) toResponse(c *gin.Context, vaga *domain.Vaga) VagaResponse {
	href := resourceHref(c, vagaBasePath, vaga.ID)
	links := resourceLinks(c, vagaBasePath, vaga.ID)

	if vaga.Livre() {
		links = append(links, newActionLink("ocupar", href, http.MethodPut))
	}
	if vaga.Ocupada() {
		links = append(links, newActionLink("liberar", href, http.MethodPut))
	}

	return VagaResponse{
		ID:     vaga.ID,
		Status: vaga.Status,
		Numero: vaga.Numero,
		Patio:  vaga.Patio,
		Links:  links,
	}
}

// @Summary Listar vagas
// @Description Lista paginada de vagas com links HATEOAS
// @Tags vagas
// @Produce json
// @Param page query int false "Página" default(1)
// @Param pageSize query int false "Itens por página (1..100)" default(10)
// @Success 200 {object} pagedResponse "Vagas paginadas"
// @Router /vaga [get]
func (h *VagaHandler) ListVagas(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	page, pageSize := parsePageParams(c)

	vagas, total, err := h.vagaService.List(c.Request.Context(), page, pageSize)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	items := make([]VagaResponse, 0, len(vagas))
	for _, vaga := range vagas {
		items = append(items, h.toResponse(c, vaga))
	}

	c.JSON(http.StatusOK, newPagedResponse(c, vagaBasePath, page, pageSize, total, items, nil))
}

// @Summary Obter vaga
// @Description Busca uma vaga por ID
// @Tags vagas
// @Produce json
// @Param id path int true "ID da vaga"
// @Success 200 {object} VagaResponse "Vaga encontrada"
// @Failure 404 {object} errorResponse "Vaga não encontrada"
// @Router /vaga/{id} [get]
func (h *VagaHandler) GetVaga(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	id, ok := parseID(c)
	if !ok {
		return
	}

	vaga, err := h.vagaService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.toResponse(c, vaga))
}

// @Summary Listar vagas por pátio
// @Description Lista paginada de vagas filtrando por pátio
// @Tags vagas
// @Produce json
// @Param patio query string true "Nome do pátio"
// @Param page query int false "Página" default(1)
// @Param pageSize query int false "Itens por página (1..100)" default(10)
// @Success 200 {object} pagedResponse "Vagas paginadas do pátio"
// @Router /vaga/patio [get]
func (h *VagaHandler) ListVagasByPatio(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	patio := strings.TrimSpace(c.Query("patio"))
	page, pageSize := parsePageParams(c)

	vagas, total, err := h.vagaService.ListByPatio(c.Request.Context(), patio, page, pageSize)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	items := make([]VagaResponse, 0, len(vagas))
	for _, vaga := range vagas {
		items = append(items, h.toResponse(c, vaga))
	}

	extra := url.Values{"patio": []string{patio}}
	c.JSON(http.StatusOK, newPagedResponse(c, vagaBasePath+"/patio", page, pageSize, total, items, extra))
}

// @Summary Criar vaga
// @Description Cadastra uma nova vaga; (pátio, número) deve ser único
// @Tags vagas
// @Accept json
// @Produce json
// @Param request body VagaRequest true "Dados da vaga"
// @Success 201 {object} VagaResponse "Vaga criada"
// @Failure 400 {object} errorResponse "Dados inválidos"
// @Failure 409 {object} errorResponse "Vaga duplicada no pátio"
// @Router /vaga [post]
func (h *VagaHandler) CreateVaga(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	var req VagaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in create vaga", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, "JSON inválido.")
		return
	}

	vaga, err := h.vagaService.Create(c.Request.Context(), req.Numero, req.Patio, req.Status)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.Header("Location", resourceHref(c, vagaBasePath, vaga.ID))
	c.JSON(http.StatusCreated, h.toResponse(c, vaga))
}

// @Summary Atualizar vaga
// @Description Atualiza localização e status de uma vaga
// @Tags vagas
// @Accept json
// @Param id path int true "ID da vaga"
// @Param request body VagaRequest true "Dados da vaga"
// @Success 204 "Vaga atualizada"
// @Failure 400 {object} errorResponse "Dados inválidos"
// @Failure 404 {object} errorResponse "Vaga não encontrada"
// @Failure 409 {object} errorResponse "Vaga duplicada no pátio"
// @Router /vaga/{id} [put]
func (h *VagaHandler) UpdateVaga(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	id, ok := parseID(c)
	if !ok {
		return
	}

	var req VagaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "JSON inválido.")
		return
	}

	if err := h.vagaService.Update(c.Request.Context(), id, req.Numero, req.Patio, req.Status); err != nil {
		respondDomainError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Remover vaga
// @Description Remove uma vaga por ID
// @Tags vagas
// @Param id path int true "ID da vaga"
// @Success 204 "Vaga removida"
// @Failure 404 {object} errorResponse "Vaga não encontrada"
// @Router /vaga/{id} [delete]
func (h *VagaHandler) DeleteVaga(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.vagaService.Delete(c.Request.Context(), id); err != nil {
		respondDomainError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
