package http

import (
	"net/http"
	"time"

	"github.com/elysia-api/parking-service/internal/core/domain"
	"github.com/elysia-api/parking-service/internal/core/ports"

	"github.com/gin-gonic/gin"
)

const usuarioBasePath = "/usuario"

type UsuarioHandler struct {
	usuarioService ports.UsuarioService
	tokenService   ports.TokenService
	logger         ports.LoggerPort
	metrics        ports.MetricsPort
}

type UsuarioRequest struct {
	Nome  string `json:"nome" binding:"required,max=120" example:"Maria Silva"`
	Email string `json:"email" binding:"required,max=254" example:"maria@exemplo.com"`
	Senha string `json:"senha" binding:"required" example:"segredo123"`
	Cpf   string `json:"cpf" binding:"required,max=11" example:"12345678901"`
}

type LoginRequest struct {
	Email string `json:"email" binding:"required" example:"maria@exemplo.com"`
	Senha string `json:"senha" binding:"required" example:"segredo123"`
}

type UsuarioResponse struct {
	ID    int64  `json:"id"`
	Nome  string `json:"nome"`
	Email string `json:"email"`
	Cpf   string `json:"cpf"`
	Links []Link `json:"links"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

func NewUsuarioHandler(
	usuarioService ports.UsuarioService,
	tokenService ports.TokenService,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *UsuarioHandler {
	return &UsuarioHandler{
		usuarioService: usuarioService,
		tokenService:   tokenService,
		logger:         logger,
		metrics:        metrics,
	}
}

func (h *UsuarioHandler) toResponse(c *gin.Context, usuario *domain.Usuario) UsuarioResponse {
	return UsuarioResponse{
		ID:    usuario.ID,
		Nome:  usuario.Nome,
		Email: usuario.Email,
		Cpf:   usuario.Cpf,
		Links: resourceLinks(c, usuarioBasePath, usuario.ID),
	}
}

// @Summary Listar usuários
// @Description Lista paginada de usuários com links HATEOAS
// @Tags usuarios
// @Produce json
// @Param page query int false "Página" default(1)
// @Param pageSize query int false "Itens por página (1..100)" default(10)
// @Success 200 {object} pagedResponse "Usuários paginados"
// @Router /usuario [get]
func (h *UsuarioHandler) ListUsuarios(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	page, pageSize := parsePageParams(c)

	usuarios, total, err := h.usuarioService.List(c.Request.Context(), page, pageSize)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	items := make([]UsuarioResponse, 0, len(usuarios))
	for _, usuario := range usuarios {
		items = append(items, h.toResponse(c, usuario))
	}

	c.JSON(http.StatusOK, newPagedResponse(c, usuarioBasePath, page, pageSize, total, items, nil))
}

// @Summary Obter usuário
// @Description Busca um usuário por ID
// @Tags usuarios
// @Produce json
// @Param id path int true "ID do usuário"
// @Success 200 {object} UsuarioResponse "Usuário encontrado"
// @Failure 404 {object} errorResponse "Usuário não encontrado"
// @Router /usuario/{id} [get]
func (h *UsuarioHandler) GetUsuario(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	id, ok := parseID(c)
	if !ok {
		return
	}

	usuario, err := h.usuarioService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.toResponse(c, usuario))
}

// @Summary Cadastrar usuário
// @Description Cadastra um novo usuário; email e CPF devem ser únicos
// @Tags usuarios
// @Accept json
// @Produce json
// @Param request body UsuarioRequest true "Nome, Email, Senha, Cpf"
// @Success 201 {object} UsuarioResponse "Usuário criado"
// @Failure 400 {object} errorResponse "Dados inválidos"
// @Failure 409 {object} errorResponse "Email ou CPF já cadastrado"
// @Router /usuario [post]
func (h *UsuarioHandler) CreateUsuario(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	var req UsuarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in create usuario", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, "JSON inválido.")
		return
	}

	usuario, err := h.usuarioService.Create(c.Request.Context(), req.Nome, req.Email, req.Senha, req.Cpf)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.Header("Location", resourceHref(c, usuarioBasePath, usuario.ID))
	c.JSON(http.StatusCreated, h.toResponse(c, usuario))
}

// @Summary Atualizar usuário
// @Description Atualiza dados básicos e senha de um usuário
// @Tags usuarios
// @Accept json
// @Param id path int true "ID do usuário"
// @Param request body UsuarioRequest true "Nome, Email, Senha, Cpf"
// @Success 204 "Usuário atualizado"
// @Failure 400 {object} errorResponse "Dados inválidos"
// @Failure 404 {object} errorResponse "Usuário não encontrado"
// @Failure 409 {object} errorResponse "Email ou CPF já cadastrado"
// @Router /usuario/{id} [put]
func (h *UsuarioHandler) UpdateUsuario(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UsuarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "JSON inválido.")
		return
	}

	if err := h.usuarioService.Update(c.Request.Context(), id, req.Nome, req.Email, req.Senha, req.Cpf); err != nil {
		respondDomainError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Remover usuário
// @Description Remove um usuário por ID
// @Tags usuarios
// @Param id path int true "ID do usuário"
// @Success 204 "Usuário removido"
// @Failure 404 {object} errorResponse "Usuário não encontrado"
// @Router /usuario/{id} [delete]
func (h *UsuarioHandler) DeleteUsuario(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.usuarioService.Delete(c.Request.Context(), id); err != nil {
		respondDomainError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Autenticar usuário
// @Description Autentica por email e senha e emite um token JWT
// @Tags usuarios
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Email e senha"
// @Success 200 {object} LoginResponse "Token emitido"
// @Failure 401 {object} errorResponse "Credenciais inválidas"
// @Router /usuario/login [post]
func (h *UsuarioHandler) Login(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "JSON inválido.")
		return
	}

	usuario, err := h.usuarioService.Login(c.Request.Context(), req.Email, req.Senha)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	token, err := h.tokenService.CreateToken(usuario)
	if err != nil {
		h.logger.Error("Failed to create token", map[string]interface{}{
			"error":      err.Error(),
			"usuario_id": usuario.ID,
		})
		newErrorResponse(c, http.StatusInternalServerError, "Erro interno do servidor.")
		return
	}

	c.JSON(http.StatusOK, LoginResponse{Token: token})
}

// @Summary Usuário autenticado
// @Description Retorna o usuário dono do token apresentado
// @Tags usuarios
// @Security BearerAuth
// @Produce json
// @Success 200 {object} UsuarioResponse "Usuário autenticado"
// @Failure 401 {object} errorResponse "Não autorizado"
// @Router /usuario/me [get]
func (h *UsuarioHandler) Me(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	payload, exists := getAuthPayload(c, authorizationPayloadKey)
	if !exists {
		h.logger.Warn("Unauthorized access attempt to Me", map[string]interface{}{
			"ip": c.ClientIP(),
		})
		newErrorResponse(c, http.StatusUnauthorized, "Não autorizado.")
		return
	}

	usuario, err := h.usuarioService.GetByID(c.Request.Context(), payload.UserID)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.toResponse(c, usuario))
}
