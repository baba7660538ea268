package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/elysia-api/parking-service/internal/core/domain"

	"github.com/gin-gonic/gin"
)

type errorResponse struct {
	Error string `json:"error"`
}

func newErrorResponse(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, errorResponse{Error: message})
}

// respondDomainError maps the domain error taxonomy onto HTTP statuses:
// validation 400, not-found 404, conflict 409, bad credentials 401 and
// everything else a generic 500.
func respondDomainError(c *gin.Context, err error) {
	var validationErr *domain.ValidationError
	var conflictErr *domain.ConflictError

	switch {
	case errors.As(err, &validationErr):
		newErrorResponse(c, http.StatusBadRequest, validationErr.Message)
	case errors.As(err, &conflictErr):
		newErrorResponse(c, http.StatusConflict, conflictErr.Message)
	case errors.Is(err, domain.ErrNotFound):
		newErrorResponse(c, http.StatusNotFound, "Registro não encontrado.")
	case errors.Is(err, domain.ErrInvalidCredentials):
		newErrorResponse(c, http.StatusUnauthorized, "Credenciais inválidas.")
	default:
		newErrorResponse(c, http.StatusInternalServerError, "Erro interno do servidor.")
	}
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		newErrorResponse(c, http.StatusBadRequest, "ID inválido.")
		return 0, false
	}
	return id, true
}
