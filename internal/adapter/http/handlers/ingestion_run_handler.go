package handlers

import (
	"errors"
	"net/http"

	response "enviroflow/internal/adapter/http/dto/response"
	"enviroflow/internal/usecase"
	"enviroflow/pkg"

	"github.com/gin-gonic/gin"
)

type IngestionRunHandler struct {
	usecase usecase.IIngestionRunUseCase
}

func NewIngestionRunHandler(uc usecase.IIngestionRunUseCase) *IngestionRunHandler {
	return &IngestionRunHandler{usecase: uc}
}

// GetIngestionRun godoc
// @Summary      Get an ingestion run
// @Tags         ingestions
// @Produce      json
// @Param        id   path      string  true  "Ingestion run id"
// @Success      200  {object}  response.IngestionRunResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Router       /v1/ingestions/{id} [get]
func (h *IngestionRunHandler) GetIngestionRun(c *gin.Context) {
	run, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapIngestionRunError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromIngestionRun(run))
}

func mapIngestionRunError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidIngestionRunID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrIngestionRunNotFound):
		return pkg.NewDomainErrorSimple("INGESTION_RUN_NOT_FOUND", "Ingestion run not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
