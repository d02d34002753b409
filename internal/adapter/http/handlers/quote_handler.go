package handlers

import (
	"errors"
	"net/http"
	"strings"

	request "enviroflow/internal/adapter/http/dto/request"
	response "enviroflow/internal/adapter/http/dto/response"
	"enviroflow/internal/infrastructure/logging"
	"enviroflow/internal/usecase"
	"enviroflow/pkg"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

var (
	errEmptyQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_PAYLOAD", "Request body is empty", http.StatusBadRequest)
	errInvalidViewQuery  = pkg.NewDomainErrorSimple("INVALID_VIEW", "view must be full or human", http.StatusBadRequest)
)

// QuoteHandler handles HTTP requests for quote ingestion.

type QuoteHandler struct {
	usecase usecase.IQuoteIngestUseCase
}

func NewQuoteHandler(uc usecase.IQuoteIngestUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// IngestQuote godoc
// @Summary      Ingest a single quote
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        body  body      object  true  "Quote record"
// @Success      201   {object}  response.IngestionRunResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      500   {object}  pkg.HTTPError
// @Router       /v1/quotes [post]
func (h *QuoteHandler) IngestQuote(c *gin.Context) {
	raw, ok := readQuotePayload(c)
	if !ok {
		return
	}

	run, err := h.usecase.IngestQuote(c.Request.Context(), raw)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromIngestionRun(run))
}

// IngestPages godoc
// @Summary      Ingest a multi-page quotes response
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        body  body      object  true  "Pages keyed by page id, each with a quotes array"
// @Success      201   {object}  response.IngestionRunResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      500   {object}  pkg.HTTPError
// @Router       /v1/quotes/pages [post]
func (h *QuoteHandler) IngestPages(c *gin.Context) {
	raw, ok := readQuotePayload(c)
	if !ok {
		return
	}

	run, err := h.usecase.IngestPages(c.Request.Context(), raw)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromIngestionRun(run))
}

// ExportPages godoc
// @Summary      Normalize pages and download the line tables as xlsx
// @Tags         quotes
// @Accept       json
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        view  query     string  false  "full or human; both tables when empty"
// @Param        body  body      object  true   "Pages keyed by page id, each with a quotes array"
// @Success      200   {file}    file
// @Failure      400   {object}  pkg.HTTPError
// @Failure      500   {object}  pkg.HTTPError
// @Router       /v1/quotes/export [post]
func (h *QuoteHandler) ExportPages(c *gin.Context) {
	_, view, ok := bindTableView(c)
	if !ok {
		return
	}

	raw, ok := readQuotePayload(c)
	if !ok {
		return
	}

	out, err := h.usecase.ExportPages(c.Request.Context(), raw, view)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+out.Filename+`"`)
	c.Header("X-Ingestion-Status", string(out.Run.Status))
	c.Data(http.StatusOK, out.ContentType, out.Data)
}

// ListLines godoc
// @Summary      List stored lines of a quote
// @Tags         quotes
// @Produce      json
// @Param        quote_number  path      string  true   "Quote number"
// @Param        view          query     string  false  "full (default) or human"
// @Success      200           {object}  response.QuoteLinesResponse
// @Failure      400           {object}  pkg.HTTPError
// @Failure      404           {object}  pkg.HTTPError
// @Router       /v1/quotes/{quote_number}/lines [get]
func (h *QuoteHandler) ListLines(c *gin.Context) {
	query, _, ok := bindTableView(c)
	if !ok {
		return
	}

	quoteNumber := strings.TrimSpace(c.Param("quote_number"))
	lines, err := h.usecase.ListLinesByQuoteNumber(c.Request.Context(), quoteNumber)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromLineItems(quoteNumber, lines, query.IsHuman()))
}

// bindTableView reads ?view= and answers 400 itself when it is unusable.
func bindTableView(c *gin.Context) (request.TableViewQuery, usecase.TableView, bool) {
	var query request.TableViewQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(errInvalidViewQuery.HTTPStatus, errInvalidViewQuery.ToHTTPError())
		return request.TableViewQuery{}, "", false
	}
	view, err := usecase.ParseTableView(query.ResolveView())
	if err != nil {
		c.JSON(errInvalidViewQuery.HTTPStatus, errInvalidViewQuery.ToHTTPError())
		return request.TableViewQuery{}, "", false
	}
	return query, view, true
}

func readQuotePayload(c *gin.Context) ([]byte, bool) {
	raw, err := c.GetRawData()
	if err != nil || len(strings.TrimSpace(string(raw))) == 0 {
		c.JSON(errEmptyQuotePayload.HTTPStatus, errEmptyQuotePayload.ToHTTPError())
		return nil, false
	}
	return raw, true
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPayload):
		return pkg.NewDomainError("INVALID_QUOTE_PAYLOAD", "Invalid quote payload", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidQuoteNumber), errors.Is(err, usecase.ErrInvalidView):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteLinesNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_LINES_NOT_FOUND", "No lines stored for this quote", http.StatusNotFound)
	default:
		logging.GetLogger().WithFields(logrus.Fields{"module": "handlers"}).Error(err.Error())
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
