package routes

import (
	"enviroflow/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes     = "/quotes"
	PathIngestions = "/ingestions"
)

func addQuoteRoutes(rg *gin.RouterGroup, quoteHandler *handlers.QuoteHandler, runHandler *handlers.IngestionRunHandler) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("", quoteHandler.IngestQuote)
		quotes.POST("/pages", quoteHandler.IngestPages)
		quotes.POST("/export", quoteHandler.ExportPages)
		quotes.GET("/:quote_number/lines", quoteHandler.ListLines)
	}

	ingestions := rg.Group(PathIngestions)
	{
		ingestions.GET("/:id", runHandler.GetIngestionRun)
	}
}
