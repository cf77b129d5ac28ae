package handler

import (
	"errors"

	"vidtube/internal/api/response"
	"vidtube/internal/service"
	"vidtube/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type SearchHandler struct {
	searchService *service.SearchService
}

func NewSearchHandler(searchService *service.SearchService) *SearchHandler {
	return &SearchHandler{searchService: searchService}
}

// Search GET /api/v1/search?query=...
func (h *SearchHandler) Search(c *gin.Context) {
	page, pageSize := parsePagination(c)

	data, err := h.searchService.Search(c.Request.Context(), c.Query("query"), page, pageSize)
	if err != nil {
		if errors.Is(err, service.ErrEmptyQuery) {
			response.BadRequest(c, err.Error())
			return
		}
		logger.Error("Search failed", zap.Error(err))
		response.InternalError(c, "search failed")
		return
	}

	response.OK(c, "search results fetched", data)
}
