package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "perawise/internal/errors"
	"perawise/internal/pagination"
	"perawise/internal/services"
)

// ContentHandler serves the curated educational content library.
type ContentHandler struct {
	contentService services.ContentServicer
}

// NewContentHandler creates a new ContentHandler.
func NewContentHandler(contentService services.ContentServicer) *ContentHandler {
	return &ContentHandler{contentService: contentService}
}

type listContentQuery struct {
	pagination.PageRequest
	Category string `form:"category" binding:"omitempty,content_category"`
}

// ListContent returns a page of curated articles
// @Summary     List educational content
// @Tags        content
// @Produce     json
// @Security    BearerAuth
// @Param       category  query string false "Filter by category"
// @Param       page      query int    false "Page number"
// @Param       page_size query int    false "Page size"
// @Success     200 {object} map[string]interface{} "Paginated articles"
// @Failure     400 {object} ErrorResponse "Invalid query"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /content [get]
func (h *ContentHandler) ListContent(c *gin.Context) {
	var query listContentQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid content query"))
		return
	}

	result, err := h.contentService.ListContent(query.PageRequest, query.Category)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
