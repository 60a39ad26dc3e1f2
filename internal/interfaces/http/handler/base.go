package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	catalogapp "github.com/shopcore/backend/internal/application/catalog"
	"github.com/shopcore/backend/internal/domain/shared"
	"github.com/shopcore/backend/internal/infrastructure/logger"
	"github.com/shopcore/backend/internal/interfaces/http/dto"
	"github.com/shopcore/backend/internal/interfaces/http/middleware"
	"go.uber.org/zap"
)

// Listing defaults applied when a request omits them
const (
	DefaultPageLimit = 10
	MaxPageLimit     = 100
)

// Paging bounds the limit query parameter
type Paging struct {
	DefaultLimit int
	MaxLimit     int
}

// DefaultPaging returns the stock listing bounds
func DefaultPaging() Paging {
	return Paging{DefaultLimit: DefaultPageLimit, MaxLimit: MaxPageLimit}
}

// BaseHandler provides common handler utilities
type BaseHandler struct {
	paging Paging
}

// Success sends a success response
func (h *BaseHandler) Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(data))
}

// SuccessWithMeta sends a success response with pagination meta
func (h *BaseHandler) SuccessWithMeta(c *gin.Context, data any, total int64, page, pageSize int) {
	c.JSON(http.StatusOK, dto.NewSuccessResponseWithMeta(data, total, page, pageSize))
}

// Created sends a 201 created response
func (h *BaseHandler) Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, dto.NewSuccessResponse(data))
}

// BadRequest sends a 400 bad request response
func (h *BaseHandler) BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, dto.NewErrorResponseWithRequestID(dto.ErrCodeBadRequest, message, middleware.GetRequestID(c)))
}

// InvalidField sends a 400 naming the offending field
func (h *BaseHandler) InvalidField(c *gin.Context, field, message string) {
	c.JSON(http.StatusBadRequest, dto.NewFieldErrorResponse(dto.ErrCodeInvalidInput, message, field, middleware.GetRequestID(c)))
}

// HandleError converts domain errors to HTTP responses; anything else is logged and reported as 500
func (h *BaseHandler) HandleError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	requestID := middleware.GetRequestID(c)

	if de, ok := shared.AsDomainError(err); ok {
		code := dto.NormalizeErrorCode(de.Code)
		c.JSON(dto.GetHTTPStatus(code), dto.NewFieldErrorResponse(code, de.Message, de.Field, requestID))
		return
	}

	logger.FromContext(c.Request.Context()).Error("Request failed", zap.Error(err))
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, dto.NewErrorResponseWithRequestID(
		dto.ErrCodeInternal,
		"An unexpected error occurred",
		requestID,
	))
}

// parseID reads the :id path parameter
func (h *BaseHandler) parseID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.InvalidField(c, "id", "Invalid "+name+" ID format")
		return uuid.Nil, false
	}
	return id, true
}

// bindJSON binds the body, writing the validation response on failure
func (h *BaseHandler) bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		middleware.HandleValidationError(c, err)
		return false
	}
	return true
}

// listing binds the shared listing query parameters
func (h *BaseHandler) listing(c *gin.Context) (dto.ListRequest, shared.ListingInput, bool) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return req, shared.ListingInput{}, false
	}

	paging := h.paging
	if paging.DefaultLimit <= 0 {
		paging = DefaultPaging()
	}

	in := shared.ListingInput{
		Page:      req.Page,
		Limit:     req.Limit,
		Search:    req.Search,
		SortOrder: req.SortOrder,
	}
	if c.Query("page") == "" {
		in.Page = 1
	}
	if c.Query("limit") == "" {
		in.Limit = paging.DefaultLimit
	}
	if paging.MaxLimit > 0 && in.Limit > paging.MaxLimit {
		in.Limit = paging.MaxLimit
	}
	return req, in, true
}

// catalogQuery binds a catalog listing with its id filters
func (h *BaseHandler) catalogQuery(c *gin.Context) (catalogapp.ListQuery, bool) {
	req, in, ok := h.listing(c)
	if !ok {
		return catalogapp.ListQuery{}, false
	}

	categoryIDs, ok := h.parseIDs(c, "categoryIds", req.CategoryIDs)
	if !ok {
		return catalogapp.ListQuery{}, false
	}
	masterIDs, ok := h.parseIDs(c, "masterProductIds", req.MasterProductIDs)
	if !ok {
		return catalogapp.ListQuery{}, false
	}

	return catalogapp.ListQuery{
		Listing:          in,
		SearchFields:     req.SearchFields,
		CategoryIDs:      categoryIDs,
		MasterProductIDs: masterIDs,
	}, true
}

func (h *BaseHandler) parseIDs(c *gin.Context, field string, raw []string) ([]uuid.UUID, bool) {
	if len(raw) == 0 {
		return nil, true
	}
	ids := make([]uuid.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := uuid.Parse(s)
		if err != nil {
			h.InvalidField(c, field, "Invalid ID in "+field+": "+s)
			return nil, false
		}
		ids = append(ids, id)
	}
	return ids, true
}
