package handler

import (
	"github.com/gin-gonic/gin"
	catalogapp "github.com/shopcore/backend/internal/application/catalog"
	"github.com/shopcore/backend/internal/interfaces/http/middleware"
)

// SubProductHandler handles sub-product endpoints. Reads are open to anonymous
// callers, who only see published sub-products.
type SubProductHandler struct {
	BaseHandler
	subService *catalogapp.SubProductService
}

// NewSubProductHandler creates a new SubProductHandler
func NewSubProductHandler(subService *catalogapp.SubProductService, paging Paging) *SubProductHandler {
	return &SubProductHandler{
		BaseHandler: BaseHandler{paging: paging},
		subService:  subService,
	}
}

// Create godoc
// @Summary      Create sub-product
// @Tags         sub-products
// @Accept       json
// @Produce      json
// @Param        request body catalogapp.CreateSubProductRequest true "Sub-product"
// @Success      201 {object} dto.Response{data=catalogapp.SubProductResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /catalog/sub-products [post]
func (h *SubProductHandler) Create(c *gin.Context) {
	var req catalogapp.CreateSubProductRequest
	if !h.bindJSON(c, &req) {
		return
	}

	sub, err := h.subService.Create(c.Request.Context(), middleware.GetCallerRole(c), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, sub)
}

// List godoc
// @Summary      List sub-products
// @Description  Staff see every status; everyone else sees published sub-products only
// @Tags         sub-products
// @Produce      json
// @Param        page query int false "Page number" default(1)
// @Param        limit query int false "Items per page" default(10)
// @Param        search query string false "Search term"
// @Param        searchFields query []string false "Fields to search" collectionFormat(multi)
// @Param        masterProductIds query []string false "Master product filter" collectionFormat(multi)
// @Param        categoryIds query []string false "Category filter" collectionFormat(multi)
// @Param        sortOrder query string false "ASC or DESC" default(DESC)
// @Success      200 {object} dto.Response{data=[]catalogapp.SubProductResponse,meta=dto.Meta}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /catalog/sub-products [get]
func (h *SubProductHandler) List(c *gin.Context) {
	query, ok := h.catalogQuery(c)
	if !ok {
		return
	}

	list, err := h.subService.GetAll(c.Request.Context(), middleware.GetCallerRole(c), query)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, list.Items, list.TotalCount, query.Listing.Page, query.Listing.Limit)
}

// GetByID godoc
// @Summary      Get sub-product
// @Tags         sub-products
// @Produce      json
// @Param        id path string true "Sub-product ID" format(uuid)
// @Success      200 {object} dto.Response{data=catalogapp.SubProductResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /catalog/sub-products/{id} [get]
func (h *SubProductHandler) GetByID(c *gin.Context) {
	id, ok := h.parseID(c, "sub-product")
	if !ok {
		return
	}

	sub, err := h.subService.GetByID(c.Request.Context(), middleware.GetCallerRole(c), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, sub)
}

// Update godoc
// @Summary      Update sub-product
// @Tags         sub-products
// @Accept       json
// @Produce      json
// @Param        id path string true "Sub-product ID" format(uuid)
// @Param        request body catalogapp.UpdateSubProductRequest true "Fields to change"
// @Success      200 {object} dto.Response{data=catalogapp.SubProductResponse}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /catalog/sub-products/{id} [put]
func (h *SubProductHandler) Update(c *gin.Context) {
	id, ok := h.parseID(c, "sub-product")
	if !ok {
		return
	}
	var req catalogapp.UpdateSubProductRequest
	if !h.bindJSON(c, &req) {
		return
	}

	sub, err := h.subService.Update(c.Request.Context(), middleware.GetCallerRole(c), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, sub)
}

// Delete godoc
// @Summary      Delete sub-product
// @Tags         sub-products
// @Produce      json
// @Param        id path string true "Sub-product ID" format(uuid)
// @Success      200 {object} dto.Response{data=catalogapp.SubProductResponse}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /catalog/sub-products/{id} [delete]
func (h *SubProductHandler) Delete(c *gin.Context) {
	id, ok := h.parseID(c, "sub-product")
	if !ok {
		return
	}

	sub, err := h.subService.Delete(c.Request.Context(), middleware.GetCallerRole(c), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, sub)
}
