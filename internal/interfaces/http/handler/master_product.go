package handler

import (
	"github.com/gin-gonic/gin"
	catalogapp "github.com/shopcore/backend/internal/application/catalog"
	"github.com/shopcore/backend/internal/interfaces/http/middleware"
)

// MasterProductHandler handles master product endpoints
type MasterProductHandler struct {
	BaseHandler
	masterService *catalogapp.MasterProductService
}

// NewMasterProductHandler creates a new MasterProductHandler
func NewMasterProductHandler(masterService *catalogapp.MasterProductService, paging Paging) *MasterProductHandler {
	return &MasterProductHandler{
		BaseHandler:   BaseHandler{paging: paging},
		masterService: masterService,
	}
}

// Create godoc
// @Summary      Create master product
// @Tags         master-products
// @Accept       json
// @Produce      json
// @Param        request body catalogapp.CreateMasterProductRequest true "Master product"
// @Success      201 {object} dto.Response{data=catalogapp.MasterProductResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /catalog/master-products [post]
func (h *MasterProductHandler) Create(c *gin.Context) {
	var req catalogapp.CreateMasterProductRequest
	if !h.bindJSON(c, &req) {
		return
	}

	product, err := h.masterService.Create(c.Request.Context(), middleware.GetCallerRole(c), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, product)
}

// List godoc
// @Summary      List master products
// @Description  Published master products with the catalog-wide sub-product price range
// @Tags         master-products
// @Produce      json
// @Param        page query int false "Page number" default(1)
// @Param        limit query int false "Items per page" default(10)
// @Param        search query string false "Search term"
// @Param        searchFields query []string false "Fields to search" collectionFormat(multi)
// @Param        categoryIds query []string false "Category filter" collectionFormat(multi)
// @Param        sortOrder query string false "ASC or DESC" default(DESC)
// @Success      200 {object} dto.Response{data=catalogapp.MasterProductList,meta=dto.Meta}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /catalog/master-products [get]
func (h *MasterProductHandler) List(c *gin.Context) {
	query, ok := h.catalogQuery(c)
	if !ok {
		return
	}

	list, err := h.masterService.GetAll(c.Request.Context(), query)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, list, list.TotalCount, query.Listing.Page, query.Listing.Limit)
}

// GetByID godoc
// @Summary      Get master product
// @Tags         master-products
// @Produce      json
// @Param        id path string true "Master product ID" format(uuid)
// @Success      200 {object} dto.Response{data=catalogapp.MasterProductResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /catalog/master-products/{id} [get]
func (h *MasterProductHandler) GetByID(c *gin.Context) {
	id, ok := h.parseID(c, "master product")
	if !ok {
		return
	}

	product, err := h.masterService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, product)
}

// Update godoc
// @Summary      Update master product
// @Tags         master-products
// @Accept       json
// @Produce      json
// @Param        id path string true "Master product ID" format(uuid)
// @Param        request body catalogapp.UpdateMasterProductRequest true "Fields to change"
// @Success      200 {object} dto.Response{data=catalogapp.MasterProductResponse}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /catalog/master-products/{id} [put]
func (h *MasterProductHandler) Update(c *gin.Context) {
	id, ok := h.parseID(c, "master product")
	if !ok {
		return
	}
	var req catalogapp.UpdateMasterProductRequest
	if !h.bindJSON(c, &req) {
		return
	}

	product, err := h.masterService.Update(c.Request.Context(), middleware.GetCallerRole(c), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, product)
}

// Delete godoc
// @Summary      Archive master product
// @Description  Archives the master product; its sub-products are kept
// @Tags         master-products
// @Produce      json
// @Param        id path string true "Master product ID" format(uuid)
// @Success      200 {object} dto.Response{data=catalogapp.MasterProductResponse}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /catalog/master-products/{id} [delete]
func (h *MasterProductHandler) Delete(c *gin.Context) {
	id, ok := h.parseID(c, "master product")
	if !ok {
		return
	}

	product, err := h.masterService.Delete(c.Request.Context(), middleware.GetCallerRole(c), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, product)
}

// DeleteCascade godoc
// @Summary      Archive master product and delete its sub-products
// @Tags         master-products
// @Produce      json
// @Param        id path string true "Master product ID" format(uuid)
// @Success      200 {object} dto.Response{data=catalogapp.CascadeResult}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /catalog/master-products/{id}/cascade [delete]
func (h *MasterProductHandler) DeleteCascade(c *gin.Context) {
	id, ok := h.parseID(c, "master product")
	if !ok {
		return
	}

	result, err := h.masterService.DeleteWithSubProducts(c.Request.Context(), middleware.GetCallerRole(c), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}
