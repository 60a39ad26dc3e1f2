package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/shopcore/backend/internal/application/identity"
	"github.com/shopcore/backend/internal/domain/shared"
	"github.com/shopcore/backend/internal/interfaces/http/dto"
	"github.com/shopcore/backend/internal/interfaces/http/middleware"
)

// UserHandler handles user administration endpoints
type UserHandler struct {
	BaseHandler
	userService *identity.UserService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userService *identity.UserService, paging Paging) *UserHandler {
	return &UserHandler{
		BaseHandler: BaseHandler{paging: paging},
		userService: userService,
	}
}

// UpdateUserRequest changes a user's profile or role
type UpdateUserRequest struct {
	FirstName *string `json:"firstName" binding:"omitempty,max=100" example:"Jane"`
	LastName  *string `json:"lastName" binding:"omitempty,max=100" example:"Doe"`
	Role      *string `json:"role" example:"MANAGER"`
}

// LogoutRequest names the user to log out; empty means the caller
type LogoutRequest struct {
	Email string `json:"email" binding:"omitempty,email" example:"jane@example.com"`
}

// caller returns the authenticated caller; routes using it sit behind Authenticate
func caller(c *gin.Context) (identity.ContextInfo, error) {
	info, ok := middleware.GetCaller(c)
	if !ok {
		return identity.ContextInfo{}, shared.ErrUnauthenticated
	}
	return *info, nil
}

// List godoc
// @Summary      List users
// @Description  Paginated user list searchable over email, firstName and lastName
// @Tags         users
// @Produce      json
// @Param        page query int false "Page number" default(1)
// @Param        limit query int false "Items per page" default(10)
// @Param        search query string false "Search term"
// @Param        searchFields query []string false "Fields to search" collectionFormat(multi)
// @Param        sortOrder query string false "ASC or DESC" default(DESC)
// @Success      200 {object} dto.Response{data=[]identity.UserResponse,meta=dto.Meta}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /users [get]
func (h *UserHandler) List(c *gin.Context) {
	who, err := caller(c)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	req, in, ok := h.listing(c)
	if !ok {
		return
	}

	page, err := h.userService.List(c.Request.Context(), who, identity.ListUsersInput{
		Listing:      in,
		SearchFields: req.SearchFields,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// GetByEmail godoc
// @Summary      Get user by email
// @Tags         users
// @Produce      json
// @Param        email query string true "Email address"
// @Success      200 {object} dto.Response{data=identity.UserResponse}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /users/by-email [get]
func (h *UserHandler) GetByEmail(c *gin.Context) {
	who, err := caller(c)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	email := c.Query("email")
	if email == "" {
		h.InvalidField(c, "email", "email is required")
		return
	}

	user, err := h.userService.GetByEmail(c.Request.Context(), who, email)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, user)
}

// Update godoc
// @Summary      Update user
// @Description  Change a user's name or role
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id path string true "User ID" format(uuid)
// @Param        request body UpdateUserRequest true "Fields to change"
// @Success      200 {object} dto.Response{data=identity.UserResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /users/{id} [put]
func (h *UserHandler) Update(c *gin.Context) {
	who, err := caller(c)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	id, ok := h.parseID(c, "user")
	if !ok {
		return
	}
	var req UpdateUserRequest
	if !h.bindJSON(c, &req) {
		return
	}

	user, err := h.userService.Update(c.Request.Context(), who, id, identity.UpdateUserInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      req.Role,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, user)
}

// Logout godoc
// @Summary      Log a user out everywhere
// @Description  Invalidates every token issued to the user. Without an email the caller is logged out.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request body LogoutRequest false "User to log out"
// @Success      200 {object} dto.Response{data=dto.MessageResponse}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /users/logout [post]
func (h *UserHandler) Logout(c *gin.Context) {
	who, err := caller(c)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	var req LogoutRequest
	if c.Request.ContentLength != 0 && !h.bindJSON(c, &req) {
		return
	}
	email := req.Email
	if email == "" {
		email = who.Email
	}

	if err := h.userService.Logout(c.Request.Context(), who, email); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.MessageResponse{Message: "User logged out"})
}
