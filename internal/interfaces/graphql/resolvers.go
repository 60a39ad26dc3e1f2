package graphql

import (
	"context"

	"github.com/shopcore/backend/internal/application/catalog"
	"github.com/shopcore/backend/internal/application/identity"
	domainIdentity "github.com/shopcore/backend/internal/domain/identity"
	"github.com/shopcore/backend/internal/domain/shared"
)

// Services are the application services behind the resolvers
type Services struct {
	Auth          *identity.AuthService
	Users         *identity.UserService
	Categories    *catalog.CategoryService
	MasterProduct *catalog.MasterProductService
	SubProduct    *catalog.SubProductService
}

// Limits bound paginationInput.limit
type Limits struct {
	DefaultLimit int
	MaxLimit     int
}

type resolvers struct {
	svc    Services
	limits Limits
}

// Register installs every operation resolver on e
func Register(e *Executor, svc Services, limits Limits) {
	r := &resolvers{svc: svc, limits: limits}

	e.Mutation("login", r.login)
	e.Mutation("signup", r.signup)
	e.Query("getAllUsers", r.getAllUsers)
	e.Query("userByEmail", r.userByEmail)
	e.Mutation("updateUser", r.updateUser)
	e.Mutation("userLogout", r.userLogout)

	e.Query("getAllCategories", r.getAllCategories)
	e.Query("getCategory", r.getCategory)
	e.Mutation("createCategory", r.createCategory)
	e.Mutation("updateCategory", r.updateCategory)
	e.Mutation("deleteCategory", r.deleteCategory)

	e.Query("getAllMasterProduct", r.getAllMasterProduct)
	e.Query("getMasterProduct", r.getMasterProduct)
	e.Mutation("createMasterProduct", r.createMasterProduct)
	e.Mutation("updateMasterProductById", r.updateMasterProductById)
	e.Mutation("deleteMasterProductById", r.deleteMasterProductById)

	e.Query("getAllSubProducts", r.getAllSubProducts)
	e.Query("getOneSubProductById", r.getOneSubProductById)
	e.Mutation("createSubProduct", r.createSubProduct)
	e.Mutation("updateSubProductById", r.updateSubProductById)
	e.Mutation("deleteSubProductById", r.deleteSubProductById)
}

// caller returns the resolved caller, or an anonymous one
func caller(ctx context.Context) identity.ContextInfo {
	if info, ok := identity.ContextInfoFrom(ctx); ok {
		return *info
	}
	return identity.ContextInfo{}
}

func callerRole(ctx context.Context) domainIdentity.Role {
	return caller(ctx).Role
}

type page[T any] struct {
	Items      []T   `json:"items"`
	TotalCount int64 `json:"totalCount"`
}

func (r *resolvers) login(ctx context.Context, args map[string]any) (any, error) {
	var in struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := decodeArg(args, "userLoginInput", &in); err != nil {
		return nil, err
	}
	return r.svc.Auth.Login(ctx, identity.LoginInput{Email: in.Email, Password: in.Password})
}

func (r *resolvers) signup(ctx context.Context, args map[string]any) (any, error) {
	var in struct {
		Email     string `json:"email" binding:"required,email"`
		Password  string `json:"password" binding:"required"`
		FirstName string `json:"firstName" binding:"max=100"`
		LastName  string `json:"lastName" binding:"max=100"`
	}
	if err := decodeArg(args, "createUserInput", &in); err != nil {
		return nil, err
	}
	return r.svc.Auth.Signup(ctx, identity.SignupInput{
		Email:     in.Email,
		Password:  in.Password,
		FirstName: in.FirstName,
		LastName:  in.LastName,
	})
}

func (r *resolvers) getAllUsers(ctx context.Context, args map[string]any) (any, error) {
	listing, err := listingArg(args, r.limits.DefaultLimit, r.limits.MaxLimit)
	if err != nil {
		return nil, err
	}
	result, err := r.svc.Users.List(ctx, caller(ctx), identity.ListUsersInput{
		Listing:      listing,
		SearchFields: stringsArg(args, "searchFields"),
	})
	if err != nil {
		return nil, err
	}
	return page[identity.UserResponse]{Items: result.Items, TotalCount: result.Total}, nil
}

func (r *resolvers) userByEmail(ctx context.Context, args map[string]any) (any, error) {
	email, _ := args["email"].(string)
	return r.svc.Users.GetByEmail(ctx, caller(ctx), email)
}

func (r *resolvers) updateUser(ctx context.Context, args map[string]any) (any, error) {
	var in struct {
		ID        string  `json:"_id"`
		FirstName *string `json:"firstName" binding:"omitempty,max=100"`
		LastName  *string `json:"lastName" binding:"omitempty,max=100"`
		Role      *string `json:"role"`
	}
	if err := decodeArg(args, "updateUserInput", &in); err != nil {
		return nil, err
	}
	id, err := idArg(map[string]any{"_id": in.ID}, "_id")
	if err != nil {
		return nil, err
	}
	return r.svc.Users.Update(ctx, caller(ctx), id, identity.UpdateUserInput{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Role:      in.Role,
	})
}

// userLogout logs out email, or the caller when email is omitted
func (r *resolvers) userLogout(ctx context.Context, args map[string]any) (any, error) {
	c := caller(ctx)
	email, _ := args["email"].(string)
	if email == "" {
		if c.Email == "" {
			return nil, shared.ErrUnauthenticated
		}
		email = c.Email
	}
	if err := r.svc.Users.Logout(ctx, c, email); err != nil {
		return nil, err
	}
	return "User logged out successfully", nil
}

func (r *resolvers) catalogQuery(args map[string]any) (catalog.ListQuery, error) {
	listing, err := listingArg(args, r.limits.DefaultLimit, r.limits.MaxLimit)
	if err != nil {
		return catalog.ListQuery{}, err
	}
	categoryIDs, err := idsArg(args, "categoryIds")
	if err != nil {
		return catalog.ListQuery{}, err
	}
	masterIDs, err := idsArg(args, "masterProductIds")
	if err != nil {
		return catalog.ListQuery{}, err
	}
	return catalog.ListQuery{
		Listing:          listing,
		SearchFields:     stringsArg(args, "searchFields"),
		CategoryIDs:      categoryIDs,
		MasterProductIDs: masterIDs,
	}, nil
}

func (r *resolvers) getAllCategories(ctx context.Context, args map[string]any) (any, error) {
	query, err := r.catalogQuery(args)
	if err != nil {
		return nil, err
	}
	return r.svc.Categories.List(ctx, query)
}

func (r *resolvers) getCategory(ctx context.Context, args map[string]any) (any, error) {
	id, err := idArg(args, "_id")
	if err != nil {
		return nil, err
	}
	return r.svc.Categories.GetByID(ctx, id)
}

func (r *resolvers) createCategory(ctx context.Context, args map[string]any) (any, error) {
	var req catalog.CreateCategoryRequest
	if err := decodeArg(args, "createCategoryInput", &req); err != nil {
		return nil, err
	}
	return r.svc.Categories.Create(ctx, callerRole(ctx), req)
}

func (r *resolvers) updateCategory(ctx context.Context, args map[string]any) (any, error) {
	input, _ := args["updateCategoryInput"].(map[string]any)
	id, err := idArg(input, "_id")
	if err != nil {
		return nil, err
	}
	var req catalog.UpdateCategoryRequest
	if err := decodeArg(args, "updateCategoryInput", &req); err != nil {
		return nil, err
	}
	return r.svc.Categories.Update(ctx, callerRole(ctx), id, req)
}

func (r *resolvers) deleteCategory(ctx context.Context, args map[string]any) (any, error) {
	id, err := idArg(args, "_id")
	if err != nil {
		return nil, err
	}
	return r.svc.Categories.Delete(ctx, callerRole(ctx), id)
}

func (r *resolvers) getAllMasterProduct(ctx context.Context, args map[string]any) (any, error) {
	query, err := r.catalogQuery(args)
	if err != nil {
		return nil, err
	}
	return r.svc.MasterProduct.GetAll(ctx, query)
}

func (r *resolvers) getMasterProduct(ctx context.Context, args map[string]any) (any, error) {
	id, err := idArg(args, "_id")
	if err != nil {
		return nil, err
	}
	return r.svc.MasterProduct.GetByID(ctx, id)
}

func (r *resolvers) createMasterProduct(ctx context.Context, args map[string]any) (any, error) {
	var req catalog.CreateMasterProductRequest
	if err := decodeArg(args, "createMasterProductInput", &req); err != nil {
		return nil, err
	}
	return r.svc.MasterProduct.Create(ctx, callerRole(ctx), req)
}

func (r *resolvers) updateMasterProductById(ctx context.Context, args map[string]any) (any, error) {
	input, _ := args["updateMasterProductInput"].(map[string]any)
	id, err := idArg(input, "_id")
	if err != nil {
		return nil, err
	}
	var req catalog.UpdateMasterProductRequest
	if err := decodeArg(args, "updateMasterProductInput", &req); err != nil {
		return nil, err
	}
	return r.svc.MasterProduct.Update(ctx, callerRole(ctx), id, req)
}

func (r *resolvers) deleteMasterProductById(ctx context.Context, args map[string]any) (any, error) {
	id, err := idArg(args, "_id")
	if err != nil {
		return nil, err
	}
	return r.svc.MasterProduct.Delete(ctx, callerRole(ctx), id)
}

func (r *resolvers) getAllSubProducts(ctx context.Context, args map[string]any) (any, error) {
	query, err := r.catalogQuery(args)
	if err != nil {
		return nil, err
	}
	return r.svc.SubProduct.GetAll(ctx, callerRole(ctx), query)
}

func (r *resolvers) getOneSubProductById(ctx context.Context, args map[string]any) (any, error) {
	id, err := idArg(args, "_id")
	if err != nil {
		return nil, err
	}
	return r.svc.SubProduct.GetByID(ctx, callerRole(ctx), id)
}

func (r *resolvers) createSubProduct(ctx context.Context, args map[string]any) (any, error) {
	var req catalog.CreateSubProductRequest
	if err := decodeArg(args, "createSubProductInput", &req); err != nil {
		return nil, err
	}
	return r.svc.SubProduct.Create(ctx, callerRole(ctx), req)
}

func (r *resolvers) updateSubProductById(ctx context.Context, args map[string]any) (any, error) {
	input, _ := args["updateSubProductInput"].(map[string]any)
	id, err := idArg(input, "_id")
	if err != nil {
		return nil, err
	}
	var req catalog.UpdateSubProductRequest
	if err := decodeArg(args, "updateSubProductInput", &req); err != nil {
		return nil, err
	}
	return r.svc.SubProduct.Update(ctx, callerRole(ctx), id, req)
}

func (r *resolvers) deleteSubProductById(ctx context.Context, args map[string]any) (any, error) {
	id, err := idArg(args, "_id")
	if err != nil {
		return nil, err
	}
	return r.svc.SubProduct.Delete(ctx, callerRole(ctx), id)
}
