package graphql

import (
	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
)

// Object types expose both "_id" and "id"; "_id" is kept for existing clients.
const schemaSDL = `
scalar Decimal
scalar DateTime

input PaginationInput {
  page: Int
  limit: Int
  search: String
  sortOrder: String
}

input UserLoginInput {
  email: String!
  password: String!
}

input CreateUserInput {
  email: String!
  password: String!
  firstName: String
  lastName: String
}

input UpdateUserInput {
  _id: ID!
  firstName: String
  lastName: String
  role: String
}

input AttributeInput {
  id: String
  attributeName: String!
  value: String
}

input CreateCategoryInput {
  name: String!
  attributes: [AttributeInput!]
}

input UpdateCategoryInput {
  _id: ID!
  name: String
  attributes: [AttributeInput!]
}

input CreateMasterProductInput {
  masterProductName: String!
  sku: String!
  description: String
  categoryId: ID!
}

input UpdateMasterProductInput {
  _id: ID!
  masterProductName: String
  sku: String
  description: String
  categoryId: ID
}

input CreateSubProductInput {
  masterProductId: ID!
  subProductName: String
  attributes: [AttributeInput!]
  price: Decimal
  status: String
}

input UpdateSubProductInput {
  _id: ID!
  subProductName: String
  attributes: [AttributeInput!]
  price: Decimal
  status: String
}

type LoginResponse {
  access_token: String
  refresh_token: String
  token_type: String
  access_token_expires_at: DateTime
  refresh_token_expires_at: DateTime
}

type User {
  _id: ID!
  id: ID!
  email: String!
  firstName: String
  lastName: String
  role: String!
  lastLogoutAt: DateTime
  createdAt: DateTime
  updatedAt: DateTime
}

type UserPage {
  items: [User!]!
  totalCount: Int!
}

type Attribute {
  _id: String
  id: String
  attributeName: String
  value: String
}

type Category {
  _id: ID!
  id: ID!
  name: String!
  attributes: [Attribute!]
  createdAt: DateTime
  updatedAt: DateTime
}

type CategoryPage {
  items: [Category!]!
  totalCount: Int!
}

type CategorySnapshot {
  _id: ID!
  id: ID!
  name: String!
  attributes: [Attribute!]
}

type MasterProduct {
  _id: ID!
  id: ID!
  masterProductName: String!
  sku: String!
  description: String
  category: CategorySnapshot
  status: String!
  createdAt: DateTime
  updatedAt: DateTime
}

type MasterProductPage {
  items: [MasterProduct!]!
  totalCount: Int!
  minPrice: Decimal
  maxPrice: Decimal
}

type SubProduct {
  _id: ID!
  id: ID!
  masterProductId: ID!
  subProductName: String
  attributes: [Attribute!]
  price: Decimal
  status: String!
  createdAt: DateTime
  updatedAt: DateTime
}

type SubProductPage {
  items: [SubProduct!]!
  totalCount: Int!
}

type CascadeResult {
  archivedMasterProducts: Int!
  deletedSubProducts: Int!
  message: String
}

type Query {
  getAllUsers(paginationInput: PaginationInput, searchFields: [String!]): UserPage!
  userByEmail(email: String!): User!
  getAllCategories(paginationInput: PaginationInput, searchFields: [String!]): CategoryPage!
  getCategory(_id: ID!): Category!
  getAllMasterProduct(paginationInput: PaginationInput, searchFields: [String!], categoryIds: [ID!]): MasterProductPage!
  getMasterProduct(_id: ID!): MasterProduct!
  getAllSubProducts(paginationInput: PaginationInput, searchFields: [String!], masterProductIds: [ID!], categoryIds: [ID!]): SubProductPage!
  getOneSubProductById(_id: ID!): SubProduct!
}

type Mutation {
  login(userLoginInput: UserLoginInput!): LoginResponse!
  signup(createUserInput: CreateUserInput!): User!
  updateUser(updateUserInput: UpdateUserInput!): User!
  userLogout(email: String): String!
  createCategory(createCategoryInput: CreateCategoryInput!): Category!
  updateCategory(updateCategoryInput: UpdateCategoryInput!): Category!
  deleteCategory(_id: ID!): CascadeResult!
  createMasterProduct(createMasterProductInput: CreateMasterProductInput!): MasterProduct!
  updateMasterProductById(updateMasterProductInput: UpdateMasterProductInput!): MasterProduct!
  deleteMasterProductById(_id: ID!): MasterProduct!
  createSubProduct(createSubProductInput: CreateSubProductInput!): SubProduct!
  updateSubProductById(updateSubProductInput: UpdateSubProductInput!): SubProduct!
  deleteSubProductById(_id: ID!): SubProduct!
}
`

// LoadSchema parses the operation schema; it panics on a malformed definition
func LoadSchema() *ast.Schema {
	return gqlparser.MustLoadSchema(&ast.Source{Name: "schema.graphql", Input: schemaSDL})
}
