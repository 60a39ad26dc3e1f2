package identity

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopcore/backend/internal/domain/shared"
)

// UserSearchFields are the fields user listings may search in
var UserSearchFields = []string{"email", "firstName", "lastName"}

// UserRepository defines the interface for user persistence
type UserRepository interface {
	// Create inserts a new user; a duplicate email returns shared.ErrAlreadyExists
	Create(ctx context.Context, user *User) error

	// Update persists profile and logout changes
	Update(ctx context.Context, user *User) error

	// FindByID finds a user by ID
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)

	// FindByEmail finds a user by normalized email
	FindByEmail(ctx context.Context, email string) (*User, error)

	// ExistsByEmail checks if an email is taken
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// FindAll returns the users selected by the plan
	FindAll(ctx context.Context, plan shared.ListingPlan) ([]User, error)

	// Count returns the number of users matching the plan predicate
	Count(ctx context.Context, plan shared.ListingPlan) (int64, error)
}

// PasswordHasher hashes and compares plaintext passwords
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	// Compare reports whether plaintext matches digest; an error means the digest is unusable
	Compare(digest, plaintext string) (bool, error)
}
