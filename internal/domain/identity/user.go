package identity

import (
	"regexp"
	"strings"
	"time"

	"github.com/shopcore/backend/internal/domain/shared"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// User is the aggregate root for identity
type User struct {
	shared.BaseAggregateRoot
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	Role         Role

	// SessionVersion is embedded in issued tokens and bumped on logout
	SessionVersion int
	LastLogoutAt   *time.Time
}

// NewUser creates a user from an already hashed password
func NewUser(email, passwordHash, firstName, lastName string, role Role) (*User, error) {
	email = NormalizeEmail(email)
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if passwordHash == "" {
		return nil, shared.NewFieldError("password", "Password hash cannot be empty")
	}
	if role == "" {
		role = RoleCustomer
	}
	if !role.IsValid() {
		return nil, shared.NewFieldError("role", "Unknown role: "+string(role))
	}

	user := &User{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Email:             email,
		PasswordHash:      passwordHash,
		FirstName:         strings.TrimSpace(firstName),
		LastName:          strings.TrimSpace(lastName),
		Role:              role,
	}
	user.AddDomainEvent(NewUserCreatedEvent(user))
	return user, nil
}

// UpdateProfile applies the non-nil fields
func (u *User) UpdateProfile(firstName, lastName *string, role *Role) error {
	if role != nil {
		if !role.IsValid() {
			return shared.NewFieldError("role", "Unknown role: "+string(*role))
		}
		u.Role = *role
	}
	if firstName != nil {
		u.FirstName = strings.TrimSpace(*firstName)
	}
	if lastName != nil {
		u.LastName = strings.TrimSpace(*lastName)
	}
	u.Touch()
	return nil
}

// MarkLoggedOut ends every session issued so far
func (u *User) MarkLoggedOut(at time.Time) {
	u.SessionVersion++
	u.LastLogoutAt = &at
	u.Touch()
	u.AddDomainEvent(NewUserLoggedOutEvent(u))
}

// SessionRevoked reports whether a token carrying sessionVersion was issued before the last logout
func (u *User) SessionRevoked(sessionVersion int) bool {
	return sessionVersion != u.SessionVersion
}

// FullName joins first and last name
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// NormalizeEmail trims and lower-cases an email address
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validateEmail(email string) error {
	if email == "" {
		return shared.NewFieldError("email", "Email cannot be empty")
	}
	if len(email) > 200 {
		return shared.NewFieldError("email", "Email cannot exceed 200 characters")
	}
	if !emailRegex.MatchString(email) {
		return shared.NewFieldError("email", "Invalid email format")
	}
	return nil
}

// ValidatePassword enforces the plaintext password rules used at signup
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return shared.NewFieldError("password", "Password must be at least 8 characters")
	}
	if len(password) > 72 {
		return shared.NewFieldError("password", "Password cannot exceed 72 characters")
	}
	return nil
}
