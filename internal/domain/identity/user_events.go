package identity

import "github.com/shopcore/backend/internal/domain/shared"

// AggregateTypeUser names the user aggregate in events
const AggregateTypeUser = "User"

const (
	EventTypeUserCreated   = "identity.user.created"
	EventTypeUserLoggedOut = "identity.user.logged_out"
)

// UserCreatedEvent is published after signup
type UserCreatedEvent struct {
	shared.BaseDomainEvent
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// NewUserCreatedEvent creates a new UserCreatedEvent
func NewUserCreatedEvent(user *User) *UserCreatedEvent {
	return &UserCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeUserCreated, AggregateTypeUser, user.ID),
		Email:           user.Email,
		Role:            user.Role,
	}
}

// UserLoggedOutEvent is published when all of a user's sessions are ended
type UserLoggedOutEvent struct {
	shared.BaseDomainEvent
	Email string `json:"email"`
}

// NewUserLoggedOutEvent creates a new UserLoggedOutEvent
func NewUserLoggedOutEvent(user *User) *UserLoggedOutEvent {
	return &UserLoggedOutEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeUserLoggedOut, AggregateTypeUser, user.ID),
		Email:           user.Email,
	}
}
