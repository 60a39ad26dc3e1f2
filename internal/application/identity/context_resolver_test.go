package identity

import (
	"context"
	"errors"
	"testing"

	"github.com/shopcore/backend/internal/domain/identity"
	"github.com/shopcore/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestBearerToken(t *testing.T) {
	tests := []struct {
		header string
		token  string
		ok     bool
	}{
		{"Bearer abc", "abc", true},
		{"bearer abc", "abc", true},
		{"  Bearer   abc  ", "abc", true},
		{"Basic abc", "", false},
		{"Bearer", "", false},
		{"Bearer    ", "", false},
		{"abc", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		token, ok := BearerToken(tt.header)
		assert.Equal(t, tt.ok, ok, "header %q", tt.header)
		assert.Equal(t, tt.token, token, "header %q", tt.header)
	}
}

func TestContextResolver_GetContextInfo(t *testing.T) {
	ctx := context.Background()

	t.Run("valid bearer token", func(t *testing.T) {
		f := newAuthFixture()
		resolver := NewContextResolver(f.service, zap.NewNop())
		user := f.newUser("ops@example.com", identity.RoleManager)
		f.users.On("FindByEmail", ctx, "ops@example.com").Return(user, nil)
		tokens, err := f.service.issue(user)
		require.NoError(t, err)

		info, err := resolver.GetContextInfo(ctx, "Bearer "+tokens.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, identity.RoleManager, info.Role)
		assert.Equal(t, user.ID, info.UserID)
		assert.Equal(t, "ops@example.com", info.Email)
	})

	t.Run("missing header", func(t *testing.T) {
		resolver := NewContextResolver(newAuthFixture().service, zap.NewNop())
		_, err := resolver.GetContextInfo(ctx, "")
		assert.ErrorIs(t, err, shared.ErrUnauthenticated)
	})

	t.Run("wrong scheme", func(t *testing.T) {
		resolver := NewContextResolver(newAuthFixture().service, zap.NewNop())
		_, err := resolver.GetContextInfo(ctx, "Token abc")
		assert.ErrorIs(t, err, shared.ErrUnauthenticated)
	})

	t.Run("unrecognized stored role never defaults", func(t *testing.T) {
		f := newAuthFixture()
		resolver := NewContextResolver(f.service, zap.NewNop())
		user := f.newUser("odd@example.com", identity.RoleCustomer)
		tokens, err := f.service.issue(user)
		require.NoError(t, err)
		user.Role = identity.Role("GUEST")
		f.users.On("FindByEmail", ctx, "odd@example.com").Return(user, nil)

		_, err = resolver.GetContextInfo(ctx, "Bearer "+tokens.AccessToken)
		assert.ErrorIs(t, err, shared.ErrUnauthenticated)
	})
}

func TestContextResolver_StoreFailureIsNotUnauthenticated(t *testing.T) {
	ctx := context.Background()
	f := newAuthFixture()
	resolver := NewContextResolver(f.service, zap.NewNop())
	user := f.newUser("ops@example.com", identity.RoleManager)
	tokens, err := f.service.issue(user)
	require.NoError(t, err)
	storeErr := errors.New("connection refused")
	f.users.On("FindByEmail", ctx, "ops@example.com").Return(nil, storeErr)

	_, err = resolver.GetContextInfo(ctx, "Bearer "+tokens.AccessToken)
	require.Error(t, err)
	assert.ErrorIs(t, err, storeErr)
	assert.NotErrorIs(t, err, shared.ErrUnauthenticated)
	_, isDomain := shared.AsDomainError(err)
	assert.False(t, isDomain)
}

func TestContextInfoRoundTrip(t *testing.T) {
	_, ok := ContextInfoFrom(context.Background())
	assert.False(t, ok)

	info := &ContextInfo{Role: identity.RoleAdmin, Email: "a@example.com"}
	got, ok := ContextInfoFrom(WithContextInfo(context.Background(), info))
	require.True(t, ok)
	assert.Same(t, info, got)
}
