package auth

import (
	"context"

	"github.com/ssv8317/canteen-ordering/internal/core/domain"
)

// MockAuthenticator resolves a fixed token table instead of calling an
// identity service. It satisfies port.Authenticator, so a real
// implementation can replace it without handler changes.
type MockAuthenticator struct {
	users map[string]domain.User
}

func NewMockAuthenticator() *MockAuthenticator {
	return &MockAuthenticator{
		users: map[string]domain.User{
			"student-token": {
				ID:    "123",
				Name:  "John Doe",
				Email: "john@example.com",
				Role:  domain.RoleStudent,
			},
			"admin-token": {
				ID:    "124",
				Name:  "Canteen Admin",
				Email: "admin@example.com",
				Role:  domain.RoleAdmin,
			},
		},
	}
}

func (a *MockAuthenticator) Authenticate(_ context.Context, token string) (domain.User, error) {
	if user, ok := a.users[token]; ok {
		return user, nil
	}
	return domain.User{Role: domain.RoleAnonymous}, nil
}
