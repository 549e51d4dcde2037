package domain

type Role string

const (
	RoleAnonymous Role = "anonymous"
	RoleStudent   Role = "student"
	RoleAdmin     Role = "admin"
)

// User carries the capability a request acts with. The zero value is
// anonymous.
type User struct {
	ID    string
	Name  string
	Email string
	Role  Role
}

func (u User) IsAuthenticated() bool {
	return u.Role == RoleStudent || u.Role == RoleAdmin
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
