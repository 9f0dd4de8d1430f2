package model

type UserRole string

const (
	UserRoleAdmin UserRole = "admin"
	UserRoleRH    UserRole = "rh"
)

type User struct {
	ID    int      `json:"id"`
	Name  string   `json:"name"`
	Email string   `json:"email"`
	Role  UserRole `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// UserInput is the payload of the admin user form. Password carries the
// literal "unchanged" when an edit leaves the password blank.
type UserInput struct {
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Role     UserRole `json:"role"`
	Password string   `json:"password"`
}

// PasswordUnchanged is the sentinel an edit submits in place of a new password.
const PasswordUnchanged = "unchanged"

type LogEntry struct {
	ID        int    `json:"id"`
	Message   string `json:"message"`
	CreatedAt string `json:"created_at"`
}
