package model

type Role string

// Role wire values match the persisted user records.
const (
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "empleado"
)

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleEmployee
}

// User is a directory entry keyed by username (the key lives outside the
// struct, mirroring the persisted JSON object). Passwords are stored and
// compared in plain text: parity with the system this replaces.
type User struct {
	Password string `json:"password"`
	Role     Role   `json:"role"`
	Name     string `json:"nombre"`
}
