package models

// User is an employee account. Password holds the bcrypt hash; handlers
// blank it before writing a user into a response.
type User struct {
	ID       int    `json:"id_usuario"`
	Name     string `json:"nome"`
	Email    string `json:"email"`
	Password string `json:"senha,omitempty"`
	Role     Role   `json:"cargo"`
	YardName string `json:"patio,omitempty"`
}
