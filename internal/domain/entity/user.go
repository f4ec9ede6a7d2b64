package entity

// User usuario que inicia sesión en el dashboard.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
}
