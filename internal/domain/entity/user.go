package entity

// Roles permitidos. El rol es inmutable después del registro: no existe
// ningún endpoint que lo modifique.
const (
	RoleManager  = "manager"
	RoleEmployee = "employee"
)

// ValidRole indica si el rol es uno de los dos permitidos.
func ValidRole(role string) bool {
	return role == RoleManager || role == RoleEmployee
}

// User cuenta de la plataforma. El password se guarda siempre hasheado
// (bcrypt); el texto plano nunca se persiste ni se devuelve.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	Company      string
	Role         string
}
