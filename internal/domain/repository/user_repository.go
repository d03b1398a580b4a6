package repository

import "github.com/jhoicas/workvibe-api/internal/domain/entity"

// UserRepository puerto de persistencia para usuarios.
// Los métodos de búsqueda devuelven (nil, nil) cuando no hay coincidencia.
type UserRepository interface {
	// Create persiste el usuario y asigna el ID generado.
	Create(u *entity.User) error
	GetByID(id int64) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	// GetByName busca por nombre exacto. Si dos usuarios comparten nombre
	// devuelve domain.ErrAmbiguousName: el modelo referencia empleados por
	// nombre y no se puede elegir uno en silencio.
	GetByName(name string) (*entity.User, error)
	// GetEmployeeByName igual que GetByName pero restringido a role=employee.
	GetEmployeeByName(name string) (*entity.User, error)
	// GetManagerByCompany devuelve el manager de la empresa (se asume uno solo;
	// si hubiera varios se toma el de menor ID).
	GetManagerByCompany(company string) (*entity.User, error)
	ListEmployeesByCompany(company string) ([]*entity.User, error)
}
