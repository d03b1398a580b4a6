package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/workvibe-api/internal/domain"
	"github.com/jhoicas/workvibe-api/internal/domain/entity"
	"github.com/jhoicas/workvibe-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios. Pasar pool o tx (Querier).
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

const userColumns = `id, name, email, password, company, role`

// Create persiste un nuevo usuario y asigna el ID generado.
func (r *UserRepo) Create(u *entity.User) error {
	query := `
		INSERT INTO users (name, email, password, company, role)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		u.Name, u.Email, u.PasswordHash, u.Company, u.Role,
	).Scan(&u.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID.
func (r *UserRepo) GetByID(id int64) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.scanOne(query, "get user by id", id)
}

// GetByEmail obtiene un usuario por email.
func (r *UserRepo) GetByEmail(email string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return r.scanOne(query, "get user by email", email)
}

// GetByName obtiene un usuario por nombre exacto. Si hay más de uno devuelve
// ErrAmbiguousName: los feedbacks referencian empleados por nombre y no se
// puede resolver un duplicado en silencio.
func (r *UserRepo) GetByName(name string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE name = $1 ORDER BY id LIMIT 2`
	return r.scanAmbiguous(query, "get user by name", name)
}

// GetEmployeeByName igual que GetByName pero restringido a role=employee.
func (r *UserRepo) GetEmployeeByName(name string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE name = $1 AND role = 'employee' ORDER BY id LIMIT 2`
	return r.scanAmbiguous(query, "get employee by name", name)
}

// GetManagerByCompany devuelve el manager de la empresa (el de menor ID si
// hubiera más de uno; el modelo asume uno solo por empresa).
func (r *UserRepo) GetManagerByCompany(company string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE company = $1 AND role = 'manager' ORDER BY id LIMIT 1`
	return r.scanOne(query, "get manager by company", company)
}

// ListEmployeesByCompany lista los empleados de una empresa, id ascendente.
func (r *UserRepo) ListEmployeesByCompany(company string) ([]*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE company = $1 AND role = 'employee' ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, company)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Company, &u.Role); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

func (r *UserRepo) scanOne(query, op string, args ...any) (*entity.User, error) {
	var u entity.User
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Company, &u.Role,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &u, nil
}

// scanAmbiguous espera 0 o 1 filas; con 2 devuelve ErrAmbiguousName.
func (r *UserRepo) scanAmbiguous(query, op string, args ...any) (*entity.User, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()
	var found []*entity.User
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Company, &u.Role); err != nil {
			return nil, fmt.Errorf("%s scan: %w", op, err)
		}
		found = append(found, &u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s rows: %w", op, err)
	}
	switch len(found) {
	case 0:
		return nil, nil
	case 1:
		return found[0], nil
	default:
		return nil, domain.ErrAmbiguousName
	}
}
