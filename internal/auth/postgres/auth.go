package postgres

import (
	"database/sql"
	"fmt"

	"github.com/frahmantamala/employee-portal/internal/auth"
	userDatamodel "github.com/frahmantamala/employee-portal/internal/core/datamodel/user"
	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetCredentialByUsername joins the user to its employee so status and role
// are decided in one round trip.
func (r *Repository) GetCredentialByUsername(username string) (*auth.Credential, error) {
	var cred auth.Credential
	query := `
		SELECT u.user_id, u.emp_id, u.username, u.password_hash, e.role, e.status
		FROM users u
		JOIN employees e ON u.emp_id = e.emp_id
		WHERE u.username = ?`

	row := r.db.Raw(query, username).Row()
	if err := row.Scan(&cred.UserID, &cred.EmpID, &cred.Username, &cred.PasswordHash, &cred.Role, &cred.EmployeeStatus); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("user not found")
		}
		return nil, err
	}
	return &cred, nil
}

func (r *Repository) GetActiveEmployeeRole(empID int64) (string, error) {
	var role string
	query := `SELECT role FROM employees WHERE emp_id = ? AND status = 'active'`

	row := r.db.Raw(query, empID).Row()
	if err := row.Scan(&role); err != nil {
		if err == sql.ErrNoRows {
			return "", nil
		}
		return "", err
	}
	return role, nil
}

func (r *Repository) UserExistsForEmployee(empID int64) (bool, error) {
	var count int64
	if err := r.db.Raw(`SELECT COUNT(1) FROM users WHERE emp_id = ?`, empID).Scan(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *Repository) UsernameTaken(username string) (bool, error) {
	var count int64
	if err := r.db.Raw(`SELECT COUNT(1) FROM users WHERE username = ?`, username).Scan(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *Repository) CreateUser(empID int64, username, passwordHash, role string) (int64, error) {
	u := &userDatamodel.User{
		EmpID:        empID,
		Username:     username,
		PasswordHash: passwordHash,
		Role:         role,
	}
	if err := r.db.Create(u).Error; err != nil {
		return 0, err
	}
	return u.UserID, nil
}
