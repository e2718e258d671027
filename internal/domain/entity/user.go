package entity

import "time"

// Roles de usuario del back-office.
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleStaff   = "staff"
)

// User usuario del back-office del hotel. Su nombre es el que se estampa en
// approved_by / rejected_by y en los asientos del libro de stock.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Department   string // housekeeping, kitchen, front desk...
	Role         string
	Status       string // active | inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
