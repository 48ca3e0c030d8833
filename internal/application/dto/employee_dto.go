package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// EmployeeRequest body de POST /api/funcionarios e PUT /api/funcionarios/:id.
// O PUT substitui os três campos.
type EmployeeRequest struct {
	Name   string          `json:"nome" validate:"required,max=200"`
	TaxID  string          `json:"cpf" validate:"required,max=20"`
	Salary decimal.Decimal `json:"salario"`
}

// EmployeeResponse funcionário nas respostas.
type EmployeeResponse struct {
	ID        int64           `json:"id"`
	Name      string          `json:"nome"`
	TaxID     string          `json:"cpf"`
	Salary    decimal.Decimal `json:"salario"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
