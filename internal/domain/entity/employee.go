package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee representa um funcionário cadastrado para a folha de pagamento.
// O ID é atribuído pelo store; TaxID (CPF) é único entre todos os funcionários.
type Employee struct {
	ID        int64
	Name      string
	TaxID     string
	Salary    decimal.Decimal // salário base, nunca negativo
	CreatedAt time.Time
	UpdatedAt time.Time
}
