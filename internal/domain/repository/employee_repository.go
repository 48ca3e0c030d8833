package repository

import (
	"context"

	"github.com/patriciammarinskevi/GERADOR-RECIBOS/internal/domain/entity"
)

// EmployeeRepository define o porto de persistência para Employee.
//
// Contrato dos adaptadores:
//   - List devolve os funcionários ordenados por nome (e id como desempate).
//   - GetByID devolve (nil, nil) quando o id não existe.
//   - Create preenche ID/CreatedAt/UpdatedAt; CPF repetido → domain.ErrDuplicateTaxID.
//   - Update e Delete devolvem domain.ErrNotFound quando o id não existe.
type EmployeeRepository interface {
	List(ctx context.Context) ([]*entity.Employee, error)
	GetByID(ctx context.Context, id int64) (*entity.Employee, error)
	Create(ctx context.Context, employee *entity.Employee) error
	Update(ctx context.Context, employee *entity.Employee) error
	Delete(ctx context.Context, id int64) error
}
