package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/patriciammarinskevi/GERADOR-RECIBOS/internal/domain"
	"github.com/patriciammarinskevi/GERADOR-RECIBOS/internal/domain/entity"
	"github.com/patriciammarinskevi/GERADOR-RECIBOS/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// EmployeeRepo implementação de EmployeeRepository sobre PostgreSQL (usável com pool ou tx).
type EmployeeRepo struct {
	q Querier
}

// NewEmployeeRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewEmployeeRepository(q Querier) *EmployeeRepo {
	return &EmployeeRepo{q: q}
}

const employeeColumns = `id, nome, cpf, salario, created_at, updated_at`

// List devolve todos os funcionários ordenados por nome.
func (r *EmployeeRepo) List(ctx context.Context) ([]*entity.Employee, error) {
	rows, err := r.q.Query(ctx, `SELECT `+employeeColumns+` FROM funcionarios ORDER BY nome, id`)
	if err != nil {
		return nil, fmt.Errorf("list funcionarios: %w", err)
	}
	defer rows.Close()

	var list []*entity.Employee
	for rows.Next() {
		var e entity.Employee
		if err := rows.Scan(&e.ID, &e.Name, &e.TaxID, &e.Salary, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan funcionario: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// GetByID obtém um funcionário; (nil, nil) se não existir.
func (r *EmployeeRepo) GetByID(ctx context.Context, id int64) (*entity.Employee, error) {
	var e entity.Employee
	err := r.q.QueryRow(ctx, `SELECT `+employeeColumns+` FROM funcionarios WHERE id = $1`, id).
		Scan(&e.ID, &e.Name, &e.TaxID, &e.Salary, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get funcionario: %w", err)
	}
	return &e, nil
}

// Create persiste um novo funcionário e preenche o id gerado.
func (r *EmployeeRepo) Create(ctx context.Context, e *entity.Employee) error {
	now := time.Now().UTC()
	err := r.q.QueryRow(ctx, `
		INSERT INTO funcionarios (nome, cpf, salario, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $4)
		RETURNING id, created_at, updated_at`,
		e.Name, e.TaxID, e.Salary, now,
	).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateTaxID
		}
		return fmt.Errorf("insert funcionario: %w", err)
	}
	return nil
}

// Update substitui nome, CPF e salário.
func (r *EmployeeRepo) Update(ctx context.Context, e *entity.Employee) error {
	err := r.q.QueryRow(ctx, `
		UPDATE funcionarios SET nome = $2, cpf = $3, salario = $4, updated_at = $5
		WHERE id = $1
		RETURNING created_at, updated_at`,
		e.ID, e.Name, e.TaxID, e.Salary, time.Now().UTC(),
	).Scan(&e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		if isUniqueViolation(err) {
			return domain.ErrDuplicateTaxID
		}
		return fmt.Errorf("update funcionario: %w", err)
	}
	return nil
}

// Delete remove um funcionário por id.
func (r *EmployeeRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM funcionarios WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete funcionario: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
