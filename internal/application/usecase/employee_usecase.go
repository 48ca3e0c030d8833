package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/patriciammarinskevi/GERADOR-RECIBOS/internal/application/dto"
	"github.com/patriciammarinskevi/GERADOR-RECIBOS/internal/domain"
	"github.com/patriciammarinskevi/GERADOR-RECIBOS/internal/domain/entity"
	"github.com/patriciammarinskevi/GERADOR-RECIBOS/internal/domain/repository"
)

// EmployeeUseCase casos de uso CRUD de funcionários.
type EmployeeUseCase struct {
	repo repository.EmployeeRepository
}

// NewEmployeeUseCase constrói o caso de uso com o porto de persistência.
func NewEmployeeUseCase(repo repository.EmployeeRepository) *EmployeeUseCase {
	return &EmployeeUseCase{repo: repo}
}

// List devolve todos os funcionários na ordem do store (por nome).
func (uc *EmployeeUseCase) List(ctx context.Context) ([]dto.EmployeeResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, storeErr(err)
	}
	out := make([]dto.EmployeeResponse, 0, len(list))
	for _, e := range list {
		out = append(out, toEmployeeResponse(e))
	}
	return out, nil
}

// GetByID devolve um funcionário ou domain.ErrNotFound.
func (uc *EmployeeUseCase) GetByID(ctx context.Context, id int64) (*dto.EmployeeResponse, error) {
	e, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, storeErr(err)
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}
	out := toEmployeeResponse(e)
	return &out, nil
}

// Create cadastra um funcionário. CPF repetido → domain.ErrDuplicateTaxID.
func (uc *EmployeeUseCase) Create(ctx context.Context, in dto.EmployeeRequest) (*dto.EmployeeResponse, error) {
	employee, err := employeeFromRequest(in)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, employee); err != nil {
		return nil, storeErr(err)
	}
	out := toEmployeeResponse(employee)
	return &out, nil
}

// Update substitui nome, CPF e salário. Id inexistente → domain.ErrNotFound.
func (uc *EmployeeUseCase) Update(ctx context.Context, id int64, in dto.EmployeeRequest) (*dto.EmployeeResponse, error) {
	if id <= 0 {
		return nil, domain.ErrNotFound
	}
	employee, err := employeeFromRequest(in)
	if err != nil {
		return nil, err
	}
	employee.ID = id
	if err := uc.repo.Update(ctx, employee); err != nil {
		return nil, storeErr(err)
	}
	out := toEmployeeResponse(employee)
	return &out, nil
}

// Delete remove um funcionário. Id inexistente → domain.ErrNotFound.
func (uc *EmployeeUseCase) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return domain.ErrNotFound
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return storeErr(err)
	}
	return nil
}

func employeeFromRequest(in dto.EmployeeRequest) (*entity.Employee, error) {
	name := strings.TrimSpace(in.Name)
	taxID := strings.TrimSpace(in.TaxID)
	if name == "" || taxID == "" {
		return nil, fmt.Errorf("%w: nome e cpf são obrigatórios", domain.ErrInvalidInput)
	}
	if in.Salary.IsNegative() {
		return nil, fmt.Errorf("%w: salário não pode ser negativo", domain.ErrInvalidInput)
	}
	return &entity.Employee{
		Name:   name,
		TaxID:  taxID,
		Salary: in.Salary.Round(2),
	}, nil
}

// storeErr preserva os erros de domínio conhecidos e classifica o resto como falha de persistência.
func storeErr(err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrDuplicateTaxID),
		errors.Is(err, domain.ErrStore):
		return err
	default:
		return fmt.Errorf("%w: %v", domain.ErrStore, err)
	}
}

func toEmployeeResponse(e *entity.Employee) dto.EmployeeResponse {
	return dto.EmployeeResponse{
		ID:        e.ID,
		Name:      e.Name,
		TaxID:     e.TaxID,
		Salary:    e.Salary,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}
