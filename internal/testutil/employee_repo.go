// Package testutil dublês em memória compartilhados pelos testes.
package testutil

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/patriciammarinskevi/GERADOR-RECIBOS/internal/domain"
	"github.com/patriciammarinskevi/GERADOR-RECIBOS/internal/domain/entity"
)

// EmployeeRepo implementação em memória de repository.EmployeeRepository.
// Err, quando definido, é devolvido por todas as operações.
type EmployeeRepo struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]entity.Employee
	Err    error
}

func NewEmployeeRepo(seed ...*entity.Employee) *EmployeeRepo {
	r := &EmployeeRepo{rows: map[int64]entity.Employee{}}
	for _, e := range seed {
		_ = r.Create(context.Background(), e)
	}
	return r
}

func (r *EmployeeRepo) List(_ context.Context) ([]*entity.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	out := make([]*entity.Employee, 0, len(r.rows))
	for _, e := range r.rows {
		e := e
		out = append(out, &e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *EmployeeRepo) GetByID(_ context.Context, id int64) (*entity.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	e, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	return &e, nil
}

func (r *EmployeeRepo) Create(_ context.Context, e *entity.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	if r.taxIDTaken(e.TaxID, 0) {
		return domain.ErrDuplicateTaxID
	}
	r.nextID++
	now := time.Now().UTC()
	e.ID, e.CreatedAt, e.UpdatedAt = r.nextID, now, now
	r.rows[e.ID] = *e
	return nil
}

func (r *EmployeeRepo) Update(_ context.Context, e *entity.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	old, ok := r.rows[e.ID]
	if !ok {
		return domain.ErrNotFound
	}
	if r.taxIDTaken(e.TaxID, e.ID) {
		return domain.ErrDuplicateTaxID
	}
	e.CreatedAt, e.UpdatedAt = old.CreatedAt, time.Now().UTC()
	r.rows[e.ID] = *e
	return nil
}

func (r *EmployeeRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	if _, ok := r.rows[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.rows, id)
	return nil
}

// Len número de registros guardados.
func (r *EmployeeRepo) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.rows)
}

func (r *EmployeeRepo) taxIDTaken(taxID string, except int64) bool {
	for id, e := range r.rows {
		if id != except && e.TaxID == taxID {
			return true
		}
	}
	return false
}
