package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patriciammarinskevi/GERADOR-RECIBOS/internal/domain"
	"github.com/patriciammarinskevi/GERADOR-RECIBOS/internal/domain/entity"
	"github.com/patriciammarinskevi/GERADOR-RECIBOS/internal/infrastructure/sqlite"
)

func newRepo(t *testing.T) *sqlite.EmployeeRepo {
	t.Helper()
	db, err := sqlite.Open(filepath.Join(t.TempDir(), "recibos.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return sqlite.NewEmployeeRepository(db)
}

func employee(name, cpf, salary string) *entity.Employee {
	return &entity.Employee{Name: name, TaxID: cpf, Salary: decimal.RequireFromString(salary)}
}

func TestCreateAndGet(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	e := employee("Ana Lima", "111.222.333-44", "2500.50")
	require.NoError(t, repo.Create(ctx, e))
	assert.NotZero(t, e.ID)
	assert.False(t, e.CreatedAt.IsZero())

	got, err := repo.GetByID(ctx, e.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Ana Lima", got.Name)
	assert.True(t, decimal.RequireFromString("2500.50").Equal(got.Salary))

	missing, err := repo.GetByID(ctx, 9999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestCreate_CPFDuplicadoMantemUmRegistro(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, employee("Ana", "123", "100")))
	err := repo.Create(ctx, employee("Outra Ana", "123", "200"))
	assert.ErrorIs(t, err, domain.ErrDuplicateTaxID)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Ana", list[0].Name)
}

func TestUpdate(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	a := employee("Ana", "1", "100")
	b := employee("Bruno", "2", "200")
	require.NoError(t, repo.Create(ctx, a))
	require.NoError(t, repo.Create(ctx, b))

	a.Name, a.Salary = "Ana Paula", decimal.NewFromInt(150)
	require.NoError(t, repo.Update(ctx, a))
	got, err := repo.GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana Paula", got.Name)
	assert.True(t, decimal.NewFromInt(150).Equal(got.Salary))

	b.TaxID = "1"
	assert.ErrorIs(t, repo.Update(ctx, b), domain.ErrDuplicateTaxID)
}

func TestUpdateInexistenteNaoAlteraStore(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, employee("Ana", "1", "100")))

	err := repo.Update(ctx, &entity.Employee{ID: 42, Name: "X", TaxID: "9", Salary: decimal.Zero})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Ana", list[0].Name)
}

func TestDelete(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	e := employee("Ana", "1", "100")
	require.NoError(t, repo.Create(ctx, e))

	require.NoError(t, repo.Delete(ctx, e.ID))
	assert.ErrorIs(t, repo.Delete(ctx, e.ID), domain.ErrNotFound)
}

func TestList_OrdenadoPorNome(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	for i, n := range []string{"Carlos", "Ana", "Bruno"} {
		require.NoError(t, repo.Create(ctx, employee(n, string(rune('a'+i)), "10")))
	}
	list, err := repo.List(ctx)
	require.NoError(t, err)
	names := make([]string, 0, len(list))
	for _, e := range list {
		names = append(names, e.Name)
	}
	assert.Equal(t, []string{"Ana", "Bruno", "Carlos"}, names)
}
