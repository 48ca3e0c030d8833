// Package sqlite é o store embutido de funcionários (DB_DRIVER=sqlite), sobre gorm.
package sqlite

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/patriciammarinskevi/GERADOR-RECIBOS/internal/domain"
	"github.com/patriciammarinskevi/GERADOR-RECIBOS/internal/domain/entity"
	"github.com/patriciammarinskevi/GERADOR-RECIBOS/internal/domain/repository"
)

// EmployeeModel linha da tabela funcionarios.
type EmployeeModel struct {
	ID        int64           `gorm:"primaryKey;autoIncrement"`
	Name      string          `gorm:"column:nome;not null"`
	TaxID     string          `gorm:"column:cpf;not null;uniqueIndex:idx_funcionarios_cpf"`
	Salary    decimal.Decimal `gorm:"column:salario;type:decimal(12,2);not null"`
	CreatedAt time.Time       `gorm:"not null"`
	UpdatedAt time.Time       `gorm:"not null"`
}

func (EmployeeModel) TableName() string {
	return "funcionarios"
}

// Open abre (ou cria) o arquivo SQLite e aplica a migração da tabela.
func Open(path string) (*gorm.DB, error) {
	db, err := gorm.Open(gormsqlite.Open(path), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("abrir sqlite %s: %w", path, err)
	}
	if err := db.AutoMigrate(&EmployeeModel{}); err != nil {
		return nil, fmt.Errorf("migrar funcionarios: %w", err)
	}
	return db, nil
}

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

type EmployeeRepo struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) *EmployeeRepo {
	return &EmployeeRepo{db: db}
}

func (r *EmployeeRepo) List(ctx context.Context) ([]*entity.Employee, error) {
	var rows []EmployeeModel
	if err := r.db.WithContext(ctx).Order("nome, id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list funcionarios: %w", err)
	}
	out := make([]*entity.Employee, 0, len(rows))
	for i := range rows {
		out = append(out, toEntity(&rows[i]))
	}
	return out, nil
}

func (r *EmployeeRepo) GetByID(ctx context.Context, id int64) (*entity.Employee, error) {
	var row EmployeeModel
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get funcionario: %w", err)
	}
	return toEntity(&row), nil
}

func (r *EmployeeRepo) Create(ctx context.Context, e *entity.Employee) error {
	row := EmployeeModel{Name: e.Name, TaxID: e.TaxID, Salary: e.Salary}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isDuplicate(err) {
			return domain.ErrDuplicateTaxID
		}
		return fmt.Errorf("insert funcionario: %w", err)
	}
	e.ID, e.CreatedAt, e.UpdatedAt = row.ID, row.CreatedAt, row.UpdatedAt
	return nil
}

func (r *EmployeeRepo) Update(ctx context.Context, e *entity.Employee) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row EmployeeModel
		if err := tx.First(&row, e.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return fmt.Errorf("get funcionario: %w", err)
		}
		row.Name, row.TaxID, row.Salary = e.Name, e.TaxID, e.Salary
		if err := tx.Save(&row).Error; err != nil {
			if isDuplicate(err) {
				return domain.ErrDuplicateTaxID
			}
			return fmt.Errorf("update funcionario: %w", err)
		}
		e.CreatedAt, e.UpdatedAt = row.CreatedAt, row.UpdatedAt
		return nil
	})
}

func (r *EmployeeRepo) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&EmployeeModel{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete funcionario: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// isDuplicate cobre o erro traduzido pelo gorm e a mensagem crua do driver.
func isDuplicate(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func toEntity(m *EmployeeModel) *entity.Employee {
	return &entity.Employee{
		ID:        m.ID,
		Name:      m.Name,
		TaxID:     m.TaxID,
		Salary:    m.Salary,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
