package postgres

import (
	"context"
	"fmt"
	"time"

	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/patriciammarinskevi/GERADOR-RECIBOS/pkg/config"
)

// Querier é o subconjunto comum a *pgxpool.Pool e pgx.Tx usado pelos repositórios.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// NewPool cria um pool de conexões PostgreSQL a partir da configuração da aplicação.
// DATABASE_URL tem prioridade; sem ele o DSN é montado de DB_HOST, DB_PORT, etc.
func NewPool(ctx context.Context, cfg config.DBConfig) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("parse DSN: %w", err)
	}

	// Uma única folha de pagamento: poucas conexões bastam.
	poolConfig.MaxConns = 10
	poolConfig.MinConns = 1
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = 30 * time.Minute
	poolConfig.HealthCheckPeriod = time.Minute

	// Codec NUMERIC -> shopspring/decimal em todas as conexões do pool.
	poolConfig.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("criar pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping DB: %w", err)
	}
	return pool, nil
}

const schemaDDL = `
CREATE TABLE IF NOT EXISTS funcionarios (
	id         BIGSERIAL PRIMARY KEY,
	nome       TEXT          NOT NULL,
	cpf        TEXT          NOT NULL,
	salario    NUMERIC(12,2) NOT NULL DEFAULT 0 CHECK (salario >= 0),
	created_at TIMESTAMPTZ   NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ   NOT NULL DEFAULT now(),
	CONSTRAINT funcionarios_cpf_key UNIQUE (cpf)
)`

// EnsureSchema cria a tabela de funcionários se ainda não existir.
func EnsureSchema(ctx context.Context, q Querier) error {
	if _, err := q.Exec(ctx, schemaDDL); err != nil {
		return fmt.Errorf("criar tabela funcionarios: %w", err)
	}
	return nil
}
