// seed importa funcionários de um CSV separado por ";" (nome;cpf;salario)
// para o store configurado (DB_DRIVER). CPF já cadastrado é ignorado.
//
// Uso: go run ./cmd/seed [-latin1] funcionarios.csv
// Salário aceita "1.234,56" ou "1234.56". A primeira linha pode ser cabeçalho.
package main

import (
	"context"
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/patriciammarinskevi/GERADOR-RECIBOS/internal/application/dto"
	"github.com/patriciammarinskevi/GERADOR-RECIBOS/internal/application/usecase"
	"github.com/patriciammarinskevi/GERADOR-RECIBOS/internal/domain"
	"github.com/patriciammarinskevi/GERADOR-RECIBOS/internal/domain/repository"
	"github.com/patriciammarinskevi/GERADOR-RECIBOS/internal/infrastructure/postgres"
	"github.com/patriciammarinskevi/GERADOR-RECIBOS/internal/infrastructure/sqlite"
	"github.com/patriciammarinskevi/GERADOR-RECIBOS/pkg/config"
	"github.com/patriciammarinskevi/GERADOR-RECIBOS/pkg/logger"
)

func main() {
	latin1 := flag.Bool("latin1", false, "arquivo em ISO-8859-1 (exportado do Excel)")
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "uso: seed [-latin1] funcionarios.csv")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Carregar configuração: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	f, err := os.Open(flag.Arg(0))
	if err != nil {
		log.Fatal().Err(err).Msg("abrir CSV")
	}
	defer f.Close()

	var r io.Reader = f
	if *latin1 {
		r = transform.NewReader(f, charmap.ISO8859_1.NewDecoder())
	}
	rows, err := parseCSV(r)
	if err != nil {
		log.Fatal().Err(err).Msg("ler CSV")
	}

	ctx := context.Background()
	repo, closeDB, err := openStore(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir store")
	}
	defer closeDB()

	uc := usecase.NewEmployeeUseCase(repo)
	var created, skipped int
	for _, row := range rows {
		_, err := uc.Create(ctx, row.req)
		switch {
		case err == nil:
			created++
		case errors.Is(err, domain.ErrDuplicateTaxID):
			skipped++
			log.Warn().Int("linha", row.line).Str("cpf", row.req.TaxID).Msg("CPF já cadastrado; ignorado")
		case errors.Is(err, domain.ErrInvalidInput):
			skipped++
			log.Warn().Err(err).Int("linha", row.line).Msg("linha inválida; ignorada")
		default:
			log.Fatal().Err(err).Int("linha", row.line).Msg("gravar funcionário")
		}
	}
	log.Info().Int("criados", created).Int("ignorados", skipped).Msg("importação concluída")
}

type csvRow struct {
	line int
	req  dto.EmployeeRequest
}

// parseCSV lê nome;cpf;salario. Um cabeçalho (primeira célula "nome") é pulado.
func parseCSV(r io.Reader) ([]csvRow, error) {
	cr := csv.NewReader(r)
	cr.Comma = ';'
	cr.FieldsPerRecord = 3
	cr.TrimLeadingSpace = true

	var out []csvRow
	for line := 1; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		if line == 1 {
			rec[0] = strings.TrimPrefix(rec[0], "\ufeff")
			if strings.EqualFold(strings.TrimSpace(rec[0]), "nome") {
				continue
			}
		}
		salary, err := parseSalary(rec[2])
		if err != nil {
			return nil, fmt.Errorf("linha %d: salário %q: %w", line, rec[2], err)
		}
		out = append(out, csvRow{line: line, req: dto.EmployeeRequest{
			Name:   strings.TrimSpace(rec[0]),
			TaxID:  strings.TrimSpace(rec[1]),
			Salary: salary,
		}})
	}
}

// parseSalary aceita notação brasileira ("R$ 1.234,56") ou com ponto decimal ("1234.56").
func parseSalary(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "R$"))
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}
	return decimal.NewFromString(s)
}

func openStore(ctx context.Context, cfg *config.Config) (repository.EmployeeRepository, func(), error) {
	if cfg.DB.Driver == "sqlite" {
		db, err := sqlite.Open(cfg.DB.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return sqlite.NewEmployeeRepository(db), func() {
			if sqlDB, err := db.DB(); err == nil {
				_ = sqlDB.Close()
			}
		}, nil
	}
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return nil, nil, err
	}
	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		pool.Close()
		return nil, nil, err
	}
	return postgres.NewEmployeeRepository(pool), pool.Close, nil
}
