package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patriciammarinskevi/GERADOR-RECIBOS/pkg/config"
)

// chdir muda o diretório de trabalho e o restaura ao fim do teste
// (equivalente a t.Chdir, indisponível no toolchain Go 1.21).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestLoad_ValoresPadrao(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "postgres", cfg.DB.Driver)
	assert.Equal(t, 5432, cfg.DB.Port)
	assert.Equal(t, "maroto", cfg.Receipt.Engine)
	assert.Equal(t, "0.0.0.0:3000", cfg.HTTP.Addr())
	assert.Empty(t, cfg.JWT.Secret, "sem JWT_SECRET a autenticação fica desativada")
}

func TestLoad_VariaveisDeAmbiente(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("SQLITE_PATH", "/tmp/folha.db")
	t.Setenv("HTTP_PORT", "8081")
	t.Setenv("PDF_ENGINE", "gotenberg")
	t.Setenv("COMPANY_NAME", "Padaria Pão Quente")
	t.Setenv("COMPANY_CITY", "Curitiba")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.DB.Driver)
	assert.Equal(t, "/tmp/folha.db", cfg.DB.SQLitePath)
	assert.Equal(t, 8081, cfg.HTTP.Port)
	assert.Equal(t, "gotenberg", cfg.Receipt.Engine)
	assert.Equal(t, "Padaria Pão Quente", cfg.Company.Name)
	assert.Equal(t, "Curitiba", cfg.Company.City)
}

func TestLoad_DriverInvalido(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("DB_DRIVER", "mysql")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestDBConfig_DSN_EscapaSenha(t *testing.T) {
	c := config.DBConfig{Host: "db", Port: 5432, User: "folha", Password: "p@ss/word", DBName: "recibos", SSLMode: "disable"}
	assert.Equal(t, "postgres://folha:p%40ss%2Fword@db:5432/recibos?sslmode=disable", c.DSN())

	c.DatabaseURL = "postgres://outro"
	assert.Equal(t, "postgres://outro", c.ConnectionString())
}
