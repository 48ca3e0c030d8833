package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

func TestParseCSV(t *testing.T) {
	in := "nome;cpf;salario\n" +
		"José da Silva;123.456.789-00;R$ 1.518,50\n" +
		"Ana Lima; 111.222.333-44 ;2000.00\n"

	rows, err := parseCSV(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, 2, rows[0].line)
	assert.Equal(t, "José da Silva", rows[0].req.Name)
	assert.Equal(t, "1518.5", rows[0].req.Salary.String())
	assert.Equal(t, "111.222.333-44", rows[1].req.TaxID)
	assert.Equal(t, "2000", rows[1].req.Salary.String())
}

func TestParseCSV_CabecalhoComBOM(t *testing.T) {
	in := "\ufeffnome;cpf;salario\nAna Lima;222;R$ 1.234,56\n"
	rows, err := parseCSV(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Ana Lima", rows[0].req.Name)
	assert.Equal(t, "1234.56", rows[0].req.Salary.String())

	rows, err = parseCSV(strings.NewReader("\ufeffAna Lima;222;100\n"))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Ana Lima", rows[0].req.Name, "BOM não vai para o nome")
}

func TestParseCSV_Latin1(t *testing.T) {
	raw, err := charmap.ISO8859_1.NewEncoder().String("João Conceição;1;100\n")
	require.NoError(t, err)

	rows, err := parseCSV(transform.NewReader(strings.NewReader(raw), charmap.ISO8859_1.NewDecoder()))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "João Conceição", rows[0].req.Name)
}

func TestParseCSV_Erros(t *testing.T) {
	_, err := parseCSV(strings.NewReader("Ana;1;abc\n"))
	assert.ErrorContains(t, err, "linha 1")

	_, err = parseCSV(strings.NewReader("Ana;1\n"))
	assert.Error(t, err, "número de colunas errado")
}
