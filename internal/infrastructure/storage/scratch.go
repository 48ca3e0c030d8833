// Package storage é o diretório de trabalho dos lotes de recibos, sobre afero
// (disco em produção, memória nos testes).
package storage

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/patriciammarinskevi/GERADOR-RECIBOS/internal/application/receipts"
)

var _ receipts.OutputStore = (*ScratchDir)(nil)

// ErrInvalidName nome com separador de diretório ou "..".
var ErrInvalidName = errors.New("storage: nome de arquivo inválido")

// ScratchDir diretório plano com os PDFs e o ZIP do último lote.
type ScratchDir struct {
	fs  afero.Fs
	dir string
}

// NewScratchDir usa o diretório dir sobre fs.
func NewScratchDir(fs afero.Fs, dir string) *ScratchDir {
	return &ScratchDir{fs: fs, dir: filepath.Clean(dir)}
}

// NewOSScratchDir diretório no disco local.
func NewOSScratchDir(dir string) *ScratchDir {
	return NewScratchDir(afero.NewOsFs(), dir)
}

// Reset remove o diretório com todo o conteúdo e o recria vazio.
func (s *ScratchDir) Reset() error {
	if err := s.fs.RemoveAll(s.dir); err != nil {
		return fmt.Errorf("storage: limpar %s: %w", s.dir, err)
	}
	if err := s.fs.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("storage: criar %s: %w", s.dir, err)
	}
	return nil
}

// Write grava (ou sobrescreve) um arquivo no diretório.
func (s *ScratchDir) Write(name string, data []byte) error {
	p, err := s.path(name)
	if err != nil {
		return err
	}
	if err := s.fs.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("storage: criar %s: %w", s.dir, err)
	}
	if err := afero.WriteFile(s.fs, p, data, 0o644); err != nil {
		return fmt.Errorf("storage: gravar %s: %w", name, err)
	}
	return nil
}

// Archive empacota os arquivos names, na ordem dada, no ZIP archiveName.
func (s *ScratchDir) Archive(archiveName string, names []string) (err error) {
	p, err := s.path(archiveName)
	if err != nil {
		return err
	}
	f, err := s.fs.Create(p)
	if err != nil {
		return fmt.Errorf("storage: criar %s: %w", archiveName, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("storage: fechar %s: %w", archiveName, cerr)
		}
	}()

	zw := zip.NewWriter(f)
	for _, name := range names {
		if err := s.addToZip(zw, name); err != nil {
			_ = zw.Close()
			return err
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("zip: fechar %s: %w", archiveName, err)
	}
	return nil
}

func (s *ScratchDir) addToZip(zw *zip.Writer, name string) error {
	p, err := s.path(name)
	if err != nil {
		return err
	}
	src, err := s.fs.Open(p)
	if err != nil {
		return fmt.Errorf("storage: abrir %s: %w", name, err)
	}
	defer src.Close()

	fw, err := zw.Create(name)
	if err != nil {
		return fmt.Errorf("zip: criar entrada %s: %w", name, err)
	}
	if _, err := io.Copy(fw, src); err != nil {
		return fmt.Errorf("zip: escrever %s: %w", name, err)
	}
	return nil
}

// Open abre um arquivo do diretório para leitura.
// Nome inválido → ErrInvalidName; inexistente → erro que satisfaz os.ErrNotExist.
func (s *ScratchDir) Open(name string) (afero.File, os.FileInfo, error) {
	p, err := s.path(name)
	if err != nil {
		return nil, nil, err
	}
	info, err := s.fs.Stat(p)
	if err != nil {
		return nil, nil, err
	}
	if info.IsDir() {
		return nil, nil, os.ErrNotExist
	}
	f, err := s.fs.Open(p)
	if err != nil {
		return nil, nil, err
	}
	return f, info, nil
}

// List nomes dos arquivos presentes, em ordem alfabética.
func (s *ScratchDir) List() ([]string, error) {
	entries, err := afero.ReadDir(s.fs, s.dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("storage: listar %s: %w", s.dir, err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	return names, nil
}

// path valida que name é um nome simples (sem diretórios) e o junta a dir.
func (s *ScratchDir) path(name string) (string, error) {
	if name == "" || name == "." || name == ".." ||
		strings.ContainsAny(name, `/\`) || path.Base(name) != name {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return filepath.Join(s.dir, name), nil
}
