package domain

import "errors"

// Erros de domínio (sem dependências externas).
// A camada HTTP os traduz para códigos de status com errors.Is.
var (
	ErrInvalidInput   = errors.New("entrada inválida")
	ErrNotFound       = errors.New("recurso não encontrado")
	ErrDuplicateTaxID = errors.New("já existe um funcionário com este CPF")
	ErrNoEmployees    = errors.New("nenhum funcionário cadastrado")
	ErrRender         = errors.New("falha ao gerar o documento")
	ErrStore          = errors.New("falha de persistência")
	ErrUnauthorized   = errors.New("não autorizado")
)
