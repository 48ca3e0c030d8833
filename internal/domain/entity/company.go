package entity

// Company dados fixos da empresa emissora impressos em todos os recibos.
// Valor imutável carregado da configuração na inicialização.
type Company struct {
	Name  string
	TaxID string // CNPJ
	City  string
}
