package dto

// GenerateReceiptsRequest body de POST /api/recibos/gerar.
type GenerateReceiptsRequest struct {
	Period string `json:"periodo" validate:"required"`
}

// BatchResponse resultado de um lote de recibos.
// Arquivo é o ZIP com todos os PDFs; Arquivos lista os PDFs contidos nele.
type BatchResponse struct {
	BatchID       string   `json:"lote_id"`
	Archive       string   `json:"arquivo"`
	Count         int      `json:"total"`
	PeriodToken   string   `json:"periodo_token"`
	PeriodDisplay string   `json:"periodo"`
	Files         []string `json:"arquivos"`
}

// PeriodResponse prévia da interpretação de um período (GET /api/periodos/interpretar).
type PeriodResponse struct {
	Input    string `json:"entrada"`
	Month    int    `json:"mes,omitempty"`
	Year     int    `json:"ano,omitempty"`
	Display  string `json:"display"`
	Token    string `json:"token"`
	Resolved bool   `json:"reconhecido"`
}
