package receipts

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/patriciammarinskevi/GERADOR-RECIBOS/internal/application/dto"
	"github.com/patriciammarinskevi/GERADOR-RECIBOS/internal/domain"
	"github.com/patriciammarinskevi/GERADOR-RECIBOS/internal/domain/entity"
	"github.com/patriciammarinskevi/GERADOR-RECIBOS/internal/domain/period"
	"github.com/patriciammarinskevi/GERADOR-RECIBOS/internal/domain/repository"
	"github.com/patriciammarinskevi/GERADOR-RECIBOS/pkg/textnorm"
)

// BatchUseCase gera o lote de recibos de um período.
// Lotes simultâneos compartilham o diretório de trabalho e não são coordenados.
type BatchUseCase struct {
	repo     repository.EmployeeRepository
	renderer ReceiptRenderer
	output   OutputStore
	company  entity.Company
	metrics  BatchMetrics
	log      zerolog.Logger
	now      func() time.Time
}

// Option ajusta dependências opcionais do BatchUseCase.
type Option func(*BatchUseCase)

// WithMetrics registra contadores de lote e de recibos.
func WithMetrics(m BatchMetrics) Option {
	return func(uc *BatchUseCase) {
		if m != nil {
			uc.metrics = m
		}
	}
}

// WithClock fixa o relógio usado na data de emissão.
func WithClock(now func() time.Time) Option {
	return func(uc *BatchUseCase) { uc.now = now }
}

// NewBatchUseCase constrói o gerador de lotes.
func NewBatchUseCase(
	repo repository.EmployeeRepository,
	renderer ReceiptRenderer,
	output OutputStore,
	company entity.Company,
	log zerolog.Logger,
	opts ...Option,
) *BatchUseCase {
	uc := &BatchUseCase{
		repo:     repo,
		renderer: renderer,
		output:   output,
		company:  company,
		metrics:  nopMetrics{},
		log:      log,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Generate gera um recibo por funcionário para o período informado e os empacota
// em RECIBOS-<token>.zip. A saída do lote anterior é descartada no início.
//
// Erros: domain.ErrInvalidInput (período vazio), domain.ErrStore, domain.ErrNoEmployees,
// domain.ErrRender (falha ao renderizar ou gravar; a saída parcial fica até o próximo lote).
func (uc *BatchUseCase) Generate(ctx context.Context, periodRaw string) (resp *dto.BatchResponse, err error) {
	if strings.TrimSpace(periodRaw) == "" {
		uc.metrics.BatchFinished(OutcomeInvalid, 0)
		return nil, fmt.Errorf("%w: período é obrigatório", domain.ErrInvalidInput)
	}

	batchID := uuid.NewString()
	log := uc.log.With().Str("lote_id", batchID).Logger()
	started := time.Now()
	defer func() {
		uc.metrics.BatchFinished(outcomeOf(err), time.Since(started))
		if err != nil {
			log.Error().Err(err).Msg("lote de recibos falhou")
		}
	}()

	if err := uc.output.Reset(); err != nil {
		return nil, fmt.Errorf("%w: preparar diretório de trabalho: %v", domain.ErrRender, err)
	}

	employees, err := uc.repo.List(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrStore) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: listar funcionários: %v", domain.ErrStore, err)
	}
	if len(employees) == 0 {
		return nil, domain.ErrNoEmployees
	}

	p := period.Interpret(periodRaw)
	log = log.With().Str("periodo", p.Token).Logger()
	if !p.Resolved() {
		log.Warn().Str("entrada", periodRaw).Msg("período não reconhecido; usando texto informado")
	}

	session, err := uc.renderer.Open(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: abrir motor de renderização: %v", domain.ErrRender, err)
	}
	defer func() {
		if cerr := session.Close(); cerr != nil {
			log.Warn().Err(cerr).Msg("fechar sessão de renderização")
		}
	}()

	issuedAt := uc.now()
	ext := uc.renderer.Extension()
	used := make(map[string]bool, len(employees))
	files := make([]string, 0, len(employees))

	for _, e := range employees {
		data := BuildReceiptData(log, e, p, uc.company, issuedAt)
		doc, err := session.Render(ctx, data)
		if err != nil {
			return nil, fmt.Errorf("%w: recibo de %s: %v", domain.ErrRender, e.Name, err)
		}
		name := ReceiptFileName(e, p.Token, ext, used)
		if err := uc.output.Write(name, doc); err != nil {
			return nil, fmt.Errorf("%w: gravar %s: %v", domain.ErrRender, name, err)
		}
		used[name] = true
		files = append(files, name)
		uc.metrics.ReceiptRendered()
		log.Debug().Str("arquivo", name).Int("bytes", len(doc)).Msg("recibo gerado")
	}

	archive := ArchiveName(p.Token)
	if err := uc.output.Archive(archive, files); err != nil {
		return nil, fmt.Errorf("%w: compactar %s: %v", domain.ErrRender, archive, err)
	}

	log.Info().
		Int("total", len(files)).
		Str("arquivo", archive).
		Dur("duracao", time.Since(started)).
		Msg("lote de recibos gerado")

	return &dto.BatchResponse{
		BatchID:       batchID,
		Archive:       archive,
		Count:         len(files),
		PeriodToken:   p.Token,
		PeriodDisplay: p.Display,
		Files:         files,
	}, nil
}

// ReceiptFileName nome do recibo: RECEIPT-<nome sanitizado>-<token>.<ext>.
// Nomes que já constem em used recebem o sufixo -<id>.
func ReceiptFileName(e *entity.Employee, token, ext string, used map[string]bool) string {
	base := textnorm.SanitizeFilename(e.Name)
	if base == "" {
		base = fmt.Sprintf("funcionario_%d", e.ID)
	}
	name := fmt.Sprintf("RECEIPT-%s-%s.%s", base, token, ext)
	if used[name] {
		name = fmt.Sprintf("RECEIPT-%s-%s-%d.%s", base, token, e.ID, ext)
	}
	return name
}

// ArchiveName nome do ZIP do lote.
func ArchiveName(token string) string {
	return fmt.Sprintf("RECIBOS-%s.zip", token)
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, domain.ErrNoEmployees):
		return OutcomeNoEmployees
	default:
		return OutcomeError
	}
}
