package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"estoquepos/internal/dto"
	"estoquepos/internal/infra"
	"estoquepos/internal/moeda"
	"estoquepos/internal/repository"
)

// EmailJobPayload describes a receipt email to deliver. The PDF is
// regenerated from the sale at delivery time rather than stored in
// the queue.
type EmailJobPayload struct {
	ToEmail string `json:"to_email"`
	VendaID string `json:"venda_id"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

type EmailWorker struct {
	vendas      repository.VendaRepository
	mailer      *infra.Mailer
	storagePath string
}

func NewEmailWorker(vendas repository.VendaRepository, mailer *infra.Mailer, storagePath string) *EmailWorker {
	return &EmailWorker{vendas: vendas, mailer: mailer, storagePath: storagePath}
}

func (w *EmailWorker) Process(ctx context.Context, raw json.RawMessage) error {
	var payload EmailJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return fmt.Errorf("unmarshal email payload: %w", err)
	}

	id, err := uuid.Parse(payload.VendaID)
	if err != nil {
		return fmt.Errorf("invalid venda id %q: %w", payload.VendaID, err)
	}
	venda, err := w.vendas.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("load venda %s: %w", payload.VendaID, err)
	}

	produtoNome := ""
	if venda.Produto != nil {
		produtoNome = venda.Produto.Nome
	}
	total := venda.ValorUnitario.Mul(decimal.NewFromInt(int64(venda.Quantidade)))
	recibo := &dto.ReciboResponse{
		VendaID:        venda.ID.String(),
		Produto:        produtoNome,
		Quantidade:     venda.Quantidade,
		ValorUnitario:  venda.ValorUnitario,
		Total:          total,
		TotalFormatado: moeda.FormatBRL(total),
		DataVenda:      venda.DataVenda.Format(time.RFC3339),
	}

	pdfPath, err := infra.GravarReciboPDF(recibo, w.storagePath)
	if err != nil {
		return fmt.Errorf("generate receipt pdf: %w", err)
	}

	if err := w.mailer.SendRecibo(payload.ToEmail, payload.Subject, payload.Body, pdfPath); err != nil {
		return fmt.Errorf("send receipt email: %w", err)
	}

	log.Info().
		Str("venda_id", payload.VendaID).
		Str("to", payload.ToEmail).
		Msg("receipt email sent")
	return nil
}
