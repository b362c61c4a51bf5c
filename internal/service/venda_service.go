package service

import (
	"context"
	"time"

	"estoquepos/internal/dto"
	"estoquepos/internal/model"
	"estoquepos/internal/moeda"
	"estoquepos/internal/repository"
	"estoquepos/internal/worker"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type VendaService interface {
	RegistrarVenda(ctx context.Context, req dto.RegistrarVendaRequest) (*dto.ReciboResponse, error)
	ObterRecibo(ctx context.Context, vendaID uuid.UUID) (*dto.ReciboResponse, error)
	Listar(ctx context.Context, filter dto.VendaFilter) (*dto.VendaListResponse, error)
}

type vendaService struct {
	repo          repository.VendaRepository
	produtoRepo   repository.ProdutoRepository
	movimentoRepo repository.MovimentoEstoqueRepository
	dispatcher    *worker.Dispatcher
}

func NewVendaService(
	repo repository.VendaRepository,
	produtoRepo repository.ProdutoRepository,
	movimentoRepo repository.MovimentoEstoqueRepository,
	dispatcher *worker.Dispatcher,
) VendaService {
	return &vendaService{
		repo:          repo,
		produtoRepo:   produtoRepo,
		movimentoRepo: movimentoRepo,
		dispatcher:    dispatcher,
	}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

var cem = decimal.NewFromInt(100)

// PrecoEfetivo applies a sale-time manual discount percentage to a unit
// price. The manual discount replaces the product's stored discount — the
// two are never combined.
func PrecoEfetivo(valorUnitario, descontoPct decimal.Decimal) decimal.Decimal {
	fator := decimal.NewFromInt(1).Sub(descontoPct.Div(cem))
	return valorUnitario.Mul(fator).Round(2)
}

// ── RegistrarVenda ────────────────────────────────────────────────────────────
// One ACID transaction covers the whole mutation:
//   1. guarded stock decrement (fails the tx on insufficiency)
//   2. one Venda row with the effective unit price
//   3. one saida entry in the movement ledger
// Either all three commit or none are observed.

func (s *vendaService) RegistrarVenda(ctx context.Context, req dto.RegistrarVendaRequest) (*dto.ReciboResponse, error) {
	produtoID, err := uuid.Parse(req.ProdutoID)
	if err != nil {
		return nil, ErrProdutoNaoEncontrado
	}
	if req.Quantidade < 1 {
		return nil, ErrQuantidadeInvalida
	}

	// Pre-flight read, outside the tx: resolves the product and gives a fast
	// failure path. The authoritative stock check is the guarded UPDATE below.
	produto, err := s.produtoRepo.FindByID(ctx, produtoID)
	if err != nil {
		return nil, ErrProdutoNaoEncontrado
	}
	if req.Quantidade > produto.Quantidade {
		return nil, ErrEstoqueInsuficiente
	}

	// Only the sale-time manual discount enters the price. The product's
	// stored desconto is catalog metadata and never applies here.
	valorEfetivo := PrecoEfetivo(produto.ValorUnitario, req.DescontoManual)

	var venda model.Venda
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		ok, err := s.produtoRepo.DecrementarSeDisponivelTx(tx, produtoID, req.Quantidade)
		if err != nil {
			return err
		}
		if !ok {
			return ErrEstoqueInsuficiente
		}

		venda = model.Venda{
			ProdutoID:     produtoID,
			Quantidade:    req.Quantidade,
			ValorUnitario: valorEfetivo,
			DataVenda:     time.Now(),
		}
		if err := s.repo.CreateTx(tx, &venda); err != nil {
			return err
		}

		vendaRef := venda.ID
		mov := &model.MovimentoEstoque{
			ProdutoID:       produtoID,
			Tipo:            model.MovimentoSaida,
			Quantidade:      req.Quantidade,
			EstoqueAnterior: produto.Quantidade,
			EstoqueNovo:     produto.Quantidade - req.Quantidade,
			Motivo:          "venda",
			ReferenciaID:    &vendaRef,
		}
		return s.movimentoRepo.CreateTx(tx, mov)
	})
	if txErr != nil {
		return nil, txErr
	}

	recibo := buildRecibo(&venda, produto.Nome)

	// Async receipt email — best-effort, never fails the sale.
	if s.dispatcher != nil && req.ClienteEmail != nil && *req.ClienteEmail != "" {
		_ = s.dispatcher.EnqueueEmail(ctx, worker.EmailJobPayload{
			ToEmail: *req.ClienteEmail,
			VendaID: venda.ID.String(),
			Subject: "Recibo de Venda",
			Body:    "Segue em anexo o recibo da sua compra.",
		})
	}

	return recibo, nil
}

func (s *vendaService) ObterRecibo(ctx context.Context, vendaID uuid.UUID) (*dto.ReciboResponse, error) {
	venda, err := s.repo.FindByID(ctx, vendaID)
	if err != nil {
		return nil, ErrVendaNaoEncontrada
	}
	nome := ""
	if venda.Produto != nil {
		nome = venda.Produto.Nome
	}
	return buildRecibo(venda, nome), nil
}

func (s *vendaService) Listar(ctx context.Context, filter dto.VendaFilter) (*dto.VendaListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 50
	}
	vendas, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.VendaListItem, 0, len(vendas))
	for i := range vendas {
		v := &vendas[i]
		nome := ""
		if v.Produto != nil {
			nome = v.Produto.Nome
		}
		items = append(items, dto.VendaListItem{
			ID:            v.ID.String(),
			ProdutoID:     v.ProdutoID.String(),
			Produto:       nome,
			Quantidade:    v.Quantidade,
			ValorUnitario: v.ValorUnitario,
			Total:         v.ValorUnitario.Mul(decimal.NewFromInt(int64(v.Quantidade))),
			DataVenda:     v.DataVenda.Format(time.RFC3339),
		})
	}
	return &dto.VendaListResponse{
		Data:  items,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}

func buildRecibo(v *model.Venda, produtoNome string) *dto.ReciboResponse {
	total := v.ValorUnitario.Mul(decimal.NewFromInt(int64(v.Quantidade)))
	return &dto.ReciboResponse{
		VendaID:        v.ID.String(),
		Produto:        produtoNome,
		Quantidade:     v.Quantidade,
		ValorUnitario:  v.ValorUnitario,
		Total:          total,
		TotalFormatado: moeda.FormatBRL(total),
		DataVenda:      v.DataVenda.Format(time.RFC3339),
	}
}
