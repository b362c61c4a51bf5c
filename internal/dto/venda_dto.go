package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type RegistrarVendaRequest struct {
	ProdutoID  string `json:"produto_id" validate:"required,uuid"`
	Quantidade int    `json:"quantidade" validate:"required,min=1"`
	// DescontoManual (0-100) replaces the product's stored discount for this
	// sale — the two are never combined.
	DescontoManual decimal.Decimal `json:"desconto_manual" validate:"min=0,max=100"`
	// ClienteEmail: optional — when present, the receipt PDF is mailed asynchronously.
	ClienteEmail *string `json:"cliente_email" validate:"omitempty,email"`
}

// ─── Filter / List ───────────────────────────────────────────────────────────

type VendaFilter struct {
	ProdutoID string `form:"produto_id" validate:"omitempty,uuid"`
	Page      int    `form:"page,default=1"   validate:"min=1"`
	Limit     int    `form:"limit,default=50" validate:"min=1,max=200"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// ReciboResponse mirrors the printed receipt: product, quantity, the
// effective unit price and the line total.
type ReciboResponse struct {
	VendaID        string          `json:"venda_id"`
	Produto        string          `json:"produto"`
	Quantidade     int             `json:"quantidade"`
	ValorUnitario  decimal.Decimal `json:"valor_unitario"`
	Total          decimal.Decimal `json:"total"`
	TotalFormatado string          `json:"total_formatado"`
	DataVenda      string          `json:"data_venda"`
}

type VendaListItem struct {
	ID            string          `json:"id"`
	ProdutoID     string          `json:"produto_id"`
	Produto       string          `json:"produto"`
	Quantidade    int             `json:"quantidade"`
	ValorUnitario decimal.Decimal `json:"valor_unitario"`
	Total         decimal.Decimal `json:"total"`
	DataVenda     string          `json:"data_venda"`
}

type VendaListResponse struct {
	Data  []VendaListItem `json:"data"`
	Total int64           `json:"total"`
	Page  int             `json:"page"`
	Limit int             `json:"limit"`
}
