package dto

import "github.com/shopspring/decimal"

// ─── Sales report ────────────────────────────────────────────────────────────

type RelatorioVendasFilter struct {
	ProdutoID string `form:"produto_id" validate:"omitempty,uuid"`
}

type ItemRelatorioVendas struct {
	Produto       string          `json:"produto"`
	Quantidade    int             `json:"quantidade"`
	ValorUnitario decimal.Decimal `json:"valor_unitario"`
	TotalLinha    decimal.Decimal `json:"total_linha"`
	DataVenda     string          `json:"data_venda"`
}

// RelatorioVendasResponse keeps totals numeric; TotalFormatado is the
// locale-aware rendering added at the boundary.
type RelatorioVendasResponse struct {
	Itens          []ItemRelatorioVendas `json:"itens"`
	TotalGeral     decimal.Decimal       `json:"total_geral"`
	TotalFormatado string                `json:"total_formatado"`
}

// ─── Stock report ────────────────────────────────────────────────────────────

type ItemRelatorioEstoque struct {
	ID            string          `json:"id"`
	Codigo        string          `json:"codigo"`
	Nome          string          `json:"nome"`
	Quantidade    int             `json:"quantidade"`
	EstoqueMinimo int             `json:"estoque_minimo"`
	ValorUnitario decimal.Decimal `json:"valor_unitario"`
	Categoria     string          `json:"categoria"`
	EstoqueBaixo  bool            `json:"estoque_baixo"`
}

type RelatorioEstoqueResponse struct {
	Itens []ItemRelatorioEstoque `json:"itens"`
}
