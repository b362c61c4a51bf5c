package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CriarProdutoRequest struct {
	Codigo        string          `json:"codigo"         validate:"required,min=1,max=100"`
	Nome          string          `json:"nome"           validate:"required,min=1,max=100"`
	Descricao     string          `json:"descricao"`
	Quantidade    int             `json:"quantidade"     validate:"min=0"`
	ValorUnitario decimal.Decimal `json:"valor_unitario" validate:"required,gt=0"`
	Desconto      decimal.Decimal `json:"desconto"       validate:"min=0,max=100"`
	EstoqueMinimo int             `json:"estoque_minimo" validate:"min=0"`
	Categoria     string          `json:"categoria"      validate:"max=100"`
	Marca         string          `json:"marca"          validate:"max=100"`
}

// AtualizarProdutoRequest overwrites every editable field. In partial-update
// mode (CATALOG_PARTIAL_UPDATE) only nome, valor_unitario and desconto are
// applied; the remaining fields are ignored by the service.
type AtualizarProdutoRequest struct {
	Nome          string          `json:"nome"           validate:"required,min=1,max=100"`
	Descricao     string          `json:"descricao"`
	Quantidade    int             `json:"quantidade"     validate:"min=0"`
	ValorUnitario decimal.Decimal `json:"valor_unitario" validate:"required,gt=0"`
	Desconto      decimal.Decimal `json:"desconto"       validate:"min=0,max=100"`
	EstoqueMinimo int             `json:"estoque_minimo" validate:"min=0"`
	Categoria     string          `json:"categoria"      validate:"max=100"`
	Marca         string          `json:"marca"          validate:"max=100"`
}

// ─── Filter / Pagination ─────────────────────────────────────────────────────

type ProdutoFilter struct {
	Nome      string `form:"nome"`
	Categoria string `form:"categoria"`
	Page      int    `form:"page,default=1"   validate:"min=1"`
	Limit     int    `form:"limit,default=20" validate:"min=1,max=100"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProdutoResponse struct {
	ID            string          `json:"id"`
	Codigo        string          `json:"codigo"`
	Nome          string          `json:"nome"`
	Descricao     string          `json:"descricao"`
	Quantidade    int             `json:"quantidade"`
	ValorUnitario decimal.Decimal `json:"valor_unitario"`
	Desconto      decimal.Decimal `json:"desconto"`
	EstoqueMinimo int             `json:"estoque_minimo"`
	Categoria     string          `json:"categoria"`
	Marca         string          `json:"marca"`
}

type ProdutoListResponse struct {
	Data  []ProdutoResponse `json:"data"`
	Total int64             `json:"total"`
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
}
