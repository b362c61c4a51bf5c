package dto

// ─── Filter ──────────────────────────────────────────────────────────────────

type MovimentoFilter struct {
	ProdutoID string `form:"produto_id" validate:"omitempty,uuid"`
	Tipo      string `form:"tipo"       validate:"omitempty,oneof=entrada saida"`
	Page      int    `form:"page,default=1"    validate:"min=1"`
	Limit     int    `form:"limit,default=100" validate:"min=1,max=500"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type MovimentoResponse struct {
	ID              string `json:"id"`
	ProdutoID       string `json:"produto_id"`
	Produto         string `json:"produto"`
	Tipo            string `json:"tipo"`
	Quantidade      int    `json:"quantidade"`
	EstoqueAnterior int    `json:"estoque_anterior"`
	EstoqueNovo     int    `json:"estoque_novo"`
	Motivo          string `json:"motivo"`
	CreatedAt       string `json:"created_at"`
}

type MovimentoListResponse struct {
	Data  []MovimentoResponse `json:"data"`
	Total int64               `json:"total"`
	Page  int                 `json:"page"`
	Limit int                 `json:"limit"`
}
