package model

import (
	"time"

	"github.com/google/uuid"
)

// Movement kinds. "entrada" covers restocks and catalog adjustments,
// "saida" is written by the sale path.
const (
	MovimentoEntrada = "entrada"
	MovimentoSaida   = "saida"
)

// MovimentoEstoque is an immutable entry in the stock ledger. Rows are
// NEVER updated or deleted — corrections create new entries.
//
// Quantidade is always positive; Tipo carries the direction. The catalog
// edit path writes the RESULTING stock value here rather than the delta
// (motivo "ajuste absoluto") — EstoqueAnterior/EstoqueNovo keep the entry
// auditable either way.
type MovimentoEstoque struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProdutoID       uuid.UUID `gorm:"type:uuid;not null;index"`
	Tipo            string    `gorm:"type:varchar(10);not null"`
	Quantidade      int       `gorm:"not null"`
	EstoqueAnterior int       `gorm:"not null"`
	EstoqueNovo     int       `gorm:"not null"`
	Motivo          string
	ReferenciaID    *uuid.UUID `gorm:"type:uuid"` // venda_id when Tipo = saida
	CreatedAt       time.Time

	Produto *Produto `gorm:"foreignKey:ProdutoID"`
}

func (MovimentoEstoque) TableName() string { return "movimentos_estoque" }
