package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Produto is a catalog item. Quantidade is the authoritative stock count;
// every mutation outside a register close leaves a trace in the
// movimentos_estoque ledger.
type Produto struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Codigo        string          `gorm:"size:100;uniqueIndex;not null"`
	Nome          string          `gorm:"size:100;not null;index"`
	Descricao     string          `gorm:"type:text"`
	Quantidade    int             `gorm:"not null;default:0"`
	ValorUnitario decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	// Desconto is the stored percentage (0–100) applied when the sale does
	// not carry a manual discount.
	Desconto      decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0"`
	EstoqueMinimo int             `gorm:"not null;default:0"`
	Categoria     string          `gorm:"size:100;index"`
	Marca         string          `gorm:"size:100"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (Produto) TableName() string { return "produtos" }
