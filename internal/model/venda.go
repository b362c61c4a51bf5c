package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Venda is one recorded sale. Rows are immutable once committed.
// ValorUnitario is the price actually charged — the effective unit price
// after the sale-time discount — captured here and never recomputed.
type Venda struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProdutoID     uuid.UUID       `gorm:"type:uuid;index;not null"`
	Quantidade    int             `gorm:"not null"`
	ValorUnitario decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	DataVenda     time.Time       `gorm:"not null;default:now();column:data_venda"`

	Produto *Produto `gorm:"foreignKey:ProdutoID"`
}

func (Venda) TableName() string { return "vendas" }
