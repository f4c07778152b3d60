package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Produto belongs to one Categoria and one Fornecedor and participates as the
// inverse side of the pedido↔produto many-to-many relation.
type Produto struct {
	ID           uint            `gorm:"primaryKey"`
	Nome         string          `gorm:"uniqueIndex;not null"`
	Preco        decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	CategoriaID  uint            `gorm:"index;not null"`
	FornecedorID uint            `gorm:"index;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Categoria  *Categoria  `gorm:"foreignKey:CategoriaID"`
	Fornecedor *Fornecedor `gorm:"foreignKey:FornecedorID"`
	Pedidos    []*Pedido   `gorm:"many2many:pedido_produto"`
}

func (Produto) TableName() string { return "produtos" }
