package model

import (
	"time"
)

// Fornecedor represents a product supplier. Unlike Categoria, uniqueness of
// NomeNormalizado is enforced only in service logic, not by the schema.
type Fornecedor struct {
	ID              uint   `gorm:"primaryKey"`
	Nome            string `gorm:"not null"`
	NomeNormalizado string `gorm:"index;not null"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Produtos []Produto `gorm:"foreignKey:FornecedorID"`
}

func (Fornecedor) TableName() string { return "fornecedores" }
