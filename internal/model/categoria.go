package model

import (
	"time"
)

// Categoria classifies products. NomeNormalizado is the canonical lookup key
// recomputed by the service from Nome before every insert/update; the unique
// index backs the duplicate-name rule.
type Categoria struct {
	ID              uint   `gorm:"primaryKey"`
	Nome            string `gorm:"not null"`
	NomeNormalizado string `gorm:"uniqueIndex;not null"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Produtos []Produto `gorm:"foreignKey:CategoriaID"`
}

func (Categoria) TableName() string { return "categorias" }
