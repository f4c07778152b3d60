package dto

import "github.com/shopspring/decimal"

// ── Request DTOs ──────────────────────────────────────────────────────────────

type CriarProdutoRequest struct {
	Nome         string          `json:"nome"         validate:"required,min=2,max=120"`
	Preco        decimal.Decimal `json:"preco"        validate:"required"`
	CategoriaID  uint            `json:"categoriaId"  validate:"required"`
	FornecedorID uint            `json:"fornecedorId" validate:"required"`
}

// AtualizarProdutoRequest overwrites nome and preco unconditionally;
// categoriaId / fornecedorId are reassigned only when provided.
type AtualizarProdutoRequest struct {
	Nome         string          `json:"nome"         validate:"required,min=2,max=120"`
	Preco        decimal.Decimal `json:"preco"        validate:"required"`
	CategoriaID  *uint           `json:"categoriaId"`
	FornecedorID *uint           `json:"fornecedorId"`
}

// ProdutoFilter narrows the product listing via query params.
type ProdutoFilter struct {
	Nome         string `form:"nome"`
	PrecoMin     string `form:"precoMin"     validate:"omitempty,numeric"`
	PrecoMax     string `form:"precoMax"     validate:"omitempty,numeric"`
	CategoriaID  uint   `form:"categoriaId"`
	FornecedorID uint   `form:"fornecedorId"`
}

// ── Response DTOs ─────────────────────────────────────────────────────────────

type ProdutoResponse struct {
	ID           uint            `json:"id"`
	Nome         string          `json:"nome"`
	Preco        decimal.Decimal `json:"preco"`
	CategoriaID  uint            `json:"categoriaId"`
	FornecedorID uint            `json:"fornecedorId"`
}

// PrecoResponse is returned by the public price check endpoint.
type PrecoResponse struct {
	ID    uint            `json:"id"`
	Nome  string          `json:"nome"`
	Preco decimal.Decimal `json:"preco"`
}
