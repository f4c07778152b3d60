package dto

// ── Request DTOs ──────────────────────────────────────────────────────────────

type FornecedorRequest struct {
	Nome string `json:"nome" validate:"required,min=2,max=100"`
}

// ── Response DTOs ─────────────────────────────────────────────────────────────

type FornecedorResponse struct {
	ID   uint   `json:"id"`
	Nome string `json:"nome"`
}
