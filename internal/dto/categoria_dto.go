package dto

// ── Request DTOs ──────────────────────────────────────────────────────────────

type CategoriaRequest struct {
	Nome string `json:"nome" validate:"required,min=2,max=100"`
}

// ── Response DTOs ─────────────────────────────────────────────────────────────

type CategoriaResponse struct {
	ID   uint   `json:"id"`
	Nome string `json:"nome"`
}
