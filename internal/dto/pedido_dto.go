package dto

// ── Request DTOs ──────────────────────────────────────────────────────────────

type CriarPedidoRequest struct {
	ProdutoIDs []uint `json:"produtoIds"`
}

// AtualizarPedidoRequest carries partial-update semantics: a nil OR empty
// ProdutoIDs list means "leave associations unchanged" (never "clear"), and a
// nil DataEntrega leaves the delivery date untouched.
type AtualizarPedidoRequest struct {
	ProdutoIDs  []uint  `json:"produtoIds"`
	DataEntrega *string `json:"dataEntrega" validate:"omitempty,datetime=2006-01-02"`
}

// PedidoFilter narrows the order listing via query params.
// Entregue: "true" = delivered (dataEntrega set), "false" = pending.
type PedidoFilter struct {
	Entregue   string `form:"entregue"   validate:"omitempty,oneof=true false"`
	DataInicio string `form:"dataInicio" validate:"omitempty,datetime=2006-01-02"`
	DataFim    string `form:"dataFim"    validate:"omitempty,datetime=2006-01-02"`
}

// ── Response DTOs ─────────────────────────────────────────────────────────────

type PedidoResponse struct {
	ID          uint              `json:"id"`
	Data        string            `json:"data"`
	DataEntrega *string           `json:"dataEntrega"`
	Produtos    []ProdutoResponse `json:"produtos"`
}
