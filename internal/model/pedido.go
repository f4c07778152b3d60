package model

import (
	"time"
)

// Pedido is the owning side of the pedido↔produto many-to-many relation,
// persisted through the pedido_produto join table. The join table is the
// single source of truth; the helpers below keep both in-memory slices in
// agreement on every mutation so that neither side ever dangles.
type Pedido struct {
	ID          uint       `gorm:"primaryKey"`
	Data        time.Time  `gorm:"type:date;not null"`
	DataEntrega *time.Time `gorm:"type:date"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Produtos []*Produto `gorm:"many2many:pedido_produto"`
}

func (Pedido) TableName() string { return "pedidos" }

// AdicionarProduto attaches a product, updating both sides of the relation.
func (p *Pedido) AdicionarProduto(produto *Produto) {
	p.Produtos = append(p.Produtos, produto)
	produto.Pedidos = append(produto.Pedidos, p)
}

// RemoverProduto detaches a product, updating both sides of the relation.
func (p *Pedido) RemoverProduto(produto *Produto) {
	p.Produtos = removePedidoProduto(p.Produtos, produto.ID)
	produto.Pedidos = removeProdutoPedido(produto.Pedidos, p.ID)
}

// DefinirProdutos replaces the full product set, detaching every previously
// associated product and attaching the new ones on both sides.
func (p *Pedido) DefinirProdutos(produtos []*Produto) {
	p.LimparProdutos()
	for _, produto := range produtos {
		p.AdicionarProduto(produto)
	}
}

// LimparProdutos detaches every associated product from both sides.
func (p *Pedido) LimparProdutos() {
	for _, produto := range p.Produtos {
		produto.Pedidos = removeProdutoPedido(produto.Pedidos, p.ID)
	}
	p.Produtos = nil
}

func removePedidoProduto(produtos []*Produto, id uint) []*Produto {
	out := produtos[:0]
	for _, pr := range produtos {
		if pr.ID != id {
			out = append(out, pr)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func removeProdutoPedido(pedidos []*Pedido, id uint) []*Pedido {
	out := pedidos[:0]
	for _, pe := range pedidos {
		if pe.ID != id {
			out = append(out, pe)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
