package handler

import (
	"fmt"
	"net/http"

	"github.com/joaogabriel43/gerenciador-pedidos-api/internal/dto"
	"github.com/joaogabriel43/gerenciador-pedidos-api/internal/service"

	"github.com/gin-gonic/gin"
)

type FornecedoresHandler struct{ svc service.FornecedorService }

func NewFornecedoresHandler(svc service.FornecedorService) *FornecedoresHandler {
	return &FornecedoresHandler{svc: svc}
}

// Listar GET /api/fornecedores
func (h *FornecedoresHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// BuscarPorID GET /api/fornecedores/:id
func (h *FornecedoresHandler) BuscarPorID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	resp, err := h.svc.BuscarPorID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Criar POST /api/fornecedores
func (h *FornecedoresHandler) Criar(c *gin.Context) {
	var req dto.FornecedorRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Criar(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Location", fmt.Sprintf("/api/fornecedores/%d", resp.ID))
	c.JSON(http.StatusCreated, resp)
}

// Atualizar PUT /api/fornecedores/:id
func (h *FornecedoresHandler) Atualizar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.FornecedorRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Atualizar(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Deletar DELETE /api/fornecedores/:id
func (h *FornecedoresHandler) Deletar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Deletar(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
