package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/joaogabriel43/gerenciador-pedidos-api/internal/apierror"
	"github.com/joaogabriel43/gerenciador-pedidos-api/internal/dto"
	"github.com/joaogabriel43/gerenciador-pedidos-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ── Function-backed service stubs ─────────────────────────────────────────────

type stubCategoriaService struct {
	listar      func() ([]dto.CategoriaResponse, error)
	buscarPorID func(id uint) (*dto.CategoriaResponse, error)
	criar       func(req dto.CategoriaRequest) (*dto.CategoriaResponse, error)
	atualizar   func(id uint, req dto.CategoriaRequest) (*dto.CategoriaResponse, error)
	deletar     func(id uint) error
}

func (s *stubCategoriaService) Listar(context.Context) ([]dto.CategoriaResponse, error) {
	return s.listar()
}

func (s *stubCategoriaService) BuscarPorID(_ context.Context, id uint) (*dto.CategoriaResponse, error) {
	return s.buscarPorID(id)
}

func (s *stubCategoriaService) Criar(_ context.Context, req dto.CategoriaRequest) (*dto.CategoriaResponse, error) {
	return s.criar(req)
}

func (s *stubCategoriaService) Atualizar(_ context.Context, id uint, req dto.CategoriaRequest) (*dto.CategoriaResponse, error) {
	return s.atualizar(id, req)
}

func (s *stubCategoriaService) Deletar(_ context.Context, id uint) error {
	return s.deletar(id)
}

var _ service.CategoriaService = (*stubCategoriaService)(nil)

type stubPedidoService struct {
	criar func(req dto.CriarPedidoRequest) (*dto.PedidoResponse, error)
}

func (s *stubPedidoService) Listar(context.Context, dto.PedidoFilter) ([]dto.PedidoResponse, error) {
	return nil, nil
}

func (s *stubPedidoService) BuscarPorID(context.Context, uint) (*dto.PedidoResponse, error) {
	return nil, apierror.NotFound("Pedido não encontrado")
}

func (s *stubPedidoService) Criar(_ context.Context, req dto.CriarPedidoRequest) (*dto.PedidoResponse, error) {
	return s.criar(req)
}

func (s *stubPedidoService) Atualizar(context.Context, uint, dto.AtualizarPedidoRequest) (*dto.PedidoResponse, error) {
	return nil, apierror.NotFound("Pedido não encontrado")
}

func (s *stubPedidoService) Deletar(context.Context, uint) error { return nil }

var _ service.PedidoService = (*stubPedidoService)(nil)

// ── Harness ───────────────────────────────────────────────────────────────────

func newCategoriasRouter(svc service.CategoriaService) *gin.Engine {
	r := gin.New()
	h := NewCategoriasHandler(svc)
	r.GET("/api/categorias", h.Listar)
	r.GET("/api/categorias/:id", h.BuscarPorID)
	r.POST("/api/categorias", h.Criar)
	r.PUT("/api/categorias/:id", h.Atualizar)
	r.DELETE("/api/categorias/:id", h.Deletar)
	return r
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) apierror.Response {
	t.Helper()
	var envelope apierror.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return envelope
}

// ── Tests ─────────────────────────────────────────────────────────────────────

func TestCategoriasListar(t *testing.T) {
	svc := &stubCategoriaService{
		listar: func() ([]dto.CategoriaResponse, error) {
			return []dto.CategoriaResponse{{ID: 1, Nome: "Bebidas"}}, nil
		},
	}

	w := doRequest(newCategoriasRouter(svc), http.MethodGet, "/api/categorias", "")
	assert.Equal(t, http.StatusOK, w.Code)

	var list []dto.CategoriaResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "Bebidas", list[0].Nome)
}

func TestCategoriasCriar(t *testing.T) {
	svc := &stubCategoriaService{
		criar: func(req dto.CategoriaRequest) (*dto.CategoriaResponse, error) {
			return &dto.CategoriaResponse{ID: 7, Nome: req.Nome}, nil
		},
	}

	w := doRequest(newCategoriasRouter(svc), http.MethodPost, "/api/categorias", `{"nome":"Bebidas"}`)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "/api/categorias/7", w.Header().Get("Location"))
}

func TestCategoriasCriarDuplicada(t *testing.T) {
	svc := &stubCategoriaService{
		criar: func(dto.CategoriaRequest) (*dto.CategoriaResponse, error) {
			return nil, apierror.BusinessRule("Uma categoria com nome similar já existe: Bebidas")
		},
	}

	w := doRequest(newCategoriasRouter(svc), http.MethodPost, "/api/categorias", `{"nome":"bebida"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	envelope := decodeEnvelope(t, w)
	assert.Equal(t, http.StatusBadRequest, envelope.Status)
	assert.Contains(t, envelope.Message, "Bebidas")
	assert.False(t, envelope.Timestamp.IsZero())
}

func TestCategoriasCriarJSONInvalido(t *testing.T) {
	svc := &stubCategoriaService{}

	w := doRequest(newCategoriasRouter(svc), http.MethodPost, "/api/categorias", `{"nome":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decodeEnvelope(t, w).Message, "JSON inválido")
}

func TestCategoriasCriarNomeCurto(t *testing.T) {
	svc := &stubCategoriaService{}

	w := doRequest(newCategoriasRouter(svc), http.MethodPost, "/api/categorias", `{"nome":"x"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decodeEnvelope(t, w).Message, "Campo inválido")
}

func TestCategoriasBuscarPorIDInexistente(t *testing.T) {
	svc := &stubCategoriaService{
		buscarPorID: func(id uint) (*dto.CategoriaResponse, error) {
			return nil, apierror.NotFound("Categoria com ID %d não encontrada", id)
		},
	}

	w := doRequest(newCategoriasRouter(svc), http.MethodGet, "/api/categorias/42", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	envelope := decodeEnvelope(t, w)
	assert.Equal(t, http.StatusNotFound, envelope.Status)
	assert.Contains(t, envelope.Message, "42")
}

func TestCategoriasIDNaoNumerico(t *testing.T) {
	svc := &stubCategoriaService{}

	for _, id := range []string{"abc", "0", "-1"} {
		w := doRequest(newCategoriasRouter(svc), http.MethodGet, "/api/categorias/"+id, "")
		assert.Equal(t, http.StatusNotFound, w.Code, "id=%s", id)
	}
}

func TestCategoriasDeletar(t *testing.T) {
	svc := &stubCategoriaService{
		deletar: func(uint) error { return nil },
	}

	w := doRequest(newCategoriasRouter(svc), http.MethodDelete, "/api/categorias/3", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestCategoriasDeletarEmUso(t *testing.T) {
	svc := &stubCategoriaService{
		deletar: func(uint) error {
			return apierror.BusinessRule("Não é possível excluir uma categoria que está sendo usada por produtos.")
		},
	}

	w := doRequest(newCategoriasRouter(svc), http.MethodDelete, "/api/categorias/3", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCategoriasErroInterno(t *testing.T) {
	svc := &stubCategoriaService{
		listar: func() ([]dto.CategoriaResponse, error) {
			return nil, errors.New("connection refused")
		},
	}

	w := doRequest(newCategoriasRouter(svc), http.MethodGet, "/api/categorias", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	// Internal details never leak into the envelope.
	envelope := decodeEnvelope(t, w)
	assert.Equal(t, "Erro interno do servidor", envelope.Message)
	assert.NotContains(t, w.Body.String(), "connection refused")
}

func TestPedidosCriar(t *testing.T) {
	svc := &stubPedidoService{
		criar: func(req dto.CriarPedidoRequest) (*dto.PedidoResponse, error) {
			require.Equal(t, []uint{1, 2}, req.ProdutoIDs)
			return &dto.PedidoResponse{ID: 5, Data: "2026-08-31", Produtos: []dto.ProdutoResponse{}}, nil
		},
	}
	r := gin.New()
	h := NewPedidosHandler(svc)
	r.POST("/api/pedidos", h.Criar)

	w := doRequest(r, http.MethodPost, "/api/pedidos", `{"produtoIds":[1,2]}`)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "/api/pedidos/5", w.Header().Get("Location"))
}

func TestPedidosCriarProdutoInexistente(t *testing.T) {
	svc := &stubPedidoService{
		criar: func(dto.CriarPedidoRequest) (*dto.PedidoResponse, error) {
			return nil, apierror.NotFound("Produto(s) com ID(s) [999] não encontrado(s).")
		},
	}
	r := gin.New()
	h := NewPedidosHandler(svc)
	r.POST("/api/pedidos", h.Criar)

	w := doRequest(r, http.MethodPost, "/api/pedidos", `{"produtoIds":[1,999]}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, decodeEnvelope(t, w).Message, "999")
}
