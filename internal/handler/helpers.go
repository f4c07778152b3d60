package handler

import (
	"errors"
	"net/http"
	"reflect"
	"strconv"

	"github.com/joaogabriel43/gerenciador-pedidos-api/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// required, min=0 work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// bindAndValidate binds the JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails — the
// caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.NewResponse(http.StatusBadRequest, "JSON inválido: "+err.Error()))
		return false
	}
	return validateStruct(c, req)
}

// bindQueryAndValidate binds query params into a filter struct.
func bindQueryAndValidate(c *gin.Context, filter interface{}) bool {
	if err := c.ShouldBindQuery(filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.NewResponse(http.StatusBadRequest, "Parâmetros inválidos: "+err.Error()))
		return false
	}
	return validateStruct(c, filter)
}

func validateStruct(c *gin.Context, v interface{}) bool {
	if err := validate.Struct(v); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			c.JSON(http.StatusBadRequest, apierror.NewResponse(http.StatusBadRequest,
				"Campo inválido: "+fe.Field()+" ("+fe.Tag()+")"))
			return false
		}
		c.JSON(http.StatusBadRequest, apierror.NewResponse(http.StatusBadRequest, "Requisição inválida"))
		return false
	}
	return true
}

// parseID parses the :id path param. Returns 0 and writes a 404 when the
// segment is not a positive integer — a non-numeric id can never name an
// existing resource.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusNotFound, apierror.NewResponse(http.StatusNotFound, "Recurso com ID "+c.Param("id")+" não encontrado"))
		return 0, false
	}
	return uint(id), true
}

// respondError translates domain errors to status codes:
// NotFound → 404, BusinessRule → 400, anything else → 500 with a generic
// message (internals are logged, never exposed).
func respondError(c *gin.Context, err error) {
	var nf *apierror.NotFoundError
	if errors.As(err, &nf) {
		c.JSON(http.StatusNotFound, apierror.NewResponse(http.StatusNotFound, nf.Message))
		return
	}
	var br *apierror.BusinessRuleError
	if errors.As(err, &br) {
		c.JSON(http.StatusBadRequest, apierror.NewResponse(http.StatusBadRequest, br.Message))
		return
	}

	log.Error().
		Str("request_id", c.GetString("request_id")).
		Str("path", c.FullPath()).
		Str("method", c.Request.Method).
		Err(err).
		Msg("erro não tratado")
	c.JSON(http.StatusInternalServerError, apierror.NewResponse(http.StatusInternalServerError, "Erro interno do servidor"))
}
