package http

import (
	"errors"
	"net/http"
	"time"

	"entregaloya/internal/core/application/usecases/queries"
	"entregaloya/internal/core/domain/model/product"
	"entregaloya/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// Every endpoint answers with the same envelope: ok plus either a message,
// an entity payload, or both. Field names stay in Spanish because the
// frontend consumes them verbatim.

// StatusResponse is the envelope for endpoints that only report an outcome.
type StatusResponse struct {
	OK  bool   `json:"ok"`
	Msg string `json:"msg,omitempty"`
}

// ErrorResponse carries a failed outcome with an optional detail string.
type ErrorResponse struct {
	OK    bool   `json:"ok"`
	Msg   string `json:"msg"`
	Error string `json:"error,omitempty"`
}

// RegisterRequest is the payload of POST /api/auth/register.
type RegisterRequest struct {
	Tipo     string `json:"tipo"`
	Nombre   string `json:"nombre"`
	Telefono string `json:"telefono"`
	Password string `json:"password"`
}

// RegisterResponse confirms a created account.
type RegisterResponse struct {
	OK     bool   `json:"ok"`
	Msg    string `json:"msg"`
	UserID int64  `json:"user_id"`
}

// LoginRequest is the payload of POST /api/auth/login.
type LoginRequest struct {
	Tipo     string `json:"tipo"`
	Telefono string `json:"telefono"`
	Password string `json:"password"`
}

// UserView is the authenticated user as rendered to the client.
// NegocioID is set for business accounts that own a business.
type UserView struct {
	ID        int64  `json:"id"`
	Nombre    string `json:"nombre"`
	Tipo      string `json:"tipo"`
	NegocioID *int64 `json:"negocio_id"`
}

// LoginResponse confirms a new session.
type LoginResponse struct {
	OK   bool     `json:"ok"`
	Msg  string   `json:"msg"`
	User UserView `json:"user"`
}

// CategoryView is one row of GET /api/categorias.
type CategoryView struct {
	ID          int64  `json:"id"`
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion"`
}

// CategoriesResponse lists the catalog categories.
type CategoriesResponse struct {
	OK         bool           `json:"ok"`
	Categorias []CategoryView `json:"categorias"`
}

// BusinessView is one business as rendered to the client. Categoria is the
// resolved category name, nil for uncategorized businesses.
type BusinessView struct {
	ID          int64   `json:"id"`
	UsuarioID   int64   `json:"usuario_id"`
	Nombre      string  `json:"nombre"`
	CategoriaID *int64  `json:"categoria_id"`
	Categoria   *string `json:"categoria"`
}

// BusinessesResponse lists the business directory.
type BusinessesResponse struct {
	OK       bool           `json:"ok"`
	Negocios []BusinessView `json:"negocios"`
}

// BusinessResponse carries a single business.
type BusinessResponse struct {
	OK      bool         `json:"ok"`
	Negocio BusinessView `json:"negocio"`
}

// ProductRequest is the JSON payload for product creation. Missing fields
// stay empty; precio is optional.
type ProductRequest struct {
	Nombre      string           `json:"nombre"`
	Descripcion string           `json:"descripcion"`
	Precio      *decimal.Decimal `json:"precio"`
}

// ProductUpdateRequest is the JSON payload for partial product updates.
// Nil fields keep their stored value.
type ProductUpdateRequest struct {
	Nombre      *string          `json:"nombre"`
	Descripcion *string          `json:"descripcion"`
	Precio      *decimal.Decimal `json:"precio"`
}

// ProductView is one product as rendered to the client.
type ProductView struct {
	ID          int64            `json:"id"`
	NegocioID   int64            `json:"negocio_id"`
	Nombre      string           `json:"nombre"`
	Descripcion string           `json:"descripcion"`
	Precio      *decimal.Decimal `json:"precio"`
	ImagenURL   string           `json:"imagen_url"`
}

// ProductsResponse lists a business catalog.
type ProductsResponse struct {
	OK        bool          `json:"ok"`
	Productos []ProductView `json:"productos"`
}

// ProductResponse carries a single product.
type ProductResponse struct {
	OK       bool        `json:"ok"`
	Producto ProductView `json:"producto"`
}

// CreateOrderRequest is the payload of POST /api/pedidos. cliente_id and
// producto_id are optional; a malformed value fails binding and comes back
// as a validation error instead of being silently dropped.
type CreateOrderRequest struct {
	NegocioID  int64  `json:"negocio_id"`
	ClienteID  *int64 `json:"cliente_id"`
	ProductoID *int64 `json:"producto_id"`
	Mensaje    string `json:"mensaje"`
	Cantidad   int    `json:"cantidad"`
}

// CreateOrderResponse confirms a created order.
type CreateOrderResponse struct {
	OK       bool  `json:"ok"`
	PedidoID int64 `json:"pedido_id"`
}

// EditOrderRequest is the payload of PUT /api/pedidos/:id. Nil fields keep
// their stored value; at least one must be supplied.
type EditOrderRequest struct {
	Mensaje  *string `json:"mensaje"`
	Cantidad *int    `json:"cantidad"`
}

// UpdateOrderStatusRequest is the payload of the business status update.
type UpdateOrderStatusRequest struct {
	Estado    string `json:"estado"`
	Respuesta string `json:"respuesta"`
}

// CustomerOrderView is one row of the customer order history.
type CustomerOrderView struct {
	ID             int64     `json:"id"`
	NegocioID      int64     `json:"negocio_id"`
	NegocioNombre  string    `json:"negocio_nombre"`
	ProductoID     *int64    `json:"producto_id"`
	ProductoNombre *string   `json:"producto_nombre"`
	Mensaje        string    `json:"mensaje"`
	Cantidad       int       `json:"cantidad"`
	Estado         string    `json:"estado"`
	Respuesta      string    `json:"respuesta"`
	Fecha          time.Time `json:"fecha"`
}

// CustomerOrdersResponse lists a customer's orders.
type CustomerOrdersResponse struct {
	OK      bool                `json:"ok"`
	Pedidos []CustomerOrderView `json:"pedidos"`
}

// BusinessOrderView is one row of the incoming orders of a business.
// Customer fields are nil for anonymous orders.
type BusinessOrderView struct {
	ID              int64     `json:"id"`
	ClienteID       *int64    `json:"cliente_id"`
	ClienteNombre   *string   `json:"cliente_nombre"`
	ClienteTelefono *string   `json:"cliente_telefono"`
	ProductoID      *int64    `json:"producto_id"`
	ProductoNombre  *string   `json:"producto_nombre"`
	Mensaje         string    `json:"mensaje"`
	Cantidad        int       `json:"cantidad"`
	Estado          string    `json:"estado"`
	Respuesta       string    `json:"respuesta"`
	Fecha           time.Time `json:"fecha"`
}

// BusinessOrdersResponse lists the incoming orders of a business.
type BusinessOrdersResponse struct {
	OK      bool                `json:"ok"`
	Pedidos []BusinessOrderView `json:"pedidos"`
}

func businessView(row queries.GetBusinessesQueryResponse) BusinessView {
	return BusinessView{
		ID:          row.ID,
		UsuarioID:   row.OwnerUserID,
		Nombre:      row.Name,
		CategoriaID: row.CategoryID,
		Categoria:   row.CategoryName,
	}
}

func productView(p *product.Product) ProductView {
	return ProductView{
		ID:          p.ID(),
		NegocioID:   p.BusinessID(),
		Nombre:      p.Name(),
		Descripcion: p.Description(),
		Precio:      p.Price(),
		ImagenURL:   p.ImageURL(),
	}
}

// writeError maps a core error to its status code and Spanish message.
// Unexpected errors stay generic; their detail belongs in the logs, not in
// the response body.
func writeError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Msg: "Datos inválidos", Error: err.Error()})
	case errors.Is(err, errs.ErrNotAuthenticated):
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Msg: "No autenticado"})
	case errors.Is(err, errs.ErrAccessForbidden):
		return c.JSON(http.StatusForbidden, ErrorResponse{Msg: "Acceso denegado"})
	case errors.Is(err, errs.ErrObjectNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Msg: "No encontrado"})
	case errors.Is(err, errs.ErrConflict):
		return c.JSON(http.StatusConflict, ErrorResponse{Msg: "Teléfono ya registrado"})
	default:
		c.Logger().Error(err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Msg: "Error servidor"})
	}
}
