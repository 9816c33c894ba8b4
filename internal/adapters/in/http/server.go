// Package http is the inbound HTTP adapter: echo routes, the session
// middleware and the Spanish wire contract the frontend consumes.
package http

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"entregaloya/internal/core/application/usecases/commands"
	"entregaloya/internal/core/application/usecases/queries"
	"entregaloya/internal/core/domain/model/order"
	"entregaloya/internal/core/domain/model/session"
	"entregaloya/internal/core/domain/model/user"
	"entregaloya/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	registerHandler          commands.RegisterUserCommandHandler
	loginHandler             commands.LoginCommandHandler
	logoutHandler            commands.LogoutCommandHandler
	createProductHandler     commands.CreateProductCommandHandler
	updateProductHandler     commands.UpdateProductCommandHandler
	deleteProductHandler     commands.DeleteProductCommandHandler
	createOrderHandler       commands.CreateOrderCommandHandler
	editOrderHandler         commands.EditOrderCommandHandler
	deleteOrderHandler       commands.DeleteOrderCommandHandler
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler

	// Query handlers
	getCategoriesHandler       queries.GetCategoriesQueryHandler
	getBusinessesHandler       queries.GetBusinessesQueryHandler
	getBusinessHandler         queries.GetBusinessQueryHandler
	getBusinessProductsHandler queries.GetBusinessProductsQueryHandler
	getCustomerOrdersHandler   queries.GetCustomerOrdersQueryHandler
	getBusinessOrdersHandler   queries.GetBusinessOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(
	registerHandler commands.RegisterUserCommandHandler,
	loginHandler commands.LoginCommandHandler,
	logoutHandler commands.LogoutCommandHandler,
	createProductHandler commands.CreateProductCommandHandler,
	updateProductHandler commands.UpdateProductCommandHandler,
	deleteProductHandler commands.DeleteProductCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	editOrderHandler commands.EditOrderCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	getCategoriesHandler queries.GetCategoriesQueryHandler,
	getBusinessesHandler queries.GetBusinessesQueryHandler,
	getBusinessHandler queries.GetBusinessQueryHandler,
	getBusinessProductsHandler queries.GetBusinessProductsQueryHandler,
	getCustomerOrdersHandler queries.GetCustomerOrdersQueryHandler,
	getBusinessOrdersHandler queries.GetBusinessOrdersQueryHandler,
) *Server {
	return &Server{
		registerHandler:            registerHandler,
		loginHandler:               loginHandler,
		logoutHandler:              logoutHandler,
		createProductHandler:       createProductHandler,
		updateProductHandler:       updateProductHandler,
		deleteProductHandler:       deleteProductHandler,
		createOrderHandler:         createOrderHandler,
		editOrderHandler:           editOrderHandler,
		deleteOrderHandler:         deleteOrderHandler,
		updateOrderStatusHandler:   updateOrderStatusHandler,
		getCategoriesHandler:       getCategoriesHandler,
		getBusinessesHandler:       getBusinessesHandler,
		getBusinessHandler:         getBusinessHandler,
		getBusinessProductsHandler: getBusinessProductsHandler,
		getCustomerOrdersHandler:   getCustomerOrdersHandler,
		getBusinessOrdersHandler:   getBusinessOrdersHandler,
	}
}

// RegisterRoutes wires all API routes under /api. The session middleware
// resolves the actor on every request; enforcement is per route.
func (s *Server) RegisterRoutes(e *echo.Echo, mw *SessionMiddleware) {
	api := e.Group("/api", mw.ResolveActor)

	api.GET("/ping", s.Ping)
	api.GET("/categorias", s.GetCategories)

	api.POST("/auth/register", s.Register)
	api.POST("/auth/login", s.Login)
	api.POST("/auth/logout", s.Logout)

	api.GET("/negocios", s.GetBusinesses)
	api.GET("/negocios/:id", s.GetBusiness)

	businessOnly := []echo.MiddlewareFunc{mw.RequireAuth, mw.RequireRole(user.Business)}
	api.GET("/negocios/:id/productos", s.GetBusinessProducts, businessOnly...)
	api.POST("/negocios/:id/productos", s.CreateProduct, businessOnly...)
	api.PUT("/productos/:id", s.UpdateProduct, businessOnly...)
	api.POST("/productos/:id", s.UpdateProduct, businessOnly...)
	api.DELETE("/productos/:id", s.DeleteProduct, businessOnly...)

	api.POST("/pedidos", s.CreateOrder)
	api.GET("/pedidos/cliente/:id", s.GetCustomerOrders)
	api.GET("/pedidos/negocio/:id", s.GetBusinessOrders)
	api.PUT("/pedidos/:id", s.EditOrder, mw.RequireAuth)
	api.DELETE("/pedidos/:id", s.DeleteOrder, mw.RequireAuth)
	api.PUT("/pedidos/negocio/estado/:id", s.UpdateOrderStatus, businessOnly...)
	// Original frontend path; same handler, kept for wire compatibility.
	api.PUT("/pedidos/negocio/:id", s.UpdateOrderStatus, businessOnly...)
}

// Ping handles GET /api/ping.
func (s *Server) Ping(c echo.Context) error {
	return c.JSON(http.StatusOK, StatusResponse{OK: true, Msg: "pong"})
}

// GetCategories handles GET /api/categorias.
func (s *Server) GetCategories(c echo.Context) error {
	query := queries.NewGetCategoriesQuery()

	rows, err := s.getCategoriesHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	views := make([]CategoryView, 0, len(rows))
	for _, row := range rows {
		views = append(views, CategoryView{
			ID:          row.ID,
			Nombre:      row.Name,
			Descripcion: row.Description,
		})
	}

	return c.JSON(http.StatusOK, CategoriesResponse{OK: true, Categorias: views})
}

// Register handles POST /api/auth/register.
func (s *Server) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Msg: "Datos inválidos"})
	}

	role, err := user.RoleFromString(req.Tipo)
	if err != nil {
		return writeError(c, err)
	}

	cmd, err := commands.NewRegisterUserCommand(role, req.Nombre, req.Telefono, req.Password)
	if err != nil {
		return writeError(c, err)
	}

	userID, err := s.registerHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, RegisterResponse{OK: true, Msg: "Registrado", UserID: userID})
}

// Login handles POST /api/auth/login. A successful login sets the session
// cookie and returns the user view.
func (s *Server) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Msg: "Datos inválidos"})
	}

	role, err := user.RoleFromString(req.Tipo)
	if err != nil {
		return writeError(c, err)
	}

	cmd, err := commands.NewLoginCommand(role, req.Telefono, req.Password)
	if err != nil {
		return writeError(c, err)
	}

	result, err := s.loginHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}

	c.SetCookie(&http.Cookie{
		Name:     SessionCookieName,
		Value:    result.Token.String(),
		Path:     "/",
		Expires:  result.ExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return c.JSON(http.StatusOK, LoginResponse{
		OK:  true,
		Msg: "Login ok",
		User: UserView{
			ID:        result.UserID,
			Nombre:    result.Name,
			Tipo:      result.Role.String(),
			NegocioID: result.BusinessID,
		},
	})
}

// Logout handles POST /api/auth/logout. Idempotent: a missing or malformed
// cookie still answers 200 with the cookie cleared.
func (s *Server) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
		if token, tokenErr := session.TokenFromString(cookie.Value); tokenErr == nil {
			cmd, cmdErr := commands.NewLogoutCommand(token)
			if cmdErr != nil {
				return writeError(c, cmdErr)
			}
			if handleErr := s.logoutHandler.Handle(c.Request().Context(), cmd); handleErr != nil {
				return writeError(c, handleErr)
			}
		}
	}

	c.SetCookie(&http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return c.JSON(http.StatusOK, StatusResponse{OK: true, Msg: "Logout"})
}

// GetBusinesses handles GET /api/negocios with an optional usuario_id
// filter.
func (s *Server) GetBusinesses(c echo.Context) error {
	var ownerUserID *int64
	if raw := c.QueryParam("usuario_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return writeError(c, errs.NewValueIsInvalidError("usuario_id"))
		}
		ownerUserID = &id
	}

	query, err := queries.NewGetBusinessesQuery(ownerUserID)
	if err != nil {
		return writeError(c, err)
	}

	rows, err := s.getBusinessesHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	views := make([]BusinessView, 0, len(rows))
	for _, row := range rows {
		views = append(views, businessView(row))
	}

	return c.JSON(http.StatusOK, BusinessesResponse{OK: true, Negocios: views})
}

// GetBusiness handles GET /api/negocios/:id.
func (s *Server) GetBusiness(c echo.Context) error {
	businessID, err := parseIDParam(c, "negocio_id")
	if err != nil {
		return writeError(c, err)
	}

	query, err := queries.NewGetBusinessQuery(businessID)
	if err != nil {
		return writeError(c, err)
	}

	row, err := s.getBusinessHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, BusinessResponse{OK: true, Negocio: businessView(row)})
}

// GetBusinessProducts handles GET /api/negocios/:id/productos. Owner only.
func (s *Server) GetBusinessProducts(c echo.Context) error {
	businessID, err := parseIDParam(c, "negocio_id")
	if err != nil {
		return writeError(c, err)
	}

	actor, _ := actorFromContext(c)
	if !actor.OwnsBusiness(businessID) {
		return c.JSON(http.StatusForbidden, ErrorResponse{Msg: "No autorizado para este negocio"})
	}

	query, err := queries.NewGetBusinessProductsQuery(businessID)
	if err != nil {
		return writeError(c, err)
	}

	rows, err := s.getBusinessProductsHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	views := make([]ProductView, 0, len(rows))
	for _, row := range rows {
		views = append(views, ProductView{
			ID:          row.ID,
			NegocioID:   row.BusinessID,
			Nombre:      row.Name,
			Descripcion: row.Description,
			Precio:      row.Price,
			ImagenURL:   row.ImageURL,
		})
	}

	return c.JSON(http.StatusOK, ProductsResponse{OK: true, Productos: views})
}

// CreateProduct handles POST /api/negocios/:id/productos, multipart or
// JSON.
func (s *Server) CreateProduct(c echo.Context) error {
	businessID, err := parseIDParam(c, "negocio_id")
	if err != nil {
		return writeError(c, err)
	}

	actor, _ := actorFromContext(c)

	var (
		name, description string
		price             *decimal.Decimal
		image             *commands.ImageAttachment
	)

	if isMultipart(c) {
		name = c.FormValue("nombre")
		description = c.FormValue("descripcion")

		price, err = parsePriceForm(c)
		if err != nil {
			return writeError(c, err)
		}

		var closeImage func()
		image, closeImage, err = imageFromForm(c)
		if err != nil {
			return writeError(c, err)
		}
		if closeImage != nil {
			defer closeImage()
		}
	} else {
		var req ProductRequest
		if bindErr := c.Bind(&req); bindErr != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Msg: "Datos inválidos"})
		}
		name = req.Nombre
		description = req.Descripcion
		price = req.Precio
	}

	cmd, err := commands.NewCreateProductCommand(actor, businessID, name, description, price, image)
	if err != nil {
		return writeError(c, err)
	}

	created, err := s.createProductHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, ProductResponse{OK: true, Producto: productView(created)})
}

// UpdateProduct handles PUT and POST /api/productos/:id. Omitted fields
// keep their stored value.
func (s *Server) UpdateProduct(c echo.Context) error {
	productID, err := parseIDParam(c, "producto_id")
	if err != nil {
		return writeError(c, err)
	}

	actor, _ := actorFromContext(c)

	var (
		name, description *string
		price             *decimal.Decimal
		image             *commands.ImageAttachment
	)

	if isMultipart(c) {
		if v := c.FormValue("nombre"); v != "" {
			name = &v
		}
		if v := c.FormValue("descripcion"); v != "" {
			description = &v
		}

		price, err = parsePriceForm(c)
		if err != nil {
			return writeError(c, err)
		}

		var closeImage func()
		image, closeImage, err = imageFromForm(c)
		if err != nil {
			return writeError(c, err)
		}
		if closeImage != nil {
			defer closeImage()
		}
	} else {
		var req ProductUpdateRequest
		if bindErr := c.Bind(&req); bindErr != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Msg: "Datos inválidos"})
		}
		name = req.Nombre
		description = req.Descripcion
		price = req.Precio
	}

	cmd, err := commands.NewUpdateProductCommand(actor, productID, name, description, price, image)
	if err != nil {
		return writeError(c, err)
	}

	updated, err := s.updateProductHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, ProductResponse{OK: true, Producto: productView(updated)})
}

// DeleteProduct handles DELETE /api/productos/:id.
func (s *Server) DeleteProduct(c echo.Context) error {
	productID, err := parseIDParam(c, "producto_id")
	if err != nil {
		return writeError(c, err)
	}

	actor, _ := actorFromContext(c)

	cmd, err := commands.NewDeleteProductCommand(actor, productID)
	if err != nil {
		return writeError(c, err)
	}

	if err = s.deleteProductHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, StatusResponse{OK: true, Msg: "Producto eliminado"})
}

// CreateOrder handles POST /api/pedidos. Open to anonymous callers; the
// optional cliente_id links the order to an account.
func (s *Server) CreateOrder(c echo.Context) error {
	var req CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Msg: "Datos inválidos"})
	}

	cmd, err := commands.NewCreateOrderCommand(req.ClienteID, req.NegocioID, req.ProductoID, req.Mensaje, req.Cantidad)
	if err != nil {
		return writeError(c, err)
	}

	orderID, err := s.createOrderHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, CreateOrderResponse{OK: true, PedidoID: orderID})
}

// GetCustomerOrders handles GET /api/pedidos/cliente/:id.
func (s *Server) GetCustomerOrders(c echo.Context) error {
	customerID, err := parseIDParam(c, "cliente_id")
	if err != nil {
		return writeError(c, err)
	}

	query, err := queries.NewGetCustomerOrdersQuery(customerID)
	if err != nil {
		return writeError(c, err)
	}

	rows, err := s.getCustomerOrdersHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	views := make([]CustomerOrderView, 0, len(rows))
	for _, row := range rows {
		views = append(views, CustomerOrderView{
			ID:             row.ID,
			NegocioID:      row.BusinessID,
			NegocioNombre:  row.BusinessName,
			ProductoID:     row.ProductID,
			ProductoNombre: row.ProductName,
			Mensaje:        row.Message,
			Cantidad:       row.Quantity,
			Estado:         row.Status,
			Respuesta:      row.Response,
			Fecha:          row.CreatedAt,
		})
	}

	return c.JSON(http.StatusOK, CustomerOrdersResponse{OK: true, Pedidos: views})
}

// GetBusinessOrders handles GET /api/pedidos/negocio/:id.
func (s *Server) GetBusinessOrders(c echo.Context) error {
	businessID, err := parseIDParam(c, "negocio_id")
	if err != nil {
		return writeError(c, err)
	}

	query, err := queries.NewGetBusinessOrdersQuery(businessID)
	if err != nil {
		return writeError(c, err)
	}

	rows, err := s.getBusinessOrdersHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	views := make([]BusinessOrderView, 0, len(rows))
	for _, row := range rows {
		views = append(views, BusinessOrderView{
			ID:              row.ID,
			ClienteID:       row.CustomerID,
			ClienteNombre:   row.CustomerName,
			ClienteTelefono: row.CustomerPhone,
			ProductoID:      row.ProductID,
			ProductoNombre:  row.ProductName,
			Mensaje:         row.Message,
			Cantidad:        row.Quantity,
			Estado:          row.Status,
			Respuesta:       row.Response,
			Fecha:           row.CreatedAt,
		})
	}

	return c.JSON(http.StatusOK, BusinessOrdersResponse{OK: true, Pedidos: views})
}

// EditOrder handles PUT /api/pedidos/:id, the customer editing their own
// pending order.
func (s *Server) EditOrder(c echo.Context) error {
	orderID, err := parseIDParam(c, "pedido_id")
	if err != nil {
		return writeError(c, err)
	}

	actor, _ := actorFromContext(c)

	var req EditOrderRequest
	if bindErr := c.Bind(&req); bindErr != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Msg: "Datos inválidos"})
	}

	cmd, err := commands.NewEditOrderCommand(actor, orderID, req.Mensaje, req.Cantidad)
	if err != nil {
		return writeError(c, err)
	}

	if err = s.editOrderHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, StatusResponse{OK: true, Msg: "Pedido actualizado"})
}

// DeleteOrder handles DELETE /api/pedidos/:id.
func (s *Server) DeleteOrder(c echo.Context) error {
	orderID, err := parseIDParam(c, "pedido_id")
	if err != nil {
		return writeError(c, err)
	}

	actor, _ := actorFromContext(c)

	cmd, err := commands.NewDeleteOrderCommand(actor, orderID)
	if err != nil {
		return writeError(c, err)
	}

	if err = s.deleteOrderHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, StatusResponse{OK: true, Msg: "Pedido eliminado"})
}

// UpdateOrderStatus handles PUT /api/pedidos/negocio/estado/:id, the
// business confirming or cancelling an incoming order.
func (s *Server) UpdateOrderStatus(c echo.Context) error {
	orderID, err := parseIDParam(c, "pedido_id")
	if err != nil {
		return writeError(c, err)
	}

	actor, _ := actorFromContext(c)

	var req UpdateOrderStatusRequest
	if bindErr := c.Bind(&req); bindErr != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Msg: "Datos inválidos"})
	}

	status, err := order.StatusFromString(req.Estado)
	if err != nil {
		return writeError(c, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(actor, orderID, status, req.Respuesta)
	if err != nil {
		return writeError(c, err)
	}

	if err = s.updateOrderStatusHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, StatusResponse{OK: true, Msg: "Pedido actualizado por negocio"})
}

func parseIDParam(c echo.Context, paramName string) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, errs.NewValueIsInvalidError(paramName)
	}
	return id, nil
}

func isMultipart(c echo.Context) bool {
	return strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm)
}

func parsePriceForm(c echo.Context) (*decimal.Decimal, error) {
	raw := c.FormValue("precio")
	if raw == "" {
		return nil, nil
	}

	price, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("precio", err)
	}
	return &price, nil
}

// imageFromForm extracts the optional upload. The file part is accepted
// under "file" or "imagen". The returned closer releases the part and must
// be deferred by the caller when an image is present.
func imageFromForm(c echo.Context) (*commands.ImageAttachment, func(), error) {
	header, err := c.FormFile("file")
	if err != nil {
		header, err = c.FormFile("imagen")
	}
	if err != nil || header == nil {
		return nil, nil, nil
	}

	src, err := header.Open()
	if err != nil {
		return nil, nil, err
	}

	return &commands.ImageAttachment{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Content:     src,
	}, func() { _ = src.Close() }, nil
}
