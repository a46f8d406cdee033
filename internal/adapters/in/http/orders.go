package http

import (
	"bytes"
	"net/http"

	"orderdesk/internal/adapters/out/spreadsheet"
	"orderdesk/internal/core/application/usecases/commands"
	"orderdesk/internal/core/application/usecases/queries"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// GetOrders handles GET /api/v1/orders with optional restaurantId and clientId filters.
func (s *Server) GetOrders(c echo.Context) error {
	views, err := s.listOrders(c)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, newOrderResponses(views))
}

// ExportOrders writes the filtered order list as an xlsx workbook.
func (s *Server) ExportOrders(c echo.Context) error {
	views, err := s.listOrders(c)
	if err != nil {
		return s.fail(c, err)
	}

	var buf bytes.Buffer
	if err = spreadsheet.WriteOrders(&buf, views); err != nil {
		return s.fail(c, err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="orders.xlsx"`)
	return c.Blob(http.StatusOK, xlsxContentType, buf.Bytes())
}

// GetOrderFormOptions returns what a client needs to fill in a new order.
func (s *Server) GetOrderFormOptions(c echo.Context) error {
	options, err := s.handlers.GetOrderFormOpts.Handle(c.Request().Context(), queries.NewGetOrderFormOptionsQuery())
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, options)
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(c echo.Context) error {
	id, err := parseID("order id", c.Param("id"))
	if err != nil {
		return s.fail(c, err)
	}

	return s.respondOrder(c, http.StatusOK, id)
}

// CreateOrder handles POST /api/v1/orders. The total is computed from the items.
func (s *Server) CreateOrder(c echo.Context) error {
	var req OrderRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	restaurantID, err := parseID("restaurant id", req.RestaurantID)
	if err != nil {
		return s.fail(c, err)
	}
	clientID, err := parseID("client id", req.ClientID)
	if err != nil {
		return s.fail(c, err)
	}
	status, err := parseStatus(req.Status)
	if err != nil {
		return s.fail(c, err)
	}
	items, err := req.Items.Items()
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewCreateOrderCommand(restaurantID, clientID, status, items)
	if err != nil {
		return s.fail(c, err)
	}

	if err = s.handlers.CreateOrder.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}

	return s.respondOrder(c, http.StatusCreated, cmd.OrderID())
}

// ChangeOrderStatus handles PATCH /api/v1/orders/:id/status.
func (s *Server) ChangeOrderStatus(c echo.Context) error {
	id, err := parseID("order id", c.Param("id"))
	if err != nil {
		return s.fail(c, err)
	}

	var req StatusRequest
	if err = c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	status, err := order.ParseStatus(req.Status)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(id, status)
	if err != nil {
		return s.fail(c, err)
	}

	if err = s.handlers.ChangeStatus.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}

	return s.respondOrder(c, http.StatusOK, id)
}

func (s *Server) listOrders(c echo.Context) ([]queries.OrderView, error) {
	restaurantID, err := parseOptionalID("restaurantId", c.QueryParam("restaurantId"))
	if err != nil {
		return nil, err
	}
	clientID, err := parseOptionalID("clientId", c.QueryParam("clientId"))
	if err != nil {
		return nil, err
	}

	query, err := queries.NewGetOrdersQuery(restaurantID, clientID)
	if err != nil {
		return nil, err
	}

	return s.handlers.GetOrders.Handle(c.Request().Context(), query)
}

func (s *Server) respondOrder(c echo.Context, status int, id kernel.UUID) error {
	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return s.fail(c, err)
	}

	view, err := s.handlers.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(status, newOrderResponse(view))
}
