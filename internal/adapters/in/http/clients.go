package http

import (
	"net/http"

	"orderdesk/internal/core/application/usecases/commands"
	"orderdesk/internal/core/application/usecases/queries"
	"orderdesk/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// GetClients handles GET /api/v1/clients?sortOrder=asc|desc.
func (s *Server) GetClients(c echo.Context) error {
	sortOrder, err := queries.ParseSortOrder(c.QueryParam("sortOrder"))
	if err != nil {
		return s.fail(c, err)
	}

	query, err := queries.NewGetClientsQuery(sortOrder)
	if err != nil {
		return s.fail(c, err)
	}

	clients, err := s.handlers.GetClients.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, clients)
}

// GetClient handles GET /api/v1/clients/:id.
func (s *Server) GetClient(c echo.Context) error {
	id, err := parseID("client id", c.Param("id"))
	if err != nil {
		return s.fail(c, err)
	}

	return s.respondClient(c, http.StatusOK, id)
}

// CreateClient handles POST /api/v1/clients.
func (s *Server) CreateClient(c echo.Context) error {
	var req ClientRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	cmd, err := commands.NewCreateClientCommand(req.Name, req.Surname, req.Address, req.Phone)
	if err != nil {
		return s.fail(c, err)
	}

	if err = s.handlers.CreateClient.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	s.invalidateOptions(c)

	return s.respondClient(c, http.StatusCreated, cmd.ClientID())
}

// UpdateClient handles PUT /api/v1/clients/:id.
func (s *Server) UpdateClient(c echo.Context) error {
	id, err := parseID("client id", c.Param("id"))
	if err != nil {
		return s.fail(c, err)
	}

	var req ClientRequest
	if err = c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	cmd, err := commands.NewUpdateClientCommand(id, req.Name, req.Surname, req.Address, req.Phone)
	if err != nil {
		return s.fail(c, err)
	}

	if err = s.handlers.UpdateClient.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	s.invalidateOptions(c)

	return s.respondClient(c, http.StatusOK, id)
}

// DeleteClient handles DELETE /api/v1/clients/:id; the client's orders go with it.
func (s *Server) DeleteClient(c echo.Context) error {
	id, err := parseID("client id", c.Param("id"))
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewDeleteClientCommand(id)
	if err != nil {
		return s.fail(c, err)
	}

	if err = s.handlers.DeleteClient.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	s.invalidateOptions(c)

	return c.NoContent(http.StatusNoContent)
}

func (s *Server) respondClient(c echo.Context, status int, id kernel.UUID) error {
	query, err := queries.NewGetClientQuery(id)
	if err != nil {
		return s.fail(c, err)
	}

	view, err := s.handlers.GetClient.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(status, view)
}
