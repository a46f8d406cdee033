package http

import (
	"net/http"

	"orderdesk/internal/core/application/usecases/commands"
	"orderdesk/internal/core/application/usecases/queries"
	"orderdesk/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// GetRestaurants handles GET /api/v1/restaurants?sortOrder=asc|desc.
func (s *Server) GetRestaurants(c echo.Context) error {
	sortOrder, err := queries.ParseSortOrder(c.QueryParam("sortOrder"))
	if err != nil {
		return s.fail(c, err)
	}

	query, err := queries.NewGetRestaurantsQuery(sortOrder)
	if err != nil {
		return s.fail(c, err)
	}

	restaurants, err := s.handlers.GetRestaurants.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, restaurants)
}

// GetRestaurant handles GET /api/v1/restaurants/:id.
func (s *Server) GetRestaurant(c echo.Context) error {
	id, err := parseID("restaurant id", c.Param("id"))
	if err != nil {
		return s.fail(c, err)
	}

	return s.respondRestaurant(c, http.StatusOK, id)
}

// CreateRestaurant handles POST /api/v1/restaurants.
func (s *Server) CreateRestaurant(c echo.Context) error {
	var req RestaurantRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	cmd, err := commands.NewCreateRestaurantCommand(req.Name, req.Address, req.Phone)
	if err != nil {
		return s.fail(c, err)
	}

	if err = s.handlers.CreateRestaurant.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	s.invalidateOptions(c)

	return s.respondRestaurant(c, http.StatusCreated, cmd.RestaurantID())
}

// UpdateRestaurant handles PUT /api/v1/restaurants/:id.
func (s *Server) UpdateRestaurant(c echo.Context) error {
	id, err := parseID("restaurant id", c.Param("id"))
	if err != nil {
		return s.fail(c, err)
	}

	var req RestaurantRequest
	if err = c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	cmd, err := commands.NewUpdateRestaurantCommand(id, req.Name, req.Address, req.Phone)
	if err != nil {
		return s.fail(c, err)
	}

	if err = s.handlers.UpdateRestaurant.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	s.invalidateOptions(c)

	return s.respondRestaurant(c, http.StatusOK, id)
}

// DeleteRestaurant handles DELETE /api/v1/restaurants/:id; orders placed with it go too.
func (s *Server) DeleteRestaurant(c echo.Context) error {
	id, err := parseID("restaurant id", c.Param("id"))
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewDeleteRestaurantCommand(id)
	if err != nil {
		return s.fail(c, err)
	}

	if err = s.handlers.DeleteRestaurant.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	s.invalidateOptions(c)

	return c.NoContent(http.StatusNoContent)
}

func (s *Server) respondRestaurant(c echo.Context, status int, id kernel.UUID) error {
	query, err := queries.NewGetRestaurantQuery(id)
	if err != nil {
		return s.fail(c, err)
	}

	view, err := s.handlers.GetRestaurant.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(status, view)
}
