package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"probagno/storefront/internal/cart"
)

func (s *Server) registerCartRoutes(api *echo.Group) {
	g := api.Group("/cart/:session")
	g.GET("", s.getCart)
	g.DELETE("", s.clearCart)
	g.POST("/lines", s.addCartLine)
	g.PATCH("/lines", s.updateCartLine)
	g.DELETE("/lines/:productId/:dimensionId", s.removeCartLine)
}

type cartResponse struct {
	*cart.Cart
	ItemCount int             `json:"itemCount"`
	Total     decimal.Decimal `json:"total"`
}

func newCartResponse(c *cart.Cart) cartResponse {
	return cartResponse{Cart: c, ItemCount: c.ItemCount(), Total: c.Total()}
}

func (s *Server) getCart(c echo.Context) error {
	current, err := s.carts.Load(c.Request().Context(), c.Param("session"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newCartResponse(current))
}

func (s *Server) clearCart(c echo.Context) error {
	if err := s.carts.Delete(c.Request().Context(), c.Param("session")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

type addLineRequest struct {
	Slug        string `json:"slug"`
	DimensionID string `json:"dimensionId"`
	Quantity    int    `json:"quantity"`
}

func (s *Server) addCartLine(c echo.Context) error {
	var req addLineRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	ctx := c.Request().Context()
	product, err := s.catalog.ProductBySlug(ctx, req.Slug)
	if err != nil {
		return err
	}

	dimension, ok := product.DefaultDimension()
	if req.DimensionID != "" {
		dimension, ok = product.Dimension(req.DimensionID)
	}
	if !ok {
		return cart.ErrInvalidDimension
	}

	current, err := s.carts.Load(ctx, c.Param("session"))
	if err != nil {
		return err
	}
	if err := current.Add(*product, dimension, req.Quantity); err != nil {
		return err
	}
	if err := s.carts.Save(ctx, current); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, newCartResponse(current))
}

type updateLineRequest struct {
	ProductID   string `json:"productId"`
	DimensionID string `json:"dimensionId"`
	Quantity    int    `json:"quantity"`
}

func (s *Server) updateCartLine(c echo.Context) error {
	var req updateLineRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	ctx := c.Request().Context()
	current, err := s.carts.Load(ctx, c.Param("session"))
	if err != nil {
		return err
	}
	if !current.UpdateQuantity(req.ProductID, req.DimensionID, req.Quantity) {
		return echo.NewHTTPError(http.StatusNotFound, "cart line not found")
	}
	if err := s.carts.Save(ctx, current); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, newCartResponse(current))
}

func (s *Server) removeCartLine(c echo.Context) error {
	ctx := c.Request().Context()
	current, err := s.carts.Load(ctx, c.Param("session"))
	if err != nil {
		return err
	}
	if !current.Remove(c.Param("productId"), c.Param("dimensionId")) {
		return echo.NewHTTPError(http.StatusNotFound, "cart line not found")
	}
	if err := s.carts.Save(ctx, current); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, newCartResponse(current))
}
