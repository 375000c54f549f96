package server

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"probagno/storefront/internal/domain"
)

func (s *Server) registerAdminRoutes(admin *echo.Group) {
	admin.GET("/products", s.adminListProducts)
	admin.POST("/products", s.adminCreateProduct)
	admin.PUT("/products/:id", s.adminUpdateProduct)
	admin.DELETE("/products/:id", s.adminDeleteProduct)

	admin.GET("/categories", s.listCategories)
	admin.POST("/categories", s.adminCreateCategory)
	admin.PUT("/categories/:id", s.adminUpdateCategory)
	admin.DELETE("/categories/:id", s.adminDeleteCategory)

	admin.POST("/seed", s.adminSeed)
	admin.POST("/refresh", s.adminRefresh)
}

func (s *Server) adminListProducts(c echo.Context) error {
	products := s.catalog.SearchProducts(c.Request().Context(), c.QueryParam("q"))
	return c.JSON(http.StatusOK, echo.Map{"items": products, "total": len(products)})
}

func (s *Server) adminCreateProduct(c echo.Context) error {
	var p domain.Product
	if err := c.Bind(&p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid product")
	}

	created, err := s.catalog.CreateProduct(c.Request().Context(), p)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

func (s *Server) adminUpdateProduct(c echo.Context) error {
	var p domain.Product
	if err := c.Bind(&p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid product")
	}

	updated, err := s.catalog.UpdateProduct(c.Request().Context(), c.Param("id"), p)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

func (s *Server) adminDeleteProduct(c echo.Context) error {
	if err := s.catalog.DeleteProduct(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) adminCreateCategory(c echo.Context) error {
	var cat domain.Category
	if err := c.Bind(&cat); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid category")
	}
	cat.ID = ""

	saved, err := s.catalog.SaveCategory(c.Request().Context(), cat)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, saved)
}

func (s *Server) adminUpdateCategory(c echo.Context) error {
	var cat domain.Category
	if err := c.Bind(&cat); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid category")
	}
	cat.ID = c.Param("id")

	saved, err := s.catalog.SaveCategory(c.Request().Context(), cat)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, saved)
}

func (s *Server) adminDeleteCategory(c echo.Context) error {
	if err := s.catalog.DeleteCategory(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) adminSeed(c echo.Context) error {
	saved, err := s.catalog.Seed(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"seeded": saved})
}

func (s *Server) adminRefresh(c echo.Context) error {
	count := s.catalog.Refresh(c.Request().Context())
	return c.JSON(http.StatusOK, echo.Map{"products": count})
}
