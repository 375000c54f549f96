package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	log "github.com/sirupsen/logrus"

	"probagno/storefront/internal/cart"
	"probagno/storefront/internal/catalog"
	"probagno/storefront/internal/config"
	"probagno/storefront/internal/domain"
	"probagno/storefront/internal/i18n"
)

// Catalog is what the HTTP layer needs from the catalog service.
type Catalog interface {
	Query(ctx context.Context, sel domain.FilterSelection) catalog.QueryResult
	Facets(ctx context.Context) domain.Facets
	MaxPrice(ctx context.Context) float64
	ProductBySlug(ctx context.Context, slug string) (*domain.Product, error)
	Categories(ctx context.Context) []domain.Category

	SearchProducts(ctx context.Context, q string) []domain.Product
	CreateProduct(ctx context.Context, p domain.Product) (*domain.Product, error)
	UpdateProduct(ctx context.Context, id string, p domain.Product) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id string) error
	SaveCategory(ctx context.Context, c domain.Category) (*domain.Category, error)
	DeleteCategory(ctx context.Context, id string) error
	Seed(ctx context.Context) (int, error)
	Refresh(ctx context.Context) int
}

type Server struct {
	echo       *echo.Echo
	config     config.ServerConfig
	catalog    Catalog
	carts      cart.Store
	translator *i18n.Translator
}

func New(cfg config.ServerConfig, catalog Catalog, carts cart.Store, translator *i18n.Translator) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	s := &Server{
		echo:       e,
		config:     cfg,
		catalog:    catalog,
		carts:      carts,
		translator: translator,
	}

	e.HTTPErrorHandler = s.handleError
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.WithFields(log.Fields{
				"method":  v.Method,
				"uri":     v.URI,
				"status":  v.Status,
				"latency": v.Latency.String(),
			}).Debug("request")
			return nil
		},
	}))

	api := e.Group("/api")
	s.registerStorefrontRoutes(api)
	s.registerCartRoutes(api)
	s.registerI18nRoutes(api)

	admin := api.Group("/admin")
	admin.Use(middleware.BasicAuthWithConfig(middleware.BasicAuthConfig{
		Realm: "probagno-admin",
		Validator: func(username, password string, c echo.Context) (bool, error) {
			if s.config.AdminPassword == "" {
				return false, nil
			}
			return username == s.config.AdminUser && password == s.config.AdminPassword, nil
		},
	}))
	s.registerAdminRoutes(admin)

	return s
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		log.Infof("🌐 HTTP API listening on %s", s.config.Addr())
		if err := s.echo.Start(s.config.Addr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	log.Info("🛑 Shutting down HTTP API...")
	return s.echo.Shutdown(shutdownCtx)
}

func (s *Server) handleError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := "internal server error"

	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &httpErr):
		code = httpErr.Code
		if m, ok := httpErr.Message.(string); ok {
			message = m
		} else {
			message = http.StatusText(code)
		}
	case errors.Is(err, catalog.ErrProductNotFound), errors.Is(err, catalog.ErrCategoryNotFound):
		code, message = http.StatusNotFound, err.Error()
	case errors.Is(err, catalog.ErrCategoryInUse):
		code, message = http.StatusConflict, err.Error()
	case errors.Is(err, catalog.ErrInvalidSlug),
		errors.Is(err, cart.ErrInvalidQuantity),
		errors.Is(err, cart.ErrInvalidDimension):
		code, message = http.StatusBadRequest, err.Error()
	default:
		log.Errorf("❌ %s %s failed: %v", c.Request().Method, c.Request().URL.Path, err)
	}

	if err := c.JSON(code, echo.Map{"error": message}); err != nil {
		log.Errorf("❌ Failed to write error response: %v", err)
	}
}

func requestLanguage(c echo.Context) domain.Language {
	return domain.ParseLanguage(c.QueryParam("lang"))
}
