package server

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"probagno/storefront/internal/domain"
)

func (s *Server) registerI18nRoutes(api *echo.Group) {
	api.GET("/i18n/:lang", s.getStringTable)
	api.GET("/i18n/:lang/:key", s.getString)
}

func (s *Server) getStringTable(c echo.Context) error {
	lang := domain.ParseLanguage(c.Param("lang"))
	return c.JSON(http.StatusOK, s.translator.Table(lang))
}

// getString answers with the key itself when it is unknown, like the UI does.
func (s *Server) getString(c echo.Context) error {
	lang := domain.ParseLanguage(c.Param("lang"))
	key := c.Param("key")
	return c.JSON(http.StatusOK, echo.Map{
		"key":   key,
		"value": s.translator.T(lang, key),
		"found": s.translator.Has(key),
	})
}
