package handler

import (
	"net/http"

	"beaticafe/internal/usecase"

	"github.com/labstack/echo/v4"
)

// MenuHandler is the public catalog API.
type MenuHandler struct {
	uc *usecase.CatalogUsecase
}

func NewMenuHandler(uc *usecase.CatalogUsecase) *MenuHandler {
	return &MenuHandler{uc: uc}
}

func (h *MenuHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/menu", h.menu)
	e.GET("/categories", h.categories)
	e.GET("/products/featured", h.featured)
	e.GET("/products/:id", h.detail)
}

// menu takes the same query string the website keeps in its address bar:
// category, search, minPrice, maxPrice, sort.
func (h *MenuHandler) menu(c echo.Context) error {
	return c.JSON(http.StatusOK, h.uc.Menu(c.QueryParams()))
}

func (h *MenuHandler) categories(c echo.Context) error {
	return c.JSON(http.StatusOK, h.uc.Categories())
}

func (h *MenuHandler) featured(c echo.Context) error {
	return c.JSON(http.StatusOK, h.uc.Featured())
}

func (h *MenuHandler) detail(c echo.Context) error {
	out, err := h.uc.GetProduct(c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
