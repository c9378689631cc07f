package handler

import (
	"net/http"

	"beaticafe/internal/domain/model"

	"github.com/labstack/echo/v4"
)

// InfoHandler serves the static pages (about, team, testimonials).
type InfoHandler struct {
	cafe model.Cafe
}

func NewInfoHandler(cafe model.Cafe) *InfoHandler {
	return &InfoHandler{cafe: cafe}
}

type InfoResponse struct {
	Info     model.CafeInfo     `json:"info"`
	Team     []model.TeamMember `json:"team"`
	Features []string           `json:"features"`
}

type healthResponse struct {
	Status string `json:"status"`
}

func (h *InfoHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", h.health)
	e.GET("/info", h.info)
	e.GET("/testimonials", h.testimonials)
}

func (h *InfoHandler) health(c echo.Context) error {
	return c.JSON(http.StatusOK, healthResponse{Status: "ok"})
}

func (h *InfoHandler) info(c echo.Context) error {
	return c.JSON(http.StatusOK, InfoResponse{
		Info:     h.cafe.Info,
		Team:     h.cafe.Team,
		Features: h.cafe.Features,
	})
}

func (h *InfoHandler) testimonials(c echo.Context) error {
	return c.JSON(http.StatusOK, h.cafe.Testimonials)
}
