package handler

import (
	"net/http"

	"beaticafe/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ChatHandler is the assistant widget.
type ChatHandler struct {
	uc *usecase.ChatUsecase
}

func NewChatHandler(uc *usecase.ChatUsecase) *ChatHandler {
	return &ChatHandler{uc: uc}
}

// RegisterRoutes mounts /chat. limit is applied to POST only.
func (h *ChatHandler) RegisterRoutes(e *echo.Echo, limit ...echo.MiddlewareFunc) {
	e.GET("/chat", h.intro)
	e.POST("/chat", h.reply, limit...)
}

func (h *ChatHandler) intro(c echo.Context) error {
	return c.JSON(http.StatusOK, h.uc.Intro())
}

func (h *ChatHandler) reply(c echo.Context) error {
	var req usecase.ChatInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.Reply(c.Request().Context(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
