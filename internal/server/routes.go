package server

import (
	"beaticafe/internal/handler"
	"beaticafe/internal/middleware"
	"beaticafe/internal/repository"

	"github.com/labstack/echo/v4"
)

// Handlers is everything the API serves.
type Handlers struct {
	Menu    *handler.MenuHandler
	Info    *handler.InfoHandler
	Cart    *handler.CartHandler
	Auth    *handler.AuthHandler
	Contact *handler.ContactHandler
	Chat    *handler.ChatHandler
}

func RegisterRoutes(e *echo.Echo, jwtSecret string, chatPerMin int, users repository.UserRepository, h Handlers) {
	auth := []echo.MiddlewareFunc{
		middleware.AuthJWT(jwtSecret),
		middleware.TokenVersionGuard(users),
	}

	h.Info.RegisterRoutes(e)
	h.Menu.RegisterRoutes(e)
	h.Contact.RegisterRoutes(e)
	h.Chat.RegisterRoutes(e, middleware.PerMinute(chatPerMin))
	h.Auth.RegisterRoutes(e, auth...)
	h.Cart.RegisterRoutes(e, auth...)
}
