package server

import (
	"app/internal/handler"
	"app/internal/token"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo, issuer *token.Issuer, authH *handler.AuthHandler, userH *handler.UserHandler) {
	authH.RegisterRoutes(e, issuer)
	userH.RegisterRoutes(e, issuer)
}
