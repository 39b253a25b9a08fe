package server

import (
	"app/internal/handler"
	"app/internal/token"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// echoを組み立てて返す。起動（Start）はmain側
func New(issuer *token.Issuer, authH *handler.AuthHandler, userH *handler.UserHandler) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	//リクエストログと panic回復
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	RegisterRoutes(e, issuer, authH, userH)

	return e
}
