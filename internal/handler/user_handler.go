package handler

import (
	"net/http"

	"app/internal/domain/model"
	"app/internal/middleware"
	"app/internal/token"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /users のHTTP。全routeがgateの後ろ
type UserHandler struct {
	uc *usecase.UserUsecase
}

// DI
func NewUserHandler(uc *usecase.UserUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

type UpdateUserRequest struct {
	Name       string `json:"name"`
	Surname    string `json:"surname"`
	Credential string `json:"credential"`
}

// /users を登録
func (h *UserHandler) RegisterRoutes(e *echo.Echo, issuer *token.Issuer) {
	g := e.Group("/users")
	g.Use(middleware.AuthJWT(issuer))
	g.Use(middleware.RoleGuard(model.RoleUser, model.RoleAdmin))

	g.GET("", h.getAccount)
	g.PUT("", h.update)
	g.GET("/all", h.list)
	//削除だけAdmin専用
	g.DELETE("", h.deleteAccount, middleware.RoleGuard(model.RoleAdmin))
}

func (h *UserHandler) getAccount(c echo.Context) error {
	out, err := h.uc.GetByEmail(c.Request().Context(), c.QueryParam("email"))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *UserHandler) update(c echo.Context) error {
	var req UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid body"})
	}

	out, err := h.uc.Update(c.Request().Context(), c.QueryParam("email"), usecase.UpdateAccountInput{
		Name:       req.Name,
		Surname:    req.Surname,
		Credential: req.Credential,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *UserHandler) list(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *UserHandler) deleteAccount(c echo.Context) error {
	out, err := h.uc.DeleteByEmail(c.Request().Context(), c.QueryParam("email"))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}
