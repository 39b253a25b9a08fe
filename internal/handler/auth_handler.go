package handler

import (
	"errors"
	"net/http"

	"app/internal/domain/model"
	"app/internal/middleware"
	"app/internal/token"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// 失敗レスポンス共通形
type ErrorResponse struct {
	Message string `json:"message"`
}

// usecaseのsentinel errorをstatusと文言に変換する
func writeError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, usecase.ErrValidation):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Please fill all required fields and try again."})
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "There is an error while login process. Please control your email or password"})
	case errors.Is(err, usecase.ErrDuplicateEmail):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "The email address which you provided is using another user."})
	case errors.Is(err, usecase.ErrUnknownRefreshToken):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "There is no refreshToken which you entered."})
	case errors.Is(err, usecase.ErrAccountMissing):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "There is no account with that email address."})
	default:
		//ストア障害など。request内ではretryしない
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "internal error"})
	}
}

// /login /register /refresh /token-status のHTTP
type AuthHandler struct {
	uc *usecase.AuthUsecase
}

// DI
func NewAuthHandler(uc *usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

type LoginRequest struct {
	Email      string `json:"email"`
	Credential string `json:"credential"`
}

type RegisterRequest struct {
	Email      string `json:"email"`
	Credential string `json:"credential"`
	Name       string `json:"name"`
	Surname    string `json:"surname"`
	Role       string `json:"role"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// 認証系routeを登録
func (h *AuthHandler) RegisterRoutes(e *echo.Echo, issuer *token.Issuer) {
	e.POST("/login", h.login)
	//query版のtemporary login。処理はPOST版と同一
	e.GET("/login", h.temporaryLogin)
	e.POST("/register", h.register)
	e.POST("/refresh", h.refresh)

	g := e.Group("/token-status")
	g.Use(middleware.AuthJWT(issuer))
	g.Use(middleware.RoleGuard(model.RoleUser, model.RoleAdmin))
	g.GET("", h.tokenStatus)
}

func (h *AuthHandler) login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid body"})
	}

	out, err := h.uc.Login(c.Request().Context(), req.Email, req.Credential)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

// credentialをqueryで受けるだけの違い
func (h *AuthHandler) temporaryLogin(c echo.Context) error {
	email := c.QueryParam("email")
	credential := c.QueryParam("credential")

	out, err := h.uc.Login(c.Request().Context(), email, credential)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *AuthHandler) register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid body"})
	}

	out, err := h.uc.Register(c.Request().Context(), usecase.RegisterInput{
		Email:      req.Email,
		Credential: req.Credential,
		Name:       req.Name,
		Surname:    req.Surname,
		Role:       req.Role,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *AuthHandler) refresh(c echo.Context) error {
	var req RefreshRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid body"})
	}

	out, err := h.uc.Refresh(c.Request().Context(), req.RefreshToken)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

// gateが通した時点で有効。中身は定型文のみ
func (h *AuthHandler) tokenStatus(c echo.Context) error {
	return c.JSON(http.StatusOK, h.uc.TokenStatus())
}
