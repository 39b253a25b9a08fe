package middleware

import (
	"net/http"
	"strings"

	"app/internal/token"

	"github.com/labstack/echo/v4"
)

const (
	CtxAccountIDKey = "account_id" // string
	CtxEmailKey     = "email"      // string
	CtxRoleKey      = "role"       // model.Role
)

// bearerAuth用のJWT検証ミドルウェア。
// 検証はIssuerのValidateに委ねる（ここで署名や期限を再実装しない）
func AuthJWT(issuer *token.Issuer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			//Authorizationヘッダを取得
			authz := c.Request().Header.Get("Authorization")
			if authz == "" {
				return c.JSON(http.StatusUnauthorized, messageJSON("unauthorized"))
			}

			//Bearer形式か確認してtokenを抜く
			parts := strings.SplitN(authz, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				return c.JSON(http.StatusUnauthorized, messageJSON("unauthorized"))
			}
			rawToken := strings.TrimSpace(parts[1])
			if rawToken == "" {
				return c.JSON(http.StatusUnauthorized, messageJSON("unauthorized"))
			}

			//署名・期限・構造の検証。失敗の種類によらず401
			claims, err := issuer.Validate(rawToken)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, messageJSON("unauthorized"))
			}

			//contextへ保存
			c.Set(CtxAccountIDKey, claims.AccountID)
			c.Set(CtxEmailKey, claims.Email)
			c.Set(CtxRoleKey, claims.Role)

			return next(c)
		}
	}
}

type messageResponse struct {
	Message string `json:"message"`
}

func messageJSON(msg string) messageResponse {
	return messageResponse{Message: msg}
}
