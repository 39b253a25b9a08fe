package validator

import (
	"context"
	"regexp"
	"strings"

	"app/internal/usecase"
)

type authValidator struct{}

// Usecaseは interface を依存注入
func NewAuthValidator() usecase.AuthValidator {
	return &authValidator{}
}

// ログインの入力を検証。
// emailの存在確認はここではしない（credential照合と区別させない）
func (v *authValidator) ValidateLogin(ctx context.Context, email string, credential string) error {
	//必須チェック
	if strings.TrimSpace(email) == "" || credential == "" {
		return usecase.ErrValidation
	}

	return nil
}

// 会員登録の入力を検証
func (v *authValidator) ValidateRegister(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)

	//必須チェック
	if email == "" {
		return usecase.ErrValidation
	}

	//email形式
	if !isEmailLike(email) {
		return usecase.ErrValidation
	}

	return nil
}

// refresh入力を検証
func (v *authValidator) ValidateRefresh(ctx context.Context, refreshToken string) error {
	if strings.TrimSpace(refreshToken) == "" {
		return usecase.ErrValidation
	}

	return nil
}

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// 簡易メール形式をチェック
func isEmailLike(s string) bool {
	return emailRe.MatchString(s)
}
