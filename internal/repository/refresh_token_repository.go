package repository

import (
	"app/internal/domain/model"
	"context"
	"errors"
)

var ErrRefreshTokenNotFound = errors.New("refresh token not found")

// リフレッシュトークンの保存・取得・差し替え
type RefreshTokenRepository interface {
	// emailで1件検索
	FindByEmail(ctx context.Context, email string) (*model.RefreshToken, error)
	// トークン値で1件検索
	FindByValue(ctx context.Context, value string) (*model.RefreshToken, error)
	// 無ければ作成、有れば値だけを差し替える（IDは保持）。
	// email 1件の不変条件はここだけで守る。Createを直接呼ぶ経路は作らない
	Upsert(ctx context.Context, email string, value string) error
}
