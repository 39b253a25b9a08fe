package repository

import (
	"app/internal/domain/model"
	"context"
	"errors"
)

// アカウントが見つかりませんを統一
var ErrAccountNotFound = errors.New("account not found")

// emailの一意制約違反を統一
var ErrDuplicateEmail = errors.New("duplicate email")

// 保存・取得を約束
type AccountRepository interface {
	// 新規アカウント作成。email重複はErrDuplicateEmail
	Create(ctx context.Context, account *model.Account) error
	// emailからアカウントを1件取得する
	FindByEmail(ctx context.Context, email string) (*model.Account, error)
	// IDからアカウントを1件取得する
	FindByID(ctx context.Context, id string) (*model.Account, error)
	// 全アカウントを取得する
	FindAll(ctx context.Context) ([]model.Account, error)
	// アカウント情報の更新（name/surname/credentialなど）
	Update(ctx context.Context, account *model.Account) error
	// emailでアカウントを削除する
	DeleteByEmail(ctx context.Context, email string) error
}
