package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	domainrepo "app/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type refreshTokenGormRepository struct {
	db *gorm.DB //DB接続（GORM）
}

// GORM実装
func NewRefreshTokenRepository(db *gorm.DB) domainrepo.RefreshTokenRepository {
	return &refreshTokenGormRepository{db: db}
}

// emailで1件検索します。
func (r *refreshTokenGormRepository) FindByEmail(ctx context.Context, email string) (*model.RefreshToken, error) {
	var token model.RefreshToken

	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&token).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainrepo.ErrRefreshTokenNotFound
		}
		return nil, err
	}

	return &token, nil
}

// トークン値で1件検索します。
func (r *refreshTokenGormRepository) FindByValue(ctx context.Context, value string) (*model.RefreshToken, error) {
	var token model.RefreshToken

	err := r.db.WithContext(ctx).
		Where("token = ?", value).
		First(&token).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainrepo.ErrRefreshTokenNotFound
		}
		return nil, err
	}

	return &token, nil
}

// 無ければINSERT、有ればtokenだけUPDATE。
// ON CONFLICT(email) の1文で書くので同一emailの同時ログインでも2件にならない。
// 既存行のIDはそのまま残る
func (r *refreshTokenGormRepository) Upsert(ctx context.Context, email string, value string) error {
	token := &model.RefreshToken{
		ID:    uuid.NewString(),
		Email: email,
		Token: value,
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}},
			DoUpdates: clause.AssignmentColumns([]string{"token", "updated_at"}),
		}).
		Create(token).Error
}
