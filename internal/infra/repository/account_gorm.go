package repository

import (
	"app/internal/domain/model"
	domainrepo "app/internal/repository"
	"context"
	"errors"

	"gorm.io/gorm"
)

type accountGormRepository struct {
	db *gorm.DB
}

// DI
// main.goでこれをnewしてusecaseに注入します。
func NewAccountRepository(db *gorm.DB) domainrepo.AccountRepository {
	return &accountGormRepository{db: db}
}

// Create はアカウントを新規作成
func (r *accountGormRepository) Create(ctx context.Context, account *model.Account) error {
	if err := r.db.WithContext(ctx).Create(account).Error; err != nil {
		// emailのunique index違反
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domainrepo.ErrDuplicateEmail
		}
		return err
	}
	return nil
}

// emailでアカウントを1件取得
func (r *accountGormRepository) FindByEmail(ctx context.Context, email string) (*model.Account, error) {
	var a model.Account

	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&a).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainrepo.ErrAccountNotFound
		}
		return nil, err
	}

	return &a, nil
}

// IDでアカウントを1件取得
func (r *accountGormRepository) FindByID(ctx context.Context, id string) (*model.Account, error) {
	var a model.Account

	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&a).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainrepo.ErrAccountNotFound
		}
		return nil, err
	}

	return &a, nil
}

// 全アカウントを取得
func (r *accountGormRepository) FindAll(ctx context.Context) ([]model.Account, error) {
	var accounts []model.Account

	if err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&accounts).Error; err != nil {
		return nil, err
	}

	return accounts, nil
}

// アカウントを更新。
func (r *accountGormRepository) Update(ctx context.Context, account *model.Account) error {
	if err := r.db.WithContext(ctx).Save(account).Error; err != nil {
		return err
	}
	return nil
}

// emailでアカウントを削除
func (r *accountGormRepository) DeleteByEmail(ctx context.Context, email string) error {
	result := r.db.WithContext(ctx).
		Where("email = ?", email).
		Delete(&model.Account{})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainrepo.ErrAccountNotFound
	}

	return nil
}
