package usecase

import (
	"context"
	"errors"
	"time"

	"app/internal/domain/model"
	"app/internal/repository"
)

//400 emailに一致するアカウントが無い
var ErrAccountMissing = errors.New("account missing")

// API返却用（credentialは絶対に含めない）
type AccountResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Surname   string    `json:"surname"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// PUT /users の入力
type UpdateAccountInput struct {
	Name       string
	Surname    string
	Credential string
}

// アカウント参照・更新・削除。認可はmiddleware側で済んでいる前提
type UserUsecase struct {
	accounts repository.AccountRepository
	hasher   CredentialHasher
}

func NewUserUsecase(accounts repository.AccountRepository, hasher CredentialHasher) *UserUsecase {
	return &UserUsecase{accounts: accounts, hasher: hasher}
}

// emailでアカウントを1件返す
func (u *UserUsecase) GetByEmail(ctx context.Context, email string) (*AccountResponse, error) {
	if email == "" {
		return nil, ErrValidation
	}

	account, err := u.accounts.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, ErrAccountMissing
		}
		return nil, err
	}

	res := toAccountResponse(account)
	return &res, nil
}

// name / surname / credential を更新する。email・roleは変えない
func (u *UserUsecase) Update(ctx context.Context, email string, in UpdateAccountInput) (*SuccessResponse, error) {
	if email == "" {
		return nil, ErrValidation
	}
	//全項目必須
	if in.Name == "" || in.Surname == "" || in.Credential == "" {
		return nil, ErrValidation
	}

	account, err := u.accounts.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, ErrAccountMissing
		}
		return nil, err
	}

	hashed, err := u.hasher.Hash(in.Credential)
	if err != nil {
		return nil, err
	}

	account.Name = in.Name
	account.Surname = in.Surname
	account.CredentialHash = hashed

	if err := u.accounts.Update(ctx, account); err != nil {
		return nil, err
	}

	return &SuccessResponse{Message: "Account's updated"}, nil
}

// 全アカウントを返す
func (u *UserUsecase) List(ctx context.Context) ([]AccountResponse, error) {
	accounts, err := u.accounts.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]AccountResponse, 0, len(accounts))
	for i := range accounts {
		res = append(res, toAccountResponse(&accounts[i]))
	}
	return res, nil
}

// emailでアカウントを削除する（Admin専用route）
func (u *UserUsecase) DeleteByEmail(ctx context.Context, email string) (*SuccessResponse, error) {
	if email == "" {
		return nil, ErrValidation
	}

	if err := u.accounts.DeleteByEmail(ctx, email); err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, ErrAccountMissing
		}
		return nil, err
	}

	return &SuccessResponse{Message: "Account is deleted"}, nil
}

func toAccountResponse(a *model.Account) AccountResponse {
	return AccountResponse{
		ID:        a.ID,
		Email:     a.Email,
		Name:      a.Name,
		Surname:   a.Surname,
		Role:      string(a.Role),
		CreatedAt: a.CreatedAt,
	}
}
