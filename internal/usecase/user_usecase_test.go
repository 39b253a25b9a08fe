package usecase_test

import (
	"context"
	"testing"

	"app/internal/domain/model"
	"app/internal/repository"
	"app/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func newUserUsecase(accounts *MockAccountRepository) *usecase.UserUsecase {
	return usecase.NewUserUsecase(accounts, usecase.NewBcryptCredentialHasher(bcrypt.MinCost))
}

// 取得結果にcredentialは含まれない
func TestUserUsecase_GetByEmail(t *testing.T) {
	accounts := new(MockAccountRepository)
	uc := newUserUsecase(accounts)

	account := &model.Account{
		ID:             "acc-1",
		Email:          "a@x.com",
		CredentialHash: "hash",
		Name:           "Ada",
		Surname:        "Lovelace",
		Role:           model.RoleUser,
	}
	accounts.On("FindByEmail", mock.Anything, "a@x.com").Return(account, nil)

	out, err := uc.GetByEmail(context.Background(), "a@x.com")
	assert.NoError(t, err)
	assert.Equal(t, "acc-1", out.ID)
	assert.Equal(t, "Ada", out.Name)
	assert.Equal(t, "User", out.Role)
}

func TestUserUsecase_GetByEmail_Missing(t *testing.T) {
	accounts := new(MockAccountRepository)
	uc := newUserUsecase(accounts)

	accounts.On("FindByEmail", mock.Anything, "nobody@x.com").Return(nil, repository.ErrAccountNotFound)

	_, err := uc.GetByEmail(context.Background(), "nobody@x.com")
	assert.ErrorIs(t, err, usecase.ErrAccountMissing)

	//email無しはValidation
	_, err = uc.GetByEmail(context.Background(), "")
	assert.ErrorIs(t, err, usecase.ErrValidation)
}

// 更新はname/surname/credentialのみ。email/roleは保持
func TestUserUsecase_Update(t *testing.T) {
	accounts := new(MockAccountRepository)
	uc := newUserUsecase(accounts)

	account := &model.Account{
		ID:             "acc-1",
		Email:          "a@x.com",
		CredentialHash: "old-hash",
		Role:           model.RoleAdmin,
	}
	accounts.On("FindByEmail", mock.Anything, "a@x.com").Return(account, nil)
	accounts.On("Update", mock.Anything, mock.MatchedBy(func(a *model.Account) bool {
		return a.ID == "acc-1" &&
			a.Email == "a@x.com" &&
			a.Role == model.RoleAdmin &&
			a.Name == "Grace" &&
			a.Surname == "Hopper" &&
			a.CredentialHash != "old-hash" &&
			a.CredentialHash != "new-secret"
	})).Return(nil)

	out, err := uc.Update(context.Background(), "a@x.com", usecase.UpdateAccountInput{
		Name:       "Grace",
		Surname:    "Hopper",
		Credential: "new-secret",
	})
	assert.NoError(t, err)
	assert.Equal(t, "Account's updated", out.Message)

	accounts.AssertExpectations(t)
}

// 全項目必須
func TestUserUsecase_Update_MissingField(t *testing.T) {
	accounts := new(MockAccountRepository)
	uc := newUserUsecase(accounts)

	_, err := uc.Update(context.Background(), "a@x.com", usecase.UpdateAccountInput{
		Name:    "Grace",
		Surname: "",
	})
	assert.ErrorIs(t, err, usecase.ErrValidation)

	accounts.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUserUsecase_DeleteByEmail(t *testing.T) {
	accounts := new(MockAccountRepository)
	uc := newUserUsecase(accounts)

	accounts.On("DeleteByEmail", mock.Anything, "a@x.com").Return(nil)

	out, err := uc.DeleteByEmail(context.Background(), "a@x.com")
	assert.NoError(t, err)
	assert.Equal(t, "Account is deleted", out.Message)
}

func TestUserUsecase_List(t *testing.T) {
	accounts := new(MockAccountRepository)
	uc := newUserUsecase(accounts)

	accounts.On("FindAll", mock.Anything).Return([]model.Account{
		{ID: "acc-1", Email: "a@x.com", Role: model.RoleUser},
		{ID: "acc-2", Email: "b@x.com", Role: model.RoleAdmin},
	}, nil)

	out, err := uc.List(context.Background())
	assert.NoError(t, err)
	assert.Len(t, out, 2)
	assert.Equal(t, "b@x.com", out[1].Email)
}
