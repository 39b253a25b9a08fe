package repository_test

import (
	"context"
	"path/filepath"
	"testing"

	"app/internal/domain/model"
	infraRepo "app/internal/infra/repository"
	domainrepo "app/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// Postgres無しで回すためsqliteファイルを使う。
// unique index・ON CONFLICTの挙動は本番と同じ
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}

	if err := db.AutoMigrate(&model.Account{}, &model.RefreshToken{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}

	return db
}

// =====================
// AccountRepository
// =====================

func TestAccountRepository_CreateAndFind(t *testing.T) {
	db := openTestDB(t)
	repo := infraRepo.NewAccountRepository(db)
	ctx := context.Background()

	account := &model.Account{
		ID:             "11111111-1111-1111-1111-111111111111",
		Email:          "a@x.com",
		CredentialHash: "hash",
		Name:           "Ada",
		Surname:        "Lovelace",
		Role:           model.RoleUser,
	}

	assert.NoError(t, repo.Create(ctx, account))

	found, err := repo.FindByEmail(ctx, "a@x.com")
	assert.NoError(t, err)
	assert.Equal(t, account.ID, found.ID)
	assert.Equal(t, model.RoleUser, found.Role)

	byID, err := repo.FindByID(ctx, account.ID)
	assert.NoError(t, err)
	assert.Equal(t, "a@x.com", byID.Email)
}

// email重複はErrDuplicateEmail。既存行は変わらない
func TestAccountRepository_DuplicateEmail(t *testing.T) {
	db := openTestDB(t)
	repo := infraRepo.NewAccountRepository(db)
	ctx := context.Background()

	first := &model.Account{
		ID:             "11111111-1111-1111-1111-111111111111",
		Email:          "a@x.com",
		CredentialHash: "hash-1",
		Role:           model.RoleUser,
	}
	assert.NoError(t, repo.Create(ctx, first))

	second := &model.Account{
		ID:             "22222222-2222-2222-2222-222222222222",
		Email:          "a@x.com",
		CredentialHash: "hash-2",
		Role:           model.RoleAdmin,
	}
	err := repo.Create(ctx, second)
	assert.ErrorIs(t, err, domainrepo.ErrDuplicateEmail)

	//1回目の内容がそのまま残っている
	found, err := repo.FindByEmail(ctx, "a@x.com")
	assert.NoError(t, err)
	assert.Equal(t, first.ID, found.ID)
	assert.Equal(t, "hash-1", found.CredentialHash)
}

func TestAccountRepository_NotFound(t *testing.T) {
	db := openTestDB(t)
	repo := infraRepo.NewAccountRepository(db)
	ctx := context.Background()

	_, err := repo.FindByEmail(ctx, "nobody@x.com")
	assert.ErrorIs(t, err, domainrepo.ErrAccountNotFound)

	_, err = repo.FindByID(ctx, "no-such-id")
	assert.ErrorIs(t, err, domainrepo.ErrAccountNotFound)

	err = repo.DeleteByEmail(ctx, "nobody@x.com")
	assert.ErrorIs(t, err, domainrepo.ErrAccountNotFound)
}

func TestAccountRepository_UpdateAndDelete(t *testing.T) {
	db := openTestDB(t)
	repo := infraRepo.NewAccountRepository(db)
	ctx := context.Background()

	account := &model.Account{
		ID:             "11111111-1111-1111-1111-111111111111",
		Email:          "a@x.com",
		CredentialHash: "hash",
		Role:           model.RoleUser,
	}
	assert.NoError(t, repo.Create(ctx, account))

	account.Name = "Grace"
	assert.NoError(t, repo.Update(ctx, account))

	found, err := repo.FindByEmail(ctx, "a@x.com")
	assert.NoError(t, err)
	assert.Equal(t, "Grace", found.Name)

	assert.NoError(t, repo.DeleteByEmail(ctx, "a@x.com"))

	_, err = repo.FindByEmail(ctx, "a@x.com")
	assert.ErrorIs(t, err, domainrepo.ErrAccountNotFound)
}

func TestAccountRepository_FindAll(t *testing.T) {
	db := openTestDB(t)
	repo := infraRepo.NewAccountRepository(db)
	ctx := context.Background()

	assert.NoError(t, repo.Create(ctx, &model.Account{
		ID: "11111111-1111-1111-1111-111111111111", Email: "a@x.com", CredentialHash: "h", Role: model.RoleUser,
	}))
	assert.NoError(t, repo.Create(ctx, &model.Account{
		ID: "22222222-2222-2222-2222-222222222222", Email: "b@x.com", CredentialHash: "h", Role: model.RoleAdmin,
	}))

	all, err := repo.FindAll(ctx)
	assert.NoError(t, err)
	assert.Len(t, all, 2)
}

// =====================
// RefreshTokenRepository
// =====================

// 初回は作成、2回目以降は同じ行の値だけ変わる（IDは保持）
func TestRefreshTokenRepository_UpsertKeepsSingleRecord(t *testing.T) {
	db := openTestDB(t)
	repo := infraRepo.NewRefreshTokenRepository(db)
	ctx := context.Background()

	assert.NoError(t, repo.Upsert(ctx, "a@x.com", "value-1"))

	first, err := repo.FindByEmail(ctx, "a@x.com")
	assert.NoError(t, err)
	assert.Equal(t, "value-1", first.Token)

	//同じemailでN回upsertしても1件のまま
	for i := 0; i < 5; i++ {
		assert.NoError(t, repo.Upsert(ctx, "a@x.com", "value-rotated"))
	}

	var count int64
	assert.NoError(t, db.Model(&model.RefreshToken{}).Where("email = ?", "a@x.com").Count(&count).Error)
	assert.Equal(t, int64(1), count)

	after, err := repo.FindByEmail(ctx, "a@x.com")
	assert.NoError(t, err)
	assert.Equal(t, first.ID, after.ID)
	assert.Equal(t, "value-rotated", after.Token)
}

// rotate後は古い値で引けない
func TestRefreshTokenRepository_RotationInvalidatesOldValue(t *testing.T) {
	db := openTestDB(t)
	repo := infraRepo.NewRefreshTokenRepository(db)
	ctx := context.Background()

	assert.NoError(t, repo.Upsert(ctx, "a@x.com", "old"))
	assert.NoError(t, repo.Upsert(ctx, "a@x.com", "new"))

	_, err := repo.FindByValue(ctx, "old")
	assert.ErrorIs(t, err, domainrepo.ErrRefreshTokenNotFound)

	found, err := repo.FindByValue(ctx, "new")
	assert.NoError(t, err)
	assert.Equal(t, "a@x.com", found.Email)
}

// emailが違えば独立した行
func TestRefreshTokenRepository_IndependentEmails(t *testing.T) {
	db := openTestDB(t)
	repo := infraRepo.NewRefreshTokenRepository(db)
	ctx := context.Background()

	assert.NoError(t, repo.Upsert(ctx, "a@x.com", "value-a"))
	assert.NoError(t, repo.Upsert(ctx, "b@x.com", "value-b"))

	var count int64
	assert.NoError(t, db.Model(&model.RefreshToken{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)

	a, err := repo.FindByEmail(ctx, "a@x.com")
	assert.NoError(t, err)
	assert.Equal(t, "value-a", a.Token)
}

func TestRefreshTokenRepository_NotFound(t *testing.T) {
	db := openTestDB(t)
	repo := infraRepo.NewRefreshTokenRepository(db)
	ctx := context.Background()

	_, err := repo.FindByEmail(ctx, "nobody@x.com")
	assert.ErrorIs(t, err, domainrepo.ErrRefreshTokenNotFound)

	_, err = repo.FindByValue(ctx, "no-such-value")
	assert.ErrorIs(t, err, domainrepo.ErrRefreshTokenNotFound)
}
