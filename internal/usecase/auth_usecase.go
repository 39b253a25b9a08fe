package usecase

import (
	"context"
	"errors"
	"time"

	"app/internal/domain/model"
	"app/internal/repository"
	"app/internal/token"
)

var (
	//400 入力不足
	ErrValidation = errors.New("validation error")
	//400 email不明とパスワード不一致は区別しない
	ErrInvalidCredentials = errors.New("invalid credentials")
	//400 登録済みemail
	ErrDuplicateEmail = errors.New("duplicate email")
	//400 ストアに無いrefresh token
	ErrUnknownRefreshToken = errors.New("unknown refresh token")
)

// usecaseがValidatorInterfaceに依存する約束
type AuthValidator interface {
	ValidateLogin(ctx context.Context, email string, credential string) error
	ValidateRegister(ctx context.Context, email string) error
	ValidateRefresh(ctx context.Context, refreshToken string) error
}

// 平文credentialからハッシュへ
type CredentialHasher interface {
	Hash(plain string) (string, error)
}

// 入力credentialと保存したハッシュを比べる約束
type CredentialVerifier interface {
	Verify(plain string, hashed string) bool
}

// UUID等のIDを作る約束
type IDGenerator interface {
	NewID() string
}

// /login /refresh が返すJSON
type TokenResponse struct {
	AccessToken  string    `json:"accessToken"`
	RefreshToken string    `json:"refreshToken"`
	Expiry       time.Time `json:"expiry"`
}

// /register の入力
type RegisterInput struct {
	Email      string
	Credential string
	Name       string
	Surname    string
	Role       string
}

type SuccessResponse struct {
	Message string `json:"message"`
}

type TokenStatusResponse struct {
	Status string `json:"status"`
}

// login / register / refresh / token-status を束ねる。
// 依存は全てコンストラクタで注入する（グローバル状態なし）
type AuthUsecase struct {
	accounts  repository.AccountRepository
	rtRepo    repository.RefreshTokenRepository
	issuer    *token.Issuer
	hasher    CredentialHasher
	verifier  CredentialVerifier
	validator AuthValidator
	idGen     IDGenerator
}

func NewAuthUsecase(
	accounts repository.AccountRepository,
	rtRepo repository.RefreshTokenRepository,
	issuer *token.Issuer,
	hasher CredentialHasher,
	verifier CredentialVerifier,
	validator AuthValidator,
	idGen IDGenerator,
) *AuthUsecase {
	return &AuthUsecase{
		accounts:  accounts,
		rtRepo:    rtRepo,
		issuer:    issuer,
		hasher:    hasher,
		verifier:  verifier,
		validator: validator,
		idGen:     idGen,
	}
}

// ログイン処理を実行する。
// POSTのbody版もGETのquery版（temporary login）も同じ処理
func (u *AuthUsecase) Login(ctx context.Context, email string, credential string) (*TokenResponse, error) {
	//入力検証
	if err := u.validator.ValidateLogin(ctx, email, credential); err != nil {
		return nil, err
	}

	//emailでアカウント取得
	account, err := u.accounts.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			//emailが無いのかパスワードが違うのかは返さない
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	//credential照合（bcrypt）
	if ok := u.verifier.Verify(credential, account.CredentialHash); !ok {
		return nil, ErrInvalidCredentials
	}

	//token発行
	pair, err := u.issuer.Issue(account)
	if err != nil {
		return nil, err
	}

	//発行が成功してからrefresh記録を差し替える（中途半端な状態を残さない）
	if err := u.rtRepo.Upsert(ctx, account.Email, pair.RefreshToken); err != nil {
		return nil, err
	}

	return &TokenResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		Expiry:       pair.Expiry,
	}, nil
}

// 会員登録実行。tokenは発行しない（ログインは別途）
func (u *AuthUsecase) Register(ctx context.Context, in RegisterInput) (*SuccessResponse, error) {
	//入力検証
	if err := u.validator.ValidateRegister(ctx, in.Email); err != nil {
		return nil, err
	}

	//roleは閉じた集合。未指定はUser
	role := model.RoleUser
	if in.Role != "" {
		parsed, ok := model.ParseRole(in.Role)
		if !ok {
			return nil, ErrValidation
		}
		role = parsed
	}

	//email重複チェック
	_, err := u.accounts.FindByEmail(ctx, in.Email)
	if err == nil {
		return nil, ErrDuplicateEmail
	}
	if !errors.Is(err, repository.ErrAccountNotFound) {
		return nil, err
	}

	//credentialは必ずハッシュ化して保存（平文保存しない）
	hashed, err := u.hasher.Hash(in.Credential)
	if err != nil {
		return nil, err
	}

	account := &model.Account{
		ID:             u.idGen.NewID(),
		Email:          in.Email,
		CredentialHash: hashed,
		Name:           in.Name,
		Surname:        in.Surname,
		Role:           role,
	}

	//保存（同時登録はunique indexが弾く）
	if err := u.accounts.Create(ctx, account); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}

	return &SuccessResponse{Message: "Account is created"}, nil
}

// refresh値を使い捨てで交換する。
// rotationが終わった瞬間、古い値は二度と使えない
func (u *AuthUsecase) Refresh(ctx context.Context, refreshToken string) (*TokenResponse, error) {
	//入力検証
	if err := u.validator.ValidateRefresh(ctx, refreshToken); err != nil {
		return nil, err
	}

	//値でストア照合
	record, err := u.rtRepo.FindByValue(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, repository.ErrRefreshTokenNotFound) {
			return nil, ErrUnknownRefreshToken
		}
		return nil, err
	}

	//記録のemailから持ち主を引く
	account, err := u.accounts.FindByEmail(ctx, record.Email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			//アカウントが消えた後のrefreshも不明扱い
			return nil, ErrUnknownRefreshToken
		}
		return nil, err
	}

	//新しいpairを発行してから値をrotate
	pair, err := u.issuer.Issue(account)
	if err != nil {
		return nil, err
	}

	if err := u.rtRepo.Upsert(ctx, account.Email, pair.RefreshToken); err != nil {
		return nil, err
	}

	return &TokenResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		Expiry:       pair.Expiry,
	}, nil
}

// gateを通過済みのリクエストへの生存確認。ここに追加ロジックは置かない
func (u *AuthUsecase) TokenStatus() *TokenStatusResponse {
	return &TokenStatusResponse{Status: "valid"}
}
