package token

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"time"

	"app/internal/domain/model"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// 構造が壊れていてパースできない
	ErrTokenMalformed = errors.New("token malformed")
	// 期限切れ（現在時刻 >= exp）
	ErrTokenExpired = errors.New("token expired")
	// 署名不一致など
	ErrTokenInvalid = errors.New("token invalid")
)

// 検証済みaccess tokenの中身
type Claims struct {
	AccountID string
	Email     string
	Role      model.Role
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// loginとrefreshが返すトークンの組
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	Expiry       time.Time
}

// 現在の時間
type Clock interface {
	Now() time.Time
}

// HS256のJWT発行・検証。
// 秘密鍵は起動時に1回だけ渡す（グローバルにしない）
type Issuer struct {
	secret    []byte
	accessTTL time.Duration
	clock     Clock
}

func NewIssuer(secret []byte, accessTTL time.Duration, clock Clock) *Issuer {
	return &Issuer{
		secret:    secret,
		accessTTL: accessTTL,
		clock:     clock,
	}
}

// access tokenと新しいrefresh値を発行する
func (i *Issuer) Issue(account *model.Account) (TokenPair, error) {
	now := i.clock.Now()
	exp := now.Add(i.accessTTL)

	claims := jwt.MapClaims{
		"sub":   account.ID,
		"email": account.Email,
		"role":  string(account.Role),
		"iat":   now.Unix(),
		"exp":   exp.Unix(),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(i.secret)
	if err != nil {
		return TokenPair{}, err
	}

	refresh, err := NewRefreshValue()
	if err != nil {
		return TokenPair{}, err
	}

	return TokenPair{
		AccessToken:  signed,
		RefreshToken: refresh,
		Expiry:       exp,
	}, nil
}

// 署名・期限を検証してClaimsを返す
func (i *Issuer) Validate(raw string) (Claims, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return i.secret, nil
	}, jwt.WithTimeFunc(i.clock.Now))

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return Claims{}, ErrTokenMalformed
		case errors.Is(err, jwt.ErrTokenExpired):
			return Claims{}, ErrTokenExpired
		default:
			return Claims{}, ErrTokenInvalid
		}
	}
	if tok == nil || !tok.Valid {
		return Claims{}, ErrTokenInvalid
	}

	mc, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, ErrTokenInvalid
	}

	sub, err := mc.GetSubject()
	if err != nil || sub == "" {
		return Claims{}, ErrTokenInvalid
	}

	email, ok := mc["email"].(string)
	if !ok || email == "" {
		return Claims{}, ErrTokenInvalid
	}

	rawRole, ok := mc["role"].(string)
	if !ok {
		return Claims{}, ErrTokenInvalid
	}
	role, ok := model.ParseRole(rawRole)
	if !ok {
		return Claims{}, ErrTokenInvalid
	}

	iat, err := mc.GetIssuedAt()
	if err != nil || iat == nil {
		return Claims{}, ErrTokenInvalid
	}
	exp, err := mc.GetExpirationTime()
	if err != nil || exp == nil {
		return Claims{}, ErrTokenInvalid
	}

	return Claims{
		AccountID: sub,
		Email:     email,
		Role:      role,
		IssuedAt:  iat.Time,
		ExpiresAt: exp.Time,
	}, nil
}

// Validateの結果からaccount idだけを返す
func (i *Issuer) ExtractAccountID(raw string) (string, error) {
	claims, err := i.Validate(raw)
	if err != nil {
		return "", err
	}
	return claims.AccountID, nil
}

// Validateの結果からemailだけを返す
func (i *Issuer) ExtractEmail(raw string) (string, error) {
	claims, err := i.Validate(raw)
	if err != nil {
		return "", err
	}
	return claims.Email, nil
}

// refresh値を生成（OSが持つ安全な乱数32byte）。
// 中身に意味はない。有効かどうかはRefreshTokenStoreに有るかだけで決まる
func NewRefreshValue() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}

	return base64.RawURLEncoding.EncodeToString(b), nil
}
