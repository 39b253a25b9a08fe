package usecase

import "golang.org/x/crypto/bcrypt"

// bcryptハッシュ化
type BcryptCredentialHasher struct {
	cost int
}

// DI
func NewBcryptCredentialHasher(cost int) *BcryptCredentialHasher {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return &BcryptCredentialHasher{cost}
}

// 平文credentialをbcryptでハッシュ化
func (h *BcryptCredentialHasher) Hash(plain string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", err
	}

	return string(hashedBytes), nil
}

// bcryptハッシュと平文を比較
type BcryptCredentialVerifier struct{}

// DI
func NewBcryptCredentialVerifier() *BcryptCredentialVerifier {
	return &BcryptCredentialVerifier{}
}

// 平文(plain)をbcryptで比較
func (v *BcryptCredentialVerifier) Verify(plain string, hashed string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
	return err == nil
}
