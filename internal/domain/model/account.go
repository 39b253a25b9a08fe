package model

import "time"

type Role string

const (
	RoleUser  Role = "User"
	RoleAdmin Role = "Admin"
)

// 文字列をRoleへ変換。閉じた集合（User/Admin）以外は拒否
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleUser, RoleAdmin:
		return Role(s), true
	default:
		return "", false
	}
}

type Account struct {
	ID             string `gorm:"type:uuid;primaryKey"`
	Email          string `gorm:"uniqueIndex;not null"`
	CredentialHash string `gorm:"column:credential_hash;not null"`
	Name           string
	Surname        string
	Role           Role `gorm:"type:varchar(20);not null;default:'User'"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
