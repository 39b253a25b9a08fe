package model

import "time"

// emailごとに必ず1件。値の差し替え（rotation）だけで無効化する
type RefreshToken struct {
	ID        string `gorm:"type:uuid;primaryKey"`
	Email     string `gorm:"uniqueIndex;not null"`
	Token     string `gorm:"uniqueIndex;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
