package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Configはアプリ全体の設定
type Config struct {
	Port string // サーバーポート（8080）

	JWTSecret      string        // JWT署名シークレット（起動時に1回だけ読む）
	AccessTokenTTL time.Duration // access tokenの固定TTL
}

// Loadは環境変数
func Load() (Config, error) {
	cfg := Config{
		Port:           os.Getenv("PORT"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		AccessTokenTTL: 15 * time.Minute,
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	//必須チェック
	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET is required")
	}

	//分単位で上書きできる
	if v := os.Getenv("ACCESS_TOKEN_TTL_MIN"); v != "" {
		min, err := strconv.Atoi(v)
		if err != nil || min <= 0 {
			return Config{}, fmt.Errorf("ACCESS_TOKEN_TTL_MIN must be a positive number")
		}
		cfg.AccessTokenTTL = time.Duration(min) * time.Minute
	}

	return cfg, nil
}
