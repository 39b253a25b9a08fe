package main

import (
	"log"
	"time"

	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/handler"
	"app/internal/infra/db"
	infraRepo "app/internal/infra/repository"
	"app/internal/server"
	"app/internal/token"
	"app/internal/usecase"
	"app/internal/validator"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

type uuidGenerator struct{}

func (g *uuidGenerator) NewID() string {
	return uuid.NewString()
}

type realClock struct{}

func (c *realClock) Now() time.Time {
	return time.Now()
}

func main() {
	//.envは有れば読む（無くても環境変数だけで動く）
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	//DB接続
	gormDB, err := db.Connect()
	if err != nil {
		log.Fatal(err)
	}
	if err := gormDB.AutoMigrate(
		&model.Account{},
		&model.RefreshToken{},
	); err != nil {
		log.Fatal(err)
	}

	//Repository（GORM実装）生成
	accountRepo := infraRepo.NewAccountRepository(gormDB)
	rtRepo := infraRepo.NewRefreshTokenRepository(gormDB)

	//usecaseに渡す部品
	idGen := &uuidGenerator{}
	clock := &realClock{}

	//bcrypt（会員登録：Hash / ログイン：Verify）
	hasher := usecase.NewBcryptCredentialHasher(12)
	verifier := usecase.NewBcryptCredentialVerifier()

	//JWT issuer（秘密鍵はここで1回だけ渡す）
	issuer := token.NewIssuer([]byte(cfg.JWTSecret), cfg.AccessTokenTTL, clock)

	//Usecase生成
	authUC := usecase.NewAuthUsecase(
		accountRepo,
		rtRepo,
		issuer,
		hasher,
		verifier,
		validator.NewAuthValidator(),
		idGen,
	)
	userUC := usecase.NewUserUsecase(accountRepo, hasher)

	//Handler生成
	authH := handler.NewAuthHandler(authUC)
	userH := handler.NewUserHandler(userUC)

	//Server起動
	e := server.New(issuer, authH, userH)
	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
