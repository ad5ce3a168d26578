package main

import (
	"context"

	"github.com/celebratehq/birthday-api/cmd/config"
	"github.com/celebratehq/birthday-api/model"
	accountRepo "github.com/celebratehq/birthday-api/repository/account"
	"github.com/celebratehq/birthday-api/utils/logger"
	_ "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	seedEmail    = "test@gmail.com"
	seedPassword = "password"
)

// Idempotent bootstrap of the demonstration account. Safe to run on
// every deploy.
func main() {
	cfg := config.Load()

	if err := logger.Init(cfg.Environment); err != nil {
		panic(err)
	}
	defer logger.Close()

	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}
	defer db.Close()

	ctx := context.Background()
	repo := accountRepo.NewAccountRepository(db)

	existing, err := repo.Get(ctx, &model.AccountFilter{Email: seedEmail})
	if err != nil {
		logger.Fatal("err check seed account", zap.Error(err))
	}
	if existing != nil {
		logger.Info("seed account already exists", zap.String("email", seedEmail))
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(seedPassword), 12)
	if err != nil {
		logger.Fatal("err hash seed password", zap.Error(err))
	}

	_, err = repo.Create(ctx, &model.AccountEntity{
		ID:           uuid.NewString(),
		Email:        seedEmail,
		PasswordHash: string(hashedPassword),
		FirstName:    "Alex",
		LastName:     "Parker",
	})
	if err != nil {
		logger.Fatal("err create seed account", zap.Error(err))
	}

	logger.Info("seeded test account", zap.String("email", seedEmail))
}
