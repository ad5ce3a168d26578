package account

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/celebratehq/birthday-api/cmd/config"
	"github.com/celebratehq/birthday-api/constant"
	"github.com/celebratehq/birthday-api/model"
	accountrepo "github.com/celebratehq/birthday-api/repository/account"
	celebrationrepo "github.com/celebratehq/birthday-api/repository/celebration"
	redisrepo "github.com/celebratehq/birthday-api/repository/redis"
	txrepo "github.com/celebratehq/birthday-api/repository/tx"
	"github.com/celebratehq/birthday-api/thirdparty/cloudinary"
	"github.com/celebratehq/birthday-api/utils/errors"
	"github.com/celebratehq/birthday-api/utils/logger"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type AccountApp interface {
	Register(ctx context.Context, req *model.RegisterRequest) (*model.AccountResponse, error)
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
	GetProfile(ctx context.Context, accountID string) (*model.AccountResponse, error)
	UpdateProfile(ctx context.Context, accountID string, req *model.UpdateAccountRequest) (*model.AccountResponse, error)
	DeleteAccount(ctx context.Context, accountID, sessionID string) error
	ValidateToken(ctx context.Context, tokenString string) (string, string, error)
}

type AccountAppImpl struct {
	config          *config.Config
	txRepo          txrepo.TxRepository
	accountRepo     accountrepo.AccountRepository
	celebrationRepo celebrationrepo.CelebrationRepository
	redisRepo       redisrepo.Repository
	uploader        cloudinary.Uploader
}

func NewAccountApp(config *config.Config, txRepo txrepo.TxRepository, accountRepo accountrepo.AccountRepository, celebrationRepo celebrationrepo.CelebrationRepository, redisRepo redisrepo.Repository, uploader cloudinary.Uploader) AccountApp {
	return &AccountAppImpl{
		config:          config,
		txRepo:          txRepo,
		accountRepo:     accountRepo,
		celebrationRepo: celebrationRepo,
		redisRepo:       redisRepo,
		uploader:        uploader,
	}
}

func (s *AccountAppImpl) Register(ctx context.Context, req *model.RegisterRequest) (*model.AccountResponse, error) {
	// Reject duplicates before any write
	existing, err := s.accountRepo.Get(ctx, &model.AccountFilter{Email: req.Email})
	if err != nil {
		logger.Error("[Register] err accountRepo.Get email", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existing != nil {
		return nil, errors.SetCustomError(constant.ErrEmailExists)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.config.Auth.BcryptCost)
	if err != nil {
		logger.Error("[Register] err bcrypt.GenerateFromPassword", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	// Upload first so a failed upload produces no account row. The
	// account email doubles as the asset's public identifier.
	var image *string
	if strings.TrimSpace(req.ProfilePicture) != "" {
		url, err := s.uploader.Upload(ctx, req.ProfilePicture, req.Email)
		if err != nil {
			logger.Error("[Register] err uploader.Upload", zap.String("email", req.Email), zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrUploadFailed)
		}
		image = &url
	}

	entity := &model.AccountEntity{
		ID:           uuid.NewString(),
		Email:        req.Email,
		PasswordHash: string(hashedPassword),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Image:        image,
		DateOfBirth:  req.DateOfBirth,
	}
	if req.PhoneNumber != "" {
		entity.PhoneNumber = &req.PhoneNumber
	}

	entity, err = s.accountRepo.Create(ctx, entity)
	if err != nil {
		logger.Error("[Register] err accountRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return toAccountResponse(entity), nil
}

func (s *AccountAppImpl) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	account, err := s.accountRepo.Get(ctx, &model.AccountFilter{Email: req.Email})
	if err != nil {
		logger.Error("[Login] err accountRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if account == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	err = bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password))
	if err != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidPassword)
	}

	token, jti, err := s.generateJWT(account.ID)
	if err != nil {
		logger.Error("[Login] err generateJWT", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	err = s.redisRepo.SetSession(ctx, jti, account.ID, s.config.Auth.SessionExpTime)
	if err != nil {
		logger.Error("[Login] err SetSession", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.LoginResponse{
		ID:        account.ID,
		Email:     account.Email,
		FirstName: account.FirstName,
		LastName:  account.LastName,
		Token:     token,
	}, nil
}

func (s *AccountAppImpl) GetProfile(ctx context.Context, accountID string) (*model.AccountResponse, error) {
	account, err := s.accountRepo.Get(ctx, &model.AccountFilter{ID: accountID})
	if err != nil {
		logger.Error("[GetProfile] err accountRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if account == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return toAccountResponse(account), nil
}

func (s *AccountAppImpl) UpdateProfile(ctx context.Context, accountID string, req *model.UpdateAccountRequest) (*model.AccountResponse, error) {
	account, err := s.accountRepo.Get(ctx, &model.AccountFilter{ID: accountID})
	if err != nil {
		logger.Error("[UpdateProfile] err accountRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if account == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	patch := &model.AccountPatch{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
		DateOfBirth: req.DateOfBirth,
	}

	// A supplied payload replaces the stored image with the uploaded
	// URL; an absent one leaves the stored image untouched.
	if req.Image != nil && strings.TrimSpace(*req.Image) != "" {
		url, err := s.uploader.Upload(ctx, *req.Image, account.Email)
		if err != nil {
			logger.Error("[UpdateProfile] err uploader.Upload", zap.String("email", account.Email), zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrUploadFailed)
		}
		patch.Image = &url
	}

	if err := s.accountRepo.Update(ctx, accountID, patch); err != nil {
		logger.Error("[UpdateProfile] err accountRepo.Update", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	updated, err := s.accountRepo.Get(ctx, &model.AccountFilter{ID: accountID})
	if err != nil || updated == nil {
		logger.Error("[UpdateProfile] err accountRepo.Get after update", zap.String("id", accountID))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return toAccountResponse(updated), nil
}

func (s *AccountAppImpl) DeleteAccount(ctx context.Context, accountID, sessionID string) error {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[DeleteAccount] begin tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	// Celebrations and their media go first, then the account row
	if err := s.celebrationRepo.DeleteByCreatorTx(ctx, tx, accountID); err != nil {
		logger.Error("[DeleteAccount] delete celebrations", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	rows, err := s.accountRepo.DeleteTx(ctx, tx, accountID)
	if err != nil {
		logger.Error("[DeleteAccount] delete account", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if rows == 0 {
		return errors.SetCustomError(constant.ErrNotFound)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[DeleteAccount] commit tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	// Session revocation is best effort; the row is already gone
	if err := s.redisRepo.DeleteSession(ctx, sessionID); err != nil {
		logger.Error("[DeleteAccount] delete session", zap.String("error", err.Error()))
	}

	return nil
}

// ValidateToken verifies the JWT and its Redis session, returning the
// account ID and the session ID (jti).
func (s *AccountAppImpl) ValidateToken(ctx context.Context, tokenString string) (string, string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.config.Auth.JWTSecret), nil
	})
	if err != nil {
		return "", "", fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return "", "", fmt.Errorf("invalid claims")
	}

	accountID := claims.Subject
	if accountID == "" {
		return "", "", fmt.Errorf("token missing subject")
	}

	jti := claims.ID
	if jti == "" {
		return "", "", fmt.Errorf("token missing jti")
	}

	sessionAccountID, err := s.redisRepo.GetSession(ctx, jti)
	if err != nil {
		return "", "", fmt.Errorf("invalid or expired session")
	}

	if sessionAccountID != accountID {
		return "", "", fmt.Errorf("token does not match user session")
	}

	return accountID, jti, nil
}

// generateJWT creates a JWT token for the account
func (s *AccountAppImpl) generateJWT(accountID string) (string, string, error) {
	newUUID, _ := uuid.NewRandom()
	claims := jwt.RegisteredClaims{
		Subject:   accountID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.config.Auth.JWTExpiration)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ID:        newUUID.String(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.config.Auth.JWTSecret))
	if err != nil {
		return "", "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, claims.ID, nil
}

func toAccountResponse(e *model.AccountEntity) *model.AccountResponse {
	return &model.AccountResponse{
		ID:          e.ID,
		Email:       e.Email,
		FirstName:   e.FirstName,
		LastName:    e.LastName,
		PhoneNumber: e.PhoneNumber,
		Image:       e.Image,
		DateOfBirth: e.DateOfBirth,
	}
}
