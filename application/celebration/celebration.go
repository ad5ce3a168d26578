package celebration

import (
	"context"
	"time"

	"github.com/celebratehq/birthday-api/cmd/config"
	"github.com/celebratehq/birthday-api/constant"
	"github.com/celebratehq/birthday-api/model"
	celebrationrepo "github.com/celebratehq/birthday-api/repository/celebration"
	txrepo "github.com/celebratehq/birthday-api/repository/tx"
	"github.com/celebratehq/birthday-api/thirdparty/rabbitmq"
	"github.com/celebratehq/birthday-api/utils/errors"
	"github.com/celebratehq/birthday-api/utils/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CelebrationApp interface {
	CreateCelebration(ctx context.Context, accountID string, req *model.CelebrationRequest) (*model.CelebrationResponse, error)
	AckCelebration(ctx context.Context, celebrationID string) error
}

type celebrationAppImpl struct {
	config          *config.Config
	txRepo          txrepo.TxRepository
	celebrationRepo celebrationrepo.CelebrationRepository
	publisher       *rabbitmq.Publisher
}

func NewCelebrationApp(config *config.Config, txRepo txrepo.TxRepository, celebrationRepo celebrationrepo.CelebrationRepository, publisher *rabbitmq.Publisher) CelebrationApp {
	return &celebrationAppImpl{config: config, txRepo: txRepo, celebrationRepo: celebrationRepo, publisher: publisher}
}

// CreateCelebration captures a celebration and its media record. It
// does not deliver anything to the celebrated friend.
func (s *celebrationAppImpl) CreateCelebration(ctx context.Context, accountID string, req *model.CelebrationRequest) (*model.CelebrationResponse, error) {
	now := time.Now()

	celebrationEntity := &model.CelebrationEntity{
		ID:            uuid.NewString(),
		CreatedByID:   accountID,
		ContactMethod: string(req.ContactMethod),
		Contact:       req.Contact,
		Message:       req.Message,
		CreatedAt:     now,
	}

	mediaType := req.MediaType
	if mediaType == "" {
		mediaType = constant.MediaTypeText
	}
	mediaEntity := &model.MediaEntity{
		ID:                uuid.NewString(),
		CelebrateFriendID: celebrationEntity.ID,
		URL:               req.Media,
		Type:              string(mediaType),
		Message:           req.Message,
		CreatedAt:         now,
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[CreateCelebration] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	if err := s.celebrationRepo.InsertCelebrationTx(ctx, tx, celebrationEntity); err != nil {
		logger.Error("[CreateCelebration] insert celebration", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.celebrationRepo.InsertMediaTx(ctx, tx, mediaEntity); err != nil {
		logger.Error("[CreateCelebration] insert media", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[CreateCelebration] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	// Publish the recorded event; a broker outage never fails the request
	if s.publisher != nil {
		msg := rabbitmq.CelebrationRecordedMessage{
			CelebrationID: celebrationEntity.ID,
			AccountID:     accountID,
			ContactMethod: celebrationEntity.ContactMethod,
			MediaType:     mediaEntity.Type,
			CreatedAt:     now,
		}
		if err := s.publisher.PublishCelebrationRecorded(msg); err != nil {
			logger.Error("[CreateCelebration] publish celebration recorded", zap.String("error", err.Error()))
		}
	}

	return &model.CelebrationResponse{
		ID:        celebrationEntity.ID,
		MediaID:   mediaEntity.ID,
		CreatedAt: now,
	}, nil
}

func (s *celebrationAppImpl) AckCelebration(ctx context.Context, celebrationID string) error {
	rows, err := s.celebrationRepo.MarkProcessed(ctx, celebrationID)
	if err != nil {
		logger.Error("[AckCelebration] mark processed", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if rows == 0 {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	return nil
}
