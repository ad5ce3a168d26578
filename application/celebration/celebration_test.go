package celebration_test

import (
	"context"
	"errors"
	"testing"

	appcelebration "github.com/celebratehq/birthday-api/application/celebration"
	"github.com/celebratehq/birthday-api/cmd/config"
	"github.com/celebratehq/birthday-api/constant"
	celebrationmocks "github.com/celebratehq/birthday-api/mocks/repository/celebration"
	txmocks "github.com/celebratehq/birthday-api/mocks/repository/tx"
	"github.com/celebratehq/birthday-api/model"
	cerr "github.com/celebratehq/birthday-api/utils/errors"
	"github.com/stretchr/testify/mock"
)

func TestCelebrationApp_CreateCelebration(t *testing.T) {
	type fields struct {
		txRepo          *txmocks.TxRepository
		celebrationRepo *celebrationmocks.CelebrationRepository
	}
	newFields := func(t *testing.T) fields {
		return fields{
			txRepo:          txmocks.NewTxRepository(t),
			celebrationRepo: celebrationmocks.NewCelebrationRepository(t),
		}
	}
	tests := []struct {
		name     string
		req      *model.CelebrationRequest
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: persists celebration and media in one tx",
			req: &model.CelebrationRequest{
				ContactMethod: constant.ContactMethodEmail,
				Contact:       "friend@x.com",
				Message:       "happy birthday!",
				MediaType:     constant.MediaTypeVideo,
				Media:         "https://res.example.com/clip.mp4",
			},
			mockCall: func(f fields) {
				f.txRepo.On("BeginTx", mock.Anything).Return(nil, nil).Once()
				f.celebrationRepo.
					On("InsertCelebrationTx", mock.Anything, mock.Anything, mock.MatchedBy(func(ent *model.CelebrationEntity) bool {
						return ent.ID != "" &&
							ent.CreatedByID == "acc-1" &&
							ent.ContactMethod == "email" &&
							ent.Contact == "friend@x.com" &&
							ent.Message == "happy birthday!" &&
							!ent.CreatedAt.IsZero()
					})).
					Return(nil).
					Once()
				f.celebrationRepo.
					On("InsertMediaTx", mock.Anything, mock.Anything, mock.MatchedBy(func(ent *model.MediaEntity) bool {
						return ent.ID != "" &&
							ent.CelebrateFriendID != "" &&
							ent.URL == "https://res.example.com/clip.mp4" &&
							ent.Type == "video" &&
							ent.Message == "happy birthday!" &&
							!ent.CreatedAt.IsZero()
					})).
					Return(nil).
					Once()
				f.txRepo.On("CommitTx", mock.Anything).Return(nil).Once()
			},
			wantErr: false,
		},
		{
			name: "success: missing media type defaults to text",
			req: &model.CelebrationRequest{
				ContactMethod: constant.ContactMethodPhone,
				Contact:       "555-1",
			},
			mockCall: func(f fields) {
				f.txRepo.On("BeginTx", mock.Anything).Return(nil, nil).Once()
				f.celebrationRepo.
					On("InsertCelebrationTx", mock.Anything, mock.Anything, mock.AnythingOfType("*model.CelebrationEntity")).
					Return(nil).
					Once()
				f.celebrationRepo.
					On("InsertMediaTx", mock.Anything, mock.Anything, mock.MatchedBy(func(ent *model.MediaEntity) bool {
						return ent.Type == "text" && ent.URL == ""
					})).
					Return(nil).
					Once()
				f.txRepo.On("CommitTx", mock.Anything).Return(nil).Once()
			},
			wantErr: false,
		},
		{
			name: "error: celebration insert failure rolls back",
			req: &model.CelebrationRequest{
				ContactMethod: constant.ContactMethodEmail,
				Contact:       "friend@x.com",
			},
			mockCall: func(f fields) {
				f.txRepo.On("BeginTx", mock.Anything).Return(nil, nil).Once()
				f.celebrationRepo.
					On("InsertCelebrationTx", mock.Anything, mock.Anything, mock.AnythingOfType("*model.CelebrationEntity")).
					Return(errors.New("db error")).
					Once()
				f.txRepo.On("RollbackTx", mock.Anything).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
		{
			name: "error: media insert failure rolls back both rows",
			req: &model.CelebrationRequest{
				ContactMethod: constant.ContactMethodEmail,
				Contact:       "friend@x.com",
			},
			mockCall: func(f fields) {
				f.txRepo.On("BeginTx", mock.Anything).Return(nil, nil).Once()
				f.celebrationRepo.
					On("InsertCelebrationTx", mock.Anything, mock.Anything, mock.AnythingOfType("*model.CelebrationEntity")).
					Return(nil).
					Once()
				f.celebrationRepo.
					On("InsertMediaTx", mock.Anything, mock.Anything, mock.AnythingOfType("*model.MediaEntity")).
					Return(errors.New("db error")).
					Once()
				f.txRepo.On("RollbackTx", mock.Anything).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			// Nil publisher: the app skips event publishing when no broker is configured
			app := appcelebration.NewCelebrationApp(&config.Config{}, f.txRepo, f.celebrationRepo, nil)

			got, err := app.CreateCelebration(context.Background(), "acc-1", tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CreateCelebration() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}

			if got.ID == "" || got.MediaID == "" || got.CreatedAt.IsZero() {
				t.Fatalf("CreateCelebration() = %+v, want populated IDs and timestamp", got)
			}
		})
	}
}

func TestCelebrationApp_AckCelebration(t *testing.T) {
	tests := []struct {
		name     string
		mockCall func(repo *celebrationmocks.CelebrationRepository)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: first ack stamps the row",
			mockCall: func(repo *celebrationmocks.CelebrationRepository) {
				repo.On("MarkProcessed", mock.Anything, "cel-1").Return(int64(1), nil).Once()
			},
			wantErr: false,
		},
		{
			name: "error: unknown or already processed celebration",
			mockCall: func(repo *celebrationmocks.CelebrationRepository) {
				repo.On("MarkProcessed", mock.Anything, "cel-1").Return(int64(0), nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: repository failure",
			mockCall: func(repo *celebrationmocks.CelebrationRepository) {
				repo.On("MarkProcessed", mock.Anything, "cel-1").Return(int64(0), errors.New("db error")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			repo := celebrationmocks.NewCelebrationRepository(t)
			if tt.mockCall != nil {
				tt.mockCall(repo)
			}
			app := appcelebration.NewCelebrationApp(&config.Config{}, txmocks.NewTxRepository(t), repo, nil)

			err := app.AckCelebration(context.Background(), "cel-1")
			if (err != nil) != tt.wantErr {
				t.Fatalf("AckCelebration() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
			}
		})
	}
}
