package celebration

import (
	"context"

	"github.com/celebratehq/birthday-api/model"
	"github.com/jmoiron/sqlx"
)

type SQL struct {
	conn *sqlx.DB
}

type CelebrationRepository interface {
	InsertCelebrationTx(ctx context.Context, tx *sqlx.Tx, req *model.CelebrationEntity) error
	InsertMediaTx(ctx context.Context, tx *sqlx.Tx, req *model.MediaEntity) error
	DeleteByCreatorTx(ctx context.Context, tx *sqlx.Tx, createdByID string) error
	MarkProcessed(ctx context.Context, id string) (int64, error)
}

func NewCelebrationRepository(conn *sqlx.DB) CelebrationRepository {
	return &SQL{conn: conn}
}

func (r *SQL) InsertCelebrationTx(ctx context.Context, tx *sqlx.Tx, req *model.CelebrationEntity) error {
	q := "INSERT INTO celebrate_friend (id, created_by_id, contact_method, contact, message, created_at) VALUES (?, ?, ?, ?, ?, ?)"
	_, err := tx.ExecContext(ctx, q, req.ID, req.CreatedByID, req.ContactMethod, req.Contact, req.Message, req.CreatedAt)
	return err
}

func (r *SQL) InsertMediaTx(ctx context.Context, tx *sqlx.Tx, req *model.MediaEntity) error {
	q := "INSERT INTO media (id, celebrate_friend_id, url, type, message, created_at) VALUES (?, ?, ?, ?, ?, ?)"
	_, err := tx.ExecContext(ctx, q, req.ID, req.CelebrateFriendID, req.URL, req.Type, req.Message, req.CreatedAt)
	return err
}

// DeleteByCreatorTx removes an account's celebrations and their media,
// used by the account-deletion cascade.
func (r *SQL) DeleteByCreatorTx(ctx context.Context, tx *sqlx.Tx, createdByID string) error {
	q := "DELETE FROM media WHERE celebrate_friend_id IN (SELECT id FROM celebrate_friend WHERE created_by_id = ?)"
	if _, err := tx.ExecContext(ctx, q, createdByID); err != nil {
		return err
	}
	_, err := tx.ExecContext(ctx, "DELETE FROM celebrate_friend WHERE created_by_id = ?", createdByID)
	return err
}

func (r *SQL) MarkProcessed(ctx context.Context, id string) (int64, error) {
	res, err := r.conn.ExecContext(ctx, "UPDATE celebrate_friend SET processed_at = NOW() WHERE id = ? AND processed_at IS NULL", id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
