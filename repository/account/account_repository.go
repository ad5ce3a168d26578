package account

import (
	"context"
	"database/sql"

	"github.com/celebratehq/birthday-api/model"
	"github.com/jmoiron/sqlx"
)

type SQL struct {
	conn *sqlx.DB
}

type AccountRepository interface {
	Create(ctx context.Context, req *model.AccountEntity) (*model.AccountEntity, error)
	Get(ctx context.Context, filter *model.AccountFilter) (*model.AccountEntity, error)
	Update(ctx context.Context, id string, patch *model.AccountPatch) error
	DeleteTx(ctx context.Context, tx *sqlx.Tx, id string) (int64, error)
}

func NewAccountRepository(conn *sqlx.DB) AccountRepository {
	return &SQL{conn: conn}
}

const (
	insertAccountQuery = `INSERT INTO app_user (id, email, password_hash, first_name, last_name, phone_number, image, date_of_birth, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, NOW())`
	getAccountBase     = `SELECT id, email, password_hash, first_name, last_name, phone_number, image, date_of_birth, created_at, updated_at FROM app_user WHERE true`
)

func (s *SQL) Create(ctx context.Context, data *model.AccountEntity) (*model.AccountEntity, error) {
	_, err := s.conn.ExecContext(ctx, insertAccountQuery,
		data.ID, data.Email, data.PasswordHash, data.FirstName, data.LastName,
		data.PhoneNumber, data.Image, data.DateOfBirth)
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (s *SQL) Get(ctx context.Context, filter *model.AccountFilter) (*model.AccountEntity, error) {
	query := getAccountBase
	args := make([]any, 0, 2)

	if filter.ID != "" {
		query += " AND id = ?"
		args = append(args, filter.ID)
	}
	if filter.Email != "" {
		query += " AND email = ?"
		args = append(args, filter.Email)
	}

	var entity model.AccountEntity
	if err := s.conn.QueryRowxContext(ctx, query, args...).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

// Update applies only the fields set in the patch. Nil fields keep
// their stored values.
func (s *SQL) Update(ctx context.Context, id string, patch *model.AccountPatch) error {
	query := "UPDATE app_user SET updated_at = NOW()"
	args := make([]any, 0, 6)

	if patch.FirstName != nil {
		query += ", first_name = ?"
		args = append(args, *patch.FirstName)
	}
	if patch.LastName != nil {
		query += ", last_name = ?"
		args = append(args, *patch.LastName)
	}
	if patch.PhoneNumber != nil {
		query += ", phone_number = ?"
		args = append(args, *patch.PhoneNumber)
	}
	if patch.Image != nil {
		query += ", image = ?"
		args = append(args, *patch.Image)
	}
	if patch.DateOfBirth != nil {
		query += ", date_of_birth = ?"
		args = append(args, *patch.DateOfBirth)
	}

	query += " WHERE id = ?"
	args = append(args, id)

	_, err := s.conn.ExecContext(ctx, query, args...)
	return err
}

// DeleteTx removes the account row inside the caller's transaction and
// reports how many rows went away.
func (s *SQL) DeleteTx(ctx context.Context, tx *sqlx.Tx, id string) (int64, error) {
	res, err := tx.ExecContext(ctx, "DELETE FROM app_user WHERE id = ?", id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
