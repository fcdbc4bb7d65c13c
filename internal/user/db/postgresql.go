package userdb

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/xw1nchester/hisba-backend/internal/logging"
	"github.com/xw1nchester/hisba-backend/internal/user"
	"github.com/xw1nchester/hisba-backend/pkg/client/postgresql"
	pgtx "github.com/xw1nchester/hisba-backend/pkg/transactor/postgresql"
	"go.uber.org/zap"
)

const userColumns = `id, username, email, password_hash, is_admin, is_seller, permission, age, phone, id_number, profile_image, created_at`

type repository struct {
	client postgresql.Client
	logger *zap.Logger
}

func New(client postgresql.Client, logger *zap.Logger) *repository {
	return &repository{
		client: client,
		logger: logger,
	}
}

func scanUser(row pgx.Row) (*user.User, error) {
	var (
		u          user.User
		permission string
	)

	if err := row.Scan(
		&u.ID,
		&u.Username,
		&u.Email,
		&u.PasswordHash,
		&u.IsAdmin,
		&u.IsSeller,
		&permission,
		&u.Age,
		&u.Phone,
		&u.IDNumber,
		&u.ProfileImage,
		&u.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}

		return nil, err
	}

	u.Permission = user.Permission(permission)

	return &u, nil
}

func (r *repository) Create(ctx context.Context, data user.User) (*user.User, error) {
	query := `
		INSERT INTO users (username, email, password_hash, age, phone, id_number)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + userColumns

	logging.LogSQLQuery(r.logger, query)

	createdUser, err := scanUser(pgtx.GetExecutor(ctx, r.client).QueryRow(
		ctx,
		query,
		data.Username,
		data.Email,
		data.PasswordHash,
		data.Age,
		data.Phone,
		data.IDNumber,
	))
	if err != nil {
		if postgresql.IsUniqueViolation(err) {
			return nil, ErrUserAlreadyExists
		}

		return nil, err
	}

	return createdUser, nil
}

func (r *repository) getBy(ctx context.Context, column string, value any) (*user.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE %s = $1`, userColumns, column)

	logging.LogSQLQuery(r.logger, query)

	return scanUser(pgtx.GetExecutor(ctx, r.client).QueryRow(ctx, query, value))
}

func (r *repository) GetByID(ctx context.Context, id int) (*user.User, error) {
	return r.getBy(ctx, "id", id)
}

func (r *repository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	return r.getBy(ctx, "username", username)
}

func (r *repository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	return r.getBy(ctx, "email", email)
}

func (r *repository) GetAll(ctx context.Context) ([]user.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY id`

	logging.LogSQLQuery(r.logger, query)

	rows, err := r.client.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]user.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %v", err)
		}

		users = append(users, *u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row error: %v", err)
	}

	return users, nil
}

func (r *repository) UpdateProfile(ctx context.Context, id int, data user.Profile) (*user.User, error) {
	query := `
		UPDATE users
		SET
			age = COALESCE($2, age),
			phone = COALESCE($3, phone),
			id_number = COALESCE($4, id_number),
			profile_image = COALESCE($5, profile_image)
		WHERE id = $1
		RETURNING ` + userColumns

	logging.LogSQLQuery(r.logger, query)

	updatedUser, err := scanUser(r.client.QueryRow(
		ctx,
		query,
		id,
		data.Age,
		data.Phone,
		data.IDNumber,
		data.ProfileImage,
	))
	if err != nil {
		if postgresql.IsUniqueViolation(err) {
			return nil, ErrIDNumberAlreadyExists
		}

		return nil, err
	}

	return updatedUser, nil
}

func (r *repository) SetSeller(ctx context.Context, id int, isSeller bool) error {
	query := `UPDATE users SET is_seller = $2 WHERE id = $1`

	logging.LogSQLQuery(r.logger, query)

	tag, err := pgtx.GetExecutor(ctx, r.client).Exec(ctx, query, id, isSeller)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}

	return nil
}

func (r *repository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM users WHERE id = $1`

	logging.LogSQLQuery(r.logger, query)

	tag, err := r.client.Exec(ctx, query, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}

	return nil
}
