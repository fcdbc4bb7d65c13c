package authdb

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/xw1nchester/hisba-backend/internal/logging"
	"github.com/xw1nchester/hisba-backend/pkg/client/postgresql"
	pgtx "github.com/xw1nchester/hisba-backend/pkg/transactor/postgresql"
	"go.uber.org/zap"
)

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

func (r *repository) CreateSession(ctx context.Context, token string, userAgent string, userID int, expiryDate time.Time) error {
	query := `
		INSERT INTO sessions (token, user_agent, user_id, expiry_date)
		VALUES ($1, $2, $3, $4)
	`

	logging.LogSQLQuery(r.logger, query)

	_, err := pgtx.GetExecutor(ctx, r.client).Exec(ctx, query, token, userAgent, userID, expiryDate)

	return err
}

// DeleteNotExpirySessionByToken removes a live session and returns its owner.
func (r *repository) DeleteNotExpirySessionByToken(ctx context.Context, token string) (int, error) {
	query := `
		DELETE FROM sessions
		WHERE token = $1 AND expiry_date > NOW()
		RETURNING user_id
	`

	logging.LogSQLQuery(r.logger, query)

	var userID int
	if err := pgtx.GetExecutor(ctx, r.client).QueryRow(ctx, query, token).Scan(&userID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrSessionNotFound
		}

		return 0, err
	}

	return userID, nil
}
