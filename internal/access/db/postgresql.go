package accessdb

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/xw1nchester/hisba-backend/internal/access"
	"github.com/xw1nchester/hisba-backend/internal/logging"
	"github.com/xw1nchester/hisba-backend/pkg/client/postgresql"
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

func (r *repository) Resolve(ctx context.Context, userID int) (access.Actor, error) {
	query := `
		SELECT u.id, u.is_admin, u.permission = 'editor', u.is_seller, COALESCE(s.id, 0)
		FROM users u
		LEFT JOIN stores s ON s.user_id = u.id
		WHERE u.id = $1
	`

	logging.LogSQLQuery(r.logger, query)

	var actor access.Actor
	if err := r.client.QueryRow(ctx, query, userID).Scan(
		&actor.UserID,
		&actor.Admin,
		&actor.Editor,
		&actor.Seller,
		&actor.StoreID,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return access.Actor{}, access.ErrActorNotFound
		}

		return access.Actor{}, err
	}

	return actor, nil
}
