package ratingdb

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/xw1nchester/hisba-backend/internal/logging"
	"github.com/xw1nchester/hisba-backend/internal/market/rating"
	"github.com/xw1nchester/hisba-backend/pkg/client/postgresql"
	"go.uber.org/zap"
)

const ratingColumns = `id, store_id, user_id, value, weight, comment, created_at`

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

func scanRating(row pgx.Row) (*rating.Rating, error) {
	var r rating.Rating
	if err := row.Scan(
		&r.ID,
		&r.StoreID,
		&r.UserID,
		&r.Value,
		&r.Weight,
		&r.Comment,
		&r.CreatedAt,
	); err != nil {
		return nil, err
	}

	return &r, nil
}

func (r *repository) Create(ctx context.Context, data rating.Rating) (*rating.Rating, error) {
	query := `
		INSERT INTO ratings (store_id, user_id, value, weight, comment)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + ratingColumns

	logging.LogSQLQuery(r.logger, query)

	createdRating, err := scanRating(r.client.QueryRow(
		ctx,
		query,
		data.StoreID,
		data.UserID,
		data.Value,
		data.Weight,
		data.Comment,
	))
	if err != nil {
		if postgresql.IsForeignKeyViolation(err) {
			return nil, ErrStoreNotFound
		}

		return nil, err
	}

	return createdRating, nil
}

func (r *repository) GetByStoreID(ctx context.Context, storeID int) ([]rating.Rating, error) {
	query := `SELECT ` + ratingColumns + ` FROM ratings WHERE store_id = $1 ORDER BY created_at DESC, id DESC`

	logging.LogSQLQuery(r.logger, query)

	rows, err := r.client.Query(ctx, query, storeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ratings := make([]rating.Rating, 0)
	for rows.Next() {
		existingRating, err := scanRating(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %v", err)
		}

		ratings = append(ratings, *existingRating)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row error: %v", err)
	}

	return ratings, nil
}

func (r *repository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM ratings WHERE id = $1`

	logging.LogSQLQuery(r.logger, query)

	tag, err := r.client.Exec(ctx, query, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrRatingNotFound
	}

	return nil
}
