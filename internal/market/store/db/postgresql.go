package storedb

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/xw1nchester/hisba-backend/internal/logging"
	"github.com/xw1nchester/hisba-backend/internal/market/store"
	"github.com/xw1nchester/hisba-backend/pkg/client/postgresql"
	pgtx "github.com/xw1nchester/hisba-backend/pkg/transactor/postgresql"
	"go.uber.org/zap"
)

// selectStores computes the weighted average rating of every store.
const selectStores = `
	SELECT
		s.id,
		s.user_id,
		s.name,
		s.address,
		s.phone,
		s.store_type,
		s.is_approved,
		s.cover_image,
		COALESCE(r.average, 0),
		s.created_at
	FROM stores s
	LEFT JOIN LATERAL (
		SELECT SUM(weight * value) / NULLIF(SUM(weight), 0) AS average
		FROM ratings
		WHERE store_id = s.id
	) r ON TRUE
`

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

func scanStore(row pgx.Row) (*store.Store, error) {
	var (
		s         store.Store
		storeType string
	)

	if err := row.Scan(
		&s.ID,
		&s.UserID,
		&s.Name,
		&s.Address,
		&s.Phone,
		&storeType,
		&s.IsApproved,
		&s.CoverImage,
		&s.AverageRating,
		&s.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrStoreNotFound
		}

		return nil, err
	}

	s.StoreType = store.Type(storeType)

	return &s, nil
}

func (r *repository) queryStores(ctx context.Context, query string, args ...any) ([]store.Store, error) {
	logging.LogSQLQuery(r.logger, query)

	rows, err := r.client.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stores := make([]store.Store, 0)
	for rows.Next() {
		s, err := scanStore(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %v", err)
		}

		stores = append(stores, *s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row error: %v", err)
	}

	return stores, nil
}

func (r *repository) Create(ctx context.Context, data store.Store) (*store.Store, error) {
	query := `
		INSERT INTO stores (user_id, name, address, phone, store_type, is_approved, cover_image)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	logging.LogSQLQuery(r.logger, query)

	var id int
	if err := pgtx.GetExecutor(ctx, r.client).QueryRow(
		ctx,
		query,
		data.UserID,
		data.Name,
		data.Address,
		data.Phone,
		string(data.StoreType),
		data.IsApproved,
		data.CoverImage,
	).Scan(&id); err != nil {
		if postgresql.IsUniqueViolation(err) {
			return nil, ErrStoreAlreadyExists
		}

		if postgresql.IsForeignKeyViolation(err) {
			return nil, ErrOwnerNotFound
		}

		return nil, err
	}

	return r.GetByID(ctx, id)
}

func (r *repository) GetByID(ctx context.Context, id int) (*store.Store, error) {
	query := selectStores + `WHERE s.id = $1`

	logging.LogSQLQuery(r.logger, query)

	return scanStore(pgtx.GetExecutor(ctx, r.client).QueryRow(ctx, query, id))
}

func (r *repository) GetByUserID(ctx context.Context, userID int) (*store.Store, error) {
	query := selectStores + `WHERE s.user_id = $1`

	logging.LogSQLQuery(r.logger, query)

	return scanStore(pgtx.GetExecutor(ctx, r.client).QueryRow(ctx, query, userID))
}

func (r *repository) GetAll(ctx context.Context, filter store.Filter) ([]store.Store, error) {
	var (
		conditions []string
		args       []any
	)

	if filter.ApprovedOnly {
		conditions = append(conditions, "s.is_approved")
	}

	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		conditions = append(conditions, fmt.Sprintf("s.name ILIKE $%d", len(args)))
	}

	query := selectStores
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY s.id"

	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	return r.queryStores(ctx, query, args...)
}

func (r *repository) TopRated(ctx context.Context, limit int) ([]store.Store, error) {
	query := selectStores + `
		WHERE s.is_approved
		ORDER BY COALESCE(r.average, 0) DESC, s.id
		LIMIT $1
	`

	return r.queryStores(ctx, query, limit)
}

func (r *repository) Update(ctx context.Context, id int, data store.Update) (*store.Store, error) {
	query := `
		UPDATE stores
		SET
			name = COALESCE($2, name),
			address = COALESCE($3, address),
			phone = COALESCE($4, phone),
			store_type = COALESCE($5, store_type),
			cover_image = COALESCE($6, cover_image)
		WHERE id = $1
	`

	logging.LogSQLQuery(r.logger, query)

	var storeType *string
	if data.StoreType != nil {
		t := string(*data.StoreType)
		storeType = &t
	}

	tag, err := r.client.Exec(ctx, query, id, data.Name, data.Address, data.Phone, storeType, data.CoverImage)
	if err != nil {
		return nil, err
	}

	if tag.RowsAffected() == 0 {
		return nil, ErrStoreNotFound
	}

	return r.GetByID(ctx, id)
}

func (r *repository) SetApproved(ctx context.Context, id int, approved bool) (*store.Store, error) {
	query := `UPDATE stores SET is_approved = $2 WHERE id = $1`

	logging.LogSQLQuery(r.logger, query)

	tag, err := r.client.Exec(ctx, query, id, approved)
	if err != nil {
		return nil, err
	}

	if tag.RowsAffected() == 0 {
		return nil, ErrStoreNotFound
	}

	return r.GetByID(ctx, id)
}

func (r *repository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM stores WHERE id = $1`

	logging.LogSQLQuery(r.logger, query)

	tag, err := r.client.Exec(ctx, query, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrStoreNotFound
	}

	return nil
}
