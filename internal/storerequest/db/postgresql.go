package storerequestdb

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/xw1nchester/hisba-backend/internal/logging"
	"github.com/xw1nchester/hisba-backend/internal/market/store"
	"github.com/xw1nchester/hisba-backend/internal/storerequest"
	"github.com/xw1nchester/hisba-backend/pkg/client/postgresql"
	pgtx "github.com/xw1nchester/hisba-backend/pkg/transactor/postgresql"
	"go.uber.org/zap"
)

const requestColumns = `
	id, user_id, store_name, description, address, phone, store_type,
	status, reject_reason, created_at, reviewed_at
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

func scanRequest(row pgx.Row) (*storerequest.Request, error) {
	var (
		r                 storerequest.Request
		storeType, status string
	)

	if err := row.Scan(
		&r.ID,
		&r.UserID,
		&r.StoreName,
		&r.Description,
		&r.Address,
		&r.Phone,
		&storeType,
		&status,
		&r.RejectReason,
		&r.CreatedAt,
		&r.ReviewedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrRequestNotFound
		}

		return nil, err
	}

	r.StoreType = store.Type(storeType)
	r.Status = storerequest.Status(status)

	return &r, nil
}

// Create inserts a pending request. A Duplicate or Rejected request of the same user
// is reset to Pending with the new data; any other existing request blocks the insert.
func (r *repository) Create(ctx context.Context, data storerequest.Request) (*storerequest.Request, error) {
	query := `
		INSERT INTO store_requests AS sr (user_id, store_name, description, address, phone, store_type)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id) DO UPDATE
		SET
			store_name = EXCLUDED.store_name,
			description = EXCLUDED.description,
			address = EXCLUDED.address,
			phone = EXCLUDED.phone,
			store_type = EXCLUDED.store_type,
			status = 'Pending',
			reject_reason = '',
			created_at = NOW(),
			reviewed_at = NULL
		WHERE sr.status IN ('Duplicate', 'Rejected')
		RETURNING ` + requestColumns

	logging.LogSQLQuery(r.logger, query)

	createdRequest, err := scanRequest(r.client.QueryRow(
		ctx,
		query,
		data.UserID,
		data.StoreName,
		data.Description,
		data.Address,
		data.Phone,
		string(data.StoreType),
	))
	if err != nil {
		switch {
		case errors.Is(err, ErrRequestNotFound):
			return nil, ErrActiveRequestExists
		case postgresql.IsForeignKeyViolation(err):
			return nil, ErrUserNotFound
		}

		return nil, err
	}

	return createdRequest, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*storerequest.Request, error) {
	query := `SELECT ` + requestColumns + ` FROM store_requests WHERE id = $1`

	logging.LogSQLQuery(r.logger, query)

	return scanRequest(r.client.QueryRow(ctx, query, id))
}

// GetByIDForUpdate locks the request row for the rest of the transaction.
func (r *repository) GetByIDForUpdate(ctx context.Context, id int) (*storerequest.Request, error) {
	query := `SELECT ` + requestColumns + ` FROM store_requests WHERE id = $1 FOR UPDATE`

	logging.LogSQLQuery(r.logger, query)

	return scanRequest(pgtx.GetExecutor(ctx, r.client).QueryRow(ctx, query, id))
}

func (r *repository) GetByUserID(ctx context.Context, userID int) (*storerequest.Request, error) {
	query := `SELECT ` + requestColumns + ` FROM store_requests WHERE user_id = $1`

	logging.LogSQLQuery(r.logger, query)

	return scanRequest(r.client.QueryRow(ctx, query, userID))
}

func (r *repository) GetAll(ctx context.Context, status storerequest.Status) ([]storerequest.Request, error) {
	query := `
		SELECT ` + requestColumns + `
		FROM store_requests
		WHERE $1 = '' OR status = $1
		ORDER BY created_at DESC, id DESC
	`

	logging.LogSQLQuery(r.logger, query)

	rows, err := r.client.Query(ctx, query, string(status))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := make([]storerequest.Request, 0)
	for rows.Next() {
		request, err := scanRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %v", err)
		}

		requests = append(requests, *request)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row error: %v", err)
	}

	return requests, nil
}

func (r *repository) SetStatus(
	ctx context.Context,
	id int,
	status storerequest.Status,
	rejectReason string,
) (*storerequest.Request, error) {
	query := `
		UPDATE store_requests
		SET status = $2, reject_reason = $3, reviewed_at = NOW()
		WHERE id = $1
		RETURNING ` + requestColumns

	logging.LogSQLQuery(r.logger, query)

	return scanRequest(pgtx.GetExecutor(ctx, r.client).QueryRow(ctx, query, id, string(status), rejectReason))
}
