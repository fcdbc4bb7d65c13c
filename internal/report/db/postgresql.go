package reportdb

import (
	"context"
	"fmt"

	"github.com/xw1nchester/hisba-backend/internal/logging"
	"github.com/xw1nchester/hisba-backend/internal/report"
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

func (r *repository) Dashboard(ctx context.Context) (*report.Dashboard, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM users),
			(SELECT COUNT(*) FROM stores),
			(SELECT COUNT(*) FROM products),
			(SELECT COUNT(*) FROM orders),
			(SELECT COUNT(*) FROM store_requests WHERE status = 'Pending'),
			(SELECT COALESCE(SUM(total_with_delivery), 0) FROM orders)
	`

	logging.LogSQLQuery(r.logger, query)

	var d report.Dashboard
	if err := r.client.QueryRow(ctx, query).Scan(
		&d.Users,
		&d.Stores,
		&d.Products,
		&d.Orders,
		&d.PendingStoreRequests,
		&d.TotalSales,
	); err != nil {
		return nil, err
	}

	return &d, nil
}

func (r *repository) SalesByStore(ctx context.Context, limit int) ([]report.StoreSales, error) {
	query := `
		SELECT s.id, s.name, COUNT(o.id), COALESCE(SUM(o.total_with_delivery), 0) AS sales
		FROM stores s
		LEFT JOIN orders o ON o.store_id = s.id
		GROUP BY s.id
		ORDER BY sales DESC, s.id
		LIMIT $1
	`

	logging.LogSQLQuery(r.logger, query)

	rows, err := r.client.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sales := make([]report.StoreSales, 0)
	for rows.Next() {
		var s report.StoreSales
		if err := rows.Scan(&s.StoreID, &s.StoreName, &s.Orders, &s.Sales); err != nil {
			return nil, fmt.Errorf("failed to scan row: %v", err)
		}

		sales = append(sales, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row error: %v", err)
	}

	return sales, nil
}

func (r *repository) UserActivity(ctx context.Context, limit int) ([]report.UserActivity, error) {
	query := `
		SELECT u.id, u.username, COUNT(o.id) AS orders
		FROM users u
		LEFT JOIN orders o ON o.user_id = u.id
		GROUP BY u.id
		ORDER BY orders DESC, u.id
		LIMIT $1
	`

	logging.LogSQLQuery(r.logger, query)

	rows, err := r.client.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	activity := make([]report.UserActivity, 0)
	for rows.Next() {
		var a report.UserActivity
		if err := rows.Scan(&a.UserID, &a.Username, &a.Orders); err != nil {
			return nil, fmt.Errorf("failed to scan row: %v", err)
		}

		activity = append(activity, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row error: %v", err)
	}

	return activity, nil
}

func (r *repository) RecentOrders(ctx context.Context, limit int) ([]report.RecentOrder, error) {
	query := `
		SELECT id, user_id, store_id, total_with_delivery, is_store_approved, is_admin_approved, created_at
		FROM orders
		ORDER BY created_at DESC, id DESC
		LIMIT $1
	`

	logging.LogSQLQuery(r.logger, query)

	rows, err := r.client.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]report.RecentOrder, 0)
	for rows.Next() {
		var o report.RecentOrder
		if err := rows.Scan(
			&o.ID,
			&o.UserID,
			&o.StoreID,
			&o.TotalWithDelivery,
			&o.IsStoreApproved,
			&o.IsAdminApproved,
			&o.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan row: %v", err)
		}

		orders = append(orders, o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row error: %v", err)
	}

	return orders, nil
}

func (r *repository) RecentUsers(ctx context.Context, limit int) ([]report.RecentUser, error) {
	query := `
		SELECT id, username, email, created_at
		FROM users
		ORDER BY created_at DESC, id DESC
		LIMIT $1
	`

	logging.LogSQLQuery(r.logger, query)

	rows, err := r.client.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]report.RecentUser, 0)
	for rows.Next() {
		var u report.RecentUser
		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan row: %v", err)
		}

		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row error: %v", err)
	}

	return users, nil
}

func (r *repository) RecentStoreRequests(ctx context.Context, limit int) ([]report.RecentStoreRequest, error) {
	query := `
		SELECT id, user_id, store_name, status, created_at
		FROM store_requests
		ORDER BY created_at DESC, id DESC
		LIMIT $1
	`

	logging.LogSQLQuery(r.logger, query)

	rows, err := r.client.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := make([]report.RecentStoreRequest, 0)
	for rows.Next() {
		var sr report.RecentStoreRequest
		if err := rows.Scan(&sr.ID, &sr.UserID, &sr.StoreName, &sr.Status, &sr.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan row: %v", err)
		}

		requests = append(requests, sr)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row error: %v", err)
	}

	return requests, nil
}
