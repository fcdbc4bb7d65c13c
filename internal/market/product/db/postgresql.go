package productdb

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/xw1nchester/hisba-backend/internal/logging"
	"github.com/xw1nchester/hisba-backend/internal/market/product"
	"github.com/xw1nchester/hisba-backend/pkg/client/postgresql"
	pgtx "github.com/xw1nchester/hisba-backend/pkg/transactor/postgresql"
	"go.uber.org/zap"
)

const productColumns = `p.id, p.store_id, p.name, p.description, p.price, p.quantity, p.is_approved, p.image, p.created_at`

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

func productFields(p *product.Product) []any {
	return []any{
		&p.ID,
		&p.StoreID,
		&p.Name,
		&p.Description,
		&p.Price,
		&p.Quantity,
		&p.IsApproved,
		&p.Image,
		&p.CreatedAt,
	}
}

func scanProduct(row pgx.Row) (*product.Product, error) {
	var p product.Product
	if err := row.Scan(productFields(&p)...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProductNotFound
		}

		return nil, err
	}

	return &p, nil
}

func (r *repository) queryProducts(ctx context.Context, query string, args ...any) ([]product.Product, error) {
	logging.LogSQLQuery(r.logger, query)

	rows, err := pgtx.GetExecutor(ctx, r.client).Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]product.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %v", err)
		}

		products = append(products, *p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row error: %v", err)
	}

	return products, nil
}

func (r *repository) Create(ctx context.Context, data product.Product) (*product.Product, error) {
	query := `
		INSERT INTO products AS p (store_id, name, description, price, quantity, is_approved, image)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + productColumns

	logging.LogSQLQuery(r.logger, query)

	createdProduct, err := scanProduct(r.client.QueryRow(
		ctx,
		query,
		data.StoreID,
		data.Name,
		data.Description,
		data.Price,
		data.Quantity,
		data.IsApproved,
		data.Image,
	))
	if err != nil {
		if postgresql.IsForeignKeyViolation(err) {
			return nil, ErrStoreNotFound
		}

		return nil, err
	}

	return createdProduct, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*product.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products p WHERE p.id = $1`

	logging.LogSQLQuery(r.logger, query)

	return scanProduct(pgtx.GetExecutor(ctx, r.client).QueryRow(ctx, query, id))
}

func (r *repository) GetByIDs(ctx context.Context, ids []int) ([]product.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products p WHERE p.id = ANY($1) ORDER BY p.id`

	return r.queryProducts(ctx, query, ids)
}

func (r *repository) GetAll(ctx context.Context, filter product.Filter) ([]product.Product, error) {
	var (
		conditions []string
		args       []any
	)

	if filter.StoreID != 0 {
		args = append(args, filter.StoreID)
		conditions = append(conditions, fmt.Sprintf("p.store_id = $%d", len(args)))
	}

	if filter.ApprovedOnly {
		conditions = append(conditions, "p.is_approved")
	}

	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		conditions = append(conditions, fmt.Sprintf("p.name ILIKE $%d", len(args)))
	}

	query := `SELECT ` + productColumns + ` FROM products p`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY p.id"

	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	return r.queryProducts(ctx, query, args...)
}

func (r *repository) MostOrdered(ctx context.Context, limit int) ([]product.Popular, error) {
	query := `
		SELECT ` + productColumns + `, SUM(oi.quantity) AS ordered
		FROM products p
		JOIN order_items oi ON oi.product_id = p.id
		GROUP BY p.id
		ORDER BY ordered DESC, p.id
		LIMIT $1
	`

	logging.LogSQLQuery(r.logger, query)

	rows, err := r.client.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	popular := make([]product.Popular, 0)
	for rows.Next() {
		var p product.Popular
		if err := rows.Scan(append(productFields(&p.Product), &p.OrderedQuantity)...); err != nil {
			return nil, fmt.Errorf("failed to scan row: %v", err)
		}

		popular = append(popular, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row error: %v", err)
	}

	return popular, nil
}

func (r *repository) Update(ctx context.Context, id int, data product.Update) (*product.Product, error) {
	query := `
		UPDATE products AS p
		SET
			name = COALESCE($2, p.name),
			description = COALESCE($3, p.description),
			price = COALESCE($4, p.price),
			quantity = COALESCE($5, p.quantity),
			image = COALESCE($6, p.image)
		WHERE p.id = $1
		RETURNING ` + productColumns

	logging.LogSQLQuery(r.logger, query)

	return scanProduct(r.client.QueryRow(
		ctx,
		query,
		id,
		data.Name,
		data.Description,
		data.Price,
		data.Quantity,
		data.Image,
	))
}

func (r *repository) SetApproved(ctx context.Context, id int, approved bool) (*product.Product, error) {
	query := `
		UPDATE products AS p
		SET is_approved = $2
		WHERE p.id = $1
		RETURNING ` + productColumns

	logging.LogSQLQuery(r.logger, query)

	return scanProduct(r.client.QueryRow(ctx, query, id, approved))
}

func (r *repository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM products WHERE id = $1`

	logging.LogSQLQuery(r.logger, query)

	tag, err := r.client.Exec(ctx, query, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrProductNotFound
	}

	return nil
}
