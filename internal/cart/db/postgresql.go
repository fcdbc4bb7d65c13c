package cartdb

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/xw1nchester/hisba-backend/internal/cart"
	"github.com/xw1nchester/hisba-backend/internal/logging"
	"github.com/xw1nchester/hisba-backend/pkg/client/postgresql"
	pgtx "github.com/xw1nchester/hisba-backend/pkg/transactor/postgresql"
	"go.uber.org/zap"
)

const itemColumns = `ci.product_id, p.store_id, p.name, p.price, p.quantity, p.image, ci.quantity`

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

func scanItem(row pgx.Row) (*cart.Item, error) {
	var item cart.Item
	if err := row.Scan(
		&item.ProductID,
		&item.StoreID,
		&item.Name,
		&item.Price,
		&item.Stock,
		&item.Image,
		&item.Quantity,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrItemNotFound
		}

		return nil, err
	}

	return &item, nil
}

// GetOrCreate returns the id of the user's cart, creating it on first use.
// On conflict the existing row is locked until the surrounding transaction ends.
func (r *repository) GetOrCreate(ctx context.Context, userID int) (int, error) {
	query := `
		INSERT INTO carts (user_id)
		VALUES ($1)
		ON CONFLICT (user_id) DO UPDATE SET user_id = EXCLUDED.user_id
		RETURNING id
	`

	logging.LogSQLQuery(r.logger, query)

	var id int
	if err := pgtx.GetExecutor(ctx, r.client).QueryRow(ctx, query, userID).Scan(&id); err != nil {
		return 0, err
	}

	return id, nil
}

// GetForUpdate locks the user's cart row for the rest of the transaction.
func (r *repository) GetForUpdate(ctx context.Context, userID int) (int, error) {
	query := `SELECT id FROM carts WHERE user_id = $1 FOR UPDATE`

	logging.LogSQLQuery(r.logger, query)

	var id int
	if err := pgtx.GetExecutor(ctx, r.client).QueryRow(ctx, query, userID).Scan(&id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrCartNotFound
		}

		return 0, err
	}

	return id, nil
}

func (r *repository) GetItems(ctx context.Context, cartID int) ([]cart.Item, error) {
	query := `
		SELECT ` + itemColumns + `
		FROM cart_items ci
		JOIN products p ON p.id = ci.product_id
		WHERE ci.cart_id = $1
		ORDER BY ci.id
	`

	logging.LogSQLQuery(r.logger, query)

	rows, err := pgtx.GetExecutor(ctx, r.client).Query(ctx, query, cartID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]cart.Item, 0)
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %v", err)
		}

		items = append(items, *item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row error: %v", err)
	}

	return items, nil
}

func (r *repository) GetItem(ctx context.Context, cartID, productID int) (*cart.Item, error) {
	query := `
		SELECT ` + itemColumns + `
		FROM cart_items ci
		JOIN products p ON p.id = ci.product_id
		WHERE ci.cart_id = $1 AND ci.product_id = $2
	`

	logging.LogSQLQuery(r.logger, query)

	return scanItem(pgtx.GetExecutor(ctx, r.client).QueryRow(ctx, query, cartID, productID))
}

// AddItem inserts a line or adds quantity to the existing one.
func (r *repository) AddItem(ctx context.Context, cartID, productID, quantity int) error {
	query := `
		INSERT INTO cart_items (cart_id, product_id, quantity)
		VALUES ($1, $2, $3)
		ON CONFLICT (cart_id, product_id)
		DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity
	`

	logging.LogSQLQuery(r.logger, query)

	if _, err := pgtx.GetExecutor(ctx, r.client).Exec(ctx, query, cartID, productID, quantity); err != nil {
		if postgresql.IsForeignKeyViolation(err) {
			return ErrProductNotFound
		}

		return err
	}

	return nil
}

func (r *repository) SetItemQuantity(ctx context.Context, cartID, productID, quantity int) error {
	query := `UPDATE cart_items SET quantity = $3 WHERE cart_id = $1 AND product_id = $2`

	logging.LogSQLQuery(r.logger, query)

	tag, err := pgtx.GetExecutor(ctx, r.client).Exec(ctx, query, cartID, productID, quantity)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrItemNotFound
	}

	return nil
}

func (r *repository) RemoveItem(ctx context.Context, cartID, productID int) error {
	query := `DELETE FROM cart_items WHERE cart_id = $1 AND product_id = $2`

	logging.LogSQLQuery(r.logger, query)

	tag, err := pgtx.GetExecutor(ctx, r.client).Exec(ctx, query, cartID, productID)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrItemNotFound
	}

	return nil
}

func (r *repository) Clear(ctx context.Context, cartID int) error {
	query := `DELETE FROM cart_items WHERE cart_id = $1`

	logging.LogSQLQuery(r.logger, query)

	_, err := pgtx.GetExecutor(ctx, r.client).Exec(ctx, query, cartID)

	return err
}
