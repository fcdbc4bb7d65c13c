package orderdb

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/xw1nchester/hisba-backend/internal/logging"
	"github.com/xw1nchester/hisba-backend/internal/order"
	"github.com/xw1nchester/hisba-backend/pkg/client/postgresql"
	pgtx "github.com/xw1nchester/hisba-backend/pkg/transactor/postgresql"
	"go.uber.org/zap"
)

const orderColumns = `
	id, user_id, store_id, total_amount, delivery_fee, total_with_delivery,
	payment_method, address, phone, visa_number, visa_cvc, visa_expiry,
	is_store_approved, is_admin_approved, created_at
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

func scanOrder(row pgx.Row) (*order.Order, error) {
	var (
		o             order.Order
		paymentMethod string
	)

	if err := row.Scan(
		&o.ID,
		&o.UserID,
		&o.StoreID,
		&o.TotalAmount,
		&o.DeliveryFee,
		&o.TotalWithDelivery,
		&paymentMethod,
		&o.Address,
		&o.Phone,
		&o.VisaNumber,
		&o.VisaCVC,
		&o.VisaExpiry,
		&o.IsStoreApproved,
		&o.IsAdminApproved,
		&o.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrOrderNotFound
		}

		return nil, err
	}

	o.PaymentMethod = order.PaymentMethod(paymentMethod)
	o.Status = order.StatusOf(o.IsStoreApproved, o.IsAdminApproved)
	o.Items = make([]order.Item, 0)

	return &o, nil
}

func translateForeignKey(err error) error {
	if !postgresql.IsForeignKeyViolation(err) {
		return err
	}

	switch postgresql.ViolatedConstraint(err) {
	case "orders_user_id_fkey":
		return ErrUserNotFound
	case "orders_store_id_fkey":
		return ErrStoreNotFound
	case "order_items_product_id_fkey":
		return ErrProductNotFound
	}

	return err
}

// Create inserts the order and its items. Call it inside a transaction.
func (r *repository) Create(ctx context.Context, data order.Order) (*order.Order, error) {
	executor := pgtx.GetExecutor(ctx, r.client)

	query := `
		INSERT INTO orders (
			user_id, store_id, total_amount, delivery_fee, total_with_delivery,
			payment_method, address, phone, visa_number, visa_cvc, visa_expiry
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + orderColumns

	logging.LogSQLQuery(r.logger, query)

	createdOrder, err := scanOrder(executor.QueryRow(
		ctx,
		query,
		data.UserID,
		data.StoreID,
		data.TotalAmount,
		data.DeliveryFee,
		data.TotalWithDelivery,
		string(data.PaymentMethod),
		data.Address,
		data.Phone,
		data.VisaNumber,
		data.VisaCVC,
		data.VisaExpiry,
	))
	if err != nil {
		return nil, translateForeignKey(err)
	}

	itemQuery := `
		INSERT INTO order_items (order_id, product_id, quantity, price, total_price)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	logging.LogSQLQuery(r.logger, itemQuery)

	for _, item := range data.Items {
		item.OrderID = createdOrder.ID

		if err := executor.QueryRow(
			ctx,
			itemQuery,
			item.OrderID,
			item.ProductID,
			item.Quantity,
			item.Price,
			item.TotalPrice,
		).Scan(&item.ID); err != nil {
			return nil, translateForeignKey(err)
		}

		createdOrder.Items = append(createdOrder.Items, item)
	}

	return createdOrder, nil
}

func (r *repository) attachItems(ctx context.Context, orders []*order.Order) error {
	if len(orders) == 0 {
		return nil
	}

	ids := make([]int, 0, len(orders))
	byID := make(map[int]*order.Order, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID)
		byID[o.ID] = o
	}

	query := `
		SELECT id, order_id, product_id, quantity, price, total_price
		FROM order_items
		WHERE order_id = ANY($1)
		ORDER BY id
	`

	logging.LogSQLQuery(r.logger, query)

	rows, err := pgtx.GetExecutor(ctx, r.client).Query(ctx, query, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var item order.Item
		if err := rows.Scan(
			&item.ID,
			&item.OrderID,
			&item.ProductID,
			&item.Quantity,
			&item.Price,
			&item.TotalPrice,
		); err != nil {
			return fmt.Errorf("failed to scan row: %v", err)
		}

		if o, ok := byID[item.OrderID]; ok {
			o.Items = append(o.Items, item)
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("row error: %v", err)
	}

	return nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*order.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`

	logging.LogSQLQuery(r.logger, query)

	existingOrder, err := scanOrder(pgtx.GetExecutor(ctx, r.client).QueryRow(ctx, query, id))
	if err != nil {
		return nil, err
	}

	if err := r.attachItems(ctx, []*order.Order{existingOrder}); err != nil {
		return nil, err
	}

	return existingOrder, nil
}

func (r *repository) GetAll(ctx context.Context, filter order.Filter) ([]order.Order, error) {
	var (
		conditions []string
		args       []any
	)

	if filter.UserID != 0 {
		args = append(args, filter.UserID)
		conditions = append(conditions, fmt.Sprintf("user_id = $%d", len(args)))
	}

	if filter.StoreID != 0 {
		args = append(args, filter.StoreID)
		conditions = append(conditions, fmt.Sprintf("store_id = $%d", len(args)))
	}

	query := `SELECT ` + orderColumns + ` FROM orders`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at DESC, id DESC"

	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	logging.LogSQLQuery(r.logger, query)

	rows, err := r.client.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	var found []*order.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan row: %v", err)
		}

		found = append(found, o)
	}
	rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row error: %v", err)
	}

	if err := r.attachItems(ctx, found); err != nil {
		return nil, err
	}

	orders := make([]order.Order, 0, len(found))
	for _, o := range found {
		orders = append(orders, *o)
	}

	return orders, nil
}

// Approve sets the requested flags. Flags already set stay set.
func (r *repository) Approve(ctx context.Context, id int, storeApproval, adminApproval bool) (*order.Order, error) {
	query := `
		UPDATE orders
		SET
			is_store_approved = is_store_approved OR $2,
			is_admin_approved = is_admin_approved OR $3
		WHERE id = $1
		RETURNING ` + orderColumns

	logging.LogSQLQuery(r.logger, query)

	approvedOrder, err := scanOrder(r.client.QueryRow(ctx, query, id, storeApproval, adminApproval))
	if err != nil {
		return nil, err
	}

	if err := r.attachItems(ctx, []*order.Order{approvedOrder}); err != nil {
		return nil, err
	}

	return approvedOrder, nil
}
