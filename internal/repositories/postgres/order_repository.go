package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lapuropizza/storefront/internal/models"
)

type OrderRepository struct {
	pool *pgxpool.Pool
}

func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{pool: pool}
}

// EnsureSchema creates the orders table when it does not exist yet.
func (r *OrderRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
        CREATE TABLE IF NOT EXISTS orders (
            id TEXT PRIMARY KEY,
            lines JSONB NOT NULL,
            subtotal DOUBLE PRECISION NOT NULL,
            delivery_fee DOUBLE PRECISION NOT NULL,
            total DOUBLE PRECISION NOT NULL,
            customer JSONB NOT NULL,
            delivery_type TEXT NOT NULL,
            payment_method TEXT NOT NULL,
            status TEXT NOT NULL,
            placed_at TIMESTAMPTZ NOT NULL
        )
    `)
	return err
}

func (r *OrderRepository) BulkCreate(ctx context.Context, orders []*models.Order) error {
	_, err := r.pool.CopyFrom(
		ctx,
		pgx.Identifier{"orders"},
		[]string{
			"id", "lines", "subtotal", "delivery_fee", "total",
			"customer", "delivery_type", "payment_method", "status", "placed_at",
		},
		pgx.CopyFromSlice(len(orders), func(i int) ([]interface{}, error) {
			lines, err := json.Marshal(orders[i].Lines)
			if err != nil {
				return nil, err
			}
			customer, err := json.Marshal(orders[i].Customer)
			if err != nil {
				return nil, err
			}
			return []interface{}{
				orders[i].ID,
				lines,
				orders[i].Subtotal,
				orders[i].DeliveryFee,
				orders[i].Total,
				customer,
				orders[i].DeliveryType,
				orders[i].PaymentMethod,
				orders[i].Status,
				orders[i].PlacedAt,
			}, nil
		}),
	)
	return err
}

func (r *OrderRepository) Create(ctx context.Context, order *models.Order) error {
	lines, err := json.Marshal(order.Lines)
	if err != nil {
		return fmt.Errorf("serializing order lines: %w", err)
	}
	customer, err := json.Marshal(order.Customer)
	if err != nil {
		return fmt.Errorf("serializing customer: %w", err)
	}

	query := `
        INSERT INTO orders (
            id, lines, subtotal, delivery_fee, total,
            customer, delivery_type, payment_method, status, placed_at
        ) VALUES (
            $1, $2, $3, $4, $5, $6, $7, $8, $9, $10
        )
    `

	_, err = r.pool.Exec(ctx, query,
		order.ID,
		lines,
		order.Subtotal,
		order.DeliveryFee,
		order.Total,
		customer,
		order.DeliveryType,
		order.PaymentMethod,
		order.Status,
		order.PlacedAt,
	)
	return err
}

func (r *OrderRepository) GetAll(ctx context.Context) ([]*models.Order, error) {
	query := `
        SELECT
            id, lines, subtotal, delivery_fee, total,
            customer, delivery_type, payment_method, status, placed_at
        FROM orders
        ORDER BY placed_at
    `
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []*models.Order
	for rows.Next() {
		var (
			order    models.Order
			lines    []byte
			customer []byte
		)
		if err := rows.Scan(
			&order.ID,
			&lines,
			&order.Subtotal,
			&order.DeliveryFee,
			&order.Total,
			&customer,
			&order.DeliveryType,
			&order.PaymentMethod,
			&order.Status,
			&order.PlacedAt,
		); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(lines, &order.Lines); err != nil {
			return nil, fmt.Errorf("parsing lines for order %s: %w", order.ID, err)
		}
		if err := json.Unmarshal(customer, &order.Customer); err != nil {
			return nil, fmt.Errorf("parsing customer for order %s: %w", order.ID, err)
		}
		orders = append(orders, &order)
	}
	return orders, rows.Err()
}

func (r *OrderRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM orders").Scan(&count)
	return count, err
}

func (r *OrderRepository) DeleteAll(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, "DELETE FROM orders")
	return err
}
