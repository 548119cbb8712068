package checkout

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/codemedavid/the-peptide-source-ph/internal/cart"
	"github.com/codemedavid/the-peptide-source-ph/internal/money"
	"github.com/codemedavid/the-peptide-source-ph/internal/shared"
)

type Repository interface {
	Create(ctx context.Context, order Order) (Order, error)
	Get(ctx context.Context, id string) (Order, error)
	List(ctx context.Context, limit, offset int) ([]Order, error)
	MarkViberSent(ctx context.Context, id string, sent bool) error
}

type repository struct {
	db *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{db: pool}
}

const orderColumns = `id, customer_name, customer_email, customer_phone, customer_address, customer_city, customer_province, customer_zip_code, customer_country, notes, payment_method_id, payment_method_name, items, total_price, summary, status, viber_sent, created_at`

func (r *repository) Create(ctx context.Context, order Order) (Order, error) {
	items, err := json.Marshal(order.Items)
	if err != nil {
		return Order{}, fmt.Errorf("encode order items: %w", err)
	}
	order.CreatedAt = time.Now().UTC()
	_, err = r.db.Exec(ctx,
		`INSERT INTO orders (`+orderColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`,
		order.ID, order.CustomerName, order.CustomerEmail, order.CustomerPhone,
		order.CustomerAddress, order.CustomerCity, order.CustomerProvince, order.CustomerZipCode, order.CustomerCountry,
		order.Notes, order.PaymentMethodID, order.PaymentMethodName,
		items, order.TotalPrice.Centavos(), order.Summary, order.Status, order.ViberSent, order.CreatedAt,
	)
	if err != nil {
		return Order{}, err
	}
	return order, nil
}

func (r *repository) Get(ctx context.Context, id string) (Order, error) {
	row := r.db.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id)
	order, err := scanOrder(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Order{}, shared.ErrNotFound
	}
	return order, err
}

func (r *repository) List(ctx context.Context, limit, offset int) ([]Order, error) {
	rows, err := r.db.Query(ctx, `SELECT `+orderColumns+` FROM orders ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, order)
	}
	return result, rows.Err()
}

func (r *repository) MarkViberSent(ctx context.Context, id string, sent bool) error {
	tag, err := r.db.Exec(ctx, `UPDATE orders SET viber_sent = $1 WHERE id = $2`, sent, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func scanOrder(row pgx.Row) (Order, error) {
	var (
		order      Order
		items      []byte
		totalPrice int64
	)
	err := row.Scan(
		&order.ID, &order.CustomerName, &order.CustomerEmail, &order.CustomerPhone,
		&order.CustomerAddress, &order.CustomerCity, &order.CustomerProvince, &order.CustomerZipCode, &order.CustomerCountry,
		&order.Notes, &order.PaymentMethodID, &order.PaymentMethodName,
		&items, &totalPrice, &order.Summary, &order.Status, &order.ViberSent, &order.CreatedAt,
	)
	if err != nil {
		return Order{}, err
	}
	order.TotalPrice = money.Amount(totalPrice)
	if len(items) > 0 {
		if err := json.Unmarshal(items, &order.Items); err != nil {
			return Order{}, fmt.Errorf("decode order items: %w", err)
		}
	}
	if order.Items == nil {
		order.Items = []cart.Line{}
	}
	return order, nil
}
