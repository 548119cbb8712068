package payments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/codemedavid/the-peptide-source-ph/internal/platform/httpx"
	"github.com/codemedavid/the-peptide-source-ph/internal/shared"
)

type Repository interface {
	List(ctx context.Context, activeOnly bool) ([]PaymentMethod, error)
	Get(ctx context.Context, id string) (PaymentMethod, error)
	Create(ctx context.Context, method PaymentMethod) (PaymentMethod, error)
	Update(ctx context.Context, id string, method PaymentMethod) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{db: pool}
}

const columns = `id, name, account_number, account_name, qr_code_url, active, sort_order, created_at, updated_at`

func (r *repository) List(ctx context.Context, activeOnly bool) ([]PaymentMethod, error) {
	query := `SELECT ` + columns + ` FROM payment_methods`
	if activeOnly {
		query += ` WHERE active`
	}
	query += ` ORDER BY sort_order, name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []PaymentMethod
	for rows.Next() {
		var m PaymentMethod
		if err := rows.Scan(&m.ID, &m.Name, &m.AccountNumber, &m.AccountName, &m.QRCodeURL, &m.Active, &m.SortOrder, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, m)
	}
	return result, rows.Err()
}

func (r *repository) Get(ctx context.Context, id string) (PaymentMethod, error) {
	var m PaymentMethod
	err := r.db.QueryRow(ctx, `SELECT `+columns+` FROM payment_methods WHERE id = $1`, id).
		Scan(&m.ID, &m.Name, &m.AccountNumber, &m.AccountName, &m.QRCodeURL, &m.Active, &m.SortOrder, &m.CreatedAt, &m.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return PaymentMethod{}, shared.ErrNotFound
	}
	return m, err
}

func (r *repository) Create(ctx context.Context, method PaymentMethod) (PaymentMethod, error) {
	now := time.Now().UTC()
	_, err := r.db.Exec(ctx,
		`INSERT INTO payment_methods (id, name, account_number, account_name, qr_code_url, active, sort_order, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		method.ID, method.Name, method.AccountNumber, method.AccountName, method.QRCodeURL, method.Active, method.SortOrder, now, now,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return PaymentMethod{}, fmt.Errorf("payment method %q: %w", method.ID, httpx.ErrDuplicate)
		}
		return PaymentMethod{}, err
	}
	method.CreatedAt = now
	method.UpdatedAt = now
	return method, nil
}

func (r *repository) Update(ctx context.Context, id string, method PaymentMethod) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE payment_methods SET name = $1, account_number = $2, account_name = $3, qr_code_url = $4, active = $5, sort_order = $6, updated_at = $7 WHERE id = $8`,
		method.Name, method.AccountNumber, method.AccountName, method.QRCodeURL, method.Active, method.SortOrder, time.Now().UTC(), id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM payment_methods WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}
