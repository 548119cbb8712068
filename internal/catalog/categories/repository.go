package categories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/codemedavid/the-peptide-source-ph/internal/platform/db"
	"github.com/codemedavid/the-peptide-source-ph/internal/platform/httpx"
	"github.com/codemedavid/the-peptide-source-ph/internal/shared"
)

type Repository interface {
	List(ctx context.Context, activeOnly bool) ([]Category, error)
	ListWithCounts(ctx context.Context) ([]Category, error)
	Get(ctx context.Context, id string) (Category, error)
	Create(ctx context.Context, category Category) (Category, error)
	Update(ctx context.Context, id string, category Category) error
	Delete(ctx context.Context, id string) error
	Reorder(ctx context.Context, ids []string) error
}

type repository struct {
	db *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{db: pool}
}

func (r *repository) List(ctx context.Context, activeOnly bool) ([]Category, error) {
	query := `SELECT id, name, icon, sort_order, active, created_at, updated_at FROM categories`
	if activeOnly {
		query += ` WHERE active`
	}
	query += ` ORDER BY sort_order, name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []Category
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Icon, &c.SortOrder, &c.Active, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	return result, rows.Err()
}

func (r *repository) ListWithCounts(ctx context.Context) ([]Category, error) {
	query := `SELECT c.id, c.name, c.icon, c.sort_order, c.active, c.created_at, c.updated_at, COUNT(p.id)
		FROM categories c
		LEFT JOIN products p ON p.category = c.id
		GROUP BY c.id
		ORDER BY c.sort_order, c.name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []Category
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Icon, &c.SortOrder, &c.Active, &c.CreatedAt, &c.UpdatedAt, &c.ProductCount); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	return result, rows.Err()
}

func (r *repository) Get(ctx context.Context, id string) (Category, error) {
	var c Category
	err := r.db.QueryRow(ctx, `SELECT id, name, icon, sort_order, active, created_at, updated_at FROM categories WHERE id = $1`, id).
		Scan(&c.ID, &c.Name, &c.Icon, &c.SortOrder, &c.Active, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Category{}, shared.ErrNotFound
	}
	return c, err
}

func (r *repository) Create(ctx context.Context, category Category) (Category, error) {
	now := time.Now().UTC()
	_, err := r.db.Exec(ctx,
		`INSERT INTO categories (id, name, icon, sort_order, active, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		category.ID, category.Name, category.Icon, category.SortOrder, category.Active, now, now,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return Category{}, fmt.Errorf("category %q: %w", category.ID, httpx.ErrDuplicate)
		}
		return Category{}, err
	}
	category.CreatedAt = now
	category.UpdatedAt = now
	return category, nil
}

func (r *repository) Update(ctx context.Context, id string, category Category) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE categories SET name = $1, icon = $2, sort_order = $3, active = $4, updated_at = $5 WHERE id = $6`,
		category.Name, category.Icon, category.SortOrder, category.Active, time.Now().UTC(), id,
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
	tag, err := r.db.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Reorder rewrites sort_order to match the given ID sequence.
func (r *repository) Reorder(ctx context.Context, ids []string) error {
	return db.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		for i, id := range ids {
			if _, err := tx.Exec(ctx, `UPDATE categories SET sort_order = $1, updated_at = $2 WHERE id = $3`, i+1, time.Now().UTC(), id); err != nil {
				return err
			}
		}
		return nil
	})
}
