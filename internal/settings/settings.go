// Package settings stores site-wide key/value configuration editable from
// the admin panel, such as the shop's Viber number or the announcement bar.
package settings

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/codemedavid/the-peptide-source-ph/internal/shared"
)

// Setting is one site configuration entry. Keys are kebab-case.
type Setting struct {
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Repository interface {
	List(ctx context.Context) ([]Setting, error)
	Get(ctx context.Context, key string) (Setting, error)
	Upsert(ctx context.Context, setting Setting) (Setting, error)
	Delete(ctx context.Context, key string) error
}

type repository struct {
	db *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{db: pool}
}

func (r *repository) List(ctx context.Context) ([]Setting, error) {
	rows, err := r.db.Query(ctx, `SELECT key, value, updated_at FROM site_settings ORDER BY key`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []Setting
	for rows.Next() {
		var s Setting
		if err := rows.Scan(&s.Key, &s.Value, &s.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	return result, rows.Err()
}

func (r *repository) Get(ctx context.Context, key string) (Setting, error) {
	var s Setting
	err := r.db.QueryRow(ctx, `SELECT key, value, updated_at FROM site_settings WHERE key = $1`, key).
		Scan(&s.Key, &s.Value, &s.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Setting{}, shared.ErrNotFound
	}
	return s, err
}

func (r *repository) Upsert(ctx context.Context, setting Setting) (Setting, error) {
	setting.UpdatedAt = time.Now().UTC()
	_, err := r.db.Exec(ctx,
		`INSERT INTO site_settings (key, value, updated_at) VALUES ($1, $2, $3)
		 ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`,
		setting.Key, setting.Value, setting.UpdatedAt,
	)
	if err != nil {
		return Setting{}, err
	}
	return setting, nil
}

func (r *repository) Delete(ctx context.Context, key string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM site_settings WHERE key = $1`, key)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Service validates keys before touching storage.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Setting, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, key string) (Setting, error) {
	if err := shared.ValidateKey(key); err != nil {
		return Setting{}, err
	}
	return s.repo.Get(ctx, key)
}

func (s *Service) Set(ctx context.Context, key, value string) (Setting, error) {
	if err := shared.ValidateKey(key); err != nil {
		return Setting{}, err
	}
	return s.repo.Upsert(ctx, Setting{Key: key, Value: value})
}

func (s *Service) Delete(ctx context.Context, key string) error {
	if err := shared.ValidateKey(key); err != nil {
		return err
	}
	return s.repo.Delete(ctx, key)
}
