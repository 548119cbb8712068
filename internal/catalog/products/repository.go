package products

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/codemedavid/the-peptide-source-ph/internal/catalog"
	"github.com/codemedavid/the-peptide-source-ph/internal/money"
	"github.com/codemedavid/the-peptide-source-ph/internal/shared"
)

type Repository interface {
	List(ctx context.Context, filters catalog.ListFilters) ([]Product, int, error)
	Get(ctx context.Context, id string) (Product, error)
	Create(ctx context.Context, product Product) (Product, error)
	Update(ctx context.Context, id string, product Product) error
	Delete(ctx context.Context, id string) error

	ListVariations(ctx context.Context, productID string) ([]Variation, error)
	CreateVariation(ctx context.Context, variation Variation) (Variation, error)
	UpdateVariation(ctx context.Context, id string, variation Variation) error
	DeleteVariation(ctx context.Context, id string) error
}

type repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) Repository {
	return &repository{db: db}
}

const productColumns = `id, name, description, category, base_price, discount_price, discount_start_date, discount_end_date, discount_active, purity_percentage, molecular_weight, cas_number, sequence, storage_conditions, inclusions, stock_quantity, available, featured, image_url, safety_sheet_url, created_at, updated_at`

func (r *repository) List(ctx context.Context, filters catalog.ListFilters) ([]Product, int, error) {
	where := ` WHERE 1=1`
	args := []interface{}{}
	argCount := 0

	if filters.Category != "" {
		argCount++
		where += ` AND category = $` + strconv.Itoa(argCount)
		args = append(args, filters.Category)
	}
	if filters.Search != "" {
		argCount++
		where += ` AND (name ILIKE $` + strconv.Itoa(argCount) + ` OR description ILIKE $` + strconv.Itoa(argCount) + `)`
		args = append(args, "%"+filters.Search+"%")
	}
	if filters.Available != nil {
		argCount++
		where += ` AND available = $` + strconv.Itoa(argCount)
		args = append(args, *filters.Available)
	}
	if filters.Featured != nil {
		argCount++
		where += ` AND featured = $` + strconv.Itoa(argCount)
		args = append(args, *filters.Featured)
	}

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM products`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + productColumns + ` FROM products` + where + ` ORDER BY ` + sortOrder(filters.SortBy, filters.SortDir)

	if filters.Limit > 0 {
		argCount++
		query += ` LIMIT $` + strconv.Itoa(argCount)
		args = append(args, filters.Limit)

		argCount++
		query += ` OFFSET $` + strconv.Itoa(argCount)
		args = append(args, filters.Offset())
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var result []Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, 0, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	if err := r.attachVariations(ctx, result); err != nil {
		return nil, 0, err
	}
	return result, total, nil
}

func (r *repository) Get(ctx context.Context, id string) (Product, error) {
	row := r.db.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id)
	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Product{}, shared.ErrNotFound
		}
		return Product{}, err
	}
	variations, err := r.ListVariations(ctx, p.ID)
	if err != nil {
		return Product{}, err
	}
	p.Variations = variations
	return p, nil
}

func (r *repository) Create(ctx context.Context, product Product) (Product, error) {
	now := time.Now().UTC()
	query := `INSERT INTO products (id, name, description, category, base_price, discount_price, discount_start_date, discount_end_date, discount_active, purity_percentage, molecular_weight, cas_number, sequence, storage_conditions, inclusions, stock_quantity, available, featured, image_url, safety_sheet_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)`
	_, err := r.db.Exec(ctx, query,
		product.ID, product.Name, product.Description, product.Category,
		product.BasePrice.Centavos(), centavosPtr(product.DiscountPrice),
		product.DiscountStartDate, product.DiscountEndDate, product.DiscountActive,
		product.PurityPercentage, product.MolecularWeight, product.CASNumber,
		product.Sequence, product.StorageConditions, product.Inclusions,
		product.StockQuantity, product.Available, product.Featured,
		product.ImageURL, product.SafetySheetURL, now, now,
	)
	if err != nil {
		return Product{}, err
	}
	product.CreatedAt = now
	product.UpdatedAt = now
	return product, nil
}

func (r *repository) Update(ctx context.Context, id string, product Product) error {
	query := `UPDATE products SET name = $1, description = $2, category = $3, base_price = $4, discount_price = $5, discount_start_date = $6, discount_end_date = $7, discount_active = $8, purity_percentage = $9, molecular_weight = $10, cas_number = $11, sequence = $12, storage_conditions = $13, inclusions = $14, stock_quantity = $15, available = $16, featured = $17, image_url = $18, safety_sheet_url = $19, updated_at = $20 WHERE id = $21`
	tag, err := r.db.Exec(ctx, query,
		product.Name, product.Description, product.Category,
		product.BasePrice.Centavos(), centavosPtr(product.DiscountPrice),
		product.DiscountStartDate, product.DiscountEndDate, product.DiscountActive,
		product.PurityPercentage, product.MolecularWeight, product.CASNumber,
		product.Sequence, product.StorageConditions, product.Inclusions,
		product.StockQuantity, product.Available, product.Featured,
		product.ImageURL, product.SafetySheetURL, time.Now().UTC(), id,
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
	tag, err := r.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func (r *repository) ListVariations(ctx context.Context, productID string) ([]Variation, error) {
	rows, err := r.db.Query(ctx, `SELECT id, product_id, name, quantity_mg, price, stock_quantity, created_at FROM product_variations WHERE product_id = $1 ORDER BY created_at`, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectVariations(rows)
}

func (r *repository) CreateVariation(ctx context.Context, variation Variation) (Variation, error) {
	now := time.Now().UTC()
	_, err := r.db.Exec(ctx,
		`INSERT INTO product_variations (id, product_id, name, quantity_mg, price, stock_quantity, created_at) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		variation.ID, variation.ProductID, variation.Name, variation.QuantityMG, variation.Price.Centavos(), variation.StockQuantity, now,
	)
	if err != nil {
		return Variation{}, err
	}
	variation.CreatedAt = now
	return variation, nil
}

func (r *repository) UpdateVariation(ctx context.Context, id string, variation Variation) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE product_variations SET name = $1, quantity_mg = $2, price = $3, stock_quantity = $4 WHERE id = $5`,
		variation.Name, variation.QuantityMG, variation.Price.Centavos(), variation.StockQuantity, id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func (r *repository) DeleteVariation(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM product_variations WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func (r *repository) attachVariations(ctx context.Context, result []Product) error {
	if len(result) == 0 {
		return nil
	}
	ids := make([]string, len(result))
	index := make(map[string]int, len(result))
	for i, p := range result {
		ids[i] = p.ID
		index[p.ID] = i
	}
	rows, err := r.db.Query(ctx, `SELECT id, product_id, name, quantity_mg, price, stock_quantity, created_at FROM product_variations WHERE product_id = ANY($1) ORDER BY created_at`, ids)
	if err != nil {
		return err
	}
	defer rows.Close()
	variations, err := collectVariations(rows)
	if err != nil {
		return err
	}
	for _, v := range variations {
		if i, ok := index[v.ProductID]; ok {
			result[i].Variations = append(result[i].Variations, v)
		}
	}
	return nil
}

func scanProduct(row pgx.Row) (Product, error) {
	var (
		p             Product
		basePrice     int64
		discountPrice *int64
	)
	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.Category,
		&basePrice, &discountPrice,
		&p.DiscountStartDate, &p.DiscountEndDate, &p.DiscountActive,
		&p.PurityPercentage, &p.MolecularWeight, &p.CASNumber,
		&p.Sequence, &p.StorageConditions, &p.Inclusions,
		&p.StockQuantity, &p.Available, &p.Featured,
		&p.ImageURL, &p.SafetySheetURL, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return Product{}, err
	}
	p.BasePrice = money.Amount(basePrice)
	if discountPrice != nil {
		amount := money.Amount(*discountPrice)
		p.DiscountPrice = &amount
	}
	return p, nil
}

func collectVariations(rows pgx.Rows) ([]Variation, error) {
	var result []Variation
	for rows.Next() {
		var (
			v     Variation
			price int64
		)
		if err := rows.Scan(&v.ID, &v.ProductID, &v.Name, &v.QuantityMG, &price, &v.StockQuantity, &v.CreatedAt); err != nil {
			return nil, err
		}
		v.Price = money.Amount(price)
		result = append(result, v)
	}
	return result, rows.Err()
}

func centavosPtr(a *money.Amount) *int64 {
	if a == nil {
		return nil
	}
	v := a.Centavos()
	return &v
}

func sortOrder(sortBy, sortDir string) string {
	dir := "ASC"
	if sortDir == "desc" {
		dir = "DESC"
	}
	switch sortBy {
	case "price":
		return "base_price " + dir
	case "purity":
		return "purity_percentage " + dir
	case "created_at":
		return "created_at " + dir
	default:
		return "name " + dir
	}
}
