package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/lib/pq"

	"goodfood-shop/internal/domain"
)

// PostgresRepository backs the catalog and the coupon ledger. Lookups return
// (nil, nil) when the row is absent; mutations gated by ownership are single
// conditional statements so concurrent requests cannot interleave a check
// with a write.
type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func (r *PostgresRepository) EnsureSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS restaurants (
			id TEXT PRIMARY KEY,
			owner_id TEXT NOT NULL UNIQUE,
			owner JSONB NOT NULL,
			name TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			address TEXT NOT NULL DEFAULT '',
			lon DOUBLE PRECISION NOT NULL DEFAULT 0,
			lat DOUBLE PRECISION NOT NULL DEFAULT 0,
			opening_hours JSONB NOT NULL DEFAULT '[]',
			types TEXT[] NOT NULL DEFAULT '{}',
			is_closed BOOLEAN NOT NULL DEFAULT FALSE,
			coupon_date TIMESTAMPTZ,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS products (
			id TEXT PRIMARY KEY,
			restaurant_id TEXT NOT NULL REFERENCES restaurants(id),
			name TEXT NOT NULL,
			price NUMERIC(10,2) NOT NULL CHECK (price >= 0),
			description TEXT NOT NULL DEFAULT '',
			image TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS menus (
			id TEXT PRIMARY KEY,
			restaurant_id TEXT NOT NULL REFERENCES restaurants(id),
			name TEXT NOT NULL,
			price NUMERIC(10,2) NOT NULL CHECK (price >= 0),
			description TEXT NOT NULL DEFAULT '',
			image TEXT NOT NULL DEFAULT '',
			products JSONB NOT NULL DEFAULT '[]',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS coupons (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			holder JSONB NOT NULL,
			coupon TEXT NOT NULL,
			date TIMESTAMPTZ,
			is_used BOOLEAN NOT NULL DEFAULT FALSE,
			qr_code BYTEA,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
	}
	for _, stmt := range statements {
		if _, err := r.DB.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

const restaurantColumns = `id, owner, name, description, address, lon, lat, opening_hours, types, is_closed, coupon_date, created_at`

func scanRestaurant(row interface{ Scan(...any) error }) (*domain.Restaurant, error) {
	var rest domain.Restaurant
	var owner, hours []byte
	var couponDate sql.NullTime
	err := row.Scan(&rest.ID, &owner, &rest.Name, &rest.Description, &rest.Address,
		&rest.Position.Lon, &rest.Position.Lat, &hours, pq.Array(&rest.Types),
		&rest.IsClosed, &couponDate, &rest.CreatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(owner, &rest.Owner); err != nil {
		return nil, fmt.Errorf("decode owner snapshot: %w", err)
	}
	if err := json.Unmarshal(hours, &rest.OpeningHours); err != nil {
		return nil, fmt.Errorf("decode opening hours: %w", err)
	}
	if couponDate.Valid {
		rest.CouponDate = &couponDate.Time
	}
	return &rest, nil
}

func (r *PostgresRepository) CreateRestaurant(rest *domain.Restaurant) error {
	owner, err := json.Marshal(rest.Owner)
	if err != nil {
		return err
	}
	hours, err := json.Marshal(rest.OpeningHours)
	if err != nil {
		return err
	}
	return r.DB.QueryRow(`
		INSERT INTO restaurants (id, owner_id, owner, name, description, address, lon, lat, opening_hours, types, is_closed)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING created_at`,
		rest.ID, rest.Owner.ID, owner, rest.Name, rest.Description, rest.Address,
		rest.Position.Lon, rest.Position.Lat, hours, pq.Array(rest.Types), rest.IsClosed,
	).Scan(&rest.CreatedAt)
}

func (r *PostgresRepository) ListRestaurants(ownerID string, skip, size int) ([]domain.Restaurant, int, error) {
	var count int
	if err := r.DB.QueryRow(
		`SELECT COUNT(*) FROM restaurants WHERE ($1 = '' OR owner_id = $1)`, ownerID,
	).Scan(&count); err != nil {
		return nil, 0, err
	}

	rows, err := r.DB.Query(`
		SELECT `+restaurantColumns+`
		FROM restaurants
		WHERE ($1 = '' OR owner_id = $1)
		ORDER BY created_at DESC
		OFFSET $2 LIMIT $3`, ownerID, skip, size)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var restaurants []domain.Restaurant
	for rows.Next() {
		rest, err := scanRestaurant(rows)
		if err != nil {
			continue
		}
		restaurants = append(restaurants, *rest)
	}
	return restaurants, count, rows.Err()
}

func (r *PostgresRepository) GetRestaurant(id string) (*domain.Restaurant, error) {
	rest, err := scanRestaurant(r.DB.QueryRow(
		`SELECT `+restaurantColumns+` FROM restaurants WHERE id = $1`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return rest, err
}

func (r *PostgresRepository) GetRestaurantByOwner(ownerID string) (*domain.Restaurant, error) {
	rest, err := scanRestaurant(r.DB.QueryRow(
		`SELECT `+restaurantColumns+` FROM restaurants WHERE owner_id = $1`, ownerID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return rest, err
}

func (r *PostgresRepository) UpdateRestaurant(rest *domain.Restaurant) (int64, error) {
	hours, err := json.Marshal(rest.OpeningHours)
	if err != nil {
		return 0, err
	}
	result, err := r.DB.Exec(`
		UPDATE restaurants
		SET name=$1, description=$2, address=$3, lon=$4, lat=$5, opening_hours=$6, types=$7, is_closed=$8
		WHERE id=$9 AND owner_id=$10`,
		rest.Name, rest.Description, rest.Address, rest.Position.Lon, rest.Position.Lat,
		hours, pq.Array(rest.Types), rest.IsClosed, rest.ID, rest.Owner.ID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) DeleteRestaurantCascade(id string) (int64, error) {
	tx, err := r.DB.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM menus WHERE restaurant_id = $1`, id); err != nil {
		return 0, err
	}
	if _, err := tx.Exec(`DELETE FROM products WHERE restaurant_id = $1`, id); err != nil {
		return 0, err
	}
	result, err := tx.Exec(`DELETE FROM restaurants WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}
	return rows, tx.Commit()
}

func (r *PostgresRepository) SetCouponDate(ownerID string, until time.Time) error {
	_, err := r.DB.Exec(`UPDATE restaurants SET coupon_date = $1 WHERE owner_id = $2`, until, ownerID)
	return err
}

func (r *PostgresRepository) UpdateOwnerSnapshot(user domain.User) error {
	owner, err := json.Marshal(user)
	if err != nil {
		return err
	}
	_, err = r.DB.Exec(`UPDATE restaurants SET owner = $1 WHERE owner_id = $2`, owner, user.ID)
	return err
}

const productColumns = `id, restaurant_id, name, price, description, image, created_at`

func scanProduct(row interface{ Scan(...any) error }) (*domain.Product, error) {
	var product domain.Product
	err := row.Scan(&product.ID, &product.RestaurantID, &product.Name, &product.Price,
		&product.Description, &product.Image, &product.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *PostgresRepository) CreateProduct(product *domain.Product) error {
	return r.DB.QueryRow(`
		INSERT INTO products (id, restaurant_id, name, price, description, image)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at`,
		product.ID, product.RestaurantID, product.Name, product.Price,
		product.Description, product.Image,
	).Scan(&product.CreatedAt)
}

func (r *PostgresRepository) ListProducts(restaurantID string, skip, size int) ([]domain.Product, int, error) {
	var count int
	if err := r.DB.QueryRow(
		`SELECT COUNT(*) FROM products WHERE ($1 = '' OR restaurant_id = $1)`, restaurantID,
	).Scan(&count); err != nil {
		return nil, 0, err
	}

	rows, err := r.DB.Query(`
		SELECT `+productColumns+`
		FROM products
		WHERE ($1 = '' OR restaurant_id = $1)
		ORDER BY created_at DESC
		OFFSET $2 LIMIT $3`, restaurantID, skip, size)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			continue
		}
		products = append(products, *product)
	}
	return products, count, rows.Err()
}

func (r *PostgresRepository) GetProduct(id string) (*domain.Product, error) {
	product, err := scanProduct(r.DB.QueryRow(
		`SELECT `+productColumns+` FROM products WHERE id = $1`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return product, err
}

func (r *PostgresRepository) GetProductsByIDs(ids []string) ([]domain.Product, error) {
	rows, err := r.DB.Query(
		`SELECT `+productColumns+` FROM products WHERE id = ANY($1)`, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, *product)
	}
	return products, rows.Err()
}

func (r *PostgresRepository) UpdateProduct(product *domain.Product) (int64, error) {
	result, err := r.DB.Exec(`
		UPDATE products
		SET name=$1, price=$2, description=$3, image=$4
		WHERE id=$5 AND restaurant_id=$6`,
		product.Name, product.Price, product.Description, product.Image,
		product.ID, product.RestaurantID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) DeleteProduct(id, restaurantID string) (int64, error) {
	result, err := r.DB.Exec(
		`DELETE FROM products WHERE id=$1 AND restaurant_id=$2`, id, restaurantID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const menuColumns = `id, restaurant_id, name, price, description, image, products, created_at`

func scanMenu(row interface{ Scan(...any) error }) (*domain.Menu, error) {
	var menu domain.Menu
	var snapshots []byte
	err := row.Scan(&menu.ID, &menu.RestaurantID, &menu.Name, &menu.Price,
		&menu.Description, &menu.Image, &snapshots, &menu.CreatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(snapshots, &menu.Products); err != nil {
		return nil, fmt.Errorf("decode product snapshots: %w", err)
	}
	return &menu, nil
}

func (r *PostgresRepository) CreateMenu(menu *domain.Menu) error {
	snapshots, err := json.Marshal(menu.Products)
	if err != nil {
		return err
	}
	return r.DB.QueryRow(`
		INSERT INTO menus (id, restaurant_id, name, price, description, image, products)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at`,
		menu.ID, menu.RestaurantID, menu.Name, menu.Price,
		menu.Description, menu.Image, snapshots,
	).Scan(&menu.CreatedAt)
}

func (r *PostgresRepository) ListMenus(restaurantID string, skip, size int) ([]domain.Menu, int, error) {
	var count int
	if err := r.DB.QueryRow(
		`SELECT COUNT(*) FROM menus WHERE ($1 = '' OR restaurant_id = $1)`, restaurantID,
	).Scan(&count); err != nil {
		return nil, 0, err
	}

	rows, err := r.DB.Query(`
		SELECT `+menuColumns+`
		FROM menus
		WHERE ($1 = '' OR restaurant_id = $1)
		ORDER BY created_at DESC
		OFFSET $2 LIMIT $3`, restaurantID, skip, size)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var menus []domain.Menu
	for rows.Next() {
		menu, err := scanMenu(rows)
		if err != nil {
			continue
		}
		menus = append(menus, *menu)
	}
	return menus, count, rows.Err()
}

func (r *PostgresRepository) GetMenu(id string) (*domain.Menu, error) {
	menu, err := scanMenu(r.DB.QueryRow(
		`SELECT `+menuColumns+` FROM menus WHERE id = $1`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return menu, err
}

func (r *PostgresRepository) GetMenusByIDs(ids []string) ([]domain.Menu, error) {
	rows, err := r.DB.Query(
		`SELECT `+menuColumns+` FROM menus WHERE id = ANY($1)`, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var menus []domain.Menu
	for rows.Next() {
		menu, err := scanMenu(rows)
		if err != nil {
			return nil, err
		}
		menus = append(menus, *menu)
	}
	return menus, rows.Err()
}

func (r *PostgresRepository) UpdateMenu(menu *domain.Menu) (int64, error) {
	snapshots, err := json.Marshal(menu.Products)
	if err != nil {
		return 0, err
	}
	result, err := r.DB.Exec(`
		UPDATE menus
		SET name=$1, price=$2, description=$3, image=$4, products=$5
		WHERE id=$6 AND restaurant_id=$7`,
		menu.Name, menu.Price, menu.Description, menu.Image, snapshots,
		menu.ID, menu.RestaurantID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) DeleteMenu(id, restaurantID string) (int64, error) {
	result, err := r.DB.Exec(
		`DELETE FROM menus WHERE id=$1 AND restaurant_id=$2`, id, restaurantID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// embedding matches menus whose snapshot array contains the product id.
func embeddingFilter(productID string) ([]byte, error) {
	return json.Marshal([]map[string]string{{"id": productID}})
}

func (r *PostgresRepository) ListMenusEmbedding(restaurantID, productID string) ([]domain.Menu, error) {
	filter, err := embeddingFilter(productID)
	if err != nil {
		return nil, err
	}
	rows, err := r.DB.Query(`
		SELECT `+menuColumns+`
		FROM menus
		WHERE restaurant_id = $1 AND products @> $2::jsonb`, restaurantID, filter)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var menus []domain.Menu
	for rows.Next() {
		menu, err := scanMenu(rows)
		if err != nil {
			return nil, err
		}
		menus = append(menus, *menu)
	}
	return menus, rows.Err()
}

func (r *PostgresRepository) CountMenusEmbedding(restaurantID, productID string) (int, error) {
	filter, err := embeddingFilter(productID)
	if err != nil {
		return 0, err
	}
	var count int
	err = r.DB.QueryRow(`
		SELECT COUNT(*) FROM menus
		WHERE restaurant_id = $1 AND products @> $2::jsonb`, restaurantID, filter).Scan(&count)
	return count, err
}

func (r *PostgresRepository) ReplaceSnapshots(menuID string, products []domain.Product) error {
	snapshots, err := json.Marshal(products)
	if err != nil {
		return err
	}
	_, err = r.DB.Exec(`UPDATE menus SET products = $1 WHERE id = $2`, snapshots, menuID)
	return err
}

func scanCoupon(row interface{ Scan(...any) error }) (*domain.Coupon, error) {
	var coupon domain.Coupon
	var holder []byte
	var date sql.NullTime
	err := row.Scan(&coupon.ID, &holder, &coupon.Coupon, &date, &coupon.IsUsed)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(holder, &coupon.User); err != nil {
		return nil, fmt.Errorf("decode holder snapshot: %w", err)
	}
	if date.Valid {
		coupon.Date = &date.Time
	}
	return &coupon, nil
}

func (r *PostgresRepository) CreateCoupon(coupon *domain.Coupon) error {
	holder, err := json.Marshal(coupon.User)
	if err != nil {
		return err
	}
	_, err = r.DB.Exec(`
		INSERT INTO coupons (id, user_id, holder, coupon, is_used)
		VALUES ($1, $2, $3, $4, $5)`,
		coupon.ID, coupon.User.ID, holder, coupon.Coupon, coupon.IsUsed)
	return err
}

func (r *PostgresRepository) ListCoupons(skip, size int) ([]domain.Coupon, int, error) {
	var count int
	if err := r.DB.QueryRow(`SELECT COUNT(*) FROM coupons`).Scan(&count); err != nil {
		return nil, 0, err
	}

	rows, err := r.DB.Query(`
		SELECT id, holder, coupon, date, is_used
		FROM coupons
		ORDER BY created_at DESC
		OFFSET $1 LIMIT $2`, skip, size)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var coupons []domain.Coupon
	for rows.Next() {
		coupon, err := scanCoupon(rows)
		if err != nil {
			continue
		}
		coupons = append(coupons, *coupon)
	}
	return coupons, count, rows.Err()
}

func (r *PostgresRepository) GetCoupon(id string) (*domain.Coupon, error) {
	coupon, err := scanCoupon(r.DB.QueryRow(
		`SELECT id, holder, coupon, date, is_used FROM coupons WHERE id = $1`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return coupon, err
}

func (r *PostgresRepository) GetCouponByUser(userID string) (*domain.Coupon, error) {
	coupon, err := scanCoupon(r.DB.QueryRow(`
		SELECT id, holder, coupon, date, is_used
		FROM coupons
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT 1`, userID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return coupon, err
}

// RedeemCoupon is the compare-and-set guarding exactly-once redemption:
// the row only matches while is_used is still false.
func (r *PostgresRepository) RedeemCoupon(id string, at time.Time) (int64, error) {
	result, err := r.DB.Exec(`
		UPDATE coupons
		SET is_used = TRUE, date = $1
		WHERE id = $2 AND is_used = FALSE`, at, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) SaveQRCode(id string, qr []byte) error {
	_, err := r.DB.Exec(`UPDATE coupons SET qr_code = $1 WHERE id = $2`, qr, id)
	return err
}

func (r *PostgresRepository) GetQRCode(id string) ([]byte, error) {
	var qr []byte
	if err := r.DB.QueryRow(`SELECT qr_code FROM coupons WHERE id = $1`, id).Scan(&qr); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return qr, nil
}

func (r *PostgresRepository) UpdateHolderSnapshot(user domain.User) error {
	holder, err := json.Marshal(user)
	if err != nil {
		return err
	}
	_, err = r.DB.Exec(`UPDATE coupons SET holder = $1 WHERE user_id = $2`, holder, user.ID)
	return err
}
