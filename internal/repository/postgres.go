package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"storefront/internal/models"
	"storefront/internal/storeerrors"
	"storefront/utils"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/lib/pq"
)

const (
	pqUniqueViolation        = "23505"
	pqForeignKeyViolation    = "23503"
	pqSerializationFailure   = "40001"
	migrationsTable          = "storefront_schema_migrations"
	auctionColumns           = `a.auction_id, a.product_id, a.start_price, a.current_price, a.start_time, a.end_time`
	productColumns           = `p.product_id, p.title, p.description, p.price, p.category, p.uid, p.is_auction, p.status, p.created_at`
	bidColumns               = `bid_id, auction_id, bidder_id, bid_amount, created_at`
	effectivePriceExpression = `COALESCE(a.current_price, a.start_price)`
)

// PostgresRepo implements AuctionDB, CatalogDB and CartDB over database/sql and lib/pq
type PostgresRepo struct {
	db *sql.DB
}

// NewPostgresRepo wraps an open database handle
func NewPostgresRepo(db *sql.DB) *PostgresRepo {
	return &PostgresRepo{db: db}
}

// OpenPostgres opens and pings a connection pool for dsn
func OpenPostgres(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	db.SetMaxOpenConns(50)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)
	return db, nil
}

// RunMigrations applies every pending migration found under dir
func RunMigrations(db *sql.DB, dir string) error {
	driver, err := postgres.WithInstance(db, &postgres.Config{MigrationsTable: migrationsTable})
	if err != nil {
		return fmt.Errorf("could not create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(fmt.Sprintf("file://%s", dir), "postgres", driver)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("could not run migrations: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAuction(row rowScanner, extra ...any) (models.Auction, error) {
	var a models.Auction
	var current sql.NullFloat64
	dest := append([]any{&a.AuctionID, &a.ProductID, &a.StartPrice, &current, &a.StartTime, &a.EndTime}, extra...)
	if err := row.Scan(dest...); err != nil {
		return models.Auction{}, err
	}
	if current.Valid {
		price := current.Float64
		a.CurrentPrice = &price
	}
	return a, nil
}

func productDest(p *models.Product) []any {
	return []any{&p.ProductID, &p.Title, &p.Description, &p.Price, &p.Category, &p.UID, &p.IsAuction, &p.Status, &p.CreatedAt}
}

func scanBids(rows *sql.Rows) ([]models.Bid, error) {
	defer rows.Close()

	bids := []models.Bid{}
	for rows.Next() {
		var b models.Bid
		if err := rows.Scan(&b.BidID, &b.AuctionID, &b.BidderID, &b.Amount, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan bid: %w", err)
		}
		bids = append(bids, b)
	}
	return bids, rows.Err()
}

// notFound maps sql.ErrNoRows onto the storefront taxonomy
func notFound(err error, format string, args ...any) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf(format+": %w", append(args, storeerrors.ErrNotFound)...)
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}

func isPQCode(err error, code string) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == code
}

// lostRace ends tx after a serialization failure and reports the price the
// winning transaction left behind. known is used when the re-read fails.
func (r *PostgresRepo) lostRace(ctx context.Context, tx *sql.Tx, auctionID string, known float64, cause error) error {
	_ = tx.Rollback()

	price := known
	if a, err := r.GetAuction(ctx, auctionID); err == nil {
		price = a.EffectivePrice()
	} else {
		utils.Warn("repository: re-reading price after serialization failure failed", map[string]any{
			"auction_id": auctionID, "error": err.Error(),
		})
	}
	utils.Debug("repository: concurrent update on auction", map[string]any{
		"auction_id": auctionID, "price": price, "cause": cause.Error(),
	})
	return &storeerrors.ConflictError{AuctionID: auctionID, CurrentPrice: price}
}

// PlaceBid locks the auction row, re-checks it and writes the bid and the new
// price in one serializable transaction. A serialization failure at any step
// means another bid won and is reported as a ConflictError.
func (r *PostgresRepo) PlaceBid(ctx context.Context, bid models.Bid, now time.Time) (float64, error) {
	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return 0, fmt.Errorf("place bid: begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	a, err := scanAuction(tx.QueryRowContext(ctx,
		`SELECT `+auctionColumns+` FROM auction a WHERE a.auction_id = $1 FOR UPDATE`, bid.AuctionID))
	if err != nil {
		if isPQCode(err, pqSerializationFailure) {
			return 0, r.lostRace(ctx, tx, bid.AuctionID, 0, err)
		}
		return 0, notFound(err, "place bid on auction %s", bid.AuctionID)
	}
	if err := checkBiddable(a, bid.Amount, now); err != nil {
		return 0, fmt.Errorf("place bid on auction %s: %w", bid.AuctionID, err)
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO bid (`+bidColumns+`) VALUES ($1, $2, $3, $4, $5)`,
		bid.BidID, bid.AuctionID, bid.BidderID, bid.Amount, bid.CreatedAt); err != nil {
		if isPQCode(err, pqSerializationFailure) {
			return 0, r.lostRace(ctx, tx, bid.AuctionID, a.EffectivePrice(), err)
		}
		return 0, fmt.Errorf("place bid: insert: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		`UPDATE auction SET current_price = $1 WHERE auction_id = $2`, bid.Amount, bid.AuctionID); err != nil {
		if isPQCode(err, pqSerializationFailure) {
			return 0, r.lostRace(ctx, tx, bid.AuctionID, a.EffectivePrice(), err)
		}
		return 0, fmt.Errorf("place bid: update price: %w", err)
	}

	if err := tx.Commit(); err != nil {
		if isPQCode(err, pqSerializationFailure) {
			return 0, r.lostRace(ctx, tx, bid.AuctionID, a.EffectivePrice(), err)
		}
		return 0, fmt.Errorf("place bid: commit: %w", err)
	}
	return bid.Amount, nil
}

// DeleteBid removes a bid and rewrites the auction price from the remaining bids
// in one serializable transaction
func (r *PostgresRepo) DeleteBid(ctx context.Context, bidID, bidderID string) (models.Auction, error) {
	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return models.Auction{}, fmt.Errorf("delete bid: begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var auctionID, owner string
	err = tx.QueryRowContext(ctx, `SELECT auction_id, bidder_id FROM bid WHERE bid_id = $1`, bidID).Scan(&auctionID, &owner)
	if err != nil {
		return models.Auction{}, notFound(err, "delete bid %s", bidID)
	}
	if owner != bidderID {
		return models.Auction{}, fmt.Errorf("delete bid %s: %w", bidID, storeerrors.ErrNotFound)
	}

	a, err := scanAuction(tx.QueryRowContext(ctx,
		`SELECT `+auctionColumns+` FROM auction a WHERE a.auction_id = $1 FOR UPDATE`, auctionID))
	if err != nil {
		if isPQCode(err, pqSerializationFailure) {
			return models.Auction{}, r.lostRace(ctx, tx, auctionID, 0, err)
		}
		return models.Auction{}, notFound(err, "delete bid %s: auction %s", bidID, auctionID)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM bid WHERE bid_id = $1`, bidID); err != nil {
		return models.Auction{}, fmt.Errorf("delete bid: delete: %w", err)
	}

	var highest sql.NullFloat64
	if err := tx.QueryRowContext(ctx, `SELECT MAX(bid_amount) FROM bid WHERE auction_id = $1`, auctionID).Scan(&highest); err != nil {
		return models.Auction{}, fmt.Errorf("delete bid: recompute: %w", err)
	}

	var price any
	a.CurrentPrice = nil
	if highest.Valid {
		v := highest.Float64
		a.CurrentPrice = &v
		price = v
	}
	if _, err := tx.ExecContext(ctx, `UPDATE auction SET current_price = $1 WHERE auction_id = $2`, price, auctionID); err != nil {
		return models.Auction{}, fmt.Errorf("delete bid: update price: %w", err)
	}

	if err := tx.Commit(); err != nil {
		if isPQCode(err, pqSerializationFailure) {
			return models.Auction{}, r.lostRace(ctx, tx, auctionID, 0, err)
		}
		return models.Auction{}, fmt.Errorf("delete bid: commit: %w", err)
	}
	return a, nil
}

// GetAuction returns one auction row
func (r *PostgresRepo) GetAuction(ctx context.Context, auctionID string) (models.Auction, error) {
	a, err := scanAuction(r.db.QueryRowContext(ctx,
		`SELECT `+auctionColumns+` FROM auction a WHERE a.auction_id = $1`, auctionID))
	if err != nil {
		return models.Auction{}, notFound(err, "get auction %s", auctionID)
	}
	return a, nil
}

// GetAuctionByProduct returns the auction selling productID
func (r *PostgresRepo) GetAuctionByProduct(ctx context.Context, productID string) (models.Auction, error) {
	a, err := scanAuction(r.db.QueryRowContext(ctx,
		`SELECT `+auctionColumns+` FROM auction a WHERE a.product_id = $1 ORDER BY a.start_time DESC LIMIT 1`, productID))
	if err != nil {
		return models.Auction{}, notFound(err, "get auction for product %s", productID)
	}
	return a, nil
}

// GetBidsByAuction returns the bids of an auction, newest first
func (r *PostgresRepo) GetBidsByAuction(ctx context.Context, auctionID string) ([]models.Bid, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+bidColumns+` FROM bid WHERE auction_id = $1 ORDER BY created_at DESC, bid_id`, auctionID)
	if err != nil {
		return nil, fmt.Errorf("get bids for auction %s: %w", auctionID, err)
	}
	return scanBids(rows)
}

// GetBidsByBidder returns every bid a bidder placed, newest first
func (r *PostgresRepo) GetBidsByBidder(ctx context.Context, bidderID string) ([]models.Bid, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+bidColumns+` FROM bid WHERE bidder_id = $1 ORDER BY created_at DESC, bid_id`, bidderID)
	if err != nil {
		return nil, fmt.Errorf("get bids for bidder %s: %w", bidderID, err)
	}
	return scanBids(rows)
}

// whereBuilder collects SQL conditions with positional arguments
type whereBuilder struct {
	conds []string
	args  []any
}

func (w *whereBuilder) add(cond string, arg any) {
	w.args = append(w.args, arg)
	w.conds = append(w.conds, strings.ReplaceAll(cond, "?", fmt.Sprintf("$%d", len(w.args))))
}

func (w *whereBuilder) clause() string {
	if len(w.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.conds, " AND ")
}

func (w *whereBuilder) textFilters(f ListFilter) {
	if f.Category != "" {
		w.add(`p.category ILIKE ?`, "%"+f.Category+"%")
	}
	if f.Search != "" {
		w.add(`p.title ILIKE ?`, "%"+f.Search+"%")
	}
}

func (w *whereBuilder) priceFilters(expr string, f ListFilter) {
	if f.MinPrice != nil {
		w.add(expr+` >= ?`, *f.MinPrice)
	}
	if f.MaxPrice != nil {
		w.add(expr+` <= ?`, *f.MaxPrice)
	}
}

func (w *whereBuilder) paging(f ListFilter) string {
	w.args = append(w.args, f.Limit, f.Offset())
	return fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(w.args)-1, len(w.args))
}

// ListAuctions filters, sorts and pages auctions joined with their products
func (r *PostgresRepo) ListAuctions(ctx context.Context, filter ListFilter) ([]models.AuctionListing, int, error) {
	f := filter.Normalized()

	var w whereBuilder
	w.textFilters(f)
	w.priceFilters(effectivePriceExpression, f)

	order := map[SortOrder]string{
		SortPriceAsc:   effectivePriceExpression + ` ASC`,
		SortPriceDesc:  effectivePriceExpression + ` DESC`,
		SortEndingSoon: `a.end_time ASC`,
		SortNewest:     `a.start_time DESC`,
	}[f.Sort]

	query := `SELECT ` + auctionColumns + `, ` + productColumns + `, COUNT(*) OVER()
		FROM auction a JOIN product p ON p.product_id = a.product_id` +
		w.clause() + ` ORDER BY ` + order + `, a.auction_id` + w.paging(f)

	rows, err := r.db.QueryContext(ctx, query, w.args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list auctions: %w", err)
	}
	defer rows.Close()

	listings := []models.AuctionListing{}
	total := 0
	for rows.Next() {
		var l models.AuctionListing
		a, err := scanAuction(rows, append(productDest(&l.Product), &total)...)
		if err != nil {
			return nil, 0, fmt.Errorf("list auctions: scan: %w", err)
		}
		l.Auction = a
		listings = append(listings, l)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("list auctions: %w", err)
	}

	ids := make([]string, len(listings))
	for i, l := range listings {
		ids[i] = l.ProductID
	}
	images, err := r.imagesFor(ctx, ids)
	if err != nil {
		return nil, 0, err
	}
	for i := range listings {
		listings[i].Images = append([]models.ProductImage{}, images[listings[i].ProductID]...)
	}
	return listings, total, nil
}

// imagesFor loads the ordered images of several products in one query
func (r *PostgresRepo) imagesFor(ctx context.Context, productIDs []string) (map[string][]models.ProductImage, error) {
	out := make(map[string][]models.ProductImage, len(productIDs))
	if len(productIDs) == 0 {
		return out, nil
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT product_id, image_id, url FROM product_images WHERE product_id = ANY($1) ORDER BY image_id ASC`,
		pq.Array(productIDs))
	if err != nil {
		return nil, fmt.Errorf("load product images: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var img models.ProductImage
		if err := rows.Scan(&img.ProductID, &img.ImageID, &img.URL); err != nil {
			return nil, fmt.Errorf("load product images: scan: %w", err)
		}
		out[img.ProductID] = append(out[img.ProductID], img)
	}
	return out, rows.Err()
}

// GetProduct returns one product row
func (r *PostgresRepo) GetProduct(ctx context.Context, productID string) (models.Product, error) {
	var p models.Product
	err := r.db.QueryRowContext(ctx,
		`SELECT `+productColumns+` FROM product p WHERE p.product_id = $1`, productID).Scan(productDest(&p)...)
	if err != nil {
		return models.Product{}, notFound(err, "get product %s", productID)
	}
	return p, nil
}

// GetProductImages returns a product's images ordered by image id
func (r *PostgresRepo) GetProductImages(ctx context.Context, productID string) ([]models.ProductImage, error) {
	images, err := r.imagesFor(ctx, []string{productID})
	if err != nil {
		return nil, err
	}
	return append([]models.ProductImage{}, images[productID]...), nil
}

// ListProducts filters, sorts and pages products
func (r *PostgresRepo) ListProducts(ctx context.Context, filter ListFilter) ([]models.Product, int, error) {
	f := filter.Normalized()

	var w whereBuilder
	w.textFilters(f)
	w.priceFilters(`p.price`, f)
	if f.Auction != nil {
		w.add(`p.is_auction = ?`, *f.Auction)
	}

	order := map[SortOrder]string{
		SortPriceAsc:  `p.price ASC`,
		SortPriceDesc: `p.price DESC`,
	}[f.Sort]
	if order == "" {
		order = `p.created_at DESC`
	}

	query := `SELECT ` + productColumns + `, COUNT(*) OVER() FROM product p` +
		w.clause() + ` ORDER BY ` + order + `, p.product_id` + w.paging(f)

	rows, err := r.db.QueryContext(ctx, query, w.args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	products := []models.Product{}
	total := 0
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(append(productDest(&p), &total)...); err != nil {
			return nil, 0, fmt.Errorf("list products: scan: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}
	return products, total, nil
}

// ListCategories returns every category ordered by name
func (r *PostgresRepo) ListCategories(ctx context.Context) ([]models.Category, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT categories_id, name, COALESCE(icon, ''), parent_id FROM categories ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	out := []models.Category{}
	for rows.Next() {
		var c models.Category
		var parent sql.NullInt64
		if err := rows.Scan(&c.CategoriesID, &c.Name, &c.Icon, &parent); err != nil {
			return nil, fmt.Errorf("list categories: scan: %w", err)
		}
		if parent.Valid {
			id := parent.Int64
			c.ParentID = &id
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// ListBanners returns the active banners by priority
func (r *PostgresRepo) ListBanners(ctx context.Context) ([]models.Banner, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT banner_id, image_url, link_url, priority, is_active FROM featured_banner WHERE is_active ORDER BY priority ASC`)
	if err != nil {
		return nil, fmt.Errorf("list banners: %w", err)
	}
	defer rows.Close()

	out := []models.Banner{}
	for rows.Next() {
		var b models.Banner
		if err := rows.Scan(&b.BannerID, &b.ImageURL, &b.LinkURL, &b.Priority, &b.Active); err != nil {
			return nil, fmt.Errorf("list banners: scan: %w", err)
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// ListFlashDeals returns the deals with their products, biggest discount first
func (r *PostgresRepo) ListFlashDeals(ctx context.Context) ([]models.FlashDeal, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT d.deal_id, d.discount_percent, `+productColumns+`
		FROM flash_deals d JOIN product p ON p.product_id = d.product_id
		ORDER BY d.discount_percent DESC`)
	if err != nil {
		return nil, fmt.Errorf("list flash deals: %w", err)
	}
	defer rows.Close()

	out := []models.FlashDeal{}
	for rows.Next() {
		var d models.FlashDeal
		if err := rows.Scan(append([]any{&d.DealID, &d.DiscountPercent}, productDest(&d.Product)...)...); err != nil {
			return nil, fmt.Errorf("list flash deals: scan: %w", err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// ListBestSellers returns the ranked best sellers with their products
func (r *PostgresRepo) ListBestSellers(ctx context.Context) ([]models.BestSeller, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT b.ranking, `+productColumns+`
		FROM best_seller b JOIN product p ON p.product_id = b.product_id
		ORDER BY b.ranking ASC`)
	if err != nil {
		return nil, fmt.Errorf("list best sellers: %w", err)
	}
	defer rows.Close()

	out := []models.BestSeller{}
	for rows.Next() {
		var b models.BestSeller
		if err := rows.Scan(append([]any{&b.Ranking}, productDest(&b.Product)...)...); err != nil {
			return nil, fmt.Errorf("list best sellers: scan: %w", err)
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// CreateProfile inserts a user_profile row. The uid is unique.
func (r *PostgresRepo) CreateProfile(ctx context.Context, profile models.Profile) error {
	if profile.ProfileID == "" {
		profile.ProfileID = utils.GenerateID()
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO user_profile (profile_id, uid, email, username, role) VALUES ($1, $2, $3, $4, $5)`,
		profile.ProfileID, profile.UID, profile.Email, profile.Username, profile.Role)
	if err != nil {
		if isPQCode(err, pqUniqueViolation) {
			return fmt.Errorf("create profile for %s: %w", profile.UID, storeerrors.ErrConflict)
		}
		return fmt.Errorf("create profile for %s: %w", profile.UID, err)
	}
	return nil
}

// GetProfileByUID returns the profile of an auth user
func (r *PostgresRepo) GetProfileByUID(ctx context.Context, uid string) (models.Profile, error) {
	var p models.Profile
	err := r.db.QueryRowContext(ctx,
		`SELECT profile_id, uid, email, username, role FROM user_profile WHERE uid = $1`, uid).
		Scan(&p.ProfileID, &p.UID, &p.Email, &p.Username, &p.Role)
	if err != nil {
		return models.Profile{}, notFound(err, "get profile %s", uid)
	}
	return p, nil
}

// AddCartItem upserts the (profile, product) cart row, adding to its quantity
// when it exists. An unknown profile or product reports ErrNotFound.
func (r *PostgresRepo) AddCartItem(ctx context.Context, profileID, productID string, quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("add cart item: %w", storeerrors.NewValidationError("quantity", "must be positive"))
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO cart (profile_id, product_id, quantity) VALUES ($1, $2, $3)
		ON CONFLICT (profile_id, product_id) DO UPDATE SET quantity = cart.quantity + EXCLUDED.quantity`,
		profileID, productID, quantity)
	if err != nil {
		if isPQCode(err, pqForeignKeyViolation) {
			return fmt.Errorf("add cart item %s for %s: %w", productID, profileID, storeerrors.ErrNotFound)
		}
		return fmt.Errorf("add cart item %s for %s: %w", productID, profileID, err)
	}
	return nil
}

// ListCart returns the cart rows of a profile with their products
func (r *PostgresRepo) ListCart(ctx context.Context, profileID string) ([]models.SavedCartLine, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT c.cart_id, c.profile_id, c.quantity, `+productColumns+`
		FROM cart c JOIN product p ON p.product_id = c.product_id
		WHERE c.profile_id = $1
		ORDER BY c.cart_id ASC`, profileID)
	if err != nil {
		return nil, fmt.Errorf("list cart %s: %w", profileID, err)
	}
	defer rows.Close()

	out := []models.SavedCartLine{}
	for rows.Next() {
		var l models.SavedCartLine
		if err := rows.Scan(append([]any{&l.CartID, &l.ProfileID, &l.Quantity}, productDest(&l.Product)...)...); err != nil {
			return nil, fmt.Errorf("list cart %s: scan: %w", profileID, err)
		}
		out = append(out, l)
	}
	return out, rows.Err()
}
