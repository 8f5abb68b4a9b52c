package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"malacara/go_backend/internal/domain/catalog"
)

const createRentalPrices = `
CREATE TABLE IF NOT EXISTS rental_prices (
	grade         text          NOT NULL,
	grade_label   text          NOT NULL,
	grade_pos     int           NOT NULL,
	package       text          NOT NULL,
	package_label text          NOT NULL,
	package_pos   int           NOT NULL,
	prices        numeric(8,2)[] NOT NULL CHECK (cardinality(prices) = 5),
	PRIMARY KEY (grade, package)
)`

const insertRentalPrice = `
INSERT INTO rental_prices (grade, grade_label, grade_pos, package, package_label, package_pos, prices)
VALUES ($1, $2, $3, $4, $5, $6, $7::text[]::numeric[])
ON CONFLICT (grade, package) DO NOTHING`

const selectRentalPrices = `
SELECT grade, grade_label, package, package_label, prices::text[]
FROM rental_prices
ORDER BY grade_pos, grade, package_pos, package`

// EnsureCatalog creates the price table and fills it with seed when empty.
// Concurrent callers may race past the empty check; rows another caller
// already inserted are skipped, and seeded reports whether this call
// inserted any.
func (db *DB) EnsureCatalog(ctx context.Context, seed []catalog.GradeEntry) (seeded bool, err error) {
	if _, err := db.Pool.Exec(ctx, createRentalPrices); err != nil {
		return false, fmt.Errorf("create rental_prices: %w", err)
	}

	var n int
	if err := db.Pool.QueryRow(ctx, `SELECT count(*) FROM rental_prices`).Scan(&n); err != nil {
		return false, fmt.Errorf("count rental_prices: %w", err)
	}
	if n > 0 {
		return false, nil
	}

	tx, err := db.Pool.Begin(ctx)
	if err != nil {
		return false, err
	}
	defer tx.Rollback(ctx)

	batch := seedBatch(seed)
	br := tx.SendBatch(ctx, batch)
	var inserted int64
	for i := 0; i < batch.Len(); i++ {
		tag, err := br.Exec()
		if err != nil {
			br.Close()
			return false, fmt.Errorf("seed rental_prices: %w", err)
		}
		inserted += tag.RowsAffected()
	}
	if err := br.Close(); err != nil {
		return false, fmt.Errorf("seed rental_prices: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return false, fmt.Errorf("commit rental_prices: %w", err)
	}
	return inserted > 0, nil
}

func seedBatch(seed []catalog.GradeEntry) *pgx.Batch {
	batch := &pgx.Batch{}
	for gi, g := range seed {
		for pi, p := range g.Packages {
			prices := make([]string, len(p.Prices))
			for i, v := range p.Prices {
				prices[i] = v.StringFixed(2)
			}
			batch.Queue(insertRentalPrice, string(g.Grade), g.Label, gi, string(p.Package), p.Label, pi, prices)
		}
	}
	return batch
}

// LoadCatalog reads the price table and validates it.
func (db *DB) LoadCatalog(ctx context.Context) (*catalog.Catalog, error) {
	rows, err := db.Pool.Query(ctx, selectRentalPrices)
	if err != nil {
		return nil, fmt.Errorf("query rental_prices: %w", err)
	}
	defer rows.Close()

	var grades []catalog.GradeEntry
	for rows.Next() {
		var (
			grade, gradeLabel, pkg, pkgLabel string
			prices                           []string
		)
		if err := rows.Scan(&grade, &gradeLabel, &pkg, &pkgLabel, &prices); err != nil {
			return nil, fmt.Errorf("scan rental_prices: %w", err)
		}
		entry, err := packageEntry(pkg, pkgLabel, prices)
		if err != nil {
			return nil, fmt.Errorf("rental_prices %s/%s: %w", grade, pkg, err)
		}

		if n := len(grades); n == 0 || grades[n-1].Grade != catalog.Grade(grade) {
			grades = append(grades, catalog.GradeEntry{Grade: catalog.Grade(grade), Label: gradeLabel})
		}
		last := &grades[len(grades)-1]
		last.Packages = append(last.Packages, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read rental_prices: %w", err)
	}

	return catalog.New(grades)
}

func packageEntry(pkg, label string, prices []string) (catalog.PackageEntry, error) {
	entry := catalog.PackageEntry{Package: catalog.Package(pkg), Label: label}
	if len(prices) != catalog.Tiers {
		return entry, fmt.Errorf("%w: %d prices, want %d", catalog.ErrInvalid, len(prices), catalog.Tiers)
	}
	for i, s := range prices {
		d, err := decimal.NewFromString(s)
		if err != nil {
			return entry, fmt.Errorf("%w: price %q: %v", catalog.ErrInvalid, s, err)
		}
		entry.Prices[i] = d
	}
	return entry, nil
}
