package repository

import (
	"database/sql"

	"github.com/lib/pq"

	"aaprj/internal/model"
)

// RawRepository stores listings exactly as collected. sync_status tracks
// whether a listing still awaits enrichment ('S') or is done ('N').
type RawRepository struct {
	DB *sql.DB
}

func (r *RawRepository) Save(rec model.RawRecord) error {
	var exists bool
	err := r.DB.QueryRow(
		"SELECT EXISTS(SELECT 1 FROM listing_raw WHERE source_url = $1)",
		rec.SourceURL,
	).Scan(&exists)
	if err != nil {
		return err
	}

	if exists {
		_, err = r.DB.Exec(`
			UPDATE listing_raw
			SET item_title = $1, category = $2, description_raw = $3,
			    images = $4, listed_price = $5, currency = $6,
			    seller_location = $7, sync_status = 'S'
			WHERE source_url = $8
		`, rec.ItemTitle, rec.Category, rec.DescriptionRaw,
			pq.Array(rec.Images), rec.ListedPrice, rec.Currency,
			rec.SellerLocation, rec.SourceURL)
	} else {
		_, err = r.DB.Exec(`
			INSERT INTO listing_raw
			(id, source_url, item_title, category, description_raw,
			 images, listed_price, currency, seller_location, sync_status)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, 'S')
		`, rec.ID, rec.SourceURL, rec.ItemTitle, rec.Category,
			rec.DescriptionRaw, pq.Array(rec.Images), rec.ListedPrice,
			rec.Currency, rec.SellerLocation)
	}

	return err
}

// List returns every listing still waiting for enrichment.
func (r *RawRepository) List() ([]model.RawRecord, error) {
	rows, err := r.DB.Query(`
		SELECT id, source_url, item_title, category, description_raw,
		       images, listed_price, currency, seller_location
		FROM listing_raw
		WHERE sync_status = 'S'
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []model.RawRecord
	for rows.Next() {
		var rec model.RawRecord
		if err := rows.Scan(
			&rec.ID, &rec.SourceURL, &rec.ItemTitle, &rec.Category,
			&rec.DescriptionRaw, pq.Array(&rec.Images), &rec.ListedPrice,
			&rec.Currency, &rec.SellerLocation,
		); err != nil {
			return nil, err
		}
		list = append(list, rec)
	}

	return list, rows.Err()
}

func (r *RawRepository) MarkProcessed(sourceURL string) error {
	_, err := r.DB.Exec(`
		UPDATE listing_raw
		SET sync_status = 'N'
		WHERE source_url = $1
	`, sourceURL)
	return err
}
