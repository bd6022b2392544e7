package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"aaprj/internal/model"
)

// EnrichedRepository stores pipeline output, one row per surviving listing,
// upserted by source URL so re-running enrichment is safe.
type EnrichedRepository struct {
	DB *pgxpool.Pool
}

func (r *EnrichedRepository) Save(ctx context.Context, rec model.EnrichedRecord) error {
	var yearFrom, yearTo *int
	if !rec.EstimatedYearRange.IsZero() {
		yearFrom = &rec.EstimatedYearRange.From
		yearTo = &rec.EstimatedYearRange.To
	}

	_, err := r.DB.Exec(ctx, `
		INSERT INTO listing_enriched
		(source_url, item_title, category_raw, category_norm,
		 description_raw, description_clean, images, listed_price_raw,
		 currency, seller_location, price_value, price_unknown,
		 duplicate_urls, era_or_time_period, year_from, year_to,
		 region_of_origin, functional_use, material, style,
		 short_summary, confidence_score)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12,
		        $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)
		ON CONFLICT (source_url) DO UPDATE SET
		 item_title = EXCLUDED.item_title,
		 category_raw = EXCLUDED.category_raw,
		 category_norm = EXCLUDED.category_norm,
		 description_raw = EXCLUDED.description_raw,
		 description_clean = EXCLUDED.description_clean,
		 images = EXCLUDED.images,
		 listed_price_raw = EXCLUDED.listed_price_raw,
		 currency = EXCLUDED.currency,
		 seller_location = EXCLUDED.seller_location,
		 price_value = EXCLUDED.price_value,
		 price_unknown = EXCLUDED.price_unknown,
		 duplicate_urls = EXCLUDED.duplicate_urls,
		 era_or_time_period = EXCLUDED.era_or_time_period,
		 year_from = EXCLUDED.year_from,
		 year_to = EXCLUDED.year_to,
		 region_of_origin = EXCLUDED.region_of_origin,
		 functional_use = EXCLUDED.functional_use,
		 material = EXCLUDED.material,
		 style = EXCLUDED.style,
		 short_summary = EXCLUDED.short_summary,
		 confidence_score = EXCLUDED.confidence_score
	`,
		rec.Raw.SourceURL, rec.Raw.ItemTitle, rec.Raw.Category,
		rec.CategoryNorm, rec.Raw.DescriptionRaw, rec.DescriptionClean,
		rec.Raw.Images, rec.Raw.ListedPrice, rec.Raw.Currency,
		rec.Raw.SellerLocation, rec.PriceValue, rec.PriceUnknown,
		rec.DuplicateURLs, rec.EraOrTimePeriod, yearFrom, yearTo,
		rec.RegionOfOrigin, rec.FunctionalUse, rec.Material, rec.Style,
		rec.ShortSummary, rec.ConfidenceScore)

	return err
}

// List returns all enriched records, reassembled for export.
func (r *EnrichedRepository) List(ctx context.Context) ([]model.EnrichedRecord, error) {
	rows, err := r.DB.Query(ctx, `
		SELECT source_url, item_title, category_raw, category_norm,
		       description_raw, description_clean, images, listed_price_raw,
		       currency, seller_location, price_value, price_unknown,
		       duplicate_urls, era_or_time_period, year_from, year_to,
		       region_of_origin, functional_use, material, style,
		       short_summary, confidence_score
		FROM listing_enriched
		ORDER BY source_url
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []model.EnrichedRecord
	for rows.Next() {
		raw := &model.RawRecord{}
		rec := model.EnrichedRecord{}
		rec.Raw = raw

		var yearFrom, yearTo *int
		if err := rows.Scan(
			&raw.SourceURL, &raw.ItemTitle, &raw.Category,
			&rec.CategoryNorm, &raw.DescriptionRaw, &rec.DescriptionClean,
			&raw.Images, &raw.ListedPrice, &raw.Currency,
			&raw.SellerLocation, &rec.PriceValue, &rec.PriceUnknown,
			&rec.DuplicateURLs, &rec.EraOrTimePeriod, &yearFrom, &yearTo,
			&rec.RegionOfOrigin, &rec.FunctionalUse, &rec.Material,
			&rec.Style, &rec.ShortSummary, &rec.ConfidenceScore,
		); err != nil {
			return nil, err
		}
		if yearFrom != nil && yearTo != nil {
			rec.EstimatedYearRange = model.YearRange{From: *yearFrom, To: *yearTo}
		}
		list = append(list, rec)
	}

	return list, rows.Err()
}
