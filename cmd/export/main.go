package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"aaprj/internal/config"
	"aaprj/internal/db"
	"aaprj/internal/model"
	"aaprj/internal/repository"
)

// exportRow is the flat serialization shape: raw fields retained for
// traceability alongside the normalized and enriched ones.
type exportRow struct {
	SourceURL          string          `json:"source_url"`
	ItemTitle          string          `json:"item_title"`
	CategoryRaw        string          `json:"category_raw"`
	DescriptionRaw     string          `json:"description_raw"`
	Images             []string        `json:"images"`
	ListedPriceRaw     string          `json:"listed_price_raw"`
	Currency           string          `json:"currency"`
	SellerLocation     string          `json:"seller_location"`
	CategoryNorm       string          `json:"category_normalized"`
	DescriptionClean   string          `json:"description_clean"`
	PriceValue         *float64        `json:"price_value"`
	PriceUnknown       bool            `json:"price_unknown"`
	DuplicateURLs      []string        `json:"duplicate_urls,omitempty"`
	EraOrTimePeriod    string          `json:"era_or_time_period"`
	EstimatedYearRange model.YearRange `json:"estimated_year_range"`
	RegionOfOrigin     string          `json:"region_of_origin"`
	FunctionalUse      string          `json:"functional_use"`
	Material           string          `json:"material"`
	Style              string          `json:"style"`
	ShortSummary       string          `json:"short_summary"`
	ConfidenceScore    float64         `json:"confidence_score"`
}

func main() {
	jsonPath := flag.String("out", "data/final/antiques_enriched.json", "JSON output path")
	csvPath := flag.String("csv", "", "optional CSV output path")
	flag.Parse()

	cfg := config.Load()
	pool, err := db.NewPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("creating pgx pool: %v", err)
	}
	defer pool.Close()

	repo := &repository.EnrichedRepository{DB: pool}
	records, err := repo.List(context.Background())
	if err != nil {
		log.Fatalf("listing enriched records: %v", err)
	}
	if len(records) == 0 {
		log.Fatal("no enriched records to export")
	}

	rows := make([]exportRow, 0, len(records))
	for _, rec := range records {
		rows = append(rows, toRow(rec))
	}

	if err := writeJSON(*jsonPath, rows); err != nil {
		log.Fatalf("writing JSON: %v", err)
	}
	log.Printf("exported %d records to %s", len(rows), *jsonPath)

	if *csvPath != "" {
		if err := writeCSV(*csvPath, rows); err != nil {
			log.Fatalf("writing CSV: %v", err)
		}
		log.Printf("exported CSV to %s", *csvPath)
	}
}

func toRow(rec model.EnrichedRecord) exportRow {
	return exportRow{
		SourceURL:          rec.Raw.SourceURL,
		ItemTitle:          rec.Raw.ItemTitle,
		CategoryRaw:        rec.Raw.Category,
		DescriptionRaw:     rec.Raw.DescriptionRaw,
		Images:             rec.Raw.Images,
		ListedPriceRaw:     rec.Raw.ListedPrice,
		Currency:           rec.Raw.Currency,
		SellerLocation:     rec.Raw.SellerLocation,
		CategoryNorm:       rec.CategoryNorm,
		DescriptionClean:   rec.DescriptionClean,
		PriceValue:         rec.PriceValue,
		PriceUnknown:       rec.PriceUnknown,
		DuplicateURLs:      rec.DuplicateURLs,
		EraOrTimePeriod:    rec.EraOrTimePeriod,
		EstimatedYearRange: rec.EstimatedYearRange,
		RegionOfOrigin:     rec.RegionOfOrigin,
		FunctionalUse:      rec.FunctionalUse,
		Material:           rec.Material,
		Style:              rec.Style,
		ShortSummary:       rec.ShortSummary,
		ConfidenceScore:    rec.ConfidenceScore,
	}
}

func writeJSON(path string, rows []exportRow) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(rows)
}

func writeCSV(path string, rows []exportRow) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"source_url", "item_title", "category_raw", "category_normalized",
		"listed_price_raw", "currency", "price_value", "price_unknown",
		"seller_location", "era_or_time_period", "estimated_year_range",
		"region_of_origin", "functional_use", "material", "style",
		"short_summary", "confidence_score",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, row := range rows {
		price := ""
		if row.PriceValue != nil {
			price = fmt.Sprintf("%.2f", *row.PriceValue)
		}
		record := []string{
			row.SourceURL, row.ItemTitle, row.CategoryRaw, row.CategoryNorm,
			row.ListedPriceRaw, row.Currency, price,
			fmt.Sprintf("%t", row.PriceUnknown), row.SellerLocation,
			row.EraOrTimePeriod, row.EstimatedYearRange.String(),
			row.RegionOfOrigin, row.FunctionalUse, row.Material, row.Style,
			row.ShortSummary, fmt.Sprintf("%.3f", row.ConfidenceScore),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	return w.Error()
}
