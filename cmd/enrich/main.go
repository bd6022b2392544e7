package main

import (
	"context"
	"flag"
	"log"
	"sync"

	openai "github.com/sashabaranov/go-openai"

	"aaprj/internal/config"
	"aaprj/internal/db"
	"aaprj/internal/enrich"
	"aaprj/internal/llm"
	"aaprj/internal/model"
	"aaprj/internal/observability"
	"aaprj/internal/repository"
)

func main() {
	useLLM := flag.Bool("llm", false, "fill still-unknown attributes with the OpenAI API")
	flag.Parse()

	cfg := config.Load()
	observability.Start(cfg.MetricsPort)

	rules, err := loadRules(cfg)
	if err != nil {
		log.Fatalf("loading rules: %v", err)
	}
	pipeline, err := enrich.New(rules)
	if err != nil {
		log.Fatalf("building pipeline: %v", err)
	}

	dbConn, err := db.New(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("connecting to postgres: %v", err)
	}
	pool, err := db.NewPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("creating pgx pool: %v", err)
	}
	defer pool.Close()

	rawRepo := &repository.RawRepository{DB: dbConn}
	enrichedRepo := &repository.EnrichedRepository{DB: pool}

	raws, err := rawRepo.List()
	if err != nil {
		log.Fatalf("listing raw records: %v", err)
	}
	log.Printf("enriching %d raw listings", len(raws))

	// The whole batch goes through one pipeline pass: dedup needs a single
	// global view of the records.
	enriched, report := pipeline.Run(raws)

	observability.RecordsProcessed.Add(float64(report.Processed))
	observability.RecordsRejected.Add(float64(len(report.RejectedIndices)))
	observability.DuplicatesDropped.Add(float64(report.DuplicatesDropped))
	for attr, n := range report.UnknownCounts {
		observability.UnknownAttributes.WithLabelValues(attr).Add(float64(n))
	}
	for _, i := range report.RejectedIndices {
		log.Printf("rejected record %d: missing source_url", i)
	}
	log.Printf("batch: received=%d processed=%d rejected=%d duplicates=%d",
		report.Received, report.Processed, len(report.RejectedIndices), report.DuplicatesDropped)

	var filler *llm.Filler
	if *useLLM {
		filler = &llm.Filler{
			Client: openai.NewClient(cfg.OpenAIKey),
			Rules:  rules,
		}
	}

	saveAll(enriched, pipeline, filler, rawRepo, enrichedRepo, cfg.WorkerCount)
	log.Println("enrichment finished")
}

func loadRules(cfg *config.Config) (*enrich.Rules, error) {
	if cfg.RulesPath == "" {
		return enrich.DefaultRules(), nil
	}
	return enrich.LoadRules(cfg.RulesPath)
}

// saveAll persists the enriched records with a small worker pool. The
// optional LLM fill happens here too, so only the I/O stage is concurrent.
func saveAll(
	records []model.EnrichedRecord,
	pipeline *enrich.Pipeline,
	filler *llm.Filler,
	rawRepo *repository.RawRepository,
	enrichedRepo *repository.EnrichedRepository,
	workers int,
) {
	jobs := make(chan model.EnrichedRecord)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for rec := range jobs {
				process(rec, pipeline, filler, rawRepo, enrichedRepo)
			}
		}()
	}

	for _, rec := range records {
		jobs <- rec
	}
	close(jobs)
	wg.Wait()
}

func process(
	rec model.EnrichedRecord,
	pipeline *enrich.Pipeline,
	filler *llm.Filler,
	rawRepo *repository.RawRepository,
	enrichedRepo *repository.EnrichedRepository,
) {
	ctx := context.Background()

	if filler != nil && rec.ConfidenceScore < 1 {
		// Inference is deterministic, so re-running it recovers the
		// support map the pipeline scored this record from.
		_, support := pipeline.Inferencer().Infer(rec.NormalizedRecord)
		if err := filler.Fill(ctx, &rec, support); err != nil {
			log.Printf("llm fill for %s: %v", rec.Raw.SourceURL, err)
		} else {
			rec.ConfidenceScore = enrich.Score(support)
		}
	}

	if err := enrichedRepo.Save(ctx, rec); err != nil {
		log.Printf("saving %s: %v", rec.Raw.SourceURL, err)
		return
	}
	if err := rawRepo.MarkProcessed(rec.Raw.SourceURL); err != nil {
		log.Printf("marking %s processed: %v", rec.Raw.SourceURL, err)
	}
}
