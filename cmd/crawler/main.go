package main

import (
	"flag"
	"log"
	"strings"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"aaprj/internal/config"
	"aaprj/internal/crawler"
	"aaprj/internal/db"
	"aaprj/internal/model"
	"aaprj/internal/repository"
)

// go run cmd/crawler/main.go -cat="Furniture,Silver"
// go run cmd/crawler/main.go            (all categories)
func main() {
	catArg := flag.String("cat", "", "comma-separated category names, empty for all")
	flag.Parse()

	cfg := config.Load()
	dbConn, err := db.New(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("connecting to postgres: %v", err)
	}

	repo := &repository.RawRepository{DB: dbConn}

	var visited crawler.VisitedStore = crawler.NewMemoryVisited()
	if cfg.RedisURL != "" {
		visited = &crawler.RedisVisited{
			Client: redis.NewClient(&redis.Options{Addr: cfg.RedisURL}),
		}
	}

	c := crawler.New(visited)
	handler := func(rec model.RawRecord) {
		rec.ID = uuid.New().String()
		if err := repo.Save(rec); err != nil {
			log.Printf("saving %s: %v", rec.SourceURL, err)
			return
		}
		log.Printf("collected %s", rec.ItemTitle)
	}

	categories := crawler.CategoryPaths
	if *catArg != "" {
		categories = map[string]string{}
		for _, name := range strings.Split(*catArg, ",") {
			name = strings.TrimSpace(name)
			path, ok := crawler.CategoryPaths[name]
			if !ok {
				log.Fatalf("unknown category %q", name)
			}
			categories[name] = path
		}
	}

	for name, path := range categories {
		if err := c.CrawlCategory(name, path, handler); err != nil {
			log.Printf("category %s failed: %v", name, err)
		}
	}

	log.Println("crawler finished")
}
