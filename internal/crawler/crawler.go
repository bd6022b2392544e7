package crawler

import (
	"fmt"
	"log"
	"time"

	"aaprj/internal/model"
)

const baseSiteURL = "https://www.antiques-atlas.com"

// CategoryPaths maps human-facing category names to their site paths.
var CategoryPaths = map[string]string{
	"Furniture":      "/antiques/furniture/",
	"Ceramics":       "/antiques/ceramics/",
	"Decorative Art": "/antiques/decorative/",
	"Silver":         "/antiques/silver/",
	"Jewellery":      "/antiques/jewellery/",
	"Lighting":       "/antiques/lighting/",
}

type Crawler struct {
	BaseURL  string
	Visited  VisitedStore
	Pause    time.Duration
	MaxItems int
	MaxPages int
}

func New(visited VisitedStore) *Crawler {
	return &Crawler{
		BaseURL:  baseSiteURL,
		Visited:  visited,
		Pause:    700 * time.Millisecond,
		MaxItems: 30,
		MaxPages: 30,
	}
}

// CrawlCategory walks one category's pages, fetching each unseen item and
// handing the parsed record to the handler. Individual item failures are
// logged and skipped; only a category-page failure aborts the category.
func (c *Crawler) CrawlCategory(name, path string, handler func(model.RawRecord)) error {
	collected := 0

	for page := 1; page <= c.MaxPages && collected < c.MaxItems; page++ {
		pageURL := fmt.Sprintf("%s%s?page=%d", c.BaseURL, path, page)
		html, err := Fetch(pageURL)
		if err != nil {
			return fmt.Errorf("fetching %s: %w", pageURL, err)
		}

		links, err := ParseCategoryPage(html)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", pageURL, err)
		}
		if len(links) == 0 {
			break
		}

		for _, link := range links {
			if collected >= c.MaxItems {
				break
			}
			itemURL := c.BaseURL + link
			if c.Visited.Seen(itemURL) {
				continue
			}
			if err := c.Visited.Mark(itemURL); err != nil {
				log.Printf("marking %s visited: %v", itemURL, err)
			}

			itemHTML, err := Fetch(itemURL)
			if err != nil {
				log.Printf("skipping %s: %v", itemURL, err)
				continue
			}
			rec, err := ParseListing(itemHTML, itemURL, name)
			if err != nil {
				log.Printf("skipping %s: %v", itemURL, err)
				continue
			}

			handler(rec)
			collected++
			time.Sleep(c.Pause)
		}
	}

	log.Printf("category %s: collected %d items", name, collected)
	return nil
}
