package crawler

import (
	"encoding/json"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"aaprj/internal/model"
)

const maxImages = 5

// ParseCategoryPage extracts the item links from one category listing page.
func ParseCategoryPage(html string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}

	var links []string
	seen := map[string]bool{}
	doc.Find("a[href^='/antique/']").Each(func(_ int, s *goquery.Selection) {
		href := s.AttrOr("href", "")
		if href == "" || seen[href] {
			return
		}
		seen[href] = true
		links = append(links, href)
	})
	return links, nil
}

// ParseListing extracts one raw record from an item detail page. Missing
// fields stay empty; the enrichment stage deals with incompleteness.
func ParseListing(html, sourceURL, category string) (model.RawRecord, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return model.RawRecord{}, err
	}

	rec := model.RawRecord{
		SourceURL:      sourceURL,
		Category:       category,
		Currency:       "GBP",
		ItemTitle:      strings.TrimSpace(doc.Find("h1").First().Text()),
		ListedPrice:    strings.TrimSpace(doc.Find("span.price").First().Text()),
		SellerLocation: strings.TrimSpace(doc.Find("span.dealer-location").First().Text()),
	}

	rec.DescriptionRaw = strings.TrimSpace(doc.Find("meta[property='og:description']").AttrOr("content", ""))
	if rec.DescriptionRaw == "" {
		rec.DescriptionRaw = jsonLDDescription(doc)
	}

	seen := map[string]bool{}
	doc.Find("img").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		src := s.AttrOr("src", s.AttrOr("data-src", ""))
		if src == "" {
			return true
		}
		if strings.HasPrefix(src, "//") {
			src = "https:" + src
		}
		if !strings.Contains(src, "images.antiquesatlas.com") || seen[src] {
			return true
		}
		seen[src] = true
		rec.Images = append(rec.Images, src)
		return len(rec.Images) < maxImages
	})

	return rec, nil
}

// jsonLDDescription falls back to the page's JSON-LD block when there is no
// og:description meta tag.
func jsonLDDescription(doc *goquery.Document) string {
	raw := doc.Find("script[type='application/ld+json']").First().Text()
	if raw == "" {
		return ""
	}
	var data map[string]any
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return ""
	}
	desc, _ := data["description"].(string)
	return strings.TrimSpace(desc)
}
