package crawler

import (
	"reflect"
	"testing"
)

const listingHTML = `
<html>
<head>
<meta property="og:description" content="A fine Victorian mahogany writing desk with tooled leather top." />
<script type="application/ld+json">{"@type":"Product","description":"JSON-LD description"}</script>
</head>
<body>
<h1> Victorian Mahogany Writing Desk </h1>
<span class="price"> £1,250 </span>
<span class="dealer-location">Somerset, UK</span>
<img src="//images.antiquesatlas.com/photos/desk-1.jpg" />
<img data-src="https://images.antiquesatlas.com/photos/desk-2.jpg" />
<img src="https://images.antiquesatlas.com/photos/desk-1.jpg" />
<img src="https://cdn.example.com/tracking.gif" />
</body>
</html>`

func TestParseListing(t *testing.T) {
	rec, err := ParseListing(listingHTML, "https://www.antiques-atlas.com/antique/desk", "Furniture")
	if err != nil {
		t.Fatal(err)
	}

	if rec.ItemTitle != "Victorian Mahogany Writing Desk" {
		t.Errorf("ItemTitle = %q", rec.ItemTitle)
	}
	if rec.ListedPrice != "£1,250" {
		t.Errorf("ListedPrice = %q", rec.ListedPrice)
	}
	if rec.SellerLocation != "Somerset, UK" {
		t.Errorf("SellerLocation = %q", rec.SellerLocation)
	}
	if rec.DescriptionRaw != "A fine Victorian mahogany writing desk with tooled leather top." {
		t.Errorf("DescriptionRaw = %q", rec.DescriptionRaw)
	}
	if rec.Category != "Furniture" || rec.Currency != "GBP" {
		t.Errorf("Category/Currency = %q/%q", rec.Category, rec.Currency)
	}

	wantImages := []string{
		"https://images.antiquesatlas.com/photos/desk-1.jpg",
		"https://images.antiquesatlas.com/photos/desk-2.jpg",
	}
	if !reflect.DeepEqual(rec.Images, wantImages) {
		t.Errorf("Images = %v, want %v", rec.Images, wantImages)
	}
}

func TestParseListingJSONLDFallback(t *testing.T) {
	html := `
<html><head>
<script type="application/ld+json">{"@type":"Product","description":" Georgian oak coffer, early 18th century. "}</script>
</head><body><h1>Georgian Oak Coffer</h1></body></html>`

	rec, err := ParseListing(html, "https://www.antiques-atlas.com/antique/coffer", "Furniture")
	if err != nil {
		t.Fatal(err)
	}
	if rec.DescriptionRaw != "Georgian oak coffer, early 18th century." {
		t.Errorf("DescriptionRaw = %q, want JSON-LD fallback", rec.DescriptionRaw)
	}
}

func TestParseListingMissingFields(t *testing.T) {
	rec, err := ParseListing("<html><body></body></html>", "https://example.com/x", "Silver")
	if err != nil {
		t.Fatal(err)
	}
	if rec.ItemTitle != "" || rec.ListedPrice != "" || rec.DescriptionRaw != "" || len(rec.Images) != 0 {
		t.Errorf("expected empty fields, got %+v", rec)
	}
}

func TestParseCategoryPage(t *testing.T) {
	html := `
<html><body>
<a href="/antique/desk-1">Desk</a>
<a href="/antique/clock-2">Clock</a>
<a href="/antique/desk-1">Desk again</a>
<a href="/dealers/someone">Dealer</a>
</body></html>`

	links, err := ParseCategoryPage(html)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"/antique/desk-1", "/antique/clock-2"}
	if !reflect.DeepEqual(links, want) {
		t.Errorf("links = %v, want %v", links, want)
	}
}

func TestMemoryVisited(t *testing.T) {
	v := NewMemoryVisited()
	if v.Seen("a") {
		t.Error("fresh store should not have seen anything")
	}
	if err := v.Mark("a"); err != nil {
		t.Fatal(err)
	}
	if !v.Seen("a") {
		t.Error("marked URL should be seen")
	}
}
