package search

import (
	"fmt"
	"strings"

	"jobbot-engine/internal/browser"

	"github.com/PuerkitoBio/goquery"
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/playwright-community/playwright-go"
)

const homeURL = "https://duckduckgo.com/"

// DuckDuckGo drives the search engine through the browser wrapper and
// scrapes posting links out of the rendered results. It is a thin
// collaborator: everything it returns goes through the link processor.
type DuckDuckGo struct {
	Browser *browser.Browser
}

func (d *DuckDuckGo) Name() string { return "duckduckgo" }

// FindLinks searches `"<title> site:<domain>"`, loads up to pages of
// results, and returns every unique href on the final page.
func (d *DuckDuckGo) FindLinks(title, domain string, pages int) ([]string, error) {
	if err := d.Browser.Navigate(homeURL); err != nil {
		return nil, fmt.Errorf("duckduckgo home: %w", err)
	}

	page := d.Browser.Page()
	query := fmt.Sprintf("%s site:%s", title, domain)
	if err := page.Locator("#searchbox_input").Fill(query); err != nil {
		return nil, fmt.Errorf("duckduckgo query: %w", err)
	}
	if err := page.Keyboard().Press("Enter"); err != nil {
		return nil, fmt.Errorf("duckduckgo submit: %w", err)
	}

	more := page.Locator("#more-results")
	if err := more.WaitFor(playwright.LocatorWaitForOptions{
		Timeout: playwright.Float(15000),
	}); err != nil {
		return nil, fmt.Errorf("duckduckgo results: %w", err)
	}

	for i := 1; i < pages; i++ {
		if err := more.Click(playwright.LocatorClickOptions{
			Timeout: playwright.Float(5000),
		}); err != nil {
			break // no more pages to load
		}
	}

	html, err := d.Browser.Content()
	if err != nil {
		return nil, fmt.Errorf("duckduckgo page source: %w", err)
	}
	return scrapeHrefs(html)
}

func scrapeHrefs(html string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse results html: %w", err)
	}

	set := mapset.NewThreadUnsafeSet[string]()
	doc.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		if href, ok := a.Attr("href"); ok {
			if href = strings.TrimSpace(href); href != "" {
				set.Add(href)
			}
		}
	})
	return set.ToSlice(), nil
}
