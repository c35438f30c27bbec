package browser

import (
	"fmt"

	"github.com/playwright-community/playwright-go"
)

// Browser wraps a playwright instance behind the small surface the rest
// of the engine needs. Callers treat page navigation and element
// interaction as an opaque capability.
type Browser struct {
	pw      *playwright.Playwright
	browser playwright.Browser
	page    playwright.Page
}

// Launch starts playwright and opens a single Chromium page. Callers
// must Close when done.
func Launch(headless bool) (*Browser, error) {
	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("start playwright: %w", err)
	}

	br, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(headless),
	})
	if err != nil {
		_ = pw.Stop()
		return nil, fmt.Errorf("launch chromium: %w", err)
	}

	page, err := br.NewPage()
	if err != nil {
		_ = br.Close()
		_ = pw.Stop()
		return nil, fmt.Errorf("open page: %w", err)
	}

	return &Browser{pw: pw, browser: br, page: page}, nil
}

// Page exposes the underlying page for callers that need selectors this
// wrapper does not cover.
func (b *Browser) Page() playwright.Page { return b.page }

func (b *Browser) Navigate(url string) error {
	_, err := b.page.Goto(url, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
		Timeout:   playwright.Float(30000),
	})
	if err != nil {
		return fmt.Errorf("navigate %s: %w", url, err)
	}
	return nil
}

func (b *Browser) Fill(selector, value string) error {
	return b.page.Locator(selector).First().Fill(value)
}

func (b *Browser) Click(selector string) error {
	return b.page.Locator(selector).First().Click()
}

func (b *Browser) SelectByValue(selector, value string) error {
	_, err := b.page.Locator(selector).First().SelectOption(playwright.SelectOptionValues{
		Values: &[]string{value},
	})
	return err
}

func (b *Browser) Upload(selector, path string) error {
	return b.page.Locator(selector).First().SetInputFiles(path)
}

// Content returns the page's rendered HTML.
func (b *Browser) Content() (string, error) {
	return b.page.Content()
}

func (b *Browser) Close() error {
	if b.page != nil {
		_ = b.page.Close()
	}
	if b.browser != nil {
		_ = b.browser.Close()
	}
	if b.pw != nil {
		return b.pw.Stop()
	}
	return nil
}
