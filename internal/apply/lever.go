package apply

import (
	"fmt"
	"log"
	"strings"

	"jobbot-engine/internal/browser"
	"jobbot-engine/internal/domain"

	"github.com/playwright-community/playwright-go"
)

// Filler submits a Lever application form through the browser. Every
// step past navigation is best-effort: forms vary by company, so a
// field that cannot be filled is logged and skipped rather than failing
// the whole application.
type Filler struct {
	Browser *browser.Browser
	Profile domain.Profile
}

// Apply opens the application page and works through the form:
// resume upload, basic info, custom questions, submit.
func (f *Filler) Apply(url string) error {
	if err := f.Browser.Navigate(url); err != nil {
		return fmt.Errorf("open application: %w", err)
	}

	f.step("resume", f.uploadResume)
	f.step("basic info", f.fillBasicInfo)
	f.step("custom questions", f.fillCustomQuestions)
	f.step("submit", func() error { return f.Browser.Click("#btn-submit") })

	return nil
}

func (f *Filler) step(name string, fn func() error) {
	if err := fn(); err != nil {
		log.Printf("[apply] %s skipped: %v", name, err)
	}
}

func (f *Filler) uploadResume() error {
	if f.Profile.ResumePath == "" {
		return nil
	}
	return f.Browser.Upload("#resume-upload-input", f.Profile.ResumePath)
}

func (f *Filler) fillBasicInfo() error {
	inputs := []struct{ selector, value string }{
		{`input[name="name"]`, f.Profile.Name},
		{`input[name="email"]`, f.Profile.Email},
		{`input[name="phone"]`, f.Profile.Phone},
		{`input[name="org"]`, f.Profile.CurrentCompany},
		{`input[name="urls[LinkedIn]"]`, f.Profile.LinkedIn},
	}
	for _, in := range inputs {
		if in.value == "" {
			continue
		}
		if err := f.Browser.Fill(in.selector, in.value); err != nil {
			log.Printf("[apply] field %s skipped: %v", in.selector, err)
		}
	}

	f.step("location", f.fillLocation)

	selects := []struct{ selector, value string }{
		{`select[name="eeo[gender]"]`, f.Profile.Gender},
		{`select[name="eeo[race]"]`, f.Profile.Race},
		{`select[name="eeo[veteran]"]`, f.Profile.VeteranStatus},
	}
	for _, sel := range selects {
		if sel.value == "" {
			continue
		}
		if err := f.Browser.SelectByValue(sel.selector, sel.value); err != nil {
			log.Printf("[apply] select %s skipped: %v", sel.selector, err)
		}
	}
	return nil
}

// fillLocation types into the autocomplete field and picks the first
// suggestion once the dropdown renders.
func (f *Filler) fillLocation() error {
	if f.Profile.Location == "" {
		return nil
	}
	if err := f.Browser.Fill("#location-input", f.Profile.Location); err != nil {
		return err
	}

	first := f.Browser.Page().Locator(".dropdown-results div").First()
	if err := first.WaitFor(playwright.LocatorWaitForOptions{
		Timeout: playwright.Float(5000),
	}); err != nil {
		return err
	}
	return first.Click()
}

// fillCustomQuestions answers the work-authorization and sponsorship
// questions by clicking the radio input whose value matches the
// profile. Other custom questions are left blank.
func (f *Filler) fillCustomQuestions() error {
	questions, err := f.Browser.Page().Locator(".custom-question").All()
	if err != nil {
		return err
	}

	for _, q := range questions {
		text, err := q.TextContent()
		if err != nil {
			continue
		}
		low := strings.ToLower(text)

		var want string
		switch {
		case strings.Contains(low, "eligible") || strings.Contains(low, "author"):
			want = f.Profile.Authorized
		case strings.Contains(low, "sponsor"):
			want = f.Profile.Sponsor
		default:
			continue
		}
		if want == "" {
			continue
		}

		options, err := q.Locator("input").All()
		if err != nil {
			continue
		}
		for _, opt := range options {
			val, err := opt.GetAttribute("value")
			if err != nil {
				continue
			}
			if strings.EqualFold(val, want) {
				if err := opt.Click(); err != nil {
					log.Printf("[apply] option %q skipped: %v", val, err)
				}
				break
			}
		}
	}
	return nil
}
