package config

import (
	"fmt"
	"strings"
)

type Validation struct {
	Errors   []string
	Warnings []string
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}
func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}
func (v Validation) OK() bool { return len(v.Errors) == 0 }

// NormalizeAndValidate fills defaults, cleans list fields, and reports
// anything a run could not work with.
func NormalizeAndValidate(cfg Config) (Config, Validation) {
	out := cfg
	var res Validation

	trimList := func(xs []string) []string {
		seen := map[string]bool{}
		var ys []string
		for _, x := range xs {
			x = strings.TrimSpace(x)
			if x == "" {
				continue
			}
			key := strings.ToLower(x)
			if seen[key] {
				continue
			}
			seen[key] = true
			ys = append(ys, x)
		}
		return ys
	}

	out.Mail.SubjectAny = trimList(out.Mail.SubjectAny)

	// Defaults
	if out.Search.Pages <= 0 {
		out.Search.Pages = 1
	}
	if out.Site.Workers <= 0 {
		out.Site.Workers = 1
	}
	if out.Site.ReqPerSec <= 0 {
		out.Site.ReqPerSec = 1
	}
	if out.Site.Burst <= 0 {
		out.Site.Burst = 1
	}
	if out.Mail.Mailbox == "" {
		out.Mail.Mailbox = "INBOX"
	}

	// ---- Validation rules ----

	if strings.TrimSpace(out.App.DataDir) == "" {
		res.addErr("app.data_dir is required")
	}
	if strings.TrimSpace(out.Search.JobTitle) == "" {
		res.addErr("search.job_title is required")
	}
	if out.Search.Pages > 10 {
		res.addWarn("search.pages is high (%d); result pages past a few rarely add postings.", out.Search.Pages)
	}
	if out.Site.Workers > 8 {
		res.addWarn("site.workers is high (%d) and may trip the job board's rate limits.", out.Site.Workers)
	}

	// Mail fields only matter when enabled; the password lives in the
	// keychain, never in config.
	if out.Mail.Enabled {
		if strings.TrimSpace(out.Mail.IMAPHost) == "" {
			res.addErr("mail.imap_host is required when mail.enabled=true")
		}
		if out.Mail.IMAPPort == 0 {
			res.addErr("mail.imap_port is required when mail.enabled=true")
		}
		if strings.TrimSpace(out.Mail.Username) == "" {
			res.addErr("mail.username is required when mail.enabled=true")
		}
		if len(out.Mail.SubjectAny) == 0 {
			res.addWarn("mail.subject_any is empty; every unseen message will be scanned for links.")
		}
	}

	return out, res
}
