package main

import (
	"context"
	"log"
	"net"
	"strconv"
	"strings"

	"jobbot-engine/internal/browser"
	"jobbot-engine/internal/config"
	"jobbot-engine/internal/geo"
	"jobbot-engine/internal/links"
	"jobbot-engine/internal/mailalert"
	"jobbot-engine/internal/scrape"
	"jobbot-engine/internal/scrape/lever"
	"jobbot-engine/internal/scrape/util"
	"jobbot-engine/internal/search"
	"jobbot-engine/internal/secrets"
	"jobbot-engine/internal/store"
)

// runScrape is one full pass: collect candidate links, pair and
// de-duplicate them, fetch and parse each posting, keep the US ones,
// append the batch to the records file.
func runScrape(cfg config.Config) {
	ctx := context.Background()

	tables, err := geo.LoadTables(cfg.Files.TablesDir)
	if err != nil {
		log.Fatalf("load reference tables: %v", err)
	}

	hist, err := links.LoadHistory(cfg.Files.History)
	if err != nil {
		log.Fatalf("load history: %v", err)
	}

	limiter := util.NewHostLimiter(cfg.Site.ReqPerSec, cfg.Site.Burst)
	src := lever.New(limiter)

	raw := collectLinks(ctx, cfg, src.BaseURL())
	log.Printf("[scrape] %d raw links collected", len(raw))

	var fresh []string
	for _, u := range raw {
		if u = links.Canonicalize(u); !hist.Seen(u) {
			fresh = append(fresh, u)
		}
	}
	candidates := links.Process(fresh, src.BaseURL(), hist)
	log.Printf("[scrape] %d candidate postings after filtering", len(candidates))

	pipe := scrape.Pipeline{Source: src, Tables: tables, Workers: cfg.Site.Workers}
	records := pipe.Run(ctx, candidates)
	log.Printf("[scrape] %d postings qualified", len(records))

	if err := store.AppendRecords(cfg.Files.Records, records); err != nil {
		log.Fatalf("append records: %v", err)
	}
	if err := hist.Flush(); err != nil {
		log.Fatalf("flush history: %v", err)
	}
}

// collectLinks gathers candidate URLs from the search engine and, when
// enabled, the mail-alert inbox. Mail failures degrade to search-only.
func collectLinks(ctx context.Context, cfg config.Config, baseURL string) []string {
	br, err := browser.Launch(cfg.App.Headless)
	if err != nil {
		log.Fatalf("launch browser: %v", err)
	}
	defer br.Close()

	ddg := &search.DuckDuckGo{Browser: br}
	domain := strings.TrimPrefix(baseURL, "https://")
	raw, err := ddg.FindLinks(cfg.Search.JobTitle, domain, cfg.Search.Pages)
	if err != nil {
		log.Fatalf("search: %v", err)
	}

	if cfg.Mail.Enabled {
		mailLinks, err := fetchMailLinks(ctx, cfg)
		if err != nil {
			log.Printf("[mailalert] skipped: %v", err)
		} else {
			log.Printf("[mailalert] %d links from alerts", len(mailLinks))
			raw = append(raw, mailLinks...)
		}
	}
	return raw
}

func fetchMailLinks(ctx context.Context, cfg config.Config) ([]string, error) {
	account := secrets.MailAccount(cfg.Mail.Username, cfg.Mail.IMAPHost)
	password, err := secrets.GetMailPassword(account)
	if err != nil {
		return nil, err
	}

	port := cfg.Mail.IMAPPort
	if port == 0 {
		port = 993
	}
	return mailalert.FetchLinks(ctx, mailalert.Config{
		Addr:        net.JoinHostPort(cfg.Mail.IMAPHost, strconv.Itoa(port)),
		Username:    cfg.Mail.Username,
		Password:    password,
		Mailbox:     cfg.Mail.Mailbox,
		SubjectAny:  cfg.Mail.SubjectAny,
		MaxMessages: cfg.Mail.MaxMessages,
	})
}
