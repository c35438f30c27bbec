package main

import (
	"context"
	"log"

	"jobbot-engine/internal/apply"
	"jobbot-engine/internal/browser"
	"jobbot-engine/internal/config"
	"jobbot-engine/internal/store"
)

// runApply walks the record store and submits an application for every
// unapplied posting that the attempt tracker has not already seen.
func runApply(cfg config.Config) {
	ctx := context.Background()

	records, err := store.LoadRecords(cfg.Files.Records)
	if err != nil {
		log.Fatalf("load records: %v", err)
	}
	if len(records) == 0 {
		log.Print("[apply] no records to apply to")
		return
	}

	profile, err := config.LoadProfile(cfg.Files.Profile)
	if err != nil {
		log.Fatalf("load profile: %v", err)
	}

	db, err := store.Open(cfg.Files.TrackerDB)
	if err != nil {
		log.Fatalf("open tracker: %v", err)
	}
	defer db.Close()
	if err := store.MigrateTracker(db.Pool); err != nil {
		log.Fatal(err)
	}

	br, err := browser.Launch(cfg.App.Headless)
	if err != nil {
		log.Fatalf("launch browser: %v", err)
	}
	defer br.Close()

	filler := &apply.Filler{Browser: br, Profile: profile}

	var submitted int
	for _, rec := range records {
		if rec.Applied || rec.ApplyURL == "" {
			continue
		}

		done, err := store.HasAttempted(ctx, db.Pool, rec.ApplyURL)
		if err != nil {
			log.Fatalf("tracker lookup: %v", err)
		}
		if done {
			continue
		}

		log.Printf("[apply] %s at %s", rec.Title, rec.Company)
		if err := filler.Apply(rec.ApplyURL); err != nil {
			log.Printf("[apply] failed url=%q err=%v", rec.ApplyURL, err)
			if err := store.RecordAttempt(ctx, db.Pool, rec.ApplyURL, store.StatusFailed, err.Error()); err != nil {
				log.Printf("[apply] record attempt: %v", err)
			}
			continue
		}

		if err := store.RecordAttempt(ctx, db.Pool, rec.ApplyURL, store.StatusSubmitted, ""); err != nil {
			log.Printf("[apply] record attempt: %v", err)
		}
		if err := store.MarkApplied(cfg.Files.Records, rec.ApplyURL); err != nil {
			log.Printf("[apply] mark applied: %v", err)
		}
		submitted++
	}
	log.Printf("[apply] %d applications submitted", submitted)
}
