package config

import (
	"errors"
	"os"
	"path/filepath"
)

// EnsureUserConfig returns the path of the user's config file under
// dataDir, materializing a default one on first run.
func EnsureUserConfig(dataDir string) (string, error) {
	userPath := filepath.Join(dataDir, "config.yml")

	_, err := os.Stat(userPath)
	if err == nil {
		return userPath, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return "", err
	}

	if err := SaveAtomic(userPath, Default(dataDir)); err != nil {
		return "", err
	}
	return userPath, nil
}

// Default is the config a fresh install starts from. Paths land under
// dataDir so the whole state of a run lives in one place.
func Default(dataDir string) Config {
	var cfg Config
	cfg.App.DataDir = dataDir
	cfg.App.Headless = true

	cfg.Search.JobTitle = "software engineer"
	cfg.Search.Pages = 3

	cfg.Site.Workers = 1
	cfg.Site.ReqPerSec = 1
	cfg.Site.Burst = 2

	cfg.Mail.Mailbox = "INBOX"
	cfg.Mail.MaxMessages = 50

	cfg.Files.TablesDir = filepath.Join(dataDir, "tables")
	cfg.Files.History = filepath.Join(dataDir, "history.txt")
	cfg.Files.Records = filepath.Join(dataDir, "postings.csv")
	cfg.Files.TrackerDB = filepath.Join(dataDir, "tracker.db")
	cfg.Files.Profile = filepath.Join(dataDir, "profile.json")
	return cfg
}
