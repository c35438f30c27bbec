package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"jobbot-engine/internal/config"
	"jobbot-engine/internal/secrets"
)

func usage() {
	fmt.Fprintf(os.Stderr, `usage: jobbot <command> [flags]

commands:
  scrape             search for postings, parse them, and append US ones to the records file
  apply              fill and submit applications for unapplied records
  set-mail-password  store the IMAP password for the mail-alert inbox in the keychain
`)
	os.Exit(2)
}

func main() {
	if len(os.Args) < 2 {
		usage()
	}

	dataDir := os.Getenv("JOBBOT_DATA_DIR")
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		log.Fatal(err)
	}

	switch os.Args[1] {
	case "scrape":
		runScrape(loadConfig(dataDir, os.Args[2:]))
	case "apply":
		runApply(loadConfig(dataDir, os.Args[2:]))
	case "set-mail-password":
		setMailPassword(loadConfig(dataDir, os.Args[2:]))
	default:
		usage()
	}
}

// loadConfig bootstraps the user config under dataDir, applies command
// line overrides, and validates the result.
func loadConfig(dataDir string, args []string) config.Config {
	fs := flag.NewFlagSet("jobbot", flag.ExitOnError)
	title := fs.String("title", "", "job title to search for (overrides config)")
	headed := fs.Bool("headed", false, "run the browser with a visible window")
	_ = fs.Parse(args)

	cfgPath, err := config.EnsureUserConfig(dataDir)
	if err != nil {
		log.Fatalf("config bootstrap failed: %v", err)
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("config load failed (%s): %v", cfgPath, err)
	}
	if *title != "" {
		cfg.Search.JobTitle = *title
	}
	if *headed {
		cfg.App.Headless = false
	}

	cfg, res := config.NormalizeAndValidate(cfg)
	for _, w := range res.Warnings {
		log.Printf("[config] warning: %s", w)
	}
	if !res.OK() {
		for _, e := range res.Errors {
			log.Printf("[config] error: %s", e)
		}
		log.Fatalf("config invalid (%s)", cfgPath)
	}
	return cfg
}

func setMailPassword(cfg config.Config) {
	if cfg.Mail.Username == "" || cfg.Mail.IMAPHost == "" {
		log.Fatal("mail.username and mail.imap_host must be set first")
	}

	account := secrets.MailAccount(cfg.Mail.Username, cfg.Mail.IMAPHost)
	fmt.Printf("password for %s: ", account)

	sc := bufio.NewScanner(os.Stdin)
	if !sc.Scan() {
		log.Fatal("no password read")
	}
	if err := secrets.SetMailPassword(account, strings.TrimSpace(sc.Text())); err != nil {
		log.Fatalf("store password: %v", err)
	}
	log.Printf("[secrets] password stored for %s", account)
}
