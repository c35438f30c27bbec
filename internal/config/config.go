package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	App struct {
		DataDir  string `yaml:"data_dir"`
		Headless bool   `yaml:"headless"`
	} `yaml:"app"`

	Search struct {
		JobTitle string `yaml:"job_title"`
		Pages    int    `yaml:"pages"`
	} `yaml:"search"`

	Site struct {
		Workers   int     `yaml:"workers"`
		ReqPerSec float64 `yaml:"req_per_sec"`
		Burst     int     `yaml:"burst"`
	} `yaml:"site"`

	Mail struct {
		Enabled     bool     `yaml:"enabled"`
		IMAPHost    string   `yaml:"imap_host"`
		IMAPPort    int      `yaml:"imap_port"`
		Username    string   `yaml:"username"`
		Mailbox     string   `yaml:"mailbox"`
		SubjectAny  []string `yaml:"subject_any"`
		MaxMessages int      `yaml:"max_messages"`
	} `yaml:"mail"`

	Files struct {
		TablesDir string `yaml:"tables_dir"`
		History   string `yaml:"history"`
		Records   string `yaml:"records"`
		TrackerDB string `yaml:"tracker_db"`
		Profile   string `yaml:"profile"`
	} `yaml:"files"`
}

// Load reads the YAML config and applies environment overrides. A
// .env file next to the process, if present, is loaded first so local
// runs can override without touching the config file.
func Load(path string) (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("JOBBOT_DATA_DIR"); v != "" {
		cfg.App.DataDir = v
	}
	if v := os.Getenv("JOBBOT_HEADLESS"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.App.Headless = b
		}
	}
	if v := os.Getenv("JOBBOT_JOB_TITLE"); v != "" {
		cfg.Search.JobTitle = v
	}
	if v := os.Getenv("JOBBOT_MAIL_USERNAME"); v != "" {
		cfg.Mail.Username = v
	}
	if v := os.Getenv("JOBBOT_MAIL_HOST"); v != "" {
		cfg.Mail.IMAPHost = v
	}
	if v := os.Getenv("JOBBOT_MAIL_PORT"); v != "" {
		if p, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			cfg.Mail.IMAPPort = p
		}
	}
}
