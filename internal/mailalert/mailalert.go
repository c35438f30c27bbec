package mailalert

import (
	"context"
	"crypto/tls"
	"fmt"
	"log"
	"regexp"
	"strings"

	"github.com/emersion/go-imap/v2"
	"github.com/emersion/go-imap/v2/imapclient"
)

// Config selects which mailbox to poll and which alert subjects count.
type Config struct {
	Addr        string // host:port
	Username    string
	Password    string
	Mailbox     string   // defaults to INBOX
	SubjectAny  []string // substring match, empty = every unseen message
	MaxMessages int
}

var reURL = regexp.MustCompile(`https?://[^\s<>"']+`)

// FetchLinks pulls unseen job-alert messages and returns every link
// found in their bodies. Matched messages are marked \Seen so the next
// run skips them; non-matching messages are left untouched.
func FetchLinks(ctx context.Context, cfg Config) ([]string, error) {
	c, err := imapclient.DialTLS(cfg.Addr, &imapclient.Options{
		TLSConfig: &tls.Config{MinVersion: tls.VersionTLS12},
	})
	if err != nil {
		return nil, fmt.Errorf("imap dial tls: %w", err)
	}
	defer c.Close()

	if err := c.Login(cfg.Username, cfg.Password).Wait(); err != nil {
		return nil, fmt.Errorf("imap login: %w", err)
	}
	defer func() { _ = c.Logout().Wait() }()

	mailbox := cfg.Mailbox
	if mailbox == "" {
		mailbox = "INBOX"
	}
	if _, err := c.Select(mailbox, &imap.SelectOptions{ReadOnly: false}).Wait(); err != nil {
		return nil, fmt.Errorf("imap select %s: %w", mailbox, err)
	}

	searchData, err := c.UIDSearch(&imap.SearchCriteria{
		NotFlag: []imap.Flag{imap.FlagSeen},
	}, nil).Wait()
	if err != nil {
		return nil, fmt.Errorf("imap search unseen: %w", err)
	}

	uids := searchData.AllUIDs()
	if len(uids) == 0 {
		return nil, nil
	}
	max := cfg.MaxMessages
	if max <= 0 {
		max = 50
	}
	if len(uids) > max {
		uids = uids[len(uids)-max:] // newest UIDs sort last
	}

	// BODY.PEEK[] so fetching alone does not set \Seen.
	bodyAll := &imap.FetchItemBodySection{
		Specifier: imap.PartSpecifierNone,
		Peek:      true,
	}
	fetchCmd := c.Fetch(imap.UIDSetNum(uids...), &imap.FetchOptions{
		UID:         true,
		Envelope:    true,
		BodySection: []*imap.FetchItemBodySection{bodyAll},
	})
	defer func() { _ = fetchCmd.Close() }()

	var (
		links   []string
		matched []imap.UID
	)
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		msg := fetchCmd.Next()
		if msg == nil {
			break
		}
		buf, err := msg.Collect()
		if err != nil {
			return nil, fmt.Errorf("imap fetch collect: %w", err)
		}

		subject := ""
		if buf.Envelope != nil {
			subject = buf.Envelope.Subject
		}
		if !subjectMatches(subject, cfg.SubjectAny) {
			continue
		}

		body := buf.FindBodySection(bodyAll)
		for _, u := range reURL.FindAllString(string(body), -1) {
			links = append(links, trimLink(u))
		}
		matched = append(matched, buf.UID)
	}
	if err := fetchCmd.Close(); err != nil {
		return nil, fmt.Errorf("imap fetch close: %w", err)
	}

	if len(matched) > 0 {
		storeFlags := &imap.StoreFlags{
			Op:     imap.StoreFlagsAdd,
			Silent: true,
			Flags:  []imap.Flag{imap.FlagSeen},
		}
		if err := c.Store(imap.UIDSetNum(matched...), storeFlags, nil).Close(); err != nil {
			log.Printf("[mailalert] mark seen: %v", err)
		}
	}

	return links, nil
}

// trimLink drops trailing punctuation the regex drags in from prose and
// markup around a URL.
func trimLink(u string) string {
	return strings.TrimRight(u, ".,);:]\"'")
}

func subjectMatches(subject string, any []string) bool {
	if len(any) == 0 {
		return true
	}
	s := strings.ToLower(subject)
	for _, a := range any {
		a = strings.ToLower(strings.TrimSpace(a))
		if a != "" && strings.Contains(s, a) {
			return true
		}
	}
	return false
}
