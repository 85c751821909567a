package news

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/robostride/website/pkg/bitable"
	"github.com/robostride/website/pkg/config"
)

// RecordLister is the slice of the bitable client the service needs
type RecordLister interface {
	ListRecords(ctx context.Context) ([]bitable.Record, error)
}

// Service fetches the news feed from the bitable source and normalizes it.
// Every failure is absorbed here, pages always render a valid (possibly
// empty) feed.
type Service struct {
	cfg    config.BitableConfig
	client RecordLister
	norm   *Normalizer
}

// NewService creates a news service over the given record source
func NewService(cfg config.BitableConfig, client RecordLister) *Service {
	return &Service{cfg: cfg, client: client, norm: NewNormalizer()}
}

// FetchAll returns all normalized news items. Missing configuration, token
// failures and upstream errors are logged and yield an empty slice, never an
// error.
func (s *Service) FetchAll(ctx context.Context) []Item {
	if err := s.checkConfig(); err != nil {
		log.Printf("[WARN] news feed disabled: %v", err)
		return []Item{}
	}

	records, err := s.client.ListRecords(ctx)
	if err != nil {
		log.Printf("[WARN] news fetch failed: %v", err)
		return []Item{}
	}

	items := make([]Item, 0, len(records))
	for _, rec := range records {
		item := s.norm.Normalize(rec)
		if item.Title == "" {
			continue // title-less rows are drafts or junk
		}
		items = append(items, item)
	}

	log.Printf("[DEBUG] fetched %d news items (%d records)", len(items), len(records))
	return items
}

func (s *Service) checkConfig() error {
	var missing []string
	if s.cfg.AppID == "" {
		missing = append(missing, "app_id")
	}
	if s.cfg.AppSecret == "" {
		missing = append(missing, "app_secret")
	}
	if s.cfg.AppToken == "" {
		missing = append(missing, "app_token")
	}
	if s.cfg.TableID == "" {
		missing = append(missing, "table_id")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", bitable.ErrConfig, strings.Join(missing, ", "))
	}
	return nil
}
