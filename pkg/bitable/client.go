package bitable

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/robostride/website/pkg/config"
)

// Record is one row of the news table. Cells stay raw JSON because the same
// column can hold plain text, attachment arrays or rich-text blobs, the shape
// is decided later by the classifier.
type Record struct {
	ID     string
	Fields map[string]json.RawMessage
}

// MediaDownload is the outcome of one media-download call. Redirects are not
// followed, a 3xx status with Location is reported as-is so the caller can
// pass it through.
type MediaDownload struct {
	StatusCode  int
	Location    string
	ContentType string
	Body        []byte
}

// Client talks to the bitable records and media-download endpoints
type Client struct {
	cfg      config.BitableConfig
	tokens   *TokenClient
	pageSize int

	records *http.Client
	media   *http.Client // no redirect following, media timeout
}

// NewClient creates a client for the given source configuration
func NewClient(cfg config.BitableConfig, tokens *TokenClient, pageSize int) *Client {
	return &Client{
		cfg:      cfg,
		tokens:   tokens,
		pageSize: pageSize,
		records:  &http.Client{Timeout: cfg.RecordsTimeout},
		media: &http.Client{
			Timeout: cfg.MediaTimeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

type recordsResponse struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data struct {
		Items []struct {
			RecordID string                     `json:"record_id"`
			Fields   map[string]json.RawMessage `json:"fields"`
		} `json:"items"`
	} `json:"data"`
}

// ListRecords fetches up to pageSize rows from the news table. Only the first
// page is fetched, larger tables are truncated.
func (c *Client) ListRecords(ctx context.Context) ([]Record, error) {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/open-apis/bitable/v1/apps/%s/tables/%s/records",
		c.cfg.BaseURL, url.PathEscape(c.cfg.AppToken), url.PathEscape(c.cfg.TableID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create records request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	q := req.URL.Query()
	q.Set("page_size", strconv.Itoa(c.pageSize))
	req.URL.RawQuery = q.Encode()

	resp, err := c.records.Do(req)
	if err != nil {
		return nil, fmt.Errorf("records request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("records endpoint returned status %d", resp.StatusCode)
	}

	var res recordsResponse
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return nil, fmt.Errorf("decode records response: %w", err)
	}
	if res.Code != 0 {
		return nil, fmt.Errorf("records endpoint returned code %d: %s", res.Code, res.Msg)
	}

	records := make([]Record, 0, len(res.Data.Items))
	for _, item := range res.Data.Items {
		records = append(records, Record{ID: item.RecordID, Fields: item.Fields})
	}
	return records, nil
}

// DownloadMedia calls the authenticated media-download endpoint for the given
// storage token. Token acquisition errors keep their identity (ErrConfig,
// ErrAuth) so the proxy can distinguish auth failures from missing media.
func (c *Client) DownloadMedia(ctx context.Context, fileToken string) (*MediaDownload, error) {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/open-apis/drive/v1/medias/%s/download", c.cfg.BaseURL, url.PathEscape(fileToken))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create media request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.media.Do(req)
	if err != nil {
		return nil, fmt.Errorf("media request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read media body: %w", err)
	}

	return &MediaDownload{
		StatusCode:  resp.StatusCode,
		Location:    resp.Header.Get("Location"),
		ContentType: resp.Header.Get("Content-Type"),
		Body:        body,
	}, nil
}
