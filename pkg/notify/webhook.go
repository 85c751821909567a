// Package notify forwards contact-form leads to a collaboration-suite
// webhook as an interactive card. Leads are relayed, not persisted.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/robostride/website/pkg/config"
)

// ErrNotConfigured indicates no webhook URL is set
var ErrNotConfigured = errors.New("contact webhook not configured")

// Lead is one submitted contact request
type Lead struct {
	Name    string
	Phone   string
	Email   string
	Message string
}

// Webhook posts leads to the configured webhook URL
type Webhook struct {
	url    string
	client *http.Client
}

// NewWebhook creates a webhook notifier
func NewWebhook(cfg config.ContactConfig) *Webhook {
	return &Webhook{
		url:    cfg.WebhookURL,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

type cardText struct {
	Content string `json:"content"`
	Tag     string `json:"tag"`
}

type cardElement struct {
	Tag  string   `json:"tag"`
	Text cardText `json:"text"`
}

type cardMessage struct {
	MsgType string `json:"msg_type"`
	Card    struct {
		Config struct {
			WideScreenMode bool `json:"wide_screen_mode"`
		} `json:"config"`
		Elements []cardElement `json:"elements"`
		Header   struct {
			Title    cardText `json:"title"`
			Template string   `json:"template"`
		} `json:"header"`
	} `json:"card"`
}

// Notify sends one lead as an interactive card
func (w *Webhook) Notify(ctx context.Context, lead Lead) error {
	if w.url == "" {
		return ErrNotConfigured
	}

	email := lead.Email
	if email == "" {
		email = "未提供"
	}

	msg := cardMessage{MsgType: "interactive"}
	msg.Card.Config.WideScreenMode = true
	msg.Card.Header.Title = cardText{Content: "网站咨询表单", Tag: "plain_text"}
	msg.Card.Header.Template = "blue"
	msg.Card.Elements = []cardElement{{
		Tag: "div",
		Text: cardText{
			Content: fmt.Sprintf("**新咨询提交**\n姓名：%s\n电话：%s\n邮箱：%s\n咨询内容：%s",
				lead.Name, lead.Phone, email, lead.Message),
			Tag: "lark_md",
		},
	}}

	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal card: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.client.Do(req)
	if err != nil {
		return fmt.Errorf("webhook request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}
	return nil
}
