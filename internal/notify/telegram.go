// Package notify delivers ranked results through the Telegram Bot API.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

const requestTimeout = 12 * time.Second

// Client sends messages to one Telegram chat.
type Client struct {
	token   string
	chatID  string
	http    *http.Client
	baseURL string
}

func NewClient(token, chatID string) *Client {
	return &Client{
		token:   token,
		chatID:  chatID,
		http:    &http.Client{Timeout: requestTimeout},
		baseURL: "https://api.telegram.org",
	}
}

type sendRequest struct {
	ChatID                string `json:"chat_id"`
	Text                  string `json:"text"`
	ParseMode             string `json:"parse_mode"`
	DisableWebPagePreview bool   `json:"disable_web_page_preview"`
}

type sendResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
}

// Send posts one HTML-mode message. The API's ok/description pair maps
// onto the returned error; failures are not retried.
func (c *Client) Send(ctx context.Context, text string) error {
	if c.token == "" || c.chatID == "" {
		return errors.New("telegram: bot token and chat id are required")
	}

	payload, err := json.Marshal(sendRequest{
		ChatID:                c.chatID,
		Text:                  text,
		ParseMode:             "HTML",
		DisableWebPagePreview: true,
	})
	if err != nil {
		return fmt.Errorf("telegram: encoding request: %w", err)
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", c.baseURL, c.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("telegram: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("telegram: %w", err)
	}
	defer resp.Body.Close()

	var out sendResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return fmt.Errorf("telegram: decoding response: %w", err)
	}
	if !out.OK {
		if out.Description == "" {
			out.Description = "unknown error"
		}
		return fmt.Errorf("telegram: %s", out.Description)
	}
	return nil
}
