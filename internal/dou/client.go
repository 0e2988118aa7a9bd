package dou

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// journalURL is the Imprensa Nacional reading endpoint. It usually
// answers JSON, but the format is undocumented and changes without
// notice; everything downstream treats the body as untrusted.
const journalURL = "https://www.in.gov.br/leiturajornal"

const (
	requestTimeout = 18 * time.Second
	sectionDelay   = 200 * time.Millisecond
)

// Client collects gazette items from the reading endpoint.
type Client struct {
	http    *http.Client
	baseURL string
	delay   time.Duration
}

func NewClient() *Client {
	return &Client{
		http:    &http.Client{Timeout: requestTimeout},
		baseURL: journalURL,
		delay:   sectionDelay,
	}
}

// Collect fetches and parses every requested section for one date. A
// section that fails in any way (transport error, non-200 status,
// unusable body) contributes no items; the remaining sections are still
// fetched. Requests are spaced by a short delay to go easy on the
// upstream.
func (c *Client) Collect(ctx context.Context, date time.Time, sections []string) []Item {
	queryDate := date.Format("2006-01-02")
	displayDate := date.Format("02/01/2006")

	var items []Item
	for i, section := range sections {
		if i > 0 && c.delay > 0 {
			select {
			case <-time.After(c.delay):
			case <-ctx.Done():
				return items
			}
		}

		payload, err := c.fetchSection(ctx, queryDate, section)
		if err != nil || len(payload) == 0 {
			continue
		}
		items = append(items, parsePayload(payload, displayDate, section)...)
	}
	return normalize(items)
}

func (c *Client) fetchSection(ctx context.Context, date, section string) (map[string]any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return nil, err
	}
	q := req.URL.Query()
	q.Set("data", date)
	q.Set("secao", strings.ToLower(section))
	req.URL.RawQuery = q.Encode()

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching section %s: status %d", section, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	return decodePayload(body), nil
}

// decodePayload decodes a response body into a JSON object. Bodies that
// fail the first decode get a second pass when the trimmed text still
// looks like a single object; anything else decodes to nil, which the
// caller treats as "no data for this section".
func decodePayload(body []byte) map[string]any {
	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err == nil {
		return payload
	}

	txt := strings.TrimSpace(string(body))
	if strings.HasPrefix(txt, "{") && strings.HasSuffix(txt, "}") {
		if err := json.Unmarshal([]byte(txt), &payload); err == nil {
			return payload
		}
	}
	return nil
}
