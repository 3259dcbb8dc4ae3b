// Package telegram is a thin client for the pieces of the Bot API the
// repo uses: sending a message to a fixed chat and long-polling updates.
// No retries; a failed call is the caller's problem, matching the
// fire-and-forget scripts this grew out of.
package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/pkg/errors"
)

const defaultBaseURL = "https://api.telegram.org"

// APIError is a Bot API level failure (HTTP succeeded, ok=false).
type APIError struct {
	Code        int
	Description string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("telegram api error %d: %s", e.Code, e.Description)
}

// Update is one entry from getUpdates; only the fields the repo reads.
type Update struct {
	UpdateID int64 `json:"update_id"`
	Message  *struct {
		Text string `json:"text"`
		Chat struct {
			ID int64 `json:"id"`
		} `json:"chat"`
	} `json:"message"`
}

// Client talks to the Bot API for one bot and one chat.
type Client struct {
	cfg        Config
	baseURL    string
	httpClient *http.Client
}

// New creates a client. A nil httpClient gets the default transport.
func New(cfg Config, httpClient *http.Client) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if httpClient == nil {
		httpClient = newHTTPClient()
	}

	return &Client{
		cfg:        cfg,
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

// Close releases idle connections.
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

// SendMessage posts text to the configured chat.
func (c *Client) SendMessage(ctx context.Context, text string) error {
	payload := map[string]any{
		"chat_id": c.cfg.ChatID,
		"text":    text,
	}

	var ignored json.RawMessage

	return c.call(ctx, "sendMessage", payload, &ignored)
}

// GetUpdates long-polls for updates after offset. timeoutSec is the
// server-side hold; the passed context still bounds the whole call.
func (c *Client) GetUpdates(ctx context.Context, offset int64, timeoutSec int) ([]Update, error) {
	payload := map[string]any{
		"offset":  offset,
		"timeout": timeoutSec,
	}

	var updates []Update
	if err := c.call(ctx, "getUpdates", payload, &updates); err != nil {
		return nil, err
	}

	return updates, nil
}

type apiResponse struct {
	OK          bool            `json:"ok"`
	Result      json.RawMessage `json:"result"`
	Description string          `json:"description"`
	ErrorCode   int             `json:"error_code"`
}

func (c *Client) call(ctx context.Context, method string, payload any, result any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return errors.Wrapf(err, "unable to encode %s payload", method)
	}

	url := fmt.Sprintf("%s/bot%s/%s", c.baseURL, c.cfg.Token, method)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return errors.Wrapf(err, "unable to build %s request", method)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "unable to call %s", method)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return errors.Wrapf(err, "unable to read %s response", method)
	}

	var apiResp apiResponse
	if err := json.Unmarshal(raw, &apiResp); err != nil {
		return errors.Wrapf(err, "unable to decode %s response (status %d)", method, resp.StatusCode)
	}

	if !apiResp.OK {
		return errors.Wrapf(&APIError{
			Code:        apiResp.ErrorCode,
			Description: apiResp.Description,
		}, "%s failed", method)
	}

	if result != nil && len(apiResp.Result) > 0 {
		if err := json.Unmarshal(apiResp.Result, result); err != nil {
			return errors.Wrapf(err, "unable to decode %s result", method)
		}
	}

	return nil
}

// AwaitCommand polls until a message matching one of commands arrives,
// returning the matched text. The context bounds the wait.
func (c *Client) AwaitCommand(ctx context.Context, commands ...string) (string, error) {
	wanted := make(map[string]struct{}, len(commands))
	for _, cmd := range commands {
		wanted[cmd] = struct{}{}
	}

	var offset int64
	for {
		if err := ctx.Err(); err != nil {
			return "", errors.Wrap(err, "await interrupted")
		}

		updates, err := c.GetUpdates(ctx, offset, 25)
		if err != nil {
			return "", err
		}

		for _, upd := range updates {
			if upd.UpdateID >= offset {
				offset = upd.UpdateID + 1
			}
			if upd.Message == nil {
				continue
			}
			if _, ok := wanted[upd.Message.Text]; ok {
				return upd.Message.Text, nil
			}
		}
	}
}
