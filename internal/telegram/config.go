package telegram

import (
	"net"
	"net/http"
	"os"
	"time"

	"github.com/pkg/errors"
)

var (
	ErrMissingToken  = errors.New("TELEGRAM_BOT_TOKEN must be set")
	ErrMissingChatID = errors.New("TELEGRAM_CHAT_ID must be set")
)

// Config carries the bot credentials. They come from the environment only;
// no config file ever stores them.
type Config struct {
	Token  string
	ChatID string

	// BaseURL overrides the Bot API endpoint, for tests.
	BaseURL string
}

// FromEnv reads the bot credentials from the environment.
func FromEnv() (Config, error) {
	token := os.Getenv("TELEGRAM_BOT_TOKEN")
	if token == "" {
		return Config{}, ErrMissingToken
	}

	chatID := os.Getenv("TELEGRAM_CHAT_ID")
	if chatID == "" {
		return Config{}, ErrMissingChatID
	}

	return Config{Token: token, ChatID: chatID}, nil
}

// newHTTPClient builds a client with explicit transport timeouts. The
// overall request timeout is left to the caller's context so long-polling
// GetUpdates is not cut off.
func newHTTPClient() *http.Client {
	dialer := &net.Dialer{
		Timeout:   5 * time.Second,
		KeepAlive: 30 * time.Second,
	}

	tr := &http.Transport{
		Proxy:       http.ProxyFromEnvironment,
		DialContext: dialer.DialContext,

		ForceAttemptHTTP2: true,

		MaxIdleConns:        10,
		MaxIdleConnsPerHost: 2,
		IdleConnTimeout:     90 * time.Second,

		TLSHandshakeTimeout:   5 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}

	return &http.Client{Transport: tr}
}
