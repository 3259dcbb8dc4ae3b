package telegram

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		// Idle HTTP transport goroutines outlive the tests by design.
		goleak.IgnoreTopFunction("internal/poll.runtime_pollWait"),
	)
}

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := New(Config{
		Token:   "test-token",
		ChatID:  "12345",
		BaseURL: server.URL,
	}, server.Client())
	t.Cleanup(client.Close)

	return client
}

func TestFromEnv(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "")
	t.Setenv("TELEGRAM_CHAT_ID", "")
	_, err := FromEnv()
	assert.ErrorIs(t, err, ErrMissingToken)

	t.Setenv("TELEGRAM_BOT_TOKEN", "tok")
	_, err = FromEnv()
	assert.ErrorIs(t, err, ErrMissingChatID)

	t.Setenv("TELEGRAM_CHAT_ID", "42")
	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "tok", cfg.Token)
	assert.Equal(t, "42", cfg.ChatID)
}

func TestSendMessage(t *testing.T) {
	var gotPath string
	var gotBody map[string]any

	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_ = json.NewEncoder(w).Encode(map[string]any{"ok": true, "result": map[string]any{"message_id": 1}})
	})

	err := client.SendMessage(context.Background(), "interference restored")
	require.NoError(t, err)

	assert.Equal(t, "/bottest-token/sendMessage", gotPath)
	assert.Equal(t, "12345", gotBody["chat_id"])
	assert.Equal(t, "interference restored", gotBody["text"])
}

func TestSendMessageAPIError(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"ok":          false,
			"error_code":  401,
			"description": "Unauthorized",
		})
	})

	err := client.SendMessage(context.Background(), "hi")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 401, apiErr.Code)
	assert.Equal(t, "Unauthorized", apiErr.Description)
}

func TestGetUpdates(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bottest-token/getUpdates", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"ok": true,
			"result": []map[string]any{
				{"update_id": 7, "message": map[string]any{"text": "erase", "chat": map[string]any{"id": 12345}}},
			},
		})
	})

	updates, err := client.GetUpdates(context.Background(), 0, 1)
	require.NoError(t, err)
	require.Len(t, updates, 1)

	assert.Equal(t, int64(7), updates[0].UpdateID)
	require.NotNil(t, updates[0].Message)
	assert.Equal(t, "erase", updates[0].Message.Text)
}

func TestAwaitCommand(t *testing.T) {
	calls := 0
	client := testClient(t, func(w http.ResponseWriter, _ *http.Request) {
		calls++
		var result []map[string]any
		switch calls {
		case 1:
			// unrelated chatter first
			result = []map[string]any{
				{"update_id": 1, "message": map[string]any{"text": "hello?"}},
			}
		default:
			result = []map[string]any{
				{"update_id": 2, "message": map[string]any{"text": "keep"}},
			}
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"ok": true, "result": result})
	})

	got, err := client.AwaitCommand(context.Background(), "erase", "keep")
	require.NoError(t, err)
	assert.Equal(t, "keep", got)
	assert.GreaterOrEqual(t, calls, 2)
}

func TestAwaitCommandCancelled(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"ok": true, "result": []map[string]any{}})
	})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := client.AwaitCommand(ctx, "erase")
	assert.Error(t, err)
}
