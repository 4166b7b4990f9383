package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// Notifier delivers sold-item alerts. A nil-safe no-op implementation is
// returned when no webhook is configured.
type Notifier interface {
	Enabled() bool
	NotifySold(ctx context.Context, sold []string) error
	Send(ctx context.Context, message string) error
}

// Discord posts messages to a Discord webhook.
type Discord struct {
	webhookURL string
	username   string
	client     *http.Client
	logger     *slog.Logger
}

type payload struct {
	Content  string `json:"content"`
	Username string `json:"username"`
}

// Option configures the Discord notifier.
type Option func(*Discord)

// WithClient overrides the HTTP client (tests).
func WithClient(client *http.Client) Option {
	return func(d *Discord) {
		d.client = client
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Discord) {
		d.logger = logger
	}
}

// NewDiscord creates a webhook notifier. An empty webhookURL yields a
// disabled notifier whose methods are no-ops.
func NewDiscord(webhookURL string, opts ...Option) *Discord {
	d := &Discord{
		webhookURL: webhookURL,
		username:   "Trashion Monitor",
		client:     &http.Client{Timeout: 10 * time.Second},
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

var _ Notifier = (*Discord)(nil)

// Enabled reports whether a webhook URL is configured.
func (d *Discord) Enabled() bool {
	return d.webhookURL != ""
}

// NotifySold sends the sold-items alert in the same shape the store staff
// already know: count, IDs, and the reminder to pull them from the rack.
func (d *Discord) NotifySold(ctx context.Context, sold []string) error {
	if len(sold) == 0 {
		return nil
	}
	var b strings.Builder
	fmt.Fprintf(&b, "**%d item(s) sold!**\n\n", len(sold))
	fmt.Fprintf(&b, "**Sold IDs:** %s\n\n", strings.Join(sold, ", "))
	b.WriteString("Remove these from physical store.\n")
	fmt.Fprintf(&b, "Time: %s", time.Now().Format("15:04:05"))
	return d.Send(ctx, b.String())
}

// Send posts a raw message to the webhook. Discord answers 204 on success.
func (d *Discord) Send(ctx context.Context, message string) error {
	if !d.Enabled() {
		return nil
	}

	body, err := json.Marshal(payload{Content: message, Username: d.username})
	if err != nil {
		return fmt.Errorf("failed to marshal webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.webhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send webhook: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusNoContent && resp.StatusCode != http.StatusOK {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}

	d.logger.Debug("notification sent", "bytes", len(body))
	return nil
}
