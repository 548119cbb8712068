package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// DeepLink builds the viber keypad deep link for a Philippine number. The
// keypad scheme is the most reliable way to open a chat with a number that
// has not subscribed to a bot.
func DeepLink(number string) string {
	return "viber://keypad?number=" + InternationalNumber(number)
}

// InternationalNumber normalizes a local Philippine number ("09XXXXXXXXX")
// to international form without the plus sign, as the Viber APIs expect.
func InternationalNumber(number string) string {
	number = strings.TrimSpace(number)
	number = strings.TrimPrefix(number, "+")
	if strings.HasPrefix(number, "0") {
		return "63" + number[1:]
	}
	return number
}

// BotAPI posts messages through the Viber bot API. The recipient must have
// subscribed to the bot; failures are expected and handled by the caller's
// fallback.
type BotAPI struct {
	Endpoint  string
	Token     string
	Recipient string
	Client    *http.Client
}

type botMessage struct {
	Receiver string `json:"receiver"`
	Type     string `json:"type"`
	Text     string `json:"text"`
}

type botResponse struct {
	Status        int    `json:"status"`
	StatusMessage string `json:"status_message"`
}

// Deliver implements Channel.
func (b *BotAPI) Deliver(ctx context.Context, text string) error {
	if b.Token == "" {
		return fmt.Errorf("notify: viber bot token not configured")
	}

	payload, err := json.Marshal(botMessage{
		Receiver: InternationalNumber(b.Recipient),
		Type:     "text",
		Text:     text,
	})
	if err != nil {
		return fmt.Errorf("notify: encode message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.Endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("notify: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Viber-Auth-Token", b.Token)

	client := b.Client
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("notify: send: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("notify: viber api returned %d", resp.StatusCode)
	}
	var parsed botResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return fmt.Errorf("notify: decode response: %w", err)
	}
	// Viber signals errors in-band with a non-zero status.
	if parsed.Status != 0 {
		return fmt.Errorf("notify: viber rejected message: %s", parsed.StatusMessage)
	}
	return nil
}
