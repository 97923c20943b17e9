package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/bollettelab/bollette-tracker/constants"
	"github.com/bollettelab/bollette-tracker/internal/entity"
)

// Notifier delivers a confirmation message after a submission was processed.
// Delivery failure never rolls back already-persisted results; callers log
// the error and move on.
type Notifier interface {
	SendConfirmation(ctx context.Context, phone string, batch entity.BatchResult) error
}

type Config struct {
	GatewayURL string
	Token      string
	Sender     string
	Timeout    time.Duration
}

// NewNotifier returns a gateway-backed notifier, or a logging no-op when no
// gateway is configured (local and test setups).
func NewNotifier(cfg Config, logger *slog.Logger) Notifier {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.GatewayURL == "" {
		logger.Warn("SMS gateway not configured, confirmations will only be logged")
		return &noopNotifier{logger: logger}
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &gatewayNotifier{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}
}

type gatewayNotifier struct {
	cfg    Config
	client *http.Client
	logger *slog.Logger
}

type gatewayPayload struct {
	To   string `json:"to"`
	From string `json:"from"`
	Text string `json:"text"`
}

func (n *gatewayNotifier) SendConfirmation(ctx context.Context, phone string, batch entity.BatchResult) error {
	body, err := json.Marshal(gatewayPayload{
		To:   phone,
		From: n.cfg.Sender,
		Text: ConfirmationText(batch),
	})
	if err != nil {
		return fmt.Errorf("marshal sms payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.cfg.GatewayURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build sms request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if n.cfg.Token != "" {
		req.Header.Set("Authorization", "Bearer "+n.cfg.Token)
	}

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("sms gateway: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("sms gateway returned %s", resp.Status)
	}

	n.logger.Info("sms confirmation sent", "phone", phone, "documents", len(batch.Documents))
	return nil
}

type noopNotifier struct {
	logger *slog.Logger
}

func (n *noopNotifier) SendConfirmation(_ context.Context, phone string, batch entity.BatchResult) error {
	n.logger.Info("sms confirmation (noop)", "phone", phone, "text", ConfirmationText(batch))
	return nil
}

// ConfirmationText renders the user-facing summary of a processed submission.
func ConfirmationText(batch entity.BatchResult) string {
	var b strings.Builder
	b.WriteString("Bolletta ricevuta. ")
	for i, d := range batch.Documents {
		if i > 0 {
			b.WriteString("; ")
		}
		if d.BillType == constants.BillTypeUnknown {
			b.WriteString(fmt.Sprintf("documento %d: tipo non riconosciuto", i+1))
			continue
		}
		if d.CostPerUnit != nil {
			b.WriteString(fmt.Sprintf("documento %d: %s, %.4f %s", i+1, d.BillType, *d.CostPerUnit, unitFor(d.BillType)))
		} else {
			b.WriteString(fmt.Sprintf("documento %d: %s", i+1, d.BillType))
		}
	}
	return b.String()
}

func unitFor(bt constants.BillType) string {
	switch bt {
	case constants.BillTypeGas:
		return "€/mc"
	case constants.BillTypeLuce:
		return "€/kWh"
	default:
		return "€/unità"
	}
}
