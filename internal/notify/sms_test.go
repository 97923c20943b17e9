package notify

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bollettelab/bollette-tracker/constants"
	"github.com/bollettelab/bollette-tracker/internal/entity"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sampleBatch() entity.BatchResult {
	cost := 0.25
	return entity.BatchResult{Documents: []entity.DocumentResult{
		{Filename: "luce.pdf", BillType: constants.BillTypeLuce, CostPerUnit: &cost, MeanConfidence: 90},
		{Filename: "boh.png", BillType: constants.BillTypeUnknown},
	}}
}

func TestGatewayNotifierSendsPayload(t *testing.T) {
	var got gatewayPayload
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		auth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	n := NewNotifier(Config{
		GatewayURL: srv.URL,
		Token:      "sekret",
		Sender:     "BolletteTracker",
	}, testLogger())

	if err := n.SendConfirmation(context.Background(), "+39 333 1234567", sampleBatch()); err != nil {
		t.Fatalf("SendConfirmation: %v", err)
	}
	if auth != "Bearer sekret" {
		t.Errorf("Authorization = %q, want Bearer sekret", auth)
	}
	if got.To != "+39 333 1234567" {
		t.Errorf("to = %q", got.To)
	}
	if got.From != "BolletteTracker" {
		t.Errorf("from = %q", got.From)
	}
	if !strings.Contains(got.Text, "LUCE") || !strings.Contains(got.Text, "tipo non riconosciuto") {
		t.Errorf("text does not summarize the batch: %q", got.Text)
	}
}

func TestGatewayNotifierRejectsNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	n := NewNotifier(Config{GatewayURL: srv.URL}, testLogger())
	if err := n.SendConfirmation(context.Background(), "+391234567890", sampleBatch()); err == nil {
		t.Fatal("SendConfirmation accepted a 502 response")
	}
}

func TestNoopNotifierWhenUnconfigured(t *testing.T) {
	n := NewNotifier(Config{}, testLogger())
	if err := n.SendConfirmation(context.Background(), "+391234567890", sampleBatch()); err != nil {
		t.Fatalf("noop notifier returned error: %v", err)
	}
}

func TestConfirmationText(t *testing.T) {
	got := ConfirmationText(sampleBatch())
	if !strings.HasPrefix(got, "Bolletta ricevuta.") {
		t.Errorf("text = %q, missing greeting", got)
	}
	if !strings.Contains(got, "documento 1: LUCE, 0.2500 €/kWh") {
		t.Errorf("text = %q, missing priced document line", got)
	}
	if !strings.Contains(got, "documento 2: tipo non riconosciuto") {
		t.Errorf("text = %q, missing unknown document line", got)
	}
}

func TestConfirmationTextGasUnit(t *testing.T) {
	cost := 1.1
	got := ConfirmationText(entity.BatchResult{Documents: []entity.DocumentResult{
		{Filename: "gas.pdf", BillType: constants.BillTypeGas, CostPerUnit: &cost},
	}})
	if !strings.Contains(got, "GAS, 1.1000 €/mc") {
		t.Errorf("text = %q, want gas unit", got)
	}
}
