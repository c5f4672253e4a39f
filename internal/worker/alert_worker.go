package worker

// alert_worker.go
// Processes low-stock alert jobs from QueueStockAlerts: renders a short
// notification email and sends it to the configured supply address. Jobs that
// cannot be delivered go to the dead letter queue for manual inspection —
// low-stock alerting never participates in reordering decisions.

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gobro228/ambulance-site/internal/infra"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// StockAlertWorker sends low-stock notification emails.
type StockAlertWorker struct {
	mailer *infra.Mailer
	to     string
}

// NewStockAlertWorker creates the worker; to is the supply manager address.
func NewStockAlertWorker(mailer *infra.Mailer, to string) *StockAlertWorker {
	return &StockAlertWorker{mailer: mailer, to: to}
}

// Process sends one low-stock alert email.
func (w *StockAlertWorker) Process(ctx context.Context, rdb *redis.Client, raw json.RawMessage) {
	var payload StockAlertPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("alert_worker: invalid payload")
		return
	}
	if w.to == "" {
		log.Warn().Str("item", payload.Name).Msg("alert_worker: no alert address configured — skipping")
		return
	}

	subject := fmt.Sprintf("Low stock: %s", payload.Name)
	body := fmt.Sprintf(
		"Item %s (%s) has dropped to %d units (minimum %d).\nPlease review the warehouse stock.",
		payload.Name, payload.ItemID, payload.Quantity, payload.MinQuantity)

	if err := w.mailer.SendAlert(w.to, subject, body); err != nil {
		log.Error().Err(err).Str("item", payload.Name).Msg("alert_worker: failed to send alert email")
		SendToDLQ(ctx, rdb, QueueStockAlerts, "stock_alert", raw, err.Error(), 1)
		return
	}
	log.Info().Str("item", payload.Name).Int("quantity", payload.Quantity).
		Msg("alert_worker: low-stock alert sent")
}
