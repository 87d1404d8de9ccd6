package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/ariefcatur/go-shop-checkout.git/internal/checkout"
	kafkax "github.com/ariefcatur/go-shop-checkout.git/internal/kafka"
	"github.com/ariefcatur/go-shop-checkout.git/internal/redisx"
	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"
)

// Service sisi fulfillment: dengerin CheckoutCompleted, hangatkan cache
// status order, dan catat konfirmasi buat tim operasional.
type Service struct {
	Redis       *redis.Client
	Log         *slog.Logger
	ServiceName string
}

// HandleCheckoutCompleted dipasang sebagai handler consumer.
func (s *Service) HandleCheckoutCompleted(ctx context.Context, m kafkago.Message) error {
	var env checkout.Envelope
	if err := kafkax.UnmarshalEnvelope(m.Value, &env); err != nil {
		return err
	}
	if env.EventType != checkout.EventCheckoutCompleted {
		return nil // ignore
	}

	// dedup via Redis (pakai event_id)
	dkey := fmt.Sprintf(redisx.KeyDedup, "notifier", env.EventID)
	exists, _ := redisx.Exists(ctx, s.Redis, dkey)
	if exists {
		return nil
	}
	_ = s.Redis.Set(ctx, dkey, "1", redisx.TTLDedup).Err()

	p, err := kafkax.UnwrapPayload[checkout.CheckoutCompletedPayload](env.Payload)
	if err != nil {
		return err
	}

	statusKey := fmt.Sprintf(redisx.KeyOrderStatus, p.OrderUID)
	body, _ := json.Marshal(map[string]any{
		"status":       p.Status,
		"order_number": p.OrderNumber,
	})
	_ = s.Redis.Set(ctx, statusKey, body, redisx.TTLStatusCache).Err()

	s.Log.Info("order confirmed",
		"order_uid", p.OrderUID,
		"order_number", p.OrderNumber,
		"customer_id", p.CustomerID,
		"status", p.Status,
		"total_price", p.TotalPrice,
		"items", len(p.Items),
	)
	return nil
}
