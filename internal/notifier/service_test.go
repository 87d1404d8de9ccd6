package notifier

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/ariefcatur/go-shop-checkout.git/internal/checkout"
	kafkax "github.com/ariefcatur/go-shop-checkout.git/internal/kafka"
	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"
)

func newTestService() *Service {
	// redis mati: dedup & cache jadi best-effort, handler tetap jalan
	return &Service{
		Redis: redis.NewClient(&redis.Options{
			Addr:        "127.0.0.1:1",
			DialTimeout: 50 * time.Millisecond,
		}),
		Log:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		ServiceName: "test-notifier",
	}
}

func completedEnvelope() checkout.Envelope {
	return checkout.Envelope{
		EventID:       "ev-1",
		EventType:     checkout.EventCheckoutCompleted,
		EventVersion:  1,
		OccurredAt:    time.Now().UTC(),
		Producer:      "checkout-api",
		CorrelationID: "uid-1",
		Payload: kafkax.MustMarshal(checkout.CheckoutCompletedPayload{
			OrderUID:    "uid-1",
			OrderNumber: "ORD-230617000001",
			CustomerID:  1,
			Status:      checkout.StatusPaymentVerification,
			TotalPrice:  180,
			Items:       []checkout.CheckoutItem{{ProductID: 7, Quantity: 2, Price: 180}},
		}),
	}
}

func TestHandleCheckoutCompleted(t *testing.T) {
	s := newTestService()
	m := kafkago.Message{Value: kafkax.MustMarshal(completedEnvelope())}
	require.NoError(t, s.HandleCheckoutCompleted(context.Background(), m))
}

func TestHandleIgnoresOtherEvents(t *testing.T) {
	s := newTestService()
	env := completedEnvelope()
	env.EventType = "SomethingElse"
	m := kafkago.Message{Value: kafkax.MustMarshal(env)}
	require.NoError(t, s.HandleCheckoutCompleted(context.Background(), m))
}

func TestHandleRejectsBrokenMessage(t *testing.T) {
	s := newTestService()
	require.Error(t, s.HandleCheckoutCompleted(context.Background(),
		kafkago.Message{Value: []byte("{broken")}))
}
