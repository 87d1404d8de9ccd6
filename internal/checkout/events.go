package checkout

import (
	"encoding/json"
	"time"
)

const EventCheckoutCompleted = "CheckoutCompleted"

type Envelope struct {
	EventID       string          `json:"event_id"`      // uuid
	EventType     string          `json:"event_type"`    // const di atas
	EventVersion  int             `json:"event_version"` // 1
	OccurredAt    time.Time       `json:"occurred_at"`   // RFC3339
	Producer      string          `json:"producer"`      // e.g., "checkout-api"
	TraceID       string          `json:"trace_id,omitempty"`
	CorrelationID string          `json:"correlation_id,omitempty"` // order_uid
	Payload       json.RawMessage `json:"payload"`
}

type CheckoutItem struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
	Price     int64 `json:"price"` // subtotal line, sudah net diskon
}

type CheckoutCompletedPayload struct {
	OrderUID      string         `json:"order_uid"`
	OrderNumber   string         `json:"order_number"`
	CustomerID    int64          `json:"customer_id"`
	Status        Status         `json:"status"`
	PaymentMethod string         `json:"payment_method"`
	TotalPrice    int64          `json:"total_price"`
	Items         []CheckoutItem `json:"items"`
}
