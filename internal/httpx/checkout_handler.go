package httpx

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/ariefcatur/go-shop-checkout.git/internal/checkout"
	kafkax "github.com/ariefcatur/go-shop-checkout.git/internal/kafka"
	"github.com/ariefcatur/go-shop-checkout.git/internal/redisx"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"
)

type CheckoutService interface {
	Checkout(ctx context.Context, customerID int64, in checkout.CheckoutInput) (*checkout.Result, error)
}

type StatusReader interface {
	OrderStatusByUID(ctx context.Context, orderUID string) (checkout.Status, string, error)
}

// CheckoutReq: nama field JSON ngikutin form storefront apa adanya
// (campur camel/snake, jangan dirapikan, client lama bergantung ke ini).
type CheckoutReq struct {
	CustomerID    int64  `json:"customer_id"`
	PaymentMethod string `json:"paymentMethod"`
	Total         int64  `json:"total"`
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	CityName      string `json:"city_name"`
	ProvinceName  string `json:"province_name"`
	DistrictName  string `json:"district_name"`
	PostalCode    string `json:"postal_code"`
	Expedition    string `json:"expedition"`
	Parcel        string `json:"parcel"`
	DeliveryCost  int64  `json:"deliveryCost"`
	Weight        int    `json:"weight"`
}

type CheckoutResp struct {
	OrderUID string `json:"order_uid"`
	Success  bool   `json:"success"`
}

type CheckoutHandler struct {
	Service  CheckoutService
	Statuses StatusReader
	Producer *kafkax.Producer
	Redis    *redis.Client
	Name     string // producer name utk envelope
}

func (h *CheckoutHandler) Register(r *chi.Mux) {
	r.Post("/checkout", h.doCheckout)
	r.Get("/orders/{uid}", h.getOrder)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (h *CheckoutHandler) doCheckout(w http.ResponseWriter, r *http.Request) {
	var req CheckoutReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}
	if req.CustomerID <= 0 || req.PaymentMethod == "" || req.Total <= 0 ||
		req.Name == "" || req.Phone == "" || req.Address == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "missing fields"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	res, err := h.Service.Checkout(ctx, req.CustomerID, checkout.CheckoutInput{
		PaymentMethod: req.PaymentMethod,
		Total:         req.Total,
		Name:          req.Name,
		Phone:         req.Phone,
		Address:       req.Address,
		CityName:      req.CityName,
		ProvinceName:  req.ProvinceName,
		DistrictName:  req.DistrictName,
		PostalCode:    req.PostalCode,
		Expedition:    req.Expedition,
		Parcel:        req.Parcel,
		DeliveryCost:  req.DeliveryCost,
		Weight:        req.Weight,
	})
	if err != nil {
		// pesan generik; penyebab asli sudah dicatat service
		writeJSON(w, http.StatusInternalServerError,
			map[string]string{"error": checkout.ErrCheckoutFailed.Error()})
		return
	}

	// cache status biar GET /orders/{uid} langsung kena
	statusKey := fmt.Sprintf(redisx.KeyOrderStatus, res.OrderUID)
	body, _ := json.Marshal(map[string]any{
		"status":       res.Status,
		"order_number": res.OrderNumber,
	})
	_ = h.Redis.Set(ctx, statusKey, body, redisx.TTLStatusCache).Err()

	h.publishCompleted(res, r.Header.Get("X-Request-Id"))

	writeJSON(w, http.StatusCreated, CheckoutResp{OrderUID: res.OrderUID, Success: true})
}

// publishCompleted jalan setelah commit; gagal publish tidak membatalkan
// checkout (event bisa di-replay dari DB).
func (h *CheckoutHandler) publishCompleted(res *checkout.Result, trace string) {
	ev := checkout.Envelope{
		EventID:       uuid.NewString(),
		EventType:     checkout.EventCheckoutCompleted,
		EventVersion:  1,
		OccurredAt:    time.Now().UTC(),
		Producer:      h.Name,
		TraceID:       trace,
		CorrelationID: res.OrderUID,
		Payload: kafkax.MustMarshal(checkout.CheckoutCompletedPayload{
			OrderUID:      res.OrderUID,
			OrderNumber:   res.OrderNumber,
			CustomerID:    res.CustomerID,
			Status:        res.Status,
			PaymentMethod: res.PaymentMethod,
			TotalPrice:    res.TotalPrice,
			Items:         res.Items,
		}),
	}
	h.Producer.Publish(checkout.PartitionKey(res.OrderUID), kafkax.MustMarshal(ev),
		kafkago.Header{Key: "x-event-type", Value: []byte(checkout.EventCheckoutCompleted)},
		kafkago.Header{Key: "x-event-version", Value: []byte("1")},
	)
}

func (h *CheckoutHandler) getOrder(w http.ResponseWriter, r *http.Request) {
	orderUID := chi.URLParam(r, "uid")
	if orderUID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "missing uid"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	// 1) coba cache
	key := fmt.Sprintf(redisx.KeyOrderStatus, orderUID)
	if s, err := h.Redis.Get(ctx, key).Result(); err == nil && s != "" {
		writeJSON(w, http.StatusOK, json.RawMessage(s))
		return
	}

	// 2) fallback DB
	status, number, err := h.Statuses.OrderStatusByUID(ctx, orderUID)
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
		return
	}
	b, _ := json.Marshal(map[string]any{"status": status, "order_number": number})
	_ = h.Redis.Set(ctx, key, b, redisx.TTLStatusCache).Err()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(b)
}
