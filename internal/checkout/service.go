package checkout

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Result dikembalikan setelah checkout commit; cukup buat response HTTP
// dan payload event CheckoutCompleted.
type Result struct {
	OrderUID      string
	OrderNumber   string
	CustomerID    int64
	Status        Status
	PaymentMethod string
	TotalPrice    int64
	Items         []CheckoutItem
}

type Service struct {
	Store Store
	Log   *slog.Logger
	Now   func() time.Time // injectable buat test
}

func NewService(store Store, log *slog.Logger) *Service {
	return &Service{Store: store, Log: log, Now: time.Now}
}

// Checkout menjalankan seluruh proses dalam satu transaksi: update profil
// customer, buat order + nomor order, shipping detail, lalu per cart line
// kurangi stok, buat order detail, hapus line. Gagal di mana pun, semua
// write batal. Penyebab asli cuma masuk log; caller selalu dapat
// ErrCheckoutFailed.
func (s *Service) Checkout(ctx context.Context, customerID int64, in CheckoutInput) (*Result, error) {
	res, err := s.run(ctx, customerID, in)
	if err != nil {
		s.Log.Error("checkout failed", "customer_id", customerID, "cause", err)
		return nil, ErrCheckoutFailed
	}
	return res, nil
}

func (s *Service) run(ctx context.Context, customerID int64, in CheckoutInput) (*Result, error) {
	now := s.Now()

	tx, err := s.Store.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin checkout tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := tx.UpdateCustomer(ctx, customerID, in); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCustomerUpdateFailed, err)
	}

	seq, err := tx.NextOrderSeq(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("allocate order number: %w", err)
	}
	if seq > MaxDailySequence {
		return nil, fmt.Errorf("%w: seq=%d", ErrOrderNumberExhausted, seq)
	}

	order := &Order{
		OrderUID:           uuid.NewString(),
		CustomerID:         customerID,
		OrderNumber:        FormatOrderNumber(now, seq),
		OrderDate:          now,
		Status:             StatusForPayment(in.PaymentMethod),
		OrderType:          in.PaymentMethod,
		TotalPrice:         in.Total,
		ReceiverName:       in.Name,
		ReceiverPhone:      in.Phone,
		ShippingAddress:    in.Address,
		ShippingCity:       in.CityName,
		ShippingProvince:   in.ProvinceName,
		ShippingDistrict:   in.DistrictName,
		ShippingPostalCode: in.PostalCode,
	}
	if err := tx.InsertOrder(ctx, order); err != nil {
		return nil, fmt.Errorf("insert order: %w", err)
	}

	sd := &ShippingDetail{
		OrderID:      order.ID,
		Expedition:   in.Expedition,
		Parcel:       in.Parcel,
		DeliveryCost: in.DeliveryCost,
		Weight:       in.Weight,
	}
	if err := tx.InsertShippingDetail(ctx, sd); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrShippingDetailFailed, err)
	}

	lines, err := tx.CartLines(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("read cart: %w", err)
	}

	items := make([]CheckoutItem, 0, len(lines))
	for _, line := range lines {
		// stok duluan; begitu lolos, line ini dianggap komit
		if err := tx.DecrementStock(ctx, line.ProductID, line.Quantity); err != nil {
			return nil, err
		}
		sub := int64(line.Quantity) * (line.UnitPrice - line.Discount)
		if err := tx.InsertOrderDetail(ctx, &OrderDetail{
			OrderID:   order.ID,
			ProductID: line.ProductID,
			Price:     sub,
			Quantity:  line.Quantity,
		}); err != nil {
			return nil, fmt.Errorf("insert order detail: %w", err)
		}
		if err := tx.DeleteCartLine(ctx, line.ID); err != nil {
			return nil, fmt.Errorf("delete cart line: %w", err)
		}
		items = append(items, CheckoutItem{ProductID: line.ProductID, Quantity: line.Quantity, Price: sub})
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit checkout: %w", err)
	}

	return &Result{
		OrderUID:      order.OrderUID,
		OrderNumber:   order.OrderNumber,
		CustomerID:    customerID,
		Status:        order.Status,
		PaymentMethod: order.OrderType,
		TotalPrice:    order.TotalPrice,
		Items:         items,
	}, nil
}
