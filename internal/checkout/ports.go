package checkout

import (
	"context"
	"time"
)

// CheckoutInput field-nya ngikutin form checkout di storefront.
type CheckoutInput struct {
	PaymentMethod string
	Total         int64
	Name          string
	Phone         string
	Address       string
	CityName      string
	ProvinceName  string
	DistrictName  string
	PostalCode    string
	Expedition    string
	Parcel        string
	DeliveryCost  int64
	Weight        int
}

// Store membuka satu unit of work per checkout.
type Store interface {
	Begin(ctx context.Context) (Tx, error)
}

// Tx adalah scope transaksi checkout: semua write di bawah ini commit
// bareng atau hilang bareng. Implementasi Postgres ada di repo.go.
type Tx interface {
	// UpdateCustomer menimpa profil & alamat customer dari data checkout.
	UpdateCustomer(ctx context.Context, customerID int64, in CheckoutInput) error

	// NextOrderSeq mengembalikan sequence order berikutnya untuk hari tsb.
	// Harus atomik terhadap checkout lain di hari yang sama.
	NextOrderSeq(ctx context.Context, day time.Time) (int, error)

	// InsertOrder mengisi o.ID setelah sukses.
	InsertOrder(ctx context.Context, o *Order) error

	InsertShippingDetail(ctx context.Context, d *ShippingDetail) error

	// CartLines snapshot isi cart customer, urut sesuai waktu masuk cart.
	CartLines(ctx context.Context, customerID int64) ([]CartLine, error)

	// DecrementStock gagal dengan ErrProductNotFound / ErrInsufficientStock;
	// check & write tidak boleh kepisah race window.
	DecrementStock(ctx context.Context, productID int64, qty int) error

	InsertOrderDetail(ctx context.Context, d *OrderDetail) error

	// DeleteCartLine no-op kalau line sudah hilang.
	DeleteCartLine(ctx context.Context, cartID int64) error

	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}
