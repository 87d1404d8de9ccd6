package checkout

import "time"

type Product struct {
	ID        int64
	Name      string
	Stock     int
	Price     int64 // rupiah
	Discount  int64 // potongan per unit, rupiah
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Order struct {
	ID                 int64
	OrderUID           string // uuid, yang di-expose keluar
	CustomerID         int64
	OrderNumber        string // lihat ordernumber.go
	OrderDate          time.Time
	Status             Status
	OrderType          string // metode pembayaran apa adanya dari customer
	TotalPrice         int64
	ReceiverName       string
	ReceiverPhone      string
	ShippingAddress    string
	ShippingCity       string
	ShippingProvince   string
	ShippingDistrict   string
	ShippingPostalCode string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// ShippingDetail 1:1 dengan Order, immutable setelah dibuat.
type ShippingDetail struct {
	ID           int64
	OrderID      int64
	Expedition   string
	Parcel       string
	DeliveryCost int64
	Weight       int // gram
	CreatedAt    time.Time
}

// OrderDetail menyimpan snapshot harga line saat checkout,
// bukan referensi hidup ke harga produk.
type OrderDetail struct {
	ID        int64
	OrderID   int64
	ProductID int64
	Price     int64 // qty * (harga unit - diskon)
	Quantity  int
}

// CartLine hasil join carts + products: qty dari cart, harga & diskon dari produk.
type CartLine struct {
	ID         int64
	CartUID    string
	CustomerID int64
	ProductID  int64
	Color      string
	Size       string
	Quantity   int
	UnitPrice  int64
	Discount   int64
}
