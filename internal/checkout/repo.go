package checkout

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repo implementasi Store di atas Postgres. Skema ada di db/schema.sql.
type Repo struct{ DB *pgxpool.Pool }

func (r *Repo) Begin(ctx context.Context) (Tx, error) {
	tx, err := r.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	return &pgTx{tx: tx}, nil
}

// OrderStatusByUID dipakai endpoint status, di luar transaksi checkout.
func (r *Repo) OrderStatusByUID(ctx context.Context, orderUID string) (Status, string, error) {
	var status, number string
	err := r.DB.QueryRow(ctx,
		`SELECT order_status, order_number FROM orders WHERE order_uid=$1`, orderUID).
		Scan(&status, &number)
	if err != nil {
		return "", "", err
	}
	return Status(status), number, nil
}

type pgTx struct{ tx pgx.Tx }

func (t *pgTx) UpdateCustomer(ctx context.Context, customerID int64, in CheckoutInput) error {
	ct, err := t.tx.Exec(ctx, `
		UPDATE customers
		SET name=$2, phone=$3, address=$4, city=$5, province=$6, district=$7,
		    postal_code=$8, updated_at=now()
		WHERE customer_id=$1`,
		customerID, in.Name, in.Phone, in.Address, in.CityName, in.ProvinceName,
		in.DistrictName, in.PostalCode)
	if err != nil {
		return err
	}
	if ct.RowsAffected() != 1 {
		return fmt.Errorf("customer not found: %d", customerID)
	}
	return nil
}

// NextOrderSeq: counter per hari, upsert atomik. DB yang serialize,
// bukan pola baca-lalu-tulis.
func (t *pgTx) NextOrderSeq(ctx context.Context, day time.Time) (int, error) {
	var seq int
	err := t.tx.QueryRow(ctx, `
		INSERT INTO order_counters(day, seq) VALUES ($1::date, 1)
		ON CONFLICT (day) DO UPDATE SET seq = order_counters.seq + 1
		RETURNING seq`, day).Scan(&seq)
	return seq, err
}

func (t *pgTx) InsertOrder(ctx context.Context, o *Order) error {
	return t.tx.QueryRow(ctx, `
		INSERT INTO orders(order_uid, customer_id, order_number, order_date,
		                   order_status, order_type, total_price,
		                   receiver_name, receiver_phone, shipping_address,
		                   shipping_city, shipping_province, shipping_district,
		                   shipping_postal_code)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)
		RETURNING order_id`,
		o.OrderUID, o.CustomerID, o.OrderNumber, o.OrderDate,
		string(o.Status), o.OrderType, o.TotalPrice,
		o.ReceiverName, o.ReceiverPhone, o.ShippingAddress,
		o.ShippingCity, o.ShippingProvince, o.ShippingDistrict,
		o.ShippingPostalCode).Scan(&o.ID)
}

func (t *pgTx) InsertShippingDetail(ctx context.Context, d *ShippingDetail) error {
	return t.tx.QueryRow(ctx, `
		INSERT INTO shipping_details(order_id, expedition, parcel, delivery_cost, weight)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING shipping_detail_id`,
		d.OrderID, d.Expedition, d.Parcel, d.DeliveryCost, d.Weight).Scan(&d.ID)
}

func (t *pgTx) CartLines(ctx context.Context, customerID int64) ([]CartLine, error) {
	rows, err := t.tx.Query(ctx, `
		SELECT c.cart_id, c.cart_uid, c.customer_id, c.product_id,
		       c.color, c.size, c.quantity, p.price, p.discount
		FROM carts c
		JOIN products p ON p.product_id = c.product_id
		WHERE c.customer_id=$1
		ORDER BY c.cart_id`, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []CartLine
	for rows.Next() {
		var l CartLine
		if err := rows.Scan(&l.ID, &l.CartUID, &l.CustomerID, &l.ProductID,
			&l.Color, &l.Size, &l.Quantity, &l.UnitPrice, &l.Discount); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

// DecrementStock: lock row produk (FOR UPDATE) -> cek -> kurangi.
// Check dan write satu lock scope, tidak ada race window.
func (t *pgTx) DecrementStock(ctx context.Context, productID int64, qty int) error {
	var stock int
	err := t.tx.QueryRow(ctx,
		`SELECT stock FROM products WHERE product_id=$1 FOR UPDATE`, productID).Scan(&stock)
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%w: product_id=%d", ErrProductNotFound, productID)
	}
	if err != nil {
		return err
	}
	if stock < qty {
		return fmt.Errorf("%w: product_id=%d need=%d have=%d",
			ErrInsufficientStock, productID, qty, stock)
	}
	_, err = t.tx.Exec(ctx,
		`UPDATE products SET stock = stock - $2, updated_at = now() WHERE product_id=$1`,
		productID, qty)
	return err
}

func (t *pgTx) InsertOrderDetail(ctx context.Context, d *OrderDetail) error {
	return t.tx.QueryRow(ctx, `
		INSERT INTO order_details(order_id, product_id, price, quantity)
		VALUES ($1,$2,$3,$4)
		RETURNING order_detail_id`,
		d.OrderID, d.ProductID, d.Price, d.Quantity).Scan(&d.ID)
}

func (t *pgTx) DeleteCartLine(ctx context.Context, cartID int64) error {
	// line yang sudah hilang bukan masalah, order detail-nya sudah kebuat
	_, err := t.tx.Exec(ctx, `DELETE FROM carts WHERE cart_id=$1`, cartID)
	return err
}

func (t *pgTx) Commit(ctx context.Context) error   { return t.tx.Commit(ctx) }
func (t *pgTx) Rollback(ctx context.Context) error { return t.tx.Rollback(ctx) }
