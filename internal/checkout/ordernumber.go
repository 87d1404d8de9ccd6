package checkout

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const orderNumberPrefix = "ORD-"

// MaxDailySequence: 6 digit. Lewat dari ini checkout gagal,
// bukan melebarkan field (format fixed-width, ada sistem luar yang parse).
const MaxDailySequence = 999999

// FormatOrderNumber menghasilkan ORD-YYMMDD###### , contoh ORD-230617000020.
func FormatOrderNumber(day time.Time, seq int) string {
	return fmt.Sprintf("%s%s%06d", orderNumberPrefix, day.Format("060102"), seq)
}

// Sequence mengambil 6 digit terakhir dari order number.
func Sequence(orderNumber string) (int, error) {
	if !strings.HasPrefix(orderNumber, orderNumberPrefix) || len(orderNumber) != len(orderNumberPrefix)+12 {
		return 0, fmt.Errorf("malformed order number: %q", orderNumber)
	}
	seq, err := strconv.Atoi(orderNumber[len(orderNumber)-6:])
	if err != nil {
		return 0, fmt.Errorf("malformed order number: %q", orderNumber)
	}
	return seq, nil
}
