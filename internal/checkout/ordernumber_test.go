package checkout

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFormatOrderNumber(t *testing.T) {
	day := time.Date(2023, 6, 17, 15, 4, 5, 0, time.UTC)

	require.Equal(t, "ORD-230617000001", FormatOrderNumber(day, 1))
	require.Equal(t, "ORD-230617000020", FormatOrderNumber(day, 20))
	require.Equal(t, "ORD-230617999999", FormatOrderNumber(day, MaxDailySequence))
}

func TestSequence(t *testing.T) {
	seq, err := Sequence("ORD-230617000020")
	require.NoError(t, err)
	require.Equal(t, 20, seq)

	seq, err = Sequence("ORD-230617999999")
	require.NoError(t, err)
	require.Equal(t, MaxDailySequence, seq)
}

func TestSequenceMalformed(t *testing.T) {
	for _, bad := range []string{
		"",
		"ORD-2306170001",    // kependekan
		"INV-230617000020",  // prefix salah
		"ORD-230617abcdef",  // bukan digit
		"ORD-2306170000201", // kepanjangan
	} {
		_, err := Sequence(bad)
		require.Error(t, err, "input %q", bad)
	}
}
