package metricparse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jnystrom/eppp-go/metricparse"
)

func TestParse_Table(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"1000", 1000},
		{"4.7k", 4700},
		{"2.2Meg", 2_200_000},
		{"2.2meg", 2_200_000},
		{"100R", 100},
		{"4R7", 4.7},
		{"4k7", 4700},
		{"10n", 10e-9},
		{"1u", 1e-6},
		{"1µ", 1e-6},
		{"1M", 1_000_000},
		{"1m", 1e-3},
		{"-5.5", -5.5},
		{"  47  ", 47},
	}
	for _, c := range cases {
		got, err := metricparse.Parse(c.in)
		require.NoError(t, err, c.in)
		assert.InEpsilon(t, c.want, got, 1e-9, c.in)
	}
}

func TestParse_Empty(t *testing.T) {
	_, err := metricparse.Parse("   ")
	assert.ErrorIs(t, err, metricparse.ErrEmpty)
}

func TestParse_UnknownUnit(t *testing.T) {
	_, err := metricparse.Parse("4.7Q")
	assert.ErrorIs(t, err, metricparse.ErrUnknownUnit)
}

func TestParse_MalformedEmbeddedWithExistingDot(t *testing.T) {
	_, err := metricparse.Parse("4.7k7")
	assert.ErrorIs(t, err, metricparse.ErrMalformed)
}

func TestParse_MalformedGarbage(t *testing.T) {
	_, err := metricparse.Parse("abc")
	assert.ErrorIs(t, err, metricparse.ErrMalformed)
}
