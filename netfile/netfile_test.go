package netfile_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jnystrom/eppp-go/netfile"
)

func TestReadCatalogue_SkipsHeaderRow(t *testing.T) {
	input := "value\n10\n22\n47\n"
	values, err := netfile.ReadCatalogue(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 22, 47}, values)
}

func TestReadCatalogue_NoHeaderRow(t *testing.T) {
	input := "10\n22\n47\n"
	values, err := netfile.ReadCatalogue(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 22, 47}, values)
}

func TestReadCatalogue_EmptyIsError(t *testing.T) {
	_, err := netfile.ReadCatalogue(strings.NewReader(""))
	assert.ErrorIs(t, err, netfile.ErrEmptyCatalogue)
}

func TestReadCatalogue_MalformedDataRowIsError(t *testing.T) {
	input := "value\n10\nbogus\n47\n"
	_, err := netfile.ReadCatalogue(strings.NewReader(input))
	assert.ErrorIs(t, err, netfile.ErrMalformedRow)
}

func TestWriteCatalogue_RoundTripsThroughReadCatalogue(t *testing.T) {
	values := []float64{10, 22, 47, 100}

	var buf strings.Builder
	require.NoError(t, netfile.WriteCatalogue(&buf, values))

	got, err := netfile.ReadCatalogue(strings.NewReader(buf.String()))
	require.NoError(t, err)
	assert.Equal(t, values, got)
}

func TestWriteResults_IncludesDerivedErrorColumns(t *testing.T) {
	results := []netfile.Result{
		{Target: 100, Achieved: 105, Components: 2, Expression: "(100 + 5)"},
	}

	var buf strings.Builder
	require.NoError(t, netfile.WriteResults(&buf, results))

	out := buf.String()
	assert.Contains(t, out, "target,achieved,absolute_error,relative_error,components,expression")
	assert.Contains(t, out, "100")
	assert.Contains(t, out, "105")
	assert.Contains(t, out, "0.05")
}

func TestWriteResults_ZeroTargetHasZeroRelativeError(t *testing.T) {
	results := []netfile.Result{
		{Target: 0, Achieved: 10, Components: 1, Expression: "10"},
	}

	var buf strings.Builder
	require.NoError(t, netfile.WriteResults(&buf, results))
	assert.NotContains(t, buf.String(), "+Inf")
	assert.NotContains(t, buf.String(), "NaN")
}
