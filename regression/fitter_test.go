package regression

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/rzero/errs"
)

func TestFitter_At(t *testing.T) {
	values := doubling(20, 10, 7)
	f := NewFitter("Timur Laut", values, nil, serialInterval)

	require.Equal(t, "Timur Laut", f.Subregion())
	require.Equal(t, 7, f.Windows(14))
	require.Equal(t, 1, f.Windows(20))
	require.Equal(t, 0, f.Windows(21))

	for offset := range f.Windows(14) {
		fit, err := f.At(offset, 14)
		require.NoError(t, err)
		require.InDelta(t, math.Ln2/7, fit.Slope, 1e-9)
		require.InDelta(t, math.Log(values[offset]), fit.Intercept, 1e-9)
	}
}

func TestFitter_OutOfRange(t *testing.T) {
	f := NewFitter("Barat Daya", constant(15, 10), nil, serialInterval)

	_, err := f.At(1, 14)
	require.NoError(t, err)

	for _, offset := range []int{2, 15, -1} {
		_, err = f.At(offset, 14)
		require.ErrorIs(t, err, errs.ErrWindowOutOfRange)
		require.Contains(t, err.Error(), "Barat Daya")
	}

	_, err = f.At(0, 1)
	require.ErrorIs(t, err, errs.ErrInvalidWindow)
}

func TestFitter_DomainErrorCarriesContext(t *testing.T) {
	values := constant(16, 3)
	values[10] = 0
	labels := make([]string, 16)
	for i := range labels {
		labels[i] = fmt.Sprintf("2021-04-%02d", i+1)
	}

	f := NewFitter("Seberang Perai Utara", values, labels, serialInterval)

	_, err := f.At(0, 14)
	require.ErrorIs(t, err, errs.ErrDomain)

	var de *errs.DomainError
	require.True(t, errors.As(err, &de))
	require.Equal(t, "Seberang Perai Utara", de.Subregion)
	require.Equal(t, 10, de.Offset)
	require.Equal(t, "2021-04-11", de.Date)

	_, err = f.At(2, 14)
	require.True(t, errors.As(err, &de))
	require.Equal(t, 8, de.Offset)
	require.Equal(t, "2021-04-11", de.Date)
	require.Contains(t, err.Error(), "subregion=Seberang Perai Utara")
}
