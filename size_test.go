package termpix

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noSurface() (int, int, bool) { return 0, 0, false }

// panicSurface fails the test if the surface is queried.
func panicSurface(t *testing.T) SurfaceSizer {
	return func() (int, int, bool) {
		t.Helper()
		t.Fatal("surface must not be queried when a dimension is explicit")
		return 0, 0, false
	}
}

// roundHalfUp computes floor(a*b/c + 1/2) with exact rationals.
func roundHalfUp(a, b, c int) int {
	r := new(big.Rat).SetFrac64(int64(a)*int64(b), int64(c))
	r.Add(r, big.NewRat(1, 2))
	q := new(big.Int).Quo(r.Num(), r.Denom())
	return int(q.Int64())
}

func TestResolveSizeScenarios(t *testing.T) {
	tests := []struct {
		name    string
		origW   int
		origH   int
		req     SizeRequest
		surface SurfaceSizer
		want    Size
	}{
		{
			name:    "fit to terminal, width constrained",
			origW:   1600,
			origH:   900,
			surface: FixedSurface(80, 25),
			want:    Size{80, 45},
		},
		{
			name:  "explicit width",
			origW: 1600,
			origH: 900,
			req:   SizeRequest{Width: 40},
			want:  Size{40, 23},
		},
		{
			name:  "explicit width and height",
			origW: 1600,
			origH: 900,
			req:   SizeRequest{Width: 40, Height: 10},
			want:  Size{40, 20},
		},
		{
			name:  "explicit height",
			origW: 1600,
			origH: 900,
			req:   SizeRequest{Height: 10},
			want:  Size{36, 20},
		},
		{
			name:    "fit to terminal, height constrained",
			origW:   100,
			origH:   400,
			surface: FixedSurface(80, 25),
			want:    Size{12, 48},
		},
		{
			name:    "max width caps",
			origW:   1600,
			origH:   900,
			req:     SizeRequest{MaxWidth: 40},
			surface: FixedSurface(80, 25),
			want:    Size{40, 23},
		},
		{
			name:    "max height caps",
			origW:   1600,
			origH:   900,
			req:     SizeRequest{MaxHeight: 10},
			surface: FixedSurface(80, 25),
			want:    Size{36, 20},
		},
		{
			name:    "caps larger than terminal are ignored",
			origW:   1600,
			origH:   900,
			req:     SizeRequest{MaxWidth: 500, MaxHeight: 500},
			surface: FixedSurface(80, 25),
			want:    Size{80, 45},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			surface := tt.surface
			if surface == nil {
				surface = panicSurface(t)
			}
			got, err := ResolveSize(tt.origW, tt.origH, tt.req, surface)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveSizeErrors(t *testing.T) {
	_, err := ResolveSize(1600, 900, SizeRequest{}, noSurface)
	assert.ErrorIs(t, err, ErrSurfaceSizeUnavailable)

	_, err = ResolveSize(1600, 900, SizeRequest{}, nil)
	assert.ErrorIs(t, err, ErrSurfaceSizeUnavailable)

	_, err = ResolveSize(1600, 900, SizeRequest{}, FixedSurface(80, 1))
	assert.ErrorIs(t, err, ErrSurfaceTooSmall)

	_, err = ResolveSize(1600, 900, SizeRequest{}, FixedSurface(0, 25))
	assert.ErrorIs(t, err, ErrSurfaceTooSmall)

	_, err = ResolveSize(0, 900, SizeRequest{Width: 10}, panicSurface(t))
	assert.ErrorIs(t, err, ErrInvalidDimensions)

	_, err = ResolveSize(1600, 0, SizeRequest{Width: 10}, panicSurface(t))
	assert.ErrorIs(t, err, ErrInvalidDimensions)

	_, err = ResolveSize(1600, 900, SizeRequest{Width: -1}, panicSurface(t))
	assert.ErrorIs(t, err, ErrInvalidDimensions)

	_, err = ResolveSize(1600, 900, SizeRequest{MaxHeight: -3}, FixedSurface(80, 25))
	assert.ErrorIs(t, err, ErrInvalidDimensions)
}

func TestResolveSizeNeverZero(t *testing.T) {
	// A 1000x1 strip at width 1 derives a height that rounds to zero.
	got, err := ResolveSize(1000, 1, SizeRequest{Width: 1}, panicSurface(t))
	require.NoError(t, err)
	assert.Equal(t, Size{1, 1}, got)

	got, err = ResolveSize(1, 5000, SizeRequest{}, FixedSurface(80, 25))
	require.NoError(t, err)
	assert.Equal(t, Size{1, 48}, got)
}

func TestScaleDimension(t *testing.T) {
	assert.Equal(t, 85, ScaleDimension(48, 1600, 900))
	assert.Equal(t, 45, ScaleDimension(80, 900, 1600))
	assert.Equal(t, 23, ScaleDimension(40, 900, 1600))

	// Exact halves round up.
	assert.Equal(t, 2, ScaleDimension(3, 1, 2))
	assert.Equal(t, 1, ScaleDimension(1, 1, 2))
	assert.Equal(t, 0, ScaleDimension(1, 1, 3))

	// Large values stay exact.
	assert.Equal(t, 1<<20, ScaleDimension(1<<20, 1<<30, 1<<30))

	assert.Zero(t, ScaleDimension(0, 10, 10))
	assert.Zero(t, ScaleDimension(10, 10, 0))
}

func TestScaleDimensionMatchesExactRounding(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 2000; i++ {
		other := rng.Intn(5000) + 1
		origThis := rng.Intn(20000) + 1
		origOther := rng.Intn(20000) + 1

		want := roundHalfUp(origThis, other, origOther)
		require.Equal(t, want, ScaleDimension(other, origThis, origOther),
			"ScaleDimension(%d, %d, %d)", other, origThis, origOther)
	}
}

func TestResolveSizeAspectPreservation(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 500; i++ {
		origW := rng.Intn(8000) + 1
		origH := rng.Intn(8000) + 1
		w := rng.Intn(400) + 1
		h := rng.Intn(200) + 1

		got, err := ResolveSize(origW, origH, SizeRequest{Width: w}, panicSurface(t))
		require.NoError(t, err)
		assert.Equal(t, w, got.Width)
		assert.Equal(t, max(roundHalfUp(origH, w, origW), 1), got.Height)

		got, err = ResolveSize(origW, origH, SizeRequest{Height: h}, panicSurface(t))
		require.NoError(t, err)
		assert.Equal(t, 2*h, got.Height)
		assert.Equal(t, max(roundHalfUp(origW, 2*h, origH), 1), got.Width)

		got, err = ResolveSize(origW, origH, SizeRequest{Width: w, Height: h}, panicSurface(t))
		require.NoError(t, err)
		assert.Equal(t, Size{w, 2 * h}, got)
	}
}

func TestFitToSizeProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 2000; i++ {
		origW := rng.Intn(5000) + 1
		origH := rng.Intn(5000) + 1
		cols := rng.Intn(400) + 1
		rows := rng.Intn(150) + 1

		got := FitToSize(origW, origH, cols, rows, 0, 0)
		targetH := 2 * rows

		require.LessOrEqual(t, got.Width, cols, "orig %dx%d in %dx%d", origW, origH, cols, rows)
		require.LessOrEqual(t, got.Height, targetH, "orig %dx%d in %dx%d", origW, origH, cols, rows)

		if got.Width != cols && got.Height != targetH {
			assert.GreaterOrEqual(t, got.Width, cols-1)
			assert.GreaterOrEqual(t, got.Height, targetH-1)
		}
	}
}

func TestFitToSizeCaps(t *testing.T) {
	// Tall image so the height axis binds.
	got := FitToSize(10, 1000, 80, 24, 0, 10)
	assert.Equal(t, 20, got.Height)

	got = FitToSize(10, 1000, 80, 24, 0, 0)
	assert.Equal(t, 48, got.Height)

	// Wide image so the width axis binds.
	got = FitToSize(1000, 10, 80, 24, 30, 0)
	assert.Equal(t, 30, got.Width)

	got = FitToSize(1000, 10, 80, 24, 0, 0)
	assert.Equal(t, 80, got.Width)
}

func TestSizeRows(t *testing.T) {
	assert.Equal(t, 23, Size{80, 45}.Rows())
	assert.Equal(t, 10, Size{40, 20}.Rows())
	assert.Equal(t, 1, Size{1, 1}.Rows())
}
