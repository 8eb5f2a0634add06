package gpstime

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestArange_FiveSecondsAtOneSecond(t *testing.T) {
	t0 := New(2048, 100)
	seq, err := Arange(t0, 5, 1000)
	require.NoError(t, err)
	require.Len(t, seq, 5)
	for i, g := range seq {
		require.True(t, g.Equal(t0.Add(float64(i))), "element %d = %s", i, g)
	}
	require.False(t, seq[len(seq)-1].Equal(t0.Add(5)))
}

func TestArange_ZeroDurationIsEmpty(t *testing.T) {
	seq, err := Arange(New(2048, 0), 0, 500)
	require.NoError(t, err)
	require.NotNil(t, seq)
	require.Empty(t, seq)
}

func TestArange_NegativeDurationIsEmpty(t *testing.T) {
	seq, err := Arange(New(2048, 0), -3, 500)
	require.NoError(t, err)
	require.Empty(t, seq)
}

func TestArange_StepLongerThanDuration(t *testing.T) {
	t0 := New(2048, 0)
	seq, err := Arange(t0, 1, 2000)
	require.NoError(t, err)
	require.Len(t, seq, 1)
	require.True(t, seq[0].Equal(t0))
}

func TestArange_InvalidStep(t *testing.T) {
	cases := []struct {
		name     string
		duration float64
		stepMS   float64
	}{
		{"negative step", 5, -100},
		{"zero step", 5, 0},
		{"nan step", 5, math.NaN()},
		{"inf step", 5, math.Inf(1)},
		{"nan duration", math.NaN(), 100},
		{"inf duration", math.Inf(1), 100},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			seq, err := Arange(New(2048, 0), tc.duration, tc.stepMS)
			require.ErrorIs(t, err, ErrInvalidArgument)
			require.Nil(t, seq)
		})
	}
}

func TestArange_TooManySteps(t *testing.T) {
	_, err := Arange(New(2048, 0), 1e9, 0.001)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestArange_RoundedOffsetNeverReachesEndpoint(t *testing.T) {
	// 3*0.3 is 0.8999999999999999 in float64 but 0.9s on the ns grid.
	t0 := New(2048, 0)
	seq, err := Arange(t0, 0.9, 300)
	require.NoError(t, err)
	require.Len(t, seq, 3)
	require.True(t, seq[2].Equal(t0.Add(0.6)))

	seq, err = Arange(t0, 5.4, 300)
	require.NoError(t, err)
	require.Len(t, seq, 18)
	require.True(t, seq[17].Before(t0.Add(5.4)))
}

func TestArange_RejectsSubNanosecondStep(t *testing.T) {
	seq, err := Arange(New(2048, 0), 1e-8, 1e-7)
	require.ErrorIs(t, err, ErrInvalidArgument)
	require.Nil(t, seq)

	seq, err = Arange(New(2048, 0), 1e-8, 1e-6)
	require.NoError(t, err)
	require.Len(t, seq, 10)
	for i := 1; i < len(seq); i++ {
		require.Equal(t, time.Nanosecond, seq[i].Sub(seq[i-1]))
	}
}

func TestArange_RejectsOverflow(t *testing.T) {
	cases := []struct {
		name     string
		start    GPSTime
		duration float64
		stepMS   float64
	}{
		{"duration beyond int64 ns", New(2048, 0), 1e11, 1e13},
		{"step beyond int64 ns", New(2048, 0), 1, 1e13},
		{"end past last representable instant", GPSTime{ns: math.MaxInt64 - 10}, 1, 100},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			seq, err := Arange(tc.start, tc.duration, tc.stepMS)
			require.ErrorIs(t, err, ErrInvalidArgument)
			require.Nil(t, seq)
		})
	}
}

func TestArange_LargeSpanStaysIncreasing(t *testing.T) {
	t0 := New(2048, 0)
	seq, err := Arange(t0, 1e9, 1e11)
	require.NoError(t, err)
	require.Len(t, seq, 10)
	for i := 1; i < len(seq); i++ {
		require.True(t, seq[i-1].Before(seq[i]), "not increasing at %d", i)
	}
	require.True(t, seq[9].Equal(t0.Add(9e8)))
}

func TestArange_LengthMonotonicAndHalfOpen(t *testing.T) {
	durations := []float64{0, 0.1, 0.5, 0.9, 1, 1.8, 2.5, 2.7, 3.6, 5, 5.4, 10, 20}
	steps := []float64{1, 7, 100, 250, 300, 333, 700, 1000, 2000}
	t0 := New(2200, 604790)

	for _, d := range durations {
		for _, s := range steps {
			seq, err := Arange(t0, d, s)
			require.NoError(t, err)

			want := int(math.Ceil(d * 1000 / s))
			if want < 0 {
				want = 0
			}
			require.Len(t, seq, want, "duration=%v step=%v", d, s)

			end := t0.Add(d)
			for i, g := range seq {
				require.False(t, g.Equal(end), "endpoint included: duration=%v step=%v", d, s)
				require.True(t, g.Before(end))
				if i > 0 {
					require.True(t, seq[i-1].Before(g), "not increasing at %d", i)
				}
			}
		}
	}
}

func TestArange_CrossesWeekBoundary(t *testing.T) {
	t0 := New(2047, 604799)
	seq, err := Arange(t0, 2, 1000)
	require.NoError(t, err)
	require.Len(t, seq, 2)
	require.Equal(t, 2047, seq[0].Week())
	require.Equal(t, 2048, seq[1].Week())
	require.InDelta(t, 0.0, seq[1].TimeOfWeek(), 1e-9)
}

func TestArange_FreshSlicePerCall(t *testing.T) {
	t0 := New(2048, 0)
	a, err := Arange(t0, 3, 1000)
	require.NoError(t, err)
	b, err := Arange(t0, 3, 1000)
	require.NoError(t, err)
	a[0] = New(1, 0)
	require.True(t, b[0].Equal(t0))
}

func TestValidateGPSWeek_Consistent(t *testing.T) {
	require.NoError(t, ValidateGPSWeek(2048, 0))
	require.NoError(t, ValidateGPSWeek(0, 0))
	require.NoError(t, ValidateGPSWeek(1023, 1023))
}

func TestValidateGPSWeek_Mismatch(t *testing.T) {
	err := ValidateGPSWeek(2048, 1)
	require.EqualError(t, err, "Full GPS Week 2048 must be mod 1024 of GPS Week 1")
	require.ErrorIs(t, err, ErrInconsistentWeek)

	var iw *InconsistentWeekError
	require.True(t, errors.As(err, &iw))
	require.Equal(t, 2048, iw.FullWeek)
	require.Equal(t, 1, iw.GPSWeek)
}

func TestValidateGPSWeek_FloorModuloForNegativeWeeks(t *testing.T) {
	require.NoError(t, ValidateGPSWeek(-1, 1023))
	require.NoError(t, ValidateGPSWeek(-1024, 0))
	require.ErrorIs(t, ValidateGPSWeek(-1, -1), ErrInconsistentWeek)
	require.Equal(t, 1023, GPSTime{}.Add(-1).Mod1024Week())
}

func TestValidateGPSWeek_NoRangeCheckOnGPSWeek(t *testing.T) {
	err := ValidateGPSWeek(2048, 1024)
	require.ErrorIs(t, err, ErrInconsistentWeek)
}

func TestValidateGPSWeek_CongruenceLaw(t *testing.T) {
	for f := 0; f < 5000; f += 37 {
		require.NoError(t, ValidateGPSWeek(f, f%1024))
		for _, g := range []int{f%1024 + 1, (f + 1023) % 1024, -1, 1024} {
			if g == f%1024 {
				continue
			}
			require.ErrorIs(t, ValidateGPSWeek(f, g), ErrInconsistentWeek, "f=%d g=%d", f, g)
		}
	}
}

func TestResolveWeek(t *testing.T) {
	cases := []struct {
		name    string
		gpsWeek int
		ref     GPSTime
		want    int
	}{
		{"same era", 100, New(2100, 0), 2148},
		{"just after rollover", 2, New(2046, 0), 2050},
		{"just before rollover", 1020, New(2050, 0), 2044},
		{"first era", 5, New(10, 0), 5},
		{"before epoch", 1023, GPSTime{}.Add(-1), -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ResolveWeek(tc.gpsWeek, tc.ref)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
			require.NoError(t, ValidateGPSWeek(got, tc.gpsWeek))
		})
	}
}

func TestResolveWeek_RejectsOutOfRange(t *testing.T) {
	_, err := ResolveWeek(1024, New(2048, 0))
	require.ErrorIs(t, err, ErrInvalidArgument)
	_, err = ResolveWeek(-1, New(2048, 0))
	require.ErrorIs(t, err, ErrInvalidArgument)
}
