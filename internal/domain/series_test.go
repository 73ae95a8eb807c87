package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewSourceSeries(t *testing.T) {
	w := MustWindow("2024-01-01", "2024-01-07")

	s := NewSourceSeries(w, map[time.Time]int64{
		date("2024-01-02"): 10,
		date("2024-01-05"): 5,
		date("2024-01-09"): 100, // fora da janela
	})

	assert.Equal(t, 7, s.Len())
	assert.Equal(t, int64(15), s.Total())
	assert.Equal(t, int64(10), s.At(date("2024-01-02")))
	assert.Equal(t, int64(0), s.At(date("2024-01-03")))
	assert.True(t, s.Reported(date("2024-01-05")))
	assert.False(t, s.Reported(date("2024-01-03")))
	assert.False(t, s.Reported(date("2024-01-09")))
}

func TestZeroSeries(t *testing.T) {
	w := MustWindow("2024-01-01", "2024-01-07")

	s := ZeroSeries(w)
	points := s.Points()

	assert.Equal(t, 7, s.Len())
	assert.Equal(t, int64(0), s.Total())
	assert.Len(t, points, 7)
	assert.Equal(t, SeriesPoint{Date: "2024-01-01", Value: 0}, points[0])
	assert.Equal(t, SeriesPoint{Date: "2024-01-07", Value: 0}, points[6])
	for _, d := range w.Dates() {
		assert.False(t, s.Reported(d))
	}
}

func TestSourceAggregate_Column(t *testing.T) {
	w := MustWindow("2024-01-01", "2024-01-03")
	agg := SourceAggregate{
		Channel: ChannelOrganic,
		Window:  w,
		Series: map[string]SourceSeries{
			ColumnGooglePlaySearch: NewSourceSeries(w, map[time.Time]int64{date("2024-01-02"): 0}),
		},
	}

	assert.Equal(t, 3, agg.Column(ColumnGooglePlayExplore).Len())
	assert.Equal(t, int64(0), agg.Column(ColumnGooglePlayExplore).Total())
	assert.True(t, agg.Reported(date("2024-01-02")))
	assert.False(t, agg.Reported(date("2024-01-01")))
}
