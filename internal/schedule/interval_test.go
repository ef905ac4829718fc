package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func at(hour, minute int) time.Time {
	return time.Date(2025, time.September, 1, hour, minute, 0, 0, time.UTC)
}

func TestIntervalOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Interval
		want bool
	}{
		{
			name: "полное совпадение",
			a:    Interval{at(14, 0), at(15, 0)},
			b:    Interval{at(14, 0), at(15, 0)},
			want: true,
		},
		{
			name: "частичное пересечение",
			a:    Interval{at(14, 0), at(15, 0)},
			b:    Interval{at(14, 30), at(15, 30)},
			want: true,
		},
		{
			name: "один внутри другого",
			a:    Interval{at(14, 0), at(16, 0)},
			b:    Interval{at(14, 30), at(15, 0)},
			want: true,
		},
		{
			name: "касание границ не пересечение",
			a:    Interval{at(14, 0), at(15, 0)},
			b:    Interval{at(15, 0), at(16, 0)},
			want: false,
		},
		{
			name: "касание границ в обратном порядке",
			a:    Interval{at(15, 0), at(16, 0)},
			b:    Interval{at(14, 0), at(15, 0)},
			want: false,
		},
		{
			name: "далеко друг от друга",
			a:    Interval{at(9, 0), at(10, 0)},
			b:    Interval{at(18, 0), at(19, 0)},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			// Предикат симметричен
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a))
		})
	}
}
