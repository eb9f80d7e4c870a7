package usecase

import (
	"testing"
	"time"

	"github.com/piresc/cabbooking/internal/pkg/models"
	"github.com/stretchr/testify/assert"
)

func TestTimeOfDayMultiplier(t *testing.T) {
	utc := time.UTC
	plus2 := time.FixedZone("CEST", 2*3600)

	tests := []struct {
		name string
		at   time.Time
		loc  *time.Location
		want float64
	}{
		{name: "midnight", at: time.Date(2024, 5, 1, 0, 0, 0, 0, utc), loc: utc, want: 1.2},
		{name: "last night minute", at: time.Date(2024, 5, 1, 7, 59, 0, 0, utc), loc: utc, want: 1.2},
		{name: "eight sharp", at: time.Date(2024, 5, 1, 8, 0, 0, 0, utc), loc: utc, want: 1.0},
		{name: "late evening", at: time.Date(2024, 5, 1, 23, 59, 0, 0, utc), loc: utc, want: 1.0},
		{name: "local hour decides", at: time.Date(2024, 5, 1, 6, 30, 0, 0, utc), loc: plus2, want: 1.0},
		{name: "local night", at: time.Date(2024, 5, 1, 23, 30, 0, 0, utc), loc: plus2, want: 1.2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, timeOfDayMultiplier(tt.at, tt.loc))
		})
	}
}

func TestPassengerMultiplier(t *testing.T) {
	tests := []struct {
		passengers int
		want       float64
		wantErr    bool
	}{
		{passengers: 1, want: 1},
		{passengers: 4, want: 1},
		{passengers: 5, want: 2},
		{passengers: 8, want: 2},
		{passengers: 9, wantErr: true},
		{passengers: 0, wantErr: true},
	}

	for _, tt := range tests {
		got, err := passengerMultiplier(tt.passengers)
		if tt.wantErr {
			assert.ErrorIs(t, err, models.ErrInternal, "passengers=%d", tt.passengers)
			continue
		}
		assert.NoError(t, err)
		assert.Equal(t, tt.want, got, "passengers=%d", tt.passengers)
	}
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 28.8, round2(10*1.2*1.2*2))
	assert.Equal(t, 8.64, round2(10*1.2*1.2*2*0.3))
	assert.Equal(t, 12.35, round2(12.346))
	assert.Equal(t, 7.0, round2(6.999))
}
