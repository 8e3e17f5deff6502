package freshness

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestClassify(t *testing.T) {
	today := date(2025, time.March, 10)

	tests := []struct {
		name   string
		expiry time.Time
		want   Status
	}{
		{"expired yesterday", date(2025, time.March, 9), StatusExpired},
		{"expires today", date(2025, time.March, 10), StatusExpiringSoon},
		{"expires in three days", date(2025, time.March, 13), StatusExpiringSoon},
		{"expires in four days", date(2025, time.March, 14), StatusConsumeSoon},
		{"expires in seven days", date(2025, time.March, 17), StatusConsumeSoon},
		{"expires in eight days", date(2025, time.March, 18), StatusFresh},
		{"expires next month", date(2025, time.April, 20), StatusFresh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.expiry, today))
		})
	}
}

func TestDaysUntilIgnoresTimeOfDay(t *testing.T) {
	today := time.Date(2025, time.March, 10, 23, 59, 0, 0, time.UTC)
	expiry := time.Date(2025, time.March, 11, 0, 1, 0, 0, time.UTC)

	assert.Equal(t, 1, DaysUntil(expiry, today))
}

func TestDaysUntilNegativeWhenPassed(t *testing.T) {
	today := date(2025, time.March, 10)

	assert.Equal(t, -3, DaysUntil(date(2025, time.March, 7), today))
	assert.Equal(t, 0, DaysUntil(date(2025, time.March, 10), today))
}
