package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatMinutes(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{0, "0分钟"},
		{1, "1分钟"},
		{45, "45分钟"},
		{59, "59分钟"},
		{60, "1小时0分钟"},
		{61, "1小时1分钟"},
		{125, "2小时5分钟"},
		{1440, "24小时0分钟"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatMinutes(tt.minutes))
		})
	}
}

func TestFormatMinutes_NegativeRendersRawMinutes(t *testing.T) {
	assert.Equal(t, "-30分钟", FormatMinutes(-30))
	assert.Equal(t, "-90分钟", FormatMinutes(-90))
}
