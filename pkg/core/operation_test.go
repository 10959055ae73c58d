package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOperation_String(t *testing.T) {
	tests := []struct {
		op   Operation
		want string
	}{
		{OpTime, "Time"},
		{OpSystemStatus, "SystemStatus"},
		{OpAssetPairs, "AssetPairs"},
		{OpOHLC, "OHLC"},
		{OpSpread, "Spread"},
		{OpBalance, "Balance"},
		{OpBalanceEx, "BalanceEx"},
		{OpTradesHistory, "TradesHistory"},
		{OpQueryLedgers, "QueryLedgers"},
		{OpTradeVolume, "TradeVolume"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.op.String())
		})
	}
}

func TestOperation_Count(t *testing.T) {
	assert.Equal(t, 20, int(OpTradeVolume))
	assert.Less(t, int(OpSpread), int(OpBalance), "public operations come first")
}

func TestInterval(t *testing.T) {
	assert.Equal(t, "60", Interval1h.String())
	assert.True(t, Interval15d.Valid())
	assert.False(t, Interval(7).Valid())
	assert.False(t, Interval(0).Valid())

	i, err := ParseInterval("1440")
	assert.NoError(t, err)
	assert.Equal(t, Interval1d, i)

	_, err = ParseInterval("7")
	assert.Error(t, err)
	_, err = ParseInterval("hourly")
	assert.Error(t, err)
}
