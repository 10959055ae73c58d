package core

import (
	"testing"

	"github.com/bytedance/sonic"
	"github.com/cockroachdb/apd/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmount_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"string", `"30306.10000"`, "30306.10000", false},
		{"number", `1.25`, "1.25", false},
		{"negative", `"-24.5000"`, "-24.5000", false},
		{"empty string", `""`, "0", false},
		{"null", `null`, "0", false},
		{"garbage", `"abc"`, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a Amount
			err := sonic.Unmarshal([]byte(tt.input), &a)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, a.String())
		})
	}
}

func TestAmount_MarshalJSON(t *testing.T) {
	a, err := ParseAmount("0.00010000")
	require.NoError(t, err)

	data, err := sonic.Marshal(a)
	require.NoError(t, err)
	assert.Equal(t, `"0.00010000"`, string(data))

	_, err = ParseAmount("1.2.3")
	assert.Error(t, err)
}

func TestSetAmount(t *testing.T) {
	tests := []struct {
		name    string
		input   any
		want    string
		wantErr bool
	}{
		{"string", "30306.1", "30306.1", false},
		{"number", 0.5, "0.5", false},
		{"empty string", "", "0", false},
		{"null", nil, "0", false},
		{"large coefficient", "123456789012345678901234567890.123456789", "123456789012345678901234567890.123456789", false},
		{"garbage", "abc", "", true},
		{"wrong type", true, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst, err := ParseAmount("98765432109876543210987654321")
			require.NoError(t, err)

			err = setAmount(dst, tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, dst.String())
		})
	}
}

func TestParseAmount_ResultsAreIndependent(t *testing.T) {
	const large = "123456789012345678901234567890.5"

	a, err := ParseAmount(large)
	require.NoError(t, err)
	b, err := ParseAmount(large)
	require.NoError(t, err)

	_, err = apd.BaseContext.Add(&a.Decimal, &a.Decimal, &a.Decimal)
	require.NoError(t, err)

	assert.Equal(t, "246913578024691357802469135781.0", a.String())
	assert.Equal(t, large, b.String())
}

func TestBookEntry_UnmarshalJSON_LargeValues(t *testing.T) {
	input := `["123456789012345678901234567890.1","98765432109876543210987654321.9",1688671200]`

	var b BookEntry
	require.NoError(t, sonic.Unmarshal([]byte(input), &b))
	assert.Equal(t, "123456789012345678901234567890.1", b.Price.String())
	assert.Equal(t, "98765432109876543210987654321.9", b.Volume.String())
	assert.Equal(t, int64(1688671200), b.Timestamp)

	_, err := apd.BaseContext.Neg(&b.Price.Decimal, &b.Price.Decimal)
	require.NoError(t, err)
	assert.Equal(t, "98765432109876543210987654321.9", b.Volume.String())
}

func TestSide(t *testing.T) {
	tests := []struct {
		input string
		want  Side
	}{
		{`"b"`, SideBuy},
		{`"buy"`, SideBuy},
		{`"s"`, SideSell},
		{`"sell"`, SideSell},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var s Side
			require.NoError(t, sonic.Unmarshal([]byte(tt.input), &s))
			assert.Equal(t, tt.want, s)
		})
	}

	var s Side
	assert.Error(t, sonic.Unmarshal([]byte(`"x"`), &s))
	assert.Equal(t, "sell", SideSell.String())
}

func TestOHLC_UnmarshalJSON(t *testing.T) {
	input := `{"XXBTZUSD":[[1688671200,"30306.1","30306.2","30305.7","30305.7","30306.1","3.39243896",23],[1688671260,"30304.5","30304.5","30300.0","30300.0","30300.1","4.42996871",18]],"last":1688672160}`

	var o OHLC
	require.NoError(t, sonic.Unmarshal([]byte(input), &o))

	assert.Equal(t, int64(1688672160), o.Last)
	candles := o.Candles["XXBTZUSD"]
	require.Len(t, candles, 2)
	assert.Equal(t, int64(1688671260), candles[1].Time)
	assert.Equal(t, "30304.5", candles[1].Open.String())
	assert.Equal(t, "30300.0", candles[1].Low.String())
	assert.Equal(t, "4.42996871", candles[1].Volume.String())
	assert.Equal(t, int64(18), candles[1].Count)
}

func TestOHLC_UnmarshalJSON_Short(t *testing.T) {
	var o OHLC
	err := sonic.Unmarshal([]byte(`{"XXBTZUSD":[[1688671200,"1"]],"last":1}`), &o)
	assert.Error(t, err)
}

func TestTrades_UnmarshalJSON(t *testing.T) {
	input := `{"XXBTZUSD":[["30243.40000","0.34507674",1688669597.8277369,"b","m","",61044952],["30243.30000","0.00376960",1688669598.2804112,"s","l","",61044953]],"last":"1688671969993150842"}`

	var tr Trades
	require.NoError(t, sonic.Unmarshal([]byte(input), &tr))

	assert.Equal(t, int64(1688671969993150842), tr.Last)
	trades := tr.Trades["XXBTZUSD"]
	require.Len(t, trades, 2)
	assert.Equal(t, "30243.40000", trades[0].Price.String())
	assert.Equal(t, SideBuy, trades[0].Side)
	assert.Equal(t, "market", trades[0].OrderType)
	assert.Equal(t, int64(61044952), trades[0].TradeID)
	assert.Equal(t, SideSell, trades[1].Side)
	assert.Equal(t, "limit", trades[1].OrderType)
}

func TestSpread_UnmarshalJSON(t *testing.T) {
	input := `{"XXBTZUSD":[[1688671834,"30292.10000","30297.50000"]],"last":1688672106}`

	var s Spread
	require.NoError(t, sonic.Unmarshal([]byte(input), &s))

	assert.Equal(t, int64(1688672106), s.Last)
	entries := s.Spreads["XXBTZUSD"]
	require.Len(t, entries, 1)
	assert.Equal(t, "30292.10000", entries[0].Bid.String())
	assert.Equal(t, "30297.50000", entries[0].Ask.String())
}

func TestSplitLast_RejectsNonArrays(t *testing.T) {
	var s Spread
	assert.Error(t, sonic.Unmarshal([]byte(`{"XXBTZUSD":"nope","last":1}`), &s))
	assert.Error(t, sonic.Unmarshal([]byte(`{"XXBTZUSD":[1],"last":1}`), &s))
}

func TestDepth_UnmarshalJSON(t *testing.T) {
	input := `{"asks":[["30384.10000","2.059",1688671659]],"bids":[["30297.00000","0.115",1688671656],["30296.70000","0.002",1688671674]]}`

	var d Depth
	require.NoError(t, sonic.Unmarshal([]byte(input), &d))

	require.Len(t, d.Asks, 1)
	require.Len(t, d.Bids, 2)
	assert.Equal(t, "2.059", d.Asks[0].Volume.String())
	assert.Equal(t, int64(1688671674), d.Bids[1].Timestamp)
}

func TestOrder_UnmarshalJSON(t *testing.T) {
	input := `{"refid":null,"userref":0,"status":"open","opentm":1688666559.8974,"starttm":0,"expiretm":0,"descr":{"pair":"XBTUSD","type":"buy","ordertype":"limit","price":"30010.0","price2":"0","leverage":"none","order":"buy 1.25000000 XBTUSD @ limit 30010.0","close":""},"vol":"1.25000000","vol_exec":"0.37500000","cost":"11253.7","fee":"0.00000","price":"30010.0","stopprice":"0.00000","limitprice":"0.00000","misc":"","oflags":"fciq","trades":["TCCCTY-WE2O6-P3NB37"]}`

	var o Order
	require.NoError(t, sonic.Unmarshal([]byte(input), &o))

	assert.Nil(t, o.RefID)
	require.NotNil(t, o.UserRef)
	assert.Equal(t, int64(0), *o.UserRef)
	assert.Equal(t, "open", o.Status)
	assert.Equal(t, "XBTUSD", o.Description.Pair)
	assert.Equal(t, "30010.0", o.Description.Price.String())
	assert.Equal(t, "0.37500000", o.VolumeExecuted.String())
	assert.Equal(t, []string{"TCCCTY-WE2O6-P3NB37"}, o.Trades)
}

func TestTicker_UnmarshalJSON(t *testing.T) {
	input := `{"a":["30300.10000","1","1.000"],"b":["30300.00000","1","1.000"],"c":["30303.20000","0.00067643"],"v":["4083.67001100","4412.73601799"],"p":["30706.77771","30689.13205"],"t":[34619,38907],"l":["29868.30000","29868.30000"],"h":["31631.00000","31631.00000"],"o":"30502.80000"}`

	var tk Ticker
	require.NoError(t, sonic.Unmarshal([]byte(input), &tk))

	assert.Equal(t, "30300.10000", tk.Ask[0].String())
	assert.Equal(t, []int64{34619, 38907}, tk.Trades)
	assert.Equal(t, "30502.80000", tk.Open.String())
}
