package core

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/cockroachdb/apd/v3"
)

// Amount is a decimal the exchange encodes as a JSON string, occasionally as a number or null.
type Amount struct {
	apd.Decimal
}

// ParseAmount parses a decimal string.
func ParseAmount(s string) (*Amount, error) {
	a := new(Amount)
	if _, _, err := a.Decimal.SetString(s); err != nil {
		return nil, fmt.Errorf("parse amount %q: %w", s, err)
	}
	return a, nil
}

// UnmarshalJSON accepts "1.5", 1.5, "" and null. The last two leave the zero value.
func (a *Amount) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		a.Decimal = apd.Decimal{}
		return nil
	}
	return a.setString(strings.Trim(s, `"`))
}

func (a *Amount) setString(s string) error {
	if s == "" {
		a.Decimal = apd.Decimal{}
		return nil
	}
	if _, _, err := a.Decimal.SetString(s); err != nil {
		return fmt.Errorf("parse amount %q: %w", s, err)
	}
	return nil
}

// MarshalJSON encodes the amount as a JSON string, like the exchange does.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(`"` + a.String() + `"`), nil
}

// String returns the decimal text.
func (a Amount) String() string {
	return a.Decimal.String()
}

// Side is the direction of a trade.
type Side int

// Trade side constants.
const (
	// SideBuy indicates a buy ("b" on the wire).
	SideBuy Side = iota
	// SideSell indicates a sell ("s" on the wire).
	SideSell
)

// String returns "buy" or "sell".
func (s Side) String() string {
	return [...]string{"buy", "sell"}[s]
}

// MarshalJSON implements json.Marshaler for Side.
func (s Side) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

// UnmarshalJSON accepts the short and long forms.
func (s *Side) UnmarshalJSON(data []byte) error {
	return s.parse(strings.Trim(string(data), `"`))
}

func (s *Side) parse(v string) error {
	switch v {
	case "b", "buy":
		*s = SideBuy
	case "s", "sell":
		*s = SideSell
	default:
		return fmt.Errorf("unknown side %q", v)
	}
	return nil
}

// Time is the result of the Time endpoint.
type Time struct {
	UnixTime int64  `json:"unixtime"`
	RFC1123  string `json:"rfc1123"`
}

// SystemStatus is the result of the SystemStatus endpoint.
type SystemStatus struct {
	// Status is one of online, maintenance, cancel_only, post_only.
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// Asset describes one asset of the Assets endpoint.
type Asset struct {
	AClass          string `json:"aclass"`
	AltName         string `json:"altname"`
	Decimals        int    `json:"decimals"`
	DisplayDecimals int    `json:"display_decimals"`
	CollateralValue Amount `json:"collateral_value"`
	Status          string `json:"status"`
}

// AssetPair describes one tradable pair of the AssetPairs endpoint.
type AssetPair struct {
	AltName           string      `json:"altname"`
	WSName            string      `json:"wsname"`
	AClassBase        string      `json:"aclass_base"`
	Base              string      `json:"base"`
	AClassQuote       string      `json:"aclass_quote"`
	Quote             string      `json:"quote"`
	Lot               string      `json:"lot"`
	CostDecimals      int         `json:"cost_decimals"`
	PairDecimals      int         `json:"pair_decimals"`
	LotDecimals       int         `json:"lot_decimals"`
	LotMultiplier     int         `json:"lot_multiplier"`
	LeverageBuy       []int       `json:"leverage_buy"`
	LeverageSell      []int       `json:"leverage_sell"`
	Fees              [][]float64 `json:"fees"`
	FeesMaker         [][]float64 `json:"fees_maker"`
	FeeVolumeCurrency string      `json:"fee_volume_currency"`
	MarginCall        int         `json:"margin_call"`
	MarginStop        int         `json:"margin_stop"`
	OrderMin          Amount      `json:"ordermin"`
	CostMin           Amount      `json:"costmin"`
	TickSize          Amount      `json:"tick_size"`
	Status            string      `json:"status"`
}

// Ticker is the per-pair entry of the Ticker endpoint.
type Ticker struct {
	// Ask is [price, whole lot volume, lot volume].
	Ask []Amount `json:"a"`
	// Bid is [price, whole lot volume, lot volume].
	Bid []Amount `json:"b"`
	// Close is [price, lot volume] of the last trade.
	Close []Amount `json:"c"`
	// Volume is [today, last 24 hours].
	Volume []Amount `json:"v"`
	// VWAP is [today, last 24 hours].
	VWAP []Amount `json:"p"`
	// Trades is [today, last 24 hours].
	Trades []int64  `json:"t"`
	Low    []Amount `json:"l"`
	High   []Amount `json:"h"`
	Open   Amount   `json:"o"`
}

// Candle is one OHLC entry.
type Candle struct {
	Time   int64
	Open   Amount
	High   Amount
	Low    Amount
	Close  Amount
	VWAP   Amount
	Volume Amount
	Count  int64
}

// OHLC is the result of the OHLC endpoint.
type OHLC struct {
	Candles map[string][]Candle
	// Last is the cursor to pass as since for the next poll.
	Last int64
}

// UnmarshalJSON decodes the pair keyed arrays and the "last" cursor.
func (o *OHLC) UnmarshalJSON(data []byte) error {
	rows, last, err := splitLast(data)
	if err != nil {
		return err
	}
	o.Last = last
	o.Candles = make(map[string][]Candle, len(rows))
	for pair, entries := range rows {
		candles := make([]Candle, 0, len(entries))
		for _, e := range entries {
			if len(e) < 8 {
				return fmt.Errorf("ohlc %s: expected 8 fields, got %d", pair, len(e))
			}
			var c Candle
			var err error
			if c.Time, err = toInt64(e[0]); err != nil {
				return err
			}
			for i, dst := range []*Amount{&c.Open, &c.High, &c.Low, &c.Close, &c.VWAP, &c.Volume} {
				if err = setAmount(dst, e[i+1]); err != nil {
					return err
				}
			}
			if c.Count, err = toInt64(e[7]); err != nil {
				return err
			}
			candles = append(candles, c)
		}
		o.Candles[pair] = candles
	}
	return nil
}

// BookEntry is one price level of the order book.
type BookEntry struct {
	Price     Amount
	Volume    Amount
	Timestamp int64
}

// UnmarshalJSON decodes [price, volume, timestamp].
func (b *BookEntry) UnmarshalJSON(data []byte) error {
	var raw []any
	if err := sonic.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw) < 3 {
		return fmt.Errorf("book entry: expected 3 fields, got %d", len(raw))
	}
	if err := setAmount(&b.Price, raw[0]); err != nil {
		return err
	}
	if err := setAmount(&b.Volume, raw[1]); err != nil {
		return err
	}
	var err error
	b.Timestamp, err = toInt64(raw[2])
	return err
}

// Depth is the per-pair entry of the Depth endpoint.
type Depth struct {
	Asks []BookEntry `json:"asks"`
	Bids []BookEntry `json:"bids"`
}

// PublicTrade is one entry of the Trades endpoint.
type PublicTrade struct {
	Price     Amount
	Volume    Amount
	Time      float64
	Side      Side
	OrderType string
	Misc      string
	TradeID   int64
}

// Trades is the result of the Trades endpoint.
type Trades struct {
	Trades map[string][]PublicTrade
	Last   int64
}

// UnmarshalJSON decodes the pair keyed arrays and the "last" cursor.
func (t *Trades) UnmarshalJSON(data []byte) error {
	rows, last, err := splitLast(data)
	if err != nil {
		return err
	}
	t.Last = last
	t.Trades = make(map[string][]PublicTrade, len(rows))
	for pair, entries := range rows {
		trades := make([]PublicTrade, 0, len(entries))
		for _, e := range entries {
			if len(e) < 6 {
				return fmt.Errorf("trades %s: expected at least 6 fields, got %d", pair, len(e))
			}
			var tr PublicTrade
			var err error
			if err = setAmount(&tr.Price, e[0]); err != nil {
				return err
			}
			if err = setAmount(&tr.Volume, e[1]); err != nil {
				return err
			}
			if tr.Time, err = toFloat(e[2]); err != nil {
				return err
			}
			if err = tr.Side.parse(toString(e[3])); err != nil {
				return err
			}
			switch toString(e[4]) {
			case "m":
				tr.OrderType = "market"
			case "l":
				tr.OrderType = "limit"
			default:
				tr.OrderType = toString(e[4])
			}
			tr.Misc = toString(e[5])
			if len(e) > 6 {
				if tr.TradeID, err = toInt64(e[6]); err != nil {
					return err
				}
			}
			trades = append(trades, tr)
		}
		t.Trades[pair] = trades
	}
	return nil
}

// SpreadEntry is one entry of the Spread endpoint.
type SpreadEntry struct {
	Time int64
	Bid  Amount
	Ask  Amount
}

// Spread is the result of the Spread endpoint.
type Spread struct {
	Spreads map[string][]SpreadEntry
	Last    int64
}

// UnmarshalJSON decodes the pair keyed arrays and the "last" cursor.
func (s *Spread) UnmarshalJSON(data []byte) error {
	rows, last, err := splitLast(data)
	if err != nil {
		return err
	}
	s.Last = last
	s.Spreads = make(map[string][]SpreadEntry, len(rows))
	for pair, entries := range rows {
		spreads := make([]SpreadEntry, 0, len(entries))
		for _, e := range entries {
			if len(e) < 3 {
				return fmt.Errorf("spread %s: expected 3 fields, got %d", pair, len(e))
			}
			var sp SpreadEntry
			var err error
			if sp.Time, err = toInt64(e[0]); err != nil {
				return err
			}
			if err = setAmount(&sp.Bid, e[1]); err != nil {
				return err
			}
			if err = setAmount(&sp.Ask, e[2]); err != nil {
				return err
			}
			spreads = append(spreads, sp)
		}
		s.Spreads[pair] = spreads
	}
	return nil
}

// ExtendedBalance is the per-asset entry of the BalanceEx endpoint.
type ExtendedBalance struct {
	Balance    Amount `json:"balance"`
	Credit     Amount `json:"credit"`
	CreditUsed Amount `json:"credit_used"`
	HoldTrade  Amount `json:"hold_trade"`
}

// TradeBalance is the result of the TradeBalance endpoint.
type TradeBalance struct {
	EquivalentBalance Amount `json:"eb"`
	TradeBalance      Amount `json:"tb"`
	MarginAmount      Amount `json:"m"`
	UnrealizedNet     Amount `json:"n"`
	Cost              Amount `json:"c"`
	Valuation         Amount `json:"v"`
	Equity            Amount `json:"e"`
	FreeMargin        Amount `json:"mf"`
	MarginLevel       Amount `json:"ml"`
	UnexecutedValue   Amount `json:"uv"`
}

// OrderDescription is the "descr" object of an order.
type OrderDescription struct {
	Pair      string `json:"pair"`
	Type      string `json:"type"`
	OrderType string `json:"ordertype"`
	Price     Amount `json:"price"`
	Price2    Amount `json:"price2"`
	Leverage  string `json:"leverage"`
	Order     string `json:"order"`
	Close     string `json:"close"`
}

// Order is an order as returned by OpenOrders, ClosedOrders and QueryOrders.
type Order struct {
	RefID          *string          `json:"refid"`
	UserRef        *int64           `json:"userref"`
	Status         string           `json:"status"`
	OpenTime       float64          `json:"opentm"`
	StartTime      float64          `json:"starttm"`
	ExpireTime     float64          `json:"expiretm"`
	CloseTime      float64          `json:"closetm,omitempty"`
	Reason         *string          `json:"reason,omitempty"`
	Description    OrderDescription `json:"descr"`
	Volume         Amount           `json:"vol"`
	VolumeExecuted Amount           `json:"vol_exec"`
	Cost           Amount           `json:"cost"`
	Fee            Amount           `json:"fee"`
	Price          Amount           `json:"price"`
	StopPrice      Amount           `json:"stopprice"`
	LimitPrice     Amount           `json:"limitprice"`
	Misc           string           `json:"misc"`
	OFlags         string           `json:"oflags"`
	Trades         []string         `json:"trades,omitempty"`
}

// OpenOrders is the result of the OpenOrders endpoint.
type OpenOrders struct {
	Open map[string]Order `json:"open"`
}

// ClosedOrders is the result of the ClosedOrders endpoint.
type ClosedOrders struct {
	Closed map[string]Order `json:"closed"`
	Count  int              `json:"count"`
}

// TradeInfo is a private trade as returned by TradesHistory and QueryTrades.
type TradeInfo struct {
	OrderTxID string   `json:"ordertxid"`
	PosTxID   string   `json:"postxid"`
	Pair      string   `json:"pair"`
	Time      float64  `json:"time"`
	Type      string   `json:"type"`
	OrderType string   `json:"ordertype"`
	Price     Amount   `json:"price"`
	Cost      Amount   `json:"cost"`
	Fee       Amount   `json:"fee"`
	Volume    Amount   `json:"vol"`
	Margin    Amount   `json:"margin"`
	Misc      string   `json:"misc"`
	Ledgers   []string `json:"ledgers,omitempty"`
}

// TradesHistory is the result of the TradesHistory endpoint.
type TradesHistory struct {
	Trades map[string]TradeInfo `json:"trades"`
	Count  int                  `json:"count"`
}

// Position is an open margin position.
type Position struct {
	OrderTxID    string  `json:"ordertxid"`
	PosStatus    string  `json:"posstatus"`
	Pair         string  `json:"pair"`
	Time         float64 `json:"time"`
	Type         string  `json:"type"`
	OrderType    string  `json:"ordertype"`
	Cost         Amount  `json:"cost"`
	Fee          Amount  `json:"fee"`
	Volume       Amount  `json:"vol"`
	VolumeClosed Amount  `json:"vol_closed"`
	Margin       Amount  `json:"margin"`
	Value        Amount  `json:"value"`
	Net          Amount  `json:"net"`
	Terms        string  `json:"terms"`
	RolloverTime string  `json:"rollovertm"`
	Misc         string  `json:"misc"`
	OFlags       string  `json:"oflags"`
}

// LedgerEntry is one entry of Ledgers and QueryLedgers.
type LedgerEntry struct {
	RefID   string  `json:"refid"`
	Time    float64 `json:"time"`
	Type    string  `json:"type"`
	SubType string  `json:"subtype"`
	AClass  string  `json:"aclass"`
	Asset   string  `json:"asset"`
	Amount  Amount  `json:"amount"`
	Fee     Amount  `json:"fee"`
	Balance Amount  `json:"balance"`
}

// Ledgers is the result of the Ledgers endpoint.
type Ledgers struct {
	Ledger map[string]LedgerEntry `json:"ledger"`
	Count  int                    `json:"count"`
}

// FeeTier describes the fee applied to a pair at the current volume.
type FeeTier struct {
	Fee        Amount `json:"fee"`
	MinFee     Amount `json:"minfee"`
	MaxFee     Amount `json:"maxfee"`
	NextFee    Amount `json:"nextfee"`
	NextVolume Amount `json:"nextvolume"`
	TierVolume Amount `json:"tiervolume"`
}

// TradeVolume is the result of the TradeVolume endpoint.
type TradeVolume struct {
	Currency  string             `json:"currency"`
	Volume    Amount             `json:"volume"`
	Fees      map[string]FeeTier `json:"fees,omitempty"`
	FeesMaker map[string]FeeTier `json:"fees_maker,omitempty"`
}

// splitLast separates the "last" cursor from the pair keyed rows of OHLC, Trades and Spread.
func splitLast(data []byte) (map[string][][]any, int64, error) {
	var raw map[string]any
	if err := sonic.Unmarshal(data, &raw); err != nil {
		return nil, 0, err
	}
	rows := make(map[string][][]any, len(raw))
	var last int64
	for key, v := range raw {
		if key == "last" {
			n, err := toInt64(v)
			if err != nil {
				return nil, 0, fmt.Errorf("last: %w", err)
			}
			last = n
			continue
		}
		list, ok := v.([]any)
		if !ok {
			return nil, 0, fmt.Errorf("%s: expected array, got %T", key, v)
		}
		entries := make([][]any, 0, len(list))
		for _, item := range list {
			entry, ok := item.([]any)
			if !ok {
				return nil, 0, fmt.Errorf("%s: expected array entry, got %T", key, item)
			}
			entries = append(entries, entry)
		}
		rows[key] = entries
	}
	return rows, last, nil
}

// setAmount decodes v into dst in place. Decoding into a temporary and assigning it
// would share the coefficient of large values between the two Decimals.
func setAmount(dst *Amount, v any) error {
	switch val := v.(type) {
	case string:
		return dst.setString(val)
	case float64:
		return dst.setString(strconv.FormatFloat(val, 'f', -1, 64))
	case nil:
		dst.Decimal = apd.Decimal{}
		return nil
	default:
		return fmt.Errorf("amount: unexpected type %T", v)
	}
}

func toInt64(v any) (int64, error) {
	switch val := v.(type) {
	case float64:
		return int64(val), nil
	case string:
		return strconv.ParseInt(val, 10, 64)
	default:
		return 0, fmt.Errorf("integer: unexpected type %T", v)
	}
}

func toFloat(v any) (float64, error) {
	switch val := v.(type) {
	case float64:
		return val, nil
	case string:
		return strconv.ParseFloat(val, 64)
	default:
		return 0, fmt.Errorf("number: unexpected type %T", v)
	}
}

func toString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
