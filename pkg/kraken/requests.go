package kraken

import (
	"github.com/go-playground/validator/v10"

	"kraken/pkg/core"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("kraken_interval", func(fl validator.FieldLevel) bool {
		i := core.Interval(fl.Field().Int())
		return i == 0 || i.Valid()
	})
	return v
}

// request is implemented by every endpoint parameter struct. Unset optional fields are
// left out of params entirely.
type request interface {
	params() core.Params
}

type noParams struct{}

func (noParams) params() core.Params { return nil }

// addFlag sends a boolean only when it differs from the exchange default of false.
func addFlag(p core.Params, key string, v bool) core.Params {
	if !v {
		return p
	}
	return p.AddBool(key, v)
}

// AssetsRequest filters the Assets endpoint. All fields are optional.
type AssetsRequest struct {
	Assets []string
	AClass string
}

func (r AssetsRequest) params() core.Params {
	var p core.Params
	p = p.AddList("asset", r.Assets)
	return p.AddIf("aclass", r.AClass)
}

// AssetPairsRequest filters the AssetPairs endpoint. An empty Info is left out, which
// the exchange treats as "info".
type AssetPairsRequest struct {
	Pairs []string
	Info  string `validate:"omitempty,oneof=info leverage fees margin"`
}

func (r AssetPairsRequest) params() core.Params {
	var p core.Params
	p = p.AddList("pair", r.Pairs)
	return p.AddIf("info", r.Info)
}

type TickerRequest struct {
	Pairs []string `validate:"min=1,dive,required"`
}

func (r TickerRequest) params() core.Params {
	var p core.Params
	return p.AddList("pair", r.Pairs)
}

// OHLCRequest selects candles. A zero Interval is left out and the exchange uses one minute.
type OHLCRequest struct {
	Pair     string        `validate:"required"`
	Interval core.Interval `validate:"kraken_interval"`
	Since    int64         `validate:"min=0"`
}

func (r OHLCRequest) params() core.Params {
	p := core.NewParams("pair", r.Pair)
	p = p.AddInt("interval", int64(r.Interval))
	return p.AddInt("since", r.Since)
}

// DepthRequest selects an order book. A zero Count is left out.
type DepthRequest struct {
	Pair  string `validate:"required"`
	Count int    `validate:"min=0,max=500"`
}

func (r DepthRequest) params() core.Params {
	p := core.NewParams("pair", r.Pair)
	return p.AddInt("count", int64(r.Count))
}

type TradesRequest struct {
	Pair  string `validate:"required"`
	Since int64  `validate:"min=0"`
	Count int    `validate:"min=0,max=1000"`
}

func (r TradesRequest) params() core.Params {
	p := core.NewParams("pair", r.Pair)
	p = p.AddInt("since", r.Since)
	return p.AddInt("count", int64(r.Count))
}

type SpreadRequest struct {
	Pair  string `validate:"required"`
	Since int64  `validate:"min=0"`
}

func (r SpreadRequest) params() core.Params {
	p := core.NewParams("pair", r.Pair)
	return p.AddInt("since", r.Since)
}

// TradeBalanceRequest selects the base asset of the summary, ZUSD when empty.
type TradeBalanceRequest struct {
	Asset string
}

func (r TradeBalanceRequest) params() core.Params {
	var p core.Params
	return p.AddIf("asset", r.Asset)
}

type OpenOrdersRequest struct {
	Trades  bool
	UserRef int64
}

func (r OpenOrdersRequest) params() core.Params {
	var p core.Params
	p = addFlag(p, "trades", r.Trades)
	return p.AddInt("userref", r.UserRef)
}

// ClosedOrdersRequest pages through closed orders. Start and End take a unix timestamp
// or an order id.
type ClosedOrdersRequest struct {
	Trades    bool
	UserRef   int64
	Start     string
	End       string
	Offset    int    `validate:"min=0"`
	CloseTime string `validate:"omitempty,oneof=open close both"`
}

func (r ClosedOrdersRequest) params() core.Params {
	var p core.Params
	p = addFlag(p, "trades", r.Trades)
	p = p.AddInt("userref", r.UserRef)
	p = p.AddIf("start", r.Start)
	p = p.AddIf("end", r.End)
	p = p.AddInt("ofs", int64(r.Offset))
	return p.AddIf("closetime", r.CloseTime)
}

type QueryOrdersRequest struct {
	TxIDs   []string `validate:"min=1,max=50,dive,required"`
	Trades  bool
	UserRef int64
}

func (r QueryOrdersRequest) params() core.Params {
	var p core.Params
	p = addFlag(p, "trades", r.Trades)
	p = p.AddInt("userref", r.UserRef)
	return p.AddList("txid", r.TxIDs)
}

type TradesHistoryRequest struct {
	Type   string `validate:"omitempty,oneof=all any_position closed_position closing_position no_position"`
	Trades bool
	Start  string
	End    string
	Offset int `validate:"min=0"`
}

func (r TradesHistoryRequest) params() core.Params {
	var p core.Params
	p = p.AddIf("type", tradeHistoryType(r.Type))
	p = addFlag(p, "trades", r.Trades)
	p = p.AddIf("start", r.Start)
	p = p.AddIf("end", r.End)
	return p.AddInt("ofs", int64(r.Offset))
}

// tradeHistoryType maps the underscore spelling accepted by validation to the spaced
// spelling the exchange expects.
func tradeHistoryType(t string) string {
	switch t {
	case "any_position":
		return "any position"
	case "closed_position":
		return "closed position"
	case "closing_position":
		return "closing position"
	case "no_position":
		return "no position"
	default:
		return t
	}
}

type QueryTradesRequest struct {
	TxIDs  []string `validate:"min=1,max=20,dive,required"`
	Trades bool
}

func (r QueryTradesRequest) params() core.Params {
	var p core.Params
	p = p.AddList("txid", r.TxIDs)
	return addFlag(p, "trades", r.Trades)
}

type OpenPositionsRequest struct {
	TxIDs         []string
	DoCalcs       bool
	Consolidation string `validate:"omitempty,oneof=market"`
}

func (r OpenPositionsRequest) params() core.Params {
	var p core.Params
	p = p.AddList("txid", r.TxIDs)
	p = addFlag(p, "docalcs", r.DoCalcs)
	return p.AddIf("consolidation", r.Consolidation)
}

type LedgersRequest struct {
	Assets []string
	AClass string
	Type   string `validate:"omitempty,oneof=all trade deposit withdrawal transfer margin adjustment rollover credit settled staking dividend sale nft"`
	Start  string
	End    string
	Offset int `validate:"min=0"`
}

func (r LedgersRequest) params() core.Params {
	var p core.Params
	p = p.AddList("asset", r.Assets)
	p = p.AddIf("aclass", r.AClass)
	p = p.AddIf("type", r.Type)
	p = p.AddIf("start", r.Start)
	p = p.AddIf("end", r.End)
	return p.AddInt("ofs", int64(r.Offset))
}

type QueryLedgersRequest struct {
	IDs    []string `validate:"min=1,max=20,dive,required"`
	Trades bool
}

func (r QueryLedgersRequest) params() core.Params {
	var p core.Params
	p = p.AddList("id", r.IDs)
	return addFlag(p, "trades", r.Trades)
}

// TradeVolumeRequest asks for fee tiers of Pairs. Without pairs only the volume is returned.
type TradeVolumeRequest struct {
	Pairs []string
}

func (r TradeVolumeRequest) params() core.Params {
	var p core.Params
	return p.AddList("pair", r.Pairs)
}
