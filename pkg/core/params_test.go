package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewParams(t *testing.T) {
	p := NewParams("pair", "XBTUSD", "count", "10", "dangling")

	assert.Equal(t, Params{{"pair", "XBTUSD"}, {"count", "10"}}, p)
}

func TestParams_Encode(t *testing.T) {
	tests := []struct {
		name   string
		params Params
		want   string
	}{
		{"empty", nil, ""},
		{"order kept", NewParams("z", "1", "a", "2"), "z=1&a=2"},
		{"duplicates kept", NewParams("a", "1", "a", "2"), "a=1&a=2"},
		{"escaped", NewParams("pair", "XBT/USD", "list", "a,b", "space", "a b", "amp", "x&y=z"), "pair=XBT%2FUSD&list=a%2Cb&space=a+b&amp=x%26y%3Dz"},
		{"empty value", NewParams("k", ""), "k="},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.params.Encode())
		})
	}
}

func TestParams_Builders(t *testing.T) {
	var p Params
	p = p.Add("a", "1")
	p = p.AddIf("skip", "")
	p = p.AddIf("b", "2")
	p = p.AddBool("c", false)
	p = p.AddInt("zero", 0)
	p = p.AddInt("d", -4)
	p = p.AddList("none", nil)
	p = p.AddList("e", []string{"x", "y"})

	assert.Equal(t, "a=1&b=2&c=false&d=-4&e=x%2Cy", p.Encode())
}

func TestParams_GetAndCount(t *testing.T) {
	p := NewParams("a", "1", "b", "2", "a", "3")

	v, ok := p.Get("a")
	assert.True(t, ok)
	assert.Equal(t, "1", v)

	_, ok = p.Get("missing")
	assert.False(t, ok)

	assert.Equal(t, 2, p.Count("a"))
	assert.Equal(t, 0, p.Count("missing"))
}

func TestParams_Prepend(t *testing.T) {
	p := NewParams("a", "1", "b", "2")
	out := p.Prepend("nonce", "42")

	assert.Equal(t, "nonce=42&a=1&b=2", out.Encode())
	assert.Equal(t, "a=1&b=2", p.Encode(), "receiver must not change")

	var empty Params
	assert.Equal(t, "nonce=1", empty.Prepend("nonce", "1").Encode())
}
