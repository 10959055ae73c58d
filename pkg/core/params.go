package core

import (
	"net/url"
	"strconv"
	"strings"
)

// Param is a single name/value pair of a request.
type Param struct {
	Key   string
	Value string
}

// Params is an ordered sequence of request parameters.
// Order is preserved by every operation: the encoded form of a private request is part of
// the signed material, so the same sequence must be signed and sent.
type Params []Param

// NewParams builds Params from alternating key/value strings.
// A trailing key without a value is ignored.
func NewParams(kv ...string) Params {
	p := make(Params, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		p = append(p, Param{Key: kv[i], Value: kv[i+1]})
	}
	return p
}

// Add appends a pair and returns the extended sequence.
func (p Params) Add(key, value string) Params {
	return append(p, Param{Key: key, Value: value})
}

// AddIf appends the pair only when value is not empty.
func (p Params) AddIf(key, value string) Params {
	if value == "" {
		return p
	}
	return p.Add(key, value)
}

// AddBool appends a boolean as "true" or "false".
func (p Params) AddBool(key string, value bool) Params {
	return p.Add(key, strconv.FormatBool(value))
}

// AddInt appends value when it is non-zero.
func (p Params) AddInt(key string, value int64) Params {
	if value == 0 {
		return p
	}
	return p.Add(key, strconv.FormatInt(value, 10))
}

// AddList appends values joined by commas when the list is not empty.
func (p Params) AddList(key string, values []string) Params {
	return p.AddIf(key, strings.Join(values, ","))
}

// Get returns the value of the first pair named key.
func (p Params) Get(key string) (string, bool) {
	for _, kv := range p {
		if kv.Key == key {
			return kv.Value, true
		}
	}
	return "", false
}

// Count returns how many pairs are named key.
func (p Params) Count(key string) int {
	n := 0
	for _, kv := range p {
		if kv.Key == key {
			n++
		}
	}
	return n
}

// Prepend returns a new sequence with the pair in front of p. p is not modified.
func (p Params) Prepend(key, value string) Params {
	out := make(Params, 0, len(p)+1)
	out = append(out, Param{Key: key, Value: value})
	return append(out, p...)
}

// Encode returns the form-urlencoded serialization in sequence order.
// Unlike url.Values.Encode, keys are never sorted.
func (p Params) Encode() string {
	if len(p) == 0 {
		return ""
	}
	var b strings.Builder
	for i, kv := range p {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(kv.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(kv.Value))
	}
	return b.String()
}
