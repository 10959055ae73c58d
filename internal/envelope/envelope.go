// Package envelope decodes the {"error": [...], "result": ...} wrapper of every response.
package envelope

import (
	"github.com/bytedance/sonic"

	"kraken/pkg/core"
)

type envelope[T any] struct {
	Error  []string `json:"error"`
	Result *T       `json:"result"`
}

// Decode parses body and returns its result.
//
// A body that is not a valid envelope yields a KindDeserialization error, a non-empty error
// list a KindAPI error carrying every message in order, and an empty error list without a
// result a KindProtocol error.
func Decode[T any](body []byte) (T, error) {
	var zero T
	var env envelope[T]
	if err := sonic.Unmarshal(body, &env); err != nil {
		return zero, core.NewDeserializationError(err)
	}
	if len(env.Error) > 0 {
		return zero, core.NewAPIError(env.Error)
	}
	if env.Result == nil {
		return zero, core.NewProtocolError()
	}
	return *env.Result, nil
}
