package envelope

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kraken/pkg/core"
)

func TestDecode_Success(t *testing.T) {
	body := []byte(`{"error":[],"result":{"unixtime":1,"rfc1123":"x"}}`)

	tm, err := Decode[core.Time](body)

	require.NoError(t, err)
	assert.Equal(t, core.Time{UnixTime: 1, RFC1123: "x"}, tm)
}

func TestDecode_SuccessWithoutErrorKey(t *testing.T) {
	body := []byte(`{"result":{"status":"online","timestamp":"2023-07-06T18:52:00Z"}}`)

	status, err := Decode[core.SystemStatus](body)

	require.NoError(t, err)
	assert.Equal(t, "online", status.Status)
}

func TestDecode_APIError(t *testing.T) {
	body := []byte(`{"error":["EGeneral:Invalid arguments"],"result":null}`)

	tests := []struct {
		name   string
		decode func() error
	}{
		{"time", func() error { _, err := Decode[core.Time](body); return err }},
		{"balance", func() error { _, err := Decode[map[string]core.Amount](body); return err }},
		{"string", func() error { _, err := Decode[string](body); return err }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.decode()
			require.Error(t, err)
			assert.True(t, core.IsAPIError(err))
			assert.Equal(t, []string{"EGeneral:Invalid arguments"}, core.APIMessages(err))
		})
	}
}

func TestDecode_APIErrorIgnoresResult(t *testing.T) {
	body := []byte(`{"error":["EAPI:Invalid nonce"],"result":{"unixtime":1,"rfc1123":"x"}}`)

	_, err := Decode[core.Time](body)

	require.Error(t, err)
	assert.True(t, core.HasErrorCode(err, core.ErrCodeInvalidNonce))
}

func TestDecode_MultipleAPIErrorsKeepOrder(t *testing.T) {
	body := []byte(`{"error":["EOrder:Insufficient funds","EGeneral:Invalid arguments:volume"]}`)

	_, err := Decode[map[string]any](body)

	require.Error(t, err)
	assert.Equal(t, []string{"EOrder:Insufficient funds", "EGeneral:Invalid arguments:volume"}, core.APIMessages(err))
	assert.True(t, core.HasErrorCode(err, core.ErrCodeInvalidArguments))
	assert.True(t, core.HasErrorCode(err, core.ErrCodeInsufficientFunds))
}

func TestDecode_ProtocolViolation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"null_result", `{"error":[],"result":null}`},
		{"missing_result", `{"error":[]}`},
		{"empty_object", `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode[core.Time]([]byte(tt.body))
			require.Error(t, err)
			assert.True(t, core.IsProtocolError(err))
			assert.ErrorIs(t, err, core.ErrMissingResult)
		})
	}
}

func TestDecode_Malformed(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not_json", `<html>502 Bad Gateway</html>`},
		{"truncated", `{"error":[],"result":{"unixtime":1`},
		{"wrong_error_type", `{"error":"EGeneral:Internal error"}`},
		{"wrong_result_shape", `{"error":[],"result":{"unixtime":"soon"}}`},
		{"empty", ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode[core.Time]([]byte(tt.body))
			require.Error(t, err)
			assert.True(t, core.IsDeserializationError(err))
			var e *core.Error
			require.True(t, errors.As(err, &e))
			assert.NotNil(t, e.Unwrap())
		})
	}
}
