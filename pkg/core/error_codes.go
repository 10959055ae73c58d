package core

import "strings"

// ErrorCode is an error string as returned by the exchange in the envelope's error list,
// e.g. "EAPI:Invalid nonce". Codes are "<severity><category>:<message>".
type ErrorCode string

// Error codes documented by the exchange.
const (
	ErrCodeInvalidArguments      ErrorCode = "EGeneral:Invalid arguments"
	ErrCodePermissionDenied      ErrorCode = "EGeneral:Permission denied"
	ErrCodeUnknownMethod         ErrorCode = "EGeneral:Unknown method"
	ErrCodeInternal              ErrorCode = "EGeneral:Internal error"
	ErrCodeTooManyRequests       ErrorCode = "EGeneral:Too many requests"
	ErrCodeInvalidKey            ErrorCode = "EAPI:Invalid key"
	ErrCodeInvalidSignature      ErrorCode = "EAPI:Invalid signature"
	ErrCodeInvalidNonce          ErrorCode = "EAPI:Invalid nonce"
	ErrCodeRateLimitExceeded     ErrorCode = "EAPI:Rate limit exceeded"
	ErrCodeFeatureDisabled       ErrorCode = "EAPI:Feature disabled"
	ErrCodeUnknownAssetPair      ErrorCode = "EQuery:Unknown asset pair"
	ErrCodeUnknownAsset          ErrorCode = "EQuery:Unknown asset"
	ErrCodeInsufficientFunds     ErrorCode = "EOrder:Insufficient funds"
	ErrCodeOrderMinimum          ErrorCode = "EOrder:Order minimum not met"
	ErrCodeOrderRateLimit        ErrorCode = "EOrder:Rate limit exceeded"
	ErrCodeServiceUnavailable    ErrorCode = "EService:Unavailable"
	ErrCodeServiceBusy           ErrorCode = "EService:Busy"
	ErrCodeServiceMarketCancel   ErrorCode = "EService:Market in cancel_only mode"
	ErrCodeServiceMarketPostOnly ErrorCode = "EService:Market in post_only mode"
	ErrCodeDeadlineElapsed       ErrorCode = "EService:Deadline elapsed"
)

// Category returns the part before the first colon, e.g. "EAPI".
func (c ErrorCode) Category() string {
	s := string(c)
	if i := strings.IndexByte(s, ':'); i >= 0 {
		return s[:i]
	}
	return s
}

// IsWarning reports whether the code has warning severity ('W' prefix).
func (c ErrorCode) IsWarning() bool {
	return strings.HasPrefix(string(c), "W")
}

// HasErrorCode reports whether err is an API error whose messages contain code.
// Messages may carry extra detail after the code, so a prefix match is used.
func HasErrorCode(err error, code ErrorCode) bool {
	for _, msg := range APIMessages(err) {
		if strings.HasPrefix(msg, string(code)) {
			return true
		}
	}
	return false
}

// HasErrorCategory reports whether any API message belongs to category, e.g. "EService".
func HasErrorCategory(err error, category string) bool {
	for _, msg := range APIMessages(err) {
		if ErrorCode(msg).Category() == category {
			return true
		}
	}
	return false
}
