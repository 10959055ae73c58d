// Package sign computes the API-Sign header of private requests.
package sign

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/base64"
	"fmt"

	"kraken/pkg/core"
)

// NonceKey is the parameter name the signature is bound to.
const NonceKey = "nonce"

// Sign returns base64(HMAC-SHA512(secret, path + SHA256(nonce + postdata))), where postdata is
// the form encoding of params in their given order.
//
// params must contain exactly one "nonce" entry. Anything else is a bug in the caller and
// Sign panics instead of producing a signature the exchange would reject.
func Sign(path string, params core.Params, secret []byte) string {
	if n := params.Count(NonceKey); n != 1 {
		panic(fmt.Sprintf("sign: params must contain exactly one %q entry, found %d", NonceKey, n))
	}
	nonce, _ := params.Get(NonceKey)
	return SignEncoded(path, nonce, params.Encode(), secret)
}

// SignEncoded signs an already encoded postdata. The caller guarantees that postdata is the
// exact body that will be sent and that it carries nonce.
func SignEncoded(path, nonce, postdata string, secret []byte) string {
	digest := sha256.Sum256([]byte(nonce + postdata))

	message := make([]byte, 0, len(path)+len(digest))
	message = append(message, path...)
	message = append(message, digest[:]...)

	mac := hmac.New(sha512.New, secret)
	mac.Write(message)
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}
