// Package kraken is a client for the Kraken REST API.
//
// Public market data endpoints are sent as GET requests without authentication. Private
// account endpoints are POSTed as form-encoded bodies carrying a fresh nonce first, and are
// signed with the caller's credential:
//
//	cred, err := core.NewCredential(key, secret)
//	client, err := kraken.New(kraken.WithCredential(cred))
//	balances, err := client.Balance(ctx)
//
// Every call returns a *core.Error on failure. Its Kind tells transport failures,
// malformed bodies, broken envelopes and exchange-reported errors apart; for the latter
// Messages holds the exchange error strings in the order received.
//
// The Client is safe for concurrent use. Nonces come from a process-wide strictly
// increasing source, so clients sharing a key do not collide. Callers that need the
// exchange to observe nonces in submission order must serialize their private calls.
package kraken
