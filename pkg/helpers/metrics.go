package helpers

import "expvar"

// Process-wide counters exposed on /api/v1/debug/vars.
var (
	TokensIssued     = expvar.NewInt("auth_tokens_issued")
	RequestsRejected = expvar.NewInt("auth_requests_rejected")
)
