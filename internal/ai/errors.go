// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package ai

import "errors"

// Sentinel errors for the remote generation failure modes. Callers branch
// with errors.Is; every Generate failure wraps exactly one of these.
var (
	// ErrTransport means the HTTP request never completed (network
	// unreachable, DNS failure, timeout, cancelled context).
	ErrTransport = errors.New("ai: transport error")

	// ErrHTTPStatus means the endpoint answered with a non-2xx status.
	ErrHTTPStatus = errors.New("ai: unexpected http status")

	// ErrMalformedResponse means the body was not the expected JSON
	// envelope, or the envelope lacked a first completion with text.
	ErrMalformedResponse = errors.New("ai: malformed response")

	// ErrEmptyResult means the call succeeded but the completion text
	// was blank.
	ErrEmptyResult = errors.New("ai: empty result")
)
