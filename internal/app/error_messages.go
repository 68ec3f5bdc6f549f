// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// blog API handlers.
//
// All Msg* constants are human-readable message strings written into HTTP
// response bodies. Error messages of domain failures come from the sentinel
// errors of the service and validators packages; the constants here cover
// the responses that have no such error behind them.
package app

const (
	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve. The cause is logged only.
	MsgInternalServerError = "internal server error"

	// MsgRouteNotFound is returned for unknown paths and for methods a known
	// path does not handle.
	MsgRouteNotFound = "route not found"

	// MsgLoggedOut confirms that the session cookie was cleared.
	MsgLoggedOut = "logged out successfully"

	// MsgResetTokenCreated confirms that a reset token was issued in the
	// reset_token cookie.
	MsgResetTokenCreated = "reset token created successfully"

	// MsgPasswordUpdated confirms a successful password reset.
	MsgPasswordUpdated = "password updated successfully"

	// MsgServiceRunning is the liveness text served at the root path.
	MsgServiceRunning = "go-blog-keeper API is running"
)
