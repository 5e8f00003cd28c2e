// Copyright 2026 The Helpbot Authors
// SPDX-License-Identifier: Apache-2.0

package state

// Session holds the bot's Matrix session credentials.
type Session struct {
	// AccessToken is the token from the last successful login. Nil
	// until the bot logs in for the first time.
	AccessToken *string `cbor:"access_token"`
}

const sessionFileName = "session.cbor"

// SessionStore returns the durable store for the session record under
// directory.
func SessionStore(directory string) *Store[Session] {
	return NewStore(directory, sessionFileName, func() Session {
		return Session{}
	})
}
