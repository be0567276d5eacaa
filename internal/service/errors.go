// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrMissingFields indicates that a required form field was empty.
	ErrMissingFields = errors.New("fill all required fields")

	// ErrPasswordMismatch indicates that the password and its confirmation
	// did not match during registration.
	ErrPasswordMismatch = errors.New("passwords do not match")

	// ErrInvalidCredentials indicates a failed login. It covers both an
	// unknown username and a wrong password so that responses do not reveal
	// which of the two was the case.
	ErrInvalidCredentials = errors.New("invalid login")

	// ErrEmptyMessage indicates an attempt to post a message with no content
	// left after trimming whitespace.
	ErrEmptyMessage = errors.New("empty message")

	// ErrSessionCreationFailed indicates that opening a session failed, either
	// persisting the session record or signing its token.
	ErrSessionCreationFailed = errors.New("session creation failed")
)
