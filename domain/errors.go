package domain

import "errors"

var (
	// ErrUnauthorized indicates missing or invalid credentials.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrEmptyReply indicates the user submitted an empty reply.
	ErrEmptyReply = errors.New("reply cannot be empty")

	// ErrEmptyCredentials indicates a blank username or password at login/signup.
	ErrEmptyCredentials = errors.New("username and password cannot be empty")

	// ErrPasswordMismatch indicates the signup confirmation did not match.
	ErrPasswordMismatch = errors.New("entered passwords must match")

	// ErrRemote indicates the server answered but reported the operation unsuccessful.
	ErrRemote = errors.New("remote operation unsuccessful")

	// ErrNotFound indicates a requested node does not exist on the server.
	ErrNotFound = errors.New("not found")
)
