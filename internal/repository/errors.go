// Package repository implements data access over the relational
// store. Sentinel errors defined here let handlers map storage
// failures onto HTTP status codes without inspecting driver details.
package repository

import "errors"

// ErrUsernameExists is returned by UserRepo.Create when the requested
// username is already taken. Handlers translate it into HTTP 409.
var ErrUsernameExists = errors.New("username already exists")
