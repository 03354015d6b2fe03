package models

import "errors"

var (
	ErrInternal           = errors.New("internal server error")
	ErrMethodNotAllowed   = errors.New("method not allowed")
	ErrRouteNotFound      = errors.New("route not found")
	ErrInvalidParams      = errors.New("invalid params")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrFileNotFound       = errors.New("file not found")
	ErrFileExists         = errors.New("file already exists")
	ErrInvalidFileName    = errors.New("invalid file name")
	ErrMissingFile        = errors.New("no file uploaded")
)
