package errors

import "errors"

// Sentinel errors for known conditions.
var (
	// ErrArgumentCount indicates the tool was not given exactly a plugin name and a path.
	ErrArgumentCount = errors.New("wrong number of arguments")

	// ErrInvalidName indicates a plugin name outside [A-Za-z0-9_-]+.
	ErrInvalidName = errors.New("invalid plugin name")

	// ErrPathNotFound indicates the destination path does not exist.
	ErrPathNotFound = errors.New("path not found")

	// ErrNameCollision indicates the plugin folder already exists at the destination.
	ErrNameCollision = errors.New("name collision")

	// ErrIO indicates a filesystem failure while emitting the scaffold tree.
	ErrIO = errors.New("io error")
)
