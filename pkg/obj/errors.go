package obj

import "errors"

// OBJ loading errors.
var (
	ErrFileNotFound     = errors.New("OBJ file not found")
	ErrFileUnreadable   = errors.New("OBJ file unreadable")
	ErrMalformedRecord  = errors.New("malformed OBJ record")
	ErrIndexOutOfRange  = errors.New("OBJ index out of range")
	ErrUnknownDirective = errors.New("unknown OBJ directive")
)
