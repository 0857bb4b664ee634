package domain

import (
	"errors"
	"fmt"
)

// ErrNoFile marks an upload request that carried no file.
var ErrNoFile = errors.New("no file uploaded")

// UnsupportedFormatError names the extension that could not be dispatched.
type UnsupportedFormatError struct {
	Ext string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported file format: %s", e.Ext)
}
