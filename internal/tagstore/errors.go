package tagstore

import "errors"

var (
	// ErrFormat is returned when a persisted file is not a valid tag document
	ErrFormat = errors.New("tagstore: malformed tag file")

	// ErrValidation is returned when a tag or identifier is rejected
	ErrValidation = errors.New("tagstore: invalid value")

	// ErrIO is returned when reading or writing the tag file fails
	ErrIO = errors.New("tagstore: i/o failure")
)
