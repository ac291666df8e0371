package dawg

import "errors"

var (
	// ErrIO is returned when the storage cannot be opened, positioned or read.
	ErrIO = errors.New("dawg: i/o error")

	// ErrCorruptFormat is returned when the stored structure fails validation.
	ErrCorruptFormat = errors.New("dawg: corrupt format")

	// ErrClosed is returned by operations on a Dawg that has been closed.
	ErrClosed = errors.New("dawg: closed")

	// ErrWordOrder is returned when a word does not sort after the last one added.
	ErrWordOrder = errors.New("dawg: words not in alphabetical order")

	// ErrInvalidWord is returned for words that are empty or contain anything but a-z.
	ErrInvalidWord = errors.New("dawg: word must consist of a-z only")

	// ErrFinished is returned when adding to a builder after Finish.
	ErrFinished = errors.New("dawg: builder already finished")

	// ErrEmpty is returned when finishing a builder that has no words.
	ErrEmpty = errors.New("dawg: no words added")

	// ErrTooLarge is returned when the edges cannot be addressed by a record.
	ErrTooLarge = errors.New("dawg: too many edges for the index field")
)
