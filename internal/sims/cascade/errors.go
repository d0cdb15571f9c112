package cascade

import "errors"

var (
	// ErrInvalidInput indicates the grid text is empty, ragged or contains a
	// byte outside '0'..'9'.
	ErrInvalidInput = errors.New("cascade: invalid grid input")
	// ErrNeverSynchronizes indicates RunUntilAllFlash gave up after its step
	// cap without observing a step in which every cell flashed. Well-formed
	// puzzle inputs synchronize long before the default cap.
	ErrNeverSynchronizes = errors.New("cascade: grid never synchronizes")
)
