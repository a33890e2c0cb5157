package minabox

import "errors"

// Sentinel errors for the minabox package.
var (
	// ErrNegativeIndex is returned when registering an item under a negative index.
	ErrNegativeIndex = errors.New("minabox: negative item index")

	// ErrNilItems is returned when writing to a nil Items map.
	ErrNilItems = errors.New("minabox: put into nil Items")

	// ErrNegativeCount is returned when bulk registration is asked for a negative count.
	ErrNegativeCount = errors.New("minabox: negative item count")
)
