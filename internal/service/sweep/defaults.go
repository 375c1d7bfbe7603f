package sweep

import "time"

const (
	// statusAddressLen is how much of an address is shown in progress messages.
	statusAddressLen = 10

	persistTimeout = 30 * time.Second
)
