package draglook

import (
	"errors"
)

// ErrHostUnavailable is returned when the component is created without the
// entity, host or tracker it needs to run.
var ErrHostUnavailable = errors.New("host unavailable")
