package store

import (
	"errors"

	"github.com/idelsangithub/business-logic-service/core"
	"github.com/idelsangithub/business-logic-service/store/remote"
)

// Translate maps any failure coming out of a store call into exactly one
// domain error kind. Domain errors raised upstream pass through unchanged;
// store envelope codes map onto the matching kind keeping the store's
// message; a store with no response at all becomes Internal. The mapping is
// total so callers never observe a raw transport error.
func Translate(err error, fallback string) error {
	if err == nil {
		return nil
	}

	var derr *core.Error
	if errors.As(err, &derr) {
		return derr
	}

	var renv *remote.Error
	if errors.As(err, &renv) {
		message := renv.Message
		if message == "" {
			message = fallback
		}

		switch renv.Code {
		case 400:
			return core.BadRequest(message)
		case 404:
			return core.NotFound(message)
		case 409:
			return core.Conflict(message)
		default:
			return core.Internal(message)
		}
	}

	var unavail *remote.UnavailableError
	if errors.As(err, &unavail) {
		return core.Internal("store unavailable, try again later")
	}

	return core.Internal("unexpected failure: " + err.Error())
}

func IsErrNotFound(err error) bool {
	return core.IsKind(err, core.KindNotFound)
}
