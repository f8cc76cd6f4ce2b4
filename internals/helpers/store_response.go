// file: internals/helpers/store_response.go
package helper

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"engclass_backend/internals/store"
)

// JsonStoreError renders a record-store failure with the mapped status.
func JsonStoreError(c *fiber.Ctx, err error) error {
	status := store.HTTPStatus(err)
	msg := err.Error()
	if errors.Is(err, store.ErrStoreUnavailable) {
		// don't leak driver details to the client
		msg = store.ErrStoreUnavailable.Error()
	}
	return JsonError(c, status, msg)
}
