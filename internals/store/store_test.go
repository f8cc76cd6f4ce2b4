// file: internals/store/store_test.go
package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakePGErr struct{ state string }

func (e *fakePGErr) SQLState() string { return e.state }
func (e *fakePGErr) Error() string    { return "pg error " + e.state }

func TestTranslate_Nil(t *testing.T) {
	assert.NoError(t, Translate(nil))
}

func TestTranslate_RecordNotFound(t *testing.T) {
	err := Translate(gorm.ErrRecordNotFound)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTranslate_ConstraintViolations(t *testing.T) {
	for _, state := range []string{"23502", "23503", "23505", "23514"} {
		err := Translate(fmt.Errorf("query failed: %w", &fakePGErr{state: state}))
		assert.ErrorIs(t, err, ErrValidation, "state %s", state)
	}
}

func TestTranslate_DefaultIsUnavailable(t *testing.T) {
	err := Translate(errors.New("dial tcp: connection refused"))
	assert.ErrorIs(t, err, ErrStoreUnavailable)
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, 404, HTTPStatus(Translate(gorm.ErrRecordNotFound)))
	assert.Equal(t, 422, HTTPStatus(Translate(&fakePGErr{state: "23505"})))
	assert.Equal(t, 503, HTTPStatus(Translate(errors.New("boom"))))
}
