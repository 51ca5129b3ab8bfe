package apperrors

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodeOf(t *testing.T) {
	assert.Equal(t, CodeNotFound, CodeOf(NotFound("idea not found")))
	assert.Equal(t, CodePermissionDenied, CodeOf(Forbidden("nope")))
	assert.Equal(t, CodeInternal, CodeOf(errors.New("plain error")))

	wrapped := Wrap(CodeInvalidArgument, "bad input", errors.New("cause"))
	assert.Equal(t, CodeInvalidArgument, CodeOf(wrapped))
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(CodeInvalidArgument))
	assert.Equal(t, http.StatusUnauthorized, HTTPStatus(CodeUnauthenticated))
	assert.Equal(t, http.StatusForbidden, HTTPStatus(CodePermissionDenied))
	assert.Equal(t, http.StatusNotFound, HTTPStatus(CodeNotFound))
	assert.Equal(t, http.StatusConflict, HTTPStatus(CodeAlreadyExists))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(CodeInternal))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(Code("SOMETHING_ELSE")))
}

func TestUnwrapKeepsCause(t *testing.T) {
	cause := errors.New("pq: duplicate key")
	err := Wrap(CodeInternal, "could not create user", cause)
	assert.ErrorIs(t, err, cause)
}
