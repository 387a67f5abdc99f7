package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateSimple(t *testing.T) {
	badRequest := CreateSimpleBadRequest("missing gene")
	assert.Equal(t, 400, badRequest.Code)
	assert.Equal(t, "Bad Request", badRequest.Message)
	assert.Equal(t, "missing gene", badRequest.Errors[0].Message)
	assert.False(t, badRequest.Timestamp.IsZero())

	assert.Equal(t, "Not Found", CreateSimpleNotFound("").Message)
	assert.Equal(t, 500, CreateSimpleInternalServerError("").Code)
}
