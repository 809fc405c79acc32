package logging

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestID(t *testing.T) {
	assert.Equal(t, "", RequestID(context.Background()))

	ctx := WithRequestID(context.Background(), "abc")
	assert.Equal(t, "abc", RequestID(ctx))

	inner := WithRequestID(ctx, "def")
	assert.Equal(t, "def", RequestID(inner))
	assert.Equal(t, "abc", RequestID(ctx))
}

func TestWithContextFields(t *testing.T) {
	args := []any{"k", "v"}
	assert.Equal(t, args, withContextFields(context.Background(), args))
	assert.Equal(t, []any{"k", "v", RequestIDKey, "x"},
		withContextFields(WithRequestID(context.Background(), "x"), []any{"k", "v"}))
}
