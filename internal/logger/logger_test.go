package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestFromContext(t *testing.T) {
	t.Run("returns the logger attached by AddToContext", func(t *testing.T) {
		attached := zap.NewNop().Sugar()
		ctx := AddToContext(context.Background(), attached)
		require.Same(t, attached, FromContext(ctx))
	})

	t.Run("bare context still yields a usable logger", func(t *testing.T) {
		require.NotNil(t, FromContext(context.Background()))
	})
}
