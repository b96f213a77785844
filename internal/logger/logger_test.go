package logger

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestInit_LevelFromEnvironment(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  zerolog.Level
	}{
		{name: "explicit level", value: "debug", want: zerolog.DebugLevel},
		{name: "warn level", value: "warn", want: zerolog.WarnLevel},
		{name: "unset defaults to info", value: "", want: zerolog.InfoLevel},
		{name: "garbage defaults to info", value: "loud", want: zerolog.InfoLevel},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("LOG_LEVEL", tc.value)
			Init()
			require.Equal(t, tc.want, zerolog.GlobalLevel())
		})
	}
}
