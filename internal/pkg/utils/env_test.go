package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Run("Missing keys fall back to defaults", func(t *testing.T) {
		assert.Equal(t, "fallback", GetEnvString("NECESSITOUS_TEST_MISSING", "fallback"))
		assert.Equal(t, 7, GetEnvInt("NECESSITOUS_TEST_MISSING", 7))
		assert.Equal(t, true, GetEnvBool("NECESSITOUS_TEST_MISSING", true))
		assert.Equal(t, time.Minute, GetEnvDuration("NECESSITOUS_TEST_MISSING", time.Minute))
	})

	t.Run("Present keys are parsed", func(t *testing.T) {
		t.Setenv("NECESSITOUS_TEST_INT", "42")
		t.Setenv("NECESSITOUS_TEST_BOOL", "false")
		t.Setenv("NECESSITOUS_TEST_DURATION", "15s")
		t.Setenv("NECESSITOUS_TEST_INT64", "9000000000")

		assert.Equal(t, 42, GetEnvInt("NECESSITOUS_TEST_INT", 1))
		assert.Equal(t, false, GetEnvBool("NECESSITOUS_TEST_BOOL", true))
		assert.Equal(t, 15*time.Second, GetEnvDuration("NECESSITOUS_TEST_DURATION", time.Minute))
		assert.Equal(t, int64(9000000000), GetEnvInt64("NECESSITOUS_TEST_INT64", 1))
	})

	t.Run("Unparseable values fall back to defaults", func(t *testing.T) {
		t.Setenv("NECESSITOUS_TEST_INT", "not-a-number")
		assert.Equal(t, 3, GetEnvInt("NECESSITOUS_TEST_INT", 3))
	})
}
