package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avestaexchange/avesta/internal/shared/config"
)

func TestInit_SQLite(t *testing.T) {
	cfg := &config.DatabaseConfig{Driver: "sqlite", Path: ":memory:"}

	require.NoError(t, Init(cfg))
	t.Cleanup(func() { _ = Close() })

	assert.NotNil(t, Get())
	assert.NoError(t, Ping())
}

func TestFilteredLogger_DropsSchemaProbes(t *testing.T) {
	l := &filteredLogger{}
	assert.NotPanics(t, func() {
		l.Printf("%s", "SELECT VERSION()")
		l.Printf("%s", "[error] boom")
		l.Printf("%s", "SLOW SQL >= 200ms")
	})
}
