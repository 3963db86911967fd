package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonical(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "1.2.3", want: "v1.2.3"},
		{in: "v1.2", want: "v1.2.0"},
		{in: " v2.0.0+build.7 ", want: "v2.0.0"},
		{in: "dev", want: "dev"},
		{in: "", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Canonical(tt.in))
		})
	}
}

func TestString(t *testing.T) {
	Version, Commit = "1.4.0", "abc123"
	t.Cleanup(func() { Version, Commit = "dev", "unknown" })

	assert.Equal(t, "v1.4.0 (abc123)", String())
}
