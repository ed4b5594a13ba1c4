package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetRandomPortUnique(t *testing.T) {
	ports := make(map[int]bool)
	for range 10 {
		port := GetRandomPort(t)
		assert.Greater(t, port, 0)
		assert.Less(t, port, 65536)
		assert.False(t, ports[port], "Port %d was already used", port)
		ports[port] = true
	}
}
