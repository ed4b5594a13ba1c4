// Package testutil holds helpers shared by tests that bind real sockets.
package testutil

import (
	"net"
	"sync"
	"testing"
)

var (
	portMutex sync.Mutex
	usedPorts = make(map[int]struct{})
)

// GetRandomPort returns a free TCP port not handed out before in this process.
func GetRandomPort(t *testing.T) int {
	t.Helper()
	portMutex.Lock()
	defer portMutex.Unlock()

	for {
		listener, err := net.Listen("tcp", "127.0.0.1:0")
		if err != nil {
			t.Fatalf("Failed to get random port: %v", err)
		}
		p := listener.Addr().(*net.TCPAddr).Port
		if err := listener.Close(); err != nil {
			t.Fatalf("Failed to close listener: %v", err)
		}
		if _, ok := usedPorts[p]; ok {
			continue
		}
		usedPorts[p] = struct{}{}
		return p
	}
}
