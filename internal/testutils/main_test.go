package testutils

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"testing"
)

// TestMain runs before all tests and ensures proper cleanup
// This ensures Docker cleanup even when running `go test ./...` directly
func TestMain(m *testing.M) {
	// Clean up on interruption (Ctrl+C) too
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("Received interrupt signal, cleaning up Docker containers...")
		CleanupSharedContainer()
		os.Exit(1)
	}()

	code := m.Run()

	CleanupSharedContainer()
	os.Exit(code)
}
