package ui

import (
	"os"
	"testing"
)

func TestMain(m *testing.M) {
	// Modal styles are normally pushed into the modals package when the app
	// starts; tests render modals directly, so wire them up here.
	RefreshModalStyles()
	os.Exit(m.Run())
}
