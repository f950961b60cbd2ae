package ports_test

import (
	"testing"

	"github.com/mrraghuvarun/talent/internal/mocks"
	authmocks "github.com/mrraghuvarun/talent/internal/mocks/auth"
	"github.com/mrraghuvarun/talent/internal/ports"
)

// This test only verifies that our mocks conform to the ports at compile time.
func TestMocksImplementPorts(t *testing.T) {
	t.Helper()

	var _ ports.Authenticator = (*authmocks.StaticAuthenticator)(nil)
	var _ ports.SessionStore = (*authmocks.MemorySessionStore)(nil)
	var _ ports.Authenticator = (*mocks.MockAuthenticator)(nil)
	var _ ports.CandidateAPI = (*mocks.MockCandidateAPI)(nil)
	var _ ports.DetailsAPI = (*mocks.MockDetailsAPI)(nil)
	var _ ports.MagicLinkAPI = (*mocks.MockMagicLinkAPI)(nil)
}
