package service_test

import (
	"testing"

	"github.com/phrazzld/podcast-api/internal/config"
	"github.com/phrazzld/podcast-api/internal/platform/logger"
	"github.com/phrazzld/podcast-api/internal/platform/memory"
	"github.com/phrazzld/podcast-api/internal/service"
	"github.com/phrazzld/podcast-api/internal/service/auth"
	"golang.org/x/crypto/bcrypt"
)

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:  "test-jwt-secret-that-is-32-chars-long",
		BcryptCost: bcrypt.MinCost,
	}
}

// newMemoryPodcastService wires a PodcastService to a fresh in-memory dataset.
func newMemoryPodcastService(t *testing.T) *service.PodcastServiceImpl {
	t.Helper()
	log, _ := logger.GetTestLogger(t)
	repos := memory.NewRepositories(auth.NewBcryptVerifier(bcrypt.MinCost))
	return service.NewPodcastService(repos.Podcasts(), repos.Episodes(), log)
}

func ptr[T any](v T) *T {
	return &v
}
