package identity

import (
	"time"

	"github.com/quinntest007-creator/QueueBlaze/internal/infrastructure/config"
)

func configForTest() config.JWTConfig {
	return config.JWTConfig{
		Secret:     "test-secret-key-at-least-32-chars",
		Expiration: time.Hour,
		Issuer:     "queueblaze-test",
	}
}
