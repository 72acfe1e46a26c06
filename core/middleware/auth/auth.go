package auth

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
)

// Header is the request header carrying the API key.
const Header = "X-API-Key"

// Config holds the auth middleware configuration.
type Config struct {
	// ApiKey is the expected key. An empty key disables the check.
	ApiKey string
	// Next skips the middleware when it returns true.
	Next func(c *fiber.Ctx) bool
}

// New returns a middleware rejecting requests without a valid API key.
// The key is read from the X-API-Key header, then the api_key query parameter.
func New(cfg Config) fiber.Handler {
	expected := []byte(cfg.ApiKey)

	return func(c *fiber.Ctx) error {
		if cfg.ApiKey == "" || (cfg.Next != nil && cfg.Next(c)) {
			return c.Next()
		}

		key := c.Get(Header)
		if key == "" {
			key = c.Query("api_key")
		}

		if subtle.ConstantTimeCompare([]byte(key), expected) != 1 {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid or missing api key",
			})
		}
		return c.Next()
	}
}
