package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	// Header is the response header carrying the ray id.
	Header = "X-Ray-ID"
	// LocalsKey is the fiber locals key the ray id is stored under.
	LocalsKey = "ray_id"
)

// New returns a middleware that tags every request with a ray id.
// An incoming X-Ray-ID header is reused so callers can correlate requests.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(Header)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Locals(LocalsKey, rid)
		c.Set(Header, rid)
		return c.Next()
	}
}
