package request

import (
	"github.com/gofiber/fiber/v2"
)

// Source labels for values taken from an HTTP request.
const (
	SourceRoute = "route"
	SourceQuery = "query"
	SourceForm  = "form"
)

// FromFiber snapshots the route params, query string and url-encoded form
// body of c. Form values win over query values, which win over route
// params. Repeated keys are kept as a []string.
func FromFiber(c *fiber.Ctx) Composite {
	form := make(map[string]any)
	c.Request().PostArgs().VisitAll(func(k, v []byte) {
		collect(form, string(k), string(v))
	})

	query := make(map[string]any)
	c.Request().URI().QueryArgs().VisitAll(func(k, v []byte) {
		collect(query, string(k), string(v))
	})

	route := make(map[string]any)
	for k, v := range c.AllParams() {
		route[k] = v
	}

	return NewComposite(
		NewMapData(SourceForm, form),
		NewMapData(SourceQuery, query),
		NewMapData(SourceRoute, route),
	)
}

func collect(values map[string]any, key, value string) {
	switch existing := values[key].(type) {
	case nil:
		values[key] = value
	case string:
		values[key] = []string{existing, value}
	case []string:
		values[key] = append(existing, value)
	}
}
