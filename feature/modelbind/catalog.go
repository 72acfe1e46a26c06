package modelbind

import (
	"reflect"
	"slices"
	"sync"

	"model-binder/core/config"
	"model-binder/core/database"
	"model-binder/core/logger"
	"model-binder/core/server"
	"model-binder/core/storage"
)

// Catalog maps public model names to the types bound for them.
type Catalog struct {
	mu     sync.RWMutex
	models map[string]reflect.Type
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{models: make(map[string]reflect.Type)}
}

// DefaultCatalog holds the application configuration and each of its
// sections, so any of them can be checked against arbitrary input.
func DefaultCatalog() *Catalog {
	c := NewCatalog()
	Add[config.Config](c, "config")
	Add[server.Config](c, "server")
	Add[storage.Config](c, "storage")
	Add[logger.Config](c, "log")
	Add[database.Config](c, "database")
	return c
}

// Add registers T under name, replacing any earlier entry.
func Add[T any](c *Catalog, name string) {
	c.Register(name, reflect.TypeFor[T]())
}

// Register registers t under name, replacing any earlier entry.
func (c *Catalog) Register(name string, t reflect.Type) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.models[name] = t
}

// Lookup returns the type registered under name.
func (c *Catalog) Lookup(name string) (reflect.Type, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	t, ok := c.models[name]
	return t, ok
}

// Names returns the registered model names in sorted order.
func (c *Catalog) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	names := make([]string, 0, len(c.models))
	for name := range c.models {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
