// Package request defines the input sources the binding engine reads from.
//
// A source is a flat, keyed view of raw values. Nested objects and
// collections are addressed by key prefixes ("address.city",
// "items[0].name"), and every source can hand out a sub-view scoped to one
// of those prefixes.
//
// # Data Interface
//
//	type Data interface {
//	    Value(key string) (BindingValue, bool)
//	    HasAnyValuePrefixedWith(prefix string) bool
//	    SubRequest(prefix string) Data
//	}
//
// # Sources
//
//   - MapData: in-memory map, the building block for most other sources.
//   - Composite: ordered fallthrough over several sources.
//   - FromViper: a viper instance (config files, env, defaults).
//   - FromEnv: process environment plus optional .env files.
//   - FromDocument: a YAML or JSON document, flattened to dotted keys.
//   - FromFiber: route params, query string and form body of a request.
//   - FromObject: a YAML or JSON document stored in object storage.
//   - FromRecord: a single database row.
//
// Sources are read-only for the duration of a bind.
package request
