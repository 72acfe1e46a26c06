// Package modelbind exposes the binding engine over HTTP.
//
// A Catalog maps public model names to Go types. The Service binds a named
// model from any request.Data, or from a YAML/JSON document kept in object
// storage, and returns the value together with every problem found.
//
// # Routes
//
//	GET  /bind                      list the catalog
//	POST /bind/:model               bind from the body, query and form
//	GET  /bind/:model/object/*      bind from a stored document
//
// A request that binds with problems still answers 200: problems are part of
// the result, not a failure of the call.
package modelbind
