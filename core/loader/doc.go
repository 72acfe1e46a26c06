// Package loader registers HTTP features on the server.
//
// A Feature owns a set of routes. The Manager keeps features in the order
// they were registered and mounts every enabled one on a fiber router:
//
//	mgr := loader.NewManager()
//	mgr.Register(modelbind.NewFeature(store, cfg.Storage, log))
//	if err := mgr.LoadAll(app); err != nil {
//	    return err
//	}
//
// Loading stops at the first feature that fails.
package loader
