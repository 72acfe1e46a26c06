// Package logger builds the application's zap logger.
//
// Level and format come from Config. Debug level uses zap's development
// preset; every other level uses the production preset. The console format
// is meant for the CLI, json for the server.
//
// WithRayID tags a logger with the request's ray id. LogProblems writes
// binding problems as one structured warning each, with the property, key
// and source as fields.
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	l := logger.WithRayID(log, c)
//	logger.LogProblems(l, "Model bound with problem", problems)
package logger
