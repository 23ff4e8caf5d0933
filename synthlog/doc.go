// Package synthlog provides the numeric-leveled logging sink the synthesis
// engine emits progress through. There is no process-wide log level: every
// call site receives its Sink as an explicit parameter, so two concurrent
// callers can run the engine with independent verbosity.
//
// Level 1 announces the start of a new outer-loop iteration ("starting
// search with n components"), level 2 reports the best error found so far,
// and level 3 reports the best network found so far. A Sink that ignores
// levels above its threshold must still be cheap to call — callers should
// not need to guard calls with an Enabled check in the hot path.
package synthlog
