// Package usercenter implements a self-service account core: a
// registration validation pipeline, deterministic credential hashing,
// session-bound login state, role-gated admin operations, and a
// sanitized user projection for everything that leaves the core.
//
// Storage is a bun-backed user record store behind the Users interface;
// the session binder works on an explicit Session context passed into
// every authenticated operation. An optional fiber controller exposes
// the REST boundary.
package usercenter
