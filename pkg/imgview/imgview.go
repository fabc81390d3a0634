// Package imgview implements the session core of a photo culling tool: a
// durable pinned/skipped metadata store with optimistic concurrency
// protection, a deterministically ordered navigable image catalog, and a
// best-effort batch exporter for kept images.
//
// The package renders nothing and decodes no pixels; it exists to be driven
// by an interactive viewer.
package imgview
