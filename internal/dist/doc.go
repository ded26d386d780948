// Package dist describes the Rust distribution server and the fixed set of
// toolchain components fetched from it.
//
// All configuration is an immutable value constructed once at startup and
// passed explicitly to the pipeline; nothing in this package reads ambient
// global state after construction. An optional YAML file can override the
// server URL and archive format, which is mainly useful for pointing the
// installer at a mirror.
package dist
