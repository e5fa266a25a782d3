// Package bucketmap maps the gateway's container/file abstraction onto
// provider buckets and keys.
//
// The gateway runs in one of two layouts, chosen by configuration:
//
//   - Prefix mode: a single fixed bucket hosts every container as a key
//     prefix ("docs/readme.txt" is file "readme.txt" in container "docs").
//   - Bucket mode: each container is a provider bucket of its own.
//
// The Resolver type encapsulates that branch once. Operations ask it for
// (bucket, key) or (bucket, prefix) pairs and never inspect the mode
// directly.
package bucketmap
