// Package containers exposes the gateway's container and file-metadata
// operations over HTTP.
//
// A container is either a real provider bucket (bucket mode) or a key prefix
// inside one fixed bucket (prefix mode); the mode is decided by
// configuration and encapsulated in the bucketmap.Resolver the service
// consumes.
//
// # Operations
//
//   - List / create / probe / destroy containers. Destroying a container in
//     prefix mode cascades a batch quiet-delete over every key under the
//     prefix, folder marker included.
//   - List file metadata (prefix-relative names, quote-stripped etags,
//     folder markers filtered out), stat a single file, remove a file.
//
// Upload and download streaming live in feature/transfer.
package containers
