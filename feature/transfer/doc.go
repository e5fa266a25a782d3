// Package transfer moves file payloads between HTTP clients and the
// provider without buffering whole objects in memory.
//
// # Upload
//
// OpenUpload returns an UploadHandle immediately: a writable sink whose
// bytes flow through an io.Pipe into the provider's multipart upload. The
// handle's Done channel delivers exactly one completion result, and only
// after the provider has acknowledged the final part. The HTTP endpoint
// accepts a multipart form with exactly one file part; requests carrying
// several file parts are rejected with 400.
//
// # Download
//
// Download exposes the provider's native object stream directly, preceded
// by a metadata probe so missing objects fail before any response bytes are
// written. The endpoint answers with an attachment disposition and the
// provider's content type, falling back to application/octet-stream.
package transfer
