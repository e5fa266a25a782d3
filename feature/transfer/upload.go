package transfer

import (
	"io"
)

// UploadResult carries the final object details delivered once the provider
// has acknowledged every byte, or the error that ended the upload.
type UploadResult struct {
	Container string `json:"container"`
	Name      string `json:"name"`
	Size      int64  `json:"size"`
	ETag      string `json:"etag"`
	Err       error  `json:"-"`
}

// UploadHandle is a writable byte sink bound to one (bucket, key) pair.
// Bytes written are forwarded to the provider's multipart upload through a
// pipe; the handle never buffers the whole payload.
//
// The writer must Close (or Abort) the handle to finish the upload, then
// receive from Done. Exactly one result is delivered, and only after the
// provider has acknowledged the final part.
type UploadHandle struct {
	pw   *io.PipeWriter
	done chan UploadResult
}

// Write forwards p to the in-flight upload, blocking while the provider
// consumes earlier bytes.
func (h *UploadHandle) Write(p []byte) (int, error) {
	return h.pw.Write(p)
}

// Close flushes the upload. The completion result arrives on Done.
func (h *UploadHandle) Close() error {
	return h.pw.Close()
}

// Abort ends the upload with err; the provider call fails and Done delivers
// the failure.
func (h *UploadHandle) Abort(err error) {
	_ = h.pw.CloseWithError(err)
}

// Done returns the completion channel. It yields exactly one result.
func (h *UploadHandle) Done() <-chan UploadResult {
	return h.done
}
