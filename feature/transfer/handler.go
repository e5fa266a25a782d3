package transfer

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/url"

	"storage-gateway/core/httperr"
	"storage-gateway/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles the streaming upload and download endpoints.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the transfer routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Post("/:container/upload", h.HandleUpload)
	app.Get("/:container/download/:file", h.HandleDownload)
}

// singleFilePart extracts the one file part a multipart upload must carry.
// Multi-file requests are rejected outright rather than racing on whichever
// part the parser happens to surface first.
func singleFilePart(form *multipart.Form) (*multipart.FileHeader, error) {
	var part *multipart.FileHeader
	count := 0
	for _, headers := range form.File {
		for _, fh := range headers {
			count++
			part = fh
		}
	}
	switch {
	case count == 0:
		return nil, fmt.Errorf("multipart request contains no file part")
	case count > 1:
		return nil, fmt.Errorf("multipart request contains %d file parts, expected exactly one", count)
	}
	return part, nil
}

// HandleUpload streams the request's file part into storage.
// @Summary Upload File
// @Description Accepts a multipart form with exactly one file part and streams it into the container. The part's filename becomes the file name.
// @Tags transfer
// @Accept multipart/form-data
// @Produce json
// @Param container path string true "Container name"
// @Param file formData file true "File to upload"
// @Success 201 {object} transfer.UploadResult "Uploaded Object"
// @Failure 400 {object} map[string]interface{} "Invalid Multipart Body"
// @Failure 500 {object} map[string]interface{} "Provider Error"
// @Router /{container}/upload [post]
func (h *Handler) HandleUpload(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	container := c.Params("container")

	form, err := c.MultipartForm()
	if err != nil {
		return httperr.BadRequest(c, "invalid multipart body")
	}

	fh, err := singleFilePart(form)
	if err != nil {
		return httperr.BadRequest(c, err.Error())
	}
	if fh.Filename == "" {
		return httperr.BadRequest(c, "file part has no filename")
	}

	src, err := fh.Open()
	if err != nil {
		return httperr.BadRequest(c, "unreadable file part")
	}
	defer src.Close()

	handle := h.service.OpenUpload(c.Context(), container, fh.Filename, fh.Header.Get(fiber.HeaderContentType))
	if _, err := io.Copy(handle, src); err != nil {
		handle.Abort(err)
		<-handle.Done()
		l.Error("Upload stream failed",
			zap.String("container", container),
			zap.String("file", fh.Filename),
			zap.Error(err))
		return httperr.Respond(c, err)
	}
	if err := handle.Close(); err != nil {
		return httperr.Respond(c, err)
	}

	result := <-handle.Done()
	if result.Err != nil {
		l.Error("Upload failed",
			zap.String("container", container),
			zap.String("file", fh.Filename),
			zap.Error(result.Err))
		return httperr.Respond(c, result.Err)
	}

	l.Info("Upload completed",
		zap.String("container", container),
		zap.String("file", result.Name),
		zap.Int64("size", result.Size))
	return c.Status(fiber.StatusCreated).JSON(result)
}

// HandleDownload streams a file back to the client as an attachment.
// @Summary Download File
// @Description Streams the file's bytes with an attachment disposition. No intermediate full-body buffer.
// @Tags transfer
// @Produce octet-stream
// @Param container path string true "Container name"
// @Param file path string true "File name"
// @Success 200 {file} binary "File Content"
// @Failure 404 {object} map[string]interface{} "Not Found"
// @Failure 500 {object} map[string]interface{} "Provider Error"
// @Router /{container}/download/{file} [get]
func (h *Handler) HandleDownload(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	container := c.Params("container")
	file := c.Params("file")
	if decoded, err := url.PathUnescape(file); err == nil {
		file = decoded
	}

	stream, err := h.service.Download(c.Context(), container, file)
	if err != nil {
		l.Warn("Download failed",
			zap.String("container", container),
			zap.String("file", file),
			zap.Error(err))
		return httperr.Respond(c, err)
	}

	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", stream.Name))
	c.Set(fiber.HeaderContentType, stream.ContentType)
	if stream.ETag != "" {
		c.Set(fiber.HeaderETag, fmt.Sprintf("%q", stream.ETag))
	}

	if stream.Size > 0 {
		return c.SendStream(stream.Body, int(stream.Size))
	}
	return c.SendStream(stream.Body)
}
