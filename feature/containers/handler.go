package containers

import (
	"net/url"

	"storage-gateway/core/httperr"
	"storage-gateway/core/logger"
	"storage-gateway/core/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for containers and file metadata.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the container routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/", h.HandleListContainers)
	app.Post("/", h.HandleCreateContainer)
	app.Get("/:container", h.HandleGetContainer)
	app.Delete("/:container", h.HandleDestroyContainer)
	app.Get("/:container/files", h.HandleListFiles)
	app.Get("/:container/files/:file", h.HandleGetFile)
	app.Delete("/:container/files/:file", h.HandleRemoveFile)
}

// fileParam returns the decoded :file route parameter, so keys containing
// encoded slashes ("a%2Fb.txt") address nested objects.
func fileParam(c *fiber.Ctx) string {
	raw := c.Params("file")
	if decoded, err := url.PathUnescape(raw); err == nil {
		return decoded
	}
	return raw
}

// HandleListContainers lists all containers.
// @Summary List Containers
// @Description Lists every container: common prefixes of the fixed bucket, or all owned buckets.
// @Tags containers
// @Produce json
// @Success 200 {array} containers.Container "Containers"
// @Failure 500 {object} map[string]interface{} "Provider Error"
// @Router / [get]
func (h *Handler) HandleListContainers(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	result, err := h.service.ListContainers(c.Context())
	if err != nil {
		l.Error("Container listing failed", zap.Error(err))
		return httperr.Respond(c, err)
	}
	return c.JSON(result)
}

type createContainerRequest struct {
	Name string `json:"name"`
}

// HandleCreateContainer creates a container.
// @Summary Create Container
// @Description Creates a container: a folder marker in the fixed bucket, or a real bucket.
// @Tags containers
// @Accept json
// @Produce json
// @Param body body containers.Container true "Container name"
// @Success 201 {object} containers.Container "Created Container"
// @Failure 400 {object} map[string]interface{} "Invalid Name"
// @Failure 500 {object} map[string]interface{} "Provider Error"
// @Router / [post]
func (h *Handler) HandleCreateContainer(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req createContainerRequest
	if err := c.BodyParser(&req); err != nil {
		return httperr.BadRequest(c, "invalid request body")
	}

	container, err := h.service.CreateContainer(c.Context(), req.Name)
	if err != nil {
		l.Error("Container creation failed", zap.String("container", req.Name), zap.Error(err))
		return httperr.Respond(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(container)
}

// HandleGetContainer probes a container's existence.
// @Summary Get Container
// @Description Returns the container if it exists.
// @Tags containers
// @Produce json
// @Param container path string true "Container name"
// @Success 200 {object} containers.Container "Container"
// @Failure 404 {object} map[string]interface{} "Not Found"
// @Router /{container} [get]
func (h *Handler) HandleGetContainer(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	name := c.Params("container")

	container, err := h.service.GetContainer(c.Context(), name)
	if err != nil {
		l.Warn("Container lookup failed", zap.String("container", name), zap.Error(err))
		return httperr.Respond(c, err)
	}
	return c.JSON(container)
}

// HandleDestroyContainer destroys a container and its files.
// @Summary Destroy Container
// @Description Deletes the container. In prefix mode all contained files are batch-deleted first.
// @Tags containers
// @Param container path string true "Container name"
// @Success 204 "Destroyed"
// @Failure 500 {object} map[string]interface{} "Provider Error"
// @Router /{container} [delete]
func (h *Handler) HandleDestroyContainer(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	name := c.Params("container")

	if err := h.service.DestroyContainer(c.Context(), name); err != nil {
		l.Error("Container destroy failed", zap.String("container", name), zap.Error(err))
		return httperr.Respond(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleListFiles lists the files of a container.
// @Summary List Files
// @Description Lists file metadata for every object in the container. Supports an optional result limit.
// @Tags files
// @Produce json
// @Param container path string true "Container name"
// @Param limit query int false "Maximum number of entries (0 = unlimited)"
// @Success 200 {array} containers.FileMetadata "Files"
// @Failure 500 {object} map[string]interface{} "Provider Error"
// @Router /{container}/files [get]
func (h *Handler) HandleListFiles(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	name := c.Params("container")
	limit := utils.ToInt(c.Query("limit"))

	files, err := h.service.ListFiles(c.Context(), name, limit)
	if err != nil {
		l.Error("File listing failed", zap.String("container", name), zap.Error(err))
		return httperr.Respond(c, err)
	}
	return c.JSON(files)
}

// HandleGetFile returns a single file's metadata.
// @Summary Get File Metadata
// @Description Returns size, lastModified, etag and custom metadata of a file.
// @Tags files
// @Produce json
// @Param container path string true "Container name"
// @Param file path string true "File name"
// @Success 200 {object} containers.FileMetadata "File Metadata"
// @Failure 404 {object} map[string]interface{} "Not Found"
// @Router /{container}/files/{file} [get]
func (h *Handler) HandleGetFile(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	name := c.Params("container")
	file := fileParam(c)

	meta, err := h.service.StatFile(c.Context(), name, file)
	if err != nil {
		l.Warn("File lookup failed",
			zap.String("container", name),
			zap.String("file", file),
			zap.Error(err))
		return httperr.Respond(c, err)
	}
	return c.JSON(meta)
}

// HandleRemoveFile deletes a single file.
// @Summary Remove File
// @Description Deletes the file. Removing an absent file succeeds.
// @Tags files
// @Param container path string true "Container name"
// @Param file path string true "File name"
// @Success 204 "Removed"
// @Failure 500 {object} map[string]interface{} "Provider Error"
// @Router /{container}/files/{file} [delete]
func (h *Handler) HandleRemoveFile(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	name := c.Params("container")
	file := fileParam(c)

	if err := h.service.RemoveFile(c.Context(), name, file); err != nil {
		l.Error("File removal failed",
			zap.String("container", name),
			zap.String("file", file),
			zap.Error(err))
		return httperr.Respond(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
