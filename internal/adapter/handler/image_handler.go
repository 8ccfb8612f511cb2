package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pillowcase/pillowcase/internal/adapter/handler/dto/request"
	"github.com/pillowcase/pillowcase/internal/adapter/handler/dto/response"
	"github.com/pillowcase/pillowcase/internal/pkg/httputil"
	"github.com/pillowcase/pillowcase/internal/pkg/pagination"
	"github.com/pillowcase/pillowcase/internal/usecase/images"
)

type ImageHandler struct {
	imageSvc      ImageService
	maxUploadSize int64
}

func NewImageHandler(imageSvc ImageService, maxUploadSize int64) *ImageHandler {
	return &ImageHandler{imageSvc: imageSvc, maxUploadSize: maxUploadSize}
}

func (h *ImageHandler) Upload(c *gin.Context) {
	file, header, ok := openUpload(c, h.maxUploadSize)
	if !ok {
		return
	}
	defer file.Close()

	img, err := h.imageSvc.Upload(c.Request.Context(), images.UploadInput{
		File:        file,
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
	})
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.Created(c, response.ImageFromEntity(img))
}

func (h *ImageHandler) Get(c *gin.Context) {
	id, ok := imageID(c)
	if !ok {
		return
	}

	data, err := h.imageSvc.Fetch(c.Request.Context(), id)
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.PNG(c, data)
}

func (h *ImageHandler) List(c *gin.Context) {
	var params request.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		httputil.ErrorWithCode(c, http.StatusBadRequest, "INVALID_PARAMETER", "invalid pagination parameters")
		return
	}

	imgs, info, err := h.imageSvc.List(c.Request.Context(), pagination.NewParams(params.Page, params.PerPage))
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.OK(c, response.ListToResponse(imgs, info))
}

func (h *ImageHandler) Resized(c *gin.Context) {
	id, ok := imageID(c)
	if !ok {
		return
	}

	var params request.StoredResizeParams
	if err := c.ShouldBindQuery(&params); err != nil {
		httputil.ErrorWithCode(c, http.StatusBadRequest, "INVALID_PARAMETER", "width and height must be positive integers")
		return
	}

	data, err := h.imageSvc.ResizeStored(c.Request.Context(), id, params.Width, params.Height, params.Locked())
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.PNG(c, data)
}

func (h *ImageHandler) Rotated(c *gin.Context) {
	id, ok := imageID(c)
	if !ok {
		return
	}

	var params request.StoredRotateParams
	if err := c.ShouldBindQuery(&params); err != nil {
		httputil.ErrorWithCode(c, http.StatusBadRequest, "INVALID_PARAMETER", "degrees is required and direction must be R or L")
		return
	}

	data, err := h.imageSvc.RotateStored(c.Request.Context(), id, *params.Degrees, params.Direction)
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.PNG(c, data)
}

func (h *ImageHandler) Delete(c *gin.Context) {
	id, ok := imageID(c)
	if !ok {
		return
	}

	if err := h.imageSvc.Delete(c.Request.Context(), id); err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.NoContent(c)
}

func imageID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.ErrorWithCode(c, http.StatusBadRequest, "INVALID_PARAMETER", "invalid image id")
		return uuid.Nil, false
	}
	return id, true
}
