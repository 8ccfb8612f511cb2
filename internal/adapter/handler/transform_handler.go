package handler

import (
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/pillowcase/pillowcase/internal/adapter/handler/dto/request"
	"github.com/pillowcase/pillowcase/internal/adapter/handler/dto/response"
	"github.com/pillowcase/pillowcase/internal/pkg/httputil"
	"github.com/pillowcase/pillowcase/internal/usecase/images"
)

// TransformHandler serves the one-shot endpoints: upload, transform, persist
// and describe the stored result in a single request.
type TransformHandler struct {
	transformSvc  TransformService
	maxUploadSize int64
}

func NewTransformHandler(transformSvc TransformService, maxUploadSize int64) *TransformHandler {
	return &TransformHandler{transformSvc: transformSvc, maxUploadSize: maxUploadSize}
}

func (h *TransformHandler) Resize(c *gin.Context) {
	file, _, ok := openUpload(c, h.maxUploadSize)
	if !ok {
		return
	}
	defer file.Close()

	var params request.ResizeParams
	if err := c.ShouldBind(&params); err != nil {
		httputil.ErrorWithCode(c, http.StatusBadRequest, "INVALID_PARAMETER", "width and height must be positive integers")
		return
	}

	img, err := h.transformSvc.Resize(c.Request.Context(), images.ResizeInput{
		File:            file,
		Width:           params.Width,
		Height:          params.Height,
		LockAspectRatio: params.LockAspectRatio,
	})
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.OK(c, response.TransformToResponse(img))
}

func (h *TransformHandler) Rotate(c *gin.Context) {
	file, _, ok := openUpload(c, h.maxUploadSize)
	if !ok {
		return
	}
	defer file.Close()

	var params request.RotateParams
	if err := c.ShouldBind(&params); err != nil {
		httputil.ErrorWithCode(c, http.StatusBadRequest, "INVALID_PARAMETER", "degrees is required and direction must be R or L")
		return
	}

	img, err := h.transformSvc.Rotate(c.Request.Context(), images.RotateInput{
		File:      file,
		Degrees:   *params.Degrees,
		Direction: params.Direction,
	})
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.OK(c, response.TransformToResponse(img))
}

// openUpload bounds the request body and extracts the image part. The
// content type header is only a cheap first gate; the decoder has the final
// say on whether the payload is an image.
func openUpload(c *gin.Context, maxUploadSize int64) (multipart.File, *multipart.FileHeader, bool) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		httputil.ErrorWithCode(c, http.StatusBadRequest, "INVALID_PARAMETER", "file is required")
		return nil, nil, false
	}

	if contentType := header.Header.Get("Content-Type"); !strings.HasPrefix(contentType, "image/") {
		file.Close()
		httputil.ErrorWithCode(c, http.StatusUnsupportedMediaType, "UNSUPPORTED_FORMAT", "content type must be image/*")
		return nil, nil, false
	}

	return file, header, true
}
