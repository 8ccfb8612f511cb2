package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/pillowcase/pillowcase/internal/adapter/handler"
	"github.com/pillowcase/pillowcase/internal/domain/entity"
	"github.com/pillowcase/pillowcase/internal/mocks"
	"github.com/pillowcase/pillowcase/internal/usecase/images"
)

var pngHeader = []byte{0x89, 0x50, 0x4E, 0x47}

func TestTransformHandler_Resize(t *testing.T) {
	t.Run("resizes and reports the stored result", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		transformSvc := mocks.NewMockTransformService(ctrl)
		h := handler.NewTransformHandler(transformSvc, testMaxUploadSize)

		router := setupRouter()
		router.POST("/resize", h.Resize)

		id := uuid.New()
		transformSvc.EXPECT().Resize(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, input images.ResizeInput) (*entity.Image, error) {
				assert.Equal(t, 120, input.Width)
				assert.Equal(t, 80, input.Height)
				assert.False(t, input.LockAspectRatio)
				return storedImage(id), nil
			})

		req := createMultipartRequest(t, "/resize", "file", "test.png", "image/png", pngHeader, map[string]string{
			"width":  "120",
			"height": "80",
		})
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "/api/v1/images/"+id.String(), resp["url"])
		assert.NotNil(t, resp["image"])
	})

	t.Run("rejects zero width without calling the service", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		transformSvc := mocks.NewMockTransformService(ctrl)
		h := handler.NewTransformHandler(transformSvc, testMaxUploadSize)

		router := setupRouter()
		router.POST("/resize", h.Resize)

		req := createMultipartRequest(t, "/resize", "file", "test.png", "image/png", pngHeader, map[string]string{
			"width":  "0",
			"height": "80",
		})
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "INVALID_PARAMETER", resp["code"])
	})

	t.Run("rejects missing height without calling the service", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		transformSvc := mocks.NewMockTransformService(ctrl)
		h := handler.NewTransformHandler(transformSvc, testMaxUploadSize)

		router := setupRouter()
		router.POST("/resize", h.Resize)

		req := createMultipartRequest(t, "/resize", "file", "test.png", "image/png", pngHeader, map[string]string{
			"width": "120",
		})
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejects a non-image content type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		transformSvc := mocks.NewMockTransformService(ctrl)
		h := handler.NewTransformHandler(transformSvc, testMaxUploadSize)

		router := setupRouter()
		router.POST("/resize", h.Resize)

		req := createMultipartRequest(t, "/resize", "file", "doc.pdf", "application/pdf", []byte("%PDF"), map[string]string{
			"width":  "120",
			"height": "80",
		})
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)
	})

	t.Run("rejects an oversized body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		transformSvc := mocks.NewMockTransformService(ctrl)
		h := handler.NewTransformHandler(transformSvc, 16) // tiny limit

		router := setupRouter()
		router.POST("/resize", h.Resize)

		req := createMultipartRequest(t, "/resize", "file", "big.png", "image/png", make([]byte, 1024), map[string]string{
			"width":  "120",
			"height": "80",
		})
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestTransformHandler_Rotate(t *testing.T) {
	t.Run("rotates and reports the stored result", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		transformSvc := mocks.NewMockTransformService(ctrl)
		h := handler.NewTransformHandler(transformSvc, testMaxUploadSize)

		router := setupRouter()
		router.POST("/rotate", h.Rotate)

		id := uuid.New()
		transformSvc.EXPECT().Rotate(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, input images.RotateInput) (*entity.Image, error) {
				assert.Equal(t, 90.0, input.Degrees)
				assert.Equal(t, "L", input.Direction)
				return storedImage(id), nil
			})

		req := createMultipartRequest(t, "/rotate", "file", "test.png", "image/png", pngHeader, map[string]string{
			"degrees":   "90",
			"direction": "L",
		})
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("accepts an explicit zero rotation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		transformSvc := mocks.NewMockTransformService(ctrl)
		h := handler.NewTransformHandler(transformSvc, testMaxUploadSize)

		router := setupRouter()
		router.POST("/rotate", h.Rotate)

		id := uuid.New()
		transformSvc.EXPECT().Rotate(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, input images.RotateInput) (*entity.Image, error) {
				assert.Equal(t, 0.0, input.Degrees)
				return storedImage(id), nil
			})

		req := createMultipartRequest(t, "/rotate", "file", "test.png", "image/png", pngHeader, map[string]string{
			"degrees": "0",
		})
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("rejects missing degrees without calling the service", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		transformSvc := mocks.NewMockTransformService(ctrl)
		h := handler.NewTransformHandler(transformSvc, testMaxUploadSize)

		router := setupRouter()
		router.POST("/rotate", h.Rotate)

		req := createMultipartRequest(t, "/rotate", "file", "test.png", "image/png", pngHeader, nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejects an unknown direction", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		transformSvc := mocks.NewMockTransformService(ctrl)
		h := handler.NewTransformHandler(transformSvc, testMaxUploadSize)

		router := setupRouter()
		router.POST("/rotate", h.Rotate)

		req := createMultipartRequest(t, "/rotate", "file", "test.png", "image/png", pngHeader, map[string]string{
			"degrees":   "90",
			"direction": "X",
		})
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
