package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"wireframe-to-code-backend/internal/middleware"
	"wireframe-to-code-backend/internal/models"
	"wireframe-to-code-backend/internal/openrouter"
	"wireframe-to-code-backend/internal/services"
	"wireframe-to-code-backend/internal/supabase"
)

// Uploaded wireframe images are small sketches; 10MB is plenty.
const maxImageSize = 10 << 20

type WireframesHandler struct {
	service *services.GenerationService
}

func NewWireframesHandler(service *services.GenerationService) *WireframesHandler {
	return &WireframesHandler{service: service}
}

// Submit godoc
// @Summary     Submit a wireframe
// @Description Uploads a wireframe image to storage and creates a new record with no generated code yet.
// @Description The image is stored before the record is created; if storage fails, no record exists.
// @Tags        wireframes
// @Accept      multipart/form-data
// @Produce     json
// @Security    Bearer
// @Param       image formData file true "Wireframe image (png, jpeg or webp)"
// @Param       description formData string true "Free-text requirement description"
// @Param       model formData string true "Model identifier: deepseek, llama, or any other value for the default model"
// @Success     201 {object} models.WireframeResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     502 {object} models.ErrorResponse
// @Router      /wireframes [post]
func (h *WireframesHandler) Submit(c *gin.Context) {
	email := c.GetString(middleware.EmailKey)

	var req models.SubmitWireframeRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid form data",
			Message: err.Error(),
		})
		return
	}
	if req.Description == "" || req.Model == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "description and model are required",
		})
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "no image uploaded",
			Message: "please provide the wireframe image in the \"image\" form field",
		})
		return
	}
	if fileHeader.Size > maxImageSize {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "image too large",
		})
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "failed to open uploaded file",
			Message: err.Error(),
		})
		return
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "failed to read uploaded file",
			Message: err.Error(),
		})
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")

	wireframe, err := h.service.SubmitWireframe(c.Request.Context(), data, contentType, req.Description, req.Model, email)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.NewWireframeResponse(wireframe))
}

// Get godoc
// @Summary     Fetch a wireframe by uid
// @Description Returns the record for the given uid, including the generated code once present.
// @Tags        wireframes
// @Produce     json
// @Security    Bearer
// @Param       uid path string true "Wireframe uid"
// @Success     200 {object} models.WireframeResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /wireframes/{uid} [get]
func (h *WireframesHandler) Get(c *gin.Context) {
	uid := c.Param("uid")

	wireframe, err := h.service.FetchWireframe(c.Request.Context(), uid)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.NewWireframeResponse(wireframe))
}

// List godoc
// @Summary     List the caller's wireframes
// @Description Returns all wireframes created by the authenticated email, newest first.
// @Description With a uid query parameter, returns that single record instead.
// @Tags        wireframes
// @Produce     json
// @Security    Bearer
// @Param       uid query string false "Fetch a single wireframe by uid"
// @Success     200 {object} models.WireframeListResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /wireframes [get]
func (h *WireframesHandler) List(c *gin.Context) {
	// uid as a query parameter is an alternate fetch-by-uid form.
	if uid := c.Query("uid"); uid != "" {
		wireframe, err := h.service.FetchWireframe(c.Request.Context(), uid)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.NewWireframeResponse(wireframe))
		return
	}

	email := c.GetString(middleware.EmailKey)

	wireframes, err := h.service.ListWireframes(c.Request.Context(), email)
	if err != nil {
		respondError(c, err)
		return
	}

	summaries := make([]models.WireframeSummary, 0, len(wireframes))
	for i := range wireframes {
		summaries = append(summaries, models.NewWireframeSummary(&wireframes[i]))
	}

	c.JSON(http.StatusOK, models.WireframeListResponse{Wireframes: summaries})
}

// Generate godoc
// @Summary     Generate code for a wireframe
// @Description Runs the completion call with the record's description, model and image, persists the
// @Description returned code (overwriting any previous generation) and returns it. On any failure the
// @Description stored code is left unchanged and the caller may retry manually.
// @Tags        wireframes
// @Produce     json
// @Security    Bearer
// @Param       uid path string true "Wireframe uid"
// @Success     200 {object} models.GenerateCodeResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     502 {object} models.ErrorResponse
// @Failure     504 {object} models.ErrorResponse
// @Router      /wireframes/{uid}/generate [post]
func (h *WireframesHandler) Generate(c *gin.Context) {
	uid := c.Param("uid")

	code, err := h.service.GenerateCode(c.Request.Context(), uid)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.GenerateCodeResponse{UID: uid, Code: code})
}

// respondError maps the adapter error taxonomy to HTTP statuses. Upstream
// credential problems are 502, not 401: the caller's own auth already passed
// and there is nothing they can do about the server's API key.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, supabase.ErrNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "no record found",
			Message: err.Error(),
		})
	case errors.Is(err, supabase.ErrDuplicateUID):
		c.JSON(http.StatusConflict, models.ErrorResponse{
			Error:   "duplicate uid",
			Message: err.Error(),
		})
	case errors.Is(err, supabase.ErrStorage):
		c.JSON(http.StatusBadGateway, models.ErrorResponse{
			Error:   "image storage failed",
			Message: err.Error(),
		})
	case errors.Is(err, openrouter.ErrAuth),
		errors.Is(err, openrouter.ErrUpstream),
		errors.Is(err, openrouter.ErrMalformedResponse):
		c.JSON(http.StatusBadGateway, models.ErrorResponse{
			Error:   "failed to generate code",
			Message: err.Error(),
		})
	case errors.Is(err, openrouter.ErrNetwork):
		c.JSON(http.StatusGatewayTimeout, models.ErrorResponse{
			Error:   "failed to reach AI service",
			Message: err.Error(),
		})
	default:
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "internal error",
			Message: err.Error(),
		})
	}
}
