package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"gogokodo/internal/page/model"
	"gogokodo/internal/page/service"
	"gogokodo/pkg/logger"
)

const welcomePage = `<!DOCTYPE html>
<html>
<head>
<title>Welcome to GoGoKodo</title>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body>
<h1>Welcome to GoGoKodo</h1>
<p>Visit /{path} to see content with templates</p>
</body>
</html>
`

type PageHandler struct {
	Service *service.PageService
}

func NewPageHandler(service *service.PageService) *PageHandler {
	return &PageHandler{Service: service}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// Welcome serves the static root page.
func (h *PageHandler) Welcome(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(welcomePage))
}

// RenderPage composes and serves the page stored for the request path.
func (h *PageHandler) RenderPage(w http.ResponseWriter, r *http.Request) {
	page, err := h.Service.RenderPage(r.Context(), r.URL.Path)
	if errors.Is(err, service.ErrContentNotFound) {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}
	if err != nil {
		logger.Sugar.Errorf("Failed to render %s: %v", r.URL.Path, err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(page))
}

// CreateTemplate persists a template under its stringified id. Only the
// structure is stored; any other fields in the body are dropped.
func (h *PageHandler) CreateTemplate(w http.ResponseWriter, r *http.Request) {
	var req model.CreateTemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: "Invalid request body"})
		return
	}

	id := model.TemplateKey(req.ID)
	if id == "" || req.Structure == "" {
		writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: "Missing required fields: id and structure"})
		return
	}

	if err := h.Service.SaveTemplate(r.Context(), id, model.Template{Structure: req.Structure}); err != nil {
		logger.Sugar.Errorf("Failed to save template %s: %v", id, err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, model.MessageResponse{Message: "Template created successfully"})
}

// GetTemplate returns the raw stored template JSON.
func (h *PageHandler) GetTemplate(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	tmpl, err := h.Service.ResolveTemplate(r.Context(), id)
	if err != nil {
		logger.Sugar.Errorf("Failed to fetch template %s: %v", id, err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if tmpl == nil {
		writeJSON(w, http.StatusNotFound, model.ErrorResponse{Error: "Template not found"})
		return
	}

	writeJSON(w, http.StatusOK, tmpl)
}

// GetContent returns the raw stored content JSON.
func (h *PageHandler) GetContent(w http.ResponseWriter, r *http.Request) {
	path := r.PathValue("path")

	content, err := h.Service.ResolveContent(r.Context(), path)
	if err != nil {
		logger.Sugar.Errorf("Failed to fetch content %s: %v", path, err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if content == nil {
		writeJSON(w, http.StatusNotFound, model.ErrorResponse{Error: "Content not found"})
		return
	}

	writeJSON(w, http.StatusOK, content)
}

// CreateContent persists a normalized content record under the raw path
// value from the body. Style and script default to empty strings so stored
// records always carry the full shape.
func (h *PageHandler) CreateContent(w http.ResponseWriter, r *http.Request) {
	var req model.CreateContentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if req.Path == "" || model.TemplateKey(req.TemplateID) == "" || req.Title == "" || req.Content == "" {
		writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: "Missing required fields: path, templateId, title, and content"})
		return
	}

	content := model.Content{
		TemplateID: req.TemplateID,
		Title:      req.Title,
		Content:    req.Content,
		Style:      req.Style,
		Script:     req.Script,
	}

	if err := h.Service.SaveContent(r.Context(), req.Path, content); err != nil {
		logger.Sugar.Errorf("Failed to save content %s: %v", req.Path, err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, model.MessageResponse{Message: "Content created successfully"})
}
