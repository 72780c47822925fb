package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"millage/internal/models"
	"millage/internal/session"
)

type ImageResponse struct {
	ImageID   string `json:"imageId"`
	PostID    int64  `json:"postId"`
	ImageUrl  string `json:"imageUrl"`
	FileName  string `json:"fileName"`
	FileSize  int64  `json:"fileSize"`
	MimeType  string `json:"mimeType"`
	CreatedAt string `json:"createdAt"`
}

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// CreatePost adds a post to a board. The session user becomes the writer.
// POST /api/boards/{boardId}/posts
func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	boardID, ok := pathID(r, "boardId")
	if !ok {
		WriteError(w, "invalid board id", http.StatusBadRequest)
		return
	}

	var req models.CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	post, err := h.PostService.CreatePost(r.Context(), session.FromContext(r.Context()), boardID, req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, post, http.StatusCreated)
}

func (h *Handlers) GetPost(w http.ResponseWriter, r *http.Request) {
	postID, ok := pathID(r, "postId")
	if !ok {
		WriteError(w, "invalid post id", http.StatusBadRequest)
		return
	}

	post, err := h.PostService.GetPost(r.Context(), session.FromContext(r.Context()), postID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, post, http.StatusOK)
}

func (h *Handlers) DeletePost(w http.ResponseWriter, r *http.Request) {
	postID, ok := pathID(r, "postId")
	if !ok {
		WriteError(w, "invalid post id", http.StatusBadRequest)
		return
	}

	if err := h.PostService.DeletePost(r.Context(), session.FromContext(r.Context()), postID); err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, MessageResponse{Message: "post deleted"}, http.StatusOK)
}

func (h *Handlers) AddComment(w http.ResponseWriter, r *http.Request) {
	postID, ok := pathID(r, "postId")
	if !ok {
		WriteError(w, "invalid post id", http.StatusBadRequest)
		return
	}

	var req models.CreateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	comment, err := h.PostService.AddComment(r.Context(), session.FromContext(r.Context()), postID, req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, comment, http.StatusCreated)
}

// AddImage stores a multipart "image" file for a post.
// POST /api/posts/{postId}/images
func (h *Handlers) AddImage(w http.ResponseWriter, r *http.Request) {
	postID, ok := pathID(r, "postId")
	if !ok {
		WriteError(w, "invalid post id", http.StatusBadRequest)
		return
	}

	// setting the size limit from the config
	r.Body = http.MaxBytesReader(w, r.Body, h.Cfg.MaxUploadSize)
	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			WriteError(w, fmt.Sprintf("file is too large (max %d MB)", h.Cfg.MaxUploadSize/(1024*1024)), http.StatusBadRequest)
		} else {
			WriteError(w, "could not read multipart form", http.StatusBadRequest)
		}
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		WriteError(w, "image file is missing", http.StatusBadRequest)
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if !allowedImageTypes[contentType] {
		WriteError(w, "unsupported file type, allowed: JPEG, PNG, GIF, WebP", http.StatusBadRequest)
		return
	}

	image, err := h.PostService.AddImage(r.Context(), session.FromContext(r.Context()), postID, header.Filename, file, header.Size)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, ImageResponse{
		ImageID:   image.ImageID,
		PostID:    image.PostID,
		ImageUrl:  image.ImageURL,
		FileName:  header.Filename,
		FileSize:  header.Size,
		MimeType:  contentType,
		CreatedAt: image.CreatedAt.Format(time.RFC3339),
	}, http.StatusCreated)
}

func (h *Handlers) DeleteImage(w http.ResponseWriter, r *http.Request) {
	postID, ok := pathID(r, "postId")
	if !ok {
		WriteError(w, "invalid post id", http.StatusBadRequest)
		return
	}
	imageID := mux.Vars(r)["imageId"]

	if err := h.PostService.DeleteImage(r.Context(), session.FromContext(r.Context()), postID, imageID); err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, MessageResponse{Message: "image deleted"}, http.StatusOK)
}
