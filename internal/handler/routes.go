package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
)

func NewRouter(h *Handlers) *mux.Router {
	router := mux.NewRouter()

	router.HandleFunc("/health", HealthHandler).Methods(http.MethodGet)
	router.HandleFunc("/tables", h.TablesHandler).Methods(http.MethodGet)
	router.HandleFunc("/boards/{boardId:[0-9]+}", h.BoardPage).Methods(http.MethodGet)

	api := router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/user/session", h.GetSession).Methods(http.MethodGet)

	api.HandleFunc("/units/{unitId:[0-9]+}/boards", h.GetBoardList).Methods(http.MethodGet)
	api.HandleFunc("/units/{unitId:[0-9]+}/boards", h.CreateBoard).Methods(http.MethodPost)
	api.HandleFunc("/units/{unitId:[0-9]+}/boards/preview", h.GetBoardPreview).Methods(http.MethodGet)
	api.HandleFunc("/units/{unitId:[0-9]+}/boards/{boardId:[0-9]+}", h.UpdateBoard).Methods(http.MethodPut)
	api.HandleFunc("/units/{unitId:[0-9]+}/boards/{boardId:[0-9]+}", h.DeleteBoard).Methods(http.MethodDelete)
	api.HandleFunc("/units/{unitId:[0-9]+}/recruits", h.GetRecruits).Methods(http.MethodGet)

	api.HandleFunc("/boards/{boardId:[0-9]+}", h.GetBoard).Methods(http.MethodGet)
	api.HandleFunc("/boards/{boardId:[0-9]+}/posts", h.GetBoardPosts).Methods(http.MethodGet)
	api.HandleFunc("/boards/{boardId:[0-9]+}/posts", h.CreatePost).Methods(http.MethodPost)
	api.HandleFunc("/boards/{boardId:[0-9]+}/star", h.ToggleStar).Methods(http.MethodPost)

	api.HandleFunc("/posts/{postId:[0-9]+}", h.GetPost).Methods(http.MethodGet)
	api.HandleFunc("/posts/{postId:[0-9]+}", h.DeletePost).Methods(http.MethodDelete)
	api.HandleFunc("/posts/{postId:[0-9]+}/comments", h.AddComment).Methods(http.MethodPost)
	api.HandleFunc("/posts/{postId:[0-9]+}/images", h.AddImage).Methods(http.MethodPost)
	api.HandleFunc("/posts/{postId:[0-9]+}/images/{imageId}", h.DeleteImage).Methods(http.MethodDelete)

	return router
}
