package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"millage/internal/config"
	"millage/internal/service"
)

type Handlers struct {
	BoardService  service.BoardService
	PostService   service.PostService
	TablesService service.TablesService
	Cfg           *config.Config
	Validate      *validator.Validate
}

func NewHandlers(service *service.Service, config *config.Config) *Handlers {
	return &Handlers{
		BoardService:  service.Board,
		PostService:   service.Post,
		TablesService: service.Tables,
		Cfg:           config,
		Validate:      validator.New(),
	}
}

// pathID reads a numeric route variable.
func pathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)[name], 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// parsePositiveInt falls back to defaultValue for missing, malformed or
// non-positive input.
func parsePositiveInt(s string, defaultValue int) int {
	if s == "" {
		return defaultValue
	}
	v, err := strconv.Atoi(s)
	if err != nil || v <= 0 {
		return defaultValue
	}
	return v
}

// pageQuery extracts ?page= and ?keyword= from a board request.
func pageQuery(r *http.Request) (int, string) {
	q := r.URL.Query()
	return parsePositiveInt(q.Get("page"), 1), q.Get("keyword")
}
