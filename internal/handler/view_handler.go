package handlers

import (
	"embed"
	"html/template"
	"net/http"
	"net/url"
	"strconv"

	"millage/internal/logger"
	"millage/internal/models"
	"millage/internal/presenter"
	"millage/internal/session"
)

//go:embed templates/*.html
var templateFS embed.FS

var boardTemplate = template.Must(template.New("board.html").Funcs(template.FuncMap{
	"pageURL": pageURL,
}).ParseFS(templateFS, "templates/board.html"))

type boardPage struct {
	Board   *models.Board
	Keyword string
	View    presenter.View[models.Post]
}

func pageURL(boardID int64, keyword string, page int) string {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	if keyword != "" {
		q.Set("keyword", keyword)
	}
	return "/boards/" + strconv.FormatInt(boardID, 10) + "?" + q.Encode()
}

// BoardPage renders a board page as HTML. Navigation controls are plain links,
// so no page-request callback is needed.
// GET /boards/{boardId}?page=&keyword=
func (h *Handlers) BoardPage(w http.ResponseWriter, r *http.Request) {
	boardID, ok := pathID(r, "boardId")
	if !ok {
		http.NotFound(w, r)
		return
	}

	page, keyword := pageQuery(r)

	board, err := h.BoardService.GetBoardData(r.Context(), session.FromContext(r.Context()), boardID, page, keyword)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	data := boardPage{
		Board:   board,
		Keyword: keyword,
		View:    presenter.Present(*board.PaginationObject, nil),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := boardTemplate.Execute(w, data); err != nil {
		logger.Get().Error().Err(err).Int64("board_id", boardID).Msg("render board page")
	}
}
