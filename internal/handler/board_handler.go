package handlers

import (
	"encoding/json"
	"net/http"

	"millage/internal/models"
	"millage/internal/session"
)

type BoardListResponse struct {
	Boards []models.Board `json:"boards"`
}

type StarResponse struct {
	BoardID   int64 `json:"boardId"`
	IsStarred bool  `json:"isStarred"`
}

type RecruitListResponse struct {
	Recruits []models.RecruitSummary `json:"recruits"`
}

// GetBoard returns the board with one page of its posts.
// GET /api/boards/{boardId}?page=&keyword=
func (h *Handlers) GetBoard(w http.ResponseWriter, r *http.Request) {
	boardID, ok := pathID(r, "boardId")
	if !ok {
		WriteError(w, "invalid board id", http.StatusBadRequest)
		return
	}

	page, keyword := pageQuery(r)

	board, err := h.BoardService.GetBoardData(r.Context(), session.FromContext(r.Context()), boardID, page, keyword)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, board, http.StatusOK)
}

// GetBoardPosts returns only the pagination object.
// GET /api/boards/{boardId}/posts?page=&keyword=
func (h *Handlers) GetBoardPosts(w http.ResponseWriter, r *http.Request) {
	boardID, ok := pathID(r, "boardId")
	if !ok {
		WriteError(w, "invalid board id", http.StatusBadRequest)
		return
	}

	page, keyword := pageQuery(r)

	obj, err := h.BoardService.GetBoardPosts(r.Context(), session.FromContext(r.Context()), boardID, page, keyword)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, obj, http.StatusOK)
}

func (h *Handlers) GetBoardList(w http.ResponseWriter, r *http.Request) {
	unitID, ok := pathID(r, "unitId")
	if !ok {
		WriteError(w, "invalid unit id", http.StatusBadRequest)
		return
	}

	boards, err := h.BoardService.GetBoardList(r.Context(), session.FromContext(r.Context()), unitID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, BoardListResponse{Boards: boards}, http.StatusOK)
}

func (h *Handlers) GetBoardPreview(w http.ResponseWriter, r *http.Request) {
	unitID, ok := pathID(r, "unitId")
	if !ok {
		WriteError(w, "invalid unit id", http.StatusBadRequest)
		return
	}

	boards, err := h.BoardService.GetBoardListWithPosts(r.Context(), session.FromContext(r.Context()), unitID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, BoardListResponse{Boards: boards}, http.StatusOK)
}

func (h *Handlers) CreateBoard(w http.ResponseWriter, r *http.Request) {
	unitID, ok := pathID(r, "unitId")
	if !ok {
		WriteError(w, "invalid unit id", http.StatusBadRequest)
		return
	}

	var req models.CreateBoardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}
	req.UnitID = unitID

	board, err := h.BoardService.CreateBoard(r.Context(), session.FromContext(r.Context()), req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, board, http.StatusCreated)
}

func (h *Handlers) UpdateBoard(w http.ResponseWriter, r *http.Request) {
	unitID, ok := pathID(r, "unitId")
	if !ok {
		WriteError(w, "invalid unit id", http.StatusBadRequest)
		return
	}
	boardID, ok := pathID(r, "boardId")
	if !ok {
		WriteError(w, "invalid board id", http.StatusBadRequest)
		return
	}

	var req models.UpdateBoardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}
	req.UnitID = unitID
	req.BoardID = boardID

	board, err := h.BoardService.UpdateBoard(r.Context(), session.FromContext(r.Context()), req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, board, http.StatusOK)
}

func (h *Handlers) DeleteBoard(w http.ResponseWriter, r *http.Request) {
	unitID, ok := pathID(r, "unitId")
	if !ok {
		WriteError(w, "invalid unit id", http.StatusBadRequest)
		return
	}
	boardID, ok := pathID(r, "boardId")
	if !ok {
		WriteError(w, "invalid board id", http.StatusBadRequest)
		return
	}

	if err := h.BoardService.DeleteBoard(r.Context(), session.FromContext(r.Context()), boardID, unitID); err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, MessageResponse{Message: "board deleted"}, http.StatusOK)
}

func (h *Handlers) ToggleStar(w http.ResponseWriter, r *http.Request) {
	boardID, ok := pathID(r, "boardId")
	if !ok {
		WriteError(w, "invalid board id", http.StatusBadRequest)
		return
	}

	starred, err := h.BoardService.ToggleStar(r.Context(), session.FromContext(r.Context()), boardID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, StarResponse{BoardID: boardID, IsStarred: starred}, http.StatusOK)
}

func (h *Handlers) GetRecruits(w http.ResponseWriter, r *http.Request) {
	unitID, ok := pathID(r, "unitId")
	if !ok {
		WriteError(w, "invalid unit id", http.StatusBadRequest)
		return
	}

	recruits, err := h.BoardService.GetRecruitList(r.Context(), unitID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, RecruitListResponse{Recruits: recruits}, http.StatusOK)
}
