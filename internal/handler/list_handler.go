package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/hitoshi/movlist/internal/middleware"
	"github.com/hitoshi/movlist/internal/model"
)

// ListServiceInterface はリストハンドラーが必要とするサービスインターフェース。
type ListServiceInterface interface {
	// Create はリストを作成し、採番されたIDを返す。
	Create(ctx context.Context, identity model.Identity, input model.NewList) (int64, error)
	// MyLists はユーザーのリストを映画タイトル付きで返す。
	MyLists(ctx context.Context, identity model.Identity) ([]model.ListSummary, error)
}

// ListHandler は映画リストのHTTPハンドラー。
type ListHandler struct {
	service ListServiceInterface
}

// NewListHandler はListHandlerを生成する。
func NewListHandler(service ListServiceInterface) *ListHandler {
	return &ListHandler{service: service}
}

// createListRequest はリスト作成リクエストのボディ。
type createListRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	MovieIDs    []int64 `json:"movie_ids"`
}

// listSummaryResponse はリスト一覧の1要素。
type listSummaryResponse struct {
	ID     int64    `json:"id"`
	Name   string   `json:"name"`
	Titles []string `json:"titles"`
}

// CreateList はリストを作成する。
// POST /lists
// 作成したリストのIDはLocationヘッダーで返す。
func (h *ListHandler) CreateList(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		middleware.WriteMessage(w, http.StatusUnauthorized, model.MsgNotIdentified)
		return
	}

	var req createListRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		middleware.WriteMessage(w, http.StatusBadRequest, model.MsgListCreateFailed)
		return
	}

	id, err := h.service.Create(r.Context(), identity, model.NewList{
		Name:        req.Name,
		Description: req.Description,
		MovieIDs:    req.MovieIDs,
	})
	if err != nil {
		middleware.WriteMessage(w, http.StatusInternalServerError, model.MsgListCreateFailed)
		return
	}

	w.Header().Set("Location", "/lists/"+strconv.FormatInt(id, 10))
	middleware.WriteMessage(w, http.StatusCreated, model.MsgListCreated)
}

// MyLists は認証済みユーザーのリスト一覧を返す。
// GET /lists
func (h *ListHandler) MyLists(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		middleware.WriteMessage(w, http.StatusUnauthorized, model.MsgNotIdentified)
		return
	}

	summaries, err := h.service.MyLists(r.Context(), identity)
	if err != nil {
		middleware.WriteMessage(w, http.StatusInternalServerError, model.MsgListFetchFailed)
		return
	}

	resp := make([]listSummaryResponse, len(summaries))
	for i, s := range summaries {
		resp[i] = listSummaryResponse{ID: s.ID, Name: s.Name, Titles: s.Titles}
	}
	middleware.WriteJSON(w, http.StatusOK, resp)
}
