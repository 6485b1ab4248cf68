package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/hitoshi/movlist/internal/middleware"
	"github.com/hitoshi/movlist/internal/model"
)

// MovieServiceInterface は映画カタログハンドラーが必要とするサービスインターフェース。
type MovieServiceInterface interface {
	ListMovies(ctx context.Context) ([]*model.Movie, error)
	AddMovie(ctx context.Context, movie model.Movie) (*model.Movie, error)
}

// MovieHandler は映画カタログのHTTPハンドラー。
type MovieHandler struct {
	service MovieServiceInterface
}

// NewMovieHandler はMovieHandlerを生成する。
func NewMovieHandler(service MovieServiceInterface) *MovieHandler {
	return &MovieHandler{service: service}
}

// movieRequest は映画登録リクエストのボディ。
type movieRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ReleaseYear int    `json:"release_year"`
	Genre       string `json:"genre"`
	ImageURL    string `json:"image_url"`
}

// movieResponse は映画情報のAPIレスポンス。
type movieResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ReleaseYear int    `json:"release_year"`
	Genre       string `json:"genre"`
	ImageURL    string `json:"image_url"`
}

func toMovieResponse(m *model.Movie) movieResponse {
	return movieResponse{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		ReleaseYear: m.ReleaseYear,
		Genre:       m.Genre,
		ImageURL:    m.ImageURL,
	}
}

// ListMovies はカタログの全映画を返す。
// GET /movies
func (h *MovieHandler) ListMovies(w http.ResponseWriter, r *http.Request) {
	movies, err := h.service.ListMovies(r.Context())
	if err != nil {
		middleware.WriteMessage(w, http.StatusInternalServerError, model.MsgMovieListFailed)
		return
	}

	resp := make([]movieResponse, len(movies))
	for i, m := range movies {
		resp[i] = toMovieResponse(m)
	}
	middleware.WriteJSON(w, http.StatusOK, resp)
}

// AddMovie はカタログに映画を登録する。
// POST /movies
func (h *MovieHandler) AddMovie(w http.ResponseWriter, r *http.Request) {
	var req movieRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Title == "" {
		middleware.WriteMessage(w, http.StatusBadRequest, model.MsgMovieCreateFailed)
		return
	}

	movie, err := h.service.AddMovie(r.Context(), model.Movie{
		Title:       req.Title,
		Description: req.Description,
		ReleaseYear: req.ReleaseYear,
		Genre:       req.Genre,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		middleware.WriteMessage(w, http.StatusInternalServerError, model.MsgMovieCreateFailed)
		return
	}

	middleware.WriteJSON(w, http.StatusCreated, toMovieResponse(movie))
}
