package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/hitoshi/movlist/internal/model"
)

// WriteJSON は値をJSONとしてレスポンスに書き込む。
func WriteJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", slog.String("error", err.Error()))
	}
}

// WriteMessage は短いメッセージをJSON文字列としてレスポンスに書き込む。
// 成功・失敗ともに構造化されたエラーコードは返さない。
func WriteMessage(w http.ResponseWriter, statusCode int, message string) {
	WriteJSON(w, statusCode, message)
}

// WriteInternalServerError は内部サーバーエラーのレスポンスを書き込む。
// 詳細はログのみに記録し、ユーザーには一般的なメッセージを返す。
func WriteInternalServerError(w http.ResponseWriter) {
	WriteMessage(w, http.StatusInternalServerError, model.MsgInternalError)
}
