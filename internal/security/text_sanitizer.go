// Package security はアプリケーションのセキュリティ機能を提供する。
//
// TextSanitizer はユーザー入力のテキスト（リスト名・説明）から
// HTMLを除去し、保存後に別のクライアントで表示された際の
// XSSリスクを取り除く。
package security

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// TextSanitizerService はプレーンテキスト化のインターフェースを定義する。
type TextSanitizerService interface {
	// Sanitize は全てのHTMLタグを除去したテキストを返す。
	// script, styleなどの要素は中身ごと除去される。
	// 結果はHTMLではなくプレーンテキストとしてJSONで返すため、
	// bluemondayが付与したエンティティは元の文字に戻す。
	// 前後の空白は除去する。空文字列の入力には空文字列を返す。
	Sanitize(raw string) string
}

// TextSanitizer はbluemondayのStrictPolicyを用いたTextSanitizerServiceの実装。
// ポリシーは生成後に変更しないため、複数goroutineから同時に使用してよい。
type TextSanitizer struct {
	policy *bluemonday.Policy
}

// NewTextSanitizer はTextSanitizerを生成する。
func NewTextSanitizer() *TextSanitizer {
	return &TextSanitizer{
		policy: bluemonday.StrictPolicy(),
	}
}

// Sanitize はHTMLを除去したテキストを返す。
func (s *TextSanitizer) Sanitize(raw string) string {
	if raw == "" {
		return ""
	}
	return strings.TrimSpace(html.UnescapeString(s.policy.Sanitize(raw)))
}
