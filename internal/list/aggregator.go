// Package list は映画リストの作成と、ユーザーごとのリスト一覧の組み立てを提供する。
package list

import "github.com/hitoshi/movlist/internal/model"

// Aggregate はlist_id昇順に並んだ結合結果の行を、リストごとのタイトル一覧に畳み込む。
// 出力の順序は各リストが入力に最初に現れた順、タイトルは入力順を保つ。
// 入力がlist_idでソートされていない場合のグループ化結果は未定義。
// 空の入力には空のスライス（nilではない）を返す。
func Aggregate(rows []model.ListRow) []model.ListSummary {
	summaries := make([]model.ListSummary, 0)

	var current *model.ListSummary
	for _, row := range rows {
		if current != nil && current.ID == row.ListID {
			current.Titles = append(current.Titles, row.Title)
			continue
		}

		if current != nil {
			summaries = append(summaries, *current)
		}
		current = &model.ListSummary{
			ID:     row.ListID,
			Name:   row.ListName,
			Titles: []string{row.Title},
		}
	}

	if current != nil {
		summaries = append(summaries, *current)
	}

	return summaries
}
