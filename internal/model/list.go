package model

// List はユーザーが作成した映画リストを表す。
type List struct {
	ID          int64
	OwnerEmail  string
	Name        string
	Description string
}

// ListMembership はリストと映画の紐付けを表す。
// IDの昇順が挿入順であり、集約時のタイトル順序になる。
type ListMembership struct {
	ID         int64
	ListID     int64
	OwnerEmail string
	MovieID    int64
}

// NewList はリスト作成の入力。
type NewList struct {
	Name        string
	Description string
	MovieIDs    []int64
}

// ListRow は lists × list_movies × movies の結合結果1行を表す。
type ListRow struct {
	ListID   int64
	ListName string
	Title    string
}

// ListSummary はリストごとに集約した映画タイトル一覧。
type ListSummary struct {
	ID     int64
	Name   string
	Titles []string
}
