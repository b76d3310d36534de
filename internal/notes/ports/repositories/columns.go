package repositories

// Колонки таблиц boards и notes.
const (
	ColumnID         = "id"
	ColumnCreatedAt  = "created_at"
	ColumnUpdatedAt  = "updated_at"
	ColumnTitle      = "title"
	ColumnText       = "text"
	ColumnViewsCount = "views_count"
	ColumnBoardID    = "board_id"
)
