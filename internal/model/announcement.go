package model

type Announcement struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	Datetime int64  `json:"datetime"`
}

type AnnouncementRequest struct {
	Title    string `json:"title" binding:"required,max=100"`
	Content  string `json:"content" binding:"required,max=5000"`
	Datetime int64  `json:"datetime" binding:"required"`
}

type AnnouncementSort string

const (
	AnnouncementSortDateAsc  AnnouncementSort = "date_asc"
	AnnouncementSortDateDesc AnnouncementSort = "date_desc"
	AnnouncementSortNameAsc  AnnouncementSort = "name_asc"
	AnnouncementSortNameDesc AnnouncementSort = "name_desc"
)

type AnnouncementFilter struct {
	Limit  int
	Offset int
	Sort   AnnouncementSort
}
