package model

// ============================================================================
// Charbon 모델 (이벤트, 세션 단위)
// ============================================================================

// Charbon is a persisted event row joined with its course type and hosts.
type Charbon struct {
	ID          int64
	Title       string
	Description string
	Datetime    int64
	CourseID    string
	CourseType  CourseType
	ReplayLink  *string
	Duration    *int
	Hosts       []Snowflake
}

// CharbonRequest is the body of POST /charbons and PUT /charbons/{id}.
// Duration is never accepted from the client.
type CharbonRequest struct {
	Title       string      `json:"title" binding:"required,max=100"`
	Description string      `json:"description" binding:"max=500"`
	Datetime    int64       `json:"datetime" binding:"required"`
	CourseID    string      `json:"course_id" binding:"required,max=4"`
	ReplayLink  *string     `json:"replay_link" binding:"omitempty,max=100"`
	Actionneurs []Snowflake `json:"actionneurs"`
}

// CharbonWrite is what the service hands to the repository after the
// derived fields were resolved.
type CharbonWrite struct {
	Title       string
	Description string
	Datetime    int64
	CourseID    string
	ReplayLink  *string
	Duration    *int
	Hosts       []Snowflake
}

// CharbonView is the API projection of a charbon.
type CharbonView struct {
	ID          int64       `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Datetime    int64       `json:"datetime"`
	CourseID    string      `json:"course_id"`
	CourseType  CourseType  `json:"course_type"`
	ReplayLink  *string     `json:"replay_link"`
	Duration    *int        `json:"duration"`
	Actionneurs []Snowflake `json:"actionneurs"`
}

func NewCharbonView(c Charbon) CharbonView {
	hosts := c.Hosts
	if hosts == nil {
		hosts = []Snowflake{}
	}
	return CharbonView{
		ID:          c.ID,
		Title:       c.Title,
		Description: c.Description,
		Datetime:    c.Datetime,
		CourseID:    c.CourseID,
		CourseType:  c.CourseType,
		ReplayLink:  c.ReplayLink,
		Duration:    c.Duration,
		Actionneurs: hosts,
	}
}

type CharbonSort string

const (
	CharbonSortDateAsc      CharbonSort = "date_asc"
	CharbonSortDateDesc     CharbonSort = "date_desc"
	CharbonSortDurationAsc  CharbonSort = "duration_asc"
	CharbonSortDurationDesc CharbonSort = "duration_desc"
)

// CharbonFilter holds the GET /charbons query parameters.
type CharbonFilter struct {
	Limit      int
	Offset     int
	CourseType CourseType
	CourseID   string
	Sort       CharbonSort
	MinDate    *int64
	MaxDate    *int64
}
