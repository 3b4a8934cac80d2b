package model

// ============================================================================
// Exercise topic
// ============================================================================

type ExerciseTopic struct {
	ID         int64
	Topic      string
	CourseID   string
	CourseType CourseType
}

type ExerciseTopicRequest struct {
	Topic    string `json:"topic" binding:"required,max=100"`
	CourseID string `json:"course_id" binding:"required,max=4"`
}

type ExerciseTopicView struct {
	ID         int64      `json:"id"`
	Topic      string     `json:"topic"`
	CourseID   string     `json:"course_id"`
	CourseType CourseType `json:"course_type"`
}

func NewExerciseTopicView(t ExerciseTopic) ExerciseTopicView {
	return ExerciseTopicView{
		ID:         t.ID,
		Topic:      t.Topic,
		CourseID:   t.CourseID,
		CourseType: t.CourseType,
	}
}

// ============================================================================
// Exercise
// ============================================================================

// Exercise is the persisted row. The content itself lives in the file
// store under ContentPath.
type Exercise struct {
	ID          int64
	Title       string
	Difficulty  int
	IsCorrected bool
	Source      string
	TopicID     int64
	Copyright   bool
	ContentPath string
}

// ExerciseRequest carries the content base64-encoded.
type ExerciseRequest struct {
	Title       string `json:"title" binding:"required,max=100"`
	Difficulty  int    `json:"difficulty" binding:"min=0,max=5"`
	IsCorrected bool   `json:"is_corrected"`
	Source      string `json:"source" binding:"required,max=100"`
	TopicID     int64  `json:"topic_id" binding:"required"`
	Copyright   bool   `json:"copyright"`
	Content     string `json:"content" binding:"required"`
}

// ExerciseView omits the content on list endpoints.
type ExerciseView struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Difficulty  int     `json:"difficulty"`
	IsCorrected bool    `json:"is_corrected"`
	Source      string  `json:"source"`
	TopicID     int64   `json:"topic_id"`
	Copyright   bool    `json:"copyright"`
	Content     *string `json:"content"`
}

func NewExerciseView(e Exercise, content *string) ExerciseView {
	return ExerciseView{
		ID:          e.ID,
		Title:       e.Title,
		Difficulty:  e.Difficulty,
		IsCorrected: e.IsCorrected,
		Source:      e.Source,
		TopicID:     e.TopicID,
		Copyright:   e.Copyright,
		Content:     content,
	}
}
