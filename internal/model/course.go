package model

type CourseType string

const (
	CourseTypeMeca CourseType = "meca"
	CourseTypeInfo CourseType = "info"
	CourseTypeElec CourseType = "elec"
	CourseTypeMath CourseType = "math"
)

func (t CourseType) Valid() bool {
	switch t {
	case CourseTypeMeca, CourseTypeInfo, CourseTypeElec, CourseTypeMath:
		return true
	}
	return false
}

type Course struct {
	ID   string     `json:"id"`
	Type CourseType `json:"type"`
}

type CourseRequest struct {
	ID   string     `json:"id" binding:"required,max=4"`
	Type CourseType `json:"type" binding:"required,oneof=meca info elec math"`
}
