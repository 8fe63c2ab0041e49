// internal/app/features/courses/types.go
package courses

import (
	"github.com/dalemusser/campdir/internal/app/system/htmlsanitize"
	"go.mongodb.org/mongo-driver/bson"
)

// createInput is the JSON payload for POST /bootcamps/{bootcampID}/courses.
type createInput struct {
	Title                string `json:"title" validate:"required,max=100" label:"Title"`
	Description          string `json:"description" validate:"required,max=500" label:"Description"`
	Weeks                int    `json:"weeks" validate:"required,gte=1" label:"Number of weeks"`
	Tuition              int    `json:"tuition" validate:"gte=0" label:"Tuition"`
	MinimumSkill         string `json:"minimumSkill" validate:"required,oneof=beginner intermediate advanced" label:"Minimum skill"`
	ScholarshipAvailable bool   `json:"scholarshipAvailable"`
}

// updateInput is the JSON payload for PUT /courses/{id}.
type updateInput struct {
	Title                *string `json:"title" validate:"omitempty,max=100" label:"Title"`
	Description          *string `json:"description" validate:"omitempty,max=500" label:"Description"`
	Weeks                *int    `json:"weeks" validate:"omitempty,gte=1" label:"Number of weeks"`
	Tuition              *int    `json:"tuition" validate:"omitempty,gte=0" label:"Tuition"`
	MinimumSkill         *string `json:"minimumSkill" validate:"omitempty,oneof=beginner intermediate advanced" label:"Minimum skill"`
	ScholarshipAvailable *bool   `json:"scholarshipAvailable"`
}

func (in updateInput) set() bson.M {
	set := bson.M{}
	if in.Title != nil {
		set["title"] = *in.Title
	}
	if in.Description != nil {
		set["description"] = htmlsanitize.Sanitize(*in.Description)
	}
	if in.Weeks != nil {
		set["weeks"] = *in.Weeks
	}
	if in.Tuition != nil {
		set["tuition"] = *in.Tuition
	}
	if in.MinimumSkill != nil {
		set["minimum_skill"] = *in.MinimumSkill
	}
	if in.ScholarshipAvailable != nil {
		set["scholarship_available"] = *in.ScholarshipAvailable
	}
	return set
}

// queryFields maps public list-query parameter names to stored field names.
var queryFields = map[string]string{
	"minimumSkill":         "minimum_skill",
	"scholarshipAvailable": "scholarship_available",
	"bootcampId":           "bootcamp_id",
	"createdAt":            "created_at",
}
