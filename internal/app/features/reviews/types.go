// internal/app/features/reviews/types.go
package reviews

import "go.mongodb.org/mongo-driver/bson"

// createInput is the JSON payload for POST /bootcamps/{bootcampID}/reviews.
type createInput struct {
	Title  string `json:"title" validate:"required,max=100" label:"Title"`
	Text   string `json:"text" validate:"required,max=500" label:"Text"`
	Rating int    `json:"rating" validate:"required,gte=1,lte=10" label:"Rating"`
}

// updateInput is the JSON payload for PUT /reviews/{id}.
type updateInput struct {
	Title  *string `json:"title" validate:"omitempty,max=100" label:"Title"`
	Text   *string `json:"text" validate:"omitempty,max=500" label:"Text"`
	Rating *int    `json:"rating" validate:"omitempty,gte=1,lte=10" label:"Rating"`
}

func (in updateInput) set() bson.M {
	set := bson.M{}
	if in.Title != nil {
		set["title"] = *in.Title
	}
	if in.Text != nil {
		set["text"] = *in.Text
	}
	if in.Rating != nil {
		set["rating"] = *in.Rating
	}
	return set
}

// queryFields maps public list-query parameter names to stored field names.
var queryFields = map[string]string{
	"bootcampId": "bootcamp_id",
	"userId":     "user_id",
	"createdAt":  "created_at",
}
