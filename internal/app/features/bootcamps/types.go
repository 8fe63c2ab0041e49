// internal/app/features/bootcamps/types.go
package bootcamps

import (
	"github.com/dalemusser/campdir/internal/app/system/htmlsanitize"
	"github.com/dalemusser/campdir/internal/app/system/inputval"
	"github.com/dalemusser/campdir/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
)

// createInput is the JSON payload for POST /bootcamps.
type createInput struct {
	Name          string   `json:"name" validate:"required,max=50" label:"Name"`
	Description   string   `json:"description" validate:"required,max=500" label:"Description"`
	Website       string   `json:"website" validate:"omitempty,url" label:"Website"`
	Phone         string   `json:"phone" validate:"omitempty,max=20" label:"Phone number"`
	Email         string   `json:"email" validate:"omitempty,email" label:"Email"`
	Address       string   `json:"address" validate:"required" label:"Address"`
	Careers       []string `json:"careers" validate:"required,min=1" label:"Careers"`
	Housing       bool     `json:"housing"`
	JobAssistance bool     `json:"jobAssistance"`
	JobGuarantee  bool     `json:"jobGuarantee"`
	AcceptGI      bool     `json:"acceptGi"`
	AverageCost   int      `json:"averageCost" validate:"omitempty,gte=0" label:"Average cost"`
	Published     *bool    `json:"published"`
}

// updateInput is the JSON payload for PUT /bootcamps/{id}. Absent fields
// are left alone, so everything is a pointer.
type updateInput struct {
	Name          *string   `json:"name" validate:"omitempty,max=50" label:"Name"`
	Description   *string   `json:"description" validate:"omitempty,max=500" label:"Description"`
	Website       *string   `json:"website" validate:"omitempty,url" label:"Website"`
	Phone         *string   `json:"phone" validate:"omitempty,max=20" label:"Phone number"`
	Email         *string   `json:"email" validate:"omitempty,email" label:"Email"`
	Address       *string   `json:"address" label:"Address"`
	Careers       *[]string `json:"careers" validate:"omitempty,min=1" label:"Careers"`
	Housing       *bool     `json:"housing"`
	JobAssistance *bool     `json:"jobAssistance"`
	JobGuarantee  *bool     `json:"jobGuarantee"`
	AcceptGI      *bool     `json:"acceptGi"`
	AverageCost   *int      `json:"averageCost" validate:"omitempty,gte=0" label:"Average cost"`
	Published     *bool     `json:"published"`
}

// set builds the $set document for the fields the payload carries.
// Address is handled by the caller because it geocodes into location.
func (in updateInput) set() bson.M {
	set := bson.M{}
	if in.Name != nil {
		set["name"] = *in.Name
	}
	if in.Description != nil {
		set["description"] = htmlsanitize.Sanitize(*in.Description)
	}
	if in.Website != nil {
		set["website"] = *in.Website
	}
	if in.Phone != nil {
		set["phone"] = *in.Phone
	}
	if in.Email != nil {
		set["email"] = *in.Email
	}
	if in.Careers != nil {
		set["careers"] = *in.Careers
	}
	if in.Housing != nil {
		set["housing"] = *in.Housing
	}
	if in.JobAssistance != nil {
		set["job_assistance"] = *in.JobAssistance
	}
	if in.JobGuarantee != nil {
		set["job_guarantee"] = *in.JobGuarantee
	}
	if in.AcceptGI != nil {
		set["accept_gi"] = *in.AcceptGI
	}
	if in.AverageCost != nil {
		set["average_cost"] = *in.AverageCost
	}
	if in.Published != nil {
		set["published"] = *in.Published
	}
	return set
}

// invalidCareer returns the first career value outside the allowed set,
// or "" if all are valid.
func invalidCareer(careers []string) string {
	for _, c := range careers {
		if !inputval.IsValidCareer(c, models.AllowedCareers) {
			return c
		}
	}
	return ""
}

// queryFields maps public list-query parameter names to stored field names.
var queryFields = map[string]string{
	"averageCost":   "average_cost",
	"jobAssistance": "job_assistance",
	"jobGuarantee":  "job_guarantee",
	"acceptGi":      "accept_gi",
	"createdAt":     "created_at",
	"ownerId":       "owner_id",
}
