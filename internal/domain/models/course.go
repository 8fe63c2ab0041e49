// internal/domain/models/course.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Minimum skill levels a course may require.
var AllowedSkillLevels = []string{"beginner", "intermediate", "advanced"}

// Course belongs to one bootcamp. Mutation authority follows the bootcamp's owner.
type Course struct {
	ID                   primitive.ObjectID `bson:"_id" json:"id"`
	BootcampID           primitive.ObjectID `bson:"bootcamp_id" json:"bootcampId"`
	Title                string             `bson:"title" json:"title"`
	Description          string             `bson:"description" json:"description"`
	Weeks                int                `bson:"weeks" json:"weeks"`
	Tuition              int                `bson:"tuition" json:"tuition"`
	MinimumSkill         string             `bson:"minimum_skill" json:"minimumSkill"`
	ScholarshipAvailable bool               `bson:"scholarship_available" json:"scholarshipAvailable"`
	CreatedAt            time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt            time.Time          `bson:"updated_at" json:"updatedAt"`
}
