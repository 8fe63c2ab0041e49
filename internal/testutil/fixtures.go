package testutil

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/dalemusser/campdir/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
// Calls chain: a route context already on the request is reused.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		rctx.URLParams.Add(key, value)
		return r
	}
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateUser creates a test user with the given role.
func (f *Fixtures) CreateUser(ctx context.Context, name, email, role string) models.User {
	f.t.Helper()

	now := time.Now().UTC()
	user := models.User{
		ID:           primitive.NewObjectID(),
		Name:         name,
		Email:        email,
		Role:         role,
		PasswordHash: "$2a$10$unusable.test.hash.placeholder.value.not.a.real.one",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if _, err := f.db.Collection("users").InsertOne(ctx, user); err != nil {
		f.t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreatePublisher creates a test user with the publisher role.
func (f *Fixtures) CreatePublisher(ctx context.Context, name, email string) models.User {
	f.t.Helper()
	return f.CreateUser(ctx, name, email, models.RolePublisher)
}

// CreateBootcamp creates a published test bootcamp owned by ownerID,
// located at the given coordinates.
func (f *Fixtures) CreateBootcamp(ctx context.Context, name string, ownerID primitive.ObjectID, lng, lat float64) models.Bootcamp {
	f.t.Helper()

	now := time.Now().UTC()
	bc := models.Bootcamp{
		ID:          primitive.NewObjectID(),
		OwnerID:     ownerID,
		Name:        name,
		Slug:        primitive.NewObjectID().Hex(), // unique; slug content is not under test here
		Description: "Test bootcamp description",
		Location: models.Location{
			Type:             "Point",
			Coordinates:      []float64{lng, lat},
			FormattedAddress: "123 Test St, Testville, TS 00001",
			City:             "Testville",
			State:            "TS",
			Zipcode:          "00001",
			Country:          "US",
		},
		Careers:     []string{"Web Development"},
		AverageCost: 10000,
		Photo:       models.DefaultBootcampPhoto,
		Published:   true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if _, err := f.db.Collection("bootcamps").InsertOne(ctx, bc); err != nil {
		f.t.Fatalf("failed to create test bootcamp: %v", err)
	}
	return bc
}

// CreateCourse creates a test course under the given bootcamp.
func (f *Fixtures) CreateCourse(ctx context.Context, bootcampID primitive.ObjectID, title string, tuition int) models.Course {
	f.t.Helper()

	now := time.Now().UTC()
	course := models.Course{
		ID:           primitive.NewObjectID(),
		BootcampID:   bootcampID,
		Title:        title,
		Description:  "Test course description",
		Weeks:        8,
		Tuition:      tuition,
		MinimumSkill: "beginner",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if _, err := f.db.Collection("courses").InsertOne(ctx, course); err != nil {
		f.t.Fatalf("failed to create test course: %v", err)
	}
	return course
}

// CreateReview creates a test review of the given bootcamp by the given user.
func (f *Fixtures) CreateReview(ctx context.Context, bootcampID, userID primitive.ObjectID, rating int) models.Review {
	f.t.Helper()

	now := time.Now().UTC()
	review := models.Review{
		ID:         primitive.NewObjectID(),
		BootcampID: bootcampID,
		UserID:     userID,
		Title:      "Test review",
		Text:       "Test review text",
		Rating:     rating,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if _, err := f.db.Collection("reviews").InsertOne(ctx, review); err != nil {
		f.t.Fatalf("failed to create test review: %v", err)
	}
	return review
}
