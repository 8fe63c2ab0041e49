package reviewstore_test

import (
	"testing"

	reviewstore "github.com/dalemusser/campdir/internal/app/store/reviews"
	"github.com/dalemusser/campdir/internal/domain/models"
	"github.com/dalemusser/campdir/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// oneReviewPerUserIndex mirrors the unique index the schema pass creates.
func oneReviewPerUserIndex(t *testing.T, db *mongo.Database) {
	t.Helper()
	ctx, cancel := testutil.TestContext()
	defer cancel()
	_, err := db.Collection("reviews").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "bootcamp_id", Value: 1},
			{Key: "user_id", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		t.Fatalf("create review index: %v", err)
	}
}

func TestCreate(t *testing.T) {
	db := testutil.SetupTestDB(t)
	s := reviewstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := s.Create(ctx, models.Review{
		BootcampID: primitive.NewObjectID(),
		UserID:     primitive.NewObjectID(),
		Title:      "Learned a ton",
		Text:       "Great instructors",
		Rating:     9,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.ID.IsZero() || created.CreatedAt.IsZero() {
		t.Error("ID and timestamps should be set on create")
	}
}

func TestCreate_SecondReviewBySameUserRejected(t *testing.T) {
	db := testutil.SetupTestDB(t)
	oneReviewPerUserIndex(t, db)
	s := reviewstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	bootcampID := primitive.NewObjectID()
	userID := primitive.NewObjectID()

	if _, err := s.Create(ctx, models.Review{BootcampID: bootcampID, UserID: userID, Title: "First", Rating: 8}); err != nil {
		t.Fatalf("first Create failed: %v", err)
	}

	_, err := s.Create(ctx, models.Review{BootcampID: bootcampID, UserID: userID, Title: "Second", Rating: 2})
	if err != reviewstore.ErrDuplicateReview {
		t.Errorf("expected ErrDuplicateReview, got %v", err)
	}

	// The same user reviewing a different bootcamp is fine.
	if _, err := s.Create(ctx, models.Review{BootcampID: primitive.NewObjectID(), UserID: userID, Title: "Elsewhere", Rating: 7}); err != nil {
		t.Errorf("review of a different bootcamp failed: %v", err)
	}
}

func TestDeleteByBootcamp(t *testing.T) {
	db := testutil.SetupTestDB(t)
	s := reviewstore.New(db)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	bootcampID := primitive.NewObjectID()
	fx.CreateReview(ctx, bootcampID, primitive.NewObjectID(), 8)
	fx.CreateReview(ctx, bootcampID, primitive.NewObjectID(), 5)
	fx.CreateReview(ctx, primitive.NewObjectID(), primitive.NewObjectID(), 9)

	n, err := s.DeleteByBootcamp(ctx, bootcampID)
	if err != nil {
		t.Fatalf("DeleteByBootcamp failed: %v", err)
	}
	if n != 2 {
		t.Errorf("deleted: got %d, want 2", n)
	}
}
