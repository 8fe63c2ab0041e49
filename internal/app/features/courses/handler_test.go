package courses_test

import (
	"net/http"
	"testing"

	"github.com/dalemusser/campdir/internal/app/features/courses"
	"github.com/dalemusser/campdir/internal/app/system/apierr"
	"github.com/dalemusser/campdir/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const createBody = `{
	"title": "Full Stack Web Development",
	"description": "Twelve weeks of everything",
	"weeks": 12,
	"tuition": 10000,
	"minimumSkill": "intermediate"
}`

func TestHandleCreate_OwnerOfBootcamp(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := courses.NewHandler(db, zap.NewNop())
	handle := apierr.Wrap(zap.NewNop(), h.HandleCreate)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	owner := testutil.PublisherUser()
	ownerID, _ := primitive.ObjectIDFromHex(owner.ID)
	bc := fx.CreateBootcamp(ctx, "Devworks", ownerID, -71.09, 42.35)

	req := testutil.NewAuthenticatedJSONRequest("POST", "/", createBody, owner)
	req = testutil.WithChiURLParam(req, "bootcampID", bc.ID.Hex())
	rec := testutil.NewRecorder()
	handle(rec.ResponseRecorder, req)

	rec.AssertStatus(t, http.StatusCreated)
	rec.AssertContains(t, "Full Stack Web Development")
}

func TestHandleCreate_NotBootcampOwner(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := courses.NewHandler(db, zap.NewNop())
	handle := apierr.Wrap(zap.NewNop(), h.HandleCreate)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	bc := fx.CreateBootcamp(ctx, "Devworks", primitive.NewObjectID(), -71.09, 42.35)

	req := testutil.NewAuthenticatedJSONRequest("POST", "/", createBody, testutil.PublisherUser())
	req = testutil.WithChiURLParam(req, "bootcampID", bc.ID.Hex())
	rec := testutil.NewRecorder()
	handle(rec.ResponseRecorder, req)

	rec.AssertStatus(t, http.StatusForbidden)
	rec.AssertContains(t, "is not authorized to add a course to bootcamp")
}

func TestHandleCreate_MissingBootcamp(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := courses.NewHandler(db, zap.NewNop())
	handle := apierr.Wrap(zap.NewNop(), h.HandleCreate)

	req := testutil.NewAuthenticatedJSONRequest("POST", "/", createBody, testutil.PublisherUser())
	req = testutil.WithChiURLParam(req, "bootcampID", primitive.NewObjectID().Hex())
	rec := testutil.NewRecorder()
	handle(rec.ResponseRecorder, req)

	rec.AssertStatus(t, http.StatusNotFound)
}

func TestHandleCreate_BadMinimumSkill(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := courses.NewHandler(db, zap.NewNop())
	handle := apierr.Wrap(zap.NewNop(), h.HandleCreate)

	body := `{"title":"T","description":"D","weeks":4,"tuition":1,"minimumSkill":"wizard"}`
	req := testutil.NewAuthenticatedJSONRequest("POST", "/", body, testutil.PublisherUser())
	req = testutil.WithChiURLParam(req, "bootcampID", primitive.NewObjectID().Hex())
	rec := testutil.NewRecorder()
	handle(rec.ResponseRecorder, req)

	rec.AssertStatus(t, http.StatusBadRequest)
}

func TestServeGet(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := courses.NewHandler(db, zap.NewNop())
	handle := apierr.Wrap(zap.NewNop(), h.ServeGet)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	course := fx.CreateCourse(ctx, primitive.NewObjectID(), "Full Stack", 9000)

	req := testutil.WithChiURLParam(testutil.NewRequest("GET", "/"), "id", course.ID.Hex())
	rec := testutil.NewRecorder()
	handle(rec.ResponseRecorder, req)

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "Full Stack")
}

func TestServeGet_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := courses.NewHandler(db, zap.NewNop())
	handle := apierr.Wrap(zap.NewNop(), h.ServeGet)

	req := testutil.WithChiURLParam(testutil.NewRequest("GET", "/"), "id", primitive.NewObjectID().Hex())
	rec := testutil.NewRecorder()
	handle(rec.ResponseRecorder, req)

	rec.AssertStatus(t, http.StatusNotFound)
	rec.AssertContains(t, "course not found with id of")
}

func TestHandleUpdate_OwnershipFollowsBootcamp(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := courses.NewHandler(db, zap.NewNop())
	handle := apierr.Wrap(zap.NewNop(), h.HandleUpdate)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	owner := testutil.PublisherUser()
	ownerID, _ := primitive.ObjectIDFromHex(owner.ID)
	bc := fx.CreateBootcamp(ctx, "Devworks", ownerID, -71.09, 42.35)
	course := fx.CreateCourse(ctx, bc.ID, "Full Stack", 9000)

	// The bootcamp owner may update.
	req := testutil.NewAuthenticatedJSONRequest("PUT", "/", `{"tuition":12000}`, owner)
	req = testutil.WithChiURLParam(req, "id", course.ID.Hex())
	rec := testutil.NewRecorder()
	handle(rec.ResponseRecorder, req)
	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "12000")

	// A different publisher may not.
	req = testutil.NewAuthenticatedJSONRequest("PUT", "/", `{"tuition":1}`, testutil.PublisherUser())
	req = testutil.WithChiURLParam(req, "id", course.ID.Hex())
	rec = testutil.NewRecorder()
	handle(rec.ResponseRecorder, req)
	rec.AssertStatus(t, http.StatusForbidden)
}

func TestHandleDelete_AdminBypassesOwnership(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := courses.NewHandler(db, zap.NewNop())
	handle := apierr.Wrap(zap.NewNop(), h.HandleDelete)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	bc := fx.CreateBootcamp(ctx, "Devworks", primitive.NewObjectID(), -71.09, 42.35)
	course := fx.CreateCourse(ctx, bc.ID, "Full Stack", 9000)

	req := testutil.WithChiURLParam(
		testutil.NewAuthenticatedRequest("DELETE", "/", testutil.AdminUser()), "id", course.ID.Hex())
	rec := testutil.NewRecorder()
	handle(rec.ResponseRecorder, req)

	rec.AssertStatus(t, http.StatusOK)

	n, err := db.Collection("courses").CountDocuments(ctx, map[string]any{})
	if err != nil {
		t.Fatalf("count courses: %v", err)
	}
	if n != 0 {
		t.Errorf("course still present after delete")
	}
}
