package userstore_test

import (
	"testing"

	userstore "github.com/dalemusser/campdir/internal/app/store/users"
	"github.com/dalemusser/campdir/internal/domain/models"
	"github.com/dalemusser/campdir/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func TestStore_Create(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	u, err := store.Create(ctx, "John Doe", "john@example.com", "s3cretpass", models.RolePublisher)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if u.ID == primitive.NilObjectID {
		t.Error("expected ID to be assigned")
	}
	if u.Role != models.RolePublisher {
		t.Errorf("Role: got %q, want %q", u.Role, models.RolePublisher)
	}
	if u.PasswordHash == "" || u.PasswordHash == "s3cretpass" {
		t.Error("expected password to be hashed")
	}
}

func TestStore_Create_DefaultRole(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	u, err := store.Create(ctx, "No Role", "norole@example.com", "s3cretpass", "")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if u.Role != models.RoleUser {
		t.Errorf("Role: got %q, want %q", u.Role, models.RoleUser)
	}
}

func TestStore_Create_DuplicateEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	// The unique index on email is what rejects duplicates.
	_, err := db.Collection("users").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		t.Fatalf("create email index: %v", err)
	}

	if _, err := store.Create(ctx, "First", "dup@example.com", "s3cretpass", models.RoleUser); err != nil {
		t.Fatalf("first Create failed: %v", err)
	}
	if _, err := store.Create(ctx, "Second", "dup@example.com", "s3cretpass", models.RoleUser); err != userstore.ErrDuplicateEmail {
		t.Errorf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestStore_Authenticate(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, "Auth User", "auth@example.com", "correct-horse", models.RoleUser)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	u, err := store.Authenticate(ctx, "auth@example.com", "correct-horse")
	if err != nil {
		t.Fatalf("Authenticate failed: %v", err)
	}
	if u.ID != created.ID {
		t.Errorf("authenticated wrong user: %s", u.ID.Hex())
	}
}

func TestStore_Authenticate_WrongPassword(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.Create(ctx, "Auth User", "auth2@example.com", "correct-horse", models.RoleUser); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if _, err := store.Authenticate(ctx, "auth2@example.com", "battery-staple"); err != userstore.ErrInvalidCredentials {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestStore_Authenticate_UnknownEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	// Unknown account and wrong password are indistinguishable to callers.
	if _, err := store.Authenticate(ctx, "nobody@example.com", "whatever"); err != userstore.ErrInvalidCredentials {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}
