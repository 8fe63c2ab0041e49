package authz_test

import (
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/campdir/internal/app/system/auth"
	"github.com/dalemusser/campdir/internal/app/system/authz"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestUserCtx_NoUser(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)

	role, name, userID, ok := authz.UserCtx(r)
	if ok {
		t.Error("expected ok=false with no user in context")
	}
	if role != "visitor" || name != "" || userID != primitive.NilObjectID {
		t.Errorf("unexpected values: role=%q name=%q id=%s", role, name, userID.Hex())
	}
}

func TestUserCtx_MalformedIDFailsClosed(t *testing.T) {
	r := auth.WithTestUser(httptest.NewRequest("GET", "/", nil),
		&auth.TokenUser{ID: "not-a-hex-objectid", Role: "admin"})

	_, _, _, ok := authz.UserCtx(r)
	if ok {
		t.Error("expected ok=false for malformed user ID")
	}
}

func TestUserCtx_Valid(t *testing.T) {
	id := primitive.NewObjectID()
	r := auth.WithTestUser(httptest.NewRequest("GET", "/", nil),
		&auth.TokenUser{ID: id.Hex(), Name: "Jane", Role: "Publisher"})

	role, name, userID, ok := authz.UserCtx(r)
	if !ok {
		t.Fatal("expected ok=true")
	}
	if role != "publisher" {
		t.Errorf("role should be lowercased: got %q", role)
	}
	if name != "Jane" || userID != id {
		t.Errorf("unexpected values: name=%q id=%s", name, userID.Hex())
	}
}

func TestCanMutate(t *testing.T) {
	owner := primitive.NewObjectID()
	other := primitive.NewObjectID()

	cases := []struct {
		name string
		user *auth.TokenUser
		want bool
	}{
		{"owner", &auth.TokenUser{ID: owner.Hex(), Role: "publisher"}, true},
		{"admin non-owner", &auth.TokenUser{ID: other.Hex(), Role: "admin"}, true},
		{"non-owner", &auth.TokenUser{ID: other.Hex(), Role: "publisher"}, false},
		{"anonymous", nil, false},
	}

	for _, c := range cases {
		r := httptest.NewRequest("PUT", "/", nil)
		if c.user != nil {
			r = auth.WithTestUser(r, c.user)
		}
		if got := authz.CanMutate(r, owner); got != c.want {
			t.Errorf("%s: CanMutate = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestIsAdmin(t *testing.T) {
	id := primitive.NewObjectID()

	r := auth.WithTestUser(httptest.NewRequest("GET", "/", nil),
		&auth.TokenUser{ID: id.Hex(), Role: "admin"})
	if !authz.IsAdmin(r) {
		t.Error("expected IsAdmin=true")
	}

	r = auth.WithTestUser(httptest.NewRequest("GET", "/", nil),
		&auth.TokenUser{ID: id.Hex(), Role: "publisher"})
	if authz.IsAdmin(r) {
		t.Error("expected IsAdmin=false for publisher")
	}
}
