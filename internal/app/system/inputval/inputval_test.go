package inputval_test

import (
	"strings"
	"testing"

	"github.com/dalemusser/campdir/internal/app/system/inputval"
)

type sample struct {
	Name         string `validate:"required,max=10" label:"Name"`
	Email        string `validate:"omitempty,email" label:"Email"`
	Website      string `validate:"omitempty,url" label:"Website"`
	MinimumSkill string `validate:"omitempty,oneof=beginner intermediate advanced" label:"Minimum skill"`
	Rating       int    `validate:"omitempty,gte=1,lte=10" label:"Rating"`
}

func TestValidate_Passes(t *testing.T) {
	res := inputval.Validate(sample{Name: "OK", Email: "a@b.com", Rating: 5})
	if res.HasErrors() {
		t.Errorf("unexpected errors: %v", res.Errors)
	}
	if res.First() != "" {
		t.Errorf("First on success: got %q", res.First())
	}
}

func TestValidate_Messages(t *testing.T) {
	cases := []struct {
		name string
		in   sample
		want string
	}{
		{"required", sample{}, "Name is required."},
		{"max", sample{Name: "this name is far too long"}, "Name must be at most 10 characters."},
		{"email", sample{Name: "OK", Email: "not-an-email"}, "Email must be a valid email address."},
		{"url", sample{Name: "OK", Website: "not a url"}, "Website must be a valid URL."},
		{"oneof", sample{Name: "OK", MinimumSkill: "wizard"}, "Minimum skill must be one of: beginner, intermediate, advanced."},
		{"lte", sample{Name: "OK", Rating: 11}, "Rating must be at most 10."},
	}

	for _, c := range cases {
		res := inputval.Validate(c.in)
		if !res.HasErrors() {
			t.Errorf("%s: expected a failure", c.name)
			continue
		}
		if res.First() != c.want {
			t.Errorf("%s: got %q, want %q", c.name, res.First(), c.want)
		}
	}
}

func TestValidate_CollectsAllFailures(t *testing.T) {
	res := inputval.Validate(sample{Email: "bad", MinimumSkill: "wizard"})
	if len(res.Errors) < 3 {
		t.Errorf("expected at least 3 failures, got %v", res.Errors)
	}
	joined := strings.Join(res.Errors, " ")
	for _, label := range []string{"Name", "Email", "Minimum skill"} {
		if !strings.Contains(joined, label) {
			t.Errorf("missing failure for %s in %v", label, res.Errors)
		}
	}
}

func TestIsValidCareer(t *testing.T) {
	allowed := []string{"Web Development", "Mobile Development", "UI/UX", "Data Science", "Business", "Other"}

	if !inputval.IsValidCareer("UI/UX", allowed) {
		t.Error("UI/UX should be allowed")
	}
	if inputval.IsValidCareer("Underwater Basket Weaving", allowed) {
		t.Error("unknown career should be rejected")
	}
	if inputval.IsValidCareer("web development", allowed) {
		t.Error("career match is case-sensitive")
	}
}
