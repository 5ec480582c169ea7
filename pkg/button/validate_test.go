package button

import (
	"errors"
	"testing"
)

func TestValidate_MissingRepoForRepoTypes(t *testing.T) {
	for _, typ := range Types() {
		t.Run(typ.String(), func(t *testing.T) {
			_, err := Validate(Request{Type: typ, User: "kartik-v"})
			if typ == TypeFollow {
				if err != nil {
					t.Fatalf("expected follow to validate without repo, got %v", err)
				}
				return
			}
			if !errors.Is(err, ErrMissingRepo) {
				t.Fatalf("expected ErrMissingRepo, got %v", err)
			}
		})
	}
}

func TestValidate_MissingUserForEveryType(t *testing.T) {
	for _, typ := range Types() {
		for _, user := range []string{"", "   "} {
			_, err := Validate(Request{Type: typ, User: user, Repo: "yii2-social"})
			if !errors.Is(err, ErrMissingUser) {
				t.Fatalf("%s: expected ErrMissingUser for user %q, got %v", typ, user, err)
			}
		}
	}
}

func TestValidate_TypeErrors(t *testing.T) {
	cases := []struct {
		name string
		typ  Type
		want error
	}{
		{name: "unset", typ: "", want: ErrMissingType},
		{name: "blank", typ: "  ", want: ErrMissingType},
		{name: "unknown", typ: "like", want: ErrInvalidType},
		{name: "facebook style", typ: "fb-like", want: ErrInvalidType},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Validate(Request{Type: tc.typ, User: "kartik-v", Repo: "yii2-social"})
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}

	_, err := Validate(Request{Type: "like", User: "kartik-v"})
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) || cfgErr.Kind != InvalidType || cfgErr.Value != "like" {
		t.Fatalf("expected InvalidType carrying the value, got %#v", err)
	}
	if errors.Is(err, ErrMissingRepo) {
		t.Fatalf("expected type to be reported before repo")
	}
}

func TestValidate_NormalizesFields(t *testing.T) {
	got, err := Validate(Request{Type: " Star ", User: " kartik-v ", Repo: " yii2-social "})
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if got.Type != TypeStar || got.User != "kartik-v" || got.Repo != "yii2-social" {
		t.Fatalf("expected trimmed/normalized request, got %+v", got)
	}
}

func TestConfigError_Messages(t *testing.T) {
	cases := map[error]string{
		ErrMissingUser: "button: the GitHub user must be set",
		ErrMissingRepo: "button: the GitHub repository must be set",
		ErrMissingType: "button: the button type must be set",
		&ConfigError{Kind: InvalidType, Value: "nope"}: `button: invalid button type "nope"`,
	}
	for err, want := range cases {
		if err.Error() != want {
			t.Fatalf("expected %q, got %q", want, err.Error())
		}
	}
}
