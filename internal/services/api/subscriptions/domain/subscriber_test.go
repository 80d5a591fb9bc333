package domain

import (
	"testing"

	perr "newsletter/internal/platform/errors"
)

func strp(s string) *string { return &s }

func TestSubscribeInput_Form(t *testing.T) {
	in := SubscribeInput{Name: strp("le guin"), Email: strp("ursula@example.com")}
	got := in.Form()
	if got.Name != "le guin" || got.Email != "ursula@example.com" {
		t.Fatalf("Form() = %+v", got)
	}
	if f := (SubscribeInput{}).Form(); f != (SubscribeForm{}) {
		t.Fatalf("absent keys should read empty, got %+v", f)
	}
}

func TestParseNewSubscriber_OK(t *testing.T) {
	sub, err := ParseNewSubscriber(SubscribeForm{Name: "le guin", Email: "ursula_le_guin@gmail.com"})
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if sub.IsZero() {
		t.Fatalf("parsed subscriber reports zero")
	}
	if sub.Name().String() != "le guin" || sub.Email().String() != "ursula_le_guin@gmail.com" {
		t.Fatalf("unexpected subscriber %+v", sub)
	}
}

func TestParseNewSubscriber_FirstFailureWins(t *testing.T) {
	cases := []struct {
		name  string
		form  SubscribeForm
		field string
	}{
		{"bad email", SubscribeForm{Name: "ok", Email: "nope"}, "email"},
		{"bad name", SubscribeForm{Name: "", Email: "ursula@example.com"}, "name"},
		{"both bad reports email", SubscribeForm{Name: "{x}", Email: ""}, "email"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			sub, err := ParseNewSubscriber(c.form)
			if err == nil {
				t.Fatalf("expected error")
			}
			if !sub.IsZero() {
				t.Fatalf("failed parse should return zero subscriber")
			}
			e, ok := perr.As(err)
			if !ok || e.Field() != c.field {
				t.Fatalf("err = %v, want field %q", err, c.field)
			}
			if perr.HTTPStatus(err) != 400 {
				t.Fatalf("status = %d, want 400", perr.HTTPStatus(err))
			}
		})
	}
}

func TestErrStorageMapsTo500(t *testing.T) {
	if got := perr.HTTPStatus(ErrStorage); got != 500 {
		t.Fatalf("status = %d, want 500", got)
	}
}
