package config

import (
	"slices"
	"testing"
	"time"
)

func TestPrefix(t *testing.T) {
	c := New().Prefix("CORE_").Prefix("API_")
	if got := c.key("TIMEOUT"); got != "CORE_API_TIMEOUT" {
		t.Fatalf("key = %q", got)
	}
	if New().key("X") != "X" {
		t.Fatalf("root view must not prefix")
	}
}

func TestLookup(t *testing.T) {
	c := New().Prefix("LK_")
	t.Setenv("LK_BLANK", "   ")
	t.Setenv("LK_SET", " x ")

	if _, ok := c.Lookup("BLANK"); ok {
		t.Fatalf("blank value should count as unset")
	}
	if _, ok := c.Lookup("UNSET"); ok {
		t.Fatalf("unset value found")
	}
	if v, ok := c.Lookup("SET"); !ok || v != "x" {
		t.Fatalf("Lookup = %q %v", v, ok)
	}
}

func TestMayScalars(t *testing.T) {
	c := New().Prefix("MS_")
	t.Setenv("MS_STR", " newsletter ")
	t.Setenv("MS_INT", " 7 ")
	t.Setenv("MS_BOOL", "true")
	t.Setenv("MS_DUR", "150ms")
	t.Setenv("MS_BAD", "nope")

	if got := c.MayString("STR", "x"); got != "newsletter" {
		t.Fatalf("MayString = %q", got)
	}
	if got := c.MayString("UNSET", "def"); got != "def" {
		t.Fatalf("MayString default = %q", got)
	}

	if got := c.MayInt("INT", 0); got != 7 {
		t.Fatalf("MayInt = %d", got)
	}
	if got := c.MayInt("BAD", 3); got != 3 {
		t.Fatalf("MayInt bad = %d", got)
	}

	if !c.MayBool("BOOL", false) || c.MayBool("BAD", false) || !c.MayBool("UNSET", true) {
		t.Fatalf("MayBool mismatch")
	}

	if got := c.MayDuration("DUR", time.Second); got != 150*time.Millisecond {
		t.Fatalf("MayDuration = %v", got)
	}
	if got := c.MayDuration("BAD", time.Minute); got != time.Minute {
		t.Fatalf("MayDuration bad = %v", got)
	}
}

func TestMayCSV(t *testing.T) {
	c := New().Prefix("CSV_")
	t.Setenv("CSV_ORIGINS", " https://a.test, https://b.test , ,https://c.test ,, ")
	t.Setenv("CSV_EMPTY", " , ,  ,")

	want := []string{"https://a.test", "https://b.test", "https://c.test"}
	if got := c.MayCSV("ORIGINS", nil); !slices.Equal(got, want) {
		t.Fatalf("MayCSV = %#v", got)
	}
	for _, k := range []string{"EMPTY", "UNSET"} {
		if got := c.MayCSV(k, []string{"fallback"}); !slices.Equal(got, []string{"fallback"}) {
			t.Fatalf("MayCSV(%s) = %#v", k, got)
		}
	}
}
