package vars

import "testing"

func TestDerefOrZero(t *testing.T) {
	n := 42
	if DerefOrZero(&n) != 42 {
		t.Fatal()
	}
	if DerefOrZero[int](nil) != 0 {
		t.Fatal()
	}
	if DerefOrZero[string](nil) != "" {
		t.Fatal()
	}
}

func TestFirstNonZero(t *testing.T) {
	if FirstNonZero(0, 0, 3, 4) != 3 {
		t.Fatal()
	}
	if FirstNonZero("", "foo", "bar") != "foo" {
		t.Fatal()
	}
	if FirstNonZero(0, 0) != 0 {
		t.Fatal()
	}
	if FirstNonZero[int]() != 0 {
		t.Fatal()
	}
}

func TestStrToBool(t *testing.T) {
	for _, str := range []string{"true", "T", "yes", "Y", "on", "1", " true "} {
		if !StrToBool(str) {
			t.Fatalf("expected true for %q", str)
		}
	}
	for _, str := range []string{"false", "F", "no", "N", "off", "0", "", "whatever"} {
		if StrToBool(str) {
			t.Fatalf("expected false for %q", str)
		}
	}
}
