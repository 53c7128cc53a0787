package configs

import (
	"errors"
	"fmt"
	"testing"
)

var testSchema = `
prompt?: string
jobs?: int & >0
`

func TestLoaderAssignFirst(t *testing.T) {
	loader := NewLoader([]string{"test.cue"}, testSchema)

	var prompt string
	err := loader.AssignFirst("prompt", &prompt)
	if err != nil {
		t.Fatal(err)
	}
	if prompt != "tally> " {
		t.Fatalf("got %q", prompt)
	}

	var jobs int
	err = loader.AssignFirst("jobs", &jobs)
	if err != nil {
		t.Fatal(err)
	}
	if jobs != 4 {
		t.Fatalf("got %d", jobs)
	}

	err = loader.AssignFirst("absent", &jobs)
	if !errors.Is(err, ErrValueNotFound) {
		t.Fatalf("got %v", err)
	}
}

func TestLoaderFirstFileWins(t *testing.T) {
	loader := NewLoader([]string{
		"test.cue",
		"test2.cue",
	}, testSchema)

	var prompt string
	if err := loader.AssignFirst("prompt", &prompt); err != nil {
		t.Fatal(err)
	}
	if prompt != "tally> " {
		t.Fatalf("got %q", prompt)
	}
}

func TestLoaderIterCueValues(t *testing.T) {
	loader := NewLoader([]string{
		"test.cue",
		"test2.cue",
	}, testSchema)

	var prompts []string
	for value, err := range loader.IterCueValues("prompt") {
		if err != nil {
			t.Fatal(err)
		}
		var s string
		if err := value.Decode(&s); err != nil {
			t.Fatal(err)
		}
		prompts = append(prompts, s)
	}
	if str := fmt.Sprintf("%q", prompts); str != `["tally> " "> "]` {
		t.Fatalf("got %s", str)
	}

	prompts = prompts[:0]
	for prompt := range All[string](loader, "prompt") {
		prompts = append(prompts, prompt)
	}
	if str := fmt.Sprintf("%q", prompts); str != `["tally> " "> "]` {
		t.Fatalf("got %s", str)
	}
}

func TestUnknownField(t *testing.T) {
	loader := NewLoader([]string{
		"bad.cue",
	}, testSchema)
	var s string
	err := loader.AssignFirst("color", &s)
	if err == nil {
		t.Fatal("should error")
	}
	t.Logf("%v", err)
}

func TestMissingFile(t *testing.T) {
	loader := NewLoader([]string{
		"no_such.cue",
	}, testSchema)
	var s string
	err := loader.AssignFirst("prompt", &s)
	if err == nil {
		t.Fatal("should error")
	}
	if errors.Is(err, ErrValueNotFound) {
		t.Fatalf("expected a read error, got %v", err)
	}
}
