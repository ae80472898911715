package commands_test

import (
	"bytes"
	"testing"

	"weatheradvisor/cmd/weather/commands"
)

func TestRoot_BareInvocationGreets(t *testing.T) {
	root := commands.NewRoot()
	out := new(bytes.Buffer)
	root.SetOut(out)
	root.SetErr(out)
	root.SetArgs([]string{})

	if err := root.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if out.String() != "Hello\n" {
		t.Fatalf("output = %q, want %q", out.String(), "Hello\n")
	}
}

func TestRoot_AskWithoutLocationFails(t *testing.T) {
	t.Setenv("WEATHER_ADVISOR_DISABLE_OLLAMA", "1")

	root := commands.NewRoot()
	out := new(bytes.Buffer)
	root.SetOut(out)
	root.SetErr(out)
	root.SetArgs([]string{"ask", "will", "it", "rain", "tomorrow"})

	if err := root.Execute(); err == nil {
		t.Fatal("expected error when no location is available")
	}
}
