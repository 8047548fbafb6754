package target_test

import (
	"strings"
	"testing"

	"github.com/weakwallet/scanner/internal/target"
)

func TestLoadCSVParsesAddressAndLabel(t *testing.T) {
	input := "# comment\n" +
		"1BgGZ9tcN4rm9KBzDn7KprQz87SZ26SAMH,generator-point\n" +
		"\n" +
		"0x7e5f4552091a69125d5dfcb7b8c2659029395bdf\n"

	entries, err := target.LoadCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("LoadCSV: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].Label != "generator-point" {
		t.Fatalf("entries[0].Label = %q, want generator-point", entries[0].Label)
	}
	if entries[1].Label != "0x7e5f4552091a69125d5dfcb7b8c2659029395bdf" {
		t.Fatalf("entries[1].Label = %q, want the bare address", entries[1].Label)
	}
}

func TestLoadCSVRejectsBadAddress(t *testing.T) {
	_, err := target.LoadCSV(strings.NewReader("not-an-address\n"))
	if err == nil {
		t.Fatalf("expected an error for an unparseable address")
	}
}
