package element

import "testing"

func TestSymbol(t *testing.T) {
	if got := Symbol(8); got != "O" {
		t.Errorf("Symbol(8) = %q, want %q", got, "O")
	}
}

func TestSymbolOutOfRange(t *testing.T) {
	if got := Symbol(999); got != "?" {
		t.Errorf("Symbol(999) = %q, want \"?\"", got)
	}
	if got := Symbol(-1); got != "?" {
		t.Errorf("Symbol(-1) = %q, want \"?\"", got)
	}
}
