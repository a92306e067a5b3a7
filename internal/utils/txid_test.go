package utils

import (
	"strings"
	"testing"
)

func TestNewTransactionIDShape(t *testing.T) {
	id := NewTransactionID("TXN")
	if !strings.HasPrefix(id, "TXN") {
		t.Fatalf("id %q missing prefix", id)
	}
	body := strings.TrimPrefix(id, "TXN")
	// unix millis (13 digits for current dates) plus 9 random chars
	if len(body) != 22 {
		t.Fatalf("unexpected id body length %d in %q", len(body), id)
	}
	for _, c := range body {
		if !strings.ContainsRune(txnAlphabet, c) {
			t.Fatalf("unexpected character %q in %q", c, id)
		}
	}
}

func TestNewTransactionIDPrefixes(t *testing.T) {
	for _, prefix := range []string{"TXN", "POUT", "BANK", "UTR", "pi_"} {
		id := NewTransactionID(prefix)
		if !strings.HasPrefix(id, prefix) {
			t.Fatalf("id %q does not start with %q", id, prefix)
		}
	}
}

func TestNewTransactionIDDistinct(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewTransactionID("TXN")
		if seen[id] {
			t.Fatalf("duplicate id generated: %q", id)
		}
		seen[id] = true
	}
}
