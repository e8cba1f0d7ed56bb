package util

import "testing"

func TestSanitizeTextRemovesNulAndControls(t *testing.T) {
	in := "ab\x00cd\x01\x02\n\txy"
	out := SanitizeText(in)
	if out != "abcd\n\txy" {
		t.Fatalf("unexpected sanitized output: %q", out)
	}
}

func TestDisplaySnippetCollapsesWhitespaceAndTruncates(t *testing.T) {
	out := DisplaySnippet("Invoice\n\n  No. 42   total due", 14)
	if out != "Invoice No. 42..." {
		t.Fatalf("unexpected snippet: %q", out)
	}
}

func TestTruncateWords(t *testing.T) {
	if out := TruncateWords("a b c d", 2); out != "a b" {
		t.Fatalf("unexpected truncation: %q", out)
	}
	if out := TruncateWords("a b", 0); out != "a b" {
		t.Fatalf("zero cap must keep text intact: %q", out)
	}
	if out := TruncateWords("a b", 10); out != "a b" {
		t.Fatalf("cap above length must keep text intact: %q", out)
	}
}
