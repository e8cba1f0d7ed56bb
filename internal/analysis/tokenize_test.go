package analysis

import "testing"

func TestTokenizeSplitsOnTerminalPunctuation(t *testing.T) {
	got := Tokenize("First sentence. Second one! Third?")
	if len(got) != 3 {
		t.Fatalf("expected 3 sentences, got %d: %#v", len(got), got)
	}
	if got[0].Text != "First sentence." {
		t.Fatalf("unexpected first sentence: %q", got[0].Text)
	}
	if got[2].Index != 2 {
		t.Fatalf("indices must follow document order, got %d", got[2].Index)
	}
}

func TestTokenizeKeepsAbbreviationsTogether(t *testing.T) {
	got := Tokenize("Acme Inc. shipped order no. 42 today. Payment is due.")
	if len(got) != 2 {
		t.Fatalf("expected 2 sentences, got %d: %#v", len(got), got)
	}
}

func TestTokenizeDoesNotBreakInsideNumbers(t *testing.T) {
	got := Tokenize("Total is 1.50 dollars. Thanks.")
	if len(got) != 2 {
		t.Fatalf("expected 2 sentences, got %d: %#v", len(got), got)
	}
}

func TestTokenizeBreaksOnBlankLine(t *testing.T) {
	got := Tokenize("header without period\n\nBody sentence.")
	if len(got) != 2 {
		t.Fatalf("expected 2 sentences, got %d: %#v", len(got), got)
	}
}

func TestTokenizeEmptyInput(t *testing.T) {
	if got := Tokenize(""); len(got) != 0 {
		t.Fatalf("empty text must yield no sentences, got %#v", got)
	}
	if got := Tokenize("   \n\t "); len(got) != 0 {
		t.Fatalf("whitespace text must yield no sentences, got %#v", got)
	}
}

func TestWordsStripsEdgePunctuationAndLowercases(t *testing.T) {
	got := Words(`"Invoice" (Total): $42.50, due!`)
	want := []string{"invoice", "total", "42.50", "due"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}
