package lexer

import "testing"

func TestSeqAlt(t *testing.T) {
	c := Seq(Exactly('a'), Exactly('b'))
	if end := c([]byte("abc"), 0); end != 2 {
		t.Fatalf("expected 2, got %d", end)
	}
	if end := c([]byte("xbc"), 0); end != noMatch {
		t.Fatalf("expected noMatch, got %d", end)
	}

	alt := Alt(Exactly('x'), Exactly('a'))
	if end := alt([]byte("abc"), 0); end != 1 {
		t.Fatalf("expected 1, got %d", end)
	}
}

func TestNegate(t *testing.T) {
	c := Negate(Exactly('a'))
	if end := c([]byte("abc"), 0); end != noMatch {
		t.Fatalf("expected noMatch, got %d", end)
	}
	if end := c([]byte("bbc"), 0); end != 0 {
		t.Fatalf("expected 0 (non-consuming), got %d", end)
	}
}

func TestOptionalStar(t *testing.T) {
	opt := Optional(Exactly('-'))
	if end := opt([]byte("-x"), 0); end != 1 {
		t.Fatalf("expected 1, got %d", end)
	}
	if end := opt([]byte("x"), 0); end != 0 {
		t.Fatalf("expected 0, got %d", end)
	}

	star := Star(Exactly('a'))
	if end := star([]byte("aaab"), 0); end != 3 {
		t.Fatalf("expected 3, got %d", end)
	}
	if end := star([]byte("b"), 0); end != 0 {
		t.Fatalf("expected 0, got %d", end)
	}
}

func TestPlus(t *testing.T) {
	plus := Plus(Exactly('a'))
	if end := plus([]byte("aaab"), 0); end != 3 {
		t.Fatalf("expected 3, got %d", end)
	}
	if end := plus([]byte("b"), 0); end != noMatch {
		t.Fatalf("expected noMatch, got %d", end)
	}
}
