package vlang

import "testing"

func TestStripCommentsScenarios(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"a/*b*/c", "ac"},
		{"x // y\nz", "x \nz"},
		{"\"a//b\"", "\"a//b\""},
		{"no slashes here", "no slashes here"},
		{"", ""},
		{"a // trailing comment no newline", "a "},
		{"/* multi\nline\ncomment */x", "\n\nx"},
		{"a /* inner // not a line comment */ b", "a  b"},
	}
	for _, tc := range cases {
		if got := StripComments(tc.in); got != tc.want {
			t.Errorf("StripComments(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestStripCommentsPreservesNewlineCount(t *testing.T) {
	inputs := []string{
		"a\nb\nc",
		"a /* block\nwith\nnewlines */ b\nc",
		"a // line\nb // line2\nc",
		"\"string with\\nno actual newline\" // then comment\nnext",
	}
	for _, in := range inputs {
		wantCount := countRune(in, '\n')
		got := StripComments(in)
		gotCount := countRune(got, '\n')
		if gotCount != wantCount {
			t.Errorf("StripComments(%q) newline count = %d, want %d", in, gotCount, wantCount)
		}
	}
}

func TestStripCommentsIdempotent(t *testing.T) {
	inputs := []string{
		"a/*b*/c",
		"x // y\nz",
		"\"a//b\"",
		"plain text",
	}
	for _, in := range inputs {
		once := StripComments(in)
		twice := StripComments(once)
		if once != twice {
			t.Errorf("StripComments not idempotent on %q: once=%q twice=%q", in, once, twice)
		}
	}
}

func countRune(s string, r rune) int {
	n := 0
	for _, c := range s {
		if c == r {
			n++
		}
	}
	return n
}
