package vlang

import "testing"

func TestParseStandardAliases(t *testing.T) {
	cases := []struct {
		alias string
		want  Standard
	}{
		{"1995", Standard1364_1995},
		{"2001", Standard1364_2001},
		{"1364-2001-noconfig", Standard1364_2001},
		{"sv31", Standard1800_2005},
		{"SV31", Standard1800_2005},
		{"latest", Standard1800_2017},
		{"LATEST", Standard1800_2017},
		{"AMS", StandardVAMS},
		{"VAMS", StandardVAMS},
		{"vams", StandardVAMS},
		{"1800-2012", Standard1800_2012},
		{"1364-1995", Standard1364_1995},
	}
	for _, tc := range cases {
		got, ok := parseStandard(tc.alias)
		if !ok {
			t.Fatalf("parseStandard(%q) failed, want %s", tc.alias, tc.want)
		}
		if got != tc.want {
			t.Errorf("parseStandard(%q) = %s, want %s", tc.alias, got, tc.want)
		}
	}
}

func TestParseStandardUnknown(t *testing.T) {
	if _, ok := parseStandard("not-a-standard"); ok {
		t.Fatal("expected parseStandard to fail on an unknown name")
	}
}

func TestLanguageStandardBadStandard(t *testing.T) {
	l := NewLanguage(Standard1800_2017)
	before := l.StandardName()
	if _, err := l.SetStandard("bogus"); err == nil {
		t.Fatal("expected an error for an unknown standard")
	}
	var bse *BadStandardError
	if _, err := l.SetStandard("bogus"); err != nil {
		if be, ok := err.(*BadStandardError); ok {
			bse = be
		}
	}
	if bse == nil {
		t.Fatal("expected *BadStandardError")
	}
	if bse.Input != "bogus" {
		t.Errorf("BadStandardError.Input = %q, want %q", bse.Input, "bogus")
	}
	if l.StandardName() != before {
		t.Errorf("active standard changed after failed SetStandard: got %s, want %s", l.StandardName(), before)
	}
}

func TestLanguageFlattening(t *testing.T) {
	cases := []struct {
		active Standard
		want   []Standard
	}{
		{Standard1364_1995, []Standard{Standard1364_1995}},
		{Standard1364_2001, []Standard{Standard1364_2001, Standard1364_1995}},
		{Standard1364_2005, []Standard{Standard1364_2005, Standard1364_2001, Standard1364_1995}},
		{Standard1800_2005, []Standard{Standard1800_2005, Standard1364_2005, Standard1364_2001, Standard1364_1995}},
		{StandardVAMS, []Standard{StandardVAMS, Standard1364_2005, Standard1364_2001, Standard1364_1995}},
	}
	for _, tc := range cases {
		got := tc.active.ancestors()
		if len(got) != len(tc.want) {
			t.Fatalf("ancestors(%s) = %v, want %v", tc.active, got, tc.want)
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Errorf("ancestors(%s)[%d] = %s, want %s", tc.active, i, got[i], tc.want[i])
			}
		}
	}
}

func TestIsKeywordEarliestWins(t *testing.T) {
	l := NewLanguage(Standard1364_1995)
	std, ok := l.IsKeyword("wire")
	if !ok || std != "1364-1995" {
		t.Fatalf(`IsKeyword("wire") under 1364-1995 = (%q, %v), want ("1364-1995", true)`, std, ok)
	}

	l2 := NewLanguage(Standard1800_2017)
	std2, ok2 := l2.IsKeyword("wire")
	if !ok2 || std2 != "1364-1995" {
		t.Fatalf(`IsKeyword("wire") under 1800-2017 = (%q, %v), want ("1364-1995", true)`, std2, ok2)
	}
}

func TestIsKeywordLogicIntroducedIn1800(t *testing.T) {
	l := NewLanguage(Standard1364_1995)
	if _, ok := l.IsKeyword("logic"); ok {
		t.Fatal(`IsKeyword("logic") under 1364-1995 should be none`)
	}

	l2 := NewLanguage(Standard1800_2005)
	std, ok := l2.IsKeyword("logic")
	if !ok || std != "1800-2005" {
		t.Fatalf(`IsKeyword("logic") under 1800-2005 = (%q, %v), want ("1800-2005", true)`, std, ok)
	}
}

func TestIsKeywordUnknownSymbol(t *testing.T) {
	l := NewLanguage(Standard1800_2017)
	if _, ok := l.IsKeyword("not_a_real_keyword_xyz"); ok {
		t.Fatal("expected unknown symbol to classify as none under any standard")
	}
}

func TestLanguageMaximum(t *testing.T) {
	if got := LanguageMaximum(); got != "1800-2017" {
		t.Errorf("LanguageMaximum() = %q, want %q", got, "1800-2017")
	}
}

func TestPackageLevelLanguageStandardRoundTrip(t *testing.T) {
	orig, err := LanguageStandard()
	if err != nil {
		t.Fatalf("LanguageStandard() failed: %v", err)
	}
	defer LanguageStandard(orig)

	got, err := LanguageStandard("1364-2001")
	if err != nil {
		t.Fatalf("LanguageStandard(\"1364-2001\") failed: %v", err)
	}
	if got != "1364-2001" {
		t.Errorf("LanguageStandard(\"1364-2001\") = %q, want %q", got, "1364-2001")
	}

	again, err := LanguageStandard()
	if err != nil {
		t.Fatalf("LanguageStandard() failed: %v", err)
	}
	if again != "1364-2001" {
		t.Errorf("LanguageStandard() after set = %q, want %q", again, "1364-2001")
	}
}
