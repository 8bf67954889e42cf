package vlang

import (
	"reflect"
	"testing"
)

func TestSplitBusScenarios(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"[31,5:4]", []string{"[31]", "[5]", "[4]"}},
		{"foo", []string{"foo"}},
		{"foo[3:1]bar", []string{"foo[3]bar", "foo[2]bar", "foo[1]bar"}},
		{"[0]", []string{"[0]"}},
	}
	for _, tc := range cases {
		got := SplitBus(tc.in)
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("SplitBus(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestSplitBusNoCommaScenarios(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"[31:29]", []string{"[31]", "[30]", "[29]"}},
		{"foo", []string{"foo"}},
		{"bar[1:3]", []string{"bar[1]", "bar[2]", "bar[3]"}},
	}
	for _, tc := range cases {
		got := SplitBusNoComma(tc.in)
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("SplitBusNoComma(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestSplitBusWithStride(t *testing.T) {
	got := SplitBus("[0:6:2]")
	want := []string{"[0]", "[2]", "[4]", "[6]"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SplitBus(\"[0:6:2]\") = %v, want %v", got, want)
	}
}

func TestSplitBusZippedCartesianProduct(t *testing.T) {
	got := SplitBus("x[1:0]=y[3:0]")
	want := []string{"x[1]=y[3]", "x[0]=y[2]", "x[1]=y[1]", "x[0]=y[0]"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SplitBus(\"x[1:0]=y[3:0]\") = %v, want %v", got, want)
	}
}

func TestSplitBusWithoutBracketsUnchanged(t *testing.T) {
	cases := []string{"plain", "a_signal_name", ""}
	for _, in := range cases {
		got := SplitBus(in)
		want := []string{in}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("SplitBus(%q) = %v, want %v", in, got, want)
		}

		got2 := SplitBusNoComma(in)
		if !reflect.DeepEqual(got2, want) {
			t.Errorf("SplitBusNoComma(%q) = %v, want %v", in, got2, want)
		}
	}
}

func TestSplitBusDescendingVsAscending(t *testing.T) {
	desc := SplitBus("[7:4]")
	if len(desc) != 4 {
		t.Fatalf("SplitBus(\"[7:4]\") length = %d, want 4", len(desc))
	}
	for i := 0; i < len(desc)-1; i++ {
		a := bracketInt(t, desc[i])
		b := bracketInt(t, desc[i+1])
		if b >= a {
			t.Fatalf("descending range not strictly decreasing: %v", desc)
		}
	}

	asc := SplitBus("[4:7]")
	if len(asc) != 4 {
		t.Fatalf("SplitBus(\"[4:7]\") length = %d, want 4", len(asc))
	}
	for i := 0; i < len(asc)-1; i++ {
		a := bracketInt(t, asc[i])
		b := bracketInt(t, asc[i+1])
		if b <= a {
			t.Fatalf("ascending range not strictly increasing: %v", asc)
		}
	}
}

func bracketInt(t *testing.T, s string) int64 {
	t.Helper()
	inner := s[1 : len(s)-1]
	v, ok := NumberValue(inner)
	if !ok {
		t.Fatalf("could not parse bracket contents of %q", s)
	}
	return v
}
