package encoder_test

import (
	"testing"

	"github.com/5amu/guidconv/pkg/encoder"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		in  string
		exp encoder.Shape
	}{
		{"01020304-0506-0708-0910-111213141516", encoder.CanonicalShaped},
		{"  01020304-0506-0708-0910-111213141516\t", encoder.CanonicalShaped},
		{"0102030-40506-0708-0910-111213141516", encoder.CanonicalShaped},
		{"zzzzzzzz-zzzz-zzzz-zzzz-zzzzzzzzzzzz", encoder.CanonicalShaped},
		{"00000000000000000000000000000000", encoder.RawHexShaped},
		{"045d888aEB1CC9119FE808002B104860", encoder.RawHexShaped},
		{"045D888AEB1CC9119FE808002B10486G", encoder.Unrecognized},
		{"01020304-0506-0708-0910-1112131415161", encoder.Unrecognized},
		{"01020304-0506-0708-0910+111213141516", encoder.Unrecognized},
		{"not-a-guid", encoder.Unrecognized},
		{"", encoder.Unrecognized},
		{"   ", encoder.Unrecognized},
		{"é", encoder.Unrecognized},
	}

	for _, c := range cases {
		if r := encoder.Classify(c.in); r != c.exp {
			t.Errorf("%q: %v, expected: %v", c.in, r, c.exp)
		}
	}
}

func TestShapeString(t *testing.T) {
	for s, exp := range map[encoder.Shape]string{
		encoder.CanonicalShaped: "guid",
		encoder.RawHexShaped:    "raw hex",
		encoder.Unrecognized:    "unrecognized",
		encoder.Shape(42):       "unrecognized",
	} {
		if s.String() != exp {
			t.Errorf("%d: %s, expected: %s", s, s.String(), exp)
		}
	}
}
