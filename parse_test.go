package polish

import (
	"errors"
	"math"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  Expr
	}{
		{
			input: "3",
			want:  Num{3},
		},
		{
			input: "+ 2 3",
			want:  Add{Num{2}, Num{3}},
		},
		{
			input: "* + 2 3 4",
			want:  Mul{Add{Num{2}, Num{3}}, Num{4}},
		},
		{
			input: "+ * 1 2 * 3 4",
			want:  Add{Mul{Num{1}, Num{2}}, Mul{Num{3}, Num{4}}},
		},
		{
			input: "   *   7    8",
			want:  Mul{Num{7}, Num{8}},
		},
		{
			input: "+1 2",
			want:  Add{Num{1}, Num{2}},
		},
		{
			input: "++1 2 3",
			want:  Add{Add{Num{1}, Num{2}}, Num{3}},
		},
		{
			input: "007",
			want:  Num{7},
		},
		{
			input: "18446744073709551615",
			want:  Num{math.MaxUint64},
		},
		{
			input: "+ 1 2   ",
			want:  Add{Num{1}, Num{2}},
		},
	}
	for _, test := range tests {
		t.Logf("%q", test.input)
		got, err := Parse(test.input)
		if err != nil {
			t.Error(err)
			continue
		}
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("%q: %s", test.input, diff)
		}
	}
}

func TestParseError(t *testing.T) {
	tests := []struct {
		input  string
		kind   error
		offset int
		msg    string
	}{
		{"+ 2", ErrUnexpectedToken, 3, "unexpected token: end of input (3)"},
		{"-", ErrUnexpectedToken, 0, `unexpected token: "-" (0)`},
		{"", ErrUnexpectedToken, 0, "unexpected token: end of input (0)"},
		{"  ", ErrUnexpectedToken, 2, "unexpected token: end of input (2)"},
		{"+ 1 x", ErrUnexpectedToken, 4, `unexpected token: "x" (4)`},
		{"\t3", ErrUnexpectedToken, 0, `unexpected token: "\t" (0)`},
		{"* 2 é", ErrUnexpectedToken, 4, `unexpected token: "é" (4)`},
		{"3 garbage", ErrTrailingInput, 2, `trailing input: "garbage" (2)`},
		{"+ 1 2 3", ErrTrailingInput, 6, `trailing input: "3" (6)`},
		{
			"18446744073709551616", ErrInvalidNumber, 0,
			`invalid number: "18446744073709551616" (0): value out of range`,
		},
		{
			"99999999999999999999+1 2", ErrInvalidNumber, 0,
			`invalid number: "99999999999999999999" (0): value out of range`,
		},
		{
			"+ 1 99999999999999999999 2", ErrInvalidNumber, 4,
			`invalid number: "99999999999999999999" (4): value out of range`,
		},
	}
	for _, test := range tests {
		e, err := Parse(test.input)
		require.Error(t, err, "%q", test.input)
		require.Nil(t, e)
		require.ErrorIs(t, err, test.kind, "%q", test.input)

		var pe *ParseError
		require.True(t, errors.As(err, &pe))
		require.Equal(t, test.offset, pe.Offset, "%q", test.input)
		require.Equal(t, test.msg, err.Error())
	}
}

func TestParseOverflowCause(t *testing.T) {
	_, err := Parse("99999999999999999999")
	require.ErrorIs(t, err, ErrInvalidNumber)
	require.ErrorIs(t, err, strconv.ErrRange)
}

func TestParsePrefix(t *testing.T) {
	tests := []struct {
		input string
		want  Expr
		rest  string
	}{
		{"3 5", Num{3}, " 5"},
		{"3 garbage", Num{3}, " garbage"},
		{"+ 2 3", Add{Num{2}, Num{3}}, ""},
		{"* + 2 3 4 tail", Mul{Add{Num{2}, Num{3}}, Num{4}}, " tail"},
		{"12ab", Num{12}, "ab"},
	}
	for _, test := range tests {
		got, rest, err := ParsePrefix(test.input)
		require.NoError(t, err, "%q", test.input)
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("%q: %s", test.input, diff)
		}
		require.Equal(t, test.rest, rest, "%q", test.input)
	}
}

func TestParseNumber(t *testing.T) {
	values := []uint64{0, 1, 9, 10, 42, 1 << 32, math.MaxUint64 - 1, math.MaxUint64}
	for _, v := range values {
		s := strconv.FormatUint(v, 10)
		p := &parser{input: s + " +"}
		got, rest, err := p.parseNumber(p.input)
		require.NoError(t, err)
		require.Equal(t, Expr(Num{v}), got)
		require.Equal(t, " +", rest)
	}

	p := &parser{input: "+ 1 2"}
	_, rest, err := p.parseNumber(p.input)
	require.ErrorIs(t, err, ErrInvalidNumber)
	require.Equal(t, "+ 1 2", rest)
}

func TestParseOperatorExpr(t *testing.T) {
	p := &parser{input: "+ 2 3"}
	got, rest, err := p.parseOperatorExpr(p.input)
	require.NoError(t, err)
	require.Equal(t, Expr(Add{Num{2}, Num{3}}), got)
	require.Equal(t, "", rest)

	p = &parser{input: " + 2 3"}
	_, _, err = p.parseOperatorExpr(p.input)
	require.ErrorIs(t, err, ErrUnexpectedToken)
}

func TestParseComposes(t *testing.T) {
	exprs := []string{"1", "+ 2 3", "* 4 + 5 6", "0"}
	for _, e1 := range exprs {
		for _, e2 := range exprs {
			t1, err := Parse(e1)
			require.NoError(t, err)
			t2, err := Parse(e2)
			require.NoError(t, err)

			got, err := Parse("+ " + e1 + " " + e2)
			require.NoError(t, err)
			if diff := cmp.Diff(Expr(Add{t1, t2}), got); diff != "" {
				t.Error(diff)
			}
			got, err = Parse("* " + e1 + " " + e2)
			require.NoError(t, err)
			if diff := cmp.Diff(Expr(Mul{t1, t2}), got); diff != "" {
				t.Error(diff)
			}
		}
	}
}
