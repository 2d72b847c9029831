package payload

import (
	"math"
	"reflect"
	"testing"

	"github.com/projectunified/unidialog-go/internal/nbt"
)

func TestDecodeExample(t *testing.T) {
	in := nbt.Compound{
		"count":   nbt.Int(3),
		"enabled": nbt.Byte(1),
		"label":   nbt.String("go"),
	}
	want := map[string]string{"count": "3", "enabled": "true", "label": "go"}
	if got := Decode(in); !reflect.DeepEqual(got, want) {
		t.Fatalf("Decode = %v, want %v", got, want)
	}
}

func TestDecodeNonCompound(t *testing.T) {
	inputs := []nbt.Tag{
		nil,
		nbt.Int(1),
		nbt.String("x"),
		nbt.End{},
		nbt.List{Elem: nbt.TypeCompound, Items: []nbt.Tag{nbt.Compound{"a": nbt.Int(1)}}},
	}
	for _, in := range inputs {
		got := Decode(in)
		if got == nil {
			t.Errorf("Decode(%#v) returned nil map", in)
		}
		if len(got) != 0 {
			t.Errorf("Decode(%#v) = %v, want empty", in, got)
		}
	}
}

func TestDecodeCoercion(t *testing.T) {
	cases := []struct {
		name string
		in   nbt.Tag
		want string
	}{
		{"int max", nbt.Int(math.MaxInt32), "2147483647"},
		{"int min", nbt.Int(math.MinInt32), "-2147483648"},
		{"long", nbt.Long(math.MaxInt64), "9223372036854775807"},
		{"float", nbt.Float(0.1), "0.1"},
		{"float whole", nbt.Float(3), "3"},
		{"double", nbt.Double(2.5), "2.5"},
		{"double small", nbt.Double(1e-9), "1e-09"},
		{"string verbatim", nbt.String(`a "b" \n`), `a "b" \n`},
		{"byte zero", nbt.Byte(0), "false"},
		{"byte negative", nbt.Byte(-1), "true"},
		{"short fallback", nbt.Short(7), "7s"},
		{"list fallback", nbt.List{Elem: nbt.TypeInt, Items: []nbt.Tag{nbt.Int(1)}}, "[1]"},
		{"compound fallback", nbt.Compound{"k": nbt.Int(1)}, "{k:1}"},
		{"int array fallback", nbt.IntArray{4}, "[I;4]"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Decode(nbt.Compound{"v": c.in})
			if got["v"] != c.want {
				t.Fatalf("got %q, want %q", got["v"], c.want)
			}
		})
	}
}

func TestDecodeKeepsKeySet(t *testing.T) {
	in := nbt.Compound{
		"a": nbt.Int(1),
		"b": nbt.Long(2),
		"c": nbt.Float(3.5),
		"d": nbt.Double(4.5),
		"e": nbt.String(""),
		"f": nbt.Byte(0),
		"":  nbt.Int(0),
	}
	got := Decode(in)
	if len(got) != len(in) {
		t.Fatalf("got %d keys, want %d", len(got), len(in))
	}
	for k := range in {
		if _, ok := got[k]; !ok {
			t.Errorf("missing key %q", k)
		}
	}
}

func TestDecodeNilEntryFallsBack(t *testing.T) {
	got := Decode(nbt.Compound{"x": nil})
	if got["x"] == "" {
		t.Fatal("nil entry should decode to a non-empty fallback")
	}
}

func TestDecodeReadsThroughPointerTags(t *testing.T) {
	n := nbt.Int(3)
	s := nbt.String("go")
	in := nbt.Compound{
		"count": &n,
		"label": &s,
		"gone":  (*nbt.Int)(nil),
		"list":  (*nbt.List)(nil),
	}
	got := Decode(in)
	want := map[string]string{"count": "3", "label": "go", "gone": "<nil>", "list": "<nil>"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Decode = %v, want %v", got, want)
	}
}

func TestDecodePointerCompound(t *testing.T) {
	c := nbt.Compound{"a": nbt.Int(1)}
	if got := Decode(&c); !reflect.DeepEqual(got, map[string]string{"a": "1"}) {
		t.Fatalf("Decode(&compound) = %v", got)
	}
	got := Decode((*nbt.Compound)(nil))
	if got == nil || len(got) != 0 {
		t.Fatalf("Decode of a nil compound pointer = %v, want empty map", got)
	}
}
