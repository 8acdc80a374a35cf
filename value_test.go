package driftdiff

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseJSONKinds(t *testing.T) {
	v, err := ParseJSON([]byte(`{"n": 1, "f": 2.5, "s": "x", "b": true, "z": null, "arr": [1], "obj": {}}`))
	if err != nil {
		t.Fatal(err)
	}
	if v.Kind() != KindObject {
		t.Fatalf("want object, got %s", v.Kind())
	}

	cases := []struct {
		key  string
		kind Kind
	}{
		{"n", KindNumber},
		{"f", KindNumber},
		{"s", KindString},
		{"b", KindBool},
		{"z", KindNull},
		{"arr", KindArray},
		{"obj", KindObject},
	}
	for _, tc := range cases {
		fv, ok := v.Field(tc.key)
		if !ok {
			t.Errorf("missing field %q", tc.key)
			continue
		}
		if fv.Kind() != tc.kind {
			t.Errorf("field %q: want kind %s, got %s", tc.key, tc.kind, fv.Kind())
		}
	}
}

func TestParseYAML(t *testing.T) {
	v, err := ParseYAML([]byte("count: 3\nratio: 2.5\nitems:\n  - x\n  - 2\nnested:\n  ok: true\n"))
	if err != nil {
		t.Fatal(err)
	}

	count, ok := v.Field("count")
	if !ok || count.Kind() != KindNumber || count.Float() != 3 {
		t.Errorf("count: want number 3, got %s %v", count.Kind(), count)
	}
	ratio, _ := v.Field("ratio")
	if ratio.Kind() != KindNumber || ratio.Float() != 2.5 {
		t.Errorf("ratio: want number 2.5, got %s %v", ratio.Kind(), ratio)
	}
	items, _ := v.Field("items")
	if items.Kind() != KindArray || items.Len() != 2 {
		t.Fatalf("items: want 2-element array, got %s len %d", items.Kind(), items.Len())
	}
	if items.Elems()[1].Kind() != KindNumber {
		t.Errorf("items[1]: want number, got %s", items.Elems()[1].Kind())
	}
	nested, _ := v.Field("nested")
	okVal, _ := nested.Field("ok")
	if okVal.Kind() != KindBool || !okVal.Bool() {
		t.Errorf("nested.ok: want true, got %s %v", okVal.Kind(), okVal)
	}
}

func TestObjectFieldsSorted(t *testing.T) {
	v := Object(
		Field{Key: "zebra", Value: Number(1)},
		Field{Key: "apple", Value: Number(2)},
		Field{Key: "mango", Value: Number(3)},
	)

	var keys []string
	for _, f := range v.Fields() {
		keys = append(keys, f.Key)
	}
	if diff := cmp.Diff([]string{"apple", "mango", "zebra"}, keys); diff != "" {
		t.Errorf("key order mismatch (-want +got):\n%s", diff)
	}
}

func TestFromGoIntWidening(t *testing.T) {
	for _, in := range []interface{}{int(3), int32(3), int64(3), uint(3), uint64(3), float32(3), float64(3)} {
		v, err := FromGo(in)
		if err != nil {
			t.Fatalf("%T: %s", in, err)
		}
		if v.Kind() != KindNumber || v.Float() != 3 {
			t.Errorf("%T: want number 3, got %s %v", in, v.Kind(), v)
		}
	}
}

func TestFromGoUnsupported(t *testing.T) {
	if _, err := FromGo(struct{}{}); err == nil {
		t.Error("expected an error for an unsupported type")
	}
	if _, err := FromGo(map[interface{}]interface{}{1: "x"}); err == nil {
		t.Error("expected an error for a non-string object key")
	}
}

func TestValueEqual(t *testing.T) {
	cases := []struct {
		description string
		a, b        Value
		equal       bool
	}{
		{"nulls", Null(), Null(), true},
		{"equal numbers", Number(1.5), Number(1.5), true},
		{"close numbers are not strictly equal", Number(1.5), Number(1.5 + 1e-12), false},
		{"bool vs number", Bool(true), Number(1), false},
		{"equal arrays", Array(Number(1), String("x")), Array(Number(1), String("x")), true},
		{"arrays differing in length", Array(Number(1)), Array(Number(1), Number(2)), false},
		{
			"objects ignore construction order",
			Object(Field{Key: "a", Value: Number(1)}, Field{Key: "b", Value: Number(2)}),
			Object(Field{Key: "b", Value: Number(2)}, Field{Key: "a", Value: Number(1)}),
			true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.description, func(t *testing.T) {
			if got := tc.a.Equal(tc.b); got != tc.equal {
				t.Errorf("Equal(%v, %v): want %v, got %v", tc.a, tc.b, tc.equal, got)
			}
		})
	}
}

func TestValueString(t *testing.T) {
	cases := []struct {
		v      Value
		expect string
	}{
		{Null(), "null"},
		{Bool(true), "true"},
		{Number(2.5), "2.5"},
		{Number(3), "3"},
		{String("hello"), "hello"},
		{Array(Number(1), Number(2)), "[1,2]"},
		{Object(Field{Key: "a", Value: Number(1)}), `{"a":1}`},
	}
	for _, tc := range cases {
		if got := tc.v.String(); got != tc.expect {
			t.Errorf("want %q, got %q", tc.expect, got)
		}
	}
}

func TestInterfaceRoundTrip(t *testing.T) {
	src := `{"a": [1, "x", null], "b": {"c": true}}`
	v, err := ParseJSON([]byte(src))
	if err != nil {
		t.Fatal(err)
	}

	want := map[string]interface{}{
		"a": []interface{}{float64(1), "x", nil},
		"b": map[string]interface{}{"c": true},
	}
	if diff := cmp.Diff(want, v.Interface()); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}
