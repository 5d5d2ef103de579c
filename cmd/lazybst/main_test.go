package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/kylelemons/godebug/pretty"
)

func TestSplitKeys(t *testing.T) {
	tests := []struct {
		desc string
		in   string
		want []string
	}{
		{desc: "empty", in: "", want: nil},
		{desc: "single", in: "a", want: []string{"a"}},
		{desc: "spaces and empty entries", in: " d, b,,e ", want: []string{"d", "b", "e"}},
	}

	for _, test := range tests {
		if diff := pretty.Compare(test.want, splitKeys(test.in)); diff != "" {
			t.Errorf("TestSplitKeys(%s): -want/+got:\n%s", test.desc, diff)
		}
	}
}

func TestCheckFlags(t *testing.T) {
	tests := []struct {
		desc        string
		bench       bool
		keys        string
		count       int
		removeRatio float64
		wantErr     bool
	}{
		{desc: "no keys and no bench", wantErr: true},
		{desc: "keys", keys: "a,b"},
		{desc: "bench", bench: true, count: 10, removeRatio: 0.5},
		{desc: "bench ignores keys", bench: true, count: 10},
		{desc: "bench with zero count", bench: true, removeRatio: 0.5, wantErr: true},
		{desc: "bench with negative ratio", bench: true, count: 10, removeRatio: -0.1, wantErr: true},
		{desc: "bench with ratio above 1", bench: true, count: 10, removeRatio: 1.5, wantErr: true},
	}

	for _, test := range tests {
		err := checkFlags(test.bench, test.keys, test.count, test.removeRatio)
		switch {
		case err == nil && test.wantErr:
			t.Errorf("TestCheckFlags(%s): got err == nil, want error", test.desc)
		case err != nil && !test.wantErr:
			t.Errorf("TestCheckFlags(%s): got err == %s, want err == nil", test.desc, err)
		}
	}
}

func TestShow(t *testing.T) {
	buf := &bytes.Buffer{}
	keys := splitKeys("d,b,e,o,a,i,x,h,c,f,g")
	if err := show(buf, keys, splitKeys("a,x,o")); err != nil {
		t.Fatalf("TestShow: got err == %s, want err == nil", err)
	}

	out := buf.String()
	for _, want := range []string{
		"before (11 nodes, height 7):",
		"after (8 nodes, height 4, 3 purged):",
		"o (removed)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("TestShow: output does not contain %q:\n%s", want, out)
		}
	}

	after := out[strings.Index(out, "after"):]
	if !strings.Contains(after, "\nf\n") {
		t.Errorf("TestShow: rebalanced tree should have root f:\n%s", after)
	}
}

func TestShowErrors(t *testing.T) {
	if err := show(&bytes.Buffer{}, nil, nil); err == nil {
		t.Errorf("TestShowErrors: no keys: got err == nil, want error")
	}
	if err := show(&bytes.Buffer{}, []string{"a", "a"}, nil); err == nil {
		t.Errorf("TestShowErrors: duplicate keys: got err == nil, want error")
	}
}

func TestRunBench(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := runBench(buf, 1000, 0.5, 3); err != nil {
		t.Fatalf("TestRunBench: got err == %s, want err == nil", err)
	}
	if !strings.Contains(buf.String(), "inserted:   1,000 keys") {
		t.Errorf("TestRunBench: unexpected output:\n%s", buf)
	}
}
