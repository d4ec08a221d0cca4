package utilities

import (
	"reflect"
	"testing"
)

func TestContainsFold(t *testing.T) {
	tests := []struct {
		name   string
		s      string
		substr string
		want   bool
	}{
		{name: "case insensitive match", s: "Alice Smith", substr: "ali", want: true},
		{name: "no match", s: "Bob Wilson", substr: "ali", want: false},
		{name: "empty substring", s: "anything", substr: "", want: true},
		{name: "upper substring", s: "emma_davis", substr: "DAVIS", want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ContainsFold(tt.s, tt.substr); got != tt.want {
				t.Errorf("ContainsFold(%q, %q) = %v, want %v", tt.s, tt.substr, got, tt.want)
			}
		})
	}
}

func TestUnionStrings(t *testing.T) {
	tests := []struct {
		name  string
		base  []string
		extra []string
		want  []string
	}{
		{name: "appends missing", base: []string{"a"}, extra: []string{"b"}, want: []string{"a", "b"}},
		{name: "deduplicates", base: []string{"a", "b"}, extra: []string{"b", "a"}, want: []string{"a", "b"}},
		{name: "duplicate base entries collapse", base: []string{"a", "a", "b"}, extra: nil, want: []string{"a", "b"}},
		{name: "empty base", base: nil, extra: []string{"x"}, want: []string{"x"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UnionStrings(tt.base, tt.extra...); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("UnionStrings() = %v, want %v", got, tt.want)
			}
		})
	}
}
