package ast

import "testing"

func TestSplitKeywordOwner(t *testing.T) {
	tests := []struct {
		name     string
		full     string
		expected []OwnerName
	}{
		{
			name:     "plain name",
			full:     "Open Session",
			expected: []OwnerName{{Name: "Open Session"}},
		},
		{
			name: "one qualifier",
			full: "Collections.Append To List",
			expected: []OwnerName{
				{Name: "Collections.Append To List"},
				{Owner: "Collections", Name: "Append To List"},
			},
		},
		{
			name: "dotted name keeps every split",
			full: "a.b.c",
			expected: []OwnerName{
				{Name: "a.b.c"},
				{Owner: "a", Name: "b.c"},
				{Owner: "a.b", Name: "c"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitKeywordOwner(tt.full)
			if len(got) != len(tt.expected) {
				t.Fatalf("got %d readings %v, want %d", len(got), got, len(tt.expected))
			}
			for i := range tt.expected {
				if got[i] != tt.expected[i] {
					t.Errorf("reading %d = %v, want %v", i, got[i], tt.expected[i])
				}
			}
		})
	}
}
