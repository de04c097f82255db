package css

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSplitTopLevel(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  []string
	}{
		{
			name:  "commas inside parens are not separators",
			value: "rgb(0,0,0), rgb(1,1,1)",
			want:  []string{"rgb(0,0,0)", "rgb(1,1,1)"},
		},
		{
			name:  "plain list",
			value: "red, blue, green",
			want:  []string{"red", "blue", "green"},
		},
		{
			name:  "single entry",
			value: "0 2px 4px rgba(0,0,0,0.2)",
			want:  []string{"0 2px 4px rgba(0,0,0,0.2)"},
		},
		{
			name:  "nested parens",
			value: "a(b(c,d),e), f",
			want:  []string{"a(b(c,d),e)", "f"},
		},
		{
			name:  "entries are trimmed",
			value: "  red ,  blue  ",
			want:  []string{"red", "blue"},
		},
		{
			name:  "empty entries are dropped",
			value: "red,, blue,",
			want:  []string{"red", "blue"},
		},
		{
			name:  "empty input",
			value: "",
			want:  nil,
		},
		{
			name:  "unbalanced close paren does not underflow",
			value: "a), b",
			want:  []string{"a)", "b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitTopLevel(tt.value)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("SplitTopLevel(%q) mismatch (-want +got):\n%s", tt.value, diff)
			}
		})
	}
}
