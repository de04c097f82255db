package dom

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFromHTML(t *testing.T) {
	snapshot := `<html><body>
	<div class="card elevated" data-x="16" data-y="32" data-width="320" data-height="120"
	     style="display: flex; flex-direction: column; gap: 8px; background-color: #ffffff; border-radius: 12px">
	  <h2 data-width="288" data-height="24" style="color: #111111; font-size: 20px; font-weight: 600">Title</h2>
	  <button aria-label="Close dialog" style="background-image: linear-gradient(to right, #000, #fff)"></button>
	</div>
	</body></html>`

	got, err := FromHTML(strings.NewReader(snapshot))
	if err != nil {
		t.Fatalf("FromHTML() error = %v", err)
	}

	want := &Record{
		Tag:   "div",
		Class: []string{"card", "elevated"},
		Box:   Rect{X: 16, Y: 32, Width: 320, Height: 120},
		Computed: Style{
			Display:         "flex",
			FlexDirection:   "column",
			Gap:             "8px",
			BackgroundColor: "#ffffff",
			BorderRadius:    "12px",
		},
		Kids: []*Record{
			{
				Tag:     "h2",
				TextRun: "Title",
				Box:     Rect{Width: 288, Height: 24},
				Computed: Style{
					Color:      "#111111",
					FontSize:   "20px",
					FontWeight: "600",
				},
			},
			{
				Tag:  "button",
				Aria: "Close dialog",
				Computed: Style{
					BackgroundImage: "linear-gradient(to right, #000, #fff)",
				},
			},
		},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("FromHTML() mismatch (-want +got):\n%s", diff)
	}
}

func TestFromHTMLTextRunRules(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "single text run is recorded",
			body: `<span>Hello</span>`,
			want: "Hello",
		},
		{
			name: "whitespace-only text is not a run",
			body: `<span>   </span>`,
			want: "",
		},
		{
			name: "mixed text and element children record no run",
			body: `<span>Hello <b>world</b></span>`,
			want: "",
		},
		{
			name: "element children only record no run",
			body: `<span><b>world</b></span>`,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromHTML(strings.NewReader("<html><body>" + tt.body + "</body></html>"))
			if err != nil {
				t.Fatalf("FromHTML() error = %v", err)
			}
			if got.TextRun != tt.want {
				t.Errorf("TextRun = %q, want %q", got.TextRun, tt.want)
			}
		})
	}
}

func TestFromHTMLNoRootElement(t *testing.T) {
	if _, err := FromHTML(strings.NewReader("<html><body>   </body></html>")); err == nil {
		t.Error("FromHTML() expected an error for an empty body")
	}
}
