package cv2pdf

import "testing"

func TestToListMarkup(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "empty input",
			text: "",
			want: "<ul></ul>",
		},
		{
			name: "blank lines only",
			text: "\n  \n\t\n",
			want: "<ul></ul>",
		},
		{
			name: "two items",
			text: "- a\n- b",
			want: "<ul><li>a</li><li>b</li></ul>",
		},
		{
			name: "asterisk marker",
			text: "* a\n* b",
			want: "<ul><li>a</li><li>b</li></ul>",
		},
		{
			name: "continuation merges into previous item",
			text: "- first line\n  wraps here\n- b",
			want: "<ul><li>first line wraps here</li><li>b</li></ul>",
		},
		{
			name: "sub item",
			text: "- a\n  - sub",
			want: `<ul><li>a</li><li class="sub-item">sub</li></ul>`,
		},
		{
			name: "continuation after sub item",
			text: "- a\n  - sub\n    more",
			want: `<ul><li>a</li><li class="sub-item">sub more</li></ul>`,
		},
		{
			name: "leading continuation opens an item",
			text: "plain sentence\n- a",
			want: "<ul><li>plain sentence</li><li>a</li></ul>",
		},
		{
			name: "blank lines between items",
			text: "- a\n\n- b\n",
			want: "<ul><li>a</li><li>b</li></ul>",
		},
		{
			name: "windows line endings",
			text: "- a\r\n- b\r\n",
			want: "<ul><li>a</li><li>b</li></ul>",
		},
		{
			name: "markup is escaped",
			text: "- <script>alert(1)</script> & co",
			want: "<ul><li>&lt;script&gt;alert(1)&lt;/script&gt; &amp; co</li></ul>",
		},
		{
			name: "three spaces is a continuation",
			text: "- a\n   - not sub",
			want: "<ul><li>a - not sub</li></ul>",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ToListMarkup(tt.text); got != tt.want {
				t.Errorf("ToListMarkup(%q)\n got: %s\nwant: %s", tt.text, got, tt.want)
			}
		})
	}
}
