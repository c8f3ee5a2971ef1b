package chipmd

import "testing"

func TestSplitFrontMatter(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		wantMeta string
		wantBody string
		wantOK   bool
	}{
		{
			name:     "yaml",
			src:      "---\nchips:\n  - name: ada\n---\nHello",
			wantMeta: "chips:\n  - name: ada\n",
			wantBody: "Hello",
			wantOK:   true,
		},
		{
			name:     "json",
			src:      ";;;\n{\"chips\": []}\n;;;\nbody\n",
			wantMeta: "{\"chips\": []}\n",
			wantBody: "body\n",
			wantOK:   true,
		},
		{
			name:     "crlf and bom",
			src:      "\xEF\xBB\xBF---\r\nk: v\r\n---\r\nb",
			wantMeta: "k: v\r\n",
			wantBody: "b",
			wantOK:   true,
		},
		{
			name:     "thematic break is not front matter",
			src:      "---\n\ntext\n---\n",
			wantBody: "---\n\ntext\n---\n",
		},
		{
			name:     "unclosed",
			src:      "---\nk: v\nbody",
			wantBody: "---\nk: v\nbody",
		},
		{
			name:     "delimiter only",
			src:      "---",
			wantBody: "---",
		},
		{
			name:     "no front matter",
			src:      "# Title",
			wantBody: "# Title",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta, body, ok := SplitFrontMatter([]byte(tt.src))
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if string(meta) != tt.wantMeta {
				t.Fatalf("meta = %q, want %q", meta, tt.wantMeta)
			}
			if string(body) != tt.wantBody {
				t.Fatalf("body = %q, want %q", body, tt.wantBody)
			}
		})
	}
}
