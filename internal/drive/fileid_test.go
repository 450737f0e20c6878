package drive

import "testing"

func TestExtractFileID(t *testing.T) {
	tests := []struct {
		name string
		link string
		want string
	}{
		{
			name: "web view link",
			link: "https://drive.google.com/file/d/1AbC_dEf/view",
			want: "1AbC_dEf",
		},
		{
			name: "link with query",
			link: "https://drive.google.com/file/d/xyz123/view?usp=sharing",
			want: "xyz123",
		},
		{
			name: "raw id passes through",
			link: "1AbC_dEf",
			want: "1AbC_dEf",
		},
		{
			name: "empty input",
			link: "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractFileID(tt.link); got != tt.want {
				t.Errorf("ExtractFileID(%q) = %q, want %q", tt.link, got, tt.want)
			}
		})
	}
}
