package constants

import "testing"

func TestMapMIMEToKind(t *testing.T) {
	tests := []struct {
		mime string
		want MediaKind
	}{
		{mime: "application/pdf", want: PDF},
		{mime: "image/jpeg", want: IMAGE},
		{mime: "image/png", want: IMAGE},
		{mime: " Image/PNG ", want: IMAGE},
		{mime: "image/heic", want: ""},
		{mime: "text/plain", want: ""},
		{mime: "", want: ""},
	}
	for _, tt := range tests {
		if got := MapMIMEToKind(tt.mime); got != tt.want {
			t.Errorf("MapMIMEToKind(%q) = %q, want %q", tt.mime, got, tt.want)
		}
	}
}

func TestMapExtToKind(t *testing.T) {
	tests := []struct {
		ext  string
		want MediaKind
	}{
		{ext: ".pdf", want: PDF},
		{ext: "PDF", want: PDF},
		{ext: ".jpg", want: IMAGE},
		{ext: ".JPEG", want: IMAGE},
		{ext: "png", want: IMAGE},
		{ext: ".tiff", want: ""},
		{ext: "", want: ""},
	}
	for _, tt := range tests {
		if got := MapExtToKind(tt.ext); got != tt.want {
			t.Errorf("MapExtToKind(%q) = %q, want %q", tt.ext, got, tt.want)
		}
	}
}

func TestNormalizeExt(t *testing.T) {
	if got := NormalizeExt(".JPeG"); got != "jpeg" {
		t.Errorf("NormalizeExt(.JPeG) = %q, want jpeg", got)
	}
}
