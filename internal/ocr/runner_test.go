package ocr

import "testing"

func TestTargetArg(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "tesseract invocation",
			args: []string{"/tmp/stage/page-1.png", "stdout", "-l", "ita+eng"},
			want: "page-1.png",
		},
		{
			name: "pdftoppm invocation",
			args: []string{"-r", "300", "-png", "/tmp/stage/bolletta.pdf", "/tmp/bt-pp-1/page"},
			want: "bolletta.pdf",
		},
		{
			name: "dotted directory without dotted file",
			args: []string{"-r", "300", "/srv/v1.2/page"},
			want: "",
		},
		{
			name: "no file argument",
			args: []string{"-l", "ita+eng"},
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := targetArg(tt.args); got != tt.want {
				t.Errorf("targetArg(%v) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Errorf("truncate = %q, want unchanged", got)
	}
	if got := truncate("0123456789", 4); got != "0123...(truncated)" {
		t.Errorf("truncate = %q", got)
	}
}

func TestNewExecRunnerNilLogger(t *testing.T) {
	r := newExecRunner(nil)
	if r.logger == nil {
		t.Fatal("nil logger not defaulted")
	}
}
