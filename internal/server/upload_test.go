package server

import (
	"os"
	"strings"
	"testing"

	"github.com/bollettelab/bollette-tracker/constants"
	v1 "github.com/bollettelab/bollette-tracker/gen/proto/bills/v1"
)

func TestExtForMIME(t *testing.T) {
	tests := []struct {
		mime string
		want string
	}{
		{mime: "application/pdf", want: "pdf"},
		{mime: "image/png", want: "png"},
		{mime: "image/jpeg", want: "jpg"},
		{mime: "image/heic", want: ""},
	}
	for _, tt := range tests {
		if got := extForMIME(tt.mime); got != tt.want {
			t.Errorf("extForMIME(%q) = %q, want %q", tt.mime, got, tt.want)
		}
	}
}

func TestStageDocuments(t *testing.T) {
	cacheDir := t.TempDir()
	uploads := []*v1.UploadDocument{
		{Filename: "bolletta.pdf", MimeType: "application/pdf", Content: []byte("%PDF-1.4 fake")},
		{Filename: "foto.jpg", MimeType: "image/jpeg", Content: []byte{0xFF, 0xD8, 0xFF}},
	}
	hints := []constants.BillType{constants.BillTypeGas, constants.BillTypeUnknown}

	docs, cleanup, err := stageDocuments(cacheDir, uploads, hints)
	if err != nil {
		t.Fatalf("stageDocuments: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("got %d documents, want 2", len(docs))
	}

	if docs[0].MediaKind != constants.PDF || !strings.HasSuffix(docs[0].SourcePath, ".pdf") {
		t.Errorf("doc 1 = (%s, %s), want staged pdf", docs[0].MediaKind, docs[0].SourcePath)
	}
	if docs[0].TypeHint != constants.BillTypeGas {
		t.Errorf("doc 1 hint = %s, want GAS", docs[0].TypeHint)
	}
	if docs[1].MediaKind != constants.IMAGE || !strings.HasSuffix(docs[1].SourcePath, ".jpg") {
		t.Errorf("doc 2 = (%s, %s), want staged jpg", docs[1].MediaKind, docs[1].SourcePath)
	}

	for i, d := range docs {
		body, err := os.ReadFile(d.SourcePath)
		if err != nil {
			t.Fatalf("read staged doc %d: %v", i+1, err)
		}
		if string(body) != string(uploads[i].Content) {
			t.Errorf("staged bytes of doc %d differ from the upload", i+1)
		}
	}

	cleanup()
	if _, err := os.Stat(docs[0].SourcePath); !os.IsNotExist(err) {
		t.Error("cleanup left staged files behind")
	}
}
