package server

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/bollettelab/bollette-tracker/constants"
	v1 "github.com/bollettelab/bollette-tracker/gen/proto/bills/v1"
	"github.com/bollettelab/bollette-tracker/internal/entity"
)

// extForMIME returns the staging file extension for an accepted content type.
func extForMIME(mime string) string {
	switch constants.MapMIMEToKind(mime) {
	case constants.PDF:
		return "pdf"
	case constants.IMAGE:
		if mime == "image/png" {
			return "png"
		}
		return "jpg"
	default:
		return ""
	}
}

// stageDocuments writes the uploaded bytes into a per-submission temp dir so
// the exec-based OCR tools can read them, and builds the pipeline documents.
// cleanup removes the whole staging dir and is non-nil even on error.
func stageDocuments(artifactCacheDir string, uploads []*v1.UploadDocument, typeHints []constants.BillType) ([]entity.Document, func(), error) {
	if err := os.MkdirAll(artifactCacheDir, 0o755); err != nil {
		return nil, func() {}, fmt.Errorf("artifact cache dir: %w", err)
	}
	stageDir, err := os.MkdirTemp(artifactCacheDir, "sub-*")
	if err != nil {
		return nil, func() {}, fmt.Errorf("staging dir: %w", err)
	}
	cleanup := func() { _ = os.RemoveAll(stageDir) }

	docs := make([]entity.Document, len(uploads))
	for i, up := range uploads {
		id := uuid.New()
		path := filepath.Join(stageDir, fmt.Sprintf("%s.%s", id, extForMIME(up.GetMimeType())))
		if err := os.WriteFile(path, up.GetContent(), 0o600); err != nil {
			return nil, cleanup, fmt.Errorf("stage %q: %w", up.GetFilename(), err)
		}
		docs[i] = entity.Document{
			ID:         id,
			Filename:   up.GetFilename(),
			MediaKind:  constants.MapMIMEToKind(up.GetMimeType()),
			SourcePath: path,
			TypeHint:   typeHints[i],
		}
	}
	return docs, cleanup, nil
}
