package summarizer

import (
	"errors"
	"strings"
	"testing"

	"github.com/user/imgstream/pkg/mocks"
)

func TestWriter_Write(t *testing.T) {
	fs := mocks.NewFileSystem()
	w := NewWriter(FormatFunc(func(s *Summary) string {
		return "files: " + strings.Repeat("x", len(s.Files))
	}), fs)

	if err := w.Write("out/report.md", sampleSummary()); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	data, ok := fs.GetFile("out/report.md")
	if !ok {
		t.Fatal("expected report to be written")
	}
	if string(data) != "files: xxx" {
		t.Errorf("unexpected content %q", data)
	}
}

func TestWriter_WriteError(t *testing.T) {
	fs := mocks.NewFileSystem()
	fs.WriteFileFunc = func(path string, data []byte) error {
		return errors.New("read-only")
	}

	if err := NewWriter(NewMarkdownFormatter(), fs).Write("report.md", sampleSummary()); err == nil {
		t.Error("expected write error")
	}
}
