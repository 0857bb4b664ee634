package useCases

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/textlens/line_ocr_bot/internal/domain"
)

type fakeReader struct {
	text  string
	err   error
	calls int
	data  []byte
	mime  string
}

func (r *fakeReader) ReadText(ctx context.Context, image []byte, mimeType string) (string, error) {
	r.calls++
	r.data = image
	r.mime = mimeType
	return r.text, r.err
}

type fakeExtractor struct {
	report string
	err    error
	calls  int
}

func (e *fakeExtractor) ExtractText(ctx context.Context, pdf []byte) (string, error) {
	e.calls++
	return e.report, e.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestUploadDispatchesImagesWithBytesUnchanged(t *testing.T) {
	cases := []struct {
		filename string
		wantMIME string
	}{
		{"scan.jpg", "image/jpeg"},
		{"SCAN.JPEG", "image/jpeg"},
		{"receipt.png", "image/png"},
	}
	for _, tc := range cases {
		t.Run(tc.filename, func(t *testing.T) {
			reader := &fakeReader{text: "found text"}
			s := NewUploadService(reader, &fakeExtractor{}, discardLogger())

			payload := []byte{0x01, 0x02, 0x03}
			text, err := s.Process(context.Background(), tc.filename, payload)
			require.NoError(t, err)
			assert.Equal(t, "found text", text)
			assert.Equal(t, payload, reader.data)
			assert.Equal(t, tc.wantMIME, reader.mime)
		})
	}
}

func TestUploadDispatchesPDF(t *testing.T) {
	extractor := &fakeExtractor{report: "\n--- Page 1 ---\nhello\n"}
	reader := &fakeReader{}
	s := NewUploadService(reader, extractor, discardLogger())

	text, err := s.Process(context.Background(), "doc.pdf", []byte("%PDF-1.4"))
	require.NoError(t, err)
	assert.Equal(t, extractor.report, text)
	assert.Equal(t, 1, extractor.calls)
	assert.Zero(t, reader.calls)
}

func TestUploadUnsupportedExtension(t *testing.T) {
	reader := &fakeReader{}
	extractor := &fakeExtractor{}
	s := NewUploadService(reader, extractor, discardLogger())

	_, err := s.Process(context.Background(), "notes.txt", []byte("plain"))
	var unsupported *domain.UnsupportedFormatError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, "txt", unsupported.Ext)
	assert.Zero(t, reader.calls, "no extractor may run for unsupported formats")
	assert.Zero(t, extractor.calls)
}

func TestUploadNoExtension(t *testing.T) {
	s := NewUploadService(&fakeReader{}, &fakeExtractor{}, discardLogger())

	_, err := s.Process(context.Background(), "README", []byte("text"))
	var unsupported *domain.UnsupportedFormatError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, "", unsupported.Ext)
}

func TestUploadMissingFile(t *testing.T) {
	s := NewUploadService(&fakeReader{}, &fakeExtractor{}, discardLogger())

	_, err := s.Process(context.Background(), "", nil)
	assert.ErrorIs(t, err, domain.ErrNoFile)

	_, err = s.Process(context.Background(), "empty.png", nil)
	assert.ErrorIs(t, err, domain.ErrNoFile)
}

func TestUploadImageErrorRenderedInline(t *testing.T) {
	reader := &fakeReader{err: errors.New("bad image data")}
	s := NewUploadService(reader, &fakeExtractor{}, discardLogger())

	text, err := s.Process(context.Background(), "broken.jpg", []byte{0xff})
	require.NoError(t, err)
	assert.Equal(t, "Error processing image: bad image data", text)
}

func TestUploadPDFErrorRenderedInline(t *testing.T) {
	extractor := &fakeExtractor{err: errors.New("open pdf: corrupt")}
	s := NewUploadService(&fakeReader{}, extractor, discardLogger())

	text, err := s.Process(context.Background(), "broken.pdf", []byte("junk"))
	require.NoError(t, err)
	assert.Equal(t, "Error processing PDF: open pdf: corrupt", text)
}
