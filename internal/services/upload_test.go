package services_test

import (
	"bytes"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/ats-screener/internal/services"
)

func fileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("resume", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&body, w.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	files := form.File["resume"]
	require.Len(t, files, 1)
	return files[0]
}

func TestUploadService_ReadResume(t *testing.T) {
	uploads := services.NewUploadService(16)

	cases := []struct {
		name     string
		filename string
		content  []byte
		wantErr  error
	}{
		{name: "pdf", filename: "resume.pdf", content: []byte("%PDF-1.4")},
		{name: "docx upper case extension", filename: "RESUME.DOCX", content: []byte("PK")},
		{name: "exactly at the limit", filename: "resume.pdf", content: bytes.Repeat([]byte("x"), 16)},
		{name: "text file", filename: "resume.txt", content: []byte("hello"), wantErr: services.ErrUnsupportedFileType},
		{name: "no extension", filename: "resume", content: []byte("hello"), wantErr: services.ErrUnsupportedFileType},
		{name: "too large", filename: "resume.pdf", content: bytes.Repeat([]byte("x"), 17), wantErr: services.ErrFileTooLarge},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			data, err := uploads.ReadResume(fileHeader(t, tc.filename, tc.content))
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, data)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.content, data)
		})
	}

	assert.EqualValues(t, 16, uploads.MaxFileSize())
}
