package testutil

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

// NewMultipartRequest builds a request carrying one file under field.
func NewMultipartRequest(t *testing.T, method, target, field, fileName string, content []byte) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile(field, fileName)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

// NewFileHeader returns a parsed multipart file header holding content.
func NewFileHeader(t *testing.T, fileName string, content []byte) *multipart.FileHeader {
	t.Helper()

	req := NewMultipartRequest(t, http.MethodPost, "/", "file", fileName, content)
	require.NoError(t, req.ParseMultipartForm(32<<20))

	headers := req.MultipartForm.File["file"]
	require.Len(t, headers, 1)
	return headers[0]
}
