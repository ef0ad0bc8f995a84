package textextract

import (
	"archive/zip"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractTXT(t *testing.T) {
	data := []byte("hello world\nsecond line")

	result, err := Extract(bytes.NewReader(data), int64(len(data)), ".txt")
	require.NoError(t, err)
	require.Equal(t, 1, result.Pages)
	require.True(t, strings.HasPrefix(result.Content, PageMarker(1)))
	require.Contains(t, result.Content, "hello world")
	require.False(t, result.ExtractedAt.IsZero())
}

func TestExtractDOCX(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	f, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = f.Write([]byte(`<w:document><w:body><w:p><w:t>alpha</w:t><w:t>beta</w:t></w:p></w:body></w:document>`))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	data := buf.Bytes()
	result, err := Extract(bytes.NewReader(data), int64(len(data)), ".docx")
	require.NoError(t, err)
	require.Equal(t, 1, result.Pages)
	require.Contains(t, result.Content, "alpha beta")
	require.True(t, strings.HasPrefix(result.Content, PageMarker(1)))
}

func TestExtractDOCXMissingDocumentXML(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	f, err := zw.Create("word/other.xml")
	require.NoError(t, err)
	_, err = f.Write([]byte("<x/>"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	data := buf.Bytes()
	_, err = Extract(bytes.NewReader(data), int64(len(data)), ".docx")
	require.Error(t, err)
}

func TestExtractCorruptPDF(t *testing.T) {
	data := []byte("this is not a pdf")
	_, err := Extract(bytes.NewReader(data), int64(len(data)), ".pdf")
	require.Error(t, err)
}

func TestExtractUnsupportedType(t *testing.T) {
	data := []byte("content")
	_, err := Extract(bytes.NewReader(data), int64(len(data)), ".exe")
	require.Error(t, err)
	require.Contains(t, err.Error(), "unsupported file type")
}

func TestExtractTypeAliases(t *testing.T) {
	data := []byte("plain text")
	for _, ft := range []string{".txt", "txt", "text/plain"} {
		result, err := Extract(bytes.NewReader(data), int64(len(data)), ft)
		require.NoError(t, err, "file type %q", ft)
		require.Contains(t, result.Content, "plain text")
	}
}

func TestNormalizeSpaces(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"a  b\t c", "a b c"},
		{"\n\nx\n", "x"},
		{"", ""},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, normalizeSpaces(tt.in))
	}
}
