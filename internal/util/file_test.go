package util

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateMimeTypeAcceptsPdf(t *testing.T) {
	// %PDF- magic is all the sniffer needs.
	reader := strings.NewReader("%PDF-1.7 rest of the file")

	mime, err := ValidateMimeType(reader, []string{MimePDF})
	require.NoError(t, err)
	assert.Equal(t, MimePDF, mime)
}

func TestValidateMimeTypeRejectsOther(t *testing.T) {
	reader := strings.NewReader("<html><body>not a pdf</body></html>")

	_, err := ValidateMimeType(reader, []string{MimePDF})
	assert.Error(t, err)
}
