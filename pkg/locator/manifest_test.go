package locator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseManifest(t *testing.T) {
	body := "" +
		"a1b2c3 cuda_11.2.0_460.27.04_linux.run\r\n" +
		"\n" +
		"malformed-line-without-space\n" +
		" \n" +
		"d4e5f6 cuda_11.2.0_460.89_win10.exe"

	entries := parseManifest([]byte(body))
	assert.Equal(t, []manifestEntry{
		{Checksum: "a1b2c3", Filename: "cuda_11.2.0_460.27.04_linux.run"},
		{Checksum: "d4e5f6", Filename: "cuda_11.2.0_460.89_win10.exe"},
	}, entries)
}

func TestParseManifestPreservesOrder(t *testing.T) {
	body := "c3 z.run\nb2 y.run\na1 x.run\n"
	entries := parseManifest([]byte(body))
	assert.Equal(t, "z.run", entries[0].Filename)
	assert.Equal(t, "x.run", entries[2].Filename)
}

func TestParseManifestEmpty(t *testing.T) {
	assert.Empty(t, parseManifest(nil))
	assert.Empty(t, parseManifest([]byte("\n\n")))
}
