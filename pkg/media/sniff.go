package media

import (
	"io"
	"os"

	"github.com/h2non/filetype"
)

// sniffLen is the number of leading bytes filetype needs to match any of
// its signatures.
const sniffLen = 261

// Sniff classifies a file by magic bytes, for inputs whose extension is
// missing or unknown. The detected type is routed through the same extension
// tables as KindForPath, so sniffing never admits a format the host
// application cannot load.
func Sniff(path string) (Kind, bool) {
	f, err := os.Open(path)
	if err != nil {
		return "", false
	}
	defer f.Close()

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(f, head)
	if err != nil && err != io.ErrUnexpectedEOF {
		return "", false
	}

	t, err := filetype.Match(head[:n])
	if err != nil || t == filetype.Unknown {
		return "", false
	}
	return KindForPath("sniffed." + t.Extension)
}
