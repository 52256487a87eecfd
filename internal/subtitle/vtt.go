// Package subtitle converts SRT sidecar subtitles into WebVTT, the only
// format browsers accept for HTML5 text tracks.
package subtitle

import (
	"os"
	"regexp"
)

// SRT timestamps use a comma before the millisecond part, VTT a period.
var srtTimestamp = regexp.MustCompile(`(\d{2}:\d{2}:\d{2}),(\d{3})`)

// ToVTT converts SRT content to WebVTT: a WEBVTT header followed by the
// input with every timestamp's comma separator rewritten to a period.
// Everything else passes through byte for byte.
func ToVTT(srt []byte) []byte {
	body := srtTimestamp.ReplaceAll(srt, []byte("$1.$2"))
	out := make([]byte, 0, len("WEBVTT\n\n")+len(body))
	out = append(out, "WEBVTT\n\n"...)
	return append(out, body...)
}

// FileToVTT reads an SRT file and returns its WebVTT form.
func FileToVTT(path string) ([]byte, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ToVTT(b), nil
}
