package source

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

const progressPrefix = "[progress]"

// progressTemplate makes yt-dlp print "[progress]<downloaded>/<total>/<estimate>".
const progressTemplate = "download:" + progressPrefix +
	"%(progress.downloaded_bytes)s/%(progress.total_bytes)s/%(progress.total_bytes_estimate)s"

type ytInfo struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Uploader    string     `json:"uploader"`
	Channel     string     `json:"channel"`
	Duration    float64    `json:"duration"`
	ViewCount   int64      `json:"view_count"`
	Description string     `json:"description"`
	Formats     []ytFormat `json:"formats"`
}

type ytFormat struct {
	FormatID       string  `json:"format_id"`
	Ext            string  `json:"ext"`
	ACodec         string  `json:"acodec"`
	VCodec         string  `json:"vcodec"`
	ABR            float64 `json:"abr"`
	Filesize       int64   `json:"filesize"`
	FilesizeApprox int64   `json:"filesize_approx"`
}

func parseInfo(data string) (ytInfo, error) {
	var info ytInfo
	if err := json.Unmarshal([]byte(data), &info); err != nil {
		return ytInfo{}, fmt.Errorf("decode yt-dlp output: %w", err)
	}
	if info.ID == "" && info.Title == "" {
		return ytInfo{}, fmt.Errorf("yt-dlp returned no video")
	}
	return info, nil
}

func (f ytFormat) audioOnly() bool {
	hasAudio := f.ACodec != "" && f.ACodec != "none"
	noVideo := f.VCodec == "none"
	return hasAudio && noVideo
}

func (f ytFormat) size() int64 {
	if f.Filesize > 0 {
		return f.Filesize
	}
	return f.FilesizeApprox
}

// bestAudio picks the audio-only format with the highest bitrate, breaking
// ties on size.
func bestAudio(formats []ytFormat) (ytFormat, bool) {
	var best ytFormat
	found := false
	for _, f := range formats {
		if !f.audioOnly() {
			continue
		}
		if !found || f.ABR > best.ABR || (f.ABR == best.ABR && f.size() > best.size()) {
			best = f
			found = true
		}
	}
	return best, found
}

// parseProgress reads one progress line. ok is false for any other output.
func parseProgress(line string) (float64, bool) {
	rest, found := strings.CutPrefix(strings.TrimSpace(line), progressPrefix)
	if !found {
		return 0, false
	}

	fields := strings.Split(rest, "/")
	if len(fields) != 3 {
		return 0, false
	}

	downloaded, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, false
	}
	total, err := strconv.ParseFloat(fields[1], 64)
	if err != nil || total <= 0 {
		total, err = strconv.ParseFloat(fields[2], 64)
		if err != nil || total <= 0 {
			return 0, false
		}
	}

	fraction := downloaded / total
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	return fraction, true
}

// monotonic wraps fn so reported fractions never go down.
func monotonic(fn ProgressFunc) ProgressFunc {
	if fn == nil {
		return func(float64) {}
	}
	last := -1.0
	return func(f float64) {
		if f < last {
			return
		}
		last = f
		fn(f)
	}
}
