package source

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/nguyentantai21042004/video-insight/internal/models"
)

// Known URL shapes: watch?v=, short link, embed and legacy /v/.
var urlShapes = []*regexp.Regexp{
	regexp.MustCompile(`youtube\.com/watch\?v=([A-Za-z0-9_-]*)`),
	regexp.MustCompile(`youtu\.be/([A-Za-z0-9_-]*)`),
	regexp.MustCompile(`youtube\.com/embed/([A-Za-z0-9_-]*)`),
	regexp.MustCompile(`youtube\.com/v/([A-Za-z0-9_-]*)`),
}

// ValidateURL accepts a string iff it matches one of the known video URL
// shapes. Rejections wrap models.ErrInvalidInput.
func ValidateURL(url string) error {
	if _, ok := VideoID(url); !ok {
		return fmt.Errorf("%w: unsupported video URL %q", models.ErrInvalidInput, url)
	}
	return nil
}

// VideoID extracts the id from a supported URL. The id may be empty when the
// shape matches but nothing follows it.
func VideoID(url string) (string, bool) {
	url = strings.TrimSpace(url)
	for _, re := range urlShapes {
		if m := re.FindStringSubmatch(url); m != nil {
			return m[1], true
		}
	}
	return "", false
}
