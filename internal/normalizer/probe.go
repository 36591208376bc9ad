package normalizer

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/nguyentantai21042004/video-insight/internal/models"
)

type probeOutput struct {
	Streams []struct {
		CodecType  string `json:"codec_type"`
		CodecName  string `json:"codec_name"`
		SampleRate string `json:"sample_rate"`
		Channels   int    `json:"channels"`
		Duration   string `json:"duration"`
		BitRate    string `json:"bit_rate"`
	} `json:"streams"`
}

// Probe reads stream information with ffprobe. It is diagnostic only.
func (n *implNormalizer) Probe(ctx context.Context, asset models.AudioAsset) (*AudioInfo, error) {
	out, err := n.executor.Execute(ctx, n.ffprobe,
		"-v", "error",
		"-print_format", "json",
		"-show_streams",
		asset.Path,
	)
	if err != nil {
		return nil, fmt.Errorf("ffprobe: %w", err)
	}
	return parseProbe(out)
}

func parseProbe(data string) (*AudioInfo, error) {
	var probe probeOutput
	if err := json.Unmarshal([]byte(data), &probe); err != nil {
		return nil, fmt.Errorf("decode ffprobe output: %w", err)
	}

	for _, s := range probe.Streams {
		if s.CodecType != "audio" {
			continue
		}
		info := &AudioInfo{
			Channels: s.Channels,
			Codec:    s.CodecName,
		}
		if info.Codec == "" {
			info.Codec = "unknown"
		}
		// ffprobe reports numbers as strings; missing values stay zero
		info.Duration, _ = strconv.ParseFloat(s.Duration, 64)
		info.SampleRate, _ = strconv.Atoi(s.SampleRate)
		info.Bitrate, _ = strconv.ParseInt(s.BitRate, 10, 64)
		return info, nil
	}
	return nil, models.ErrNoAudioStream
}
