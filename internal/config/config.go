package config

import "fmt"

type Config struct {
	Gemini  GeminiConfig  `yaml:"gemini"`
	Paths   PathsConfig   `yaml:"paths"`
	Audio   AudioConfig   `yaml:"audio"`
	Tools   ToolsConfig   `yaml:"tools"`
	Logging LoggingConfig `yaml:"logging"`
	Output  OutputConfig  `yaml:"output"`
	Server  ServerConfig  `yaml:"server"`
}

type GeminiConfig struct {
	Model           string `yaml:"model"`
	TranscribeModel string `yaml:"transcribe_model"`
}

type PathsConfig struct {
	Temp   string `yaml:"temp"`
	Output string `yaml:"output"`
	Inbox  string `yaml:"inbox"`
}

type AudioConfig struct {
	MaxUploadMB     int      `yaml:"max_upload_mb"`
	HeadroomMB      int      `yaml:"headroom_mb"`
	SampleRate      int      `yaml:"sample_rate"`
	Channels        int      `yaml:"channels"`
	Bitrate         string   `yaml:"bitrate"`
	AcceptedFormats []string `yaml:"accepted_formats"`
}

type ToolsConfig struct {
	FFmpeg  string `yaml:"ffmpeg"`
	FFprobe string `yaml:"ffprobe"`
	YtDlp   string `yaml:"ytdlp"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type OutputConfig struct {
	Docx bool `yaml:"docx"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	_ = cfg.Validate()
	return cfg
}

// MaxUploadBytes is the backend size ceiling in bytes.
func (c *Config) MaxUploadBytes() int64 {
	return int64(c.Audio.MaxUploadMB) << 20
}

// SafeSizeBytes is the ceiling minus headroom; smaller assets skip transcoding.
func (c *Config) SafeSizeBytes() int64 {
	return int64(c.Audio.MaxUploadMB-c.Audio.HeadroomMB) << 20
}

func (c *Config) Validate() error {
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}
	if c.Gemini.TranscribeModel == "" {
		c.Gemini.TranscribeModel = c.Gemini.Model
	}

	if c.Paths.Temp == "" {
		c.Paths.Temp = "temp_files"
	}
	if c.Paths.Output == "" {
		c.Paths.Output = "output"
	}
	if c.Paths.Inbox == "" {
		c.Paths.Inbox = "inbox"
	}
	if c.Paths.Temp == c.Paths.Output {
		return fmt.Errorf("paths.temp and paths.output must differ")
	}

	if c.Audio.MaxUploadMB == 0 {
		c.Audio.MaxUploadMB = 20
	}
	if c.Audio.HeadroomMB == 0 {
		c.Audio.HeadroomMB = 2
	}
	if c.Audio.MaxUploadMB < 0 || c.Audio.HeadroomMB < 0 {
		return fmt.Errorf("audio sizes must be positive")
	}
	if c.Audio.HeadroomMB >= c.Audio.MaxUploadMB {
		return fmt.Errorf("audio.headroom_mb must be smaller than audio.max_upload_mb")
	}
	if c.Audio.SampleRate == 0 {
		c.Audio.SampleRate = 22050
	}
	if c.Audio.Channels == 0 {
		c.Audio.Channels = 1
	}
	if c.Audio.Bitrate == "" {
		c.Audio.Bitrate = "128k"
	}
	if len(c.Audio.AcceptedFormats) == 0 {
		c.Audio.AcceptedFormats = []string{"mp3", "wav", "flac"}
	}

	if c.Tools.FFmpeg == "" {
		c.Tools.FFmpeg = "ffmpeg"
	}
	if c.Tools.FFprobe == "" {
		c.Tools.FFprobe = "ffprobe"
	}
	if c.Tools.YtDlp == "" {
		c.Tools.YtDlp = "yt-dlp"
	}

	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}

	if c.Server.Addr == "" {
		c.Server.Addr = "127.0.0.1:8501"
	}

	return nil
}
