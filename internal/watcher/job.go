package watcher

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/video-insight/internal/models"
	"github.com/nguyentantai21042004/video-insight/internal/source"
)

// ParseJob reads an inbox file. The first plain line is the URL; optional
// "source=", "target=" and "style=" lines set the directive. Blank lines and
// lines starting with # are skipped.
func ParseJob(content string) (Job, error) {
	var (
		job      Job
		src, dst string
		style    string
	)

	scanner := bufio.NewScanner(strings.NewReader(content))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, found := strings.Cut(line, "=")
		key = strings.ToLower(strings.TrimSpace(key))
		if found && (key == "source" || key == "target" || key == "style") {
			value = strings.TrimSpace(value)
			switch key {
			case "source":
				src = value
			case "target":
				dst = value
			case "style":
				style = value
			}
			continue
		}

		if job.URL == "" {
			job.URL = line
		}
	}
	if err := scanner.Err(); err != nil {
		return Job{}, fmt.Errorf("read job: %w", err)
	}

	if job.URL == "" {
		return Job{}, fmt.Errorf("%w: no URL in job file", models.ErrInvalidInput)
	}
	if err := source.ValidateURL(job.URL); err != nil {
		return Job{}, err
	}

	directive, err := models.NewLanguageDirective(src, dst)
	if err != nil {
		return Job{}, err
	}
	job.Directive = directive
	job.Style = models.ParseSummaryStyle(style)
	return job, nil
}
