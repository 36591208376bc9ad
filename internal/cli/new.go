package cli

import (
	"bufio"
	"io"

	"github.com/nguyentantai21042004/video-insight/internal/config"
	"github.com/nguyentantai21042004/video-insight/internal/logger"
	"github.com/nguyentantai21042004/video-insight/internal/processor"
)

type implMenu struct {
	processor processor.Processor
	cfg       *config.Config
	in        *bufio.Scanner
	out       io.Writer
	logger    logger.Logger
}

// New creates a Menu reading answers from in and printing to out.
func New(p processor.Processor, cfg *config.Config, in io.Reader, out io.Writer, log logger.Logger) Menu {
	return &implMenu{
		processor: p,
		cfg:       cfg,
		in:        bufio.NewScanner(in),
		out:       out,
		logger:    log,
	}
}
