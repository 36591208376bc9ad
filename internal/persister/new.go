package persister

import (
	"github.com/nguyentantai21042004/video-insight/internal/logger"
)

type implPersister struct {
	outputDir string
	docx      bool
	logger    logger.Logger
}

// New creates a Persister writing into outputDir. With docx set the full
// report is also exported as a Word document.
func New(outputDir string, docx bool, log logger.Logger) Persister {
	return &implPersister{
		outputDir: outputDir,
		docx:      docx,
		logger:    log,
	}
}
