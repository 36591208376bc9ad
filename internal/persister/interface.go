package persister

import (
	"context"

	"github.com/nguyentantai21042004/video-insight/internal/models"
)

// Paths lists the artifacts written for a run. A field is empty when that
// artifact could not be written.
type Paths = models.OutputFiles

// Persister writes a finished run to the output directory. It never fails:
// write errors are logged and the artifact's path is left empty.
type Persister interface {
	Persist(ctx context.Context, run *models.PipelineRun) Paths
}
