package server

import (
	"html/template"

	"github.com/go-playground/validator/v10"

	"github.com/nguyentantai21042004/video-insight/internal/logger"
	"github.com/nguyentantai21042004/video-insight/internal/processor"
	"github.com/nguyentantai21042004/video-insight/internal/source"
)

type implServer struct {
	addr      string
	processor processor.Processor
	validate  *validator.Validate
	pages     *template.Template
	logger    logger.Logger
}

// New creates a Server listening on addr that runs analyses through p.
func New(addr string, p processor.Processor, log logger.Logger) Server {
	return &implServer{
		addr:      addr,
		processor: p,
		validate:  newValidator(),
		pages:     template.Must(template.New("pages").Funcs(templateFuncs).Parse(pageTemplates)),
		logger:    log,
	}
}

// newValidator registers video_url so the form accepts exactly the URL
// shapes the resolver accepts, with or without a scheme.
func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("video_url", func(fl validator.FieldLevel) bool {
		return source.ValidateURL(fl.Field().String()) == nil
	})
	return v
}
