package processor

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/nguyentantai21042004/video-insight/internal/logger"
	"github.com/nguyentantai21042004/video-insight/internal/models"
	"github.com/nguyentantai21042004/video-insight/internal/source"
)

// Run sequences metadata, acquisition, normalization, transcription,
// synthesis and persistence.
func (p *implProcessor) Run(ctx context.Context, req Request) (*models.PipelineRun, error) {
	if err := source.ValidateURL(req.URL); err != nil {
		return nil, stageErr(models.StageValidate, err)
	}

	if !p.lock.tryAcquire() {
		return nil, models.ErrBusy
	}
	defer p.lock.release()

	run := &models.PipelineRun{
		ID:        uuid.NewString(),
		Directive: req.Directive,
		Provider:  provider,
	}
	ctx = logger.WithRunID(ctx, run.ID)
	startTime := time.Now()

	var files tempFiles
	defer p.cleanup(ctx, &files)

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Starting analysis: %s", req.URL)
	p.logger.Info(ctx, "Audio language: %s, output language: %s",
		req.Directive.Source.OrOriginal().Name(), req.Directive.Target.OrOriginal().Name())
	p.logger.Info(ctx, "========================================")

	// Step 1: Video information
	meta, err := p.resolver.FetchMetadata(ctx, req.URL)
	if err != nil {
		return nil, stageErr(models.StageMetadata, err)
	}
	run.Metadata = meta

	// Step 2: Download audio
	original, err := p.resolver.AcquireAudioWithProgress(ctx, req.URL, req.Progress)
	if err != nil {
		return nil, stageErr(models.StageAcquire, err)
	}
	files.add(original.Path)
	run.Assets.Original = original.Path

	// Step 3: Optimize for the speech backend
	audio, err := p.normalizer.Optimize(ctx, original)
	if err != nil {
		return nil, stageErr(models.StageNormalize, err)
	}
	files.add(audio.Path)
	run.Assets.Converted = audio.Path
	p.logProbe(ctx, audio)

	// Step 4: Transcribe, translating when a target language is set
	transcript, err := p.speech.Transcribe(ctx, audio, req.Directive)
	if err != nil {
		return nil, stageErr(models.StageTranscribe, err)
	}
	run.Transcript = transcript

	// Step 5: Summary is required, analysis is not
	summary, err := p.summarizer.Summarize(ctx, transcript.Text, req.Style, req.Directive.Target)
	if err != nil {
		return nil, stageErr(models.StageSummarize, err)
	}
	run.Summary = summary

	analysis, err := p.summarizer.Analyze(ctx, transcript.Text, req.Directive.Target)
	if err != nil {
		p.logger.Warn(ctx, "Analysis unavailable: %v", stageErr(models.StageAnalyze, err))
	} else {
		run.Analysis = &analysis
	}

	// Step 6: Save results
	run.ProcessedAt = time.Now()
	run.Outputs = p.persister.Persist(ctx, run)

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Analysis completed: %s", run.Metadata.Title)
	p.logger.Info(ctx, "Report: %s", run.Outputs.Report)
	p.logger.Info(ctx, "Processing time: %s", time.Since(startTime).Round(time.Millisecond))
	p.logger.Info(ctx, "========================================")

	return run, nil
}

// logProbe reports stream details at debug level. Failures are ignored.
func (p *implProcessor) logProbe(ctx context.Context, audio models.AudioAsset) {
	info, err := p.normalizer.Probe(ctx, audio)
	if err != nil {
		p.logger.Debug(ctx, "Probe unavailable: %v", err)
		return
	}
	p.logger.Debug(ctx, "Audio: codec=%s rate=%dHz channels=%d duration=%.1fs bitrate=%d",
		info.Codec, info.SampleRate, info.Channels, info.Duration, info.Bitrate)
}

func stageErr(stage models.Stage, err error) error {
	return &models.StageError{Stage: stage, Err: err}
}
