package server

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/nguyentantai21042004/video-insight/internal/models"
	"github.com/nguyentantai21042004/video-insight/internal/processor"
)

const unsupportedURL = "Unsupported video URL. Use a YouTube watch, youtu.be, embed or /v/ link."

type analyzeForm struct {
	URL    string `validate:"required,video_url"`
	Source string `validate:"omitempty,oneof=auto pt en es fr"`
	Target string `validate:"omitempty,oneof=original pt en es fr"`
	Style  string `validate:"omitempty,oneof=structured bullet_points paragraph"`
}

type formPage struct {
	Form      analyzeForm
	Error     string
	Languages []models.Language
	Styles    []models.SummaryStyle
}

type resultPage struct {
	Run *models.PipelineRun
}

func (s *implServer) form(w http.ResponseWriter, r *http.Request) {
	// Portuguese output by default
	s.renderForm(w, r, http.StatusOK, analyzeForm{Target: string(models.LanguagePortuguese)}, "")
}

func (s *implServer) health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

func (s *implServer) analyze(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.renderForm(w, r, http.StatusBadRequest, analyzeForm{}, "Could not read the form.")
		return
	}

	form := analyzeForm{
		URL:    strings.TrimSpace(r.PostFormValue("url")),
		Source: r.PostFormValue("source"),
		Target: r.PostFormValue("target"),
		Style:  r.PostFormValue("style"),
	}

	if err := s.validate.Struct(form); err != nil {
		s.renderForm(w, r, http.StatusBadRequest, form, strings.Join(formatValidationErrors(err), ", "))
		return
	}

	directive, err := models.NewLanguageDirective(form.Source, form.Target)
	if err != nil {
		s.renderForm(w, r, http.StatusBadRequest, form, err.Error())
		return
	}

	run, err := s.processor.Run(r.Context(), processor.Request{
		URL:       form.URL,
		Directive: directive,
		Style:     models.ParseSummaryStyle(form.Style),
	})
	if err != nil {
		s.logger.Error(r.Context(), "Analysis failed: %v", err)
		s.renderForm(w, r, statusFor(err), form, describe(err))
		return
	}

	s.render(w, r, http.StatusOK, "result", resultPage{Run: run})
}

func (s *implServer) renderForm(w http.ResponseWriter, r *http.Request, status int, form analyzeForm, msg string) {
	s.render(w, r, status, "form", formPage{
		Form:      form,
		Error:     msg,
		Languages: models.SupportedLanguages(),
		Styles:    models.SummaryStyles(),
	})
}

func (s *implServer) render(w http.ResponseWriter, r *http.Request, status int, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := s.pages.ExecuteTemplate(w, name, data); err != nil {
		s.logger.Error(r.Context(), "Render %s: %v", name, err)
	}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, models.ErrBusy):
		return http.StatusConflict
	case errors.Is(err, models.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrNotFound), errors.Is(err, models.ErrNoAudioStream):
		return http.StatusNotFound
	case errors.Is(err, models.ErrTooLarge), errors.Is(err, models.ErrTextTooShort):
		return http.StatusUnprocessableEntity
	case errors.Is(err, models.ErrBackend):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func describe(err error) string {
	if errors.Is(err, models.ErrBusy) {
		return "Another analysis is already running. Try again when it finishes."
	}
	if stage, ok := models.FailedStage(err); ok {
		return fmt.Sprintf("The %s step failed: %v", stage, errors.Unwrap(err))
	}
	return err.Error()
}

func formatValidationErrors(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}

	var out []string
	for _, e := range verrs {
		if e.Tag() == "video_url" {
			out = append(out, unsupportedURL)
			continue
		}
		element := fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		if e.Param() != "" {
			element = fmt.Sprintf("%s (value: %s)", element, e.Param())
		}
		out = append(out, element)
	}
	return out
}
