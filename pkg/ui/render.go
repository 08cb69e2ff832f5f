// Package ui renders build outcomes for people (plain or colored text) and
// for programs (JSON).
package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/arthur-debert/wieldy/pkg/build"
	"github.com/arthur-debert/wieldy/pkg/compiler"
	"github.com/arthur-debert/wieldy/pkg/errors"
	"github.com/arthur-debert/wieldy/pkg/ui/styles"
)

// Renderer prints build outcomes
type Renderer interface {
	// RenderResult prints every file of a build followed by a summary
	RenderResult(result *build.Result) error
	// RenderFileResult prints the outcome of one compilation
	RenderFileResult(result build.FileResult) error
	// RenderError prints an error that stopped wieldy
	RenderError(err error) error
}

// NewRenderer creates a renderer for format. FormatAuto is resolved against
// output when it is a file, and falls back to plain text otherwise.
func NewRenderer(format Format, output io.Writer) Renderer {
	if format == FormatAuto {
		format = FormatText
		if file, ok := output.(*os.File); ok {
			format = DetectFormat(file)
		}
	}

	switch format {
	case FormatJSON:
		encoder := json.NewEncoder(output)
		encoder.SetIndent("", "  ")
		return &jsonRenderer{encoder: encoder}
	case FormatTerminal:
		return &textRenderer{output: output, styled: true}
	default:
		return &textRenderer{output: output}
	}
}

// RenderResult prints result to w in format
func RenderResult(w io.Writer, result *build.Result, format Format) error {
	return NewRenderer(format, w).RenderResult(result)
}

// RenderFileResult prints one compilation outcome to w in format
func RenderFileResult(w io.Writer, result build.FileResult, format Format) error {
	return NewRenderer(format, w).RenderFileResult(result)
}

type textRenderer struct {
	output io.Writer
	styled bool
}

func (r *textRenderer) style(name, text string) string {
	if !r.styled {
		return text
	}
	return styles.GetStyle(name).Render(text)
}

func (r *textRenderer) RenderFileResult(res build.FileResult) error {
	var err error
	if res.Err != nil {
		_, err = fmt.Fprintf(r.output, "%s %s: %s\n",
			r.style("Error", "failed"),
			r.style("FilePath", res.Source),
			errors.Message(res.Err))
	} else {
		_, err = fmt.Fprintf(r.output, "%s %s %s %s\n",
			r.style("Success", "compiled"),
			r.style("FilePath", res.Source),
			r.style("Arrow", "->"),
			r.style("FilePath", res.Output))
	}
	return err
}

func (r *textRenderer) RenderResult(result *build.Result) error {
	for _, res := range result.Compiled {
		if err := r.RenderFileResult(res); err != nil {
			return err
		}
	}
	for _, res := range result.Failed {
		if err := r.RenderFileResult(res); err != nil {
			return err
		}
	}

	summary := fmt.Sprintf("%d compiled, %d failed in %s",
		len(result.Compiled), len(result.Failed), result.Duration.Round(time.Millisecond))
	_, err := fmt.Fprintln(r.output, r.style("Summary", summary))
	return err
}

func (r *textRenderer) RenderError(err error) error {
	_, werr := fmt.Fprintf(r.output, "%s %s\n", r.style("Error", "error:"), errors.Message(err))
	return werr
}

type jsonRenderer struct {
	encoder *json.Encoder
}

type jsonFileResult struct {
	Source string `json:"source"`
	Output string `json:"output"`
	Error  string `json:"error,omitempty"`
	Code   string `json:"code,omitempty"`
	Line   int    `json:"line,omitempty"`
}

type jsonResult struct {
	Compiled   []jsonFileResult `json:"compiled"`
	Failed     []jsonFileResult `json:"failed"`
	DurationMS int64            `json:"duration_ms"`
}

func toJSON(res build.FileResult) jsonFileResult {
	out := jsonFileResult{Source: res.Source, Output: res.Output}
	if res.Err != nil {
		out.Error = errors.Message(res.Err)
		out.Code = string(errors.GetErrorCode(res.Err))
		if errors.IsParseError(res.Err) {
			out.Line, _ = compiler.ErrorLine(res.Err)
		}
	}
	return out
}

func (r *jsonRenderer) RenderFileResult(res build.FileResult) error {
	return r.encoder.Encode(toJSON(res))
}

func (r *jsonRenderer) RenderResult(result *build.Result) error {
	out := jsonResult{
		Compiled:   make([]jsonFileResult, 0, len(result.Compiled)),
		Failed:     make([]jsonFileResult, 0, len(result.Failed)),
		DurationMS: result.Duration.Milliseconds(),
	}
	for _, res := range result.Compiled {
		out.Compiled = append(out.Compiled, toJSON(res))
	}
	for _, res := range result.Failed {
		out.Failed = append(out.Failed, toJSON(res))
	}
	return r.encoder.Encode(out)
}

func (r *jsonRenderer) RenderError(err error) error {
	return r.encoder.Encode(map[string]string{
		"error": errors.Message(err),
		"code":  string(errors.GetErrorCode(err)),
	})
}
