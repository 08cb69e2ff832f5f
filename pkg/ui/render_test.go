package ui_test

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"testing"
	"time"

	"github.com/arthur-debert/wieldy/pkg/build"
	"github.com/arthur-debert/wieldy/pkg/errors"
	"github.com/arthur-debert/wieldy/pkg/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResult() *build.Result {
	return &build.Result{
		Compiled: []build.FileResult{
			{Source: "site/a.wml", Output: "out/a.html"},
		},
		Failed: []build.FileResult{
			{
				Source: "site/b.wml",
				Output: "out/b.html",
				Err: errors.New(errors.ErrUnmatchedOpener, "unmatched '<' found on line 3").
					WithDetail("line", 3),
			},
		},
		Duration: 12*time.Millisecond + 400*time.Microsecond,
	}
}

func TestRenderResult_Text(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ui.RenderResult(&buf, sampleResult(), ui.FormatText))

	assert.Equal(t,
		"compiled site/a.wml -> out/a.html\n"+
			"failed site/b.wml: unmatched '<' found on line 3\n"+
			"1 compiled, 1 failed in 12ms\n",
		buf.String())
}

func TestRenderResult_AutoOnBufferIsText(t *testing.T) {
	var auto, text bytes.Buffer
	require.NoError(t, ui.RenderResult(&auto, sampleResult(), ui.FormatAuto))
	require.NoError(t, ui.RenderResult(&text, sampleResult(), ui.FormatText))
	assert.Equal(t, text.String(), auto.String())
}

func TestRenderResult_Terminal(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ui.RenderResult(&buf, sampleResult(), ui.FormatTerminal))

	out := buf.String()
	for _, want := range []string{"compiled", "site/a.wml", "out/a.html", "failed", "site/b.wml", "1 compiled, 1 failed"} {
		assert.Contains(t, out, want)
	}
}

func TestRenderResult_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ui.RenderResult(&buf, sampleResult(), ui.FormatJSON))

	var decoded struct {
		Compiled []map[string]interface{} `json:"compiled"`
		Failed   []map[string]interface{} `json:"failed"`
		Duration int64                    `json:"duration_ms"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	require.Len(t, decoded.Compiled, 1)
	assert.Equal(t, "site/a.wml", decoded.Compiled[0]["source"])
	assert.NotContains(t, decoded.Compiled[0], "error")

	require.Len(t, decoded.Failed, 1)
	assert.Equal(t, "UNMATCHED_OPENER", decoded.Failed[0]["code"])
	assert.Equal(t, float64(3), decoded.Failed[0]["line"])
	assert.Equal(t, "unmatched '<' found on line 3", decoded.Failed[0]["error"])
	assert.Equal(t, int64(12), decoded.Duration)
}

func TestRenderResult_JSONEmptyListsAreArrays(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ui.RenderResult(&buf, &build.Result{}, ui.FormatJSON))
	assert.Contains(t, buf.String(), `"compiled": []`)
	assert.Contains(t, buf.String(), `"failed": []`)
}

func TestRenderFileResult(t *testing.T) {
	var buf bytes.Buffer
	res := build.FileResult{Source: "a.wml", Output: "a.html"}
	require.NoError(t, ui.RenderFileResult(&buf, res, ui.FormatText))
	assert.Equal(t, "compiled a.wml -> a.html\n", buf.String())

	buf.Reset()
	res.Err = errors.Wrap(stderrors.New("permission denied"), errors.ErrFileWrite, "cannot write a.html")
	require.NoError(t, ui.RenderFileResult(&buf, res, ui.FormatJSON))

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "FILE_WRITE", decoded["code"])
	assert.Equal(t, "cannot write a.html: permission denied", decoded["error"])
	assert.NotContains(t, decoded, "line")
}

func TestRenderFileResult_JSONLineOnlyForParseErrors(t *testing.T) {
	var buf bytes.Buffer
	res := build.FileResult{
		Source: "a.wml",
		Output: "a.html",
		Err:    errors.New(errors.ErrFileAccess, "cannot read a.wml").WithDetail("line", 7),
	}
	require.NoError(t, ui.RenderFileResult(&buf, res, ui.FormatJSON))

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "FILE_ACCESS", decoded["code"])
	assert.NotContains(t, decoded, "line")
}

func TestRenderError(t *testing.T) {
	var buf bytes.Buffer
	err := errors.New(errors.ErrFileNotFound, "no such file or directory: nope")

	require.NoError(t, ui.NewRenderer(ui.FormatText, &buf).RenderError(err))
	assert.Equal(t, "error: no such file or directory: nope\n", buf.String())
}
