package output

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/abdul-hamid-achik/veryhttp/packages/http"
	"github.com/fatih/color"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

// ErrInvalidJSON is wrapped by RenderError when a JSON body does not parse.
var ErrInvalidJSON = errors.New("body is not valid JSON")

// RenderError reports a body that could not be rendered as its declared
// content type.
type RenderError struct {
	ContentType string
	Err         error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("cannot render %s body: %v", e.ContentType, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

type Renderer struct {
	writer  io.Writer
	noColor bool

	status *color.Color
	header *color.Color
	json   *color.Color
	err    *color.Color
}

type RendererOption func(*Renderer)

func NewRenderer(opts ...RendererOption) *Renderer {
	r := &Renderer{
		writer: os.Stdout,
		status: color.New(color.FgBlue),
		header: color.New(color.FgGreen),
		json:   color.New(color.FgCyan),
		err:    color.New(color.FgRed),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.noColor {
		for _, c := range []*color.Color{r.status, r.header, r.json, r.err} {
			c.DisableColor()
		}
	}
	return r
}

func WithWriter(w io.Writer) RendererOption {
	return func(r *Renderer) {
		r.writer = w
	}
}

func WithNoColor(nc bool) RendererOption {
	return func(r *Renderer) {
		r.noColor = nc
	}
}

// Render prints the status line, the headers and the body of resp, each
// followed by a blank line. Status and headers are written even when the
// body fails to render.
func (r *Renderer) Render(resp *http.Response) error {
	r.renderStatus(resp)
	r.renderHeaders(resp)
	return r.renderBody(resp)
}

func (r *Renderer) renderStatus(resp *http.Response) {
	fmt.Fprintf(r.writer, "%s %s\n\n", resp.Proto, r.status.Sprint(resp.StatusCode))
}

func (r *Renderer) renderHeaders(resp *http.Response) {
	for _, name := range resp.HeaderNames() {
		for _, value := range resp.Headers[name] {
			fmt.Fprintf(r.writer, "%s: %s\n", r.header.Sprint(name), value)
		}
	}
	fmt.Fprintln(r.writer)
}

func (r *Renderer) renderBody(resp *http.Response) error {
	if !resp.IsJSON() {
		r.writeRaw(resp.Body)
		return nil
	}

	if len(bytes.TrimSpace(resp.Body)) == 0 {
		return nil
	}

	if !gjson.ValidBytes(resp.Body) {
		return &RenderError{ContentType: http.MIMEApplicationJSON, Err: ErrInvalidJSON}
	}

	fmt.Fprint(r.writer, r.json.Sprint(string(pretty.Pretty(resp.Body))))
	return nil
}

func (r *Renderer) writeRaw(body []byte) {
	if len(body) == 0 {
		return
	}
	_, _ = r.writer.Write(body)
	if body[len(body)-1] != '\n' {
		fmt.Fprintln(r.writer)
	}
}

func (r *Renderer) FormatError(err error) {
	fmt.Fprintf(r.writer, "%s %v\n", r.err.Sprint("Error:"), err)
}
