package render

import (
	"bytes"
	"context"
	stderrors "errors"
	"os/exec"
	"strconv"
	"strings"

	"github.com/matzehuels/tierpyramid/pkg/errors"
)

// RSVGConvert is the librsvg command used for PNG and PDF output. It is a
// variable so deployments can point at a non-PATH binary.
var RSVGConvert = "rsvg-convert"

const installHint = "install librsvg (brew install librsvg, apt install librsvg2-bin)"

// ToPDF converts an SVG document to a single-page PDF.
func ToPDF(ctx context.Context, svg []byte) ([]byte, error) {
	return convert(ctx, svg, "pdf")
}

// ToPNG rasterizes an SVG document; scale 2 doubles the pixel size.
func ToPNG(ctx context.Context, svg []byte, scale float64) ([]byte, error) {
	if scale <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "png scale must be positive, got %g", scale)
	}
	return convert(ctx, svg, "png", "--zoom", strconv.FormatFloat(scale, 'f', 2, 64))
}

// Available reports whether the converter can be found.
func Available() bool {
	_, err := exec.LookPath(RSVGConvert)
	return err == nil
}

func convert(ctx context.Context, svg []byte, format string, args ...string) ([]byte, error) {
	bin, err := exec.LookPath(RSVGConvert)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeUnsupported, err, "%s output needs %s; %s", format, RSVGConvert, installHint)
	}

	cmd := exec.CommandContext(ctx, bin, append([]string{"--format", format}, args...)...)
	cmd.Stdin = bytes.NewReader(svg)
	out, err := cmd.Output()
	if err == nil {
		return out, nil
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	var exit *exec.ExitError
	if stderrors.As(err, &exit) {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "%s: %s", RSVGConvert, strings.TrimSpace(string(exit.Stderr)))
	}
	return nil, errors.Wrap(errors.ErrCodeInternal, err, "run %s", RSVGConvert)
}
