package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/matzehuels/reqdetect/pkg/detect"
	"github.com/matzehuels/reqdetect/pkg/errors"
	reqio "github.com/matzehuels/reqdetect/pkg/io"
	"github.com/matzehuels/reqdetect/pkg/requirement"
)

type detectOptions struct {
	format string
	output string
}

func validateFormat(format string) error {
	if !slices.Contains(outputFormats, format) {
		return errors.New(errors.ErrCodeInvalidFormat, "unknown format %q (want one of %v)", format, outputFormats)
	}
	return nil
}

// runDetect finds the requirements under path and writes them to out, or
// to opts.output when set.
func runDetect(ctx context.Context, out io.Writer, path string, opts detectOptions) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	logger.Debug("detecting requirements", "path", path)
	reqs, err := detect.FindRequirements(ctx, path, detect.Options{Logger: logger.Debugf})
	if err != nil {
		if errors.IsNotFound(err) {
			logger.Debug("detection failed", "err", err)
			return errors.Wrap(errors.ErrCodeNotFound, err, "Unable to find requirements at %s", path)
		}
		return err
	}
	prog.done(fmt.Sprintf("Found %d requirements", len(reqs)))

	switch {
	case opts.output == "":
		return render(out, opts.format, reqs)
	case opts.format == formatTable:
		err = os.WriteFile(opts.output, []byte(renderTable(reqs)+"\n"), 0o644)
	default:
		err = reqio.Export(opts.output, opts.format, reqs)
	}
	if err != nil {
		return err
	}
	logger.Info("wrote requirements", "path", opts.output, "count", len(reqs))
	return nil
}

func render(w io.Writer, format string, reqs []*requirement.DetectedRequirement) error {
	if format == formatTable {
		_, err := fmt.Fprintln(w, renderTable(reqs))
		return err
	}
	return reqio.Write(w, format, reqs)
}
