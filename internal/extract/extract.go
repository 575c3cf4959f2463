package extract

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ledongthuc/pdf"

	"fastreader/internal/shared/metrics"
	"fastreader/internal/shared/telemetry"
)

// ErrInvalidPDF reports that the input is not a readable PDF structure.
var ErrInvalidPDF = errors.New("invalid pdf")

// pageTimeout bounds a single page's extraction; some malformed pages
// send the parser into effectively unbounded work.
const pageTimeout = 10 * time.Second

// Text extracts plain text from an in-memory PDF, page by page.
//
// A page that fails to extract (error, panic, or timeout) contributes
// nothing and never aborts the document; non-empty page texts are joined
// with a newline. Only a document that cannot be opened at all fails,
// with ErrInvalidPDF.
func Text(ctx context.Context, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	reader, err := openReader(data)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidPDF, err)
	}

	var parts []string
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		content, err := extractPage(page)
		if err != nil {
			metrics.CountPageFailure()
			telemetry.Warn("extract.page_failed", map[string]any{
				"page": i,
				"err":  err.Error(),
			})
			continue
		}
		if content != "" {
			parts = append(parts, content)
		}
	}
	return strings.Join(parts, "\n"), nil
}

func openReader(data []byte) (reader *pdf.Reader, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("panic: %v", rec)
		}
	}()
	return pdf.NewReader(bytes.NewReader(data), int64(len(data)))
}

// extractPage runs one page's extraction in a goroutine so that a parser
// panic or runaway page only costs that page.
func extractPage(page pdf.Page) (string, error) {
	type result struct {
		content string
		err     error
	}
	resChan := make(chan result, 1)

	go func() {
		defer func() {
			if rec := recover(); rec != nil {
				resChan <- result{"", fmt.Errorf("panic: %v", rec)}
			}
		}()
		content, err := page.GetPlainText(nil)
		resChan <- result{content, err}
	}()

	select {
	case r := <-resChan:
		return r.content, r.err
	case <-time.After(pageTimeout):
		return "", errors.New("timeout")
	}
}
