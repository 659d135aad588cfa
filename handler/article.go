package handler

import (
	"bytes"
	"context"
	"io"

	"github.com/fwojciec/webrows"
	"github.com/fwojciec/webrows/rowjson"
	"github.com/fwojciec/webrows/trafilatura"
)

// Ensure Article implements Handler.
var _ Handler = (*Article)(nil)

// Article emits exactly one record for a single article URL. The policy is
// strict: any fetch or parse failure aborts the invocation and no output is
// written.
type Article struct {
	Config

	// Extractor selects the article engine. Defaults to trafilatura.
	Extractor webrows.Extractor
}

var articleParams = webrows.NewParamSchema(
	webrows.ParamField{Name: "url", Kind: webrows.ParamString, Required: true},
	webrows.ParamField{Name: "properties", Kind: webrows.ParamStringList, Default: "title"},
)

// Handle fetches the article and emits a single record row with the
// requested properties.
func (h *Article) Handle(ctx context.Context, payload []byte, out io.Writer) error {
	params, err := articleParams.Parse(payload)
	if err != nil {
		return err
	}

	logger := h.logger()
	ex := h.Extractor
	if ex == nil {
		ex = trafilatura.NewExtractor()
	}

	// Data row only; the single-record output carries no header row.
	opts := webrows.DefaultOptions()
	opts.Headers = false

	var buf bytes.Buffer
	p := h.pipeline(false, logger)
	if err := p.Run(ctx, []string{params.String("url")}, ex, params.StringList("properties"), opts, rowjson.NewWriter(&buf)); err != nil {
		return failure(logger, err)
	}

	_, err = out.Write(buf.Bytes())
	return err
}
