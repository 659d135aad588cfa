package handler

import (
	"bytes"
	"context"
	"io"

	"github.com/fwojciec/webrows"
	"github.com/fwojciec/webrows/goquery"
	"github.com/fwojciec/webrows/rowjson"
)

// Ensure Links implements Handler.
var _ Handler = (*Links)(nil)

// Links emits the anchors on one or more pages whose visible text contains
// a search string. Matching is case-insensitive on whitespace-collapsed
// text; emitted link URLs are resolved against the page's own URL.
type Links struct {
	Config

	// Strict aborts the whole invocation on the first per-URL failure
	// instead of absorbing it, and writes no output on failure.
	Strict bool
}

var linksParams = webrows.NewParamSchema(
	webrows.ParamField{Name: "urls", Kind: webrows.ParamStringList, Required: true},
	webrows.ParamField{Name: "search", Kind: webrows.ParamString, Required: true},
	webrows.ParamField{Name: "properties", Kind: webrows.ParamStringList, Default: webrows.Wildcard},
)

// Handle fetches every page in the payload and emits one row per matching
// anchor, in page order then document order.
func (h *Links) Handle(ctx context.Context, payload []byte, out io.Writer) error {
	params, err := linksParams.Parse(payload)
	if err != nil {
		return err
	}

	logger := h.logger()
	ex := goquery.NewLinkExtractor(params.String("search"))
	urls := params.StringList("urls")
	props := params.StringList("properties")

	// Data rows only; an anchor listing carries no header row.
	opts := webrows.DefaultOptions()
	opts.Headers = false

	if h.Strict {
		var buf bytes.Buffer
		p := h.pipeline(false, logger)
		if err := p.Run(ctx, urls, ex, props, opts, rowjson.NewWriter(&buf)); err != nil {
			return failure(logger, err)
		}
		_, err := out.Write(buf.Bytes())
		return err
	}

	p := h.pipeline(true, logger)
	if err := p.Run(ctx, urls, ex, props, opts, rowjson.NewWriter(out)); err != nil {
		return failure(logger, err)
	}
	return nil
}
