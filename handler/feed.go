package handler

import (
	"context"
	"io"

	"github.com/fwojciec/webrows"
	"github.com/fwojciec/webrows/gofeed"
	"github.com/fwojciec/webrows/rowjson"
)

// Ensure Feed implements Handler.
var _ Handler = (*Feed)(nil)

// Feed emits the items of one or more RSS or Atom feeds, channel fields
// repeated on every item. The batch is tolerant: a feed that fails to fetch
// or parse contributes no rows.
type Feed struct {
	Config
}

var feedParams = webrows.NewParamSchema(
	webrows.ParamField{Name: "urls", Kind: webrows.ParamStringList, Required: true},
	webrows.ParamField{Name: "properties", Kind: webrows.ParamStringList, Default: webrows.Wildcard},
	webrows.ParamField{Name: "config", Kind: webrows.ParamString},
)

// Handle fetches every feed in the payload and emits one row per item, in
// feed order then item order. The trailing config parameter recognizes
// "limit" and "headers".
func (h *Feed) Handle(ctx context.Context, payload []byte, out io.Writer) error {
	params, err := feedParams.Parse(payload)
	if err != nil {
		return err
	}

	opts, err := webrows.ParseOptions(params.String("config"))
	if err != nil {
		return err
	}

	logger := h.logger()
	p := h.pipeline(true, logger)
	if err := p.Run(ctx, params.StringList("urls"), gofeed.NewExtractor(), params.StringList("properties"), opts, rowjson.NewWriter(out)); err != nil {
		return failure(logger, err)
	}
	return nil
}
