package handler

import (
	"context"
	"io"

	"github.com/fwojciec/webrows"
	"github.com/fwojciec/webrows/csv"
	"github.com/fwojciec/webrows/rowjson"
)

// Ensure CSV implements Handler.
var _ Handler = (*CSV)(nil)

// CSV emits the rows of one or more remote CSV files as a single table.
// The column set is the header of the first file that parses; rows from the
// remaining files are re-keyed to it. The batch is tolerant: a file that
// fails to fetch or parse contributes no rows.
type CSV struct {
	Config
}

var csvParams = webrows.NewParamSchema(
	webrows.ParamField{Name: "urls", Kind: webrows.ParamStringList, Required: true},
)

// Handle fetches every file in the payload and emits the combined rows,
// header first. Rows are staged in a temporary NDJSON file so memory stays
// bounded regardless of how many rows the batch produces.
func (h *CSV) Handle(ctx context.Context, payload []byte, out io.Writer) error {
	params, err := csvParams.Parse(payload)
	if err != nil {
		return err
	}

	logger := h.logger()
	p := h.pipeline(true, logger)
	w := rowjson.NewSpoolWriter(out)
	if err := p.Run(ctx, params.StringList("urls"), csv.NewExtractor(), []string{webrows.Wildcard}, webrows.DefaultOptions(), w); err != nil {
		w.Discard()
		return failure(logger, err)
	}
	return nil
}
