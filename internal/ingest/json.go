package ingest

import (
	"context"
	"encoding/json"
	"io"

	"github.com/rotisserie/eris"

	"github.com/sells-group/geoindex/internal/model"
)

// DecodeJSONArray decodes a JSON array streaming, sending each element to a channel.
// Expects input in the form [{...},{...}].
// Both channels are closed when processing completes.
func DecodeJSONArray[T any](ctx context.Context, r io.Reader) (<-chan T, <-chan error) {
	outCh := make(chan T, 64)
	errCh := make(chan error, 1)

	go func() {
		defer close(outCh)
		defer close(errCh)

		decoder := json.NewDecoder(r)

		tok, err := decoder.Token()
		if err != nil {
			if err == io.EOF {
				return
			}
			errCh <- eris.Wrap(err, "json: read opening token")
			return
		}

		delim, ok := tok.(json.Delim)
		if !ok || delim != '[' {
			errCh <- eris.Errorf("json: expected '[', got %v", tok)
			return
		}

		for decoder.More() {
			if ctx.Err() != nil {
				errCh <- eris.Wrap(ctx.Err(), "json: context cancelled")
				return
			}

			var item T
			if err := decoder.Decode(&item); err != nil {
				errCh <- eris.Wrap(err, "json: decode element")
				return
			}

			select {
			case outCh <- item:
			case <-ctx.Done():
				errCh <- eris.Wrap(ctx.Err(), "json: context cancelled")
				return
			}
		}

		if _, err := decoder.Token(); err != nil && err != io.EOF {
			errCh <- eris.Wrap(err, "json: read closing token")
		}
	}()

	return outCh, errCh
}

// DecodeSamplesJSON reads a JSON array of backend records.
func DecodeSamplesJSON(ctx context.Context, r io.Reader, defaultKind model.IndexKind) ([]model.IndexSample, error) {
	recCh, errCh := DecodeJSONArray[Record](ctx, r)

	var samples []model.IndexSample
	var convErr error
	i := 0
	for rec := range recCh {
		i++
		if convErr != nil {
			continue
		}
		s, err := rec.Sample(defaultKind)
		if err != nil {
			convErr = eris.Wrapf(err, "ingest: record %d", i)
			continue
		}
		samples = append(samples, s)
	}
	if err := <-errCh; err != nil {
		return nil, err
	}
	if convErr != nil {
		return nil, convErr
	}
	return samples, nil
}
