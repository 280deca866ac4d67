package payload

import (
	"errors"

	"github.com/jellydator/validation"
)

// MaxIngestSpan bounds a single ingestion request.
const MaxIngestSpan uint64 = 100_000

var errRangeOrder error = errors.New("must not be lower than from")
var errRangeSpan error = errors.New("range is too wide")

type IngestRequest struct {
	From *uint64 `json:"from"`
	To   *uint64 `json:"to"`
}

func (i IngestRequest) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.From, validation.NotNil),
		validation.Field(&i.To, validation.NotNil, validation.By(i.checkRange)),
	)
}

func (i IngestRequest) checkRange(interface{}) error {
	if i.From == nil || i.To == nil {
		return nil
	}
	if *i.To < *i.From {
		return errRangeOrder
	}
	if *i.To-*i.From >= MaxIngestSpan {
		return errRangeSpan
	}
	return nil
}

// Range assumes Validate passed.
func (i IngestRequest) Range() (uint64, uint64) {
	return *i.From, *i.To
}
