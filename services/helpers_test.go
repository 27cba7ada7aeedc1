package services

import (
	"context"
	"errors"
	"sync/atomic"
	"time"
)

// stubGenerator returns canned text and counts calls
type stubGenerator struct {
	text    string
	err     error
	calls   atomic.Int32
	started chan struct{}
	release chan struct{}
}

func (g *stubGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	g.calls.Add(1)

	if g.started != nil {
		select {
		case g.started <- struct{}{}:
		default:
		}
	}
	if g.release != nil {
		select {
		case <-g.release:
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}

	return g.text, g.err
}

// blockingGenerator never answers before its context ends
type blockingGenerator struct{}

func (blockingGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	<-ctx.Done()
	return "", ctx.Err()
}

// failingBackend fails every operation
type failingBackend struct{}

func (failingBackend) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return nil, false, errors.New("disk unavailable")
}

func (failingBackend) Put(ctx context.Context, key string, value []byte) error {
	return errors.New("disk unavailable")
}

const twoRecordResponse = `[
  {
    "id": "live-1",
    "companyName": "Shree Cement Works",
    "type": "Mainboard",
    "status": "Ongoing",
    "priceBand": "₹410-432",
    "lotSize": 34,
    "subscription": {"retail": "3.1x", "nii": "2.0x", "qib": "0.9x"},
    "gmp": "+₹22"
  },
  {
    "id": 2,
    "companyName": "Kaveri Agro",
    "type": "sme",
    "status": "Listed",
    "listingGain": "-4%",
    "listingPrice": "₹96"
  }
]`

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
