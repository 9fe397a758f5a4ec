package inventory

import (
	"fmt"
	"log/slog"
)

// errEmpty is returned by providers whose query succeeded but yielded no
// usable fields, so the chain treats "ran fine, found nothing" the same
// as a hard failure and moves on.
var errEmpty = fmt.Errorf("provider yielded no data")

// provider is one concrete way of querying a hardware fact from the OS.
// probe either returns a populated result (any field counts) or an error;
// errors never escape the chain.
type provider[T any] struct {
	name  string
	probe func(tr *Trace) (T, error)
}

// runChain walks providers in order and returns the first successful
// result. Failures are logged at debug level and recorded in the trace,
// never surfaced. When every provider fails the zero value is returned,
// which callers render as empty lists or NA scalars.
func runChain[T any](class string, tr *Trace, providers []provider[T]) T {
	log := slog.Default().With("component", "inventory", "class", class)
	for _, p := range providers {
		v, err := p.probe(tr)
		if err != nil {
			log.Debug("provider failed", "provider", p.name, "error", err)
			tr.Addf(class, "%s: %v", p.name, err)
			continue
		}
		log.Debug("provider succeeded", "provider", p.name)
		tr.Addf(class, "%s: ok", p.name)
		return v
	}
	log.Debug("all providers failed")
	var zero T
	return zero
}
