// Package nyaya serves Indian legal-data lookups: NCRB crime statistics,
// IPC sections, legal FAQs, helplines and awareness tips.
//
// Usage:
//
//	import "github.com/spektr-org/nyaya/engine"
//
//	ds, err := helpers.LoadCSV("data/ipc_crime.csv")
//	states, err := engine.AggregateByRegion(ds, "TOTAL IPC CRIMES", "STATE/UT",
//	    engine.WithYear("YEAR", 2012),
//	)
//	top, err := engine.TopN(states, 10)
//
// Datasets are loaded once at startup and never mutated. Every filter and
// aggregation reads through a RecordView and returns a fresh result, so the
// loaded data is shared across requests without locking.
//
// The HTTP shell lives in the server package; offline data preparation
// (IPC text extraction, synthetic case datasets) lives in prep.
package nyaya
