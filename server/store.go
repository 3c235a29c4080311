package server

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/spektr-org/nyaya/config"
	"github.com/spektr-org/nyaya/engine"
	"github.com/spektr-org/nyaya/helpers"
	"github.com/spektr-org/nyaya/lookup"
	"github.com/spektr-org/nyaya/schema"
)

// Store is the read-only state shared by every request.
type Store struct {
	IPC       *engine.Dataset
	Women     *engine.Dataset
	Resources *lookup.Resources

	ipcYears    []int
	ipcStates   []string
	womenYears  []int
	womenStates []string
}

// LoadStore reads both datasets and every resource file concurrently.
func LoadStore(ctx context.Context, cfg config.DataConfig) (*Store, error) {
	var (
		ipc, women *engine.Dataset
		res        *lookup.Resources
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		ipc, err = helpers.LoadCSV(filepath.Join(cfg.Dir, cfg.IPCCrime))
		return err
	})
	g.Go(func() error {
		var err error
		women, err = helpers.LoadCSV(filepath.Join(cfg.Dir, cfg.WomenCrime))
		return err
	})
	g.Go(func() error {
		var err error
		res, err = lookup.LoadResources(gctx, cfg.Dir, cfg.Resources)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	store, err := NewStore(ipc, women, res)
	if err != nil {
		return nil, err
	}
	slog.Info("data loaded",
		"dir", cfg.Dir,
		"ipc_rows", ipc.Len(),
		"women_rows", women.Len(),
		"ipc_sections", len(res.Sections),
		"judgments", res.Judgments)
	return store, nil
}

// NewStore binds the datasets to their contracts and precomputes the filter
// option lists.
func NewStore(ipc, women *engine.Dataset, res *lookup.Resources) (*Store, error) {
	ipc, err := schema.IPCCrime.Bind(ipc)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", helpers.ErrDataLoad, err)
	}
	women, err = schema.WomenCrime.Bind(women)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", helpers.ErrDataLoad, err)
	}
	if res == nil {
		res = &lookup.Resources{}
	}

	s := &Store{IPC: ipc, Women: women, Resources: res}
	if s.ipcYears, err = engine.DistinctYears(ipc, schema.IPCCrime.YearColumn); err != nil {
		return nil, err
	}
	if s.ipcStates, err = engine.DistinctValues(ipc, schema.IPCCrime.RegionColumn); err != nil {
		return nil, err
	}
	if s.womenYears, err = engine.DistinctYears(women, schema.WomenCrime.YearColumn); err != nil {
		return nil, err
	}
	if s.womenStates, err = engine.DistinctValues(women, schema.WomenCrime.RegionColumn); err != nil {
		return nil, err
	}
	return s, nil
}
