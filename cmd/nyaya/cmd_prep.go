package main

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"

	"github.com/spf13/cobra"

	"github.com/spektr-org/nyaya/prep"
)

func runExtractSections(cmd *cobra.Command, args []string) error {
	text, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}
	sections := prep.ExtractSections(string(text))
	slog.Info("sections extracted", "source", args[0], "count", len(sections))

	w, closeOut, err := openOutput(outFile)
	if err != nil {
		return err
	}
	defer closeOut()
	return prep.WriteSectionsJSON(w, sections)
}

func runGenerateCases(cmd *cobra.Command, args []string) error {
	rng := rand.New(rand.NewPCG(caseSeed, caseSeed))
	records := prep.GenerateCases(rng, caseRows)

	w, closeOut, err := openOutput(outFile)
	if err != nil {
		return err
	}
	defer closeOut()
	if err := prep.WriteCasesCSV(w, records); err != nil {
		return err
	}
	slog.Info("cases generated", "rows", len(records), "seed", caseSeed)
	return nil
}
