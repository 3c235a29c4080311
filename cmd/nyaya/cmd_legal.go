package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/spektr-org/nyaya/lookup"
	"github.com/spektr-org/nyaya/predict"
	"github.com/spektr-org/nyaya/server"
)

func runSearch(cmd *cobra.Command, args []string) error {
	res, err := lookup.LoadResources(cmd.Context(), cfg.Data.Dir, cfg.Data.Resources)
	if err != nil {
		return err
	}
	results := lookup.Search(res.Sections, args[0], server.SearchLimit)

	w, closeOut, err := openOutput(outFile)
	if err != nil {
		return err
	}
	defer closeOut()

	if format == "text" {
		return writeSectionsText(w, results)
	}
	return writeJSON(w, results, format)
}

func runExplain(cmd *cobra.Command, args []string) error {
	res, err := lookup.LoadResources(cmd.Context(), cfg.Data.Dir, cfg.Data.Resources)
	if err != nil {
		return err
	}
	sec, err := lookup.FindBySectionID(res.Sections, strings.TrimSpace(args[0]))
	if err != nil {
		return err
	}
	exp := lookup.Explain(sec)

	w, closeOut, err := openOutput(outFile)
	if err != nil {
		return err
	}
	defer closeOut()

	if format == "text" {
		_, err := fmt.Fprintln(w, exp.SimpleExplanation)
		return err
	}
	return writeJSON(w, exp, format)
}

func runPredict(cmd *cobra.Command, args []string) error {
	p := predict.Predict(evidenceStrength, pastRecord)

	w, closeOut, err := openOutput(outFile)
	if err != nil {
		return err
	}
	defer closeOut()

	if format == "text" {
		_, err := fmt.Fprintf(w, "%s (%s)\n\n%s\n\n%s\n",
			p.PossibleOutcome.Result, p.PossibleOutcome.Probability, p.AIReasoning, p.Disclaimer)
		return err
	}
	return writeJSON(w, p, format)
}

func writeSectionsText(w io.Writer, sections []lookup.LegalSection) error {
	if len(sections) == 0 {
		_, err := fmt.Fprintln(w, "No matching sections.")
		return err
	}
	for _, sec := range sections {
		if _, err := fmt.Fprintf(w, "%s  %s\n", sec.Section, sec.Title); err != nil {
			return err
		}
	}
	return nil
}
