package prep

import (
	"encoding/csv"
	"fmt"
	"io"
	"math/rand/v2"
	"strconv"
)

// ============================================================================
// CASE DATASET: Synthetic case-outcome records
// ============================================================================

// CaseRecord is one synthetic case.
type CaseRecord struct {
	CaseType           string `json:"case_type"`
	IPCSection         string `json:"ipc_section"`
	CaseFactsSummary   string `json:"case_facts_summary"`
	EvidenceStrength   string `json:"evidence_strength"`
	PastCriminalRecord string `json:"past_criminal_record"`
	Severity           string `json:"severity"`
	VictimImpact       string `json:"victim_impact"`
	Outcome            string `json:"outcome"`
	BaseProbability    int    `json:"base_probability"`
}

// CaseHeader is the column order of the generated CSV.
var CaseHeader = []string{
	"case_type",
	"ipc_section",
	"case_facts_summary",
	"evidence_strength",
	"past_criminal_record",
	"severity",
	"victim_impact",
	"outcome",
	"base_probability",
}

type caseType struct {
	name     string
	sections []string
}

var caseTypes = []caseType{
	{"Criminal", []string{"IPC 302", "IPC 376", "IPC 420", "IPC 498A", "IPC 354", "IPC 379"}},
	{"Property", []string{"IPC 447", "IPC 406", "IPC 420"}},
	{"Family", []string{"IPC 125", "IPC 498A"}},
	{"Civil", []string{"CPC 9", "CPC 34"}},
}

var (
	evidenceStrengths = []string{"Strong", "Moderate", "Weak"}
	pastRecords       = []string{"None", "Minor", "Serious"}
	severities        = []string{"Low", "Medium", "High"}
	victimImpacts     = []string{"Low", "Moderate", "Severe"}
)

var caseFacts = map[string][]string{
	"Strong": {
		"Case supported by documentary proof, eyewitness testimony, and forensic evidence.",
		"CCTV footage, medical records, and witness statements clearly support allegations.",
		"Bank records and official documents strongly establish the offense.",
	},
	"Moderate": {
		"Partial documentation available along with verbal witness statements.",
		"Medical records exist but lack corroborative digital evidence.",
		"Circumstantial evidence supported by limited witnesses.",
	},
	"Weak": {
		"No documentary proof, allegations based primarily on verbal claims.",
		"Witness statements are contradictory and lack supporting evidence.",
		"Case depends mainly on assumptions without physical proof.",
	},
}

// GenerateCases draws n records from rng. The same seed yields the same
// records.
func GenerateCases(rng *rand.Rand, n int) []CaseRecord {
	records := make([]CaseRecord, 0, max(n, 0))
	for range n {
		ct := caseTypes[rng.IntN(len(caseTypes))]
		evidence := pick(rng, evidenceStrengths)
		rec := CaseRecord{
			CaseType:           ct.name,
			IPCSection:         pick(rng, ct.sections),
			EvidenceStrength:   evidence,
			PastCriminalRecord: pick(rng, pastRecords),
			Severity:           pick(rng, severities),
			VictimImpact:       pick(rng, victimImpacts),
			CaseFactsSummary:   pick(rng, caseFacts[evidence]),
		}
		rec.Outcome, rec.BaseProbability = decideOutcome(rng, evidence)
		records = append(records, rec)
	}
	return records
}

// decideOutcome maps evidence strength to an outcome and a probability in
// an inclusive range.
func decideOutcome(rng *rand.Rand, evidence string) (string, int) {
	switch evidence {
	case "Strong":
		return "Conviction", between(rng, 70, 90)
	case "Moderate":
		return pick(rng, []string{"Conviction", "Settlement", "Mediation"}), between(rng, 45, 65)
	default:
		return "Acquittal", between(rng, 15, 35)
	}
}

func pick(rng *rand.Rand, values []string) string {
	return values[rng.IntN(len(values))]
}

func between(rng *rand.Rand, lo, hi int) int {
	return lo + rng.IntN(hi-lo+1)
}

// WriteCasesCSV writes the header and one row per record.
func WriteCasesCSV(w io.Writer, records []CaseRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CaseHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, r := range records {
		row := []string{
			r.CaseType,
			r.IPCSection,
			r.CaseFactsSummary,
			r.EvidenceStrength,
			r.PastCriminalRecord,
			r.Severity,
			r.VictimImpact,
			r.Outcome,
			strconv.Itoa(r.BaseProbability),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
