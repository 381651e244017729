package services

import (
	"strings"
	"sync/atomic"

	"github.com/reparo-labs/partassist/internal/core/domain"
)

// Recognised field labels, matched case-sensitively at line start after
// trimming leading whitespace. This set is a contract with the offline
// ingestion format: a renamed label or changed delimiter shows up as
// empty fields, not as a parse failure, which is why the stats below
// exist.
const (
	labelTitle            = "Title"
	labelDescription      = "Description"
	labelSymptoms         = "Symptoms"
	labelProductTypes     = "Product Types"
	labelPartID           = "Part ID"
	labelBrand            = "Brand"
	labelInstallation     = "Installation"
	labelRelatedParts     = "Related Parts"
	labelReplacementParts = "Replacement Parts"
	labelURL              = "URL"
)

// documentLabels lists every recognised label. Order matters only for
// prefix matching: longer labels come before shorter ones that share a
// prefix would, but no current label is a prefix of another.
var documentLabels = []string{
	labelTitle,
	labelDescription,
	labelSymptoms,
	labelProductTypes,
	labelPartID,
	labelBrand,
	labelInstallation,
	labelRelatedParts,
	labelReplacementParts,
	labelURL,
}

// ParseStats is a point-in-time snapshot of parser observability
// counters.
type ParseStats struct {
	// Documents is the total number of documents parsed.
	Documents uint64

	// Unlabeled counts documents in which no recognised label was
	// found at all.
	Unlabeled uint64

	// EmptyFields counts individual fields that resolved to empty
	// across all parses.
	EmptyFields uint64
}

// DocumentParser extracts structured fields from the semi-structured
// text blobs stored in the nearest-neighbour index. Parsing is total:
// any missing label yields an empty value, never an error. The parser
// keeps counters so silent ingestion-format drift is visible in logs
// instead of masked.
type DocumentParser struct {
	documents   atomic.Uint64
	unlabeled   atomic.Uint64
	emptyFields atomic.Uint64
}

// NewDocumentParser creates a parser with zeroed counters.
func NewDocumentParser() *DocumentParser {
	return &DocumentParser{}
}

// Parse extracts the field set from one raw document. It never fails
// and is idempotent: the same input always yields the same output.
func (p *DocumentParser) Parse(raw string) domain.SemanticDocument {
	fields := make(map[string]string, len(documentLabels))
	var description []string
	inDescription := false

	for _, line := range strings.Split(raw, "\n") {
		trimmed := strings.TrimLeft(line, " \t")
		label, value, ok := matchLabel(trimmed)
		if !ok {
			// Description is the only multi-line capture; continuation
			// lines under any other label are not part of the grammar.
			if inDescription {
				description = append(description, strings.TrimSpace(line))
			}
			continue
		}

		inDescription = label == labelDescription
		if inDescription {
			description = append(description[:0], value)
			continue
		}

		// First occurrence wins, matching the ingestion format which
		// emits each label once.
		if _, seen := fields[label]; !seen {
			fields[label] = value
		}
	}

	doc := domain.SemanticDocument{
		Title:            fields[labelTitle],
		Description:      strings.TrimSpace(strings.Join(description, "\n")),
		Symptoms:         splitList(fields[labelSymptoms], "|", false),
		ProductTypes:     splitList(fields[labelProductTypes], ",", true),
		PartID:           fields[labelPartID],
		Brand:            fields[labelBrand],
		Installation:     fields[labelInstallation],
		RelatedParts:     splitList(fields[labelRelatedParts], ",", false),
		ReplacementParts: splitList(fields[labelReplacementParts], ",", false),
		URL:              fields[labelURL],
	}

	p.record(doc, len(fields) == 0 && len(description) == 0)
	return doc
}

// Stats returns a snapshot of the parser's counters.
func (p *DocumentParser) Stats() ParseStats {
	return ParseStats{
		Documents:   p.documents.Load(),
		Unlabeled:   p.unlabeled.Load(),
		EmptyFields: p.emptyFields.Load(),
	}
}

func (p *DocumentParser) record(doc domain.SemanticDocument, unlabeled bool) {
	p.documents.Add(1)
	if unlabeled {
		p.unlabeled.Add(1)
	}

	empty := uint64(0)
	for _, s := range []string{doc.Title, doc.Description, doc.PartID, doc.Brand, doc.Installation, doc.URL} {
		if s == "" {
			empty++
		}
	}
	for _, l := range [][]string{doc.Symptoms, doc.ProductTypes, doc.RelatedParts, doc.ReplacementParts} {
		if len(l) == 0 {
			empty++
		}
	}
	p.emptyFields.Add(empty)
}

// matchLabel reports whether the line starts with a recognised
// "Label:" marker and returns the label and the rest of the line.
func matchLabel(line string) (label, value string, ok bool) {
	for _, l := range documentLabels {
		if strings.HasPrefix(line, l+":") {
			return l, strings.TrimSpace(line[len(l)+1:]), true
		}
	}
	return "", "", false
}

// splitList splits a delimiter-separated field, trimming elements and
// dropping empties. stripPeriods removes trailing periods, which the
// ingestion format leaves on product type sentences.
func splitList(s, sep string, stripPeriods bool) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, sep)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if stripPeriods {
			p = strings.TrimRight(p, ".")
			p = strings.TrimSpace(p)
		}
		if p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
