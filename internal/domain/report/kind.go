package report

import "strings"

// Kind selects which of the three report layouts a request produces.
type Kind string

const (
	KindEmployeePerformance Kind = "employee_performance"
	KindProjectProgress     Kind = "project_progress"
	KindExecutiveOverview   Kind = "executive_overview"
)

var kindProperties = map[Kind]struct {
	title       string
	titlePlural string
	heading     string
	filePrefix  string
	fallback    string
}{
	KindEmployeePerformance: {
		title:       "RAPORT WYDAJNOŚCI PRACOWNIKA",
		titlePlural: "RAPORT WYDAJNOŚCI PRACOWNIKÓW",
		heading:     "Pracownik",
		filePrefix:  "Raport_Wydajności",
		fallback:    "Brak danych dla wybranych pracowników.",
	},
	KindProjectProgress: {
		title:       "RAPORT POSTĘPU PROJEKTU",
		titlePlural: "RAPORT POSTĘPU PROJEKTÓW",
		heading:     "Projekt",
		filePrefix:  "Raport_postepu_projektu",
		fallback:    "Brak danych dla wybranych projektów.",
	},
	KindExecutiveOverview: {
		title:       "RAPORT ZARZĄDCZY PROJEKTU",
		titlePlural: "RAPORT ZARZĄDCZY PROJEKTÓW",
		heading:     "Projekt",
		filePrefix:  "Raport_zarzadczy",
		fallback:    "Brak danych dla wybranych projektów.",
	},
}

// ParseKind accepts the wire spelling of a report kind.
func ParseKind(raw string) (Kind, error) {
	kind := Kind(strings.ToLower(strings.TrimSpace(raw)))
	if _, ok := kindProperties[kind]; !ok {
		return "", ErrUnknownKind
	}
	return kind, nil
}

func (k Kind) Valid() bool {
	_, ok := kindProperties[k]
	return ok
}

// Title returns the report headline, pluralized when the request batches
// more than one entity.
func (k Kind) Title(plural bool) string {
	props := kindProperties[k]
	if plural {
		return props.titlePlural
	}
	return props.title
}

// Heading is the label prefixed to an entity name in batched reports.
func (k Kind) Heading() string {
	return kindProperties[k].heading
}

// FilePrefix is the stem of generated file names when no custom name is given.
func (k Kind) FilePrefix() string {
	return kindProperties[k].filePrefix
}

// Fallback is the paragraph emitted when no requested entity produced data.
func (k Kind) Fallback() string {
	return kindProperties[k].fallback
}
