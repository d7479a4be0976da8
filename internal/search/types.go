package search

// Kind identifies which field of the document tree produced a match.
type Kind string

const (
	KindSection  Kind = "section"
	KindSubtopic Kind = "subtopic"
	KindItem     Kind = "item"
	KindText     Kind = "text"
	KindCode     Kind = "code"
)

// Priority ranks kinds for result ordering; higher comes first.
func (k Kind) Priority() int {
	switch k {
	case KindSection:
		return 5
	case KindSubtopic:
		return 4
	case KindItem:
		return 3
	case KindText:
		return 2
	case KindCode:
		return 1
	}
	return 0
}

// Result represents one match of a query against the document tree.
type Result struct {
	SectionID   string   `json:"section_id"`
	DisplayText string   `json:"display_text"`
	Kind        Kind     `json:"kind"`
	SubtopicID  string   `json:"subtopic_id,omitempty"`
	Path        []string `json:"path"`
}

// Segment is a run of text that either matches the query or does not.
type Segment struct {
	Text  string `json:"text"`
	Match bool   `json:"match"`
}
