// Package docs defines the documentation tree (Section → Subtopic →
// ContentItem) and the flat legacy shape it is normalized from.
package docs

// DefaultCodeLanguage is the language tag used for code blocks that do not
// declare one.
const DefaultCodeLanguage = "typescript"

// ContentItem is a leaf unit of documentation content. Optional fields are
// empty when absent; an item with no content is legal and renders nothing.
type ContentItem struct {
	Subtitle     string   `yaml:"subtitle" json:"subtitle"`
	Text         string   `yaml:"text,omitempty" json:"text,omitempty"`
	Bullets      []string `yaml:"bullets,omitempty" json:"bullets,omitempty"`
	Code         string   `yaml:"code,omitempty" json:"code,omitempty"`
	Language     string   `yaml:"language,omitempty" json:"language,omitempty"`
	Image        string   `yaml:"image,omitempty" json:"image,omitempty"`
	ImageCaption string   `yaml:"image_caption,omitempty" json:"image_caption,omitempty"`
}

// HasCode reports whether the item carries a code block.
func (c ContentItem) HasCode() bool { return c.Code != "" }

// HasImage reports whether the item carries an image.
func (c ContentItem) HasImage() bool { return c.Image != "" }

// HasBullets reports whether the item carries a non-empty bullet list.
func (c ContentItem) HasBullets() bool { return len(c.Bullets) > 0 }

// CodeLanguage returns the declared language of the code block, or
// DefaultCodeLanguage when code is present without one.
func (c ContentItem) CodeLanguage() string {
	if !c.HasCode() {
		return ""
	}
	if c.Language == "" {
		return DefaultCodeLanguage
	}
	return c.Language
}

// Subtopic is a named group of items inside a Section.
type Subtopic struct {
	ID    string        `yaml:"id" json:"id"`
	Title string        `yaml:"title" json:"title"`
	Icon  string        `yaml:"icon,omitempty" json:"icon,omitempty"`
	Items []ContentItem `yaml:"items" json:"items"`
}

// Section is a top-level documentation topic. ID is globally unique and is
// the key the browsing surfaces use to address a section.
type Section struct {
	ID          string     `yaml:"id" json:"id"`
	Title       string     `yaml:"title" json:"title"`
	Description string     `yaml:"description,omitempty" json:"description,omitempty"`
	Icon        string     `yaml:"icon,omitempty" json:"icon,omitempty"`
	Subtopics   []Subtopic `yaml:"subtopics" json:"subtopics"`
}

// Subtopic returns the subtopic with the given id.
func (s Section) Subtopic(id string) (Subtopic, bool) {
	for _, st := range s.Subtopics {
		if st.ID == id {
			return st, true
		}
	}
	return Subtopic{}, false
}

// ItemCount returns the number of items across all subtopics.
func (s Section) ItemCount() int {
	n := 0
	for _, st := range s.Subtopics {
		n += len(st.Items)
	}
	return n
}

// LegacySection is the flat pre-normalization shape: items without any
// subtopic grouping.
type LegacySection struct {
	ID      string        `yaml:"id" json:"id"`
	Title   string        `yaml:"title" json:"title"`
	Content []ContentItem `yaml:"content" json:"content"`
}

// File is the on-disk document format. A file may carry hierarchical
// sections, legacy sections, or both.
type File struct {
	Sections []Section       `yaml:"sections,omitempty" json:"sections,omitempty"`
	Legacy   []LegacySection `yaml:"legacy,omitempty" json:"legacy,omitempty"`
}
