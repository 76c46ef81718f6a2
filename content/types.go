package content

import "github.com/lixenwraith/scrollway/phase"

// Section is the static copy shown in the content pane for one phase
type Section struct {
	ID            string   `yaml:"id"`
	Title         string   `yaml:"title"`
	Banner        bool     `yaml:"banner,omitempty"`
	Description   string   `yaml:"description"`
	Subtitle      string   `yaml:"subtitle,omitempty"`
	TitleColor    string   `yaml:"title_color"`
	SubtitleColor string   `yaml:"subtitle_color"`
	Details       []string `yaml:"details,omitempty"`
}

// Link is a labelled URL used by the header and the final page
type Link struct {
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
}

// FinalPage is the content of the full-screen overlay
type FinalPage struct {
	Heading string `yaml:"heading"`
	Tagline string `yaml:"tagline"`
	Actions []Link `yaml:"actions"`
	Footer  string `yaml:"footer"`
}

// Header is the fixed chrome line above the scene
type Header struct {
	Logo  string `yaml:"logo"`
	Links []Link `yaml:"links"`
}

// Document bundles everything the frontends display
// Sections are indexed by phase order
type Document struct {
	Header   Header    `yaml:"header"`
	Sections []Section `yaml:"sections"`
	Final    FinalPage `yaml:"final"`
}

// Section returns the section shown for p
func (d *Document) Section(p phase.Phase) *Section {
	return &d.Sections[p.Index()]
}
