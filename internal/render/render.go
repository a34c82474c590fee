// Package render formats conjugation results for humans and machines.
package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"gopkg.in/yaml.v3"

	"github.com/ppiankov/akkad/internal/model"
	"github.com/ppiankov/akkad/internal/worker"
)

// Format selects an output encoding
type Format string

const (
	FormatText     Format = "text"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatMarkdown Format = "markdown"
)

// Formats lists every supported format
var Formats = []Format{FormatText, FormatJSON, FormatYAML, FormatMarkdown}

// ErrUnknownFormat is returned for a format name outside Formats
var ErrUnknownFormat = errors.New("unknown output format")

// ParseFormat maps a name (case-insensitive, "md" and "yml" accepted) to a Format
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "text", "txt":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	default:
		return "", fmt.Errorf("%q: %w", name, ErrUnknownFormat)
	}
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	dimStyle   = lipgloss.NewStyle().Faint(true)
)

// Renderer writes results in one format
type Renderer struct {
	format Format
}

// NewRenderer creates a renderer for format
func NewRenderer(format Format) *Renderer {
	return &Renderer{format: format}
}

// Format returns the renderer's output format
func (r *Renderer) Format() Format {
	return r.format
}

// Conjugated writes one finished paradigm
func (r *Renderer) Conjugated(w io.Writer, cv *model.ConjugatedVerb) error {
	switch r.format {
	case FormatJSON:
		return writeJSON(w, cv)
	case FormatYAML:
		return writeYAML(w, cv)
	case FormatMarkdown:
		_, err := io.WriteString(w, Markdown(cv))
		return err
	case FormatText:
		_, err := io.WriteString(w, Text(cv))
		return err
	default:
		return fmt.Errorf("%q: %w", r.format, ErrUnknownFormat)
	}
}

// Entry writes a raw dictionary entry
func (r *Renderer) Entry(w io.Writer, verb string, e *model.Entry) error {
	switch r.format {
	case FormatJSON:
		return writeJSON(w, map[string]*model.Entry{verb: e})
	case FormatYAML:
		return writeYAML(w, map[string]*model.Entry{verb: e})
	case FormatMarkdown:
		_, err := io.WriteString(w, entryMarkdown(verb, e))
		return err
	case FormatText:
		_, err := io.WriteString(w, entryText(verb, e))
		return err
	default:
		return fmt.Errorf("%q: %w", r.format, ErrUnknownFormat)
	}
}

// batchItem is the machine-readable shape of one batch result
type batchItem struct {
	Verb       string                `json:"verb" yaml:"verb"`
	Conjugated *model.ConjugatedVerb `json:"conjugated,omitempty" yaml:"conjugated,omitempty"`
	Error      string                `json:"error,omitempty" yaml:"error,omitempty"`
}

// Batch writes every result of a batch run in input order
func (r *Renderer) Batch(w io.Writer, results []*worker.ConjugateResult) error {
	switch r.format {
	case FormatJSON, FormatYAML:
		items := make([]batchItem, len(results))
		for i, res := range results {
			items[i] = batchItem{Verb: res.Verb, Conjugated: res.Conjugated}
			if res.Error != nil {
				items[i].Error = res.Error.Error()
			}
		}
		if r.format == FormatJSON {
			return writeJSON(w, items)
		}
		return writeYAML(w, items)
	case FormatText, FormatMarkdown:
		for i, res := range results {
			if i > 0 {
				if _, err := io.WriteString(w, "\n"); err != nil {
					return err
				}
			}
			if res.Error != nil {
				if _, err := fmt.Fprintf(w, "✗ %s: %v\n", res.Verb, res.Error); err != nil {
					return err
				}
				continue
			}
			if err := r.Conjugated(w, res.Conjugated); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("%q: %w", r.format, ErrUnknownFormat)
	}
}

// Text renders a paradigm as a terminal table
func Text(cv *model.ConjugatedVerb) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(cv.Verb))
	b.WriteString(dimStyle.Render(fmt.Sprintf("  (%s, %s)", cv.Stem, stemFamily(cv))))
	b.WriteString("\n")
	if cv.Source != nil {
		if len(cv.Source.Meaning) > 0 {
			fmt.Fprintf(&b, "meaning: %s\n", strings.Join(cv.Source.Meaning, "; "))
		}
		fmt.Fprintf(&b, "root: %s  theme vowel: %c  adjectival vowel: %c\n",
			cv.Source.Root, cv.Source.Phonetics.ThemeVowel, cv.Source.Phonetics.AdjectivalVowel)
	}
	b.WriteString("\n")

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Person", "", "Preterite")
	for _, p := range model.Persons {
		t.Row(p.String(), p.Label(), cv.Preterite.At(p))
	}
	b.WriteString(t.String())
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "verbal adjective: %s (m.)  %s (f.)\n", cv.Adjective.Masculine, cv.Adjective.Feminine)
	return b.String()
}

// Markdown renders a paradigm as a Markdown section
func Markdown(cv *model.ConjugatedVerb) string {
	var b strings.Builder

	fmt.Fprintf(&b, "## %s\n\n", cv.Verb)
	fmt.Fprintf(&b, "- **Stem:** %s (%s)\n", stemFamily(cv), cv.Stem)
	if cv.Source != nil {
		fmt.Fprintf(&b, "- **Root:** %s\n", cv.Source.Root)
		fmt.Fprintf(&b, "- **Type:** %s\n", cv.Source.Type)
		if len(cv.Source.Meaning) > 0 {
			fmt.Fprintf(&b, "- **Meaning:** %s\n", strings.Join(cv.Source.Meaning, "; "))
		}
	}

	b.WriteString("\n### Preterite\n\n")
	b.WriteString("| Person | | Form |\n")
	b.WriteString("|--------|---|------|\n")
	for _, p := range model.Persons {
		fmt.Fprintf(&b, "| %s | %s | %s |\n", p, p.Label(), cv.Preterite.At(p))
	}

	b.WriteString("\n### Verbal adjective\n\n")
	fmt.Fprintf(&b, "| Masculine | Feminine |\n|---|---|\n| %s | %s |\n",
		cv.Adjective.Masculine, cv.Adjective.Feminine)
	return b.String()
}

func entryText(verb string, e *model.Entry) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(verb))
	b.WriteString("\n")
	fmt.Fprintf(&b, "  transcription:    %s\n", e.Transcription)
	fmt.Fprintf(&b, "  type:             %s\n", e.Type)
	fmt.Fprintf(&b, "  stem:             %s\n", e.Stem)
	fmt.Fprintf(&b, "  root:             %s\n", strings.Join(e.Root, "-"))
	fmt.Fprintf(&b, "  theme vowel:      %s\n", e.ThemeVowel)
	fmt.Fprintf(&b, "  adjectival vowel: %s\n", e.AdjectivalVowel)
	fmt.Fprintf(&b, "  meaning:          %s\n", strings.Join(e.Meaning, "; "))
	return b.String()
}

func entryMarkdown(verb string, e *model.Entry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n\n", verb)
	b.WriteString("| Field | Value |\n|---|---|\n")
	fmt.Fprintf(&b, "| transcription | %s |\n", e.Transcription)
	fmt.Fprintf(&b, "| type | %s |\n", e.Type)
	fmt.Fprintf(&b, "| stem | %s |\n", e.Stem)
	fmt.Fprintf(&b, "| root | %s |\n", strings.Join(e.Root, "-"))
	fmt.Fprintf(&b, "| theme vowel | %s |\n", e.ThemeVowel)
	fmt.Fprintf(&b, "| adjectival vowel | %s |\n", e.AdjectivalVowel)
	fmt.Fprintf(&b, "| meaning | %s |\n", strings.Join(e.Meaning, "; "))
	return b.String()
}

func stemFamily(cv *model.ConjugatedVerb) string {
	if cv.Source == nil || cv.Source.StemFamily == "" {
		return model.GStem
	}
	return cv.Source.StemFamily
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode JSON: %w", err)
	}
	return nil
}

func writeYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode YAML: %w", err)
	}
	return enc.Close()
}
