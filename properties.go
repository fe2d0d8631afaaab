package tabwalk

import (
	"errors"
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

// Properties configures table-level rendering behavior. The zero value is
// not useful; start from [DefaultProperties] or [LoadProperties].
type Properties struct {
	// ShowHeader enables the table header callback.
	ShowHeader bool `yaml:"show_header"`

	// EmptyListShowTable renders the table structure even when the row
	// collection is empty. When false an empty table emits only the
	// empty-list message.
	EmptyListShowTable bool `yaml:"empty_list_show_table"`

	// ExportFullList makes non-HTML media walk the full, unpaged row
	// collection instead of the current page.
	ExportFullList bool `yaml:"export_full_list"`

	// EmptyListMessage is emitted when the table is empty and hidden.
	EmptyListMessage string `yaml:"empty_list_message"`

	// EmptyListRowMessage is the body-row message template for an empty
	// collection. It carries one %d slot for the configured column count.
	EmptyListRowMessage string `yaml:"empty_list_row_message"`

	// Locale is a BCP 47 tag used when formatting messages. Unparseable
	// tags fall back to English.
	Locale string `yaml:"locale"`
}

// DefaultProperties returns the stock configuration: headers on, empty
// tables hidden, page-only export, English messages.
func DefaultProperties() Properties {
	return Properties{
		ShowHeader:          true,
		EmptyListShowTable:  false,
		ExportFullList:      false,
		EmptyListMessage:    "Nothing found to display.",
		EmptyListRowMessage: "Nothing found to display. Spanning %d columns.",
		Locale:              "en",
	}
}

// LoadProperties reads YAML-encoded properties from r. Absent fields keep
// their defaults; empty input yields [DefaultProperties].
func LoadProperties(r io.Reader) (Properties, error) {
	p := DefaultProperties()
	if err := yaml.NewDecoder(r).Decode(&p); err != nil {
		if errors.Is(err, io.EOF) {
			return p, nil
		}
		return Properties{}, err
	}
	return p, nil
}

// emptyRowMessage formats the empty-row template with the column count,
// using the configured locale for number formatting.
func (p Properties) emptyRowMessage(columns int) string {
	tag, err := language.Parse(p.Locale)
	if err != nil {
		tag = language.English
	}
	return message.NewPrinter(tag).Sprintf(p.EmptyListRowMessage, columns)
}
