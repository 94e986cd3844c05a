package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/asclient/asclient/internal/cli/errors"
	"github.com/asclient/asclient/internal/domain/protocol"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
)

type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

type Formatter struct {
	format OutputFormat
	color  bool
	out    io.Writer
}

func NewFormatter(out io.Writer, format OutputFormat, useColor bool) *Formatter {
	return &Formatter{
		format: format,
		color:  useColor,
		out:    out,
	}
}

// JSON reports whether the formatter writes JSON.
func (f *Formatter) JSON() bool {
	return f.format == FormatJSON
}

// Value writes v as indented JSON.
func (f *Formatter) Value(v any) error {
	return f.writeJSON(v)
}

func (f *Formatter) writeJSON(v any) error {
	enc := json.NewEncoder(f.out)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

func (f *Formatter) paint(fn func(string, ...interface{}) string, format string, args ...any) string {
	if f.color {
		return fn(format, args...)
	}
	return fmt.Sprintf(format, args...)
}

func (f *Formatter) FormatError(err errors.ClassifiedError) string {
	if f.format == FormatJSON {
		data, _ := json.MarshalIndent(err, "", "  ")
		return string(data)
	}

	msg := f.paint(color.RedString, "Error [%s]: %s", err.Kind, err.Message)
	if err.Hint != "" {
		msg += "\n" + f.paint(color.YellowString, "Hint: %s", err.Hint)
	}
	return msg
}

// Document writes an already encoded protocol document, indented in text mode
// and as-is in JSON mode.
func (f *Formatter) Document(data []byte) error {
	if f.format == FormatJSON {
		_, err := fmt.Fprintln(f.out, string(data))
		return err
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	return f.writeJSON(v)
}

func (f *Formatter) FormatVocabularies(vocabs []*protocol.Vocabulary) error {
	if f.format == FormatJSON {
		type entry struct {
			Name   string `json:"name"`
			Open   bool   `json:"open"`
			Tokens int    `json:"tokens"`
		}
		entries := make([]entry, 0, len(vocabs))
		for _, v := range vocabs {
			entries = append(entries, entry{Name: v.Name, Open: v.Open, Tokens: len(v.Tokens())})
		}
		return f.writeJSON(entries)
	}

	table := tablewriter.NewTable(f.out,
		tablewriter.WithHeader([]string{"Vocabulary", "Open", "Tokens"}),
	)
	for _, v := range vocabs {
		open := ""
		if v.Open {
			open = "yes"
		}
		table.Append([]string{v.Name, open, strconv.Itoa(len(v.Tokens()))})
	}
	return table.Render()
}

func (f *Formatter) FormatTokens(v *protocol.Vocabulary) error {
	if f.format == FormatJSON {
		return f.writeJSON(v.Tokens())
	}

	table := tablewriter.NewTable(f.out,
		tablewriter.WithHeader([]string{"Token", "Notes"}),
	)
	for _, t := range v.Tokens() {
		table.Append([]string{t.Value, t.Doc})
	}
	return table.Render()
}
