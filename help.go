package getopt

import (
	"io"
	"strings"
	"text/template"

	"github.com/huandu/xstrings"
)

var descriptionTemplateString = `{{range .}}  {{.Signature}}{{.Description}}
{{else}}  None
{{end}}`

var descriptionTemplate *template.Template

func init() {
	descriptionTemplate = template.Must(
		template.New("description").Parse(descriptionTemplateString),
	)
}

type descriptionLine struct {
	Signature   string
	Description string
}

// Description returns the help text for the registered options, one line per
// option in registration order.
func (s *Set) Description() string {
	sb := strings.Builder{}
	s.WriteDescription(&sb)
	return sb.String()
}

// WriteDescription writes the help text returned by Description to w.
func (s *Set) WriteDescription(w io.Writer) error {
	lines := []descriptionLine{}
	for _, o := range s.registry.Options() {
		sig, desc := o.Describe()
		lines = append(lines, descriptionLine{
			Signature:   column(sig, s.helpWidth, s.helpGap),
			Description: desc,
		})
	}
	return descriptionTemplate.Execute(w, lines)
}

// column pads sig to width, or follows it with gap spaces when it does not
// leave room for the gap.
func column(sig string, width, gap int) string {
	if xstrings.Len(sig)+gap > width {
		return sig + strings.Repeat(" ", gap)
	}
	return xstrings.LeftJustify(sig, width, " ")
}
