package render

import (
	"html/template"
	"strings"
)

const (
	headingOpen  = "<strong style='font-size:1.1em;'>"
	headingClose = "</strong>"
	listOpen     = "<ul style='margin:0 0 0 18px;'>"
	listClose    = "</ul>"
)

// Markup turns the AI's lightly formatted answer into HTML in one pass over
// its lines. Text is escaped; unmatched markers are kept as literal text.
//
//	## heading   -> bold heading up to the end of the line
//	**x**        -> <b>x</b>, paired left to right within a line
//	* item       -> <li>, consecutive items share one <ul>
//	newline      -> <br>, so a blank line gives <br><br>
func Markup(text string) template.HTML {
	text = strings.ReplaceAll(text, "\r", "")

	var b strings.Builder
	inList := false
	for i, line := range strings.Split(text, "\n") {
		if item, ok := strings.CutPrefix(line, "* "); ok {
			if !inList {
				b.WriteString(listOpen)
				inList = true
			}
			b.WriteString("<li>")
			writeInline(&b, item)
			b.WriteString("</li>")
			continue
		}

		if inList {
			b.WriteString(listClose)
			inList = false
		} else if i > 0 {
			b.WriteString("<br>")
		}

		if heading, ok := strings.CutPrefix(line, "## "); ok {
			b.WriteString(headingOpen)
			writeInline(&b, heading)
			b.WriteString(headingClose)
			continue
		}
		writeInline(&b, line)
	}
	if inList {
		b.WriteString(listClose)
	}

	return template.HTML(b.String())
}

// writeInline escapes s and converts closed ** pairs to bold.
func writeInline(b *strings.Builder, s string) {
	for {
		open := strings.Index(s, "**")
		if open < 0 {
			break
		}
		closing := strings.Index(s[open+2:], "**")
		if closing < 0 {
			break
		}
		closing += open + 2

		b.WriteString(template.HTMLEscapeString(s[:open]))
		b.WriteString("<b>")
		b.WriteString(template.HTMLEscapeString(s[open+2 : closing]))
		b.WriteString("</b>")
		s = s[closing+2:]
	}
	b.WriteString(template.HTMLEscapeString(s))
}
