package cv2pdf

import (
	"html"
	"regexp"
	"strings"
)

var (
	topBullet = regexp.MustCompile(`^[-*]\s`)
	subBullet = regexp.MustCompile(`^\s\s[-*]\s`)
)

type bullet struct {
	text string
	sub  bool
}

// ToListMarkup converts bullet text into a <ul> list.
//
// Lines starting with "- " or "* " open a top-level item; lines indented by
// two whitespace characters before the marker open a sub-item, rendered as a
// sibling <li class="sub-item">. Any other non-blank line continues the
// previous item. A continuation before the first marker opens a top-level
// item of its own. Item text is HTML-escaped.
func ToListMarkup(text string) string {
	var items []bullet

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, " \t\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		switch {
		case topBullet.MatchString(line):
			items = append(items, bullet{text: strings.TrimSpace(line[2:])})
		case subBullet.MatchString(line):
			items = append(items, bullet{text: strings.TrimSpace(line[4:]), sub: true})
		case len(items) == 0:
			items = append(items, bullet{text: strings.TrimSpace(line)})
		default:
			last := &items[len(items)-1]
			last.text = strings.TrimSpace(last.text + " " + strings.TrimSpace(line))
		}
	}

	var b strings.Builder
	b.WriteString("<ul>")
	for _, it := range items {
		if it.sub {
			b.WriteString(`<li class="sub-item">`)
		} else {
			b.WriteString("<li>")
		}
		b.WriteString(html.EscapeString(it.text))
		b.WriteString("</li>")
	}
	b.WriteString("</ul>")
	return b.String()
}
