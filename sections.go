package cv2pdf

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/alnah/go-cv2pdf/internal/assets"
)

// itemSeparator joins skill items and project tags (U+00B7 middle dot).
const itemSeparator = " · "

// AssetLoader provides stylesheets and section templates by name.
type AssetLoader interface {
	LoadStyle(name string) (string, error)
	LoadTemplate(name string) (string, error)
}

// NewAssetLoader returns the built-in assets, overridden file by file by
// basePath when it is not empty.
func NewAssetLoader(basePath string) (AssetLoader, error) {
	return assets.NewAssetResolver(basePath)
}

// Renderer builds section fragments and complete documents from a parsed
// template set. It holds no per-document state and is safe for concurrent use.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer parses every section template from loader.
func NewRenderer(loader AssetLoader) (*Renderer, error) {
	root := template.New("cv")
	for _, name := range assets.TemplateNames() {
		content, err := loader.LoadTemplate(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrTemplateParse, name, err)
		}
		if _, err := root.New(name).Parse(content); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrTemplateParse, name, err)
		}
	}
	return &Renderer{tmpl: root}, nil
}

func (rd *Renderer) execute(name string, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := rd.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrTemplateRender, name, err)
	}
	return template.HTML(buf.String()), nil // #nosec G203 -- produced by html/template
}

type headerView struct {
	Name         string
	Title        string
	Summary      string
	Email        string
	EmailHref    string
	Phone        string
	Location     string
	LinkedIn     string
	LinkedInHref string
	GitHub       string
	GitHubHref   string
	Photo        template.URL
}

// webLink prefixes a stored host/path with https://. Values that already
// carry a scheme are kept.
func webLink(v string) string {
	if v == "" || strings.HasPrefix(v, "https://") || strings.HasPrefix(v, "http://") {
		return v
	}
	return "https://" + v
}

func (rd *Renderer) buildHeader(m Meta, lang, photoURI string) (template.HTML, error) {
	v := headerView{
		Name:         m.Name,
		Title:        m.Title.Resolve(lang),
		Summary:      strings.TrimSpace(m.Summary.Resolve(lang)),
		Email:        m.Email,
		Phone:        m.Phone,
		Location:     m.Location,
		LinkedIn:     m.LinkedIn,
		LinkedInHref: webLink(m.LinkedIn),
		GitHub:       m.GitHub,
		GitHubHref:   webLink(m.GitHub),
		Photo:        template.URL(photoURI), // #nosec G203 -- data URI built by EmbedPhoto
	}
	if m.Email != "" {
		v.EmailHref = "mailto:" + m.Email
	}
	return rd.execute(assets.TemplateHeader, v)
}

type skillGroupView struct {
	Category string
	Items    string
}

func (rd *Renderer) buildSkills(groups []SkillGroup, lang string, l Labels) (template.HTML, error) {
	views := make([]skillGroupView, 0, len(groups))
	for _, g := range groups {
		views = append(views, skillGroupView{
			Category: g.Category.Resolve(lang),
			Items:    strings.Join(g.Items, itemSeparator),
		})
	}
	return rd.execute(assets.TemplateSkills, struct {
		Title  string
		Groups []skillGroupView
	}{l.Skills, views})
}

type entryView struct {
	Title    string
	Org      string
	Location string
	Period   string
	Body     template.HTML
	Note     string
}

type entriesView struct {
	Title   string
	Entries []entryView
}

func (rd *Renderer) buildExperience(items []Experience, lang string, l Labels) (template.HTML, error) {
	views := make([]entryView, 0, len(items))
	for _, e := range items {
		views = append(views, entryView{
			Title:    e.Title.Resolve(lang),
			Org:      e.Company,
			Location: e.Location,
			Period:   FormatPeriod(e.Start.String(), e.End.String(), l.Present),
			Body:     template.HTML(ToListMarkup(e.Description.Resolve(lang))), // #nosec G203 -- text escaped by ToListMarkup
		})
	}
	return rd.execute(assets.TemplateExperience, entriesView{l.Experience, views})
}

func (rd *Renderer) buildEducation(items []Education, lang string, l Labels) (template.HTML, error) {
	views := make([]entryView, 0, len(items))
	for _, e := range items {
		views = append(views, entryView{
			Title:    e.Degree.Resolve(lang),
			Org:      e.Institution,
			Location: e.Location,
			Period:   FormatPeriod(e.Start.String(), e.End.String(), l.Present),
			Body:     template.HTML(ToListMarkup(e.Description.Resolve(lang))), // #nosec G203 -- text escaped by ToListMarkup
			Note:     strings.TrimSpace(e.Note.Resolve(lang)),
		})
	}
	return rd.execute(assets.TemplateEducation, entriesView{l.Education, views})
}

type projectView struct {
	Title  string
	URL    string
	Period string
	Body   string
	Tags   string
}

func (rd *Renderer) buildProjects(items []Project, lang string, l Labels) (template.HTML, error) {
	views := make([]projectView, 0, len(items))
	for _, p := range items {
		views = append(views, projectView{
			Title:  p.Title,
			URL:    p.URL,
			Period: FormatPeriod(p.Start.String(), p.End.String(), l.Present),
			Body:   strings.TrimSpace(p.Description.Resolve(lang)),
			Tags:   strings.Join(p.Tags, itemSeparator),
		})
	}
	return rd.execute(assets.TemplateProjects, struct {
		Title   string
		Entries []projectView
	}{l.Projects, views})
}

func (rd *Renderer) buildCertifications(items []Certification, l Labels) (template.HTML, error) {
	return rd.execute(assets.TemplateCertifications, struct {
		Title   string
		Entries []Certification
	}{l.Certifications, items})
}
