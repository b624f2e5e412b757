package cv2pdf

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"sync"

	"github.com/alnah/go-cv2pdf/internal/assets"
)

// DocumentOptions carries the inputs of a document that do not come from
// the data record.
type DocumentOptions struct {
	// CSS is inlined verbatim into a <style> element.
	CSS string

	// PhotoURI is a data URI from EmbedPhoto; empty means no photo.
	PhotoURI string

	// IncludeCertifications appends the certifications section. It is off
	// by default: the section is built but historically never shown.
	IncludeCertifications bool
}

type documentView struct {
	Lang           string
	Name           string
	CSS            template.CSS
	Header         template.HTML
	Skills         template.HTML
	Experience     template.HTML
	Education      template.HTML
	Projects       template.HTML
	Certifications template.HTML
}

var (
	defaultRendererOnce sync.Once
	defaultRenderer     *Renderer
	defaultRendererErr  error
)

// DefaultRenderer returns the renderer for the built-in templates.
func DefaultRenderer() (*Renderer, error) {
	defaultRendererOnce.Do(func() {
		defaultRenderer, defaultRendererErr = NewRenderer(assets.NewEmbeddedLoader())
	})
	return defaultRenderer, defaultRendererErr
}

// BuildDocument renders a complete HTML document for lang with the
// built-in templates. See Renderer.BuildDocument.
func BuildDocument(r *Resume, lang string, opts DocumentOptions) (string, error) {
	renderer, err := DefaultRenderer()
	if err != nil {
		return "", err
	}
	return renderer.BuildDocument(r, lang, opts)
}

// BuildDocument renders a complete HTML document for lang. The output
// depends only on its arguments: the same inputs give byte-identical HTML.
// Sections appear in a fixed order: header, skills, experience, education,
// projects, then certifications when enabled.
func (rd *Renderer) BuildDocument(r *Resume, lang string, opts DocumentOptions) (string, error) {
	if r == nil {
		return "", ErrNilResume
	}
	labels, err := LabelsFor(lang)
	if err != nil {
		return "", err
	}

	view := documentView{
		Lang: lang,
		Name: r.Meta.Name,
		CSS:  template.CSS(sanitizeCSS(opts.CSS)), // #nosec G203 -- user stylesheet, closing tags escaped
	}

	if view.Header, err = rd.buildHeader(r.Meta, lang, opts.PhotoURI); err != nil {
		return "", err
	}
	if view.Skills, err = rd.buildSkills(r.Skills, lang, labels); err != nil {
		return "", err
	}
	if view.Experience, err = rd.buildExperience(r.Experience, lang, labels); err != nil {
		return "", err
	}
	if view.Education, err = rd.buildEducation(r.Education, lang, labels); err != nil {
		return "", err
	}
	if view.Projects, err = rd.buildProjects(r.Projects, lang, labels); err != nil {
		return "", err
	}

	certs, err := rd.buildCertifications(r.Certifications, labels)
	if err != nil {
		return "", err
	}
	if opts.IncludeCertifications {
		view.Certifications = certs
	}

	var buf bytes.Buffer
	if err := rd.tmpl.ExecuteTemplate(&buf, assets.TemplateDocument, view); err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrTemplateRender, assets.TemplateDocument, err)
	}
	return buf.String(), nil
}

// sanitizeCSS escapes sequences that could close the <style> element.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}
