package cv2pdf

import (
	"errors"
	"strings"
	"testing"

	"github.com/alnah/go-cv2pdf/internal/assets"
)

func TestWebLink(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"linkedin.com/in/ada", "https://linkedin.com/in/ada"},
		{"https://github.com/ada", "https://github.com/ada"},
		{"http://example.com", "http://example.com"},
	}
	for _, tt := range tests {
		if got := webLink(tt.in); got != tt.want {
			t.Errorf("webLink(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNewRenderer_CustomTemplates(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "templates/skills.html",
		`<section class="skills-custom"><h2>{{.Title}}</h2>{{range .Groups}}<p>{{.Category}}</p>{{end}}</section>`)

	loader, err := NewAssetLoader(dir)
	if err != nil {
		t.Fatal(err)
	}
	rd, err := NewRenderer(loader)
	if err != nil {
		t.Fatalf("NewRenderer() error = %v", err)
	}

	doc, err := rd.BuildDocument(loadFixture(t), "en", DocumentOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(doc, `<section class="skills-custom"><h2>Skills</h2><p>Languages</p><p>Tools</p></section>`) {
		t.Error("custom skills template not used")
	}
	// Other sections still come from the built-in set.
	if !strings.Contains(doc, `class="experience"`) {
		t.Error("built-in experience template missing")
	}
}

type templateLoader map[string]string

func (l templateLoader) LoadStyle(string) (string, error) { return "", errors.New("no styles") }

func (l templateLoader) LoadTemplate(name string) (string, error) {
	if s, ok := l[name]; ok {
		return s, nil
	}
	return assets.NewEmbeddedLoader().LoadTemplate(name)
}

func TestNewRenderer_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		loader AssetLoader
	}{
		{"missing template", stubLoader{}},
		{"syntax error", templateLoader{assets.TemplateSkills: "{{range .Groups}"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if _, err := NewRenderer(tt.loader); !errors.Is(err, ErrTemplateParse) {
				t.Errorf("NewRenderer() error = %v, want ErrTemplateParse", err)
			}
		})
	}
}

func TestRenderer_ExecuteError(t *testing.T) {
	t.Parallel()

	rd, err := NewRenderer(templateLoader{assets.TemplateSkills: "{{.Missing.Field}}"})
	if err != nil {
		t.Fatal(err)
	}
	_, err = rd.BuildDocument(&Resume{Meta: Meta{Name: "x"}}, "en", DocumentOptions{})
	if !errors.Is(err, ErrTemplateRender) {
		t.Errorf("BuildDocument() error = %v, want ErrTemplateRender", err)
	}
}

func TestBuildSkills_Separator(t *testing.T) {
	t.Parallel()

	rd, err := DefaultRenderer()
	if err != nil {
		t.Fatal(err)
	}
	labels, _ := LabelsFor("fr")
	out, err := rd.buildSkills([]SkillGroup{
		{Category: Variants(map[string]string{"fr": "Outils"}), Items: []string{"Git", "Make"}},
	}, "fr", labels)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(out), "<h2>Compétences</h2>") || !strings.Contains(string(out), "Git · Make") {
		t.Errorf("buildSkills() = %s", out)
	}
}
