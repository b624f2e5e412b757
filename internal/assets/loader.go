package assets

// DefaultStyleName is the built-in stylesheet.
const DefaultStyleName = "classic"

// Section template names, in the order the document template consumes them.
const (
	TemplateHeader         = "header"
	TemplateSkills         = "skills"
	TemplateExperience     = "experience"
	TemplateEducation      = "education"
	TemplateProjects       = "projects"
	TemplateCertifications = "certifications"
	TemplateDocument       = "document"
)

// TemplateNames lists every template a complete template set provides.
func TemplateNames() []string {
	return []string{
		TemplateHeader,
		TemplateSkills,
		TemplateExperience,
		TemplateEducation,
		TemplateProjects,
		TemplateCertifications,
		TemplateDocument,
	}
}

// AssetLoader defines the contract for loading stylesheets and templates.
type AssetLoader interface {
	// LoadStyle loads a stylesheet by name (without .css extension).
	// Returns ErrStyleNotFound if the style doesn't exist.
	LoadStyle(name string) (string, error)

	// LoadTemplate loads a section template by name (without .html extension).
	// Returns ErrTemplateNotFound if the template doesn't exist.
	LoadTemplate(name string) (string, error)
}
