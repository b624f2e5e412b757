package cv2pdf

import "fmt"

// Labels are the fixed strings of one output language.
type Labels struct {
	Skills         string
	Experience     string
	Education      string
	Projects       string
	Certifications string
	Present        string
}

var labelTable = map[string]Labels{
	"fr": {
		Skills:         "Compétences",
		Experience:     "Expérience professionnelle",
		Education:      "Formation",
		Projects:       "Projets",
		Certifications: "Certifications",
		Present:        "présent",
	},
	"en": {
		Skills:         "Skills",
		Experience:     "Work Experience",
		Education:      "Education",
		Projects:       "Projects",
		Certifications: "Certifications",
		Present:        "present",
	},
}

// SupportedLanguages returns the output languages in rendering order.
func SupportedLanguages() []string {
	return []string{"fr", "en"}
}

// LabelsFor returns the label set for lang.
func LabelsFor(lang string) (Labels, error) {
	l, ok := labelTable[lang]
	if !ok {
		return Labels{}, fmt.Errorf("%w: %q (supported: fr, en)", ErrUnsupportedLanguage, lang)
	}
	return l, nil
}
