// Package cv2pdf renders a structured résumé into localized HTML documents
// and prints them to PDF with headless Chrome.
//
// # Quick Start
//
//	resume, err := cv2pdf.LoadResume("cv.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	css, err := cv2pdf.LoadStylesheet("style.css", nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	svc := cv2pdf.New(cv2pdf.WithTimeout(time.Minute))
//	defer svc.Close()
//
//	artifacts, err := svc.Generate(ctx, resume, cv2pdf.GenerateOptions{
//	    OutputDir: "output",
//	    Document:  cv2pdf.DocumentOptions{CSS: css},
//	})
//
// Each language produces output/cv_{lang}.html and output/cv_{lang}.pdf.
//
// # Pipeline
//
//  1. Data loading: YAML or TOML, checked against a JSON schema
//  2. Localization: every Localized field is resolved for the target language
//  3. Section fragments: header, skills, experience, education, projects,
//     certifications, each from an html/template
//  4. Assembly: fragments and the inlined stylesheet form one HTML document
//  5. PDF rendering from the written HTML file (go-rod or chromedp)
//
// Steps 2 to 4 are pure: BuildDocument returns identical bytes for identical
// inputs and never touches the filesystem.
//
// # Localized Fields
//
// A field is either plain text, shared by all languages, or a mapping from
// language code to text. A mapping without the requested language resolves
// to an empty string; there is no fallback language.
//
// # Bullet Text
//
// Descriptions use a small bullet syntax converted by ToListMarkup:
//
//	- Led the migration to Go
//	  across three services
//	  - Cut p99 latency by 40%
//
// renders as
//
//	<ul><li>Led the migration to Go across three services</li><li class="sub-item">Cut p99 latency by 40%</li></ul>
//
// # Browser Requirements
//
// The rod backend downloads a managed Chromium on first run unless
// ROD_BROWSER_BIN points at an installed one. The chromedp backend uses the
// system Chrome, or CHROME_PATH. Set ROD_NO_SANDBOX=1 in containers.
package cv2pdf
