// Package assets provides the stylesheets and section templates used to
// render a résumé.
//
// Loaders:
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - built-in styles and templates (go:embed)
//	    ├── FilesystemLoader  - a custom directory on disk
//	    └── AssetResolver     - custom first, embedded fallback
//
// A custom directory mirrors the embedded layout, so a user can override a
// single template (for example only the header) and keep the rest:
//
//	{basePath}/
//	├── styles/
//	│   └── {name}.css
//	└── templates/
//	    └── {section}.html
//
// Asset names are validated to prevent path traversal, and FilesystemLoader
// resolves symlinks before checking that a path stays inside basePath.
package assets
