package scaffold

import (
	"github.com/frsk-dev/devhub/internal/project"
)

// GenerateReact plans a React application. It has no feature flags.
func GenerateReact(dir string, opts project.FeatureOptions, env Env) (*Plan, error) {
	b := newBuilder(project.TemplateReact, dir, opts, env)

	b.mkdir("src", "public")
	b.file("src/App.js", "react/App.js")
	b.file("src/App.css", "react/App.css")
	b.file("src/index.js", "react/index.js")
	b.file("src/index.css", "react/index.css")
	b.file("public/index.html", "react/index.html.tmpl")
	b.file("public/robots.txt", "react/robots.txt")
	b.file(".gitignore", "react/gitignore")
	b.file("README.md", "react/README.md.tmpl")
	b.manifest(&PackageManifest{
		Name:    b.data.Name,
		Version: "1.0.0",
		Dependencies: map[string]string{
			"react":         "^18.2.0",
			"react-dom":     "^18.2.0",
			"react-scripts": "^5.0.1",
		},
		Scripts: map[string]string{
			"start": "react-scripts start",
			"build": "react-scripts build",
			"test":  "react-scripts test",
			"eject": "react-scripts eject",
		},
		Browserslist: map[string][]string{
			"production":  {">0.2%", "not dead", "not op_mini all"},
			"development": {"last 1 chrome version", "last 1 firefox version", "last 1 safari version"},
		},
	})
	b.install()

	return b.build()
}
