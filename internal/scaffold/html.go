package scaffold

import (
	"github.com/frsk-dev/devhub/internal/project"
)

// CSS frameworks in priority order. The first selected one wins.
var htmlFrameworks = []project.Flag{
	project.FlagTailwind,
	project.FlagBootstrap,
	project.FlagSass,
}

var htmlFragments = []fragment{
	{slot: "meta", when: project.FlagSEO, src: "html/fragments/meta-seo.html"},
	{slot: "meta", when: project.FlagSocial, src: "html/fragments/meta-social.html.tmpl"},
	// The reset must load before any framework stylesheet.
	{slot: "imports", when: project.FlagNormalize, src: "html/fragments/import-normalize.html"},
	{slot: "imports", when: project.FlagBootstrap, src: "html/fragments/import-bootstrap.html"},
}

var sassPartials = []struct{ dst, src string }{
	{"scss/components/_buttons.scss", "html/sass/buttons.scss"},
	{"scss/components/_forms.scss", "html/sass/forms.scss"},
	{"scss/layouts/_header.scss", "html/sass/header.scss"},
	{"scss/layouts/_footer.scss", "html/sass/footer.scss"},
}

// htmlFeatures keeps only the winning CSS framework so that lower-priority
// framework fragments can never leak into the output.
func htmlFeatures(opts project.FeatureOptions) project.FeatureOptions {
	framework := project.FlagPureCSS
	for _, f := range htmlFrameworks {
		if opts.Enabled(f) {
			framework = f
			break
		}
	}
	flags := []project.Flag{framework}
	for _, f := range []project.Flag{project.FlagSEO, project.FlagSocial, project.FlagNormalize} {
		if opts.Enabled(f) {
			flags = append(flags, f)
		}
	}
	return project.NewFeatureOptions(flags...)
}

// GenerateHTML plans a static website.
func GenerateHTML(dir string, opts project.FeatureOptions, env Env) (*Plan, error) {
	opts = htmlFeatures(opts)
	b := newBuilder(project.TemplateHTML, dir, opts, env)
	b.fragments(htmlFragments)

	tailwind := opts.Enabled(project.FlagTailwind)
	sass := opts.Enabled(project.FlagSass)

	switch {
	case tailwind:
		b.mkdir("src", "dist")
		b.manifest(&PackageManifest{
			Name:    b.data.Name,
			Version: "1.0.0",
			Scripts: map[string]string{
				"dev":   "tailwindcss -i ./src/styles.css -o ./dist/styles.css --watch",
				"build": "tailwindcss -i ./src/styles.css -o ./dist/styles.css --minify",
			},
			DevDependencies: map[string]string{"tailwindcss": "^3.3.0"},
		})
		b.file("tailwind.config.js", "html/tailwind/tailwind.config.js")
		b.file("src/styles.css", "html/tailwind/styles.css")
		b.install()

	case sass:
		b.mkdir("scss", "scss/components", "scss/layouts")
		b.file("scss/main.scss", "html/sass/main.scss")
		for _, p := range sassPartials {
			b.file(p.dst, p.src)
		}
		b.manifest(&PackageManifest{
			Name:    b.data.Name,
			Version: "1.0.0",
			Scripts: map[string]string{
				"sass":       "sass scss/main.scss css/styles.css --watch",
				"sass:build": "sass scss/main.scss css/styles.css --style compressed",
			},
			DevDependencies: map[string]string{"sass": "^1.69.5"},
		})
		b.file("README.md", "html/sass/README.md.tmpl")
	}

	if !tailwind || opts.Enabled(project.FlagNormalize) {
		b.mkdir("css")
	}
	b.mkdir("js", "images")

	if opts.Enabled(project.FlagNormalize) {
		b.file("css/normalize.css", "html/normalize.css")
	}

	if tailwind {
		b.file("index.html", "html/index-tailwind.html.tmpl")
	} else {
		b.file("index.html", "html/index.html.tmpl")
	}

	// Sass compiles css/styles.css itself.
	switch {
	case opts.Enabled(project.FlagBootstrap):
		b.file("css/styles.css", "html/styles-bootstrap.css")
	case opts.Enabled(project.FlagPureCSS):
		b.file("css/styles.css", "html/styles.css")
	}
	b.file("js/main.js", "html/main.js")

	switch {
	case tailwind:
		b.run("Building Tailwind CSS...", "npx", "tailwindcss", "-i", "./src/styles.css", "-o", "./dist/styles.css")
	case sass:
		b.install()
		b.run("Compiling Sass...", b.env.packageManager(), "run", "sass:build")
	}

	return b.build()
}
