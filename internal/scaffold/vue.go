package scaffold

import (
	"github.com/frsk-dev/devhub/internal/project"
)

// Pinia is installed before the router.
var vueFragments = []fragment{
	{slot: "imports", when: project.FlagPinia, src: "vue/fragments/pinia-import.js"},
	{slot: "imports", when: project.FlagRouter, src: "vue/fragments/router-import.js"},
	{slot: "plugins", when: project.FlagPinia, src: "vue/fragments/pinia-use.js"},
	{slot: "plugins", when: project.FlagRouter, src: "vue/fragments/router-use.js"},
}

var vuePatches = []manifestPatch{
	{
		when:    project.FlagTypeScript,
		scripts: map[string]string{"build": "vue-tsc && vite build"},
		devDependencies: map[string]string{
			"typescript":  "^5.0.2",
			"@types/node": "^18.14.2",
			"vue-tsc":     "^1.8.5",
		},
	},
	{
		when:         project.FlagRouter,
		dependencies: map[string]string{"vue-router": "^4.2.4"},
	},
	{
		when:         project.FlagPinia,
		dependencies: map[string]string{"pinia": "^2.1.6"},
	},
	{
		when:    project.FlagTesting,
		scripts: map[string]string{"test": "vitest"},
		devDependencies: map[string]string{
			"vitest":          "^0.34.4",
			"@vue/test-utils": "^2.4.1",
			"jsdom":           "^22.1.0",
		},
	},
}

// GenerateVue plans a Vue 3 + Vite application. The install step only runs
// when env.InstallVue is set.
func GenerateVue(dir string, opts project.FeatureOptions, env Env) (*Plan, error) {
	b := newBuilder(project.TemplateVue, dir, opts, env)
	if opts.Enabled(project.FlagTypeScript) {
		b.data.Ext = "ts"
	}
	ext := b.data.Ext
	b.fragments(vueFragments)

	m := &PackageManifest{
		Name:    b.data.Name,
		Version: "1.0.0",
		Private: true,
		Scripts: map[string]string{
			"dev":     "vite",
			"build":   "vite build",
			"preview": "vite preview",
		},
		Dependencies: map[string]string{"vue": "^3.3.4"},
		DevDependencies: map[string]string{
			"@vitejs/plugin-vue": "^4.3.4",
			"vite":               "^4.4.9",
		},
	}
	m.apply(opts, vuePatches)

	b.mkdir("src", "src/assets", "src/components")
	if opts.Enabled(project.FlagRouter) {
		b.mkdir("src/views", "src/router")
	}
	if opts.Enabled(project.FlagPinia) {
		b.mkdir("src/stores")
	}
	b.mkdir("public")

	b.manifest(m)
	b.file("vite.config."+ext, "vue/vite.config.tmpl")
	b.file("src/main."+ext, "vue/main.tmpl")
	b.file("src/App.vue", "vue/App.vue.tmpl")
	b.file("src/components/HelloWorld.vue", "vue/HelloWorld.vue.tmpl")

	if opts.Enabled(project.FlagRouter) {
		b.file("src/router/index."+ext, "vue/router.tmpl")
		b.file("src/views/HomeView.vue", "vue/HomeView.vue.tmpl")
		b.file("src/views/AboutView.vue", "vue/AboutView.vue.tmpl")
	}
	if opts.Enabled(project.FlagTypeScript) {
		b.file("tsconfig.json", "vue/tsconfig.json")
		b.file("env.d.ts", "vue/env.d.ts")
	}

	b.file("src/assets/main.css", "vue/main.css")
	b.file("src/assets/base.css", "vue/base.css")
	b.file("index.html", "vue/index.html.tmpl")
	b.file(".gitignore", "vue/gitignore")

	if env.InstallVue {
		b.install()
	}

	return b.build()
}
