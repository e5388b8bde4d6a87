package scaffold

import (
	"github.com/frsk-dev/devhub/internal/project"
)

var electronFragments = []fragment{
	{slot: "imports", when: project.FlagAutoUpdater, src: "electron/fragments/updater-import.js"},
	{slot: "window", when: project.FlagFrameless, src: "electron/fragments/frameless.js"},
	{slot: "ready", when: project.FlagAutoUpdater, src: "electron/fragments/updater-check.js"},
	{slot: "events", when: project.FlagAutoUpdater, src: "electron/fragments/updater-events.js"},
	{slot: "events", when: project.FlagCustomTitlebar, src: "electron/fragments/titlebar-ipc.js"},
	{slot: "head", when: project.FlagCustomTitlebar, src: "electron/fragments/titlebar-styles.html"},
	{slot: "body", when: project.FlagCustomTitlebar, src: "electron/fragments/titlebar.html.tmpl"},
	{slot: "readme", when: project.FlagAutoUpdater, src: "electron/fragments/readme-updater.md"},
	{slot: "readme", when: project.FlagCustomTitlebar, src: "electron/fragments/readme-titlebar.md"},
	{slot: "readme", when: project.FlagInstaller, src: "electron/fragments/readme-installer.md"},
}

var electronPatches = []manifestPatch{
	{
		when:         project.FlagAutoUpdater,
		dependencies: map[string]string{"electron-updater": "^6.1.7"},
		build: map[string]any{
			// Placeholders; the user points these at their own repository.
			"publish": map[string]string{
				"provider": "github",
				"owner":    "YourUsername",
				"repo":     "YourRepo",
			},
		},
	},
	{
		when: project.FlagInstaller,
		build: map[string]any{
			"win": map[string]any{"target": []string{"nsis"}},
			"mac": map[string]any{"target": []string{"dmg"}},
			"nsis": map[string]any{
				"oneClick":                           false,
				"allowToChangeInstallationDirectory": true,
			},
		},
	},
}

// GenerateElectron plans an Electron desktop application.
func GenerateElectron(dir string, opts project.FeatureOptions, env Env) (*Plan, error) {
	b := newBuilder(project.TemplateElectron, dir, opts, env)
	b.fragments(electronFragments)

	m := &PackageManifest{
		Name:        b.data.Name,
		Version:     "1.0.0",
		Description: "Electron application created with DevHub",
		Main:        "main.js",
		Scripts: map[string]string{
			"start": "electron .",
			"build": "electron-builder",
		},
		Dependencies:    map[string]string{"electron": "^27.0.0"},
		DevDependencies: map[string]string{"electron-builder": "^24.13.3"},
	}
	m.apply(opts, electronPatches)

	b.file("main.js", "electron/main.js.tmpl")
	b.file("index.html", "electron/index.html.tmpl")
	b.file("README.md", "electron/README.md.tmpl")
	b.manifest(m)
	b.file(".gitignore", "electron/gitignore")
	b.install()

	return b.build()
}
