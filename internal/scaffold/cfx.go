package scaffold

import (
	"github.com/frsk-dev/devhub/internal/project"
)

// cfxGame holds what differs between FiveM and RedM resources.
type cfxGame struct {
	Template project.TemplateID
	// ID is the fxmanifest game identifier.
	ID      string
	Title   string
	Summary string
	// Warning is the prerelease acknowledgment RedM requires.
	Warning string
	Notes   string
}

var (
	fivem = cfxGame{
		Template: project.TemplateFiveM,
		ID:       "gta5",
		Title:    "FiveM",
		Summary:  "A FiveM resource.",
	}
	redm = cfxGame{
		Template: project.TemplateRedM,
		ID:       "rdr3",
		Title:    "RedM",
		Summary:  "A RedM resource designed for RedM servers.",
		Warning:  "I acknowledge that this is a prerelease build of RedM, and I am aware my resources *will* become incompatible once RedM ships.",
		Notes:    "This is a RedM resource and will only work with RedM servers. It is not compatible with FiveM.",
	}
)

// GenerateFiveM plans a FiveM server resource.
func GenerateFiveM(dir string, opts project.FeatureOptions, env Env) (*Plan, error) {
	return generateCfx(fivem, dir, opts, env)
}

// GenerateRedM plans a RedM server resource.
func GenerateRedM(dir string, opts project.FeatureOptions, env Env) (*Plan, error) {
	return generateCfx(redm, dir, opts, env)
}

// generateCfx writes the five resource files. Resources are not
// package-manager based, so nothing is installed.
func generateCfx(game cfxGame, dir string, opts project.FeatureOptions, env Env) (*Plan, error) {
	b := newBuilder(game.Template, dir, opts, env)
	b.data.Game = &game

	b.mkdir("client", "server", "config")
	b.file("fxmanifest.lua", "cfx/fxmanifest.lua.tmpl")
	b.file("client/client.lua", "cfx/client.lua.tmpl")
	b.file("server/server.lua", "cfx/server.lua.tmpl")
	b.file("config/config.lua", "cfx/config.lua")
	b.file("README.md", "cfx/README.md.tmpl")

	return b.build()
}
