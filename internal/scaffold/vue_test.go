package scaffold

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/frsk-dev/devhub/internal/project"
)

var vueBaseFiles = []string{
	"package.json",
	"vite.config.js",
	"src/main.js",
	"src/App.vue",
	"src/components/HelloWorld.vue",
	"src/assets/main.css",
	"src/assets/base.css",
	"index.html",
	".gitignore",
}

func TestGenerateVueBase(t *testing.T) {
	plan := mustPlan(t, GenerateVue, "web")
	assertFiles(t, plan, vueBaseFiles)
	assertDirs(t, plan, []string{"src", "src/assets", "src/components", "public"})
	assertCommands(t, plan, nil)

	var pkg PackageManifest
	if err := json.Unmarshal([]byte(planFile(t, plan, "package.json")), &pkg); err != nil {
		t.Fatal(err)
	}
	if !pkg.Private {
		t.Error("vue package.json should be private")
	}
	if len(pkg.Scripts) != 3 || pkg.Scripts["build"] != "vite build" {
		t.Errorf("scripts = %v", pkg.Scripts)
	}

	app := planFile(t, plan, "src/App.vue")
	assertContains(t, app, "<h1>Welcome to Your Vue.js App</h1>")
	assertNotContains(t, app, "router-view")
	assertContains(t, app, "<script setup>")
	assertContains(t, planFile(t, plan, "src/components/HelloWorld.vue"), "defineProps({ msg: String })")
	assertContains(t, planFile(t, plan, "src/components/HelloWorld.vue"), "<h1>{{ msg }}</h1>")
	assertContains(t, planFile(t, plan, "index.html"), `src="/src/main.js"`)
	assertNotContains(t, planFile(t, plan, "vite.config.js"), "alias")
}

func TestGenerateVueRouterOnly(t *testing.T) {
	plan := mustPlan(t, GenerateVue, "web", project.FlagRouter)
	assertFiles(t, plan, append(vueBaseFiles,
		"src/router/index.js",
		"src/views/HomeView.vue",
		"src/views/AboutView.vue",
	))
	assertDirs(t, plan, []string{"src", "src/assets", "src/components", "src/views", "src/router", "public"})

	main := planFile(t, plan, "src/main.js")
	assertContains(t, main, "import router from './router'")
	assertContains(t, main, "app.use(router)")
	assertNotContains(t, main, "pinia")

	router := planFile(t, plan, "src/router/index.js")
	assertContains(t, router, "component: () => import('../views/AboutView.vue')")
	assertNotContains(t, router, "RouteRecordRaw")

	app := planFile(t, plan, "src/App.vue")
	assertContains(t, app, `<router-link to="/about">About</router-link>`)
	assertContains(t, app, "<router-view/>")
	assertNotContains(t, app, "<h1>")

	assertContains(t, planFile(t, plan, "package.json"), `"vue-router": "^4.2.4"`)
}

func TestGenerateVuePiniaBeforeRouter(t *testing.T) {
	plan := mustPlan(t, GenerateVue, "web", project.FlagRouter, project.FlagPinia)
	main := planFile(t, plan, "src/main.js")

	want := `import { createApp } from 'vue'
import { createPinia } from 'pinia'
import router from './router'
import App from './App.vue'
import './assets/main.css'

const app = createApp(App)
app.use(createPinia())
app.use(router)

app.mount('#app')
`
	if main != want {
		t.Errorf("src/main.js =\n%s\nwant\n%s", main, want)
	}

	// The stores directory is created empty.
	assertDirs(t, plan, []string{"src", "src/assets", "src/components", "src/views", "src/router", "src/stores", "public"})
	for _, f := range filePaths(plan) {
		if strings.HasPrefix(f, "src/stores/") {
			t.Errorf("unexpected store file %s", f)
		}
	}
}

func TestGenerateVueTypeScript(t *testing.T) {
	plan := mustPlan(t, GenerateVue, "web", project.FlagTypeScript, project.FlagRouter)
	assertFiles(t, plan, []string{
		"package.json",
		"vite.config.ts",
		"src/main.ts",
		"src/App.vue",
		"src/components/HelloWorld.vue",
		"src/router/index.ts",
		"src/views/HomeView.vue",
		"src/views/AboutView.vue",
		"tsconfig.json",
		"env.d.ts",
		"src/assets/main.css",
		"src/assets/base.css",
		"index.html",
		".gitignore",
	})

	vite := planFile(t, plan, "vite.config.ts")
	assertContains(t, vite, "import { fileURLToPath, URL } from 'node:url'")
	assertContains(t, vite, "'@': fileURLToPath(new URL('./src', import.meta.url))")

	assertContains(t, planFile(t, plan, "src/App.vue"), `<script lang="ts" setup>`)
	assertContains(t, planFile(t, plan, "src/components/HelloWorld.vue"), "defineProps<{ msg: string }>()")
	assertContains(t, planFile(t, plan, "src/router/index.ts"), "const routes: RouteRecordRaw[] = [")
	assertContains(t, planFile(t, plan, "src/views/HomeView.vue"), "Welcome to Your Vue.js + TypeScript App")
	assertContains(t, planFile(t, plan, "index.html"), `src="/src/main.ts"`)
	assertContains(t, planFile(t, plan, "env.d.ts"), `/// <reference types="vite/client" />`)

	var tsconfig map[string]any
	if err := json.Unmarshal([]byte(planFile(t, plan, "tsconfig.json")), &tsconfig); err != nil {
		t.Fatalf("tsconfig.json is not valid JSON: %v", err)
	}

	pkg := planFile(t, plan, "package.json")
	assertContains(t, pkg, `"build": "vue-tsc && vite build"`)
	assertContains(t, pkg, `"vue-tsc"`)
	assertContains(t, pkg, `"@types/node"`)
}

func TestGenerateVueTesting(t *testing.T) {
	pkg := planFile(t, mustPlan(t, GenerateVue, "web", project.FlagTesting), "package.json")
	assertContains(t, pkg, `"test": "vitest"`)
	assertContains(t, pkg, `"@vue/test-utils"`)
	assertContains(t, pkg, `"jsdom"`)
}

func TestGenerateVueInstallIsOptIn(t *testing.T) {
	plan, err := GenerateVue("/work/web", project.NewFeatureOptions(), Env{InstallVue: true, PackageManager: "yarn"})
	if err != nil {
		t.Fatal(err)
	}
	assertCommands(t, plan, []string{"yarn install"})
}
