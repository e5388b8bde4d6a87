// Package config manages user-level settings stored at ~/.devhub/config.yaml.
// Every key can be overridden by a DEVHUB_* environment variable, with dots
// in the key replaced by underscores (install.vue -> DEVHUB_INSTALL_VUE).
package config
