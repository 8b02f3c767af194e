// Package config loads radar2mdx settings with Viper.
//
// # Configuration File
//
// config.yaml is looked up in the working directory and then in
// $XDG_CONFIG_HOME/radar2mdx (RADAR2MDX_CONFIG_DIR overrides the latter):
//
//	version: 1
//	kit_tags:
//	  - govuk
//	  - nhs
//	output_ext: .mdx
//
// Every key can also be set from the environment with the RADAR2MDX_ prefix,
// e.g. RADAR2MDX_OUTPUT_EXT=.md. A missing config file is not an error; the
// defaults reproduce the converter's built-in behaviour.
package config
