package config

// SampleConfig returns a fully commented configuration file with all
// options at their defaults.
func SampleConfig() string {
	return `# Folio configuration file
# Search order: ./.folio.yaml, ~/.config/folio/config.yaml, /etc/folio/config.yaml
# Environment variables with the FOLIO_ prefix override file settings.

version: "1.0"

content:
  # Directory holding one YAML file per project.
  dir: "./content"
  # Reload the directory automatically while the browser is running.
  auto_reload: true
  # List projects marked nda: true. Leave false and set nda_key to
  # require the FOLIO_NDA_UNLOCK environment variable instead.
  include_nda: false
  nda_key: ""

carousel:
  # Quiet period before a scroll position counts as settled.
  settle_delay: 150ms
  # How far a flick's release velocity is projected when picking the
  # landing slide.
  flick_projection: 180ms
  # Spring parameters for glide and inertia animations.
  spring_frequency: 7.0
  spring_damping: 1.0
  # Animation frame rate.
  frame_rate: 60
  # Step past the last slide back to the first.
  wrap_around: true

output:
  # Format for the list command: text, json, markdown.
  default_format: "text"
  # Color handling: auto, always, never.
  color_mode: "auto"
  verbose: false

ui:
  # Theme: default, high-contrast, minimal.
  theme: "default"
  show_filmstrip: true
  # Log sink while the browser owns the terminal.
  log_file: "~/.cache/folio/folio.log"

session:
  path: "~/.cache/folio/session.yaml"
  # Reopen the last viewed project on launch.
  restore: true
`
}

// MinimalSampleConfig returns a compact configuration with only the
// settings most installs change.
func MinimalSampleConfig() string {
	return `# Folio configuration (minimal)
version: "1.0"

content:
  dir: "./content"

ui:
  theme: "default"

session:
  restore: true
`
}
