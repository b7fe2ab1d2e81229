package typograf

// Config captures engine setup
type Config struct {
	DefaultLocale Locale
	Settings      Settings

	registry   *Registry
	extraRules []Rule
	disabled   []string
}

// Option mutates Config during construction
type Option func(*Config) error

// WithDefaultLocale sets the locale used when settings carry no explicit
// choice, bypassing detection.
func WithDefaultLocale(locale string) Option {
	return func(c *Config) error {
		parsed, ok := ParseLocale(locale)
		if !ok {
			// Unknown or "auto" keeps detection.
			c.DefaultLocale = ""
			return nil
		}
		c.DefaultLocale = parsed
		return nil
	}
}

// WithSettings stores baseline settings applied by Process.
func WithSettings(settings Settings) Option {
	return func(c *Config) error {
		c.Settings = settings
		return nil
	}
}

// WithSettingsFile loads baseline settings from a YAML file.
func WithSettingsFile(path string) Option {
	return func(c *Config) error {
		settings, err := LoadSettings(path)
		if err != nil {
			return err
		}
		c.Settings = settings
		return nil
	}
}

// WithRegistry replaces the shipped catalog entirely.
func WithRegistry(registry *Registry) Option {
	return func(c *Config) error {
		c.registry = registry
		return nil
	}
}

// WithRules appends custom rules to the shipped catalog.
func WithRules(rules ...Rule) Option {
	return func(c *Config) error {
		c.extraRules = append(c.extraRules, rules...)
		return nil
	}
}

// WithoutRule disables rules by id for every call, equivalent to a false
// override in Settings.
func WithoutRule(ids ...string) Option {
	return func(c *Config) error {
		c.disabled = append(c.disabled, ids...)
		return nil
	}
}

// Typograf is a configured typography engine. Instances are immutable
// after construction and safe for concurrent use.
type Typograf struct {
	registry      *Registry
	defaultLocale Locale
	settings      Settings
}

// New builds an engine via supplied options.
func New(opts ...Option) (*Typograf, error) {
	cfg := &Config{}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	registry := cfg.registry
	if registry == nil {
		if len(cfg.extraRules) == 0 {
			registry = defaultRegistry
		} else {
			catalog := append(defaultRegistry.All(), cfg.extraRules...)
			built, err := NewRegistry(catalog...)
			if err != nil {
				return nil, err
			}
			registry = built
		}
	}

	settings := cfg.Settings
	if len(cfg.disabled) > 0 {
		overrides := make(map[string]bool, len(settings.Rules)+len(cfg.disabled))
		for id, value := range settings.Rules {
			overrides[id] = value
		}
		for _, id := range cfg.disabled {
			overrides[id] = false
		}
		settings.Rules = overrides
	}

	return &Typograf{
		registry:      registry,
		defaultLocale: cfg.DefaultLocale,
		settings:      settings,
	}, nil
}

// Rules returns the engine's catalog in catalog order.
func (t *Typograf) Rules() []Rule {
	return t.registry.All()
}

// RulesForLocale returns the engine's rules applicable to locale.
func (t *Typograf) RulesForLocale(locale Locale) []Rule {
	return t.registry.ForLocale(locale)
}
