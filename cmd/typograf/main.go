package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	jj "github.com/cloudfoundry/jibber_jabber"
	typograf "github.com/goliatone/go-typograf"
)

type cliConfig struct {
	locale    string
	settings  string
	listRules bool
	paths     []string
}

func main() {
	cfg, err := parseFlags()
	if err != nil {
		reportError(err)
	}

	if err := run(cfg); err != nil {
		reportError(err)
	}
}

func reportError(err error) {
	fmt.Fprintf(os.Stderr, "typograf: %v\n", err)
	os.Exit(1)
}

func parseFlags() (cliConfig, error) {
	var cfg cliConfig

	flag.StringVar(&cfg.locale, "locale", "auto", "locale to apply (auto, ru, en, fr, zh, ja or system)")
	flag.StringVar(&cfg.settings, "settings", "", "path to a YAML settings file")
	flag.BoolVar(&cfg.listRules, "list-rules", false, "print the rule catalog and exit")

	flag.Parse()
	cfg.paths = flag.Args()

	return cfg, nil
}

func run(cfg cliConfig) error {
	settings, err := buildSettings(cfg)
	if err != nil {
		return err
	}

	if cfg.listRules {
		return listRules(os.Stdout, settings)
	}

	engine, err := typograf.New(typograf.WithSettings(settings))
	if err != nil {
		return err
	}

	if len(cfg.paths) == 0 {
		return processReader(engine, os.Stdin, os.Stdout)
	}

	for _, path := range cfg.paths {
		file, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("open %s: %w", path, err)
		}
		err = processReader(engine, file, os.Stdout)
		file.Close()
		if err != nil {
			return fmt.Errorf("process %s: %w", path, err)
		}
	}
	return nil
}

func buildSettings(cfg cliConfig) (typograf.Settings, error) {
	var settings typograf.Settings

	if cfg.settings != "" {
		loaded, err := typograf.LoadSettings(cfg.settings)
		if err != nil {
			return typograf.Settings{}, err
		}
		settings = loaded
	}

	locale := cfg.locale
	if locale == "system" {
		detected, err := systemLocale()
		if err != nil {
			return typograf.Settings{}, err
		}
		locale = detected
	}
	if locale != "" && locale != "auto" {
		settings.Locale = locale
	}

	return settings, nil
}

// systemLocale resolves the OS locale and maps it to a supported one.
func systemLocale() (string, error) {
	language, err := jj.DetectLanguage()
	if err != nil {
		return "", fmt.Errorf("detect system locale: %w", err)
	}
	if _, ok := typograf.ParseLocale(language); !ok {
		return "", fmt.Errorf("system locale %q is not supported", language)
	}
	return language, nil
}

func processReader(engine *typograf.Typograf, r io.Reader, w io.Writer) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, engine.Process(string(data)))
	return err
}

func listRules(w io.Writer, settings typograf.Settings) error {
	locale, ok := typograf.ParseLocale(settings.Locale)

	var rules []typograf.Rule
	if ok {
		rules = typograf.RulesForLocale(locale)
	} else {
		rules = typograf.AllRules()
	}
	if len(rules) == 0 {
		return errors.New("no rules in catalog")
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tGROUP\tPRIORITY\tDEFAULT\tNAME")
	for _, rule := range rules {
		state := "off"
		if rule.Enabled {
			state = "on"
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\n",
			rule.ID, rule.Group, rule.Priority, state, rule.Name(typograf.LocaleEnglish))
	}
	return tw.Flush()
}
