// Package tunnel renders the cloudflared ingress configuration that exposes
// every game and example on its own hostname under a tunnel domain.
package tunnel

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/atlanticdynamic/hytopia-dev/internal/catalog"
)

const (
	// DefaultService is the dev server address as seen from the tunnel container.
	DefaultService = "http://hytopia-dev:8080"

	DefaultTemplatePath = "cloudflared/config.template.yml"
	DefaultOutputPath   = "cloudflared/config.yml"

	ExamplesPlaceholder = "${DYNAMIC_EXAMPLES}"
	RoutesPlaceholder   = "${DYNAMIC_ROUTES}"
)

var (
	ErrMissingDomain = errors.New("tunnel domain is required")
	ErrReadTemplate  = errors.New("failed to read tunnel template")
	ErrWriteOutput   = errors.New("failed to write tunnel config")
)

// Rule is one ingress entry.
type Rule struct {
	Hostname string
	Service  string
}

// String renders the rule as an indented YAML list item. The hostname is
// wrapped in double quotes as-is, without Go escaping.
func (r Rule) String() string {
	return "  - hostname: \"" + r.Hostname + "\"\n    service: " + r.Service
}

// ExampleRules builds one rule per example, routed under /examples/.
func ExampleRules(domain, service string, examples []catalog.Entry) []Rule {
	service = strings.TrimRight(service, "/")
	rules := make([]Rule, 0, len(examples))
	for _, ex := range examples {
		rules = append(rules, Rule{
			Hostname: ex.Name + "." + domain,
			Service:  service + "/" + catalog.ExamplesPrefix + "/" + ex.Name,
		})
	}
	return rules
}

// GameRules builds one rule per game.
func GameRules(domain, service string, games []catalog.Entry) []Rule {
	service = strings.TrimRight(service, "/")
	rules := make([]Rule, 0, len(games))
	for _, g := range games {
		rules = append(rules, Rule{
			Hostname: g.Name + "." + domain,
			Service:  service + "/" + g.Name,
		})
	}
	return rules
}

func joinRules(rules []Rule) string {
	parts := make([]string, len(rules))
	for i, r := range rules {
		parts[i] = r.String()
	}
	return strings.Join(parts, "\n")
}

// Render substitutes the example and game rules into template. An empty
// service means DefaultService.
func Render(template, domain, service string, games, examples []catalog.Entry) (string, error) {
	domain = strings.TrimSpace(domain)
	if domain == "" {
		return "", ErrMissingDomain
	}
	if service == "" {
		service = DefaultService
	}

	r := strings.NewReplacer(
		ExamplesPlaceholder, joinRules(ExampleRules(domain, service, examples)),
		RoutesPlaceholder, joinRules(GameRules(domain, service, games)),
	)
	return r.Replace(template), nil
}

// Options control Generate. Empty paths and service fall back to the defaults.
type Options struct {
	TemplatePath string
	OutputPath   string
	Domain       string
	Service      string
	Games        []catalog.Entry
	Examples     []catalog.Entry
}

func (o Options) withDefaults() Options {
	if o.TemplatePath == "" {
		o.TemplatePath = DefaultTemplatePath
	}
	if o.OutputPath == "" {
		o.OutputPath = DefaultOutputPath
	}
	if o.Service == "" {
		o.Service = DefaultService
	}
	return o
}

// Generate reads the template, renders it and writes the result. It returns
// the path written.
func Generate(opts Options) (string, error) {
	opts = opts.withDefaults()

	tmpl, err := os.ReadFile(opts.TemplatePath)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrReadTemplate, err)
	}

	out, err := Render(string(tmpl), opts.Domain, opts.Service, opts.Games, opts.Examples)
	if err != nil {
		return "", err
	}

	if dir := filepath.Dir(opts.OutputPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("%w: %w", ErrWriteOutput, err)
		}
	}
	if err := os.WriteFile(opts.OutputPath, []byte(out), 0o644); err != nil {
		return "", fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}
	return opts.OutputPath, nil
}
