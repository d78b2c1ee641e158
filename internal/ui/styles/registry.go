// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// registry.go - named theme registry, completeness classification, resolution.

package styles

// StyleDef is one renderer style: a foreground/background color pair.
// Colors are hex strings or terminal color names; empty means inherit.
type StyleDef struct {
	Foreground string
	Background string
}

// ThemeSpec maps renderer style keys to their definitions.
type ThemeSpec map[string]StyleDef

// requiredKeys is the set of style keys the renderer depends on. A theme
// covering all of them is complete; anything less still renders, with
// whatever defaults the terminal supplies for the missing keys.
var requiredKeys = []string{
	"default",
	"selected",
	"msg_selected",
	"header",
	"general_bar",
	"name",
	"unread",
	"user_active",
	"user_idle",
	"user_offline",
	"title",
	"time",
	"bar",
	"msg_mention",
	"msg_link",
	"msg_quote",
	"msg_code",
	"msg_bold",
	"msg_time",
	"footer",
	"starred",
	"unread_count",
	"area:error",
	"search_error",
}

// RequiredKeys returns the style keys a complete theme must define.
func RequiredKeys() []string {
	keys := make([]string, len(requiredKeys))
	copy(keys, requiredKeys)
	return keys
}

// Registry is an ordered collection of named themes. It is constructed
// explicitly and passed to whoever needs it; registration order is
// preserved and drives the order of listings and suggestions.
//
// Registry is not safe for concurrent mutation. The bootstrap builds and
// populates it before any reads happen.
type Registry struct {
	order  []string
	themes map[string]ThemeSpec
}

// NewRegistry creates an empty theme registry.
func NewRegistry() *Registry {
	return &Registry{
		themes: make(map[string]ThemeSpec),
	}
}

// Register adds or replaces a theme. First registration of a name fixes
// its position in the order; re-registering updates the spec in place.
func (r *Registry) Register(name string, spec ThemeSpec) {
	if _, exists := r.themes[name]; !exists {
		r.order = append(r.order, name)
	}
	r.themes[name] = spec
}

// Get returns the named theme's spec.
func (r *Registry) Get(name string) (ThemeSpec, bool) {
	spec, ok := r.themes[name]
	return spec, ok
}

// Names returns all registered theme names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// Classify partitions the registry into complete and incomplete themes,
// each in registration order. The partition is computed fresh on every
// call since themes can be registered between calls.
func Classify(r *Registry) (complete, incomplete []string) {
	for _, name := range r.order {
		spec := r.themes[name]
		if coversRequired(spec) {
			complete = append(complete, name)
		} else {
			incomplete = append(incomplete, name)
		}
	}
	return complete, incomplete
}

func coversRequired(spec ThemeSpec) bool {
	for _, key := range requiredKeys {
		if _, ok := spec[key]; !ok {
			return false
		}
	}
	return true
}

// Resolution is the outcome of resolving a requested theme name.
type Resolution struct {
	// Name is always the requested theme. An incomplete theme is still
	// used, never silently substituted.
	Name string

	// Spec is the theme's definitions, nil when the name is unknown.
	Spec ThemeSpec

	// Complete reports whether the theme covers every required key.
	Complete bool

	// Warnings holds user-facing diagnostic lines, empty for a complete
	// theme.
	Warnings []string
}

// Resolve looks up the requested theme and flags it when incomplete. The
// warning suggests up to two complete themes, in registry order; when no
// complete theme exists the suggestion line is omitted entirely. A name
// absent from the registry resolves without warnings; flag validation
// rejects unknown names before resolution runs.
func Resolve(requested string, r *Registry) Resolution {
	complete, incomplete := Classify(r)

	spec, _ := r.Get(requested)
	res := Resolution{Name: requested, Spec: spec}

	for _, name := range complete {
		if name == requested {
			res.Complete = true
			return res
		}
	}
	found := false
	for _, name := range incomplete {
		if name == requested {
			found = true
			break
		}
	}
	if !found {
		return res
	}

	res.Warnings = append(res.Warnings, "   WARNING: Incomplete theme; results may vary!")
	if len(complete) > 0 {
		suggestions := complete
		if len(suggestions) > 2 {
			suggestions = suggestions[:2]
		}
		line := "      (you could try: " + suggestions[0]
		for _, name := range suggestions[1:] {
			line += ", " + name
		}
		res.Warnings = append(res.Warnings, line+")")
	}
	return res
}
