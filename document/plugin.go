// seehuhn.de/go/pdf - a library for reading and writing PDF files
// Copyright (C) 2025  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package document

import (
	"fmt"
	"slices"

	"golang.org/x/exp/maps"
)

// A Plugin draws onto a page.
type Plugin interface {
	Draw(p *Page) error
}

// PluginFunc adapts an ordinary function to the [Plugin] interface.
type PluginFunc func(p *Page) error

// Draw implements the [Plugin] interface.
func (f PluginFunc) Draw(p *Page) error {
	return f(p)
}

// Registry maps names to plugins.
type Registry struct {
	plugins map[string]Plugin
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{plugins: make(map[string]Plugin)}
}

// Register adds a plugin under the given name.  Names must be unique.
func (r *Registry) Register(name string, p Plugin) error {
	if _, exists := r.plugins[name]; exists {
		return fmt.Errorf("document: plugin %q already registered", name)
	}
	r.plugins[name] = p
	return nil
}

// Lookup returns the plugin registered under the given name.
func (r *Registry) Lookup(name string) (Plugin, bool) {
	p, ok := r.plugins[name]
	return p, ok
}

// Names returns the names of all registered plugins, in sorted order.
func (r *Registry) Names() []string {
	names := maps.Keys(r.plugins)
	slices.Sort(names)
	return names
}

// UnknownPluginError is returned by [Page.Apply] if no plugin of the
// given name is registered.
type UnknownPluginError struct {
	Name string
}

func (err *UnknownPluginError) Error() string {
	return fmt.Sprintf("document: unknown plugin %q", err.Name)
}
