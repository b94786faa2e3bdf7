package systemformatter

import (
	"bytes"
	"fmt"

	"github.com/apex/log"
	"github.com/go-errors/errors"
	"github.com/spf13/afero"

	"github.com/caridy/es6-module-transpiler-system-formatter/jsast"
)

// Bundler assembles the anonymous output mode: every module is formatted with
// its name literal omitted and the registrations are concatenated into one
// script meant to be loaded as a unit.
type Bundler struct {
	formatter     *Formatter
	filesystem    afero.Fs
	isolateSystem bool
}

func NewBundler(filesystem afero.Fs, isolateSystem bool) *Bundler {
	return &Bundler{
		formatter:     NewFormatter(Options{Anonymous: true}),
		filesystem:    filesystem,
		isolateSystem: isolateSystem,
	}
}

// Bundle formats and concatenates the given modules, in the given order.
func (b *Bundler) Bundle(modules []*Module) []byte {
	var buffer bytes.Buffer
	for _, module := range modules {
		program := b.formatter.FormatModule(module)
		buffer.WriteString(jsast.Print(program))
	}
	return isolateSystemObject(buffer.Bytes(), b.isolateSystem)
}

// WriteBundle writes the bundled script to the backing filesystem.
func (b *Bundler) WriteBundle(filename string, modules []*Module) error {
	content := b.Bundle(modules)
	if err := afero.WriteFile(b.filesystem, filename, content, 0644); err != nil {
		return errors.New(err)
	}

	log.Infof("Bundler: Wrote %d modules to %s", len(modules), filename)
	return nil
}

// isolateSystemObject shields the bundle from whatever System identifier the
// surrounding scope carries; the embedder applies the returned wrapper
// function to its own loader object.
func isolateSystemObject(source []byte, isolate bool) []byte {
	if !isolate {
		return source
	}
	return []byte(fmt.Sprintf("(function(System) {\n%s\n})", source))
}
