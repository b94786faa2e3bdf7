package systemformatter

import (
	"strings"

	"github.com/apex/log"
	"github.com/dop251/goja"
	"github.com/go-errors/errors"
	uuid "github.com/satori/go.uuid"

	"github.com/caridy/es6-module-transpiler-system-formatter/jsast"
)

type registerExport func(name string, value goja.Value) goja.Value
type registerCallback func(export registerExport, context *goja.Object) *goja.Object

// Loader executes generated registration calls inside a goja runtime. It
// installs a System.register host object, wires every setter with its
// dependency's export object before invoking execute, and re-invokes a setter
// whenever the dependency republishes an export, so consumers observe live
// bindings even across circular dependencies.
type Loader struct {
	runtime     *goja.Runtime
	modules     map[string]*loadedModule
	resolver    PathResolver
	currentName string
}

type loadedModule struct {
	name         string
	paths        []string
	declare      registerCallback
	exports      *goja.Object
	setters      []goja.Callable
	execute      goja.Callable
	dependents   []goja.Callable
	instantiated bool
	executing    bool
	executed     bool
}

func NewLoader() *Loader {
	runtime := goja.New()
	loader := &Loader{
		runtime:  runtime,
		modules:  make(map[string]*loadedModule),
		resolver: defaultPathResolver,
	}

	system := runtime.NewObject()
	if err := system.Set("register", loader.systemRegister); err != nil {
		panic(errors.New(err))
	}
	runtime.Set("System", system)

	return loader
}

// Runtime exposes the underlying goja runtime, e.g. to predefine globals the
// registered modules expect.
func (l *Loader) Runtime() *goja.Runtime {
	return l.runtime
}

// SetPathResolver overrides how authored dependency paths are mapped to
// registration keys.
func (l *Loader) SetPathResolver(resolver PathResolver) {
	l.resolver = resolver
}

// defaultPathResolver strips a relative prefix and a script extension, so an
// authored './dep.js' finds the module registered as "dep".
func defaultPathResolver(path string) string {
	path = strings.TrimPrefix(path, "./")
	path = strings.TrimSuffix(path, ".js")
	return path
}

func (l *Loader) systemRegister(call goja.FunctionCall) goja.Value {
	arguments := call.Arguments
	name := l.currentName
	if len(arguments) == 3 {
		name = arguments[0].String()
		arguments = arguments[1:]
	} else if name == "" {
		name = "anonymous_" + strings.Replace(uuid.NewV4().String(), "-", "", -1)
	}
	if len(arguments) != 2 {
		panic(l.runtime.NewTypeError("System.register expects (name?, dependencies, declare)"))
	}

	var paths []string
	if err := l.runtime.ExportTo(arguments[0], &paths); err != nil {
		panic(errors.New(err))
	}
	var declare registerCallback
	if err := l.runtime.ExportTo(arguments[1], &declare); err != nil {
		panic(errors.New(err))
	}

	l.modules[name] = &loadedModule{
		name:    name,
		paths:   paths,
		declare: declare,
		exports: l.runtime.NewObject(),
	}

	log.Debugf("Loader: Registered module %s with %d dependencies", name, len(paths))
	return goja.Undefined()
}

// Register evaluates source, capturing the System.register call it performs.
// An anonymous registration adopts name as its key.
func (l *Loader) Register(name, source string) error {
	l.currentName = name
	defer func() { l.currentName = "" }()

	val, err := prepareJavascript("system::"+name, []byte(source), l.runtime)
	if err != nil {
		return errors.New(err)
	}

	// We expect a cleanly generated module, that doesn't return anything
	if isDefined(val) {
		return errors.Errorf("Modules are not supposed to return anything: %s", val.Export())
	}
	return nil
}

// RegisterModule formats an analyzed module and registers the generated code
// under the module's name, covering the anonymous output mode as well.
func (l *Loader) RegisterModule(formatter *Formatter, module *Module) error {
	program := formatter.FormatModule(module)
	return l.Register(module.Name(), jsast.Print(program))
}

// Import links and executes a registered module (and, transitively, its
// dependencies) and returns its export object.
func (l *Loader) Import(name string) (*goja.Object, error) {
	module := l.modules[name]
	if module == nil {
		return nil, errors.Errorf("Loader: no module registered as %s", name)
	}
	if err := l.instantiate(module); err != nil {
		return nil, err
	}
	if err := l.executeModule(module); err != nil {
		return nil, err
	}
	return module.exports, nil
}

func (l *Loader) dependency(module *loadedModule, path string) (*loadedModule, error) {
	dep := l.modules[l.resolver(path)]
	if dep == nil {
		return nil, errors.Errorf("Loader: unresolved dependency %s of %s", path, module.name)
	}
	return dep, nil
}

func (l *Loader) instantiate(module *loadedModule) error {
	if module.instantiated {
		return nil
	}
	module.instantiated = true

	// The callback yields the exported value, so a notify call can stand in
	// for the expression it wraps.
	exportFunction := func(name string, value goja.Value) goja.Value {
		if err := module.exports.Set(name, value); err != nil {
			panic(errors.New(err))
		}

		// A republished export re-triggers every dependent setter with the
		// updated export object; that is what keeps consumer bindings live.
		for _, setter := range module.dependents {
			if _, err := setter(goja.Undefined(), module.exports); err != nil {
				panic(errors.New(err))
			}
		}
		return value
	}

	context := l.runtime.NewObject()
	if err := context.Set("id", module.name); err != nil {
		return errors.New(err)
	}

	initializer := module.declare(exportFunction, context)

	var setters []goja.Callable
	if err := l.runtime.ExportTo(initializer.Get("setters"), &setters); err != nil {
		return errors.New(err)
	}
	module.setters = setters

	execute := initializer.Get("execute")
	if !isFunction(execute) {
		return errors.Errorf("Loader: module %s returned no execute function", module.name)
	}
	if err := l.runtime.ExportTo(execute, &module.execute); err != nil {
		return errors.New(err)
	}

	if len(module.setters) != len(module.paths) {
		return errors.Errorf("Loader: setters of %s are not aligned with its %d dependencies",
			module.name, len(module.paths))
	}

	for i, path := range module.paths {
		dep, err := l.dependency(module, path)
		if err != nil {
			return err
		}

		// Instantiating before wiring tolerates circular graphs: a cycle
		// member is wired with whatever the dependency has exported so far
		// and caught up later through its dependent setter.
		if err := l.instantiate(dep); err != nil {
			return err
		}
		if _, err := module.setters[i](goja.Undefined(), dep.exports); err != nil {
			return errors.New(err)
		}
		dep.dependents = append(dep.dependents, module.setters[i])
	}

	return nil
}

func (l *Loader) executeModule(module *loadedModule) error {
	if module.executed || module.executing {
		return nil
	}
	module.executing = true
	defer func() { module.executing = false }()

	for _, path := range module.paths {
		dep, err := l.dependency(module, path)
		if err != nil {
			return err
		}
		if err := l.executeModule(dep); err != nil {
			return err
		}
	}

	log.Debugf("Loader: Executing initializer of module: %s", module.name)
	if _, err := module.execute(goja.Undefined()); err != nil {
		return errors.New(err)
	}
	module.executed = true

	return nil
}
