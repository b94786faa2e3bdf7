package systemformatter

const (
	// DefaultNotifyParam is the identifier of the export callback the loader
	// passes into a registration's declare function.
	DefaultNotifyParam = "_export"

	// setterParam is the binding parameter of every synthesized setter
	// function. Together with the notify parameter it is reserved; the
	// upstream analyzer keeps both out of the module id namespace.
	setterParam = "_m"
)

// Options configures a Formatter.
type Options struct {
	// Anonymous omits the name literal from the registration call, for output
	// that is concatenated into a bundle instead of registered individually.
	Anonymous bool

	// NotifyParam overrides DefaultNotifyParam as the export callback name.
	NotifyParam string
}

// PathResolver maps an authored dependency path to the registration key of
// the module it denotes.
type PathResolver func(path string) string

// ModuleResolver resolves an authored dependency path to its analyzed Module.
type ModuleResolver interface {
	GetModule(path string) *Module
}
