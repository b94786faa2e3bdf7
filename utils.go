package systemformatter

import (
	"path/filepath"
	"reflect"
	"strings"

	"github.com/dop251/goja"
	"github.com/dop251/goja/parser"
	"github.com/go-errors/errors"
	uuid "github.com/satori/go.uuid"
)

func isValidIdentifier(value string) bool {
	if value == "" {
		return false
	}
	for i, r := range value {
		if r == '_' || r == '$' ||
			(r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			continue
		}
		if i > 0 && r >= '0' && r <= '9' {
			continue
		}
		return false
	}
	return true
}

func generateModuleIdentifier() string {
	id := uuid.NewV4()
	return "_module___" + strings.Replace(id.String(), "-", "", -1)
}

func isFunction(value goja.Value) bool {
	return isDefined(value) && value.ExportType().Kind() == reflect.Func
}

func isDefined(value goja.Value) bool {
	return value != nil && value != goja.Null() && value != goja.Undefined()
}

func prepareJavascript(filename string, source []byte, runtime *goja.Runtime) (goja.Value, error) {
	if prog, err := compileJavascript(filename, source); err != nil {
		return nil, err

	} else {
		if val, err := runtime.RunProgram(prog); err != nil {
			return nil, err
		} else {
			return val, nil
		}
	}
}

func compileJavascript(filename string, source []byte) (*goja.Program, error) {
	if !strings.HasPrefix(filename, "system::") && !filepath.IsAbs(filename) {
		return nil, errors.Errorf("Provided path is not absolute: %s", filename)
	}

	ast, err := parser.ParseFile(nil, filename, source, 0)
	if err != nil {
		return nil, err
	}

	return goja.CompileAST(ast, true)
}
