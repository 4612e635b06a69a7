package testutils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"reflect"
)

// UnmarshallResponse decodes the JSON body in res into out
func UnmarshallResponse(res *bytes.Buffer, out interface{}) error {
	return json.NewDecoder(res).Decode(out)
}

// SetEnvVars sets given environment variables and provides a callback function to restore the variables to their initial values
func SetEnvVars(vars map[string]string) (restoreVars func()) {
	initialValues := map[string]string{}
	unsetVars := map[string]bool{}

	for name, value := range vars {
		initialValue, exists := os.LookupEnv(name)
		if exists {
			initialValues[name] = initialValue
		} else {
			unsetVars[name] = true
		}

		err := os.Setenv(name, value)
		if err != nil {
			panic(err)
		}
	}

	return func() {
		for name, value := range initialValues {
			err := os.Setenv(name, value)
			if err != nil {
				panic(err)
			}
		}

		for name := range unsetVars {
			err := os.Unsetenv(name)
			if err != nil {
				panic(err)
			}
		}
	}
}

// UnsetVars unsets given environment variables and provides a callback function to restore the variables to their initial values
func UnsetVars(vars ...string) (restoreVars func()) {
	initialValues := map[string]string{}
	for _, name := range vars {
		initialValue, exists := os.LookupEnv(name)
		if exists {
			initialValues[name] = initialValue
		}

		err := os.Unsetenv(name)
		if err != nil {
			panic(err)
		}
	}

	return func() {
		for name, value := range initialValues {
			err := os.Setenv(name, value)
			if err != nil {
				panic(err)
			}
		}
	}
}

// RouterGroupMatcher matches gin router groups mounted on the given path
type RouterGroupMatcher struct {
	// Path is the base path of the router groups to match
	Path string
}

// Matches implements the gomock.Matcher interface
func (r RouterGroupMatcher) Matches(x interface{}) bool {
	if x == nil {
		return false
	}
	val := reflect.ValueOf(x)
	if val.Kind() == reflect.Ptr && val.IsNil() {
		return false
	}

	basePathMethod := val.MethodByName("BasePath")
	if !basePathMethod.IsValid() || basePathMethod.Type().NumIn() != 0 {
		return false
	}

	values := basePathMethod.Call(nil)
	if len(values) != 1 || values[0].Kind() != reflect.String {
		return false
	}

	return values[0].String() == r.Path
}

func (r RouterGroupMatcher) String() string {
	return fmt.Sprintf("router group's base path is %s", r.Path)
}
