package builtin

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/loxgm/loxgm/environment"
	"github.com/loxgm/loxgm/loxerr"
	"github.com/loxgm/loxgm/object"
)

func TestNumberBuiltinCoercesString(t *testing.T) {
	env := environment.New()
	Register(env, strings.NewReader(""), &bytes.Buffer{})
	v, err := env.Get("number", loxerr.TokenContext{})
	assert.Nil(t, err)
	native := v.(object.Callable)
	result, callErr := native.Call([]object.Value{object.String("3.5")})
	assert.Nil(t, callErr)
	assert.Equal(t, object.Number(3.5), result)
}

func TestNumberBuiltinRejectsNonNumeric(t *testing.T) {
	env := environment.New()
	Register(env, strings.NewReader(""), &bytes.Buffer{})
	v, _ := env.Get("number", loxerr.TokenContext{})
	native := v.(object.Callable)
	_, callErr := native.Call([]object.Value{object.NilValue})
	assert.NotNil(t, callErr)
}

func TestInputBuiltinReadsOneLine(t *testing.T) {
	env := environment.New()
	var out bytes.Buffer
	Register(env, strings.NewReader("hello\n"), &out)
	v, _ := env.Get("input", loxerr.TokenContext{})
	native := v.(object.Callable)
	result, callErr := native.Call([]object.Value{object.String("> ")})
	assert.Nil(t, callErr)
	assert.Equal(t, object.String("hello"), result)
	assert.Equal(t, "> ", out.String())
}

func TestTimeBuiltinReturnsNumber(t *testing.T) {
	env := environment.New()
	Register(env, strings.NewReader(""), &bytes.Buffer{})
	v, _ := env.Get("time", loxerr.TokenContext{})
	native := v.(object.Callable)
	result, callErr := native.Call(nil)
	assert.Nil(t, callErr)
	assert.IsType(t, object.Number(0), result)
}
