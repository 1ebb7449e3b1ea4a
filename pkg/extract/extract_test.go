package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBody_FunctionForm(t *testing.T) {
	blob := "function Foo(){ if(x){y()} } function Bar(){}"

	body := Body(blob, "Foo")

	assert.Equal(t, " if(x){y()} ", body)
}

func TestBody_FunctionForm_LastDeclaration(t *testing.T) {
	blob := "function Bar(){} function Foo(){ if(x){y()} }"

	body := Body(blob, "Foo")

	assert.Equal(t, " if(x){y()} ", body)
}

func TestBody_BoundConstantArrow(t *testing.T) {
	blob := "const Counter = () => { return count; }"

	body := Body(blob, "Counter")

	assert.Equal(t, " return count; ", body)
}

func TestBody_BoundConstantSingleParamArrow(t *testing.T) {
	blob := "const double = n => { return n * 2; }"

	body := Body(blob, "double")

	assert.Equal(t, " return n * 2; ", body)
}

func TestBody_BoundConstantFunctionExpression(t *testing.T) {
	blob := "var greet = function(name) { say(name); }"

	body := Body(blob, "greet")

	assert.Equal(t, " say(name); ", body)
}

func TestBody_ClassForm_UsesBraceCounting(t *testing.T) {
	blob := "class Widget { render() { return x; } } " +
		"function after(){}"

	body := Body(blob, "Widget")

	assert.Equal(t, " render() { return x; } ", body)
}

func TestBody_MissingDeclaration_ReturnsEmpty(t *testing.T) {
	blob := "function Foo(){ return 1; }"

	assert.Equal(t, "", Body(blob, "Missing"))
	assert.Equal(t, "", Body("", "Foo"))
	assert.Equal(t, "", Body(blob, ""))
}

func TestBody_FirstOccurrenceWins(t *testing.T) {
	blob := "function Foo(){ FIRST() } " +
		"function Foo(){ SECOND() }"

	body := Body(blob, "Foo")

	assert.Contains(t, body, "FIRST")
	assert.NotContains(t, body, "SECOND")
}

func TestBody_BalancedBraces(t *testing.T) {
	blob := "function Deep(){ a{b{c{}}d{}} e{} } " +
		"const other = () => { f(); }"

	body := Body(blob, "Deep")

	open := strings.Count(body, "{")
	closed := strings.Count(body, "}")
	assert.Equal(t, open, closed)
	assert.NotContains(t, body, "f();")
}

func TestLocate_Offsets(t *testing.T) {
	blob := "function Foo(){abc}"

	seg, ok := Locate(blob, "Foo")

	require.True(t, ok)
	assert.Equal(t, "abc", seg.Text)
	assert.Equal(t, seg.Text, blob[seg.Start:seg.End])
	assert.Equal(t, 3, seg.Len())
	assert.False(t, seg.Empty())
}

func TestLocate_Miss(t *testing.T) {
	seg, ok := Locate("function Foo(){}", "Bar")

	assert.False(t, ok)
	assert.True(t, seg.Empty())
}

func TestLocate_UnbalancedBlob_ReturnsTail(t *testing.T) {
	blob := "class Broken { open() { never closes"

	seg, ok := Locate(blob, "Broken")

	require.True(t, ok)
	assert.Equal(t, " open() { never closes", seg.Text)
	assert.Equal(t, len(blob), seg.End)
}

func TestLocate_EmptyBody_FallsBackToBraceCount(t *testing.T) {
	// The regex tiers treat a zero-length capture as a miss;
	// brace counting still reports the declaration as found.
	blob := "function Noop(){}"

	seg, ok := Locate(blob, "Noop")

	require.True(t, ok)
	assert.Equal(t, "", seg.Text)
}

func TestDeclared(t *testing.T) {
	blob := "function Foo(){} const bar = () => {} " +
		"class Baz {}"

	assert.True(t, Declared(blob, "Foo"))
	assert.True(t, Declared(blob, "bar"))
	assert.True(t, Declared(blob, "Baz"))
	assert.False(t, Declared(blob, "Qux"))
	assert.False(t, Declared(blob, ""))
}

func TestDeclared_NameIsRegexQuoted(t *testing.T) {
	assert.False(
		t, Declared("function Foo(){}", "F.o"),
	)
}
