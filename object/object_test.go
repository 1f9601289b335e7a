package object

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruthy(t *testing.T) {
	assert.False(t, Truthy(Nil{}))
	assert.False(t, Truthy(Bool(false)))
	assert.True(t, Truthy(Bool(true)))
	assert.True(t, Truthy(Number(0)))
	assert.True(t, Truthy(String("")))
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal(Nil{}, Nil{}))
	assert.False(t, Equal(Nil{}, Number(0)))
	assert.True(t, Equal(Number(1), Number(1)))
	assert.False(t, Equal(Number(1), String("1")))
	assert.True(t, Equal(String("a"), String("a")))
}

func TestNumberString(t *testing.T) {
	assert.Equal(t, "2", Number(2).String())
	assert.Equal(t, "2.5", Number(2.5).String())
}

func TestNativeString(t *testing.T) {
	n := &Native{Name: "time", Arty: 0}
	assert.Equal(t, "<native fn time>", n.String())
}
