package enum

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type color string

var (
	red  = New(color("red"))
	blue = New(color("blue"))
)

func Test_ToEnum(t *testing.T) {
	got, err := ToEnum[color]("red")
	require.NoError(t, err)
	require.Equal(t, red, got)

	_, err = ToEnum[color]("green")
	require.Error(t, err)
}

func Test_ToList(t *testing.T) {
	require.Equal(t, []color{blue, red}, ToList[color]())
}
