package grid

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const envYAML = `
gamma: 0.9
rows:
  - [-0.04, -0.04, -0.04, 1]
  - [-0.04, null, -0.04, -1]
  - [-0.04, -0.04, -0.04, -0.04]
terminals: [[3, 2], [3, 1]]
`

func TestLoad(t *testing.T) {
	g, err := Load(strings.NewReader(envYAML))
	require.NoError(t, err)

	assert.Equal(t, 4, g.Cols())
	assert.Equal(t, 3, g.Rows())
	assert.Equal(t, 0.9, g.Gamma())
	assert.Len(t, g.States(), 11)
	assert.False(t, g.HasState(Point{1, 1}))
	assert.True(t, g.IsTerminal(Point{3, 2}))
	assert.True(t, g.IsTerminal(Point{3, 1}))
	assert.Equal(t, 1.0, g.R(Point{3, 2}))
	assert.Equal(t, -1.0, g.R(Point{3, 1}))
	assert.Equal(t, Point{0, 0}, g.InitialState())
}

func TestLoadInit(t *testing.T) {
	doc := `
rows:
  - [0, 1]
  - [0, 0]
terminals: [[1, 1]]
init: [1, 0]
`
	g, err := Load(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, Point{1, 0}, g.InitialState())
}

func TestLoadRejectsBadInput(t *testing.T) {
	cases := map[string]string{
		"malformed terminal": `
rows:
  - [0, 1]
terminals: [[1]]
`,
		"malformed init": `
rows:
  - [0, 1]
init: [1, 2, 3]
`,
		"unknown field": `
rows:
  - [0, 1]
discount: 0.5
`,
		"not yaml": `{{{`,
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(strings.NewReader(doc))
			assert.Error(t, err)
		})
	}
}
