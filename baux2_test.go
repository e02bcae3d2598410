package main

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/MrEasybutton/BAUx2/lexer"
	"github.com/MrEasybutton/BAUx2/parser"
	"github.com/MrEasybutton/BAUx2/vm"
)

// Each fixture is a whole script plus the exact output it must print.
// A fixture with an error expects the run to abort with a message
// containing that text, after printing exactly the given output.
type scriptCase struct {
	Name   string `yaml:"name"`
	Source string `yaml:"source"`
	Output string `yaml:"output"`
	Error  string `yaml:"error"`
}

func TestScripts(t *testing.T) {
	raw, err := os.ReadFile("testdata/scripts.yaml")
	require.NoError(t, err)

	var cases []scriptCase
	require.NoError(t, yaml.Unmarshal(raw, &cases))
	require.NotEmpty(t, cases)

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			l := lexer.New(tc.Source)
			go l.Run()

			out := bytes.Buffer{}
			prog, err := parser.Parse(l.Out)
			if err == nil {
				err = vm.Run(prog, &out)
			}

			if tc.Error == "" {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.Error)
			}
			assert.Equal(t, tc.Output, out.String())
		})
	}
}
