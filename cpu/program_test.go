package cpu

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseProgram(t *testing.T) {
	assert := assert.New(t)

	table := map[string]Program{
		"99":                      {99},
		"1,9,10,3\n":              {1, 9, 10, 3},
		" 1 , -2 ,3 ":             {1, -2, 3},
		"1002,4,3,4,33\r\n":       {1002, 4, 3, 4, 33},
		"-1,+5, 9223372036854775807": {-1, 5, 9223372036854775807},
	}

	for text, expected := range table {
		prog, err := ParseProgram(strings.NewReader(text))
		assert.NoError(err, text)
		assert.Equal(expected, prog, text)
	}
}

func TestParseProgram_Errors(t *testing.T) {
	assert := assert.New(t)

	_, err := ParseProgram(strings.NewReader(""))
	assert.ErrorIs(err, ErrProgramEmpty)

	_, err = ParseProgram(strings.NewReader(" \n"))
	assert.ErrorIs(err, ErrProgramEmpty)

	for text, index := range map[string]int{"1,,2": 1, "1,x": 1, "1,2,": 2, "0x10": 0} {
		_, err = ParseProgram(strings.NewReader(text))
		var syntax ErrSyntax
		if assert.ErrorAs(err, &syntax, text) {
			assert.Equal(index, syntax.Index, text)
			assert.ErrorIs(err, ErrParseNumber(syntax.Field), text)
		}
	}
}

func TestLoadProgram(t *testing.T) {
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "input.txt")
	assert.NoError(os.WriteFile(path, []byte("3,0,4,0,99\n"), 0o644))

	prog, err := LoadProgram(path)
	assert.NoError(err)
	assert.Equal(Program{3, 0, 4, 0, 99}, prog)

	_, err = LoadProgram(filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(err, os.ErrNotExist)

	bad := filepath.Join(t.TempDir(), "bad.txt")
	assert.NoError(os.WriteFile(bad, []byte("1,two"), 0o644))
	_, err = LoadProgram(bad)
	assert.ErrorContains(err, bad)
	assert.ErrorAs(err, &ErrSyntax{})
}

func TestProgram_Clone(t *testing.T) {
	assert := assert.New(t)

	prog := Program{1, 2, 3}
	dup := prog.Clone()
	dup[0] = 99

	assert.Equal(Program{1, 2, 3}, prog)
	assert.Equal(Program{99, 2, 3}, dup)
	assert.Equal("1,2,3", prog.String())
}

func TestProgram_Disassembly(t *testing.T) {
	assert := assert.New(t)

	prog := Program{1002, 4, 3, 4, 33, 3, 0, 104, 7, 99}

	var pcs []int
	var texts []string
	for pc, text := range prog.Disassembly() {
		pcs = append(pcs, pc)
		texts = append(texts, text)
	}

	assert.Equal([]int{0, 4, 5, 7, 9}, pcs)
	assert.Equal([]string{
		"mul.pos.imm 4 3 4",
		".data 33",
		"in 0",
		"out 7",
		"hlt",
	}, texts)
}
