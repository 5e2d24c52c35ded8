package main

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Answer is one reported result.
type Answer struct {
	Name   string  `yaml:"name"`
	Value  int64   `yaml:"value"`
	Id     *int64  `yaml:"id,omitempty"`
	Phases []int64 `yaml:"phases,omitempty,flow"`
}

// writeAnswers prints the answers in the selected format.
func writeAnswers(w io.Writer, format string, answers []Answer) (err error) {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		err = enc.Encode(answers)
		if err != nil {
			return
		}
		err = enc.Close()
	default:
		for _, answer := range answers {
			_, err = fmt.Fprintf(w, "%v = %v\n", answer.Name, answer.Value)
			if err != nil {
				return
			}
		}
	}

	return
}
