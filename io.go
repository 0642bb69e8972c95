package qap

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"strconv"
	"strings"
)

// WriteInstance serializes inst into the flat text format consumed by the
// QAP solvers: the size on the first line, then the size rows of the
// distance matrix, then the size rows of the flow matrix.
func WriteInstance(inst QAPInstance, fileName string) error {
	var sb strings.Builder
	sb.WriteString(strconv.Itoa(inst.Size))
	sb.WriteByte('\n')
	sb.WriteString(FormatMatrix(inst.Distance))
	sb.WriteString(FormatMatrix(inst.Flow))
	return ioutil.WriteFile(fileName, []byte(sb.String()), 0644)
}

// ReadInstance parses a text instance file written by WriteInstance. The
// parser only tokenizes on whitespace, so any value layout with the right
// count of integers is accepted.
func ReadInstance(fileName string) (QAPInstance, error) {
	var inst QAPInstance
	b, err := ioutil.ReadFile(fileName)
	if err != nil {
		return inst, err
	}
	fields := strings.Fields(string(b))
	if len(fields) == 0 {
		return inst, fmt.Errorf("instance file %s is empty", fileName)
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil {
		return inst, fmt.Errorf("instance file %s: bad size %q: %s", fileName, fields[0], err.Error())
	}
	if len(fields)-1 != 2*n*n {
		return inst, fmt.Errorf("instance file %s: got %d matrix values, want %d for size %d", fileName, len(fields)-1, 2*n*n, n)
	}
	inst.Type = TYPE_QAP
	inst.Size = n
	inst.Distance, err = parseMatrix(fields[1:1+n*n], n)
	if err != nil {
		return inst, fmt.Errorf("instance file %s: distance matrix: %s", fileName, err.Error())
	}
	inst.Flow, err = parseMatrix(fields[1+n*n:], n)
	if err != nil {
		return inst, fmt.Errorf("instance file %s: flow matrix: %s", fileName, err.Error())
	}
	return inst, nil
}

func parseMatrix(fields []string, n int) ([][]int, error) {
	a := make([][]int, n)
	for i := 0; i < n; i++ {
		a[i] = make([]int, n)
		for j := 0; j < n; j++ {
			v, err := strconv.Atoi(fields[i*n+j])
			if err != nil {
				return nil, err
			}
			a[i][j] = v
		}
	}
	return a, nil
}

// WriteInstanceJson serializes inst as indented JSON with the numeric arrays
// compacted onto single lines.
func WriteInstanceJson(inst QAPInstance, fileName string) error {
	jsonInst, err := json.MarshalIndent(inst, "", "\t")
	if err != nil {
		return err
	}
	jsonInst = []byte(SanitizeJsonArrayLineBreaks(string(jsonInst)))
	return ioutil.WriteFile(fileName, jsonInst, 0644)
}

// ReadInstanceJson parses a JSON instance file written by WriteInstanceJson.
func ReadInstanceJson(fileName string) (QAPInstance, error) {
	var inst QAPInstance
	b, err := ioutil.ReadFile(fileName)
	if err != nil {
		return inst, err
	}
	err = json.Unmarshal(b, &inst)
	return inst, err
}
