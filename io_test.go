package qap

import (
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteInstanceFormat(t *testing.T) {
	inst := QAPInstance{
		Type:     TYPE_QAP,
		Size:     2,
		Distance: [][]int{{0, 3}, {4, 0}},
		Flow:     [][]int{{0, 7}, {8, 0}},
	}
	fileName := filepath.Join(t.TempDir(), "tiny.txt")
	require.NoError(t, WriteInstance(inst, fileName))

	b, err := ioutil.ReadFile(fileName)
	require.NoError(t, err)
	assert.Equal(t, "2\n0 3\n4 0\n0 7\n8 0\n", string(b))
}

func TestWriteReadRoundTrip(t *testing.T) {
	inst := NewInstance("roundtrip", 12, 3, 5)
	fileName := filepath.Join(t.TempDir(), "inst.txt")
	require.NoError(t, WriteInstance(inst, fileName))

	got, err := ReadInstance(fileName)
	require.NoError(t, err)
	assert.Equal(t, inst.Size, got.Size)
	assert.Equal(t, inst.Distance, got.Distance)
	assert.Equal(t, inst.Flow, got.Flow)
}

func TestWriteInstanceMissingDir(t *testing.T) {
	inst := NewInstance("nodir", 4, 2, 1)
	err := WriteInstance(inst, filepath.Join(t.TempDir(), "missing", "inst.txt"))
	require.Error(t, err)
}

func TestReadInstanceErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := ReadInstance(filepath.Join(dir, "absent.txt"))
	require.Error(t, err)

	empty := filepath.Join(dir, "empty.txt")
	require.NoError(t, ioutil.WriteFile(empty, []byte("  \n"), 0644))
	_, err = ReadInstance(empty)
	require.Error(t, err)

	badSize := filepath.Join(dir, "badsize.txt")
	require.NoError(t, ioutil.WriteFile(badSize, []byte("two\n1 2\n3 4\n"), 0644))
	_, err = ReadInstance(badSize)
	require.Error(t, err)

	truncated := filepath.Join(dir, "trunc.txt")
	require.NoError(t, ioutil.WriteFile(truncated, []byte("2\n0 3\n4 0\n0 7\n"), 0644))
	_, err = ReadInstance(truncated)
	require.Error(t, err)
}

func TestJsonRoundTrip(t *testing.T) {
	inst := NewInstance("json_roundtrip", 8, 2, 13)
	inst.Comment = "json_roundtrip instance with 8 locations in 2 clusters, generated with seed 13"
	inst.System = &SysInfo{Platform: "linux", CPU: "test", RAM: "16 GB"}
	fileName := filepath.Join(t.TempDir(), "inst.json")
	require.NoError(t, WriteInstanceJson(inst, fileName))

	got, err := ReadInstanceJson(fileName)
	require.NoError(t, err)
	assert.Equal(t, inst, got)
}

func TestFormatMatrix(t *testing.T) {
	assert.Equal(t, "0 1\n2 0\n", FormatMatrix([][]int{{0, 1}, {2, 0}}))
	assert.Equal(t, "", FormatMatrix(nil))
}

func TestSanitizeJsonArrayLineBreaks(t *testing.T) {
	in := "[\n\t1,\n\t2,\n\t3\n]\n"
	assert.Equal(t, "[1,2,3]\n", SanitizeJsonArrayLineBreaks(in))
}
