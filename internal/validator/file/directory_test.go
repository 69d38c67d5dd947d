package file

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDirectoryList_Forms(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		cfg       DirectoryConfig
		wantStr   string
		wantSlice []string
	}{
		{name: "single", cfg: SingleDir("C:/temp"), wantStr: "C:/temp", wantSlice: []string{"C:/temp"}},
		{name: "list", cfg: ListDirs("temp", "dir", "jpg"), wantStr: "temp,dir,jpg", wantSlice: []string{"temp", "dir", "jpg"}},
		{name: "delimited", cfg: DelimitedDirs("jpg, temp"), wantStr: "jpg,temp", wantSlice: []string{"jpg", "temp"}},
		{name: "blank entries dropped", cfg: DelimitedDirs(" a, ,b,,"), wantStr: "a,b", wantSlice: []string{"a", "b"}},
		{name: "list trimmed", cfg: ListDirs(" zip ", "", "ti"), wantStr: "zip,ti", wantSlice: []string{"zip", "ti"}},
		{name: "duplicates kept", cfg: ListDirs("a", "a"), wantStr: "a,a", wantSlice: []string{"a", "a"}},
		{name: "zero value", cfg: DirectoryConfig{}, wantStr: "", wantSlice: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dl := NewDirectoryList(tt.cfg)
			assert.Equal(t, tt.wantStr, dl.String())
			assert.Equal(t, tt.wantSlice, dl.Slice())
			assert.Equal(t, len(tt.wantSlice), dl.Len())
		})
	}
}

func TestDirectoryList_SetReplaces(t *testing.T) {
	dl := NewDirectoryList(SingleDir("temp"))

	dl.Set(SingleDir("gif"))
	assert.Equal(t, "gif", dl.String())
	assert.Equal(t, []string{"gif"}, dl.Slice())

	dl.Set(DelimitedDirs("jpg, temp"))
	assert.Equal(t, "jpg,temp", dl.String())
	assert.Equal(t, []string{"jpg", "temp"}, dl.Slice())

	dl.Set(ListDirs("zip", "ti"))
	assert.Equal(t, "zip,ti", dl.String())
	assert.Equal(t, []string{"zip", "ti"}, dl.Slice())
}

func TestDirectoryList_AddAppends(t *testing.T) {
	dl := NewDirectoryList(SingleDir("temp"))

	dl.Add(SingleDir("gif"))
	assert.Equal(t, "temp,gif", dl.String())

	dl.Add(DelimitedDirs("jpg, to"))
	assert.Equal(t, []string{"temp", "gif", "jpg", "to"}, dl.Slice())

	dl.Add(ListDirs("zip", "ti"))
	assert.Equal(t, "temp,gif,jpg,to,zip,ti", dl.String())

	dl.Add(DelimitedDirs(""))
	dl.Add(SingleDir(""))
	assert.Equal(t, "temp,gif,jpg,to,zip,ti", dl.String())
	assert.Equal(t, []string{"temp", "gif", "jpg", "to", "zip", "ti"}, dl.Slice())
}

func TestDirectoryList_SliceIsCopy(t *testing.T) {
	dl := NewDirectoryList(ListDirs("a", "b"))
	got := dl.Slice()
	got[0] = "changed"
	require.Equal(t, []string{"a", "b"}, dl.Slice())
}
