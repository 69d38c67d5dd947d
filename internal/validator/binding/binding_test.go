package binding

import (
	"mime/multipart"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nyasuto/fileguard/internal/validator/file"
)

type pathRequest struct {
	Path string `validate:"required,file_not_exists"`
}

type uploadRequest struct {
	File *multipart.FileHeader `validate:"required,file_not_exists"`
}

func newRule(t *testing.T) *file.NotExists {
	t.Helper()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/store/taken.txt", []byte("x"), 0o644))
	return file.NewNotExists(file.SingleDir("/store"), file.WithFs(fs))
}

func TestRegister_StringField(t *testing.T) {
	v, err := New(newRule(t))
	require.NoError(t, err)

	require.NoError(t, v.Struct(pathRequest{Path: "/incoming/free.txt"}))

	err = v.Struct(pathRequest{Path: "/incoming/taken.txt"})
	require.Error(t, err)
	assert.Equal(t, []string{"Path"}, Failed(err))
}

func TestRegister_UploadField(t *testing.T) {
	v, err := New(newRule(t))
	require.NoError(t, err)

	require.NoError(t, v.Struct(uploadRequest{File: &multipart.FileHeader{Filename: "free.txt"}}))

	err = v.Struct(uploadRequest{File: &multipart.FileHeader{Filename: "taken.txt"}})
	require.Error(t, err)
	assert.Equal(t, []string{"File"}, Failed(err))
}

func TestRegister_RequiresArguments(t *testing.T) {
	assert.Error(t, Register(nil, newRule(t)))
	_, err := New(nil)
	assert.Error(t, err)
}

func TestFailed_IgnoresOtherTags(t *testing.T) {
	v, err := New(newRule(t))
	require.NoError(t, err)

	err = v.Struct(pathRequest{})
	require.Error(t, err)
	assert.Empty(t, Failed(err))
	assert.Nil(t, Failed(assert.AnError))
}
