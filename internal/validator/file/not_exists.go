package file

import (
	"path/filepath"

	"github.com/spf13/afero"
)

const (
	// DoesExist is the message key set when the file was found
	DoesExist = "fileNotExistsDoesExist"

	defaultDoesExistMessage = "File exists"
)

// NotExists reports a file as valid when none of its directories contain it.
// An empty directory list accepts everything.
//
// Check may run concurrently as long as the directory list is not changed at
// the same time. IsValid records messages on the validator and may not.
type NotExists struct {
	fs        afero.Fs
	dirs      *DirectoryList
	templates map[string]string
	messages  map[string]string
}

// Option configures a NotExists validator
type Option func(*NotExists)

// WithFs swaps the filesystem used for existence checks.
func WithFs(fs afero.Fs) Option {
	return func(v *NotExists) {
		v.fs = fs
	}
}

// NewNotExists creates a validator checking the directories in cfg.
func NewNotExists(cfg DirectoryConfig, opts ...Option) *NotExists {
	v := &NotExists{
		fs:   afero.NewOsFs(),
		dirs: NewDirectoryList(cfg),
		templates: map[string]string{
			DoesExist: defaultDoesExistMessage,
		},
		messages: map[string]string{},
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Directory returns the configured directories joined with ",".
func (v *NotExists) Directory() string {
	return v.dirs.String()
}

// DirectorySlice returns the configured directories in order.
func (v *NotExists) DirectorySlice() []string {
	return v.dirs.Slice()
}

func (v *NotExists) SetDirectory(cfg DirectoryConfig) *NotExists {
	v.dirs.Set(cfg)
	return v
}

func (v *NotExists) AddDirectory(cfg DirectoryConfig) *NotExists {
	v.dirs.Add(cfg)
	return v
}

// SetMessage overrides the text reported for key.
func (v *NotExists) SetMessage(key, text string) {
	v.templates[key] = text
}

// Message returns the text reported for key.
func (v *NotExists) Message(key string) string {
	return v.templates[key]
}

// Result is the outcome of a single check
type Result struct {
	Valid    bool              `json:"valid"`
	FileName string            `json:"filename"`
	Messages map[string]string `json:"messages"`
}

// Check runs the rule without touching the validator's message state, so it
// can be shared between goroutines.
func (v *NotExists) Check(in Input) Result {
	res := Result{
		Valid:    true,
		FileName: in.FileName(),
		Messages: map[string]string{},
	}
	if _, found := v.Lookup(in); found {
		res.Valid = false
		res.Messages[DoesExist] = v.templates[DoesExist]
	}
	return res
}

// IsValid reports whether the input's file name is absent from every
// configured directory. Stat failures of any kind count as absent.
func (v *NotExists) IsValid(in Input) bool {
	res := v.Check(in)
	v.messages = res.Messages
	return res.Valid
}

// Lookup returns the first path under the configured directories where the
// input's file name exists.
func (v *NotExists) Lookup(in Input) (string, bool) {
	name := in.FileName()
	for _, dir := range v.dirs.dirs {
		candidate := filepath.Join(dir, name)
		if _, err := v.fs.Stat(candidate); err == nil {
			return candidate, true
		}
	}
	return "", false
}

// Messages returns the failures of the most recent IsValid call.
func (v *NotExists) Messages() map[string]string {
	out := make(map[string]string, len(v.messages))
	for k, msg := range v.messages {
		out[k] = msg
	}
	return out
}
