package settings

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"

	"github.com/spf13/afero"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

// DefaultConfigPath is the host's persisted settings file, relative to the
// working directory.
const DefaultConfigPath = "config.json"

const configFileMode os.FileMode = 0o644

var prettyOptions = &pretty.Options{Indent: "    "}

// LoadValues decodes the persisted settings file. A missing file yields an
// empty map.
func LoadValues(fsys afero.Fs, path string) (map[string]any, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]any{}, nil
		}
		return nil, fmt.Errorf("settings: read %s: %w", path, err)
	}
	values := map[string]any{}
	if len(bytes.TrimSpace(data)) == 0 {
		return values, nil
	}
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("settings: parse %s: %w", path, err)
	}
	return values, nil
}

// CleanupStaleFields removes keys from the persisted settings file and
// rewrites it with 4-space indentation, preserving the order of the remaining
// keys. The file is only written when at least one key was present, so
// running it again is a no-op. A missing file is not an error.
func CleanupStaleFields(fsys afero.Fs, path string, keys ...string) (bool, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("settings: read %s: %w", path, err)
	}
	out, changed, err := rewriteObject(data, keys, nil)
	if err != nil {
		return false, fmt.Errorf("settings: cleanup %s: %w", path, err)
	}
	if !changed {
		return false, nil
	}
	if err := afero.WriteFile(fsys, path, out, fileMode(fsys, path)); err != nil {
		return false, fmt.Errorf("settings: write %s: %w", path, err)
	}
	return true, nil
}

// UpdateValues writes values into the persisted settings file. Existing keys
// are replaced in place and new keys are appended in sorted order. A missing
// file is created.
func UpdateValues(fsys afero.Fs, path string, values map[string]any) error {
	if len(values) == 0 {
		return nil
	}
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("settings: read %s: %w", path, err)
		}
		data = []byte("{}")
	}
	encoded := make(map[string][]byte, len(values))
	for key, value := range values {
		raw, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("settings: encode %s: %w", key, err)
		}
		encoded[key] = raw
	}
	out, changed, err := rewriteObject(data, nil, encoded)
	if err != nil {
		return fmt.Errorf("settings: update %s: %w", path, err)
	}
	if !changed {
		return nil
	}
	if err := afero.WriteFile(fsys, path, out, fileMode(fsys, path)); err != nil {
		return fmt.Errorf("settings: write %s: %w", path, err)
	}
	return nil
}

// rewriteObject rebuilds a top-level JSON object, dropping the remove keys and
// replacing or appending the set values, then re-indents it. Key order of the
// original document is preserved.
func rewriteObject(data []byte, remove []string, set map[string][]byte) ([]byte, bool, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		data = []byte("{}")
	}
	if !gjson.ValidBytes(data) {
		return nil, false, errors.New("invalid JSON")
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, false, errors.New("document root is not an object")
	}

	var (
		buf     bytes.Buffer
		changed bool
		written = make(map[string]struct{}, len(set))
		first   = true
	)
	appendMember := func(rawKey string, rawValue []byte) {
		if !first {
			buf.WriteByte(',')
		}
		first = false
		buf.WriteString(rawKey)
		buf.WriteByte(':')
		buf.Write(rawValue)
	}

	buf.WriteByte('{')
	root.ForEach(func(key, value gjson.Result) bool {
		name := key.String()
		if slices.Contains(remove, name) {
			changed = true
			return true
		}
		if raw, ok := set[name]; ok {
			written[name] = struct{}{}
			if !jsonEqual([]byte(value.Raw), raw) {
				changed = true
			}
			appendMember(key.Raw, raw)
			return true
		}
		appendMember(key.Raw, []byte(value.Raw))
		return true
	})

	var pending []string
	for name := range set {
		if _, ok := written[name]; !ok {
			pending = append(pending, name)
		}
	}
	slices.Sort(pending)
	for _, name := range pending {
		rawKey, _ := json.Marshal(name)
		appendMember(string(rawKey), set[name])
		changed = true
	}
	buf.WriteByte('}')

	if !changed {
		return data, false, nil
	}
	return pretty.PrettyOptions(buf.Bytes(), prettyOptions), true, nil
}

func jsonEqual(a, b []byte) bool {
	return bytes.Equal(pretty.Ugly(a), pretty.Ugly(b))
}

func fileMode(fsys afero.Fs, path string) os.FileMode {
	if info, err := fsys.Stat(path); err == nil {
		return info.Mode().Perm()
	}
	return configFileMode
}
