package polyglot

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"maps"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadFS builds a CatalogSet from catalog files in fsys, walking the whole
// tree. The file name selects the catalog locale:
//
//	messages.yaml        → default catalog
//	messages_en.yaml     → "en"
//	messages_pt-BR.json  → "pt-BR"
//
// Supported formats are JSON and YAML (nested maps are flattened to dotted
// keys) and flat key=value properties files. Files with other extensions are
// skipped. Exactly one default catalog file is required; a file whose locale
// suffix does not parse fails with ErrInvalidFile, since catalog files are
// authored content rather than untrusted input.
func LoadFS(fsys fs.FS) (*CatalogSet, error) {
	var defaultCatalog *Catalog
	var catalogs []*Catalog

	err := fs.WalkDir(fsys, ".", func(filePath string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(path.Ext(filePath))
		parse, ok := parsersByExt[ext]
		if !ok {
			return nil
		}

		data, err := fs.ReadFile(fsys, filePath)
		if err != nil {
			return fmt.Errorf("reading %q: %w", filePath, err)
		}

		messages, err := parse(data)
		if err != nil {
			return fmt.Errorf("%w: parsing %q: %s", ErrInvalidFile, filePath, err)
		}

		base := strings.TrimSuffix(path.Base(filePath), path.Ext(filePath))
		suffix, hasSuffix := localeSuffix(base)

		if !hasSuffix {
			if defaultCatalog != nil {
				return fmt.Errorf("%w: %q is a second default catalog file", ErrDuplicateLocale, filePath)
			}
			defaultCatalog = NewDefaultCatalog(messages)
			return nil
		}

		locale, ok := ParseLocale(suffix)
		if !ok {
			return fmt.Errorf("%w: %q has an invalid locale suffix %q", ErrInvalidFile, filePath, suffix)
		}

		catalogs = append(catalogs, NewCatalog(locale, messages))
		return nil
	})
	if err != nil {
		return nil, err
	}

	return NewCatalogSet(defaultCatalog, catalogs...)
}

// localeSuffix splits "messages_pt-BR" into its locale suffix. The split is
// on the last underscore, so base names may themselves contain underscores.
func localeSuffix(base string) (string, bool) {
	i := strings.LastIndexByte(base, '_')
	if i < 0 {
		return "", false
	}
	return base[i+1:], true
}

var parsersByExt = map[string]func([]byte) (map[string]string, error){
	".json":       parseJSON,
	".yaml":       parseYAML,
	".yml":        parseYAML,
	".properties": parseProperties,
}

func parseJSON(data []byte) (map[string]string, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return flattenMessages(raw, ""), nil
}

func parseYAML(data []byte) (map[string]string, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return flattenMessages(raw, ""), nil
}

// parseProperties reads the flat key=value format classic message bundles
// use. Lines starting with '#' or '!' are comments; ':' works as a separator
// too. Values are kept verbatim after trimming surrounding whitespace.
func parseProperties(data []byte) (map[string]string, error) {
	messages := make(map[string]string)

	for lineNo, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || line[0] == '#' || line[0] == '!' {
			continue
		}

		sep := strings.IndexAny(line, "=:")
		if sep <= 0 {
			return nil, fmt.Errorf("line %d: missing separator", lineNo+1)
		}

		key := strings.TrimSpace(line[:sep])
		messages[key] = strings.TrimSpace(line[sep+1:])
	}

	return messages, nil
}

// flattenMessages collapses nested maps into dotted keys, so YAML/JSON
// catalogs may group messages hierarchically while lookups stay flat.
func flattenMessages(data map[string]any, prefix string) map[string]string {
	result := make(map[string]string)

	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			result[fullKey] = v
		case map[string]any:
			maps.Copy(result, flattenMessages(v, fullKey))
		case map[string]string:
			for subKey, subVal := range v {
				result[fullKey+"."+subKey] = subVal
			}
		default:
			result[fullKey] = fmt.Sprintf("%v", v)
		}
	}

	return result
}
