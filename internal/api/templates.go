package api

import (
	"encoding/json"
	"html/template"
	"path/filepath"
	"time"
)

func LoadTemplates() (*template.Template, error) {
	funcs := template.FuncMap{
		"add": func(a, b int) int { return a + b },
		"sub": func(a, b int) int { return a - b },
		"min": func(a, b int) int {
			if a < b {
				return a
			}
			return b
		},
		"max": func(a, b int) int {
			if a > b {
				return a
			}
			return b
		},
		// pct renders part/total as a whole-number percentage.
		"pct": func(part, total int) int {
			if total <= 0 {
				return 0
			}
			return part * 100 / total
		},
		// date formats a timestamp for display.
		"date": func(t time.Time) string {
			return t.Format("Jan 2, 2006")
		},
		// json marshals a value to a JSON string for inline script data
		"json": func(v interface{}) (string, error) {
			b, err := json.Marshal(v)
			if err != nil {
				return "", err
			}
			return string(b), nil
		},
	}

	t := template.New("base").Funcs(funcs)

	patterns := []string{
		"web/templates/layouts/*.html",
		"web/templates/pages/*.html",
		"web/templates/partials/*.html",
	}
	for _, p := range patterns {
		if matches, _ := filepath.Glob(p); len(matches) == 0 {
			continue
		}
		if _, err := t.ParseGlob(p); err != nil {
			return nil, err
		}
	}

	return t, nil
}
