package requirements

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

type mockFileSystem struct {
	Files map[string]string
	Err   error
}

func (m *mockFileSystem) ReadFile(name string) ([]byte, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	content, ok := m.Files[name]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	return []byte(content), nil
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		content    string
		want       []string
		wantKind   error
		wantDetail string
	}{
		{
			name:    "json array",
			path:    "required.json",
			content: `["DATABASE_URL", "API_KEY"]`,
			want:    []string{"DATABASE_URL", "API_KEY"},
		},
		{
			name:    "duplicates and order preserved",
			path:    "required.json",
			content: `["B", "A", "B"]`,
			want:    []string{"B", "A", "B"},
		},
		{
			name:    "empty array",
			path:    "required.json",
			content: `[]`,
			want:    []string{},
		},
		{
			name: "jsonc comments and trailing comma",
			path: "required.json",
			content: `[
  // database
  "DATABASE_URL",
  /* auth */ "API_KEY",
]`,
			want: []string{"DATABASE_URL", "API_KEY"},
		},
		{
			name:    "unknown extension read as json",
			path:    "required.txt",
			content: `["A"]`,
			want:    []string{"A"},
		},
		{
			name:    "yaml sequence",
			path:    "required.yaml",
			content: "- DATABASE_URL\n- API_KEY\n",
			want:    []string{"DATABASE_URL", "API_KEY"},
		},
		{
			name:    "yml flow sequence",
			path:    "required.YML",
			content: `["A", "B"]`,
			want:    []string{"A", "B"},
		},
		{
			name:    "yaml quoted number is a string",
			path:    "required.yaml",
			content: "- \"123\"\n",
			want:    []string{"123"},
		},
		{
			name:       "malformed json",
			path:       "required.json",
			content:    `["A", `,
			wantKind:   ErrParse,
			wantDetail: "invalid JSON syntax",
		},
		{
			name:       "empty file",
			path:       "required.json",
			content:    "",
			wantKind:   ErrParse,
			wantDetail: "invalid JSON syntax",
		},
		{
			name:       "object instead of array",
			path:       "required.json",
			content:    `{"A": true}`,
			wantKind:   ErrParse,
			wantDetail: "expected an array of strings, got an object",
		},
		{
			name:       "non-string element",
			path:       "required.json",
			content:    `["A", 42]`,
			wantKind:   ErrParse,
			wantDetail: "element 1 is a number, not a string",
		},
		{
			name:       "yaml mapping",
			path:       "required.yaml",
			content:    "A: 1\n",
			wantKind:   ErrParse,
			wantDetail: "expected a sequence of strings",
		},
		{
			name:       "yaml non-string element",
			path:       "required.yml",
			content:    "- A\n- 7\n",
			wantKind:   ErrParse,
			wantDetail: "element 1 at line 2 is not a string",
		},
		{
			name:       "yaml empty document",
			path:       "required.yaml",
			content:    "",
			wantKind:   ErrParse,
			wantDetail: "empty YAML document",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &mockFileSystem{Files: map[string]string{tt.path: tt.content}}
			got, err := Load(m, tt.path)

			if tt.wantKind != nil {
				if !errors.Is(err, tt.wantKind) {
					t.Fatalf("Load() error = %v, want %v", err, tt.wantKind)
				}
				var loadErr *LoadError
				if !errors.As(err, &loadErr) {
					t.Fatalf("Load() error type = %T, want *LoadError", err)
				}
				if loadErr.Path != tt.path {
					t.Errorf("LoadError.Path = %q, want %q", loadErr.Path, tt.path)
				}
				if !strings.Contains(err.Error(), tt.wantDetail) {
					t.Errorf("error = %q, want it to contain %q", err.Error(), tt.wantDetail)
				}
				return
			}

			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Load() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLoad_NotFound(t *testing.T) {
	m := &mockFileSystem{Files: map[string]string{}}
	_, err := Load(m, "missing.json")

	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Load() error = %v, want ErrNotFound", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Load() error = %v, want cause fs.ErrNotExist", err)
	}
	if errors.Is(err, ErrParse) {
		t.Error("not-found error should not match ErrParse")
	}
}

func TestLoad_ReadError(t *testing.T) {
	m := &mockFileSystem{Err: fs.ErrPermission}
	_, err := Load(m, "required.json")

	if !errors.Is(err, ErrParse) {
		t.Errorf("Load() error = %v, want ErrParse", err)
	}
	if !errors.Is(err, fs.ErrPermission) {
		t.Errorf("Load() error = %v, want cause fs.ErrPermission", err)
	}
}

func TestLoadError_Error(t *testing.T) {
	err := &LoadError{Path: "r.json", Kind: ErrParse}
	if got := err.Error(); got != "r.json: invalid requirements file" {
		t.Errorf("Error() = %q", got)
	}
}

func TestLoad_RealFileSystem(t *testing.T) {
	path := filepath.Join(t.TempDir(), "required.json")
	if err := os.WriteFile(path, []byte(`["HOME_DIR"]`), 0o600); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	got, err := Load(&RealFileSystem{}, path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !reflect.DeepEqual(got, []string{"HOME_DIR"}) {
		t.Errorf("Load() = %v, want [HOME_DIR]", got)
	}
}
