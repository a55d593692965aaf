package scene

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestTitleCase(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"three-spheres", "Three Spheres"},
		{"mirror_hall", "Mirror Hall"},
		{"my-custom-scene", "My Custom Scene"},
		{"simple", "Simple"},
		{"UPPER-case", "Upper Case"},
		{"", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			result := titleCase(tc.input)
			if result != tc.expected {
				t.Errorf("titleCase(%q) = %q, want %q", tc.input, result, tc.expected)
			}
		})
	}
}

func writeSceneFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write scene file: %v", err)
	}
	return path
}

func TestParseYAMLMetadata(t *testing.T) {
	testCases := []struct {
		name     string
		content  string
		expected SceneInfo
	}{
		{
			name: "complete_metadata.yml",
			content: `# Scene: Mirror Hall
# Variant: Deep
# Description: Two facing mirrors
# Group: Reflection Tests

- add: camera
  hsize: 100
`,
			expected: SceneInfo{
				ID:          "yaml:complete_metadata",
				Name:        "Mirror Hall",
				DisplayName: "Mirror Hall - Deep",
				Description: "Two facing mirrors",
				Group:       "Reflection Tests",
				Type:        "yaml",
				Variant:     "Deep",
			},
		},
		{
			name: "partial_metadata.yaml",
			content: `# Scene: Spheres
# Description: A few spheres
- add: sphere
`,
			expected: SceneInfo{
				ID:          "yaml:partial_metadata",
				Name:        "Spheres",
				DisplayName: "Spheres",
				Description: "A few spheres",
				Group:       "YAML Scenes",
				Type:        "yaml",
			},
		},
		{
			name:    "no_metadata.yml",
			content: `- add: sphere`,
			expected: SceneInfo{
				ID:          "yaml:no_metadata",
				Name:        "No Metadata",
				DisplayName: "No Metadata",
				Group:       "YAML Scenes",
				Type:        "yaml",
			},
		},
		{
			name: "comment_after_content.yml",
			content: `- add: sphere
# Scene: Ignored
`,
			expected: SceneInfo{
				ID:          "yaml:comment_after_content",
				Name:        "Comment After Content",
				DisplayName: "Comment After Content",
				Group:       "YAML Scenes",
				Type:        "yaml",
			},
		},
	}

	dir := t.TempDir()
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeSceneFile(t, dir, tc.name, tc.content)

			result, err := ParseYAMLMetadata(path)
			if err != nil {
				t.Fatalf("ParseYAMLMetadata() error: %v", err)
			}

			tc.expected.FilePath = path
			if result != tc.expected {
				t.Errorf("ParseYAMLMetadata() = %+v, want %+v", result, tc.expected)
			}
		})
	}
}

func TestParseYAMLMetadata_MissingFile(t *testing.T) {
	if _, err := ParseYAMLMetadata(filepath.Join(t.TempDir(), "missing.yml")); err == nil {
		t.Error("Expected an error for a missing file")
	}
}

func TestListYAMLScenes(t *testing.T) {
	dir := t.TempDir()
	writeSceneFile(t, dir, "b-scene.yml", "# Scene: Beta\n- add: sphere\n")
	writeSceneFile(t, dir, "a-scene.yaml", "# Scene: Alpha\n- add: sphere\n")
	writeSceneFile(t, dir, "notes.txt", "# Scene: Not a scene\n")

	scenes, err := ListYAMLScenes(dir)
	if err != nil {
		t.Fatalf("ListYAMLScenes() error: %v", err)
	}
	if len(scenes) != 2 {
		t.Fatalf("Expected 2 scenes, got %d", len(scenes))
	}
	if scenes[0].Name != "Alpha" || scenes[1].Name != "Beta" {
		t.Errorf("Expected scenes sorted by name, got %q then %q", scenes[0].Name, scenes[1].Name)
	}
}

func TestListYAMLScenes_MissingDirectory(t *testing.T) {
	scenes, err := ListYAMLScenes(filepath.Join(t.TempDir(), "nowhere"))
	if err != nil {
		t.Errorf("ListYAMLScenes() error: %v", err)
	}
	if scenes == nil || len(scenes) != 0 {
		t.Errorf("Expected an empty slice, got %v", scenes)
	}
}

func TestListAllScenes(t *testing.T) {
	dir := t.TempDir()
	writeSceneFile(t, dir, "custom.yml", "# Scene: Custom\n# Group: Extras\n- add: sphere\n")
	writeSceneFile(t, dir, "plain.yml", "- add: sphere\n")

	groups, err := ListAllScenes(dir)
	if err != nil {
		t.Fatalf("ListAllScenes() error: %v", err)
	}

	var names []string
	for _, g := range groups {
		names = append(names, g.Name)
	}
	expected := []string{"Built-in Scenes", "Extras", "YAML Scenes"}
	if strings.Join(names, ",") != strings.Join(expected, ",") {
		t.Fatalf("Expected groups %v, got %v", expected, names)
	}

	expectedIDs := []string{"default", "reflection", "patterns"}
	if len(groups[0].Scenes) != len(expectedIDs) {
		t.Fatalf("Built-in scenes count = %d, want %d", len(groups[0].Scenes), len(expectedIDs))
	}
	for i, id := range expectedIDs {
		s := groups[0].Scenes[i]
		if s.ID != id || s.Type != "builtin" || s.DisplayName == "" {
			t.Errorf("Unexpected built-in scene %+v", s)
		}
	}

	for _, g := range groups[1:] {
		for _, s := range g.Scenes {
			if s.Type != "yaml" || s.FilePath == "" || !strings.HasPrefix(s.ID, "yaml:") {
				t.Errorf("Unexpected YAML scene %+v", s)
			}
		}
	}
}
