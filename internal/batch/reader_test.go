package batch

import (
	"reflect"
	"testing"

	"codeberg.org/snonux/wymowa/internal/testutil"
)

func TestReadBatchFile(t *testing.T) {
	tests := []struct {
		name        string
		fileContent string
		want        []string
	}{
		{
			name:        "empty file",
			fileContent: "",
			want:        nil,
		},
		{
			name:        "only whitespace",
			fileContent: "   \n\t\r\n   ",
			want:        nil,
		},
		{
			name: "one word per line",
			fileContent: `dąb
chrząszcz
żółw`,
			want: []string{"dąb", "chrząszcz", "żółw"},
		},
		{
			name:        "several words per line",
			fileContent: "w Szczebrzeszynie\nchrząszcz brzmi  w trzcinie",
			want:        []string{"w", "Szczebrzeszynie", "chrząszcz", "brzmi", "w", "trzcinie"},
		},
		{
			name: "comments and blank lines",
			fileContent: `# animals
kot

pies # dog
  # indented comment
`,
			want: []string{"kot", "pies"},
		},
		{
			name:        "windows line endings",
			fileContent: "kot\r\npies\r\nmysz",
			want:        []string{"kot", "pies", "mysz"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadBatchFile(testutil.CreateWordList(t, tt.fileContent))
			if err != nil {
				t.Fatalf("ReadBatchFile() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ReadBatchFile() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestReadBatchFile_NonExistent(t *testing.T) {
	_, err := ReadBatchFile("/nonexistent/file.txt")
	if err == nil {
		t.Error("Expected error for non-existent file")
	}
}
