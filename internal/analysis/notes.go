package analysis

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
	"text/template"

	"ncaam_v5/strategy/internal/models"

	"gopkg.in/yaml.v3"
)

//go:embed notes.yaml
var defaultNotesYAML []byte

const notesLayout = `Recommended Coaching Notes:

Tempo Profile: ~{{printf "%.1f" .Tempo}} possessions/game ({{.Bucket}} classification).

Offensive Ideas:
{{range .Offense}}- {{.}}
{{end}}
Defensive Ideas:
{{range .Defense}}- {{.}}
{{end}}
Rotation/Personnel Notes:
{{range .Rotation}}- {{.}}
{{end}}`

var notesTemplate = template.Must(template.New("notes").Parse(notesLayout))

// BucketNotes are the static coaching bullets for one tempo bucket
type BucketNotes struct {
	Offense  []string `yaml:"offense"`
	Defense  []string `yaml:"defense"`
	Rotation []string `yaml:"rotation"`
}

// NotesBook holds coaching notes for every tempo bucket
type NotesBook struct {
	buckets map[models.TempoBucket]BucketNotes
}

// DefaultNotes returns the embedded coaching notes
func DefaultNotes() *NotesBook {
	book, err := ParseNotes(defaultNotesYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded notes.yaml is invalid: %v", err))
	}
	return book
}

// LoadNotes reads coaching notes from a YAML file
func LoadNotes(path string) (*NotesBook, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read notes file: %w", err)
	}
	return ParseNotes(data)
}

// ParseNotes decodes coaching notes and checks every bucket is covered
func ParseNotes(data []byte) (*NotesBook, error) {
	var raw map[string]BucketNotes
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse notes: %w", err)
	}

	book := &NotesBook{buckets: make(map[models.TempoBucket]BucketNotes, len(models.TempoBuckets))}
	for _, bucket := range models.TempoBuckets {
		notes, ok := raw[string(bucket)]
		if !ok {
			return nil, fmt.Errorf("notes missing bucket %q", bucket)
		}
		if len(notes.Offense) == 0 || len(notes.Defense) == 0 || len(notes.Rotation) == 0 {
			return nil, fmt.Errorf("notes for bucket %q need offense, defense and rotation entries", bucket)
		}
		book.buckets[bucket] = notes
	}

	return book, nil
}

// Render fills the bucket's notes with the tempo value and bucket name
func (b *NotesBook) Render(bucket models.TempoBucket, tempo float64) (string, error) {
	notes, ok := b.buckets[bucket]
	if !ok {
		return "", fmt.Errorf("no coaching notes for bucket %q", bucket)
	}

	var sb strings.Builder
	err := notesTemplate.Execute(&sb, struct {
		BucketNotes
		Tempo  float64
		Bucket models.TempoBucket
	}{notes, tempo, bucket})
	if err != nil {
		return "", fmt.Errorf("failed to render notes: %w", err)
	}

	return sb.String(), nil
}
