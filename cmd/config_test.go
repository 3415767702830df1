package cmd

import "testing"

func TestCheckDocument(t *testing.T) {
	tests := []struct {
		name     string
		doc      string
		problems int
	}{
		{
			name: "valid",
			doc: `commands:
  - label: A
    insert: a
`,
			problems: 0,
		},
		{
			name:     "empty file",
			doc:      "",
			problems: 0,
		},
		{
			name: "misspelled field",
			doc: `commands:
  - lable: A
    insert: a
`,
			problems: 1,
		},
		{
			name: "missing payload",
			doc: `commands:
  - label: A
`,
			problems: 1,
		},
		{
			name: "unparseable",
			doc: `commands: [unclosed
`,
			problems: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := checkDocument("test.yaml", []byte(tt.doc)); got != tt.problems {
				t.Errorf("checkDocument = %d problems, want %d", got, tt.problems)
			}
		})
	}
}

func TestContainsFold(t *testing.T) {
	if !containsFold("Markdown/Tables", "tables") {
		t.Error("expected case-insensitive match")
	}
	if containsFold("Headers", "markdown") {
		t.Error("unexpected match")
	}
}
