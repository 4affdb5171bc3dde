package export

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"gopkg.in/yaml.v3"

	"github.com/Paintersrp/notes/internal/note"
)

func sample() []note.Note {
	return []note.Note{
		{
			ID:        "note-1",
			Title:     "Groceries",
			Body:      "Milk, **eggs**\n<script>alert(1)</script>",
			CreatedAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		},
		{ID: "note-2", Title: "Ideas & <plans>", Body: "- one\n- two", Archived: true},
	}
}

func TestParseFormat(t *testing.T) {
	tests := map[string]Format{"md": Markdown, ".markdown": Markdown, "HTML": HTML, "json": JSON}
	for in, want := range tests {
		got, err := ParseFormat(in)
		if err != nil || got != want {
			t.Fatalf("ParseFormat(%q) = %q, %v; want %q", in, got, err, want)
		}
	}

	if _, err := ParseFormat("pdf"); err == nil {
		t.Fatalf("expected pdf to be rejected")
	}
}

func TestMarkdownFrontMatter(t *testing.T) {
	out, err := Render(sample(), Markdown)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	if got := strings.Count(string(out), "---\n"); got != 4 {
		t.Fatalf("expected two front matter blocks, got %d delimiters in %q", got, out)
	}

	first := strings.SplitN(strings.TrimPrefix(string(out), "---\n"), "---\n", 2)
	var front map[string]any
	if err := yaml.Unmarshal([]byte(first[0]), &front); err != nil {
		t.Fatalf("front matter is not valid yaml: %v", err)
	}
	if front["id"] != "note-1" || front["title"] != "Groceries" {
		t.Fatalf("unexpected front matter %v", front)
	}
	if _, ok := front["body"]; ok {
		t.Fatalf("body must not be part of the front matter")
	}
	if !strings.Contains(first[1], "Milk, **eggs**") {
		t.Fatalf("expected body after front matter, got %q", first[1])
	}
}

func TestHTMLEscapesTitleAndDropsRawHTML(t *testing.T) {
	out, err := Render(sample(), HTML)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	page := string(out)
	if !strings.Contains(page, "<strong>eggs</strong>") {
		t.Fatalf("expected rendered markdown, got %q", page)
	}
	if strings.Contains(page, "<script>") {
		t.Fatalf("raw html must not pass through")
	}
	if !strings.Contains(page, "Ideas &amp; &lt;plans&gt;") {
		t.Fatalf("expected escaped title, got %q", page)
	}
	if !strings.Contains(page, `class="archived"`) {
		t.Fatalf("expected archived marker")
	}
}

func TestJSONRoundTrips(t *testing.T) {
	out, err := Render(nil, JSON)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if strings.TrimSpace(string(out)) != "[]" {
		t.Fatalf("expected empty array, got %q", out)
	}

	out, err = Render(sample(), JSON)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	var notes []note.Note
	if err := json.Unmarshal(out, &notes); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(notes) != 2 || notes[1].ID != "note-2" || !notes[1].Archived {
		t.Fatalf("unexpected notes %+v", notes)
	}
}

func TestParseS3URL(t *testing.T) {
	bucket, key, err := ParseS3URL("s3://backups/notes/2024.md")
	if err != nil || bucket != "backups" || key != "notes/2024.md" {
		t.Fatalf("unexpected result %q %q %v", bucket, key, err)
	}

	for _, bad := range []string{"https://x/y", "s3://bucket", "s3://bucket/dir/", "s3:///key"} {
		if _, _, err := ParseS3URL(bad); err == nil {
			t.Fatalf("expected %q to be rejected", bad)
		}
	}
}

type fakeUploader struct {
	input *s3.PutObjectInput
	body  string
	err   error
}

func (f *fakeUploader) Upload(ctx context.Context, input *s3.PutObjectInput, opts ...func(*manager.Uploader)) (*manager.UploadOutput, error) {
	f.input = input
	data, _ := io.ReadAll(input.Body)
	f.body = string(data)
	if f.err != nil {
		return nil, f.err
	}
	return &manager.UploadOutput{Location: "https://backups.s3/" + aws.ToString(input.Key)}, nil
}

func TestUploadPutsObject(t *testing.T) {
	fake := &fakeUploader{}
	u := &S3Uploader{api: fake}

	loc, err := u.Upload(context.Background(), "s3://backups/notes.json", []byte("[]"), JSON)
	if err != nil {
		t.Fatalf("upload failed: %v", err)
	}

	if loc != "https://backups.s3/notes.json" {
		t.Fatalf("unexpected location %q", loc)
	}
	if aws.ToString(fake.input.Bucket) != "backups" || aws.ToString(fake.input.ContentType) != "application/json" {
		t.Fatalf("unexpected input %+v", fake.input)
	}
	if fake.body != "[]" {
		t.Fatalf("unexpected body %q", fake.body)
	}

	fake.err = errors.New("denied")
	if _, err := u.Upload(context.Background(), "s3://backups/notes.json", nil, JSON); err == nil {
		t.Fatalf("expected upload error")
	}
}
