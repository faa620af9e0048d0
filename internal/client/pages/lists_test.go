package pages

import (
	"context"
	"sort"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreview(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", "No content available"},
		{"   ", "No content available"},
		{"One sentence only", "One sentence only"},
		{"First. Second!", "First. Second"},
		{"First. Second? Third. Fourth.", "First. Second..."},
		{"Wait... what?! Really. Yes.", "Wait. what..."},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Preview(tt.in), "input %q", tt.in)
	}
}

func TestExcerpt(t *testing.T) {
	assert.Equal(t, "No content available", Excerpt("", 200))
	assert.Equal(t, "short", Excerpt("short", 200))

	long := strings.Repeat("ä", 250)
	got := Excerpt(long, 200)
	assert.Equal(t, strings.Repeat("ä", 200)+"...", got)
}

func TestStoriesList(t *testing.T) {
	be := newMemBackend(owner)
	ann := be.addAuthor("Ann")
	be.addStory("", "A. B. C.", ann.ID, owner)

	got, err := NewStoriesList(memStories{be}).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Untitled Story", got[0].Title)
	assert.Equal(t, "Ann", got[0].Author)
	assert.Equal(t, "A. B...", got[0].Preview)
}

func TestAuthorsListAndPage(t *testing.T) {
	be := newMemBackend(owner)
	ann := be.addAuthor("Ann")
	bob := be.addAuthor("Bob")
	s := be.addStory("Long one", strings.Repeat("x", 201), ann.ID, owner)

	summaries, err := NewAuthorsList(memAuthors{be}).Load(context.Background())
	require.NoError(t, err)
	sort.Slice(summaries, func(i, j int) bool { return summaries[i].ID < summaries[j].ID })
	want := []AuthorSummary{{ID: ann.ID, Name: "Ann", StoryCount: 1}, {ID: bob.ID, Name: "Bob", StoryCount: 0}}
	if diff := cmp.Diff(want, summaries); diff != "" {
		t.Errorf("authors mismatch (-want +got):\n%s", diff)
	}

	view, err := NewAuthorPage(memAuthors{be}).Load(context.Background(), bob.ID)
	require.NoError(t, err)
	assert.Empty(t, view.Stories)

	view, err = NewAuthorPage(memAuthors{be}).Load(context.Background(), ann.ID)
	require.NoError(t, err)
	require.Len(t, view.Stories, 1)
	assert.Equal(t, s.ID, view.Stories[0].ID)
	assert.Equal(t, strings.Repeat("x", 200)+"...", view.Stories[0].Excerpt)
}

func TestCheckInsList(t *testing.T) {
	be := newMemBackend(owner)
	in := sampleCheckIn()
	in.Description = strings.Repeat("d", 150)
	_, err := memCheckIns{be}.Create(context.Background(), in)
	require.NoError(t, err)

	got, err := NewCheckInsList(memCheckIns{be}).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Work", got[0].Category)
	assert.Equal(t, strings.Repeat("d", 100)+"...", got[0].Snippet)
}

func TestEmergencyResources(t *testing.T) {
	sections := EmergencyResources()
	require.Len(t, sections, 4)
	assert.Equal(t, "Immediate Danger", sections[0].Title)
	assert.Equal(t, "911", sections[0].Resources[1].Contact)
	assert.NotEmpty(t, SafetyNote)
}
