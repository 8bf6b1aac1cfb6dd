package content

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_Counts(t *testing.T) {
	s := Default()
	assert.Len(t, s.Skills, 3)
	assert.Len(t, s.Projects, 3)
	assert.Len(t, s.AutomationAgents, 3)
	assert.Len(t, s.Experience, 2)
	assert.Len(t, s.Certifications, 3)
	assert.NotEmpty(t, s.Education.Degree)
	assert.Len(t, s.Personal.Titles, 4)
	assert.Empty(t, s.Gaps())
	assert.Empty(t, s.Source)
}

func TestDefault_FreshCopy(t *testing.T) {
	a := Default()
	a.Projects[0].Title = "changed"
	assert.NotEqual(t, "changed", Default().Projects[0].Title)
}

func TestLoad_EmptyPathUsesDefault(t *testing.T) {
	s, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default().Personal.Name, s.Personal.Name)
}

const yamlDoc = `
personal:
  name: Ada
  titles: [Engineer, Writer]
  tagline: Builds things
  about:
    summary: Hello.
  contact:
    email: ada@example.com
projects:
  - title: One
    link: https://example.com/1
  - title: Two
experience:
  - title: Dev
    company: Acme
    period: "2020"
`

func TestLoad_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yamlDoc), 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, s.Source)
	assert.Equal(t, "Ada", s.Personal.Name)
	assert.Equal(t, []string{"Engineer", "Writer"}, s.Personal.Titles)
	require.Len(t, s.Projects, 2)
	assert.Equal(t, "Two", s.Projects[1].Title)
	assert.Equal(t, []string{"projects[1].link", "education.degree"}, s.Gaps())
}

func TestLoad_FrontMatter(t *testing.T) {
	doc := "---\n" + yamlDoc + "---\n\nI write **Go**.\n"
	path := filepath.Join(t.TempDir(), "content.md")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Ada", s.Personal.Name)
	assert.Equal(t, "I write **Go**.", s.Personal.About.Summary)
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "content.json")
	require.NoError(t, os.WriteFile(bad, []byte("{}"), 0o644))
	_, err = Load(bad)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	broken := filepath.Join(dir, "content.yaml")
	require.NoError(t, os.WriteFile(broken, []byte("personal: [unclosed"), 0o644))
	_, err = Load(broken)
	assert.Error(t, err)
}

func TestMedia_ProjectSlots(t *testing.T) {
	m := NewMediaFS(fstest.MapFS{
		"project1.jpg": {Data: []byte("x")},
		"project3.jpg": {Data: []byte("x")},
	})
	projects := []Project{{Title: "A"}, {Title: "B"}, {Title: "C"}}

	one := m.Project(1, projects[0])
	assert.Equal(t, "media/project1.jpg", one.Src)
	assert.Equal(t, "A", one.Alt)

	two := m.Project(2, projects[1])
	assert.True(t, two.Missing())
	assert.Equal(t, "Add project2.jpg", two.Placeholder)

	assert.False(t, m.Project(3, projects[2]).Missing())
}

func TestMedia_Profile(t *testing.T) {
	m := NewMediaFS(fstest.MapFS{
		"me.png":      {Data: []byte("x")},
		"album/a.png": {Data: []byte("x")},
	})
	assert.Equal(t, "media/me.png", m.Profile(PersonalInfo{About: About{Image: "me.png"}}).Src)
	assert.Equal(t, "Add profile.jpg", m.Profile(PersonalInfo{}).Placeholder)

	remote := m.Profile(PersonalInfo{About: About{Image: "https://cdn.example.com/me.png"}})
	assert.Equal(t, "https://cdn.example.com/me.png", remote.Src)

	assert.True(t, NewMedia("").Profile(PersonalInfo{About: About{Image: "me.png"}}).Missing())
	assert.Nil(t, NewMedia(filepath.Join(t.TempDir(), "missing")).FS())
	assert.False(t, m.Has("album"), "directories are not images")
	assert.True(t, m.Has("../album/a.png"))
}

func TestMedia_Resume(t *testing.T) {
	m := NewMediaFS(fstest.MapFS{"resume.pdf": {Data: []byte("%PDF")}})

	assert.Equal(t, "media/resume.pdf", m.Resume(PersonalInfo{Resume: "/resume.pdf"}).Src)

	missing := NewMedia("").Resume(PersonalInfo{Resume: "/cv/resume.pdf"})
	assert.True(t, missing.Missing())
	assert.Equal(t, "Add resume.pdf", missing.Placeholder)

	assert.Equal(t, Image{}, m.Resume(PersonalInfo{}))
	assert.Equal(t, "https://example.com/cv.pdf", m.Resume(PersonalInfo{Resume: "https://example.com/cv.pdf"}).Src)
}
