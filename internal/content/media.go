package content

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"
)

// MediaPrefix is the URL path media files are served under.
const MediaPrefix = "media"

// Image is a resolved image slot. When the file is absent Src is empty and
// Placeholder holds the text shown in its place.
type Image struct {
	Src         string
	Alt         string
	Placeholder string
}

// Missing reports whether the slot renders a placeholder.
func (i Image) Missing() bool { return i.Src == "" }

// Media resolves image names against a media directory.
type Media struct {
	fsys fs.FS
}

// NewMedia returns a resolver over dir. An empty or missing dir resolves
// nothing.
func NewMedia(dir string) Media {
	if dir == "" {
		return Media{}
	}
	if fi, err := os.Stat(dir); err != nil || !fi.IsDir() {
		return Media{}
	}
	return Media{fsys: os.DirFS(dir)}
}

// NewMediaFS returns a resolver over fsys.
func NewMediaFS(fsys fs.FS) Media { return Media{fsys: fsys} }

// FS returns the underlying file system, nil when none is configured.
func (m Media) FS() fs.FS { return m.fsys }

// Has reports whether name exists as a regular file.
func (m Media) Has(name string) bool {
	if m.fsys == nil || name == "" {
		return false
	}
	name = strings.TrimPrefix(path.Clean("/"+name), "/")
	info, err := fs.Stat(m.fsys, name)
	return err == nil && !info.IsDir()
}

// Profile resolves the profile image.
func (m Media) Profile(p PersonalInfo) Image {
	return m.resolve(p.About.Image, "profile.jpg", p.Name)
}

// Project resolves the image of the project in slot n, counted from 1.
func (m Media) Project(n int, pr Project) Image {
	return m.resolve(pr.Image, fmt.Sprintf("project%d.jpg", n), pr.Title)
}

// Resume resolves the resume download against the media directory. A
// resume that is not configured yields an empty Image with no placeholder.
func (m Media) Resume(p PersonalInfo) Image {
	if p.Resume == "" {
		return Image{}
	}
	return m.resolve(p.Resume, path.Base(p.Resume), "Resume")
}

func (m Media) resolve(name, fallback, alt string) Image {
	img := Image{Alt: alt}
	if name == "" {
		name = fallback
	}
	switch {
	case strings.HasPrefix(name, "http://"), strings.HasPrefix(name, "https://"):
		img.Src = name
	case m.Has(name):
		img.Src = MediaPrefix + "/" + strings.TrimPrefix(path.Clean("/"+name), "/")
	default:
		img.Placeholder = "Add " + fallback
	}
	return img
}
