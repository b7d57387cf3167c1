package archive

import (
	"net/url"
	"path"
	"strings"
)

var unsafeChars = strings.NewReplacer(
	`\`, "_", "/", "_", ":", "_", "*", "_", "?", "_",
	`"`, "_", "<", "_", ">", "_", "|", "_",
)

// Sanitize makes a card name safe to use as a file name
func Sanitize(name string) string {
	return unsafeChars.Replace(name)
}

// Ext returns the file extension of the image at rawURL, without the dot.
// Query and fragment are ignored; jpg is assumed when there is none.
func Ext(rawURL string) string {
	p := rawURL
	if u, err := url.Parse(rawURL); err == nil {
		p = u.Path
	}
	ext := strings.TrimPrefix(path.Ext(p), ".")
	if ext == "" {
		return "jpg"
	}
	return ext
}

// EntryPath is where an image lands inside the archive
func EntryPath(name, rawURL string) string {
	return "images/" + Sanitize(name) + "." + Ext(rawURL)
}

// FileName is the name used when a single image is saved on its own
func FileName(name, rawURL string) string {
	return Sanitize(name) + "." + Ext(rawURL)
}
