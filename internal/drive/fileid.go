package drive

import "regexp"

var fileIDRe = regexp.MustCompile(`/file/d/([^/]+)/`)

// ExtractFileID pulls the file identifier out of a shareable link like
// https://drive.google.com/file/d/<ID>/view. Anything that does not match
// is treated as a raw file id.
func ExtractFileID(link string) string {
	if m := fileIDRe.FindStringSubmatch(link); m != nil {
		return m[1]
	}
	return link
}
